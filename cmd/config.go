package cmd

import (
	"fmt"
	"os"

	"wekker/internal/config"
	"wekker/internal/ui"

	"github.com/spf13/cobra"
)

var updateConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long:  `Commands for managing and viewing wekker configuration.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wekker configuration",
	Long: `Creates the configuration directory and an example config file at
~/.wekker/config.yaml (or the path in WEKKER_CONFIG).

Use --update to migrate an existing config file to the latest schema.
This renames deprecated fields and adds new optional sections.`,
	RunE: runConfigInit,
}

var configExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Display example configuration",
	Long: `Displays the complete example configuration with all available options.

Use this to:
- See what configuration options are available
- Compare against your existing config to find missing fields
- Copy sections to add to your own config file`,
	RunE: runConfigExample,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the current configuration",
	Long: `Loads and validates your configuration, then reports whether the
file is on the latest schema or needs 'wekker config migrate'.`,
	RunE: runConfigCheck,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the config file to the latest schema",
	Long: `Migrates an existing config file to the latest schema: renames
deprecated fields, fills in new defaults and offers missing optional
sections. A backup of the original file is kept.`,
	RunE: runConfigMigrate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays your current configuration file.

This shows the raw YAML content of your config file at ~/.wekker/config.yaml
(or the path specified by the WEKKER_CONFIG environment variable).`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configCheckCmd)
	configCmd.AddCommand(configMigrateCmd)
	configCmd.AddCommand(configExampleCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&updateConfig, "update", false, "Migrate existing config to latest schema")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		if updateConfig {
			return updateExistingConfig(configPath)
		}
		fmt.Printf("Config file already exists at: %s\n", configPath)
		fmt.Println("To update the config with new fields, run: wekker config init --update")
		fmt.Println("To reinitialize, delete the existing file and run this command again.")
		return nil
	}

	if updateConfig {
		fmt.Println("No existing config file found. Creating a new one...")
	}

	return createNewConfig(configPath)
}

// createNewConfig generates and writes a new config file
func createNewConfig(configPath string) error {
	exampleData, err := config.GenerateExampleConfig()
	if err != nil {
		return fmt.Errorf("failed to generate example config: %w", err)
	}

	if err := os.WriteFile(configPath, exampleData, 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Println("✓ Configuration initialized successfully!")
	fmt.Printf("\nConfig file created at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Set your language (en, nl, de, fr, es)")
	fmt.Println("2. (Optional) Configure the webhook for alarm notifications")
	fmt.Println("3. Run: wekker set \"7am\"")
	return nil
}

// updateExistingConfig updates an existing config file using the migration logic
func updateExistingConfig(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	updatedData, summary, err := config.MigrateConfig(data)
	if err != nil {
		return fmt.Errorf("failed to migrate config: %w", err)
	}

	if !summary.NeedsUpdate {
		fmt.Printf("✓ Config file is already up to date (version %d)!\n", summary.FromVersion)
		return nil
	}

	displayMigrationSummary(summary)

	fmt.Printf("\nA backup will be created at: %s.backup\n", configPath)
	confirmed, err := ui.Confirm("Do you want to proceed with the update?")
	if err != nil || !confirmed {
		fmt.Println("Update cancelled.")
		return nil
	}

	backupPath := configPath + ".backup"
	if err := os.WriteFile(backupPath, data, 0600); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	fmt.Printf("✓ Backup created at: %s\n", backupPath)

	if len(summary.MissingOptionalSections) > 0 {
		updatedData, err = config.ApplyOptionalSections(updatedData, summary.MissingOptionalSections)
		if err != nil {
			return fmt.Errorf("failed to apply optional sections: %w", err)
		}
	}

	if err := os.WriteFile(configPath, updatedData, 0600); err != nil {
		return fmt.Errorf("failed to write updated config: %w", err)
	}

	fmt.Println("✓ Config file updated successfully!")
	return nil
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	configPath, err := config.Path()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	_, summary, err := config.MigrateConfig(data)
	if err != nil {
		return fmt.Errorf("failed to analyze config: %w", err)
	}

	// An old schema can't be expected to pass field validation
	if summary.FromVersion < summary.ToVersion {
		displayMigrationSummary(summary)
		fmt.Println("\nRun 'wekker config migrate' to apply these changes.")
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	fmt.Printf("✓ Configuration is valid (language: %s)\n", cfg.Language)

	if summary.NeedsUpdate {
		displayMigrationSummary(summary)
		fmt.Println("\nRun 'wekker config migrate' to add these sections.")
		return nil
	}

	fmt.Printf("✓ Config schema is up to date (version %d)\n", summary.ToVersion)
	return nil
}

func runConfigMigrate(cmd *cobra.Command, args []string) error {
	configPath, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found at %s\nRun 'wekker config init' to create one", configPath)
	}
	return updateExistingConfig(configPath)
}

// displayMigrationSummary shows what changes will be made
func displayMigrationSummary(summary *config.MigrationSummary) {
	if summary.FromVersion < summary.ToVersion {
		fmt.Printf("Config migration required: v%d -> v%d\n", summary.FromVersion, summary.ToVersion)
		if len(summary.DeprecatedFields) > 0 {
			fmt.Println("\nDeprecated fields to be renamed or removed:")
			for _, field := range summary.DeprecatedFields {
				fmt.Printf("  - %s\n", field)
			}
		}
		if len(summary.MissingFields) > 0 {
			fmt.Println("\nNew fields to be added:")
			for _, field := range summary.MissingFields {
				fmt.Printf("  - %s\n", field)
			}
		}
	}

	if len(summary.MissingOptionalSections) > 0 {
		fmt.Println("\nOptional sections to be added:")
		for _, section := range summary.MissingOptionalSections {
			fmt.Printf("  - %s (with example values)\n", section)
		}
	}
}

func runConfigExample(cmd *cobra.Command, args []string) error {
	exampleData, err := config.GenerateExampleConfig()
	if err != nil {
		return fmt.Errorf("failed to generate example config: %w", err)
	}

	fmt.Println("# Example wekker configuration with all available options:")
	fmt.Println("# Copy relevant sections to your config file at ~/.wekker/config.yaml")
	fmt.Println()
	fmt.Print(string(exampleData))

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	configPath, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found at %s\nRun 'wekker config init' to create one", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	fmt.Printf("# Configuration file: %s\n\n", configPath)
	fmt.Print(string(data))

	return nil
}
