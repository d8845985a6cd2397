package cmd

import (
	"fmt"

	"wekker/internal/config"
	"wekker/internal/updater"

	"github.com/spf13/cobra"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Check for a newer wekker release",
	Long: `Checks GitHub for a newer release and prints where to get it.

Release channels:
- "stable" (the default) only considers full releases
- "beta" also considers pre-releases

Configure update.channel and update.check_interval in your config.
The check result is cached, so repeated runs inside the interval are free.`,
	RunE: runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	fmt.Println("Checking for updates...")

	// Missing config is fine here, fall back to defaults
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}

	if cfg.Update.Disabled {
		fmt.Println("Update checks are disabled in your config (update.disabled).")
		return nil
	}

	upd := updater.New(githubOwner, githubRepo, config.Dir(), cfg.Update.CheckInterval)

	updateInfo, err := upd.CheckForUpdate(version, cfg.Update.Channel)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	if updateInfo == nil {
		fmt.Printf("✓ You are already running the latest version (%s)\n", version)
		return nil
	}

	fmt.Print(updater.FormatAnnouncement(updateInfo))
	if updateInfo.ReleaseNotes != "" {
		fmt.Printf("\nRelease notes:\n%s\n", updateInfo.ReleaseNotes)
	}
	return nil
}
