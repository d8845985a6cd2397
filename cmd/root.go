package cmd

import (
	"fmt"
	"os"

	"wekker/internal/alarm"
	"wekker/internal/config"
	"wekker/internal/language"
	"wekker/internal/parse"
	"wekker/internal/storage"
	"wekker/internal/ui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	githubOwner = "rrooggiieerr"
	githubRepo  = "wekker"
)

var rootCmd = &cobra.Command{
	Use:   "wekker",
	Short: "Alarm clock with natural date/time expressions",
	Long: `Wekker is an alarm clock for the terminal. Alarm times are plain
expressions like "7pm", "tomorrow at 6:30", "5 january at 14:30" or
"overmorgen om 9", parsed in the language set in your config.`,
	Version: GetVersion(),
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// Ensure config directory exists
	if err := config.EnsureConfigDir(); err != nil {
		log.Error().Err(err).Msg("Failed to ensure config directory")
	}
}

func checkConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		fmt.Fprintf(os.Stderr, "Please create a config file at ~/.wekker/config.yaml\n")
		fmt.Fprintf(os.Stderr, "Run 'wekker config init' to create one.\n")
		return nil, err
	}
	return cfg, nil
}

// openStorage opens the alarm database configured in cfg
func openStorage(cfg *config.Config) (*storage.Storage, error) {
	store, err := storage.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return store, nil
}

// pickAlarm resolves the alarm named in args, or asks interactively when
// none is given
func pickAlarm(store *storage.Storage, args []string) (*alarm.Alarm, error) {
	if len(args) > 0 {
		return store.Get(args[0])
	}
	alarms, err := store.List()
	if err != nil {
		return nil, err
	}
	return ui.SelectAlarm(alarms)
}

// newParser builds the expression parser from the config
func newParser(cfg *config.Config) *parse.Parser {
	var opts []parse.Option
	if cfg.NaturalLanguage {
		opts = append(opts, parse.WithNaturalLanguage())
	}
	return parse.New(language.NewRegistry(), opts...)
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func SetVersionInfo(v, c, d, b string) {
	version = v
	commit = c
	date = d
	builtBy = b
}

func GetVersion() string {
	return fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		logger := log.Logger.With().Str("component", "version").Logger()
		logger.Info().
			Str("commit", commit).
			Str("built_at", date).
			Str("built_by", builtBy).
			Msg("wekker version information")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
