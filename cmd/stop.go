package cmd

import (
	"fmt"

	"wekker/internal/notify"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop [name]",
	Short: "Stop a ringing or snoozed alarm",
	Long: `Silences a ringing or snoozed alarm. The alarm stays armed and
rings again at the same time the next day.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	cfg, err := checkConfig()
	if err != nil {
		return err
	}

	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	a, err := pickAlarm(store, args)
	if err != nil {
		return err
	}

	if err := a.Stop(); err != nil {
		return err
	}
	if err := store.Update(a); err != nil {
		return fmt.Errorf("failed to update alarm: %w", err)
	}

	if cfg.Webhook.Enabled {
		if err := notify.NewClient(cfg.Webhook.URL).Send(notify.EventStopped, a.Name, a.At); err != nil {
			log.Warn().Err(err).Msg("Webhook notification failed")
		}
	}

	fmt.Printf("✓ Alarm %q stopped, next ring %s\n", a.Name, a.At.Format("Mon 02 Jan 15:04"))
	return nil
}
