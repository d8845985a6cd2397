package cmd

import (
	"fmt"
	"time"

	"wekker/internal/notify"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	str2duration "github.com/xhit/go-str2duration/v2"
)

var snoozeFor string

var snoozeCmd = &cobra.Command{
	Use:   "snooze [name]",
	Short: "Snooze a ringing alarm",
	Long: `Pushes a ringing alarm forward by its snooze duration (9 minutes
unless configured otherwise). Only a ringing alarm can be snoozed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSnooze,
}

func init() {
	rootCmd.AddCommand(snoozeCmd)
	snoozeCmd.Flags().StringVarP(&snoozeFor, "for", "f", "", "Override the snooze duration (e.g. 5m, 15m)")
}

func runSnooze(cmd *cobra.Command, args []string) error {
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

	if snoozeFor != "" {
		d, err := str2duration.ParseDuration(snoozeFor)
		if err != nil {
			return fmt.Errorf("invalid snooze duration %q: %w", snoozeFor, err)
		}
		a.SnoozeDuration = d
	}

	if err := a.Snooze(time.Now); err != nil {
		return err
	}
	if err := store.Update(a); err != nil {
		return fmt.Errorf("failed to update alarm: %w", err)
	}

	if cfg.Webhook.Enabled {
		if err := notify.NewClient(cfg.Webhook.URL).Send(notify.EventSnoozed, a.Name, a.At); err != nil {
			log.Warn().Err(err).Msg("Webhook notification failed")
		}
	}

	fmt.Printf("✓ Alarm %q snoozed until %s\n", a.Name, a.At.Format("15:04"))
	return nil
}
