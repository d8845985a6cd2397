package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wekker/internal/alarm"
	"wekker/internal/notify"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// alarmStore is the slice of storage the watch loop needs
type alarmStore interface {
	Due(now time.Time) ([]*alarm.Alarm, error)
	Update(a *alarm.Alarm) error
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch alarms and ring when they are due",
	Long: `Runs in the foreground and checks every second for due alarms.
A due alarm rings with a terminal bell and, when configured, a webhook
notification. Snoozed alarms ring again when their snooze expires.

Silence a ringing alarm from another terminal with 'wekker snooze' or
'wekker stop'.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := checkConfig()
	if err != nil {
		return err
	}

	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var webhook *notify.Client
	if cfg.Webhook.Enabled {
		webhook = notify.NewClient(cfg.Webhook.URL)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	fmt.Println("Watching alarms. Press Ctrl-C to exit.")
	for {
		select {
		case <-stop:
			fmt.Println("\nStopped watching.")
			return nil
		case now := <-ticker.C:
			ringDueAlarms(store, webhook, now)
		}
	}
}

func ringDueAlarms(store alarmStore, webhook *notify.Client, now time.Time) {
	due, err := store.Due(now)
	if err != nil {
		log.Error().Err(err).Msg("Failed to query due alarms")
		return
	}

	for _, a := range due {
		if !a.Trigger(func() time.Time { return now }) {
			continue
		}
		if err := store.Update(a); err != nil {
			log.Error().Err(err).Str("alarm", a.Name).Msg("Failed to persist triggered alarm")
			continue
		}

		fmt.Printf("\a🔔 %s  Alarm %q is ringing! (wekker snooze / wekker stop)\n",
			now.Format("15:04:05"), a.Name)

		if webhook != nil {
			if err := webhook.Send(notify.EventTriggered, a.Name, a.At); err != nil {
				log.Warn().Err(err).Msg("Webhook notification failed")
			}
		}
	}
}
