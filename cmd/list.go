package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"wekker/internal/alarm"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all alarms",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := checkConfig()
	if err != nil {
		return err
	}

	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	alarms, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list alarms: %w", err)
	}

	if len(alarms) == 0 {
		fmt.Println("No alarms set. Use 'wekker set' to create one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRINGS AT\tIN\tSTATE")
	for _, a := range alarms {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			a.Name,
			a.At.Format("Mon 02 Jan 15:04"),
			countdown(a),
			alarmState(a),
		)
	}
	return w.Flush()
}

func countdown(a *alarm.Alarm) string {
	if !a.Active {
		return "-"
	}
	left := a.TimeLeft(time.Now)
	if left == 0 {
		return "due"
	}
	return formatDuration(left)
}

func alarmState(a *alarm.Alarm) string {
	if !a.Active {
		return "off"
	}
	switch a.Status {
	case alarm.StatusTriggered:
		return "ringing"
	case alarm.StatusSnoozed:
		return "snoozed"
	default:
		return "armed"
	}
}
