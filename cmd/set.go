package cmd

import (
	"fmt"
	"strings"
	"time"

	"wekker/internal/alarm"
	"wekker/internal/ui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	alarmName string
	setLang   string
)

var setCmd = &cobra.Command{
	Use:   "set [expression]",
	Short: "Set an alarm",
	Long: `Sets an alarm from a date/time expression. Without arguments the
expression is asked interactively.

A time that has already passed today is scheduled for tomorrow, so
'wekker set 7:00' at 8am rings tomorrow morning.

Examples:
  wekker set "7pm"
  wekker set "tomorrow at 6:30" --name workday
  wekker set --lang nl "overmorgen om 9"`,
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().StringVarP(&alarmName, "name", "n", "", "Alarm name (defaults to 'alarm')")
	setCmd.Flags().StringVarP(&setLang, "lang", "l", "", "Language to parse in (defaults to config)")
}

func runSet(cmd *cobra.Command, args []string) error {
	cfg, err := checkConfig()
	if err != nil {
		return err
	}

	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	interactive := len(args) == 0

	expression := strings.Join(args, " ")
	if interactive {
		expression, err = ui.PromptExpression()
		if err != nil {
			return fmt.Errorf("failed to read expression: %w", err)
		}
	}

	lang := setLang
	if lang == "" {
		lang = cfg.Language
	}

	parser := newParser(cfg)
	result, err := parser.Parse(expression, lang)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", expression, err)
	}

	name := alarmName
	if name == "" && interactive {
		name, err = ui.PromptAlarmName("alarm")
		if err != nil {
			return fmt.Errorf("failed to read alarm name: %w", err)
		}
	}
	if name == "" {
		name = "alarm"
	}

	snooze, err := cfg.Snooze()
	if err != nil {
		snooze = alarm.DefaultSnoozeDuration
	}

	a := &alarm.Alarm{
		Name:           name,
		Active:         true,
		SnoozeDuration: snooze,
	}
	a.Schedule(result.Time(), time.Now)

	// Same name replaces the existing alarm
	if existing, err := store.Get(name); err == nil {
		existing.At = a.At
		existing.Status = a.Status
		existing.Active = true
		existing.SnoozeDuration = a.SnoozeDuration
		if err := store.Update(existing); err != nil {
			return fmt.Errorf("failed to update alarm: %w", err)
		}
		a = existing
		log.Debug().Str("alarm", name).Msg("Replaced existing alarm")
	} else {
		if err := store.Add(a); err != nil {
			return fmt.Errorf("failed to save alarm: %w", err)
		}
	}

	fmt.Printf("✓ Alarm %q set for %s\n", a.Name, a.At.Format("Monday 2 January 15:04"))
	fmt.Printf("  Rings in %s\n", formatDuration(a.TimeLeft(time.Now)))
	return nil
}

// formatDuration renders a countdown as "1d 2h 3m" dropping empty leading units
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
