package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var parseLang string

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Resolve a date/time expression without setting an alarm",
	Long: `Parses an expression the way 'wekker set' would and prints the
resolved date and time. Useful to check how an expression is understood.

Examples:
  wekker parse "7pm"
  wekker parse "tomorrow at 6:30"
  wekker parse --lang nl "overmorgen om 9"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseLang, "lang", "l", "", "Language to parse in (defaults to config)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := checkConfig()
	if err != nil {
		return err
	}

	lang := parseLang
	if lang == "" {
		lang = cfg.Language
	}

	expression := strings.Join(args, " ")
	parser := newParser(cfg)

	result, err := parser.Parse(expression, lang)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", expression, err)
	}

	fmt.Printf("Expression: %s\n", expression)
	fmt.Printf("Language:   %s\n", result.Language)
	fmt.Printf("Date:       %s\n", result.Date.Format("Monday 2 January 2006"))
	fmt.Printf("Time:       %s\n", result.Clock.String())
	fmt.Printf("Resolved:   %s\n", result.Time().Format("2006-01-02 15:04:05 MST"))
	return nil
}
