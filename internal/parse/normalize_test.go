package parse

import (
	"testing"

	"wekker/internal/language"
)

func TestNormalizeAndSplit(t *testing.T) {
	registry := language.NewRegistry()

	tests := []struct {
		name         string
		input        string
		lang         string
		expectedDate string
		expectedTime string
	}{
		{"date and time", "5 january at 14:30", "en", "5 january", "14:30"},
		{"date only", "tomorrow", "en", "tomorrow", ""},
		{"mixed case and spacing", "  Tomorrow   AT  9 ", "en", "tomorrow", "9"},
		{"leading on stripped", "on monday at 9", "en", "monday", "9"},
		{"preposition stripped whole word", "the day after tomorrow", "en", "day after tomorrow", ""},
		{"preposition not stripped inside words", "theatre at 9", "en", "theatre", "9"},
		{"dutch om separator", "overmorgen om 9", "nl", "overmorgen", "9"},
		{"dutch op stripped", "op maandag om 8", "nl", "maandag", "8"},
		{"german um separator", "morgen um 7", "de", "morgen", "7"},
		{"french a separator", "demain à 9h", "fr", "demain", "9h"},
		{"spanish article and a las", "el 5 de enero a las 14:30", "es", "5 enero", "14:30"},
		{"separator first", "at 9", "en", "", "9"},
		{"empty input", "   ", "en", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dateFrag, timeFrag := normalizeAndSplit(tt.input, registry.Profile(tt.lang))

			if dateFrag != tt.expectedDate {
				t.Errorf("date fragment: expected %q, got %q", tt.expectedDate, dateFrag)
			}
			if timeFrag != tt.expectedTime {
				t.Errorf("time fragment: expected %q, got %q", tt.expectedTime, timeFrag)
			}
		})
	}
}

// Normalizing an already-normalized fragment changes nothing.
func TestNormalizeIdempotent(t *testing.T) {
	registry := language.NewRegistry()
	en := registry.Profile("en")

	dateFrag, timeFrag := normalizeAndSplit("the 5 january at 14:30", en)
	dateAgain, timeAgain := normalizeAndSplit(dateFrag, en)

	if dateAgain != dateFrag || timeAgain != "" {
		t.Errorf("normalization not idempotent: %q -> %q (time %q)", dateFrag, dateAgain, timeAgain)
	}
	if again, err := cleanClockFragment(timeFrag, en); err != nil || again != timeFrag {
		t.Errorf("clock cleaning not idempotent: %q -> %q (%v)", timeFrag, again, err)
	}
}
