package parse

import (
	"errors"
	"testing"
	"time"

	"wekker/internal/language"
)

// 2024-01-15 is a Monday.
var refMonday = time.Date(2024, time.January, 15, 10, 30, 0, 0, time.Local)

func TestParseDate(t *testing.T) {
	registry := language.NewRegistry()

	tests := []struct {
		name          string
		fragment      string
		lang          string
		ref           time.Time
		expected      string // YYYY-MM-DD
		expectedError bool
	}{
		{"today", "today", "en", refMonday, "2024-01-15", false},
		{"tomorrow", "tomorrow", "en", refMonday, "2024-01-16", false},
		{"day after tomorrow", "day after tomorrow", "en", refMonday, "2024-01-17", false},
		{"in N days", "in 2 days", "en", refMonday, "2024-01-17", false},
		{"in word-number days", "in two days", "en", refMonday, "2024-01-17", false},
		{"in N weeks", "in 1 week", "en", refMonday, "2024-01-22", false},
		{"in word-number weeks", "in two weeks", "en", refMonday, "2024-01-29", false},
		{"bare weekday never today", "monday", "en", refMonday, "2024-01-22", false},
		{"weekday later this week", "friday", "en", refMonday, "2024-01-19", false},
		{"next weekday", "next friday", "en", refMonday, "2024-01-19", false},
		{"weekday abbreviation", "wed", "en", refMonday, "2024-01-17", false},
		{"day month upcoming", "20 january", "en", refMonday, "2024-01-20", false},
		{"day month rolls year", "5 january", "en", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local), "2025-01-05", false},
		{"month day order", "january 5", "en", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local), "2025-01-05", false},
		{"month abbreviation", "5 jan", "en", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local), "2025-01-05", false},
		{"impossible day of month", "31 april", "en", refMonday, "", true},
		{"numeric day month", "20-01", "en", refMonday, "2024-01-20", false},
		{"numeric slash", "20/01", "en", refMonday, "2024-01-20", false},
		{"numeric with year", "20-01-2024", "en", refMonday, "2024-01-20", false},
		{"numeric two digit year", "20-01-24", "en", refMonday, "2024-01-20", false},
		{"numeric past rolls year", "1-1", "en", refMonday, "2025-01-01", false},
		{"numeric impossible date", "30-02", "en", refMonday, "", true},
		{"dutch overmorgen", "overmorgen", "nl", refMonday, "2024-01-17", false},
		{"dutch relative", "over 3 dagen", "nl", refMonday, "2024-01-18", false},
		{"dutch word number", "over twee dagen", "nl", refMonday, "2024-01-17", false},
		{"dutch next weekday", "volgende dinsdag", "nl", refMonday, "2024-01-16", false},
		{"dutch day month", "5 maart", "nl", refMonday, "2024-03-05", false},
		{"german uebermorgen", "übermorgen", "de", refMonday, "2024-01-17", false},
		{"german relative", "in 2 tagen", "de", refMonday, "2024-01-17", false},
		{"french apres-demain", "après-demain", "fr", refMonday, "2024-01-17", false},
		{"french relative", "dans 2 jours", "fr", refMonday, "2024-01-17", false},
		{"spanish pasado manana", "pasado mañana", "es", refMonday, "2024-01-17", false},
		{"spanish relative", "en 2 días", "es", refMonday, "2024-01-17", false},
		{"spanish weekday", "viernes", "es", refMonday, "2024-01-19", false},
		{"empty fragment", "", "en", refMonday, "", true},
		{"gibberish", "definitely not a date", "en", refMonday, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.fragment, registry.Profile(tt.lang), tt.ref)

			if tt.expectedError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := date.Format("2006-01-02"); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestParseDateMidnightResult(t *testing.T) {
	registry := language.NewRegistry()

	date, err := ParseDate("tomorrow", registry.Profile("en"), refMonday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.Hour() != 0 || date.Minute() != 0 {
		t.Errorf("resolved date should be at midnight, got %v", date)
	}
}

func TestParseDateErrorTaxonomy(t *testing.T) {
	registry := language.NewRegistry()
	en := registry.Profile("en")

	if _, err := ParseDate("", en, refMonday); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := ParseDate("31 april", en, refMonday); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ParseDate("nonsense", en, refMonday); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
