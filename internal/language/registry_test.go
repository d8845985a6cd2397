package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"exact match", "nl", "nl"},
		{"uppercase", "NL", "nl"},
		{"locale with region", "nl-NL", "nl"},
		{"locale with underscore", "de_DE", "de"},
		{"unknown falls back to english", "xx", "en"},
		{"empty falls back to english", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := registry.Profile(tt.code)
			assert.Equal(t, tt.expected, profile.Code)
		})
	}
}

// Every profile must carry the full weekday/month tables and the minimum
// vocabulary the parser depends on.
func TestProfileInvariants(t *testing.T) {
	registry := NewRegistry()

	for _, code := range registry.Codes() {
		p := registry.Profile(code)
		t.Run(code, func(t *testing.T) {
			for i, day := range p.Weekdays {
				assert.NotEmpty(t, day, "weekday %d", i)
			}
			for i, month := range p.Months {
				assert.NotEmpty(t, month, "month %d", i)
			}
			assert.NotEmpty(t, p.Today, "today")
			assert.NotEmpty(t, p.Tomorrow, "tomorrow")
			assert.NotEmpty(t, p.At, "at")
			assert.NotEmpty(t, p.AM, "am")
			assert.NotEmpty(t, p.PM, "pm")
		})
	}
}

func TestOffsetsSortedLongestFirst(t *testing.T) {
	registry := NewRegistry()

	for _, code := range registry.Codes() {
		p := registry.Profile(code)
		for i := 1; i < len(p.Offsets); i++ {
			assert.GreaterOrEqual(t,
				len(p.Offsets[i-1].Phrase), len(p.Offsets[i].Phrase),
				"%s offsets out of order", code)
		}
	}
}
