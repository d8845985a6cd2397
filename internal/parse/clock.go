package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"wekker/internal/language"
)

// ClockTime is a resolved time of day.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// String formats the time as HH:MM (or HH:MM:SS when seconds are set).
func (c ClockTime) String() string {
	if c.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Ordered pattern cascade for time fragments. First match wins; inputs are
// cleaned to digits, colon and meridiem letters before matching.
var (
	bareHourPattern       = regexp.MustCompile(`^(\d{1,2})$`)
	hourMinutePattern     = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	compactPattern        = regexp.MustCompile(`^(\d{3,4})$`)
	meridiemPattern       = regexp.MustCompile(`^(\d{1,2})([ap])m?$`)
	meridiemMinutePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})([ap])m?$`)

	// clockTokenPattern decides whether a token can belong to a time
	// expression at all: digits, H:MM, an attached or standalone meridiem.
	clockTokenPattern = regexp.MustCompile(`^(?:\d{1,4}|\d{1,2}:\d{2})?(?:[ap]m?)?$`)

	// hourSuffixPattern rewrites "9h" / "9h30" to colon form.
	hourSuffixPattern = regexp.MustCompile(`^(\d{1,2})h(\d{2})?$`)
)

// ParseClock parses a cleaned time fragment against the pattern cascade.
func ParseClock(fragment string) (ClockTime, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ClockTime{}, ErrEmptyInput
	}

	switch {
	case bareHourPattern.MatchString(fragment):
		hour, _ := strconv.Atoi(fragment)
		return validClock(hour, 0, fragment)

	case hourMinutePattern.MatchString(fragment):
		m := hourMinutePattern.FindStringSubmatch(fragment)
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return validClock(hour, minute, fragment)

	case compactPattern.MatchString(fragment):
		// Split HHMM (or HMM) from the right: "730" is 7:30, "0930" is 9:30.
		digits := fragment
		hour, _ := strconv.Atoi(digits[:len(digits)-2])
		minute, _ := strconv.Atoi(digits[len(digits)-2:])
		return validClock(hour, minute, fragment)

	case meridiemPattern.MatchString(fragment):
		m := meridiemPattern.FindStringSubmatch(fragment)
		hour, _ := strconv.Atoi(m[1])
		if hour < 1 || hour > 12 {
			return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTime, fragment)
		}
		return validClock(to24Hour(hour, m[2]), 0, fragment)

	case meridiemMinutePattern.MatchString(fragment):
		m := meridiemMinutePattern.FindStringSubmatch(fragment)
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 1 || hour > 12 {
			return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTime, fragment)
		}
		return validClock(to24Hour(hour, m[3]), minute, fragment)
	}

	return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTime, fragment)
}

// to24Hour applies the 12-hour conversion: hour mod 12, plus 12 for pm.
func to24Hour(hour int, marker string) int {
	hour %= 12
	if marker == "p" {
		hour += 12
	}
	return hour
}

// validClock range-checks a syntactically matched time. "25:00" matches the
// colon pattern but must still be rejected here.
func validClock(hour, minute int, fragment string) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q out of range", ErrInvalidTime, fragment)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// cleanClockFragment reduces a fragment to the material ParseClock accepts:
// noon/midnight words become 12:00/0:00, known filler words (hour words,
// separators, time-of-day qualifiers) are dropped, and the rest is joined
// without spaces so "7 pm" becomes "7pm".
//
// Any token carrying letters the clock grammar doesn't know makes the whole
// fragment non-time. That strictness is what keeps "in 2 days" from
// half-parsing as a bare "2".
func cleanClockFragment(text string, p *language.Profile) (string, error) {
	var parts []string
	for _, tok := range tokenize(text) {
		switch {
		case p.Noon.Contains(tok):
			parts = append(parts, "12:00")
		case p.Midnight.Contains(tok):
			parts = append(parts, "0:00")
		case p.HourWords.Contains(tok), p.At.Contains(tok),
			p.Fillers.Contains(tok), p.Prepositions.Contains(tok):
			// noise
		case p.AM.Contains(tok):
			parts = append(parts, "am")
		case p.PM.Contains(tok):
			parts = append(parts, "pm")
		case hourSuffixPattern.MatchString(tok):
			m := hourSuffixPattern.FindStringSubmatch(tok)
			if m[2] == "" {
				parts = append(parts, m[1])
			} else {
				parts = append(parts, m[1]+":"+m[2])
			}
		case clockTokenPattern.MatchString(tok):
			parts = append(parts, tok)
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidTime, text)
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyInput
	}
	return strings.Join(parts, ""), nil
}
