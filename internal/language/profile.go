package language

import (
	"strings"
	"time"
)

// PhraseOffset maps a fixed phrase ("overmorgen", "day after tomorrow")
// to a day offset relative to the reference date.
type PhraseOffset struct {
	Phrase string
	Days   int
}

// Profile is the immutable vocabulary bundle for one language.
// All words are stored lowercase. Weekdays are Monday-first and months
// January-first, matching the fixed-size arrays.
type Profile struct {
	Code string

	Weekdays [7]string
	Months   [12]string

	// Relative-date vocabulary.
	Today     WordSet
	Tomorrow  WordSet
	In        WordSet // "in N days" lead word ("in", "over", "dans", "en")
	DayUnits  WordSet
	WeekUnits WordSet
	Next      WordSet
	On        WordSet

	// Time-of-day vocabulary.
	At        WordSet // date/time separator, may contain multi-word phrases ("a las")
	AM        WordSet
	PM        WordSet
	Noon      WordSet
	Midnight  WordSet
	HourWords WordSet // dropped from time fragments ("uur", "uhr", "o'clock")
	Fillers   WordSet // time-of-day qualifiers the grammar ignores ("evening")

	// Noise words stripped from input before splitting.
	Prepositions WordSet

	// Fixed phrases with a configured day offset, longest phrase first.
	Offsets []PhraseOffset

	// Spelled-out numbers for "in two days".
	Numbers map[string]int
}

// minAbbrev is the shortest prefix accepted for weekday and month names,
// so "jan" and "wed" match but a bare "j" does not.
const minAbbrev = 3

// WeekdayIndex resolves a weekday name (or unambiguous prefix) to its
// Monday-first index.
func (p *Profile) WeekdayIndex(word string) (int, bool) {
	return matchName(p.Weekdays[:], word)
}

// MonthIndex resolves a month name (or unambiguous prefix) to a time.Month.
func (p *Profile) MonthIndex(word string) (time.Month, bool) {
	idx, ok := matchName(p.Months[:], word)
	if !ok {
		return 0, false
	}
	return time.Month(idx + 1), true
}

// NumberWord resolves a spelled-out number word.
func (p *Profile) NumberWord(word string) (int, bool) {
	n, ok := p.Numbers[word]
	return n, ok
}

// matchName matches word against names exactly, then by unique prefix of at
// least minAbbrev characters.
func matchName(names []string, word string) (int, bool) {
	if word == "" {
		return 0, false
	}
	for i, name := range names {
		if name == word {
			return i, true
		}
	}
	if len(word) < minAbbrev {
		return 0, false
	}
	found := -1
	for i, name := range names {
		if strings.HasPrefix(name, word) {
			if found >= 0 {
				return 0, false // ambiguous prefix
			}
			found = i
		}
	}
	if found < 0 {
		return 0, false
	}
	return found, true
}
