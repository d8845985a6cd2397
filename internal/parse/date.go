package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"wekker/internal/language"
)

// profilePatterns holds the compiled per-language regexes. Compilation is
// cached per profile code; the cache is append-only, so a racing double
// compile just produces an equivalent entry.
type profilePatterns struct {
	relative    *regexp.Regexp // "<in> N <days|weeks>"
	nextWeekday *regexp.Regexp // "<next> <word>"
}

var patternCache sync.Map // profile code -> *profilePatterns

// Language-independent date patterns.
var (
	dayMonthPattern = regexp.MustCompile(`^(\d{1,2})\s+([\p{L}']+)$`)
	monthDayPattern = regexp.MustCompile(`^([\p{L}']+)\s+(\d{1,2})$`)
	numericPattern  = regexp.MustCompile(`(\d{1,2})[-/. ](\d{1,2})(?:[-/. ](\d{2,4}))?`)
)

// ParseDate resolves a normalized date fragment against the reference date.
// The reference carries the location used for all constructed dates.
func ParseDate(fragment string, p *language.Profile, ref time.Time) (time.Time, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return time.Time{}, ErrEmptyInput
	}
	refDate := midnightOf(ref)

	if p.Today.Contains(fragment) {
		return refDate, nil
	}
	if p.Tomorrow.Contains(fragment) {
		return refDate.AddDate(0, 0, 1), nil
	}

	// Fixed phrases match as substrings, longest phrase first, so noise
	// around "overmorgen" or "day after tomorrow" doesn't hide the offset.
	for _, off := range p.Offsets {
		if strings.Contains(fragment, off.Phrase) {
			return refDate.AddDate(0, 0, off.Days), nil
		}
	}

	pats := patternsFor(p)

	if m := pats.relative.FindStringSubmatch(fragment); m != nil {
		n, ok := resolveCount(m[1], p)
		if ok {
			days := n
			if m[3] != "" { // week unit matched
				days = n * 7
			}
			return refDate.AddDate(0, 0, days), nil
		}
	}

	if idx, ok := p.WeekdayIndex(fragment); ok {
		return nextWeekday(refDate, idx), nil
	}
	if m := pats.nextWeekday.FindStringSubmatch(fragment); m != nil {
		if idx, ok := p.WeekdayIndex(m[1]); ok {
			return nextWeekday(refDate, idx), nil
		}
	}

	if date, matched, err := parseMonthName(fragment, p, refDate); matched {
		return date, err
	}

	if date, ok := parseNumeric(fragment, refDate); ok {
		return date, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, fragment)
}

// parseMonthName handles "<day> <month>" and "<month> <day>". A matched
// month name with an impossible day fails the whole resolution rather than
// falling through, per the error contract. The year rolls forward when the
// constructed date already passed.
func parseMonthName(fragment string, p *language.Profile, refDate time.Time) (time.Time, bool, error) {
	var dayStr, monthStr string
	if m := dayMonthPattern.FindStringSubmatch(fragment); m != nil {
		if _, ok := p.MonthIndex(m[2]); ok {
			dayStr, monthStr = m[1], m[2]
		}
	}
	if dayStr == "" {
		if m := monthDayPattern.FindStringSubmatch(fragment); m != nil {
			if _, ok := p.MonthIndex(m[1]); ok {
				dayStr, monthStr = m[2], m[1]
			}
		}
	}
	if dayStr == "" {
		return time.Time{}, false, nil
	}

	day, _ := strconv.Atoi(dayStr)
	month, _ := p.MonthIndex(monthStr)

	date, ok := calendarDate(refDate.Year(), month, day, refDate.Location())
	if !ok {
		return time.Time{}, true, fmt.Errorf("%w: no day %d in %s", ErrInvalidDate, day, monthStr)
	}
	if date.Before(refDate) {
		date, ok = calendarDate(refDate.Year()+1, month, day, refDate.Location())
		if !ok {
			return time.Time{}, true, fmt.Errorf("%w: no day %d in %s", ErrInvalidDate, day, monthStr)
		}
	}
	return date, true, nil
}

// parseNumeric handles D-M[-Y] with -, /, . or space separators. Two-digit
// years get 2000 added. Impossible candidates are skipped silently; the
// caller fails the operation only when nothing else matches either.
func parseNumeric(fragment string, refDate time.Time) (time.Time, bool) {
	for _, m := range numericPattern.FindAllStringSubmatch(fragment, -1) {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			continue
		}
		year := refDate.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		date, ok := calendarDate(year, time.Month(month), day, refDate.Location())
		if !ok {
			continue
		}
		if date.Before(refDate) {
			if date, ok = calendarDate(year+1, time.Month(month), day, refDate.Location()); !ok {
				continue
			}
		}
		return date, true
	}
	return time.Time{}, false
}

// resolveCount turns "2" or a spelled-out number word into an int.
func resolveCount(word string, p *language.Profile) (int, bool) {
	if n, err := strconv.Atoi(word); err == nil {
		return n, true
	}
	return p.NumberWord(word)
}

// nextWeekday returns the next occurrence of the Monday-first weekday index
// strictly after the reference date: a bare weekday name never means today.
func nextWeekday(refDate time.Time, idx int) time.Time {
	refIdx := (int(refDate.Weekday()) + 6) % 7 // time.Weekday is Sunday-first
	offset := (idx - refIdx + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return refDate.AddDate(0, 0, offset)
}

// calendarDate builds a date and reports whether the values named a real
// calendar day. time.Date silently normalizes February 30 into March, so the
// round-trip check catches impossible dates.
func calendarDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if date.Month() != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

// midnightOf truncates a reference instant to its local calendar day.
func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// patternsFor returns the compiled patterns for a profile, building them on
// first use. Keyed by code; profiles are static so entries never go stale.
func patternsFor(p *language.Profile) *profilePatterns {
	if cached, ok := patternCache.Load(p.Code); ok {
		return cached.(*profilePatterns)
	}
	pats := &profilePatterns{
		relative: regexp.MustCompile(
			`^(?:` + alternation(p.In) + `)\s+(\d+|[\p{L}]+)\s+(?:(` +
				alternation(p.DayUnits) + `)|(` + alternation(p.WeekUnits) + `))$`),
		nextWeekday: regexp.MustCompile(
			`^(?:` + alternation(p.Next) + `)\s+([\p{L}']+)$`),
	}
	patternCache.Store(p.Code, pats)
	return pats
}

// alternation joins a word set into a quoted regex alternation.
func alternation(words language.WordSet) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
