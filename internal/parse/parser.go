package parse

import (
	"time"

	"github.com/rs/zerolog/log"

	"wekker/internal/language"
)

// Result is a resolved (date, time) pair. Date is midnight of the resolved
// calendar day in the reference location; Clock is the time of day.
type Result struct {
	Date     time.Time
	Clock    ClockTime
	Language string
}

// Time combines the resolved date and clock into a single instant.
func (r Result) Time() time.Time {
	return time.Date(
		r.Date.Year(), r.Date.Month(), r.Date.Day(),
		r.Clock.Hour, r.Clock.Minute, r.Clock.Second, 0,
		r.Date.Location(),
	)
}

// Parser resolves free-form date/time expressions against a language
// registry. It is stateless apart from the registry and clock, so a single
// Parser is safe for concurrent use.
type Parser struct {
	registry *language.Registry
	now      func() time.Time
	natural  *naturalParser // nil unless the NLP first pass is enabled
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock replaces the reference clock. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// WithNaturalLanguage enables the olebedev/when first pass for English
// input. The deterministic cascade remains the guaranteed fallback.
func WithNaturalLanguage() Option {
	return func(p *Parser) { p.natural = newNaturalParser() }
}

// New creates a Parser over the given registry.
func New(registry *language.Registry, opts ...Option) *Parser {
	p := &Parser{
		registry: registry,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse resolves raw text in the given language to a (date, time) pair.
//
// The reference "now" is read once so every relative computation inside one
// call agrees. A pure time expression resolves to today. Otherwise the text
// is split into date and time fragments; a failed date with a recognized
// time clause falls back to today, and a recognized date with no usable time
// defaults to midnight (or the current time when the date is today). The
// call fails only when neither half is recognizable.
func (p *Parser) Parse(raw, languageCode string) (Result, error) {
	profile := p.registry.Profile(languageCode)
	ref := p.now()

	if p.natural != nil {
		if res, ok := p.natural.parse(raw, profile, ref); ok {
			log.Debug().Str("input", raw).Msg("Resolved by natural-language first pass")
			return res, nil
		}
	}

	// Whole-input time attempt first: "7pm" and "19:30" are the common case
	// and need no date arithmetic.
	if clock, err := parseClockText(raw, profile); err == nil {
		return Result{Date: midnightOf(ref), Clock: clock, Language: profile.Code}, nil
	}

	dateFrag, timeFrag := normalizeAndSplit(raw, profile)

	date, dateErr := ParseDate(dateFrag, profile, ref)
	if dateErr != nil {
		if timeFrag == "" {
			return Result{}, dateErr
		}
		// The clause before the separator wasn't a date; treat the input as
		// a time expression for today, but only if the time half holds up.
		date = midnightOf(ref)
	}

	timeText := timeFrag
	if timeText == "" {
		timeText = dateFrag
	}
	clock, clockErr := parseClockText(timeText, profile)
	if clockErr != nil {
		if dateErr != nil {
			return Result{}, dateErr
		}
		clock = defaultClock(date, ref)
	}

	res := Result{Date: date, Clock: clock, Language: profile.Code}
	log.Debug().
		Str("input", raw).
		Str("language", profile.Code).
		Str("date", date.Format("2006-01-02")).
		Str("time", clock.String()).
		Msg("Resolved expression")
	return res, nil
}

// parseClockText cleans a fragment with the profile vocabulary and runs the
// time cascade on it.
func parseClockText(text string, profile *language.Profile) (ClockTime, error) {
	cleaned, err := cleanClockFragment(text, profile)
	if err != nil {
		return ClockTime{}, err
	}
	return ParseClock(cleaned)
}

// defaultClock picks the time used when the expression carried none: the
// current time of day when the date resolved to today, midnight for any
// future date.
func defaultClock(date, ref time.Time) ClockTime {
	if date.Equal(midnightOf(ref)) {
		return ClockTime{Hour: ref.Hour(), Minute: ref.Minute(), Second: ref.Second()}
	}
	return ClockTime{}
}
