package parse

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"wekker/internal/language"
)

// naturalParser wraps olebedev/when as an optional first pass for English
// input. It only wins when the match spans the whole expression; anything
// partial falls through to the deterministic cascade, which stays the
// guaranteed (and only multilingual) path.
type naturalParser struct {
	w *when.Parser
}

func newNaturalParser() *naturalParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &naturalParser{w: w}
}

func (n *naturalParser) parse(raw string, profile *language.Profile, ref time.Time) (Result, bool) {
	if profile.Code != "en" {
		return Result{}, false
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Result{}, false
	}

	res, err := n.w.Parse(trimmed, ref)
	if err != nil || res == nil {
		return Result{}, false
	}
	if !strings.EqualFold(strings.TrimSpace(res.Text), trimmed) {
		return Result{}, false
	}

	t := res.Time.In(ref.Location())
	return Result{
		Date:     midnightOf(t),
		Clock:    ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()},
		Language: profile.Code,
	}, true
}
