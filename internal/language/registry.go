package language

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Registry holds every supported profile. It is built once at startup and
// read-only afterwards, so concurrent lookups need no locking.
type Registry struct {
	profiles map[string]*Profile
	fallback *Profile
}

// NewRegistry builds the registry of built-in profiles.
func NewRegistry() *Registry {
	english := englishProfile()
	r := &Registry{
		profiles: map[string]*Profile{},
		fallback: english,
	}
	for _, p := range []*Profile{
		english,
		dutchProfile(),
		germanProfile(),
		frenchProfile(),
		spanishProfile(),
	} {
		// Longest phrases first so "day after tomorrow" wins over shorter
		// overlapping phrases during substring matching.
		sort.SliceStable(p.Offsets, func(i, j int) bool {
			return len(p.Offsets[i].Phrase) > len(p.Offsets[j].Phrase)
		})
		r.profiles[p.Code] = p
	}
	return r
}

// Profile returns the profile for code, falling back to English for any
// unrecognized code. Lookup never fails; the fallback is logged so operators
// can spot misconfigured language codes.
func (r *Registry) Profile(code string) *Profile {
	if p, ok := r.profiles[normalizeCode(code)]; ok {
		return p
	}
	log.Warn().Str("language", code).Msg("Unknown language code, falling back to English")
	return r.fallback
}

// Codes returns the supported language codes, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.profiles))
	for code := range r.profiles {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// normalizeCode lowercases a language code and drops any region part, so
// "nl-NL" and "nl_NL" both resolve the Dutch profile.
func normalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	return code
}
