package parse

import (
	"strings"

	"wekker/internal/language"
)

// punctCutset is trimmed from individual tokens so "9." and "monday," parse.
const punctCutset = ".,;!?"

// tokenize lowercases, trims and splits text into whitespace-separated
// tokens with surrounding punctuation removed. Empty tokens are dropped, so
// repeated whitespace collapses for free.
func tokenize(text string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, punctCutset)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// normalizeAndSplit cleans the raw expression and splits it into a date
// fragment and an optional time fragment on the profile's "at" word.
//
// Prepositions are removed as whole tokens only, so substrings inside other
// words are untouched. A leading "on"-equivalent is stripped from the date
// fragment. An empty time fragment string means no separator was found.
func normalizeAndSplit(text string, p *language.Profile) (dateFrag, timeFrag string) {
	tokens := tokenize(text)

	kept := tokens[:0:0]
	for _, tok := range tokens {
		if p.Prepositions.Contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	dateTokens := kept
	var timeTokens []string
	if at, n := findSeparator(kept, p.At); at >= 0 {
		dateTokens = kept[:at]
		timeTokens = kept[at+n:]
	}

	if len(dateTokens) > 0 && p.On.Contains(dateTokens[0]) {
		dateTokens = dateTokens[1:]
	}

	return strings.Join(dateTokens, " "), strings.Join(timeTokens, " ")
}

// findSeparator locates the first occurrence of any "at" phrase in tokens,
// matching whole-token windows. Longer phrases are tried first at each
// position so "a las" beats a bare "a". Returns the start index and phrase
// length in tokens, or (-1, 0).
func findSeparator(tokens []string, at language.WordSet) (int, int) {
	phrases := make([][]string, 0, len(at))
	for _, phrase := range at {
		phrases = append(phrases, strings.Fields(phrase))
	}
	for i := range tokens {
		best := 0
		for _, words := range phrases {
			if len(words) <= best || i+len(words) > len(tokens) {
				continue
			}
			match := true
			for j, w := range words {
				if tokens[i+j] != w {
					match = false
					break
				}
			}
			if match {
				best = len(words)
			}
		}
		if best > 0 {
			return i, best
		}
	}
	return -1, 0
}
