package language

// WordSet is an ordered set of equivalent words for one semantic slot
// (e.g. every way to say "at"). Profiles always resolve lookups against
// the whole set; the first entry is the canonical form.
type WordSet []string

// Contains reports whether word is one of the equivalents.
// Words are stored lowercase, so callers must lowercase first.
func (w WordSet) Contains(word string) bool {
	for _, v := range w {
		if v == word {
			return true
		}
	}
	return false
}

// Primary returns the canonical form of the set, or "" for an empty set.
func (w WordSet) Primary() string {
	if len(w) == 0 {
		return ""
	}
	return w[0]
}
