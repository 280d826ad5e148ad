// Package dictionary implements the dictionary matcher: for every
// substring of a password, a case-insensitive lookup against one or more
// ranked wordlists.
//
// Lower rank means a more common word, meaning lower entropy: base
// entropy is log2(rank). A list's rank is simply its order — the first
// entry is rank 1.
package dictionary

import (
	"strings"

	"github.com/jmartin-dev/zxcvbn/internal/entropy"
	"github.com/jmartin-dev/zxcvbn/internal/match"
)

// List is a single ranked wordlist: a name used as match.DictionaryData's
// DictionaryName, plus a rank lookup over its normalized (lowercase)
// entries.
type List struct {
	Name  string
	words []string // normalized, index 0 == rank 1
	rank  map[string]int
}

// NewList builds a List named name from words, in rank order (the first
// entry is rank 1). Entries are lowercased for case-insensitive lookup;
// duplicate entries keep their first (lowest-rank, most common) rank.
func NewList(name string, words []string) *List {
	l := &List{Name: name, rank: make(map[string]int, len(words))}
	for _, w := range words {
		lw := strings.ToLower(w)
		l.words = append(l.words, lw)
		if _, exists := l.rank[lw]; !exists {
			l.rank[lw] = len(l.words)
		}
	}
	return l
}

// Rank returns the 1-based rank of word (already lowercased by the
// caller) and true if it is a member of the list.
func (l *List) Rank(word string) (int, bool) {
	r, ok := l.rank[word]
	return r, ok
}

// Matcher runs the dictionary lookup against one or more lists.
type Matcher struct {
	Lists []*List
}

// NewMatcher builds a Matcher over lists.
func NewMatcher(lists ...*List) *Matcher {
	return &Matcher{Lists: lists}
}

// Match enumerates every substring password[i..=j] (case-insensitively)
// and reports a [match.Match] for every list membership found. All hits
// are returned, including overlapping ones — the coverage DP decides
// which to keep.
//
// Complexity is O(N² × len(Lists)) substring lookups.
func (m *Matcher) Match(password string) []match.Match {
	if len(m.Lists) == 0 || password == "" {
		return nil
	}
	runes := []rune(password)
	lower := []rune(strings.ToLower(password))
	n := len(runes)

	var out []match.Match
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			candidate := string(lower[i : j+1])
			for _, list := range m.Lists {
				rank, ok := list.Rank(candidate)
				if !ok {
					continue
				}
				token := string(runes[i : j+1])
				base := match.Log2(float64(rank))
				upper := entropy.UppercaseEntropy(token)
				out = append(out, match.Match{
					I:           i,
					J:           j,
					Token:       token,
					Pattern:     match.Dictionary,
					Cardinality: float64(rank),
					Entropy:     base + upper,
					DictionaryData: &match.DictionaryData{
						DictionaryName:   list.Name,
						MatchedWord:      candidate,
						Rank:             rank,
						BaseEntropy:      base,
						UppercaseEntropy: upper,
					},
				})
			}
		}
	}
	return out
}
