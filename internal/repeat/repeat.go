// Package repeat implements the single-repeated-character matcher: a
// run of the same rune three or more times in a row, such as "aaaa" or
// "1111111".
//
// The skip-single-character-runs idea is flipped from the teacher's
// internal/patterns/blocks.go allSameRune helper (which skips runs of
// one repeated character because the teacher's rules package owned
// that case) — here the matcher exists solely to own that case.
package repeat

import (
	"github.com/jmartin-dev/zxcvbn/internal/entropy"
	"github.com/jmartin-dev/zxcvbn/internal/match"
)

// MinRunLength is the shortest repeated-character run this matcher reports.
const MinRunLength = 3

// Matcher finds maximal same-character runs.
type Matcher struct{}

// NewMatcher builds a repeat Matcher.
func NewMatcher() *Matcher { return &Matcher{} }

// Match scans password for maximal runs of a single repeated rune of
// length >= MinRunLength. Entropy charges log2(cardinality · length):
// the cost of one character picked from the repeated character's class,
// plus the cost of guessing the run length.
func (m *Matcher) Match(password string) []match.Match {
	runes := []rune(password)
	n := len(runes)
	var out []match.Match

	i := 0
	for i < n {
		j := i
		for j+1 < n && runes[j+1] == runes[i] {
			j++
		}
		length := j - i + 1
		if length >= MinRunLength {
			token := string(runes[i : j+1])
			card := entropy.Cardinality(string(runes[i]))
			out = append(out, match.Match{
				I:           i,
				J:           j,
				Token:       token,
				Pattern:     match.Repeat,
				Cardinality: card,
				Entropy:     match.Log2(card) + match.Log2(float64(length)),
				RepeatData: &match.RepeatData{
					RepeatedChar: runes[i],
				},
			})
		}
		i = j + 1
	}
	return out
}
