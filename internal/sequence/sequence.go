// Package sequence implements the arithmetic-progression matcher:
// runs where each character's code point differs from its predecessor
// by a constant step, such as "abcd", "4321", or "aceg".
//
// Directly grounded on the teacher's internal/patterns/sequence.go
// (sequenceSteps, findArithmeticRuns): the same step set and maximal-run
// scan, generalized here to attribute the specification's entropy
// formula to each run instead of emitting a message.
package sequence

import "github.com/jmartin-dev/zxcvbn/internal/match"

// MinRunLength is the shortest arithmetic run this matcher reports.
const MinRunLength = 3

// steps lists the step values checked for arithmetic progressions:
// +1/-1 for consecutive characters, +2/-2 for alternating ones.
var steps = []int{1, -1, 2, -2}

// Matcher finds arithmetic-progression runs.
type Matcher struct{}

// NewMatcher builds a sequence Matcher.
func NewMatcher() *Matcher { return &Matcher{} }

// Match scans password for maximal runs under each step in steps.
func (m *Matcher) Match(password string) []match.Match {
	runes := []rune(password)
	var out []match.Match
	for _, step := range steps {
		out = append(out, findRuns(runes, step)...)
	}
	return out
}

func findRuns(runes []rune, step int) []match.Match {
	var out []match.Match
	n := len(runes)
	start := 0
	for i := 1; i <= n; i++ {
		broke := i == n || int(runes[i])-int(runes[i-1]) != step
		if broke {
			if i-start >= MinRunLength {
				out = append(out, buildMatch(runes, start, i-1, step))
			}
			start = i
		}
	}
	return out
}

func buildMatch(runes []rune, i, j, step int) match.Match {
	token := string(runes[i : j+1])
	length := j - i + 1
	card := sequenceCardinality(runes[i:j+1])
	ent := match.Log2(card) + match.Log2(float64(length))
	ascending := step > 0
	if !ascending {
		ent++ // descending sequences are less obvious to guess first
	}
	return match.Match{
		I:           i,
		J:           j,
		Token:       token,
		Pattern:     match.Sequence,
		Cardinality: card,
		Entropy:     ent,
		SequenceData: &match.SequenceData{
			Step:      step,
			Ascending: ascending,
		},
	}
}

// sequenceCardinality picks the character-class size the run's
// characters are drawn from: 10 for all-digit runs, 26 for all-lower or
// all-upper runs, and the union of those otherwise.
func sequenceCardinality(runes []rune) float64 {
	allDigit, allLower, allUpper := true, true, true
	for _, r := range runes {
		switch {
		case r >= '0' && r <= '9':
			allLower, allUpper = false, false
		case r >= 'a' && r <= 'z':
			allDigit, allUpper = false, false
		case r >= 'A' && r <= 'Z':
			allDigit, allLower = false, false
		default:
			allDigit, allLower, allUpper = false, false, false
		}
	}
	switch {
	case allDigit:
		return 10
	case allLower, allUpper:
		return 26
	default:
		return 36
	}
}
