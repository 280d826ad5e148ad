// Package regexmatch implements the fixed-cardinality regex matcher:
// patterns whose guess space is a small fixed set rather than derived
// from character-class cardinality, such as a run of digits or a
// plausible recent year.
//
// Grounded on the teacher's pattern-checker idiom (one self-contained
// checker per concern, returning matches instead of validation issues);
// the specific patterns (digit run, recent year) come directly from
// the specification, which the teacher has no equivalent of.
package regexmatch

import (
	"regexp"

	"github.com/jmartin-dev/zxcvbn/internal/match"
)

// recentYearCardinality is the number of plausible "recent year" values
// a guesser would try first (spec: a flat 119, covering roughly 1900-2019).
const recentYearCardinality = 119

var (
	digitsRe     = regexp.MustCompile(`\d+`)
	recentYearRe = regexp.MustCompile(`19\d\d|200\d|201\d`)
)

// Matcher runs the fixed-cardinality regex patterns.
type Matcher struct{}

// NewMatcher builds a regexmatch Matcher.
func NewMatcher() *Matcher { return &Matcher{} }

// Match finds every non-overlapping digit run and every recent-year
// substring in password.
func (m *Matcher) Match(password string) []match.Match {
	var out []match.Match
	out = append(out, matchDigits(password)...)
	out = append(out, matchRecentYear(password)...)
	return out
}

func matchDigits(password string) []match.Match {
	runes := []rune(password)
	var out []match.Match
	for _, loc := range digitsRe.FindAllStringIndex(password, -1) {
		i, j := byteRangeToRuneRange(password, loc[0], loc[1])
		token := string(runes[i:j])
		length := j - i
		out = append(out, match.Match{
			I:           i,
			J:           j - 1,
			Token:       token,
			Pattern:     match.Regex,
			Cardinality: 10,
			Entropy:     float64(length) * match.Log2(10),
			RegexData:   &match.RegexData{Name: "digits"},
		})
	}
	return out
}

func matchRecentYear(password string) []match.Match {
	runes := []rune(password)
	var out []match.Match
	for _, loc := range recentYearRe.FindAllStringIndex(password, -1) {
		i, j := byteRangeToRuneRange(password, loc[0], loc[1])
		token := string(runes[i:j])
		out = append(out, match.Match{
			I:           i,
			J:           j - 1,
			Token:       token,
			Pattern:     match.Regex,
			Cardinality: recentYearCardinality,
			Entropy:     match.Log2(recentYearCardinality),
			RegexData:   &match.RegexData{Name: "recent_year"},
		})
	}
	return out
}

// byteRangeToRuneRange converts a [start,end) byte offset pair (as
// returned by regexp's FindAllStringIndex) into rune indices, since
// match.Match's I/J are rune-indexed.
func byteRangeToRuneRange(s string, start, end int) (int, int) {
	runeIdx := func(byteOff int) int {
		count := 0
		for bi := range s {
			if bi >= byteOff {
				return count
			}
			count++
		}
		return count
	}
	return runeIdx(start), runeIdx(end)
}
