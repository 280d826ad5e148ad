// Package match defines the common contract every pattern matcher
// returns: a tagged union of a shared header (span, token, pattern tag,
// cardinality, entropy) plus an optional pattern-specific payload.
//
// The coverage DP and the gap-filler only ever touch the header; the
// feedback deriver inspects the payload once a pattern is chosen.
package match

import "math"

// Pattern identifies which matcher produced a Match.
type Pattern string

const (
	Dictionary     Pattern = "dictionary"
	L33tDictionary Pattern = "l33t-dictionary"
	Spatial        Pattern = "spatial"
	Repeat         Pattern = "repeat"
	Sequence       Pattern = "sequence"
	Regex          Pattern = "regex"
	Date           Pattern = "date"
	BruteForce     Pattern = "bruteforce"
)

// Match is the common record produced by every matcher. I and J are
// inclusive 0-based rune indices into the original password; Token is
// password[I..=J]. Exactly one of the payload fields below is non-nil,
// selected by Pattern (BruteForce matches carry no payload).
type Match struct {
	I, J        int
	Token       string
	Pattern     Pattern
	Cardinality float64
	Entropy     float64

	DictionaryData *DictionaryData
	L33tData       *L33tData
	SpatialData    *SpatialData
	RepeatData     *RepeatData
	SequenceData   *SequenceData
	DateData       *DateData
	RegexData      *RegexData
}

// DictionaryData carries the fields specific to a dictionary match.
type DictionaryData struct {
	DictionaryName   string
	MatchedWord      string // normalized lower-case
	Rank             int    // 1-based position in the list
	BaseEntropy      float64
	UppercaseEntropy float64
}

// L33tData extends a dictionary match with the substitutions exercised
// and the extra entropy they contribute.
type L33tData struct {
	DictionaryData *DictionaryData
	Subs           map[rune]rune // leet rune -> normal rune, as used by Token
	L33tEntropy    float64
}

// SpatialData carries the fields specific to a keyboard-adjacency match.
type SpatialData struct {
	GraphName    string
	Turns        int
	ShiftedCount int
}

// RepeatData carries the fields specific to a single-character-repeat match.
type RepeatData struct {
	RepeatedChar rune
}

// SequenceData carries the fields specific to an arithmetic-progression match.
type SequenceData struct {
	Step      int
	Ascending bool
}

// DateData carries the fields specific to a calendar-date match.
type DateData struct {
	Day, Month, Year int
	HasSeparator     bool
	FourDigitYear    bool
}

// RegexData carries the fields specific to a fixed-cardinality regex match.
type RegexData struct {
	Name string
}

// NewBruteForce builds a synthetic gap-filling match covering
// password[i..=j] at the given per-character cardinality, charging
// length · log2(cardinality) bits.
func NewBruteForce(i, j int, token string, cardinality float64) Match {
	length := j - i + 1
	return Match{
		I:           i,
		J:           j,
		Token:       token,
		Pattern:     BruteForce,
		Cardinality: cardinality,
		Entropy:     float64(length) * log2(cardinality),
	}
}

// log2 returns math.Log2(x), treating x<=0 as contributing zero entropy
// (a zero-cardinality brute-force span should never be constructed, but
// this keeps the helper total).
func log2(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log2(x)
}

// Log2 is the exported form of log2, used by matchers outside this
// package that need the same zero-safe behavior when deriving entropy
// from a cardinality.
func Log2(x float64) float64 { return log2(x) }
