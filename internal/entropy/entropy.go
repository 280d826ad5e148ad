// Package entropy implements the scoring primitives shared by every
// matcher and by the minimum-entropy coverage search: brute-force
// alphabet sizing, entropy-to-crack-time conversion, crack-time-to-score
// mapping, binomial coefficients, and the uppercase-entropy bonus used by
// the dictionary and leetspeak matchers.
//
// All of it operates on bits of entropy, defined as log2(guesses): the
// number of attempts an attacker needs, expressed in bits of uncertainty.
package entropy

import "math"

// Character class sizes used by [Cardinality]. Symbol is the count of
// printable ASCII symbols outside letters and digits: the ranges
// 0x20-0x2F, 0x3A-0x40, 0x5B-0x60, 0x7B-0x7E (33 characters).
const (
	PoolLower  = 26
	PoolUpper  = 26
	PoolDigit  = 10
	PoolSymbol = 33
)

// UnicodeCount and ASCIICount define the bonus added to the cardinality
// estimate for every password containing at least one codepoint beyond
// the ASCII range, modeling the much larger Unicode guess space without
// attempting to size it precisely per-character.
const (
	UnicodeCount = 120672
	ASCIICount   = 128
	unicodeBonus = UnicodeCount - ASCIICount
)

// secondsPerGuess and attackers are the fixed adversary model: 100 attackers each
// guessing at 100 guesses/sec (0.01s per guess), matching the
// entropy_to_crack_time formula in the specification.
const (
	secondsPerGuess = 0.01
	attackers       = 100
)

// Cardinality sums the sizes of every character class present in p, plus
// a large bonus for any non-ASCII codepoint. An empty password has
// cardinality 0.
func Cardinality(p string) float64 {
	if p == "" {
		return 0
	}

	var hasLower, hasUpper, hasDigit, hasSymbol, hasUnicode bool
	for _, r := range p {
		switch {
		case r > 0x7F:
			hasUnicode = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case isSymbol(r):
			hasSymbol = true
		}
	}

	var c float64
	if hasLower {
		c += PoolLower
	}
	if hasUpper {
		c += PoolUpper
	}
	if hasDigit {
		c += PoolDigit
	}
	if hasSymbol {
		c += PoolSymbol
	}
	if hasUnicode {
		c += unicodeBonus
	}
	return c
}

// isSymbol reports whether r falls in one of the four printable-ASCII
// symbol ranges counted toward PoolSymbol.
func isSymbol(r rune) bool {
	switch {
	case r >= 0x20 && r <= 0x2F:
		return true
	case r >= 0x3A && r <= 0x40:
		return true
	case r >= 0x5B && r <= 0x60:
		return true
	case r >= 0x7B && r <= 0x7E:
		return true
	}
	return false
}

// EntropyToCrackTime converts bits of entropy into an estimated crack
// time in seconds, under a fixed guesses-per-second adversary model: a
// single guess costs 0.01s, amortized across 100 simultaneous attackers,
// and on average only half the keyspace must be searched.
func EntropyToCrackTime(bits float64) float64 {
	guesses := math.Exp2(bits)
	return 0.5 * guesses * (secondsPerGuess / attackers)
}

// Score thresholds, in seconds, each offset by +7 so that a crack time
// landing exactly on a power of ten falls unambiguously into the lower
// band rather than tripping a floating-point boundary comparison.
var scoreThresholds = []float64{
	1e3 + 7,
	1e6 + 7,
	1e8 + 7,
	1e10 + 7,
	1e11 + 7,
	1e12 + 7,
	1e13 + 7,
}

// CrackTimeToScore maps a crack time in seconds to an integer score on a
// 0..6 ordinal scale using the thresholds above: crack times at or beyond
// the last threshold still cap out at the top score rather than
// overflowing to a 7th band.
func CrackTimeToScore(seconds float64) int {
	for i, threshold := range scoreThresholds {
		if seconds < threshold {
			return i
		}
	}
	return len(scoreThresholds) - 1
}

// Binomial computes nCk using the iterative multiplicative identity
// r ← r·n/d, d = 1..k. Returns 0 when k > n or either argument is
// negative, and 1 when k == 0.
func Binomial(n, k int) float64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	r := 1.0
	for d := 1; d <= k; d++ {
		r *= float64(n-d+1) / float64(d)
	}
	return r
}

// UppercaseEntropy computes the extra bits of entropy contributed by a
// word's capitalization pattern.
//
//   - 0 bits if the word has no uppercase letters.
//   - 1 bit if the word's only uppercase letter is its first or its last
//     character, or every letter in the word is uppercase.
//   - Otherwise log2(Σ_{i=0..min(U,L)} C(U+L, i)), where U and L are the
//     counts of uppercase and lowercase letters in the word.
func UppercaseEntropy(word string) float64 {
	runes := []rune(word)
	var upper, lower int
	for _, r := range runes {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		}
	}
	if upper == 0 {
		return 0
	}

	allUpper := lower == 0
	firstUpper := len(runes) > 0 && runes[0] >= 'A' && runes[0] <= 'Z'
	lastUpper := len(runes) > 0 && runes[len(runes)-1] >= 'A' && runes[len(runes)-1] <= 'Z'
	onlyEndpoint := upper == 1 && (firstUpper || lastUpper)

	if allUpper || onlyEndpoint {
		return 1
	}

	minUL := upper
	if lower < minUL {
		minUL = lower
	}
	var sum float64
	for i := 0; i <= minUL; i++ {
		sum += Binomial(upper+lower, i)
	}
	if sum <= 0 {
		return 0
	}
	return math.Log2(sum)
}
