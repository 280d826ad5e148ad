// Package coverage implements the minimum-entropy dynamic program that
// turns the flat set of candidate matches into the optimal decomposition
// of the password: the lowest-total-entropy sequence of matches (with
// brute-force gap fill) that covers the password end to end.
//
// This has no teacher equivalent — the teacher validates passwords
// against independent rules and never needs an optimal-parsing DP. It is
// a classic shortest-path/optimal-parsing recurrence, written in the
// same unadorned, single-purpose-function style the teacher uses for
// its own checkers: no higher abstraction than the data requires.
package coverage

import "github.com/jmartin-dev/zxcvbn/internal/match"

// Result is the password's optimal decomposition: the chosen matches,
// gap-filled with synthetic brute-force spans so they cover the whole
// password contiguously, plus the total entropy of that covering.
type Result struct {
	Sequence []match.Match
	Entropy  float64
}

// Solve runs the DP described in the package doc over candidates, given
// the password and its per-character brute-force cardinality.
func Solve(password string, cardinality float64, candidates []match.Match) Result {
	runes := []rune(password)
	n := len(runes)
	if n == 0 {
		return Result{Entropy: 0}
	}

	b := match.Log2(cardinality)

	byEnd := make([][]match.Match, n)
	for _, m := range candidates {
		if m.J >= 0 && m.J < n {
			byEnd[m.J] = append(byEnd[m.J], m)
		}
	}

	e := make([]float64, n)
	best := make([]*match.Match, n)

	e[0] = b
	for _, m := range byEnd[0] {
		if m.I == 0 && m.Entropy < e[0] {
			mm := m
			e[0] = m.Entropy
			best[0] = &mm
		}
	}

	for k := 1; k < n; k++ {
		e[k] = e[k-1] + b
		for _, m := range byEnd[k] {
			var prior float64
			if m.I > 0 {
				prior = e[m.I-1]
			}
			cand := prior + m.Entropy
			if cand < e[k] {
				mm := m
				e[k] = cand
				best[k] = &mm
			}
		}
	}

	chosen := backtrack(n, best)
	sequence := fillGaps(runes, cardinality, chosen)
	return Result{Sequence: sequence, Entropy: e[n-1]}
}

// backtrack recovers the chosen matches from N-1 down to 0, jumping to
// best[k].i-1 when a match was chosen at k, else to k-1. Returned in
// password order.
func backtrack(n int, best []*match.Match) []match.Match {
	var chosen []match.Match
	k := n - 1
	for k >= 0 {
		if best[k] != nil {
			chosen = append(chosen, *best[k])
			k = best[k].I - 1
		} else {
			k--
		}
	}
	for l, r := 0, len(chosen)-1; l < r; l, r = l+1, r-1 {
		chosen[l], chosen[r] = chosen[r], chosen[l]
	}
	return chosen
}

// fillGaps inserts a synthetic brute-force match for every maximal
// uncovered span, including any prefix before the first chosen match and
// suffix after the last, so the result contiguously covers [0, len(runes)-1].
func fillGaps(runes []rune, cardinality float64, chosen []match.Match) []match.Match {
	n := len(runes)
	var out []match.Match
	cursor := 0
	for _, m := range chosen {
		if m.I > cursor {
			out = append(out, bruteForceSpan(runes, cursor, m.I-1, cardinality))
		}
		out = append(out, m)
		cursor = m.J + 1
	}
	if cursor < n {
		out = append(out, bruteForceSpan(runes, cursor, n-1, cardinality))
	}
	return out
}

func bruteForceSpan(runes []rune, i, j int, cardinality float64) match.Match {
	return match.NewBruteForce(i, j, string(runes[i:j+1]), cardinality)
}
