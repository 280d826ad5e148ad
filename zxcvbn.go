// Package zxcvbn estimates password strength the way zxcvbn does: it
// decomposes a password into the lowest-entropy sequence of recognized
// weakness patterns (dictionary words, leetspeak variants, keyboard walks,
// repeats, sequences, dates, fixed-format regex matches) plus brute-force
// fill for whatever is left over, then derives a crack-time estimate, a
// 0-6 ordinal score, and feedback tags from that decomposition.
//
// Use [MatchPassword] for a one-shot check against the default wordlists
// and keyboard graphs. Build a reusable [Evaluator] over a [Factory] when
// evaluating many passwords, so the wordlists' rank maps are built once
// and shared.
//
// Grounded on the teacher's top-level passcheck.go: a package-level
// convenience function (Check) wrapping a configurable entry point
// (CheckWithConfig), here split instead into a one-shot function
// (MatchPassword) and a reusable type (Evaluator) per spec §6, since the
// spec explicitly calls for both shapes.
package zxcvbn

import (
	"time"

	"github.com/jmartin-dev/zxcvbn/internal/coverage"
	"github.com/jmartin-dev/zxcvbn/internal/dictionary"
	"github.com/jmartin-dev/zxcvbn/internal/entropy"
	"github.com/jmartin-dev/zxcvbn/internal/feedback"
	"github.com/jmartin-dev/zxcvbn/internal/matching"
)

// MaxPasswordLength is the maximum number of runes analyzed by a single
// evaluation. Longer inputs are truncated before matching to bound the
// O(N²·|dictionaries|) matcher phase and O(N·|M|) coverage DP, per spec
// §5's note that the caller (here, this package's API boundary) is
// expected to cap password length rather than the core evaluation loop.
//
// Grounded on the teacher's MaxPasswordLength / truncate (passcheck.go).
const MaxPasswordLength = 1024

// Evaluator runs repeated evaluations against one [Factory]. Safe for
// concurrent use: the Factory it wraps is immutable, and every call to
// [Evaluator.Evaluate] builds and discards its own per-evaluation state.
type Evaluator struct {
	factory *Factory
}

// NewEvaluator builds an Evaluator over factory.
func NewEvaluator(factory *Factory) *Evaluator {
	return &Evaluator{factory: factory}
}

// Evaluate runs the full matcher → coverage-DP → scoring → feedback
// pipeline over password and returns a [Result]. Returns an error only
// when opts fails [Options.Validate] — the evaluation itself is total,
// per spec §7.
func (e *Evaluator) Evaluate(password string, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	start := time.Now()

	pw := truncate(password)

	lists := append([]*dictionary.List(nil), e.factory.lists...)
	if len(opts.UserInputs) > 0 {
		lists = append(lists, dictionary.NewList("user_inputs", opts.UserInputs))
	}
	dictMatcher := &dictionary.Matcher{Lists: lists}

	orchestrator := matching.New(dictMatcher, e.factory.graphs...)
	matches := orchestrator.Match(pw)

	cardinality := entropy.Cardinality(pw)
	cov := coverage.Solve(pw, cardinality, matches)

	crackTime := entropy.EntropyToCrackTime(cov.Entropy)
	score := entropy.CrackTimeToScore(crackTime)
	fb := feedback.Derive(cov.Sequence, score)

	return Result{
		Entropy:          cov.Entropy,
		CrackTimeSeconds: crackTime,
		Score:            score,
		MatchSequence:    cov.Sequence,
		Warning:          fb.Warning,
		Suggestions:      fb.Suggestions,
		CalcTimeMS:       float64(time.Since(start).Microseconds()) / 1000,
	}, nil
}

// MatchPassword is the one-shot entry point: it evaluates password
// against the package's shared default [Factory] (built once from the
// small default wordlists plus every default keyboard graph), with userInputs
// folded in as a per-evaluation dictionary. Empty strings in userInputs
// are dropped rather than rejected, so this function is always total —
// matching spec §7 and the teacher's Check()/DefaultConfig() convenience
// pairing.
func MatchPassword(password string, userInputs []string) Result {
	opts := Options{UserInputs: nonEmpty(userInputs)}
	result, _ := NewEvaluator(defaultFactory).Evaluate(password, opts)
	return result
}

// truncate caps password at [MaxPasswordLength] runes.
func truncate(password string) string {
	runes := []rune(password)
	if len(runes) <= MaxPasswordLength {
		return password
	}
	return string(runes[:MaxPasswordLength])
}

// nonEmpty returns ss with empty strings removed, or nil if nothing
// remains.
func nonEmpty(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
