package zxcvbn

import (
	"github.com/jmartin-dev/zxcvbn/internal/feedback"
	"github.com/jmartin-dev/zxcvbn/internal/match"
)

// Result holds the outcome of a password strength evaluation.
//
// Grounded on the teacher's Result (passcheck.go): a flat struct with a
// numeric score plus structured feedback, substituting the teacher's
// 0-100 score/Issues pair for zxcvbn's 0-6 score/Warning+Suggestions
// model.
type Result struct {
	// Entropy is the total estimated entropy of the password in bits:
	// the sum of MatchSequence's per-match entropy.
	Entropy float64 `json:"entropy"`

	// CrackTimeSeconds is the estimated offline crack time in seconds
	// for an attacker at the assumed guess rate.
	CrackTimeSeconds float64 `json:"crack_time_seconds"`

	// CrackTimeDisplay is left for a caller to render (e.g.
	// "3 hours", "centuries") — this core only computes the underlying
	// seconds figure; human-friendly formatting is a presentation
	// concern outside the estimator's hard core.
	CrackTimeDisplay string `json:"crack_time_display,omitempty"`

	// Score is an integer strength rating from 0 (weakest) to 6 (strongest).
	Score int `json:"score"`

	// MatchSequence is the optimal, contiguous decomposition of the
	// password chosen by the coverage DP.
	MatchSequence []match.Match `json:"match_sequence"`

	// Warning is the single most relevant weakness tag for the password,
	// or WarningEmpty/WarningDefault per spec §4h.
	Warning feedback.Warning `json:"warning"`

	// Suggestions is an ordered list of actionable improvement tags.
	Suggestions []feedback.Suggestion `json:"suggestions"`

	// CalcTimeMS is how long, in milliseconds, this evaluation took to
	// compute. Excluded from the idempotence guarantee: every other
	// field is identical across repeated evaluations of the same input,
	// this one may vary run to run.
	CalcTimeMS float64 `json:"calc_time_ms"`
}
