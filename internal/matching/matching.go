// Package matching orchestrates every pattern matcher over a password
// and unions their results into one slice, which the coverage package
// turns into an optimal covering sequence.
//
// Grounded on the teacher's passcheck.go top-level Check function, which
// runs a fixed sequence of independent checkers (rules, patterns,
// dictionary, ...) and concatenates their issues; here each "checker" is
// a pattern matcher returning [match.Match] values instead of issues.
package matching

import (
	"github.com/jmartin-dev/zxcvbn/internal/datematch"
	"github.com/jmartin-dev/zxcvbn/internal/dictionary"
	"github.com/jmartin-dev/zxcvbn/internal/leet"
	"github.com/jmartin-dev/zxcvbn/internal/match"
	"github.com/jmartin-dev/zxcvbn/internal/regexmatch"
	"github.com/jmartin-dev/zxcvbn/internal/repeat"
	"github.com/jmartin-dev/zxcvbn/internal/sequence"
	"github.com/jmartin-dev/zxcvbn/internal/spatial"
)

// Matcher is anything that finds pattern matches in a password.
type Matcher interface {
	Match(password string) []match.Match
}

// Orchestrator runs a fixed list of matchers and unions their results.
type Orchestrator struct {
	matchers []Matcher
}

// New builds an Orchestrator wired with every matcher: dictionary, l33t,
// spatial, repeat, sequence, regex, and date, in that order.
func New(dictionaries *dictionary.Matcher, graphs ...*spatial.Graph) *Orchestrator {
	return &Orchestrator{
		matchers: []Matcher{
			dictionaries,
			leet.NewMatcher(dictionaries),
			spatial.NewMatcher(graphs...),
			repeat.NewMatcher(),
			sequence.NewMatcher(),
			regexmatch.NewMatcher(),
			datematch.NewMatcher(),
		},
	}
}

// Match runs every matcher over password and returns the union of all
// matches found, in no particular order (the caller sorts as needed).
func (o *Orchestrator) Match(password string) []match.Match {
	var all []match.Match
	for _, m := range o.matchers {
		all = append(all, m.Match(password)...)
	}
	return all
}
