package zxcvbn

import (
	"github.com/jmartin-dev/zxcvbn/internal/dictionary"
	"github.com/jmartin-dev/zxcvbn/internal/spatial"
	"github.com/jmartin-dev/zxcvbn/internal/wordlists"
)

// Factory owns the matcher-factory state shared, read-only, across every
// evaluation built from it: the ranked wordlists and the keyboard graphs.
// Construction cost (building rank maps) is paid once; [Evaluator]s built
// from the same Factory share it by reference.
//
// Grounded on the teacher's package-level default dictionaries
// (internal/dictionary/passwords.go, words.go), generalized into an
// explicit, constructible type so a caller can supply their own lists
// instead of only the package defaults.
type Factory struct {
	lists  []*dictionary.List
	graphs []*spatial.Graph
}

// NewFactory builds a Factory over the given named wordlists (name -> rank-
// ordered words) and keyboard graphs. A nil/empty graphs list defaults to
// [spatial.All] (qwerty, dvorak, keypad, mac keypad).
func NewFactory(dictionaries map[string][]string, graphs ...*spatial.Graph) *Factory {
	f := &Factory{graphs: graphs}
	for name, words := range dictionaries {
		f.lists = append(f.lists, dictionary.NewList(name, words))
	}
	if len(f.graphs) == 0 {
		f.graphs = spatial.All
	}
	return f
}

// DefaultFactory builds the Factory used by [MatchPassword]: the five
// default dictionaries (passwords, english, male_names, female_names,
// surnames) from internal/wordlists, and every default keyboard graph.
//
// The shipped lists are small, illustrative defaults, not the full
// embedded corpus a production deployment would load from a resource
// bundle — that loading step is an external collaborator per spec §1.
func DefaultFactory() *Factory {
	return NewFactory(map[string][]string{
		"passwords":    wordlists.Passwords,
		"english":      wordlists.English,
		"male_names":   wordlists.MaleNames,
		"female_names": wordlists.FemaleNames,
		"surnames":     wordlists.Surnames,
	})
}

var defaultFactory = DefaultFactory()
