package spatial

import (
	"github.com/jmartin-dev/zxcvbn/internal/entropy"
	"github.com/jmartin-dev/zxcvbn/internal/match"
)

// MinRunLength is the shortest adjacency run this matcher reports.
// Shorter runs are common enough in ordinary text to be noise.
const MinRunLength = 3

// Matcher scans a password against a fixed set of keyboard graphs.
type Matcher struct {
	Graphs []*Graph
}

// NewMatcher builds a Matcher over graphs, defaulting to [All] when none
// are given.
func NewMatcher(graphs ...*Graph) *Matcher {
	if len(graphs) == 0 {
		graphs = All
	}
	return &Matcher{Graphs: graphs}
}

// Match finds every maximal adjacency run of length >= MinRunLength in
// password, for every configured graph.
func (m *Matcher) Match(password string) []match.Match {
	runes := []rune(password)
	var out []match.Match
	for _, g := range m.Graphs {
		out = append(out, scanGraph(g, runes)...)
	}
	return out
}

// scanGraph finds every maximal run in runes where each character is
// adjacent (in g) to the previous one.
func scanGraph(g *Graph, runes []rune) []match.Match {
	var out []match.Match
	n := len(runes)
	i := 0
	for i < n {
		j := i
		turns := 0
		prevSlot := -1
		shifted := 0
		if g.Shifted[runes[i]] {
			shifted++
		}
		for j+1 < n {
			slot, ok := g.slotTo(runes[j], runes[j+1])
			if !ok {
				break
			}
			if slot != prevSlot {
				turns++
				prevSlot = slot
			}
			j++
			if g.Shifted[runes[j]] {
				shifted++
			}
		}
		length := j - i + 1
		if length >= MinRunLength {
			token := string(runes[i : j+1])
			out = append(out, buildMatch(g, i, j, token, turns, shifted, length))
		}
		if j == i {
			i++
		} else {
			i = j + 1
		}
	}
	return out
}

func buildMatch(g *Graph, i, j int, token string, turns, shifted, length int) match.Match {
	ent := runEntropy(g, turns, shifted, length)
	return match.Match{
		I:           i,
		J:           j,
		Token:       token,
		Pattern:     match.Spatial,
		Cardinality: float64(g.Size),
		Entropy:     ent,
		SpatialData: &match.SpatialData{
			GraphName:    g.Name,
			Turns:        turns,
			ShiftedCount: shifted,
		},
	}
}

// runEntropy combines log2(S · D · L) — possible start positions, average
// degree, and run length — with a turn-combination term and shifted-key
// bits, per the keyboard-pattern entropy model.
func runEntropy(g *Graph, turns, shifted, length int) float64 {
	if turns < 1 {
		turns = 1
	}
	base := match.Log2(float64(g.Size)) + match.Log2(g.AvgDegree) + match.Log2(float64(length))

	var turnSum float64
	for t := 1; t <= turns; t++ {
		term := entropy.Binomial(length-1, t-1)
		if t > 1 {
			term *= pow(float64(turns-1), t-1)
		}
		turnSum += term
	}
	turnEntropy := match.Log2(turnSum)

	return base + turnEntropy + shiftedEntropy(shifted, length)
}

// shiftedEntropy charges the combinatorial cost of knowing which of the
// length characters were typed with shift held, mirroring the uppercase
// bonus used for dictionary words.
func shiftedEntropy(shiftedCount, length int) float64 {
	if shiftedCount == 0 {
		return 0
	}
	if shiftedCount == length {
		return 1
	}
	unshifted := length - shiftedCount
	minSU := shiftedCount
	if unshifted < minSU {
		minSU = unshifted
	}
	var sum float64
	for i := 0; i <= minSU; i++ {
		sum += entropy.Binomial(length, i)
	}
	return match.Log2(sum)
}

func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
