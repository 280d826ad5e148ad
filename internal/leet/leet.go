// Package leet implements the leetspeak-substitution matcher: it
// enumerates plausible character substitutions, re-runs the dictionary
// matcher on each translated string, and attributes the extra
// combinatorial entropy a reader familiar with l33t would discount.
//
// Substitution table format is grounded on the teacher's internal/leet
// package (a rune→rune map), generalized here to a rune→[]rune map since
// a single leet character can stand in for more than one normal letter
// (e.g. '1' for both 'i' and 'l').
package leet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmartin-dev/zxcvbn/internal/dictionary"
	"github.com/jmartin-dev/zxcvbn/internal/entropy"
	"github.com/jmartin-dev/zxcvbn/internal/match"
)

// Table maps a normal letter to the leetspeak characters that can stand
// in for it.
var Table = map[rune][]rune{
	'a': {'4', '@'},
	'b': {'8'},
	'c': {'(', '{', '[', '<'},
	'e': {'3'},
	'g': {'6', '9'},
	'i': {'1', '!', '|'},
	'l': {'1', '|', '7'},
	'o': {'0'},
	's': {'$', '5'},
	't': {'+', '7'},
	'x': {'%'},
	'z': {'2'},
}

// Matcher runs the dictionary matcher over every leet-substitution
// variant of the password.
type Matcher struct {
	Dictionary *dictionary.Matcher
}

// NewMatcher builds a leet Matcher wrapping the given dictionary matcher.
func NewMatcher(dm *dictionary.Matcher) *Matcher {
	return &Matcher{Dictionary: dm}
}

// Match implements the algorithm in spec §4c:
//  1. Restrict Table to rows whose leet characters actually appear in p.
//  2. Enumerate substitution dictionaries: one normal letter per leet
//     character, with a Cartesian product over collision points (a leet
//     character reachable from more than one normal letter).
//  3. For each substitution dictionary, translate p and run the
//     dictionary matcher; keep token = original p[i..=j] (unsubstituted).
//  4. Keep only matches whose token contains at least one leet character
//     from that dictionary.
//  5. Recompute entropy per spec §4c.
func (m *Matcher) Match(password string) []match.Match {
	subs := relevantSubs(password)
	if len(subs) == 0 {
		return nil
	}

	pwRunes := []rune(password)
	var out []match.Match
	seen := make(map[string]bool) // dedupe identical (i,j,dictName,subs) results across dictionaries
	for _, dict := range enumerateDictionaries(subs) {
		translated := translate(password, dict)
		for _, mm := range m.Dictionary.Match(translated) {
			if mm.Pattern != match.Dictionary {
				continue
			}
			originalToken := string(pwRunes[mm.I : mm.J+1])
			usedSubs := usedSubstitutions(originalToken, dict)
			if len(usedSubs) == 0 {
				continue // token doesn't actually contain a leet character from this dictionary
			}
			key := dedupeKey(mm.I, mm.J, mm.DictionaryData.DictionaryName, usedSubs)
			if seen[key] {
				continue
			}
			seen[key] = true

			l33tEntropy := computeL33tEntropy(originalToken, usedSubs)
			upper := entropy.UppercaseEntropy(originalToken)
			total := mm.DictionaryData.BaseEntropy + upper + l33tEntropy

			out = append(out, match.Match{
				I:           mm.I,
				J:           mm.J,
				Token:       originalToken,
				Pattern:     match.L33tDictionary,
				Cardinality: mm.Cardinality,
				Entropy:     total,
				L33tData: &match.L33tData{
					DictionaryData: &match.DictionaryData{
						DictionaryName:   mm.DictionaryData.DictionaryName,
						MatchedWord:      mm.DictionaryData.MatchedWord,
						Rank:             mm.DictionaryData.Rank,
						BaseEntropy:      mm.DictionaryData.BaseEntropy,
						UppercaseEntropy: upper,
					},
					Subs:        usedSubs,
					L33tEntropy: l33tEntropy,
				},
			})
		}
	}
	return out
}

// relevantSubs restricts Table to the leet characters that actually
// appear in p, mapping each to the normal letters it could stand for.
func relevantSubs(p string) map[rune][]rune {
	present := make(map[rune]bool)
	for _, r := range p {
		present[r] = true
	}
	relevant := make(map[rune][]rune) // leet char -> candidate normal letters
	for normal, leetChars := range Table {
		for _, lc := range leetChars {
			if present[lc] {
				relevant[lc] = append(relevant[lc], normal)
			}
		}
	}
	return relevant
}

// enumerateDictionaries returns every substitution dictionary (leet
// rune -> normal rune) formed by picking exactly one normal letter per
// leet character, taking the Cartesian product over leet characters that
// could map to more than one normal letter (collision points).
//
// This deliberately does not try mixed-role interpretations of a single
// occurrence within one dictionary: each leet character maps to exactly
// one normal letter for the whole translation pass.
func enumerateDictionaries(relevant map[rune][]rune) []map[rune]rune {
	leetChars := make([]rune, 0, len(relevant))
	for lc := range relevant {
		leetChars = append(leetChars, lc)
	}
	sort.Slice(leetChars, func(i, j int) bool { return leetChars[i] < leetChars[j] })

	dicts := []map[rune]rune{{}}
	for _, lc := range leetChars {
		var next []map[rune]rune
		for _, normal := range relevant[lc] {
			for _, base := range dicts {
				d := make(map[rune]rune, len(base)+1)
				for k, v := range base {
					d[k] = v
				}
				d[lc] = normal
				next = append(next, d)
			}
		}
		dicts = next
	}
	return dicts
}

// translate replaces every rune in p present in dict's keys with its
// mapped normal letter.
func translate(p string, dict map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(p))
	for _, r := range p {
		if repl, ok := dict[r]; ok {
			b.WriteRune(repl)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// usedSubstitutions returns the subset of dict whose leet character
// actually occurs in token, i.e. the substitutions this specific match
// exercised.
func usedSubstitutions(token string, dict map[rune]rune) map[rune]rune {
	used := make(map[rune]rune)
	for _, r := range token {
		if normal, ok := dict[r]; ok {
			used[r] = normal
		}
	}
	return used
}

// computeL33tEntropy implements spec §4c step 5:
//
//	l33t_entropy = log2( Σ_{i=0..min(S,U)} C(S+U, i) )
//
// per substitution pair, summed over all pairs in subs, where S is the
// count of subbed characters in the token and U is the count of unsubbed
// instances of the target normal letter in the (unsubstituted) token.
// Clamped to a minimum of 1 bit.
func computeL33tEntropy(token string, subs map[rune]rune) float64 {
	runes := []rune(token)
	var total float64
	for leetChar, normal := range subs {
		s := countRune(runes, leetChar)
		u := countRune(runes, normal)
		minSU := s
		if u < minSU {
			minSU = u
		}
		var sum float64
		for i := 0; i <= minSU; i++ {
			sum += entropy.Binomial(s+u, i)
		}
		if sum > 0 {
			total += match.Log2(sum)
		}
	}
	if total < 1 {
		total = 1
	}
	return total
}

func countRune(runes []rune, target rune) int {
	n := 0
	for _, r := range runes {
		if r == target {
			n++
		}
	}
	return n
}

func dedupeKey(i, j int, dictName string, subs map[rune]rune) string {
	keys := make([]rune, 0, len(subs))
	for k := range subs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d:%s:", i, j, dictName)
	for _, k := range keys {
		b.WriteRune(k)
		b.WriteRune(subs[k])
	}
	return b.String()
}
