package leet

import (
	"testing"

	"github.com/jmartin-dev/zxcvbn/internal/dictionary"
)

func newTestMatcher() *Matcher {
	dm := dictionary.NewMatcher(dictionary.NewList("passwords", []string{"password", "123456"}))
	return NewMatcher(dm)
}

// ---------------------------------------------------------------------------
// Cartesian product over collision points
// ---------------------------------------------------------------------------

func TestEnumerateDictionariesCartesianProduct(t *testing.T) {
	// '1' is reachable from both 'i' and 'l' in Table.
	relevant := map[rune][]rune{'1': {'i', 'l'}}
	dicts := enumerateDictionaries(relevant)
	if len(dicts) != 2 {
		t.Fatalf("expected 2 candidate dictionaries for a single collision point, got %d", len(dicts))
	}
	seen := map[rune]bool{}
	for _, d := range dicts {
		seen[d['1']] = true
	}
	if !seen['i'] || !seen['l'] {
		t.Errorf("expected dictionaries mapping '1'->'i' and '1'->'l', got %+v", dicts)
	}
}

func TestLlkeProducesTwoTranslationsNotMixed(t *testing.T) {
	// "||ke" -> candidate translations "llke" ('|'->'l') and "iike"
	// ('|'->'i'), never the mixed per-occurrence interpretation "like"
	// within a single dictionary.
	dm := dictionary.NewMatcher(dictionary.NewList("words", []string{"like", "llke", "iike"}))
	m := NewMatcher(dm)
	matches := m.Match("||ke")
	if len(matches) == 0 {
		t.Fatal("expected at least one l33t match for \"||ke\"")
	}
	seen := map[string]bool{}
	for _, mm := range matches {
		word := mm.L33tData.DictionaryData.MatchedWord
		seen[word] = true
		if word != "llke" && word != "iike" {
			t.Errorf("unexpected matched word %q (mixed-role translation leaked through)", word)
		}
	}
	if !seen["llke"] || !seen["iike"] {
		t.Errorf("expected matches for both \"llke\" and \"iike\", got %+v", matches)
	}
}

// ---------------------------------------------------------------------------
// Match
// ---------------------------------------------------------------------------

func TestMatchRequiresLeetCharacterInToken(t *testing.T) {
	m := newTestMatcher()
	// Plain "password" contains no leet characters — the dictionary
	// matcher alone should report it, not the leet matcher.
	matches := m.Match("password")
	if len(matches) != 0 {
		t.Errorf("expected no l33t matches for a password with no leet chars, got %+v", matches)
	}
}

func TestMatchPAtSsword(t *testing.T) {
	m := newTestMatcher()
	matches := m.Match("p@ssword")
	if len(matches) == 0 {
		t.Fatal("expected a l33t match for p@ssword")
	}
	found := false
	for _, mm := range matches {
		if mm.Token == "p@ssword" {
			found = true
			if mm.L33tData.L33tEntropy < 1 {
				t.Errorf("l33t entropy should be clamped to >= 1, got %v", mm.L33tData.L33tEntropy)
			}
			if _, ok := mm.L33tData.Subs['@']; !ok {
				t.Errorf("expected '@' in subs, got %+v", mm.L33tData.Subs)
			}
		}
	}
	if !found {
		t.Errorf("expected a match with token 'p@ssword', got %+v", matches)
	}
}

func TestMatchEntropyAtLeastBaseEntropy(t *testing.T) {
	m := newTestMatcher()
	matches := m.Match("p@ssword")
	for _, mm := range matches {
		if mm.Entropy < mm.L33tData.DictionaryData.BaseEntropy {
			t.Errorf("total entropy %v should be >= base entropy %v", mm.Entropy, mm.L33tData.DictionaryData.BaseEntropy)
		}
	}
}
