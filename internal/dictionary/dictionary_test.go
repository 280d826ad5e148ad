package dictionary

import (
	"math"
	"testing"
)

// ---------------------------------------------------------------------------
// List / Rank
// ---------------------------------------------------------------------------

func TestListRank(t *testing.T) {
	l := NewList("passwords", []string{"password", "123456", "qwerty"})

	tests := []struct {
		word     string
		wantRank int
		wantOK   bool
	}{
		{"password", 1, true},
		{"123456", 2, true},
		{"qwerty", 3, true},
		{"nope", 0, false},
	}
	for _, tt := range tests {
		rank, ok := l.Rank(tt.word)
		if ok != tt.wantOK || (ok && rank != tt.wantRank) {
			t.Errorf("Rank(%q) = (%d, %v), want (%d, %v)", tt.word, rank, ok, tt.wantRank, tt.wantOK)
		}
	}
}

// ---------------------------------------------------------------------------
// Matcher
// ---------------------------------------------------------------------------

func TestMatcherExactMatchRankOne(t *testing.T) {
	m := NewMatcher(NewList("passwords", []string{"password", "123456"}))
	matches := m.Match("password")

	var found bool
	for _, mm := range matches {
		if mm.Token == "password" && mm.DictionaryData.Rank == 1 {
			found = true
			if mm.DictionaryData.BaseEntropy != 0 {
				t.Errorf("expected base entropy 0 for rank 1, got %v", mm.DictionaryData.BaseEntropy)
			}
		}
	}
	if !found {
		t.Fatalf("expected an exact dictionary match for 'password', got %+v", matches)
	}
}

func TestMatcherCaseInsensitive(t *testing.T) {
	m := NewMatcher(NewList("passwords", []string{"password"}))
	matches := m.Match("PASSWORD")
	if len(matches) == 0 {
		t.Fatal("expected case-insensitive match")
	}
	if matches[0].Token != "PASSWORD" {
		t.Errorf("token should preserve original casing, got %q", matches[0].Token)
	}
}

func TestMatcherOverlappingSubstrings(t *testing.T) {
	m := NewMatcher(NewList("words", []string{"ab", "abc", "bc"}))
	matches := m.Match("abc")
	if len(matches) != 3 {
		t.Fatalf("expected 3 overlapping matches (ab, abc, bc), got %d: %+v", len(matches), matches)
	}
}

func TestMatcherEmptyPassword(t *testing.T) {
	m := NewMatcher(NewList("passwords", []string{"password"}))
	if got := m.Match(""); got != nil {
		t.Errorf("expected nil for empty password, got %+v", got)
	}
}

func TestMatcherBaseEntropyIsLog2Rank(t *testing.T) {
	m := NewMatcher(NewList("passwords", []string{"a", "b", "c", "d"}))
	matches := m.Match("d")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	want := math.Log2(4)
	if math.Abs(matches[0].DictionaryData.BaseEntropy-want) > 1e-9 {
		t.Errorf("base entropy = %v, want %v", matches[0].DictionaryData.BaseEntropy, want)
	}
}
