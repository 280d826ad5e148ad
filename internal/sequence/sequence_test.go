package sequence

import "testing"

func TestMatchAscending(t *testing.T) {
	m := NewMatcher()
	matches := m.Match("abcd")
	found := false
	for _, mm := range matches {
		if mm.Token == "abcd" && mm.SequenceData.Step == 1 {
			found = true
			if !mm.SequenceData.Ascending {
				t.Error("expected Ascending true for step 1")
			}
		}
	}
	if !found {
		t.Errorf("expected an ascending match for \"abcd\", got %+v", matches)
	}
}

func TestMatchDescendingPaysEntropyPenalty(t *testing.T) {
	m := NewMatcher()
	asc := m.Match("abcd")
	desc := m.Match("dcba")
	var ascEntropy, descEntropy float64
	for _, mm := range asc {
		if mm.Token == "abcd" {
			ascEntropy = mm.Entropy
		}
	}
	for _, mm := range desc {
		if mm.Token == "dcba" {
			descEntropy = mm.Entropy
		}
	}
	if descEntropy <= ascEntropy {
		t.Errorf("expected descending entropy (%v) > ascending entropy (%v)", descEntropy, ascEntropy)
	}
}

func TestMatchSkipsShortRuns(t *testing.T) {
	m := NewMatcher()
	if matches := m.Match("ab"); len(matches) != 0 {
		t.Errorf("expected no matches below MinRunLength, got %+v", matches)
	}
}

func TestMatchStepTwo(t *testing.T) {
	m := NewMatcher()
	matches := m.Match("aceg")
	found := false
	for _, mm := range matches {
		if mm.Token == "aceg" && mm.SequenceData.Step == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a step-2 match for \"aceg\", got %+v", matches)
	}
}

func TestSequenceCardinalityDigits(t *testing.T) {
	if got := sequenceCardinality([]rune("1234")); got != 10 {
		t.Errorf("sequenceCardinality(digits) = %v, want 10", got)
	}
}
