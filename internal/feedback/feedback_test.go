package feedback

import (
	"testing"

	"github.com/jmartin-dev/zxcvbn/internal/match"
)

func TestDeriveEmptySequence(t *testing.T) {
	r := Derive(nil, 0)
	if r.Warning != WarningDefault || len(r.Suggestions) != 1 || r.Suggestions[0] != SuggestionDefault {
		t.Errorf("unexpected result for empty sequence: %+v", r)
	}
}

func TestDeriveHighScoreSuppressesFeedback(t *testing.T) {
	seq := []match.Match{{I: 0, J: 3, Token: "abcd", Pattern: match.Sequence, SequenceData: &match.SequenceData{}}}
	r := Derive(seq, 3)
	if r.Warning != WarningEmpty || len(r.Suggestions) != 1 || r.Suggestions[0] != SuggestionEmpty {
		t.Errorf("unexpected result for score > 2: %+v", r)
	}
}

func TestDeriveSpatialStraightRow(t *testing.T) {
	seq := []match.Match{{I: 0, J: 4, Token: "qwert", Pattern: match.Spatial, SpatialData: &match.SpatialData{Turns: 1}}}
	r := Derive(seq, 1)
	if r.Warning != WarningStraightRow {
		t.Errorf("expected StraightRow, got %v", r.Warning)
	}
	if r.Suggestions[0] != SuggestionAddAnotherWordOrTwo {
		t.Errorf("expected AddAnotherWordOrTwo prepended, got %+v", r.Suggestions)
	}
}

func TestDerivePasswordsTop10SoleMatch(t *testing.T) {
	seq := []match.Match{{
		I: 0, J: 7, Token: "password", Pattern: match.Dictionary,
		DictionaryData: &match.DictionaryData{DictionaryName: "passwords", Rank: 1},
	}}
	r := Derive(seq, 0)
	if r.Warning != WarningTop10Passwords {
		t.Errorf("expected Top10Passwords, got %v", r.Warning)
	}
}

func TestDeriveNamesSoleVsMultiple(t *testing.T) {
	sole := []match.Match{{
		I: 0, J: 4, Token: "smith", Pattern: match.Dictionary,
		DictionaryData: &match.DictionaryData{DictionaryName: "surnames", Rank: 1},
	}}
	r := Derive(sole, 0)
	if r.Warning != WarningNameSurnamesEasy {
		t.Errorf("expected NameSurnamesEasy for sole match, got %v", r.Warning)
	}

	multi := []match.Match{
		{I: 0, J: 4, Token: "smith", Pattern: match.Dictionary,
			DictionaryData: &match.DictionaryData{DictionaryName: "surnames", Rank: 1}},
		{I: 5, J: 7, Token: "123", Pattern: match.BruteForce},
	}
	r2 := Derive(multi, 0)
	if r2.Warning != WarningCommonNameSurnamesEasy {
		t.Errorf("expected CommonNameSurnamesEasy for multi-match, got %v", r2.Warning)
	}
}

func TestDeriveL33tAddsPredictableSubstitutionSuggestion(t *testing.T) {
	seq := []match.Match{{
		I: 0, J: 7, Token: "p@ssword", Pattern: match.L33tDictionary,
		L33tData: &match.L33tData{
			DictionaryData: &match.DictionaryData{DictionaryName: "passwords", Rank: 1},
		},
	}}
	r := Derive(seq, 0)
	found := false
	for _, s := range r.Suggestions {
		if s == SuggestionPredictableSubstitutionsEasy {
			found = true
		}
	}
	if !found {
		t.Errorf("expected PredictableSubstitutionsEasy suggestion, got %+v", r.Suggestions)
	}
}

func TestDeriveAllCapsSuggestion(t *testing.T) {
	seq := []match.Match{{
		I: 0, J: 4, Token: "HELLO", Pattern: match.Dictionary,
		DictionaryData: &match.DictionaryData{DictionaryName: "english", Rank: 1},
	}}
	r := Derive(seq, 0)
	hasCaps, hasAllCaps := false, false
	for _, s := range r.Suggestions {
		if s == SuggestionCapsDontHelp {
			hasCaps = true
		}
		if s == SuggestionAllCapsEasy {
			hasAllCaps = true
		}
	}
	if !hasCaps || !hasAllCaps {
		t.Errorf("expected both CapsDontHelp and AllCapsEasy, got %+v", r.Suggestions)
	}
}
