package matching

import (
	"testing"

	"github.com/jmartin-dev/zxcvbn/internal/dictionary"
	"github.com/jmartin-dev/zxcvbn/internal/match"
)

func TestOrchestratorUnionsAllMatchers(t *testing.T) {
	dm := dictionary.NewMatcher(dictionary.NewList("passwords", []string{"password"}))
	o := New(dm)
	matches := o.Match("password1999qwerty")

	patterns := make(map[match.Pattern]bool)
	for _, m := range matches {
		patterns[m.Pattern] = true
	}
	if !patterns[match.Dictionary] {
		t.Error("expected a dictionary match")
	}
	if !patterns[match.Regex] {
		t.Error("expected a regex match (digits/recent year)")
	}
	if !patterns[match.Spatial] {
		t.Error("expected a spatial match (qwerty)")
	}
}

func TestOrchestratorEmptyPassword(t *testing.T) {
	dm := dictionary.NewMatcher(dictionary.NewList("passwords", []string{"password"}))
	o := New(dm)
	if matches := o.Match(""); len(matches) != 0 {
		t.Errorf("expected no matches for empty password, got %+v", matches)
	}
}
