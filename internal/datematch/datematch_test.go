package datematch

import "testing"

func TestMatchWithSeparator(t *testing.T) {
	m := NewMatcher()
	matches := m.Match("see you 11/19/1999 ok")
	found := false
	for _, mm := range matches {
		if mm.DateData.Year == 1999 && mm.DateData.HasSeparator {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a date match for 11/19/1999, got %+v", matches)
	}
}

func TestMatchWithoutSeparator(t *testing.T) {
	m := NewMatcher()
	matches := m.Match("x19991231x")
	found := false
	for _, mm := range matches {
		if mm.Token == "19991231" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a date match for 19991231, got %+v", matches)
	}
}

func TestValidCalendarDateRejectsImpossibleDates(t *testing.T) {
	if validCalendarDate(30, 2, 1999) {
		t.Error("Feb 30 should not be a valid date")
	}
	if validCalendarDate(29, 2, 1999) {
		t.Error("Feb 29 1999 should not be valid (not a leap year)")
	}
	if !validCalendarDate(29, 2, 2000) {
		t.Error("Feb 29 2000 should be valid (leap year)")
	}
}

func TestNormalizeTwoDigitYear(t *testing.T) {
	if got := normalizeTwoDigitYear(99); got != 1999 {
		t.Errorf("normalizeTwoDigitYear(99) = %d, want 1999", got)
	}
	if got := normalizeTwoDigitYear(5); got != 2005 {
		t.Errorf("normalizeTwoDigitYear(5) = %d, want 2005", got)
	}
}

func TestMatchRejectsNonDate(t *testing.T) {
	m := NewMatcher()
	if matches := m.Match("xyzw"); len(matches) != 0 {
		t.Errorf("expected no matches for non-digit input, got %+v", matches)
	}
}
