package spatial

import "testing"

func TestQwertyAdjacency(t *testing.T) {
	cases := []struct {
		a, b rune
		want bool
	}{
		{'q', 'w', true},
		{'q', 'a', true},
		{'q', 's', true},
		{'q', 'p', false},
		{'a', 'z', true},
		{'1', '!', true}, // shift pair shares physical key
	}
	for _, c := range cases {
		if got := QWERTY.Adjacent(c.a, c.b); got != c.want {
			t.Errorf("QWERTY.Adjacent(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestKeypadVerticalAdjacency(t *testing.T) {
	if !Keypad.Adjacent('7', '4') {
		t.Error("expected '7' adjacent to '4' on keypad (same column, stacked rows)")
	}
	if !Keypad.Adjacent('4', '1') {
		t.Error("expected '4' adjacent to '1' on keypad")
	}
	if Keypad.Adjacent('7', '1') {
		t.Error("'7' and '1' are not directly adjacent on keypad")
	}
}

func TestScanGraphStraightRowHasOneTurn(t *testing.T) {
	runes := []rune("qwert")
	matches := scanGraph(QWERTY, runes)
	if len(matches) == 0 {
		t.Fatal("expected a match for \"qwert\" on qwerty")
	}
	found := false
	for _, m := range matches {
		if m.Token == "qwert" {
			found = true
			if m.SpatialData.Turns != 1 {
				t.Errorf("expected 1 turn for a straight row run, got %d", m.SpatialData.Turns)
			}
		}
	}
	if !found {
		t.Errorf("expected a match with token \"qwert\", got %+v", matches)
	}
}

func TestScanGraphSkipsRunsBelowMinLength(t *testing.T) {
	runes := []rune("qw")
	matches := scanGraph(QWERTY, runes)
	if len(matches) != 0 {
		t.Errorf("expected no matches below MinRunLength, got %+v", matches)
	}
}

func TestMatchAcrossGraphs(t *testing.T) {
	m := NewMatcher()
	matches := m.Match("qwerty")
	if len(matches) == 0 {
		t.Fatal("expected at least one spatial match for \"qwerty\"")
	}
	for _, mm := range matches {
		if mm.SpatialData == nil {
			t.Errorf("expected SpatialData to be set, got %+v", mm)
		}
		if mm.Entropy <= 0 {
			t.Errorf("expected positive entropy, got %v", mm.Entropy)
		}
	}
}

func TestShiftedEntropyZeroWhenNoShiftedChars(t *testing.T) {
	if got := shiftedEntropy(0, 5); got != 0 {
		t.Errorf("shiftedEntropy(0, 5) = %v, want 0", got)
	}
}

func TestShiftedEntropyOneBitWhenAllShifted(t *testing.T) {
	if got := shiftedEntropy(4, 4); got != 1 {
		t.Errorf("shiftedEntropy(4, 4) = %v, want 1", got)
	}
}
