// Package feedback derives a warning and a list of suggestions from a
// password's chosen match sequence and score.
//
// Grounded on the teacher's internal/feedback package for shape (a
// small set of enum-like tags rather than free-form prose, picked by
// inspecting the analysis result) though the teacher refines a set of
// already-generated issue messages by dedup/severity, while this
// derives its tags directly from the single longest match in the
// covering sequence, per the specification.
package feedback

import (
	"unicode"

	"github.com/jmartin-dev/zxcvbn/internal/entropy"
	"github.com/jmartin-dev/zxcvbn/internal/match"
)

// Warning is a single cautionary tag about the password's weakness.
type Warning string

// Suggestion is a single actionable tag recommending an improvement.
type Suggestion string

const (
	WarningEmpty                  Warning = ""
	WarningDefault                Warning = "Default"
	WarningStraightRow            Warning = "StraightRow"
	WarningShortKeyboardPatterns  Warning = "ShortKeyboardPatterns"
	WarningRepeatsLikeAaaEasy     Warning = "RepeatsLikeAaaEasy"
	WarningSequenceAbcEasy        Warning = "SequenceAbcEasy"
	WarningDatesEasy              Warning = "DatesEasy"
	WarningTop10Passwords         Warning = "Top10Passwords"
	WarningTop100Passwords        Warning = "Top100Passwords"
	WarningCommonPasswords        Warning = "CommonPasswords"
	WarningSimilarCommonPasswords Warning = "SimilarCommonPasswords"
	WarningWordEasy               Warning = "WordEasy"
	WarningNameSurnamesEasy       Warning = "NameSurnamesEasy"
	WarningCommonNameSurnamesEasy Warning = "CommonNameSurnamesEasy"
)

const (
	SuggestionEmpty                        Suggestion = ""
	SuggestionDefault                      Suggestion = "Default"
	SuggestionAddAnotherWordOrTwo          Suggestion = "AddAnotherWordOrTwo"
	SuggestionUseLongerKeyboardPattern     Suggestion = "UseLongerKeyboardPattern"
	SuggestionAvoidRepeatedWordsAndChars   Suggestion = "AvoidRepeatedWordsAndChars"
	SuggestionAvoidSequences               Suggestion = "AvoidSequences"
	SuggestionAvoidDatesYearsAssociatedYou Suggestion = "AvoidDatesYearsAssociatedYou"
	SuggestionCapsDontHelp                 Suggestion = "CapsDontHelp"
	SuggestionAllCapsEasy                  Suggestion = "AllCapsEasy"
	SuggestionPredictableSubstitutionsEasy Suggestion = "PredictableSubstitutionsEasy"
)

// Result is the derived feedback: one warning plus an ordered list of
// suggestions.
type Result struct {
	Warning     Warning
	Suggestions []Suggestion
}

// Derive implements spec §4h:
//   - an empty match sequence gets the default warning and suggestion;
//   - a score above 2 gets no feedback at all;
//   - otherwise, feedback is derived from the longest match (by token
//     length) in the sequence, with AddAnotherWordOrTwo always prepended.
func Derive(sequence []match.Match, score int) Result {
	if len(sequence) == 0 {
		return Result{Warning: WarningDefault, Suggestions: []Suggestion{SuggestionDefault}}
	}
	if score > 2 {
		return Result{Warning: WarningEmpty, Suggestions: []Suggestion{SuggestionEmpty}}
	}

	longest := longestMatch(sequence)
	warning, suggestions := fromPattern(longest, len(sequence) == 1)
	suggestions = append([]Suggestion{SuggestionAddAnotherWordOrTwo}, suggestions...)
	return Result{Warning: warning, Suggestions: suggestions}
}

// longestMatch returns the match with the longest token in sequence,
// keeping the first one found on a tie.
func longestMatch(sequence []match.Match) match.Match {
	best := sequence[0]
	for _, m := range sequence[1:] {
		if len(m.Token) > len(best.Token) {
			best = m
		}
	}
	return best
}

func fromPattern(m match.Match, soleMatch bool) (Warning, []Suggestion) {
	switch m.Pattern {
	case match.Spatial:
		if m.SpatialData.Turns == 1 {
			return WarningStraightRow, []Suggestion{SuggestionUseLongerKeyboardPattern}
		}
		return WarningShortKeyboardPatterns, []Suggestion{SuggestionUseLongerKeyboardPattern}

	case match.Repeat:
		return WarningRepeatsLikeAaaEasy, []Suggestion{SuggestionAvoidRepeatedWordsAndChars}

	case match.Sequence:
		return WarningSequenceAbcEasy, []Suggestion{SuggestionAvoidSequences}

	case match.Date:
		return WarningDatesEasy, []Suggestion{SuggestionAvoidDatesYearsAssociatedYou}

	case match.Dictionary, match.L33tDictionary:
		return dictionaryFeedback(m, soleMatch)
	}
	return WarningEmpty, nil
}

// dictionaryFeedback implements spec §4h's per-dictionary-name table. All
// three branches are gated on soleMatch — this match being the only one
// in the chosen sequence — mirroring the teacher's feedback package in
// spirit (pick the single most relevant finding, not a rule per name).
func dictionaryFeedback(m match.Match, soleMatch bool) (Warning, []Suggestion) {
	var dictData *match.DictionaryData
	isL33t := m.Pattern == match.L33tDictionary
	if isL33t {
		dictData = m.L33tData.DictionaryData
	} else {
		dictData = m.DictionaryData
	}

	var warning Warning
	switch dictData.DictionaryName {
	case "passwords":
		switch {
		case soleMatch && !isL33t:
			switch {
			case dictData.Rank <= 10:
				warning = WarningTop10Passwords
			case dictData.Rank <= 100:
				warning = WarningTop100Passwords
			default:
				warning = WarningCommonPasswords
			}
		case crackTimeScore(m) <= 1:
			warning = WarningSimilarCommonPasswords
		default:
			warning = WarningEmpty
		}
	case "english":
		if soleMatch {
			warning = WarningWordEasy
		} else {
			warning = WarningEmpty
		}
	case "surnames", "male_names", "female_names":
		if soleMatch {
			warning = WarningNameSurnamesEasy
		} else {
			warning = WarningCommonNameSurnamesEasy
		}
	default:
		warning = WarningEmpty
	}

	var suggestions []Suggestion
	runes := []rune(m.Token)
	if len(runes) > 0 && unicode.IsUpper(runes[0]) {
		suggestions = append(suggestions, SuggestionCapsDontHelp)
	}
	if isAllCapsWithLetter(runes) {
		suggestions = append(suggestions, SuggestionAllCapsEasy)
	}
	if isL33t {
		suggestions = append(suggestions, SuggestionPredictableSubstitutionsEasy)
	}
	return warning, suggestions
}

func isAllCapsWithLetter(runes []rune) bool {
	hasLetter := false
	for _, r := range runes {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// crackTimeScore is this single match's own crack-time score (as if its
// entropy were the whole password's), used to pick SimilarCommonPasswords
// over the default empty warning for a match against the passwords list
// that is an l33t match or not the sole match.
func crackTimeScore(m match.Match) int {
	return entropy.CrackTimeToScore(entropy.EntropyToCrackTime(m.Entropy))
}
