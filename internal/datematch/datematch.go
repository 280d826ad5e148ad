// Package datematch implements the calendar-date matcher: substrings
// that parse as a day/month/year (or year/month/day) date, with or
// without separators, rejecting combinations that aren't real calendar
// dates.
//
// The specification has no teacher equivalent for this component (the
// teacher validates passwords, it never parses dates out of them); the
// scan structure — enumerate candidate substring lengths, validate,
// score — follows the same self-contained-checker idiom the teacher
// uses throughout internal/patterns.
package datematch

import (
	"strconv"

	"github.com/jmartin-dev/zxcvbn/internal/match"
)

// minLen and maxLen bound the substring lengths considered, separators
// included: at least 4 characters (dmyy with no separators) and at most
// 8 (ddmmyyyy without separators, or d/m/yyyy and dd/mm/yy with them).
// A fully separated dd/mm/yyyy is 10 characters and is not scanned whole.
const (
	minLen = 4
	maxLen = 8
)

// separators are characters allowed between date components.
var separators = map[byte]bool{'/': true, '-': true, '.': true, ' ': true}

// Matcher finds calendar-date substrings.
type Matcher struct{}

// NewMatcher builds a datematch Matcher.
func NewMatcher() *Matcher { return &Matcher{} }

// Match scans every substring of password of length minLen..maxLen and
// reports one for each that parses as a valid calendar date.
func (m *Matcher) Match(password string) []match.Match {
	runes := []rune(password)
	n := len(runes)
	var out []match.Match
	seen := make(map[string]bool)

	for length := minLen; length <= maxLen && length <= n; length++ {
		for i := 0; i+length <= n; i++ {
			token := string(runes[i : i+length])
			d, data, ok := parseDate(token)
			if !ok {
				continue
			}
			key := strconv.Itoa(i) + ":" + strconv.Itoa(i+length-1)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, match.Match{
				I:           i,
				J:           i + length - 1,
				Token:       token,
				Pattern:     match.Date,
				Cardinality: d,
				Entropy:     match.Log2(d),
				DateData:    data,
			})
		}
	}
	return out
}

// dateCardinality mirrors zxcvbn's guess-space size for a date:
// 12 months * 31 days * a 119-year span of plausible years, with a
// separator multiplying by the (small) number of plausible separators.
const (
	numMonths         = 12
	numDays           = 31
	numYears          = 119
	numSeparatorGuess = 4
)

// parseDate attempts every separator/ordering combination for token and
// returns the cardinality and parsed components on the first valid
// calendar date found.
func parseDate(token string) (float64, *match.DateData, bool) {
	hasSep, sepLen := detectSeparator(token)
	digits := stripSeparators(token)
	if len(digits) < 4 || len(digits) > 8 {
		return 0, nil, false
	}

	for _, layout := range digitLayouts(len(digits)) {
		day, month, year, fourDigitYear, ok := layout.parse(digits)
		if !ok || !validCalendarDate(day, month, year) {
			continue
		}
		card := float64(numDays * numMonths * numYears)
		if hasSep {
			card *= numSeparatorGuess
		}
		_ = sepLen
		return card, &match.DateData{
			Day:           day,
			Month:         month,
			Year:          year,
			HasSeparator:  hasSep,
			FourDigitYear: fourDigitYear,
		}, true
	}
	return 0, nil, false
}

func detectSeparator(token string) (bool, int) {
	for i := 0; i < len(token); i++ {
		if separators[token[i]] {
			return true, 1
		}
	}
	return false, 0
}

func stripSeparators(token string) string {
	out := make([]byte, 0, len(token))
	for i := 0; i < len(token); i++ {
		if !separators[token[i]] {
			out = append(out, token[i])
		}
	}
	return string(out)
}

// fieldLayout describes how an all-digit string splits into
// day/month/year fields.
type fieldLayout struct {
	dLen, mLen, yLen int
	yearFirst        bool
}

// digitLayouts returns the candidate field splits for a digit string of
// the given length: dd+mm+yy, dd+mm+yyyy, yyyy+mm+dd, and single-digit
// day/month variants.
func digitLayouts(n int) []fieldLayout {
	var layouts []fieldLayout
	for _, dLen := range []int{1, 2} {
		for _, mLen := range []int{1, 2} {
			for _, yLen := range []int{2, 4} {
				if dLen+mLen+yLen == n {
					layouts = append(layouts, fieldLayout{dLen, mLen, yLen, false})
					layouts = append(layouts, fieldLayout{dLen, mLen, yLen, true})
				}
			}
		}
	}
	return layouts
}

func (f fieldLayout) parse(digits string) (day, month, year int, fourDigitYear bool, ok bool) {
	var dayStr, monthStr, yearStr string
	if f.yearFirst {
		if len(digits) != f.yLen+f.mLen+f.dLen {
			return 0, 0, 0, false, false
		}
		yearStr = digits[:f.yLen]
		monthStr = digits[f.yLen : f.yLen+f.mLen]
		dayStr = digits[f.yLen+f.mLen:]
	} else {
		if len(digits) != f.dLen+f.mLen+f.yLen {
			return 0, 0, 0, false, false
		}
		dayStr = digits[:f.dLen]
		monthStr = digits[f.dLen : f.dLen+f.mLen]
		yearStr = digits[f.dLen+f.mLen:]
	}

	d, err1 := strconv.Atoi(dayStr)
	mo, err2 := strconv.Atoi(monthStr)
	y, err3 := strconv.Atoi(yearStr)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false, false
	}
	if f.yLen == 2 {
		y = normalizeTwoDigitYear(y)
	}
	return d, mo, y, f.yLen == 4, true
}

// normalizeTwoDigitYear maps a 2-digit year to a 4-digit one the way a
// human would read it: 00-49 -> 2000-2049, 50-99 -> 1950-1999.
func normalizeTwoDigitYear(y int) int {
	if y < 50 {
		return 2000 + y
	}
	return 1900 + y
}

// validCalendarDate rejects impossible day/month/year combinations and
// implausible years.
func validCalendarDate(day, month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 {
		return false
	}
	if year < 1900 || year > 2019 {
		return false
	}
	return day <= daysInMonth(month, year)
}

func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
