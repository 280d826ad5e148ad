package zxcvbn

import (
	"fmt"
	"strings"
)

// Options configures a password evaluation.
//
// Grounded on the teacher's Config (config.go): a plain struct with a
// DefaultOptions constructor and a Validate method, rather than
// functional options — the teacher's repo never uses the functional
// options pattern, so neither does this one.
type Options struct {
	// UserInputs are strings the attacker is assumed to know (names,
	// emails, birth years, site name, ...). They are folded into a
	// per-evaluation dictionary ranked in the order given (the first
	// entry is rank 1, the cheapest possible match), on top of the
	// Factory's default wordlists.
	UserInputs []string

	// Translation is a locale tag (e.g. "en", "pt-BR") the caller intends
	// to render [Result.Warning] and [Result.Suggestions] into. It is
	// opaque to this package — the core only emits enum-like tags per
	// spec §6 — and is carried on Options purely so a caller's rendering
	// layer can be threaded through the same configuration value as
	// everything else.
	Translation string
}

// DefaultOptions returns the zero-configuration Options: no user inputs,
// no locale tag.
func DefaultOptions() Options {
	return Options{}
}

// Validate reports the first problem found with o, or nil. Translation is
// checked only for the coarse BCP-47 shape (hyphen-separated alphanumeric
// segments) since its
// meaning is opaque to this package.
func (o Options) Validate() error {
	for _, s := range o.UserInputs {
		if s == "" {
			return fmt.Errorf("zxcvbn: user input entries must not be empty")
		}
	}
	if o.Translation != "" && !looksLikeLocaleTag(o.Translation) {
		return fmt.Errorf("zxcvbn: translation %q does not look like a locale tag", o.Translation)
	}
	return nil
}

// looksLikeLocaleTag reports whether s is shaped like a BCP-47 language
// tag: one or more hyphen-separated alphanumeric segments.
func looksLikeLocaleTag(s string) bool {
	for _, segment := range strings.Split(s, "-") {
		if segment == "" {
			return false
		}
		for _, r := range segment {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				return false
			}
		}
	}
	return true
}
