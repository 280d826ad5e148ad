// Package middleware provides HTTP middleware for password strength
// estimation using zxcvbn. It supports net/http and optional adapters for
// Echo, Gin, Fiber, and Chi. Use [Config] to set the minimum acceptable
// score, password extraction, and failure handling.
//
// # net/http (zero additional dependencies)
//
//	http.Handle("/register", middleware.HTTP(middleware.Config{
//	    MinScore:      3,
//	    PasswordField: "password",
//	}, registrationHandler))
//
// # Chi (net/http compatible)
//
//	r.Use(middleware.Chi(middleware.Config{MinScore: 3}))
//
// # Echo, Gin, Fiber (optional)
//
// Adapters are in build-tagged files. To use them, add the framework
// dependency and build with the tag, for example:
//
//	go get github.com/labstack/echo/v4
//	go build -tags=echo ./...
//
// Then use middleware.Echo(cfg), middleware.Gin(cfg), or middleware.Fiber(cfg).
//
// Adapted from the teacher's password-*policy* middleware (reject/allow
// against a 0-100 passcheck score) into password-*strength* middleware:
// the same three framework adapters and the same net/http core, now
// running zxcvbn's 0-6 score and Warning/Suggestion feedback instead of
// passcheck's Issues.
package middleware

import (
	"github.com/jmartin-dev/zxcvbn"
)

// Config configures the password strength middleware.
//
// Use [DefaultConfig] for sensible defaults, then override as needed.
type Config struct {
	// MinScore is the minimum zxcvbn score (0-6) required to allow the
	// request. If the password scores below this, the middleware rejects
	// with HTTP 400. Default: 3 ("Strong" per spec §8's crack-time bands).
	MinScore int

	// PasswordField is the name of the form or JSON field containing the
	// password. Used by the default extractor for form and JSON body.
	// Default: "password".
	PasswordField string

	// OnFailure is an optional hook called when the password fails the
	// minimum score. It receives the full evaluation result; the
	// middleware still writes the 400 response. Use for logging, metrics,
	// or custom side effects. Default: nil.
	OnFailure func(result zxcvbn.Result) error

	// SkipIfEmpty, when true, skips evaluation when the extracted
	// password is empty and calls the next handler (useful for optional
	// password fields). When false, an empty password is treated as a
	// failed check. Default: false.
	SkipIfEmpty bool

	// Options is the [zxcvbn.Options] used for evaluation (user inputs,
	// translation tag). If its
	// UserInputs is set, the request's other known fields (e.g. the
	// extracted username) are good candidates to pass through here.
	Options zxcvbn.Options
}

// DefaultConfig returns a config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MinScore:      3,
		PasswordField: "password",
		OnFailure:     nil,
		SkipIfEmpty:   false,
		Options:       zxcvbn.DefaultOptions(),
	}
}

// defaultEvaluator is the shared, read-only [zxcvbn.Evaluator] every
// adapter evaluates against. Building it once amortizes the default
// [zxcvbn.Factory]'s wordlist rank-map construction across requests,
// mirroring the teacher's package-level default dictionaries being built
// once rather than per-request.
var defaultEvaluator = zxcvbn.NewEvaluator(zxcvbn.DefaultFactory())

// evaluate runs cfg.Options through the shared evaluator, falling back to
// [zxcvbn.DefaultOptions] if cfg.Options fails validation (mirroring the
// teacher's CheckWithConfig fallback-to-default-on-bad-config shape).
func evaluate(password string, cfg Config) zxcvbn.Result {
	opts := cfg.Options
	if err := opts.Validate(); err != nil {
		opts = zxcvbn.DefaultOptions()
	}
	result, _ := defaultEvaluator.Evaluate(password, opts)
	return result
}

// Extractor extracts a password from an incoming request.
// The default HTTP middleware uses an extractor that checks form values
// and JSON body (see [DefaultHTTPExtractor]). Framework adapters use
// their own extraction logic.
type Extractor interface {
	// ExtractPassword returns the password from the request, or ("", nil) if none.
	// The request type is framework-specific (*http.Request for net/http).
	ExtractPassword(req interface{}) (string, error)
}

// weakPasswordBody is the JSON body written for a rejected password.
type weakPasswordBody struct {
	Error       string   `json:"error"`
	Score       int      `json:"score"`
	Warning     string   `json:"warning,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func weakBody(message string, result zxcvbn.Result) weakPasswordBody {
	suggestions := make([]string, 0, len(result.Suggestions))
	for _, s := range result.Suggestions {
		suggestions = append(suggestions, string(s))
	}
	return weakPasswordBody{
		Error:       message,
		Score:       result.Score,
		Warning:     string(result.Warning),
		Suggestions: suggestions,
	}
}
