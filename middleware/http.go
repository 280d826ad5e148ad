package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jmartin-dev/zxcvbn"
)

// DefaultHTTPExtractor extracts the password from an *http.Request by checking
// (1) JSON body for Content-Type application/json, and (2) form value.
// The request body is read once and restored so the next handler can read it.
// The password field name is taken from Config.PasswordField.
func DefaultHTTPExtractor(cfg Config) Extractor {
	return &httpExtractor{field: cfg.PasswordField}
}

type httpExtractor struct {
	field string
}

func (e *httpExtractor) ExtractPassword(req interface{}) (string, error) {
	r, ok := req.(*http.Request)
	if !ok {
		return "", nil
	}
	// Prefer JSON if Content-Type is application/json (e.g. application/json; charset=utf-8).
	if strings.HasPrefix(strings.TrimSpace(r.Header.Get("Content-Type")), "application/json") {
		return e.extractJSON(r)
	}
	// Form (including multipart).
	return e.extractForm(r), nil
}

func (e *httpExtractor) extractForm(r *http.Request) string {
	return r.FormValue(e.field)
}

func (e *httpExtractor) extractJSON(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", nil
	}
	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		return "", err
	}
	// Restore body for the next handler.
	r.Body = io.NopCloser(bytes.NewReader(body))

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", err
	}
	if v, ok := raw[e.field]; ok {
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return "", nil
}

// HTTP returns a net/http middleware that evaluates the request password's
// strength using zxcvbn. If the password is missing (and SkipIfEmpty is
// false), or scores below MinScore, the middleware responds with 400 and
// does not call next. Otherwise it calls next.ServeHTTP.
//
// Password is extracted from the request using the default extractor
// (form value and JSON body; see [DefaultHTTPExtractor]). Use a custom
// [Config] to set PasswordField, MinScore, or Options.
func HTTP(cfg Config, next http.Handler) http.Handler {
	def := DefaultConfig()
	if cfg.PasswordField == "" {
		cfg.PasswordField = def.PasswordField
	}
	if cfg.MinScore == 0 {
		cfg.MinScore = def.MinScore
	}
	extractor := DefaultHTTPExtractor(cfg)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		password, err := extractor.ExtractPassword(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if password == "" {
			if cfg.SkipIfEmpty {
				next.ServeHTTP(w, r)
				return
			}
			writeJSON(w, http.StatusBadRequest, weakBody("password is required", zxcvbn.Result{}))
			return
		}
		result := evaluate(password, cfg)
		if result.Score < cfg.MinScore {
			if cfg.OnFailure != nil {
				_ = cfg.OnFailure(result)
			}
			writeJSON(w, http.StatusBadRequest, weakBody("password does not meet strength requirements", result))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeJSON writes body as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
