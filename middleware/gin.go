//go:build gin

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmartin-dev/zxcvbn"
)

// Gin returns a Gin middleware that evaluates the request password's
// strength. Build with -tags=gin to enable. Password is extracted from
// form or JSON body using Config.PasswordField (default "password").
//
//	r.POST("/register", middleware.Gin(middleware.Config{MinScore: 3}), registerHandler)
func Gin(cfg Config) gin.HandlerFunc {
	def := DefaultConfig()
	if cfg.PasswordField == "" {
		cfg.PasswordField = def.PasswordField
	}
	if cfg.MinScore == 0 {
		cfg.MinScore = def.MinScore
	}
	extractor := DefaultHTTPExtractor(cfg)
	return func(c *gin.Context) {
		password, err := extractor.ExtractPassword(c.Request)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			c.Abort()
			return
		}
		if password == "" {
			if cfg.SkipIfEmpty {
				c.Next()
				return
			}
			c.JSON(http.StatusBadRequest, weakBody("password is required", zxcvbn.Result{}))
			c.Abort()
			return
		}
		result := evaluate(password, cfg)
		if result.Score < cfg.MinScore {
			if cfg.OnFailure != nil {
				_ = cfg.OnFailure(result)
			}
			c.JSON(http.StatusBadRequest, weakBody("password does not meet strength requirements", result))
			c.Abort()
			return
		}
		c.Next()
	}
}
