package server

import (
	"net/http"
	"strings"
)

// DefaultMaxBodyBytes bounds the size of a shift request body. A maximal
// request is a 128 digit hex literal plus a shift amount.
const DefaultMaxBodyBytes = 4 << 10

// SecurityConfig controls the headers and limits applied to every request.
type SecurityConfig struct {
	// EnableCORS toggles the Access-Control-* response headers.
	EnableCORS bool
	// AllowedOrigins lists the origins allowed by CORS; "*" allows any.
	AllowedOrigins []string
	// AllowedMethods lists the methods advertised to CORS clients.
	AllowedMethods []string
	// MaxBodyBytes caps request bodies read by the shift handler.
	MaxBodyBytes int64
}

// DefaultSecurityConfig returns a permissive CORS setup suitable for a
// local service.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		MaxBodyBytes:   DefaultMaxBodyBytes,
	}
}

// SecurityMiddleware sets the standard security headers, applies CORS and
// answers preflight requests without calling next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	methods := strings.Join(config.AllowedMethods, ", ")

	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin, ok := allowedOrigin(config.AllowedOrigins, r.Header.Get("Origin")); ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", methods)
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// allowedOrigin returns the value for Access-Control-Allow-Origin.
func allowedOrigin(allowed []string, origin string) (string, bool) {
	for _, a := range allowed {
		if a == "*" {
			return "*", true
		}
		if origin != "" && a == origin {
			return origin, true
		}
	}
	return "", false
}
