package api

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rs/xid"
	"golang.org/x/time/rate"
)

// authMiddleware validates API token and IP restrictions
func authMiddleware(token string, trustedIPs []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			if len(trustedIPs) > 0 {
				clientIP := getClientIP(r)
				if !isIPAllowed(clientIP, trustedIPs) {
					respondJSON(w, http.StatusForbidden, ErrorResponse{Error: "forbidden: IP not allowed", Kind: kindAuth})
					return
				}
			}

			if token != "" {
				authHeader := r.Header.Get("Authorization")
				if authHeader == "" {
					respondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized: missing token", Kind: kindAuth})
					return
				}
				if strings.TrimPrefix(authHeader, "Bearer ") != token {
					respondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized: invalid token", Kind: kindAuth})
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitMiddleware shares one token bucket across all API clients.
// A nil limiter lets everything through.
func rateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				respondJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "too many requests", Kind: kindRateLimit})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// loggingMiddleware logs HTTP requests and attaches a request logger to the
// request context.
func loggingMiddleware(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := xid.New().String()
			w.Header().Set("X-Request-Id", reqID)

			reqLogger := logger.With("request", reqID)
			r = r.WithContext(log.WithContext(r.Context(), reqLogger))

			wrapper := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapper, r)

			reqLogger.Infof("%s %s %d %s", r.Method, r.URL.Path, wrapper.statusCode, time.Since(start))
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// getClientIP extracts the real client IP from the request
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port
		return r.RemoteAddr
	}
	return ip
}

// isIPAllowed checks if the client IP is in the allowed list. Entries may be
// plain addresses, CIDR ranges or "*".
func isIPAllowed(clientIP string, allowedIPs []string) bool {
	ip := net.ParseIP(clientIP)
	for _, allowedIP := range allowedIPs {
		if clientIP == allowedIP || allowedIP == "*" {
			return true
		}
		if !strings.Contains(allowedIP, "/") || ip == nil {
			continue
		}
		_, ipNet, err := net.ParseCIDR(allowedIP)
		if err != nil {
			continue
		}
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}
