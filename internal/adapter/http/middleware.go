package httpadapter

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// AdminKeyHeader carries the reporting key. The platform's admin UI injects
// it server-side; it never reaches browsers.
const AdminKeyHeader = "X-Admin-Key"

// requireAdmin gates the reporting routes. The presented key is compared in
// constant time against the configured one; an empty configured key fails
// closed.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(AdminKeyHeader)
		if h.cfg.AdminKey == "" || key == "" ||
			subtle.ConstantTimeCompare([]byte(key), []byte(h.cfg.AdminKey)) != 1 {
			h.logger.Warn("rejected non-admin reporting request",
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))
			h.writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rateLimit applies the shared fixed-window limiter per client IP. A nil
// limiter disables the check; a limiter failure lets the request through so
// a Redis outage cannot take down delivery.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		ip := clientIP(r)
		ok, err := h.limiter.Allow(r.Context(), ip)
		if err != nil {
			h.logger.Warn("rate limiter unavailable", slog.Any("error", err))
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			h.metrics.RecordRateLimitHit()
			w.Header().Set("Retry-After", "1")
			h.writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the caller address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
