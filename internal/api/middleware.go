package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/yelinaung/expense-tracker/internal/logger"
	"gitlab.com/yelinaung/expense-tracker/internal/service"
)

// DefaultAuthHeader is the header an auth proxy such as oauth2-proxy sets.
const DefaultAuthHeader = "X-Forwarded-Email"

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityFromContext retrieves the caller set by requireIdentity.
func IdentityFromContext(ctx context.Context) (service.Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(service.Identity)
	return id, ok
}

// requireIdentity rejects requests without the identity header and stores
// the caller in the request context.
func (s *Server) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.Header.Get(s.authHeader))
		if email == "" {
			writeError(w, r, service.ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, service.Identity{Email: email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// loggingMiddleware logs one line per request. Client errors log at warn and
// server errors at error.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		var event *zerolog.Event
		switch {
		case rec.status >= http.StatusInternalServerError:
			event = logger.Log.Error()
		case rec.status >= http.StatusBadRequest:
			event = logger.Log.Warn()
		default:
			event = logger.Log.Info()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	})
}

// recoverMiddleware turns a handler panic into a 500.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Log.Error().
					Interface("panic", rec).
					Str("path", r.URL.Path).
					Msg("Recovered from handler panic")
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
