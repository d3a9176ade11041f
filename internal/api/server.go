// Package api exposes the expense service over HTTP as a JSON API.
package api

import (
	"context"
	"net/http"

	"gitlab.com/yelinaung/expense-tracker/internal/service"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server routes HTTP requests to the expense service.
type Server struct {
	svc        *service.Service
	db         Pinger
	authHeader string
}

// NewServer creates a Server. authHeader names the request header carrying
// the caller's email, as set by the upstream auth proxy.
func NewServer(svc *service.Service, db Pinger, authHeader string) *Server {
	if authHeader == "" {
		authHeader = DefaultAuthHeader
	}
	return &Server{
		svc:        svc,
		db:         db,
		authHeader: http.CanonicalHeaderKey(authHeader),
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.Handle("GET /expenses", s.requireIdentity(http.HandlerFunc(s.handleListExpenses)))
	mux.Handle("POST /expenses", s.requireIdentity(http.HandlerFunc(s.handleCreateExpense)))
	mux.Handle("GET /expenses/{id}", s.requireIdentity(http.HandlerFunc(s.handleGetExpense)))
	mux.Handle("POST /expenses/reset", s.requireIdentity(http.HandlerFunc(s.handleReset)))
	mux.Handle("POST /expenses/reset/preview", s.requireIdentity(http.HandlerFunc(s.handleResetPreview)))
	mux.Handle("GET /expenses/export.csv", s.requireIdentity(http.HandlerFunc(s.handleExportCSV)))
	mux.Handle("GET /expenses/chart.png", s.requireIdentity(http.HandlerFunc(s.handleChart)))
	mux.Handle("GET /dashboard", s.requireIdentity(http.HandlerFunc(s.handleDashboard)))

	var h http.Handler = mux
	h = recoverMiddleware(h)
	h = loggingMiddleware(h)
	return otelhttp.NewHandler(h, "http.server",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
