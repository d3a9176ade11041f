package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gitlab.com/yelinaung/expense-tracker/internal/expense"
	"gitlab.com/yelinaung/expense-tracker/internal/logger"
	"gitlab.com/yelinaung/expense-tracker/internal/report"
	"gitlab.com/yelinaung/expense-tracker/internal/service"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		logger.Log.Warn().Err(err).Msg("Health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	expenses, err := s.svc.List(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseResponses(expenses))
}

func (s *Server) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	expenseID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, &service.ValidationError{Field: "id", Reason: "must be a UUID"})
		return
	}

	exp, err := s.svc.Get(r.Context(), id, expenseID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseResponse(*exp))
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	in, err := decodeCreateExpense(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, err)
		return
	}

	exp, err := s.svc.Create(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseResponse(*exp))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	req, err := decodeResetRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes), s.svc.Location())
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := s.svc.Reset(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resetResponse{DeletedCount: deleted})
}

func (s *Server) handleResetPreview(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	req, err := decodeResetRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes), s.svc.Location())
	if err != nil {
		writeError(w, r, err)
		return
	}

	preview, err := s.svc.PreviewReset(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resetPreviewResponse{
		Scope:      preview.Scope,
		MatchCount: preview.MatchCount,
		FullWipe:   preview.FullWipe,
	})
}

// parseWindow reads the window query parameter.
func parseWindow(r *http.Request) (expense.Window, error) {
	window, err := expense.ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		return "", &service.ValidationError{Field: "window", Reason: "must be one of all, today, week, month"}
	}
	return window, nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	window, err := parseWindow(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dash, err := s.svc.Dashboard(r.Context(), id, window)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(dash))
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	window, err := parseWindow(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	expenses, dr, err := s.svc.WindowExpenses(r.Context(), id, window)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := report.GenerateExpensesCSV(expenses, s.svc.Location())
	if err != nil {
		writeError(w, r, err)
		return
	}

	filename := report.Filename("expenses", string(window), dr, "csv")
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())

	window, err := parseWindow(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dash, err := s.svc.Dashboard(r.Context(), id, window)
	if err != nil {
		writeError(w, r, err)
		return
	}

	png, err := report.GenerateCategoryChart(dash.Totals, window.Label())
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="`+report.Filename("chart", string(window), dash.Range, "png")+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
