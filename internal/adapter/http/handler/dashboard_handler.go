package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/finlogix/finlogix/internal/adapter/http/dto"
	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/engine"
	"github.com/finlogix/finlogix/internal/usecase"
)

// AnalyticsService defines the behavior needed by DashboardHandler.
type AnalyticsService interface {
	Summary(ctx context.Context, userID string, period domain.Period) (*usecase.SummaryOutput, error)
	CategoryBreakdown(ctx context.Context, userID string, kind domain.Kind, period domain.Period) ([]engine.BreakdownEntry, error)
	MonthlyTrends(ctx context.Context, userID string, year int) ([]engine.MonthSlot, error)
	Dashboard(ctx context.Context, userID string) (*usecase.DashboardOutput, error)
}

// DashboardHandler handles analytics and reporting requests.
type DashboardHandler struct {
	analyticsUC AnalyticsService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(analyticsUC AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analyticsUC: analyticsUC}
}

// Dashboard returns the current-month overview.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	out, err := h.analyticsUC.Dashboard(r.Context(), user.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load dashboard", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromOutput(out))
}

// Summary aggregates income and expenses over the selected period.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	period, err := dto.PeriodFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	out, err := h.analyticsUC.Summary(r.Context(), user.ID, period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromOutput(out))
}

// Breakdown returns per-category totals and shares for one kind.
func (h *DashboardHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	kind := domain.KindExpense
	if v := r.URL.Query().Get("kind"); v != "" {
		kind = domain.Kind(v)
		if !kind.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid kind", v)
			return
		}
	}

	period, err := dto.PeriodFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	entries, err := h.analyticsUC.CategoryBreakdown(r.Context(), user.ID, kind, period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute breakdown", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BreakdownFromEngine(entries))
}

// MonthlyTrends returns the twelve-month table for a calendar year.
func (h *DashboardHandler) MonthlyTrends(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	year := parseIntQuery(r, "year", time.Now().UTC().Year())

	slots, err := h.analyticsUC.MonthlyTrends(r.Context(), user.ID, year)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute trends", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MonthlyTrendsFromEngine(slots))
}
