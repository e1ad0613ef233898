package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/adapter/http/dto"
	"github.com/finlogix/finlogix/internal/engine"
	"github.com/finlogix/finlogix/internal/infrastructure/metrics"
	"github.com/finlogix/finlogix/internal/usecase"
)

// AdvisorService defines the behavior needed by AdvisorHandler.
type AdvisorService interface {
	Insights(ctx context.Context, userID string) ([]engine.Insight, error)
	SpendingForecast(ctx context.Context, userID string) (*usecase.ForecastOutput, error)
	BudgetPlan(ctx context.Context, userID string, targetSavingsRate decimal.Decimal) (*engine.BudgetPlan, error)
	Advice(ctx context.Context, userID string) (*usecase.AdviceOutput, error)
}

// AdvisorHandler handles insight, forecast, budget and advice requests.
type AdvisorHandler struct {
	advisorUC AdvisorService
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(advisorUC AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisorUC: advisorUC}
}

// Insights returns the current month's rule findings.
func (h *AdvisorHandler) Insights(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	insights, err := h.advisorUC.Insights(r.Context(), user.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute insights", err.Error())
		return
	}

	metrics.InsightsServed.Observe(float64(len(insights)))
	writeJSON(w, http.StatusOK, map[string]any{
		"insights": dto.InsightsFromEngine(insights),
	})
}

// Forecast returns the month-end spending projection.
func (h *AdvisorHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	out, err := h.advisorUC.SpendingForecast(r.Context(), user.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute forecast", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ForecastFromOutput(out))
}

// BudgetPlan returns suggested category budgets. The target savings rate
// comes from the savings_rate query parameter, defaulting server-side.
func (h *AdvisorHandler) BudgetPlan(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	rate := decimal.Zero
	if v := r.URL.Query().Get("savings_rate"); v != "" {
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid savings_rate", v)
			return
		}
		rate = parsed
	}

	plan, err := h.advisorUC.BudgetPlan(r.Context(), user.ID, rate)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build budget plan", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BudgetPlanFromEngine(plan))
}

// Advice returns up to three short saving tips.
func (h *AdvisorHandler) Advice(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	out, err := h.advisorUC.Advice(r.Context(), user.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compose advice", err.Error())
		return
	}

	source := metrics.AdviceSourceFallback
	if out.Generated {
		source = metrics.AdviceSourceGenerated
	}
	metrics.AdviceServed.WithLabelValues(source).Inc()

	writeJSON(w, http.StatusOK, dto.AdviceResponse{
		Advice:    out.Lines,
		Generated: out.Generated,
	})
}
