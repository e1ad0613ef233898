package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finlogix/finlogix/internal/adapter/http/dto"
	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/usecase"
)

// AdminService defines the behavior needed by AdminHandler.
type AdminService interface {
	Stats(ctx context.Context) (*usecase.PlatformStats, error)
	ListUsers(ctx context.Context, filter usecase.ListUsersFilter) ([]*domain.User, int64, error)
	GetUser(ctx context.Context, userID string) (*domain.User, int64, error)
	SetUserRole(ctx context.Context, input usecase.SetUserRoleInput) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	ListAllTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]*domain.Transaction, error)
}

// AdminHandler handles platform administration requests.
type AdminHandler struct {
	adminUC AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminUC AdminService) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// Stats returns the platform-wide dashboard figures.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminUC.Stats(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load stats", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PlatformStatsFromOutput(stats))
}

// ListUsers lists users with optional search and role filters.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := usecase.ListUsersFilter{
		Search: r.URL.Query().Get("search"),
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	}
	if v := r.URL.Query().Get("role"); v != "" {
		role := domain.Role(v)
		filter.Role = &role
	}

	users, total, err := h.adminUC.ListUsers(r.Context(), filter)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list users", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListUsersResponse{
		Users: dto.UsersFromDomain(users),
		Total: total,
	})
}

// GetUser returns one user account with its transaction count.
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	user, txCount, err := h.adminUC.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserDetailResponse{
		User:             dto.UserFromDomain(user),
		TransactionCount: txCount,
	})
}

// UpdateUser changes a user's role or active flag.
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.adminUC.SetUserRole(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// DeleteUser removes a user account.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing user ID", "")
		return
	}

	if err := h.adminUC.DeleteUser(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete user", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTransactions lists transactions across every user.
func (h *AdminHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	txs, err := h.adminUC.ListAllTransactions(r.Context(),
		filter,
		parseIntQuery(r, "limit", 0),
		parseIntQuery(r, "offset", 0),
	)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txs),
		Total:        int64(len(txs)),
	})
}
