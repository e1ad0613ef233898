package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finlogix/finlogix/internal/adapter/http/dto"
	"github.com/finlogix/finlogix/internal/domain"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, http.StatusBadRequest, "bad input", "amount must be positive")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %s", ct)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if resp.Error != "bad input" || resp.Message != "amount must be positive" {
		t.Fatalf("unexpected error payload: %+v", resp)
	}
}

func TestMapDomainError(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{domain.ErrTransactionNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrCategoryKindMismatch, http.StatusBadRequest},
		{domain.ErrInvalidPeriod, http.StatusBadRequest},
		{domain.ErrInvalidSavingsRate, http.StatusBadRequest},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrExpiredToken, http.StatusUnauthorized},
		{domain.ErrInsufficientRole, http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		if got := mapDomainError(tc.err); got != tc.expected {
			t.Fatalf("mapDomainError(%v) = %d, expected %d", tc.err, got, tc.expected)
		}
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=15&bad=abc", nil)

	if got := parseIntQuery(req, "limit", 20); got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
	if got := parseIntQuery(req, "bad", 20); got != 20 {
		t.Fatalf("expected default for unparseable value, got %d", got)
	}
	if got := parseIntQuery(req, "missing", 7); got != 7 {
		t.Fatalf("expected default for missing value, got %d", got)
	}
}
