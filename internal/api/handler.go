// Package api exposes the tracker operations as a JSON HTTP API.
//
// Endpoints:
//
//	GET  /api/members      - list participant names
//	POST /api/members      - register a participant
//	GET  /api/expenses     - list expenses with their splits
//	POST /api/expenses     - record an expense
//	GET  /api/balances     - net balance per participant
//	GET  /api/settlements  - suggested transfers to settle all balances
//	GET  /healthz          - liveness probe
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/divvy-app/divvy/internal/ledger"
	"github.com/divvy-app/divvy/internal/models"
	"github.com/divvy-app/divvy/internal/service"
)

// Handler serves the JSON API backed by a tracker.
type Handler struct {
	tracker *service.Tracker
}

// NewHandler creates a Handler for the given tracker.
func NewHandler(tracker *service.Tracker) *Handler {
	return &Handler{tracker: tracker}
}

// Routes returns a router with the full API surface, /healthz included.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", h.Health)
	r.Mount("/api", h.APIRoutes())
	return r
}

// APIRoutes returns the /api subrouter so callers can mount it next to
// their own endpoints.
func (h *Handler) APIRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/members", h.listMembers)
	r.Post("/members", h.addMember)
	r.Get("/expenses", h.listExpenses)
	r.Post("/expenses", h.addExpense)
	r.Get("/balances", h.getBalances)
	r.Get("/settlements", h.getSettlements)
	return r
}

type memberRequest struct {
	Name string `json:"name"`
}

type expenseRequest struct {
	Description string            `json:"description"`
	Amount      *float64          `json:"amount"`
	PaidBy      string            `json:"paid_by"`
	Split       *models.SplitSpec `json:"split"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tracker.ListParticipants(r.Context()))
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, `missing "name" field`)
		return
	}

	name, err := h.tracker.RegisterParticipant(r.Context(), req.Name)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok", "name": name})
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses := h.tracker.ListExpenses(r.Context())
	// Keep the response an array even when the ledger is empty.
	if expenses == nil {
		expenses = []models.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Description == "" || req.Amount == nil || req.PaidBy == "" {
		writeError(w, http.StatusBadRequest, "missing required fields (description, amount, paid_by)")
		return
	}

	// Omitted split means equal across all registered participants.
	spec := models.EqualAll()
	if req.Split != nil {
		spec = *req.Split
		if spec.Mode == "" {
			spec.Mode = models.SplitEqualAll
		}
	}

	exp, err := h.tracker.RecordExpense(r.Context(), req.Description, *req.Amount, req.PaidBy, spec)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, exp)
}

func (h *Handler) getBalances(w http.ResponseWriter, r *http.Request) {
	balances := h.tracker.ComputeBalances(r.Context())

	// Report in registration order, matching ListParticipants.
	records := make([]models.MemberBalance, 0, len(balances))
	for _, name := range h.tracker.ListParticipants(r.Context()) {
		records = append(records, models.MemberBalance{Name: name, NetBalance: balances[name]})
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) getSettlements(w http.ResponseWriter, r *http.Request) {
	transfers := h.tracker.PlanSettlement(r.Context())
	if transfers == nil {
		transfers = []models.Transfer{}
	}
	writeJSON(w, http.StatusOK, transfers)
}

// writeFailure maps core validation failures to 400 and everything else
// (storage faults) to 500.
func (h *Handler) writeFailure(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.Error("Request handling failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func isValidationError(err error) bool {
	for _, kind := range []error{
		ledger.ErrInvalidName,
		ledger.ErrInvalidAmount,
		ledger.ErrInvalidDescription,
		ledger.ErrNoParticipants,
		ledger.ErrEmptySplitSet,
		ledger.ErrSplitMismatch,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
