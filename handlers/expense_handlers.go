package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"

	"github.com/go-chi/chi/v5"
)

type ParseExpenseRequest struct {
	Text string `json:"text"`
}

func (h *Handlers) GetExpenses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.expenseService.List())
}

func (h *Handlers) GetExpenseSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.expenseService.Summary())
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		handleError(w, apperrors.InvalidRequest("Invalid request body. Please provide valid JSON."))
		return
	}

	created, err := h.expenseService.Add(expense)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseID")
	if expenseID == "" {
		handleError(w, apperrors.MissingRequiredField("Expense ID"))
		return
	}

	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		handleError(w, apperrors.InvalidRequest("Invalid request body. Please provide valid JSON."))
		return
	}
	expense.ID = expenseID

	updated, err := h.expenseService.Update(expense)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseID")
	if expenseID == "" {
		handleError(w, apperrors.MissingRequiredField("Expense ID"))
		return
	}

	h.expenseService.Delete(expenseID)
	w.WriteHeader(http.StatusNoContent)
}

// ParseExpense extracts a draft expense from free text via the AI
// service. The draft is returned to the client, not committed.
func (h *Handlers) ParseExpense(w http.ResponseWriter, r *http.Request) {
	var req ParseExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, apperrors.InvalidRequest("Invalid request body. Please provide valid JSON."))
		return
	}
	if req.Text == "" {
		handleError(w, apperrors.MissingRequiredField("Text"))
		return
	}

	parsed, err := h.expenseParseService.ParseExpenseFromText(r.Context(), req.Text)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, parsed)
}
