package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handlers) GetWallet(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.walletService.List())
}

func (h *Handlers) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var ticket models.Ticket
	if err := json.NewDecoder(r.Body).Decode(&ticket); err != nil {
		handleError(w, apperrors.InvalidRequest("Invalid request body. Please provide valid JSON."))
		return
	}

	if parsed, ok := models.ParseTicketType(string(ticket.Type)); !ok && ticket.Type != "" {
		zap.L().Warn("Unknown ticket type on create, using default",
			zap.String("type", string(ticket.Type)))
		ticket.Type = parsed
	}

	created, err := h.walletService.Add(ticket)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpsertTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "ticketID")
	if ticketID == "" {
		handleError(w, apperrors.MissingRequiredField("Ticket ID"))
		return
	}

	var ticket models.Ticket
	if err := json.NewDecoder(r.Body).Decode(&ticket); err != nil {
		handleError(w, apperrors.InvalidRequest("Invalid request body. Please provide valid JSON."))
		return
	}
	ticket.ID = ticketID

	if parsed, ok := models.ParseTicketType(string(ticket.Type)); !ok && ticket.Type != "" {
		ticket.Type = parsed
	}

	updated, err := h.walletService.Upsert(ticket)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "ticketID")
	if ticketID == "" {
		handleError(w, apperrors.MissingRequiredField("Ticket ID"))
		return
	}

	h.walletService.Delete(ticketID)
	w.WriteHeader(http.StatusNoContent)
}
