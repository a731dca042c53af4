package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handlers) GetItinerary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.itineraryService.List())
}

func (h *Handlers) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var activity models.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		handleError(w, apperrors.InvalidRequest("Invalid request body. Please provide valid JSON."))
		return
	}

	if parsed, ok := models.ParseActivityType(string(activity.Type)); !ok && activity.Type != "" {
		zap.L().Warn("Unknown activity type on create, using default",
			zap.String("type", string(activity.Type)))
		activity.Type = parsed
	}

	created, err := h.itineraryService.Add(activity)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpsertActivity(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "activityID")
	if activityID == "" {
		handleError(w, apperrors.MissingRequiredField("Activity ID"))
		return
	}

	var activity models.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		handleError(w, apperrors.InvalidRequest("Invalid request body. Please provide valid JSON."))
		return
	}
	activity.ID = activityID

	if parsed, ok := models.ParseActivityType(string(activity.Type)); !ok {
		activity.Type = parsed
	}

	updated, err := h.itineraryService.Upsert(activity)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "activityID")
	if activityID == "" {
		handleError(w, apperrors.MissingRequiredField("Activity ID"))
		return
	}

	h.itineraryService.Delete(activityID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ToggleActivity(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "activityID")
	if activityID == "" {
		handleError(w, apperrors.MissingRequiredField("Activity ID"))
		return
	}

	if err := h.itineraryService.ToggleCompleted(activityID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
