package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
)

// RegisterAIRoutes registers the endpoints that call out to language
// model providers. They are mounted separately so the caller can wrap
// them in a stricter rate limit than the rest of the API.
func (h *Handlers) RegisterAIRoutes(r chi.Router) {
	r.Post("/chat/suggest", h.Suggest)
	r.Post("/expenses/parse", h.ParseExpense)
}

type SuggestRequest struct {
	Message       string `json:"message"`
	ReferenceDate string `json:"referenceDate,omitempty"`
}

type SuggestResponse struct {
	Reply       models.ChatMessage `json:"reply"`
	Suggestions []models.Activity  `json:"suggestions"`
}

// Suggest runs the user's prompt through the provider chain. Accepted
// suggestions are already appended to the itinerary by the service; the
// response carries them so clients can highlight what was added. When
// every provider fails the reply degrades to an apology instead of an
// error so the chat surface stays usable.
func (h *Handlers) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, apperrors.InvalidRequest("Invalid request body."))
		return
	}

	if req.Message == "" {
		handleError(w, apperrors.MissingRequiredField("message"))
		return
	}
	if req.ReferenceDate == "" {
		req.ReferenceDate = time.Now().Format("2006-01-02")
	}

	suggestions, err := h.suggestionService.Suggest(r.Context(), req.Message, req.ReferenceDate)
	if err != nil {
		zap.L().Warn("Suggestion request failed", zap.Error(err))
		respondJSON(w, http.StatusOK, SuggestResponse{
			Reply: models.ChatMessage{
				ID:   uuid.New().String(),
				Role: models.ChatRoleModel,
				Text: "Sorry, I couldn't come up with suggestions right now. Please try again in a moment.",
			},
			Suggestions: []models.Activity{},
		})
		return
	}

	text := "I couldn't find anything new to add for that."
	if len(suggestions) > 0 {
		text = "I've added some suggestions to your itinerary. Let me know if you'd like something different."
	}

	respondJSON(w, http.StatusOK, SuggestResponse{
		Reply: models.ChatMessage{
			ID:   uuid.New().String(),
			Role: models.ChatRoleModel,
			Text: text,
		},
		Suggestions: suggestions,
	})
}

// PullFromSheet replaces all local collections with the remote sheet
// snapshot. Local state is kept untouched when the fetch fails.
func (h *Handlers) PullFromSheet(w http.ResponseWriter, r *http.Request) {
	data, err := h.syncService.Pull(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, data)
}
