package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type Handlers struct {
	itineraryService    services.ItineraryService
	expenseService      services.ExpenseService
	walletService       services.WalletService
	importService       services.ImportService
	suggestionService   services.SuggestionService
	expenseParseService services.ExpenseParseService
	syncService         services.SyncService
}

func NewHandlers(
	itineraryService services.ItineraryService,
	expenseService services.ExpenseService,
	walletService services.WalletService,
	importService services.ImportService,
	suggestionService services.SuggestionService,
	expenseParseService services.ExpenseParseService,
	syncService services.SyncService,
) *Handlers {
	return &Handlers{
		itineraryService:    itineraryService,
		expenseService:      expenseService,
		walletService:       walletService,
		importService:       importService,
		suggestionService:   suggestionService,
		expenseParseService: expenseParseService,
		syncService:         syncService,
	}
}

func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/itinerary", func(r chi.Router) {
		r.Get("/", h.GetItinerary)
		r.Post("/", h.CreateActivity)
		r.Get("/template", h.DownloadItineraryTemplate)
		r.Get("/export", h.ExportItineraryCSV)
		r.Post("/import", h.ImportItineraryCSV)
		r.Put("/{activityID}", h.UpsertActivity)
		r.Delete("/{activityID}", h.DeleteActivity)
		r.Post("/{activityID}/toggle", h.ToggleActivity)
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", h.GetExpenses)
		r.Post("/", h.CreateExpense)
		r.Get("/summary", h.GetExpenseSummary)
		r.Get("/export", h.ExportExpensesCSV)
		r.Put("/{expenseID}", h.UpdateExpense)
		r.Delete("/{expenseID}", h.DeleteExpense)
	})

	r.Route("/wallet", func(r chi.Router) {
		r.Get("/", h.GetWallet)
		r.Post("/", h.CreateTicket)
		r.Get("/template", h.DownloadWalletTemplate)
		r.Get("/export", h.ExportWalletCSV)
		r.Post("/import", h.ImportWalletCSV)
		r.Put("/{ticketID}", h.UpsertTicket)
		r.Delete("/{ticketID}", h.DeleteTicket)
	})

	r.Post("/sync/pull", h.PullFromSheet)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("Failed to encode JSON response", zap.Error(err))
	}
}

func handleError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	if appErr, ok := apperrors.AsAppError(err); ok {
		status := apperrors.GetHTTPStatus(appErr.Type)

		if status >= 500 {
			zap.L().Error("App Error (Internal)",
				zap.String("code", string(appErr.Code)),
				zap.Error(appErr.Err))
		} else {
			zap.L().Debug("App Error (Client)",
				zap.String("code", string(appErr.Code)),
				zap.String("message", appErr.Message))
		}

		respondJSON(w, status, ErrorResponse{
			Error:   appErr.Message,
			Code:    string(appErr.Code),
			Details: appErr.Details,
		})
		return
	}

	zap.L().Error("Non-AppError returned (bug)",
		zap.Error(err),
		zap.String("error_type", fmt.Sprintf("%T", err)))

	respondJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: "An unexpected error occurred. Please try again later.",
		Code:  string(apperrors.CodeInternalError),
	})
}
