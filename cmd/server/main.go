package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solotravel-backend/config"
	"solotravel-backend/handlers"
	authmiddleware "solotravel-backend/middleware"
	"solotravel-backend/models"
	"solotravel-backend/services"
	"solotravel-backend/sheets"
	"solotravel-backend/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	if os.Getenv("ENV") == "development" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	itineraryStore := store.NewItineraryStore(models.SeedActivities())
	expenseStore := store.NewExpenseStore(models.SeedExpenses())
	walletStore := store.NewWalletStore(models.SeedTickets())

	syncer := sheets.NewClient(cfg.SheetsSyncURL)
	if syncer.Enabled() {
		logger.Info("Sheet sync enabled")
	} else {
		logger.Info("Sheet sync disabled, state is in-memory only")
	}

	itineraryService := services.NewItineraryService(itineraryStore, syncer)
	expenseService := services.NewExpenseService(expenseStore, syncer, cfg.BaseCurrency)
	walletService := services.NewWalletService(walletStore, syncer)
	importService := services.NewImportService(itineraryStore, walletStore, syncer, cfg.BaseCurrency)
	syncService := services.NewSyncService(syncer, itineraryStore, expenseStore, walletStore)

	suggestionService := services.NewSuggestionService(
		buildProviders(cfg, logger),
		itineraryService,
		itineraryStore,
	)

	expenseParseService, err := services.NewExpenseParseService(cfg.GeminiAPIKey)
	if err != nil {
		logger.Fatal("Failed to create expense parse service", zap.Error(err))
	}

	authMiddleware := authmiddleware.NewAuthMiddleware(cfg.AuthJWTSecret)
	if !authMiddleware.Enabled() {
		logger.Warn("AUTH_JWT_SECRET not set, API is unauthenticated")
	}

	h := handlers.NewHandlers(
		itineraryService,
		expenseService,
		walletService,
		importService,
		suggestionService,
		expenseParseService,
		syncService,
	)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(authmiddleware.ZapLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(authmiddleware.SecurityHeaders)
	r.Use(authmiddleware.MaxBodySize(cfg.MaxBodySize))
	if cfg.Env == "production" {
		r.Use(authmiddleware.StrictTransportSecurity)
	}

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	r.Use(cors.Handler(corsOptions))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		if authMiddleware.Enabled() {
			r.Use(authMiddleware.Authenticate)
		}
		r.Use(httprate.LimitByIP(services.GeneralRateLimit, 1*time.Minute))
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(services.AIRateLimit, 1*time.Minute))
			h.RegisterAIRoutes(r)
		})

		h.RegisterRoutes(r)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// buildProviders assembles the suggestion chain from config. Providers
// whose API keys are missing are skipped so a bare deployment still
// serves heuristic suggestions.
func buildProviders(cfg *config.Config, logger *zap.Logger) []services.SuggestionProvider {
	var providers []services.SuggestionProvider
	for _, name := range cfg.SuggestionProviders {
		switch name {
		case "gemini":
			if cfg.GeminiAPIKey == "" {
				logger.Warn("Skipping gemini provider, GEMINI_API_KEY not set")
				continue
			}
			p, err := services.NewGeminiProvider(cfg.GeminiAPIKey)
			if err != nil {
				logger.Warn("Failed to create gemini provider", zap.Error(err))
				continue
			}
			providers = append(providers, p)
		case "openai":
			if cfg.OpenAIAPIKey == "" {
				logger.Warn("Skipping openai provider, OPENAI_API_KEY not set")
				continue
			}
			providers = append(providers, services.NewOpenAIProvider(cfg.OpenAIAPIKey))
		case "heuristic":
			providers = append(providers, services.NewHeuristicProvider(cfg.Destination))
		default:
			logger.Warn("Unknown suggestion provider in config", zap.String("provider", name))
		}
	}
	if len(providers) == 0 {
		providers = append(providers, services.NewHeuristicProvider(cfg.Destination))
	}
	return providers
}
