package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"solotravel-backend/models"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	Env                 string
	GeminiAPIKey        string
	OpenAIAPIKey        string
	SheetsSyncURL       string
	AuthJWTSecret       string
	Destination         string
	BaseCurrency        models.Currency
	SuggestionProviders []string
	AllowedOrigins      []string
	MaxBodySize         int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("ENV", "development")
	origins := os.Getenv("ALLOWED_ORIGINS")
	var allowedOrigins []string
	if origins != "" {
		allowedOrigins = splitList(origins)
	} else {
		if env == "production" {
			log.Println("[WARNING] ALLOWED_ORIGINS not set in production! Defaulting to '*' which is insecure.")
		}
		allowedOrigins = []string{"*"}
	}

	maxBodySize := int64(10 * 1024 * 1024) // embedded images travel in request bodies
	if sizeStr := os.Getenv("MAX_BODY_SIZE"); sizeStr != "" {
		if size, err := strconv.ParseInt(sizeStr, 10, 64); err == nil {
			maxBodySize = size
		}
	}

	baseCurrency, ok := models.ParseCurrency(getEnv("BASE_CURRENCY", "JPY"), models.CurrencyJPY)
	if !ok {
		log.Printf("[WARNING] BASE_CURRENCY %q not supported, falling back to %s", os.Getenv("BASE_CURRENCY"), baseCurrency)
	}

	providers := splitList(getEnv("SUGGESTION_PROVIDERS", "gemini,openai,heuristic"))

	return &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 env,
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		SheetsSyncURL:       getEnv("SHEETS_SYNC_URL", ""),
		AuthJWTSecret:       getEnv("AUTH_JWT_SECRET", ""),
		Destination:         getEnv("DESTINATION", "Kyoto"),
		BaseCurrency:        baseCurrency,
		SuggestionProviders: providers,
		AllowedOrigins:      allowedOrigins,
		MaxBodySize:         maxBodySize,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
