package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
	"solotravel-backend/sheets"
	"solotravel-backend/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ImportService interface {
	// ImportActivities replaces the entire itinerary with the rows parsed
	// from the CSV text. Zero valid rows leaves the collection untouched.
	ImportActivities(text string) (*ImportResult, error)
	// ImportTickets does the same for the wallet.
	ImportTickets(text string) (*ImportResult, error)
}

// ImportResult reports the outcome of a destructive import. Diagnostics
// carries per-row notes (dropped rows, coerced enum values); a client
// may show or ignore them.
type ImportResult struct {
	Imported    int      `json:"imported"`
	Replaced    bool     `json:"replaced"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

type importService struct {
	itinerary    store.ItineraryStore
	wallet       store.WalletStore
	syncer       sheets.Syncer
	baseCurrency models.Currency
	now          func() time.Time
}

func NewImportService(itinerary store.ItineraryStore, wallet store.WalletStore, syncer sheets.Syncer, baseCurrency models.Currency) ImportService {
	return &importService{
		itinerary:    itinerary,
		wallet:       wallet,
		syncer:       syncer,
		baseCurrency: baseCurrency,
		now:          time.Now,
	}
}

func (s *importService) ImportActivities(text string) (*ImportResult, error) {
	lines := strings.Split(text, "\n")

	startIndex := 0
	if len(lines) > 0 && strings.Contains(strings.ToLower(lines[0]), "date") {
		startIndex = 1
	}

	result := &ImportResult{}
	var activities []models.Activity

	for i := startIndex; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		cols := ParseCSVLine(line)
		if len(cols) < MinActivityFields {
			result.Diagnostics = append(result.Diagnostics,
				fmt.Sprintf("Row %d: dropped, needs at least %d columns", i+1, MinActivityFields))
			continue
		}

		activityType, recognized := models.ParseActivityType(CleanCSVField(col(cols, 4)))
		if !recognized && CleanCSVField(col(cols, 4)) != "" {
			result.Diagnostics = append(result.Diagnostics,
				fmt.Sprintf("Row %d: unknown type %q, using %s", i+1, CleanCSVField(col(cols, 4)), activityType))
		}

		price, err := strconv.ParseFloat(CleanCSVField(col(cols, 5)), 64)
		if err != nil || price < 0 {
			price = 0
		}

		activities = append(activities, models.Activity{
			ID:            uuid.New().String(),
			Date:          defaultStr(CleanCSVField(col(cols, 0)), s.now().Format("2006-01-02")),
			Time:          defaultStr(CleanCSVField(col(cols, 1)), DefaultActivityTime),
			Title:         defaultStr(CleanCSVField(col(cols, 2)), DefaultActivityTitle),
			Description:   CleanCSVField(col(cols, 3)),
			Type:          activityType,
			PriceEstimate: price,
			Address:       CleanCSVField(col(cols, 6)),
			IsCompleted:   false,
			Currency:      s.baseCurrency,
			Images:        []string{},
		})
	}

	if len(activities) == 0 {
		zap.L().Info("Activity import produced no rows, itinerary unchanged",
			zap.Int("diagnostics", len(result.Diagnostics)))
		return nil, apperrors.ImportEmpty()
	}

	s.itinerary.ReplaceAll(activities)
	result.Imported = len(activities)
	result.Replaced = true

	for _, a := range activities {
		s.syncer.SyncItem(sheets.ItemTypeItinerary, sheets.ActionSet, a)
	}

	zap.L().Info("Activity import replaced itinerary",
		zap.Int("imported", result.Imported),
		zap.Int("diagnostics", len(result.Diagnostics)))

	return result, nil
}

func (s *importService) ImportTickets(text string) (*ImportResult, error) {
	lines := strings.Split(text, "\n")

	startIndex := 0
	if len(lines) > 0 && strings.Contains(strings.ToLower(lines[0]), "type") {
		startIndex = 1
	}

	result := &ImportResult{}
	var tickets []models.Ticket

	for i := startIndex; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		cols := ParseCSVLine(line)
		if len(cols) < MinTicketFields {
			result.Diagnostics = append(result.Diagnostics,
				fmt.Sprintf("Row %d: dropped, needs at least %d columns", i+1, MinTicketFields))
			continue
		}

		ticketType, recognized := models.ParseTicketType(CleanCSVField(col(cols, 0)))
		if !recognized && CleanCSVField(col(cols, 0)) != "" {
			result.Diagnostics = append(result.Diagnostics,
				fmt.Sprintf("Row %d: unknown type %q, using %s", i+1, CleanCSVField(col(cols, 0)), ticketType))
		}

		tickets = append(tickets, models.Ticket{
			ID:      uuid.New().String(),
			Type:    ticketType,
			Title:   defaultStr(CleanCSVField(col(cols, 1)), DefaultTicketTitle),
			Date:    CleanCSVField(col(cols, 2)),
			Details: CleanCSVField(col(cols, 3)),
			Notes:   CleanCSVField(col(cols, 4)),
			Files:   []string{},
		})
	}

	if len(tickets) == 0 {
		zap.L().Info("Ticket import produced no rows, wallet unchanged",
			zap.Int("diagnostics", len(result.Diagnostics)))
		return nil, apperrors.ImportEmpty()
	}

	s.wallet.ReplaceAll(tickets)
	result.Imported = len(tickets)
	result.Replaced = true

	for _, t := range tickets {
		s.syncer.SyncItem(sheets.ItemTypeWallet, sheets.ActionSet, t)
	}

	zap.L().Info("Ticket import replaced wallet",
		zap.Int("imported", result.Imported),
		zap.Int("diagnostics", len(result.Diagnostics)))

	return result, nil
}

func col(cols []string, i int) string {
	if i >= len(cols) {
		return ""
	}
	return cols[i]
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
