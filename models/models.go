package models

import (
	"strings"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyJPY Currency = "JPY"
	CurrencyEUR Currency = "EUR"
	CurrencyTWD Currency = "TWD"
)

type ActivityType string

const (
	ActivityTypeSightseeing   ActivityType = "Sightseeing"
	ActivityTypeFood          ActivityType = "Food"
	ActivityTypeTransport     ActivityType = "Transport"
	ActivityTypeShopping      ActivityType = "Shopping"
	ActivityTypeAccommodation ActivityType = "Accommodation"
)

type TicketType string

const (
	TicketTypeHotel  TicketType = "Hotel"
	TicketTypeFlight TicketType = "Flight"
	TicketTypeTrain  TicketType = "Train"
	TicketTypeEvent  TicketType = "Event"
)

// Location is a latitude/longitude pair attached to an activity.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is a single itinerary entry. Images are embedded data-URI
// strings, not references to external storage.
type Activity struct {
	ID            string       `json:"id"`
	Date          string       `json:"date"` // YYYY-MM-DD
	Time          string       `json:"time"` // HH:MM, zero-padded
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Type          ActivityType `json:"type"`
	Location      *Location    `json:"location,omitempty"`
	Address       string       `json:"address,omitempty"`
	IsCompleted   bool         `json:"isCompleted"`
	Notes         string       `json:"notes,omitempty"`
	PriceEstimate float64      `json:"priceEstimate"`
	Currency      Currency     `json:"currency,omitempty"`
	Images        []string     `json:"images"`
}

// Expense is a single spend record. ExchangeRateToBase is the multiplier
// into the base currency; current flows always store 1 since no live
// conversion is performed.
type Expense struct {
	ID                 string       `json:"id"`
	Amount             float64      `json:"amount"`
	Currency           Currency     `json:"currency"`
	Category           ActivityType `json:"category"`
	Description        string       `json:"description"`
	Date               string       `json:"date"`
	ExchangeRateToBase float64      `json:"exchangeRateToBase"`
	Notes              string       `json:"notes,omitempty"`
}

// Ticket is a travel document or reservation. Date is free text rather
// than a calendar type ("Oct 24 - Oct 28" is valid).
type Ticket struct {
	ID        string     `json:"id"`
	Type      TicketType `json:"type"`
	Title     string     `json:"title"`
	Date      string     `json:"date"`
	QRCodeURL string     `json:"qrCodeUrl,omitempty"`
	Details   string     `json:"details"`
	Files     []string   `json:"files"`
	Notes     string     `json:"notes,omitempty"`
}

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is transient chat state; it is never persisted.
type ChatMessage struct {
	ID   string   `json:"id"`
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// CategoryTotal is one slice of the per-category expense breakdown.
type CategoryTotal struct {
	Category ActivityType `json:"category"`
	Total    float64      `json:"total"`
}

// ExpenseSummary aggregates the expense collection. TotalSpent sums raw
// amounts; multi-currency conversion is declared but not implemented.
type ExpenseSummary struct {
	TotalSpent float64         `json:"total_spent"`
	ByCategory []CategoryTotal `json:"by_category"`
}

// ParseActivityType maps free text onto the closed enumeration. Unknown
// values fall back to Sightseeing; ok reports whether the input was
// recognized so callers can record a diagnostic instead of silently
// accepting bad data.
func ParseActivityType(s string) (ActivityType, bool) {
	switch ActivityType(normalizeEnum(s)) {
	case ActivityTypeSightseeing:
		return ActivityTypeSightseeing, true
	case ActivityTypeFood:
		return ActivityTypeFood, true
	case ActivityTypeTransport:
		return ActivityTypeTransport, true
	case ActivityTypeShopping:
		return ActivityTypeShopping, true
	case ActivityTypeAccommodation:
		return ActivityTypeAccommodation, true
	}
	return ActivityTypeSightseeing, false
}

// ParseTicketType maps free text onto the ticket enumeration, defaulting
// unknown values to Event.
func ParseTicketType(s string) (TicketType, bool) {
	switch TicketType(normalizeEnum(s)) {
	case TicketTypeHotel:
		return TicketTypeHotel, true
	case TicketTypeFlight:
		return TicketTypeFlight, true
	case TicketTypeTrain:
		return TicketTypeTrain, true
	case TicketTypeEvent:
		return TicketTypeEvent, true
	}
	return TicketTypeEvent, false
}

// ParseCurrency maps a currency code onto the supported set, defaulting
// unknown codes to the provided fallback.
func ParseCurrency(s string, fallback Currency) (Currency, bool) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case CurrencyUSD:
		return CurrencyUSD, true
	case CurrencyJPY:
		return CurrencyJPY, true
	case CurrencyEUR:
		return CurrencyEUR, true
	case CurrencyTWD:
		return CurrencyTWD, true
	}
	return fallback, false
}

func normalizeEnum(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// ActivityTypes lists the closed enumeration in display order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityTypeSightseeing,
		ActivityTypeFood,
		ActivityTypeTransport,
		ActivityTypeShopping,
		ActivityTypeAccommodation,
	}
}
