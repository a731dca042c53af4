package services

const (
	MinActivityFields = 3
	MinTicketFields   = 2
)

const (
	DefaultActivityTime  = "00:00"
	DefaultActivityTitle = "New Activity"
	DefaultTicketTitle   = "Ticket"
)

const (
	ItineraryTemplateFilename = "itinerary_template.csv"
	WalletTemplateFilename    = "wallet_template.csv"
)

const (
	GeneralRateLimit = 500
	AIRateLimit      = 8
)
