package models

// Seed data so a fresh server serves a populated trip instead of three
// empty tabs.

func SeedActivities() []Activity {
	return []Activity{
		{
			ID:            "1",
			Date:          "2023-10-24",
			Time:          "09:00",
			Title:         "Fushimi Inari Taisha",
			Description:   "Walk through the thousands of vermilion torii gates. Best to go early to avoid crowds.",
			Type:          ActivityTypeSightseeing,
			IsCompleted:   true,
			Location:      &Location{Lat: 34.9671, Lng: 135.7727},
			Address:       "68 Fukakusa Yabunouchicho, Fushimi Ward, Kyoto",
			Currency:      CurrencyJPY,
			PriceEstimate: 0,
			Notes:         "Bring water!",
			Images:        []string{},
		},
		{
			ID:            "2",
			Date:          "2023-10-24",
			Time:          "12:30",
			Title:         "Lunch at Nishiki Market",
			Description:   "Explore \"Kyoto's Kitchen\". Try the soy milk donuts and fresh sashimi on a stick.",
			Type:          ActivityTypeFood,
			Location:      &Location{Lat: 35.0050, Lng: 135.7649},
			Address:       "Nishikikoji-dori, Nakagyo Ward, Kyoto",
			Currency:      CurrencyJPY,
			PriceEstimate: 2000,
			Images:        []string{},
		},
		{
			ID:            "3",
			Date:          "2023-10-24",
			Time:          "14:30",
			Title:         "Kinkaku-ji (Golden Pavilion)",
			Description:   "Zen Buddhist temple with top two floors completely covered in gold leaf.",
			Type:          ActivityTypeSightseeing,
			Location:      &Location{Lat: 35.0394, Lng: 135.7292},
			Address:       "1 Kinkakujicho, Kita Ward, Kyoto",
			Currency:      CurrencyJPY,
			PriceEstimate: 500,
			Images:        []string{},
		},
	}
}

func SeedExpenses() []Expense {
	return []Expense{
		{
			ID:                 "1",
			Amount:             500,
			Currency:           CurrencyJPY,
			Category:           ActivityTypeTransport,
			Description:        "Train to Fushimi Inari",
			Date:               "2023-10-24",
			ExchangeRateToBase: 1,
		},
		{
			ID:                 "2",
			Amount:             1200,
			Currency:           CurrencyJPY,
			Category:           ActivityTypeFood,
			Description:        "Matcha Ice Cream & Snacks",
			Date:               "2023-10-24",
			ExchangeRateToBase: 1,
		},
	}
}

func SeedTickets() []Ticket {
	return []Ticket{
		{
			ID:      "1",
			Type:    TicketTypeFlight,
			Title:   "JAL Flight JL006",
			Date:    "Oct 23, 11:00 AM",
			Details: "Seat 42A • Tokyo (HND) to New York (JFK)",
			Notes:   "Vegetarian meal requested",
			Files:   []string{},
		},
		{
			ID:      "2",
			Type:    TicketTypeHotel,
			Title:   "Ace Hotel Kyoto",
			Date:    "Oct 24 - Oct 28",
			Details: "Standard King • Confirmation #8839201",
			Notes:   "Check-in at 3PM",
			Files:   []string{},
		},
	}
}
