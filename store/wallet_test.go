package store

import (
	"testing"

	"solotravel-backend/models"
)

func ticketFixture(id, title string) models.Ticket {
	return models.Ticket{
		ID:      id,
		Type:    models.TicketTypeEvent,
		Title:   title,
		Date:    "Oct 24",
		Details: "fixture",
		Files:   []string{},
	}
}

func TestWalletUpsertIsIdempotent(t *testing.T) {
	s := NewWalletStore(nil)
	tk := ticketFixture("a", "Kabuki Show")

	s.Upsert(tk)
	s.Upsert(tk)

	if s.Len() != 1 {
		t.Fatalf("want 1 record after double upsert, got %d", s.Len())
	}
}

func TestWalletDeleteMissingIDIsNoOp(t *testing.T) {
	s := NewWalletStore([]models.Ticket{ticketFixture("a", "Kabuki Show")})
	s.Delete("missing")
	if s.Len() != 1 {
		t.Fatalf("collection changed: len=%d", s.Len())
	}
}

func TestWalletReplaceAll(t *testing.T) {
	s := NewWalletStore(models.SeedTickets())
	s.ReplaceAll([]models.Ticket{ticketFixture("x", "Shinkansen")})

	if s.Len() != 1 {
		t.Fatalf("want 1 record, got %d", s.Len())
	}
	got := s.List()
	if got[0].Title != "Shinkansen" {
		t.Fatalf("unexpected record: %+v", got[0])
	}
}

func TestWalletAddRejectsDuplicateID(t *testing.T) {
	s := NewWalletStore(nil)
	if err := s.Add(ticketFixture("a", "Show")); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ticketFixture("a", "Other")); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}
