package services

import (
	"strings"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
	"solotravel-backend/sheets"
	"solotravel-backend/store"

	"github.com/google/uuid"
)

type WalletService interface {
	List() []models.Ticket
	Add(ticket models.Ticket) (*models.Ticket, error)
	Upsert(ticket models.Ticket) (*models.Ticket, error)
	Delete(id string)
}

type walletService struct {
	store  store.WalletStore
	syncer sheets.Syncer
}

func NewWalletService(wallet store.WalletStore, syncer sheets.Syncer) WalletService {
	return &walletService{store: wallet, syncer: syncer}
}

func (s *walletService) List() []models.Ticket {
	return s.store.List()
}

func (s *walletService) normalize(ticket *models.Ticket) error {
	if strings.TrimSpace(ticket.Title) == "" {
		return apperrors.MissingRequiredField("Title")
	}
	if ticket.Type == "" {
		ticket.Type = models.TicketTypeEvent
	}
	if ticket.Files == nil {
		ticket.Files = []string{}
	}
	return nil
}

func (s *walletService) Add(ticket models.Ticket) (*models.Ticket, error) {
	if err := s.normalize(&ticket); err != nil {
		return nil, err
	}
	if ticket.ID == "" {
		ticket.ID = uuid.New().String()
	}

	if err := s.store.Add(ticket); err != nil {
		return nil, err
	}

	s.syncer.SyncItem(sheets.ItemTypeWallet, sheets.ActionSet, ticket)
	return &ticket, nil
}

func (s *walletService) Upsert(ticket models.Ticket) (*models.Ticket, error) {
	if err := s.normalize(&ticket); err != nil {
		return nil, err
	}
	if ticket.ID == "" {
		ticket.ID = uuid.New().String()
	}

	s.store.Upsert(ticket)
	s.syncer.SyncItem(sheets.ItemTypeWallet, sheets.ActionSet, ticket)
	return &ticket, nil
}

func (s *walletService) Delete(id string) {
	s.store.Delete(id)
	s.syncer.SyncItem(sheets.ItemTypeWallet, sheets.ActionDelete, map[string]string{"id": id})
}
