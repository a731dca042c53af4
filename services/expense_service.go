package services

import (
	"strings"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/models"
	"solotravel-backend/sheets"
	"solotravel-backend/store"

	"github.com/google/uuid"
)

type ExpenseService interface {
	List() []models.Expense
	Add(expense models.Expense) (*models.Expense, error)
	Update(expense models.Expense) (*models.Expense, error)
	Delete(id string)
	Summary() models.ExpenseSummary
}

type expenseService struct {
	store        store.ExpenseStore
	syncer       sheets.Syncer
	baseCurrency models.Currency
}

func NewExpenseService(expenses store.ExpenseStore, syncer sheets.Syncer, baseCurrency models.Currency) ExpenseService {
	return &expenseService{store: expenses, syncer: syncer, baseCurrency: baseCurrency}
}

func (s *expenseService) List() []models.Expense {
	return s.store.List()
}

func (s *expenseService) normalize(expense *models.Expense) error {
	if strings.TrimSpace(expense.Description) == "" {
		return apperrors.MissingRequiredField("Description")
	}
	if expense.Amount < 0 {
		return apperrors.InvalidAmount("Amount cannot be negative.")
	}
	if expense.Currency == "" {
		expense.Currency = s.baseCurrency
	}
	if expense.Category == "" {
		expense.Category = models.ActivityTypeFood
	}
	// No live conversion is performed; the rate is scaffolding until a
	// real multi-currency aggregation lands.
	if expense.ExchangeRateToBase == 0 {
		expense.ExchangeRateToBase = 1
	}
	return nil
}

func (s *expenseService) Add(expense models.Expense) (*models.Expense, error) {
	if err := s.normalize(&expense); err != nil {
		return nil, err
	}
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	if err := s.store.Add(expense); err != nil {
		return nil, err
	}

	s.syncer.SyncItem(sheets.ItemTypeExpense, sheets.ActionSet, expense)
	return &expense, nil
}

func (s *expenseService) Update(expense models.Expense) (*models.Expense, error) {
	if err := s.normalize(&expense); err != nil {
		return nil, err
	}

	if !s.store.Update(expense) {
		return nil, apperrors.ExpenseNotFound()
	}

	s.syncer.SyncItem(sheets.ItemTypeExpense, sheets.ActionSet, expense)
	return &expense, nil
}

func (s *expenseService) Delete(id string) {
	s.store.Delete(id)
	s.syncer.SyncItem(sheets.ItemTypeExpense, sheets.ActionDelete, map[string]string{"id": id})
}

func (s *expenseService) Summary() models.ExpenseSummary {
	return s.store.Summary()
}
