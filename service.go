package main

import (
	"context"

	"kakeibo/models"
)

// TransactionService orchestrates store access for the API layer. Not-found is
// reported as models.ErrTransactionNotFound on every operation that takes an id.
type TransactionService interface {
	FindAllTransactions(ctx context.Context) ([]models.Transaction, error)
	FindTransactionByID(ctx context.Context, id uint) (models.Transaction, error)
	SaveTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id uint, newValues models.Transaction) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id uint) error
}

type transactionService struct {
	store TransactionStore
}

// NewTransactionService creates a TransactionService over the given store.
func NewTransactionService(store TransactionStore) TransactionService {
	return &transactionService{store: store}
}

func (s *transactionService) FindAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.store.FindAll(ctx)
}

func (s *transactionService) FindTransactionByID(ctx context.Context, id uint) (models.Transaction, error) {
	return s.store.FindByID(ctx, id)
}

func (s *transactionService) SaveTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	return s.store.Save(ctx, t)
}

// UpdateTransaction overwrites the five mutable fields of an existing record,
// leaving the id untouched. If the id is absent nothing is written. The read
// and the write are separate store calls; concurrent writers to the same id
// race with last-write-wins (single-user deployment).
func (s *transactionService) UpdateTransaction(ctx context.Context, id uint, newValues models.Transaction) (models.Transaction, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return models.Transaction{}, err
	}
	existing.TransactionDate = newValues.TransactionDate
	existing.Description = newValues.Description
	existing.Category = newValues.Category
	existing.Amount = newValues.Amount
	existing.Type = newValues.Type
	return s.store.Save(ctx, existing)
}

// DeleteTransaction removes a record by id, reporting not-found for absent ids
// without issuing the delete.
func (s *transactionService) DeleteTransaction(ctx context.Context, id uint) error {
	exists, err := s.store.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrTransactionNotFound
	}
	return s.store.DeleteByID(ctx, id)
}
