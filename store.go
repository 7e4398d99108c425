package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kakeibo/models"

	"gorm.io/gorm"
)

// TransactionStore is the persistence boundary for ledger records.
type TransactionStore interface {
	FindAll(ctx context.Context) ([]models.Transaction, error)
	FindByID(ctx context.Context, id uint) (models.Transaction, error)
	Save(ctx context.Context, t models.Transaction) (models.Transaction, error)
	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

type gormTransactionStore struct {
	db *gorm.DB
}

// NewGormTransactionStore creates a TransactionStore backed by the given gorm connection.
func NewGormTransactionStore(db *gorm.DB) TransactionStore {
	return &gormTransactionStore{db: db}
}

func (s *gormTransactionStore) FindAll(ctx context.Context) ([]models.Transaction, error) {
	var items []models.Transaction
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return items, nil
}

func (s *gormTransactionStore) FindByID(ctx context.Context, id uint) (models.Transaction, error) {
	var t models.Transaction
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, models.ErrTransactionNotFound
		}
		return models.Transaction{}, fmt.Errorf("find transaction %d: %w", id, err)
	}
	return t, nil
}

// Save inserts when the ID is zero and overwrites all columns otherwise.
func (s *gormTransactionStore) Save(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	if err := s.db.WithContext(ctx).Save(&t).Error; err != nil {
		return models.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}
	slog.InfoContext(ctx, "transaction saved",
		"id", t.ID,
		"type", string(t.Type),
		"category", t.Category,
		"amount", t.Amount.String())
	return t, nil
}

func (s *gormTransactionStore) DeleteByID(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Transaction{}, id).Error; err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return nil
}

func (s *gormTransactionStore) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check transaction %d: %w", id, err)
	}
	return count > 0, nil
}
