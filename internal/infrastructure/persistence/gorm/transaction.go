package gorm

import (
	"context"

	"github.com/fuelapp/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// TransactionManager runs functions inside a GORM transaction.
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) outbound.TransactionManager {
	return &TransactionManager{db: db}
}

// Transact begins a transaction, passes its handle to fn, and commits
// unless fn returns an error.
func (t *TransactionManager) Transact(ctx context.Context, fn func(tx any) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})
}
