// Package db carries the transaction plumbing shared by repositories.
package db

import (
	"context"

	"gorm.io/gorm"

	"helpdesk/internal/shared/logger"
)

// txKey is the context key a running transaction travels under.
type txKey struct{}

// TransactionManager runs multi-repository operations inside a single
// database transaction.
type TransactionManager struct {
	db  *gorm.DB
	log logger.Interface
}

// NewTransactionManager creates a TransactionManager on the given handle.
func NewTransactionManager(db *gorm.DB, log logger.Interface) *TransactionManager {
	return &TransactionManager{db: db, log: log}
}

// RunInTransaction executes fn inside a transaction. The transaction is
// committed when fn returns nil and rolled back otherwise; repositories
// called with the derived context join the same transaction.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil && tm.log != nil {
		tm.log.Debugw("transaction rolled back", "error", err)
	}
	return err
}

// GetTx returns the transaction carried by ctx, or the base handle.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	return GetTxFromContext(ctx, tm.db)
}

// GetTxFromContext returns the transaction carried by ctx, or defaultDB
// scoped to ctx. Repositories call this so their writes join an
// enclosing transaction when one is running.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
