package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type txTestRecord struct {
	ID   uint `gorm:"primarykey"`
	Name string
}

func setupTxTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&txTestRecord{}))
	return gdb
}

func TestTransactionManager_Commit(t *testing.T) {
	gdb := setupTxTestDB(t)
	tm := NewTransactionManager(gdb, nil)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return GetTxFromContext(ctx, gdb).Create(&txTestRecord{Name: "kept"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&txTestRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	gdb := setupTxTestDB(t)
	tm := NewTransactionManager(gdb, nil)

	boom := errors.New("boom")
	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := GetTxFromContext(ctx, gdb).Create(&txTestRecord{Name: "discarded"}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, gdb.Model(&txTestRecord{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetTxFromContext_NoTransaction(t *testing.T) {
	gdb := setupTxTestDB(t)

	tx := GetTxFromContext(context.Background(), gdb)

	require.NoError(t, tx.Create(&txTestRecord{Name: "direct"}).Error)
}
