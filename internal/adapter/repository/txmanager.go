package repository

import (
	"context"
	"fmt"

	"github.com/eslsoft/vocdrill/internal/entity"
)

// TxManager manages database transactions using the context pattern.
// Nested RunInTx calls join the outer transaction.
type TxManager struct {
	store *Store
}

// NewTxManager creates a new TxManager.
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// RunInTx executes fn within a database transaction.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.NewStorageError("begin transaction", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return entity.NewStorageError("rollback", fmt.Errorf("%w (original error: %v)", rbErr, err))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return entity.NewStorageError("commit transaction", err)
	}

	return nil
}
