package repository

import "context"

// TxManager runs fn inside a single database transaction. Repositories called with the
// context passed to fn take part in that transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limit holds an optional row cap; zero means unlimited.
type Limit struct {
	Limit int
}
