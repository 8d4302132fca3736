package repository

import (
	"context"
	"database/sql"

	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type txKey struct{}

type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Store is the shared handle every sqlx repository runs its statements through.
type Store struct {
	db     *sqlx.DB
	logger logrus.FieldLogger
	logSQL bool
}

// NewStore wraps db. When database.log_sql is set every statement is logged at debug level.
func NewStore(db *sqlx.DB, cfg *config.Config, logger logrus.FieldLogger) *Store {
	return &Store{db: db, logger: logger, logSQL: cfg != nil && cfg.Database.LogSQL}
}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

// q returns the transaction bound to ctx, or the database itself.
func (s *Store) q(ctx context.Context) querier {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}

func (s *Store) trace(query string, args []interface{}) {
	if !s.logSQL || s.logger == nil {
		return
	}
	s.logger.WithFields(logrus.Fields{"sql": query, "args": args}).Debug("sql")
}

func (s *Store) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	s.trace(query, args)
	return s.q(ctx).GetContext(ctx, dest, query, args...)
}

func (s *Store) sel(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	s.trace(query, args)
	return s.q(ctx).SelectContext(ctx, dest, query, args...)
}

func (s *Store) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	s.trace(query, args)
	return s.q(ctx).ExecContext(ctx, query, args...)
}
