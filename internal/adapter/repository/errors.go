package repository

import (
	"database/sql"
	"errors"

	"github.com/eslsoft/vocdrill/internal/entity"
	"github.com/mattn/go-sqlite3"
)

// mapError translates driver errors into domain errors. onUnique is returned for
// uniqueness violations and notFound for sql.ErrNoRows; either may be nil.
func mapError(op string, err error, onUnique, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	var sqliteErr sqlite3.Error
	if onUnique != nil && errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return onUnique
		}
	}
	return entity.NewStorageError(op, err)
}
