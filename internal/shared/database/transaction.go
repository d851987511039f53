package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction runs fn in a transaction bound to ctx. fn's tx already carries ctx;
// returning an error rolls back. Inside fn use tx only, never the outer handle: the
// SQLite test database has a single connection that the transaction holds.
//
//	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return repo.CreateBatch(ctx, tx, records)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
