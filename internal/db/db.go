package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// ADb wraps the application database handle. Repositories embed their
// queries against it directly; there is no query builder layer.
type ADb struct {
	*sqlx.DB
}

func NewADb(driverName, dataSourceURL string) (*ADb, error) {
	db, err := sqlx.Connect(driverName, dataSourceURL)
	if err != nil {
		return nil, err
	}
	return &ADb{db}, nil
}

// Migrate applies the embedded schema. Statements are idempotent
// (CREATE ... IF NOT EXISTS), so running it on every startup is safe.
func (adb *ADb) Migrate(ctx context.Context) error {
	_, err := adb.ExecContext(ctx, schemaDDL)
	return err
}
