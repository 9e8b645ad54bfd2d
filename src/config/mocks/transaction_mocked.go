package mocks

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
)

// BuildPool returns a mocked pool that fails the test
// if not all expectations were met at cleanup.
func BuildPool(t *testing.T) pgxmock.PgxPoolIface {
	db, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err.Error())
	}
	t.Cleanup(func() {
		if err := db.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled database expectations: %s", err)
		}
		db.Close()
	})
	return db
}

func BuildTransaction(ctx context.Context, t *testing.T) (pgxmock.PgxPoolIface, pgx.Tx) {
	db := BuildPool(t)
	db.ExpectBegin()
	tx, err := db.Begin(ctx)
	if err != nil {
		t.Fatalf("an error '%s' was not expected when Begin a Tx in database", err.Error())
	}
	return db, tx
}
