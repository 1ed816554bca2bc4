package repositories

import (
	"context"
	"database/sql"
	"testing"

	intdb "busfinder/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
)

// trackedConn lets several repository calls share one sqlmock handle while
// still counting the Close each call owes.
type trackedConn struct {
	*sql.DB
	opener *countingOpener
}

func (c trackedConn) Close() error {
	c.opener.closes++
	return nil
}

type countingOpener struct {
	db     *sql.DB
	err    error
	opens  int
	closes int
}

func (o *countingOpener) Open(context.Context) (intdb.Conn, error) {
	o.opens++
	if o.err != nil {
		return nil, o.err
	}
	return trackedConn{DB: o.db, opener: o}, nil
}

func newMockOpener(t *testing.T) (*countingOpener, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &countingOpener{db: db}, mock
}

func assertBalanced(t *testing.T, o *countingOpener, calls int) {
	t.Helper()
	if o.opens != calls || o.closes != calls {
		t.Fatalf("expected %d open/close pairs, got opens=%d closes=%d", calls, o.opens, o.closes)
	}
}
