package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHasTable(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("bus_information").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bus_information"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("broken").
		WillReturnError(errors.New("boom"))

	ctx := context.Background()
	if !HasTable(ctx, sqlDB, "bus_information") {
		t.Fatalf("expected bus_information to exist")
	}
	if HasTable(ctx, sqlDB, "missing") {
		t.Fatalf("missing table reported as present")
	}
	if HasTable(ctx, sqlDB, "broken") {
		t.Fatalf("query error should read as absent")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenerFunc(t *testing.T) {
	want := errors.New("no db")
	var o Opener = OpenerFunc(func(context.Context) (Conn, error) { return nil, want })
	if _, err := o.Open(context.Background()); !errors.Is(err, want) {
		t.Fatalf("OpenerFunc did not forward error: %v", err)
	}
}
