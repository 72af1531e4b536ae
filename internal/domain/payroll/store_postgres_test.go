package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestPostgresLedgerStoreAppend(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	rec := Record{
		ID:            "rec-1",
		EmployeeID:    "emp-1",
		EmployeeName:  "John Doe",
		PayPeriod:     DefaultPayPeriod,
		HoursWorked:   40,
		GrossPay:      1442.31,
		Taxes:         499.76,
		NetPay:        942.55,
		ProcessedDate: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO payroll_records").
		WithArgs(rec.ID, rec.EmployeeID, rec.EmployeeName, rec.PayPeriod, rec.HoursWorked, rec.OvertimeHours, rec.Bonuses, rec.Deductions, rec.GrossPay, rec.Taxes, rec.NetPay, rec.ProcessedDate).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewPostgresLedgerStore(mock)
	if err := store.Append(context.Background(), rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostgresLedgerStoreTotalNet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(1234.56))

	store := NewPostgresLedgerStore(mock)
	total, err := store.TotalNet(context.Background())
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 1234.56 {
		t.Fatalf("expected 1234.56, got %v", total)
	}
}

func TestPostgresLedgerStoreGetMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT id, employee_id").
		WithArgs("absent").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	store := NewPostgresLedgerStore(mock)
	if _, err := store.Get(context.Background(), "absent"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
