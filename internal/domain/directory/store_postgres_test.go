package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestPostgresStoreListOrdersByInsertSeq(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "name", "email", "job_title", "department", "salary", "status", "created_at", "updated_at"}).
		AddRow("emp-1", "John Doe", "john@example.com", "Senior Accountant", "accounting", 75000.0, "active", now, now).
		AddRow("emp-2", "Jane Smith", "jane@example.com", "HR Manager", "hr", 85000.0, "active", now, now)
	mock.ExpectQuery("SELECT id, name, email, job_title").WillReturnRows(rows)

	store := NewPostgresStore(mock)
	employees, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if employees[0].ID != "emp-1" || employees[1].ID != "emp-2" {
		t.Fatalf("unexpected order: %+v", employees)
	}
	if employees[0].Salary != 75000 {
		t.Fatalf("unexpected salary %v", employees[0].Salary)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostgresStoreDeleteMissingRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec("DELETE FROM employees").
		WithArgs("absent").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	store := NewPostgresStore(mock)
	if err := store.Delete(context.Background(), "absent"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostgresStoreReplaceMissingRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec("UPDATE employees").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	store := NewPostgresStore(mock)
	emp := Employee{ID: "absent", Name: "X"}
	if err := store.Replace(context.Background(), emp); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
