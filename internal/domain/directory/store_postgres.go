package directory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the slice of pgxpool.Pool the store uses; pgxmock satisfies
// it in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStore struct {
	DB Querier
}

func NewPostgresStore(db Querier) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) Insert(ctx context.Context, emp Employee) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (id, name, email, job_title, department, salary, status, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
  `, emp.ID, emp.Name, emp.Email, emp.Position, emp.Department, emp.Salary, emp.Status, emp.CreatedAt, emp.UpdatedAt)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, email, job_title, department, salary, status, created_at, updated_at
    FROM employees
    WHERE id = $1
  `, id)
	return scanEmployee(row)
}

func (s *PostgresStore) Replace(ctx context.Context, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $2, email = $3, job_title = $4, department = $5, salary = $6, status = $7, updated_at = $8
    WHERE id = $1
  `, emp.ID, emp.Name, emp.Email, emp.Position, emp.Department, emp.Salary, emp.Status, emp.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, email, job_title, department, salary, status, created_at, updated_at
    FROM employees
    ORDER BY insert_seq
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}
	return employees, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Position, &emp.Department, &emp.Salary, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

var _ StoreAPI = (*PostgresStore)(nil)
