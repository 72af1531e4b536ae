package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresLedgerStore struct {
	DB Querier
}

func NewPostgresLedgerStore(db Querier) *PostgresLedgerStore {
	return &PostgresLedgerStore{DB: db}
}

func (s *PostgresLedgerStore) Append(ctx context.Context, rec Record) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payroll_records (id, employee_id, employee_name, pay_period, hours_worked, overtime_hours, bonuses, deductions, gross_pay, taxes, net_pay, processed_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
  `, rec.ID, rec.EmployeeID, rec.EmployeeName, rec.PayPeriod, rec.HoursWorked, rec.OvertimeHours, rec.Bonuses, rec.Deductions, rec.GrossPay, rec.Taxes, rec.NetPay, rec.ProcessedDate)
	return err
}

func (s *PostgresLedgerStore) Get(ctx context.Context, id string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, employee_name, pay_period, hours_worked, overtime_hours, bonuses, deductions, gross_pay, taxes, net_pay, processed_date
    FROM payroll_records
    WHERE id = $1
  `, id)
	return scanRecord(row)
}

func (s *PostgresLedgerStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, employee_name, pay_period, hours_worked, overtime_hours, bonuses, deductions, gross_pay, taxes, net_pay, processed_date
    FROM payroll_records
    ORDER BY append_seq
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (s *PostgresLedgerStore) TotalNet(ctx context.Context) (float64, error) {
	var total float64
	err := s.DB.QueryRow(ctx, "SELECT COALESCE(SUM(net_pay), 0) FROM payroll_records").Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.PayPeriod, &rec.HoursWorked, &rec.OvertimeHours, &rec.Bonuses, &rec.Deductions, &rec.GrossPay, &rec.Taxes, &rec.NetPay, &rec.ProcessedDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

var _ LedgerStoreAPI = (*PostgresLedgerStore)(nil)
