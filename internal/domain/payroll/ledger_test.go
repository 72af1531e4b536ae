package payroll

import (
	"context"
	"testing"
	"time"
)

func TestAppendAssignsIDAndDate(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(NewMemoryLedgerStore())

	rec, err := ledger.Append(ctx, Record{EmployeeID: "emp-1", EmployeeName: "John Doe", NetPay: 942.55})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected assigned id")
	}
	if rec.ProcessedDate.IsZero() {
		t.Fatal("expected assigned processed date")
	}
}

func TestAppendKeepsPresetDate(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(NewMemoryLedgerStore())

	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec, err := ledger.Append(ctx, Record{EmployeeID: "emp-1", ProcessedDate: when})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !rec.ProcessedDate.Equal(when) {
		t.Fatalf("expected preset date preserved, got %v", rec.ProcessedDate)
	}
}

func TestAppendIsMonotonic(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(NewMemoryLedgerStore())

	nets := []float64{942.55, 1500, -12.5}
	var running float64
	for i, net := range nets {
		if _, err := ledger.Append(ctx, Record{EmployeeID: "emp-1", NetPay: net}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		records, err := ledger.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(records) != i+1 {
			t.Fatalf("expected %d records, got %d", i+1, len(records))
		}
		running += net
		total, err := ledger.TotalNetPay(ctx)
		if err != nil {
			t.Fatalf("total: %v", err)
		}
		if total != running {
			t.Fatalf("expected running total %v, got %v", running, total)
		}
	}
}

func TestTotalNetPayEmptyLedger(t *testing.T) {
	ledger := NewLedger(NewMemoryLedgerStore())
	total, err := ledger.TotalNetPay(context.Background())
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected zero for empty ledger, got %v", total)
	}
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(NewMemoryLedgerStore())

	appended, err := ledger.Append(ctx, Record{EmployeeID: "emp-1", EmployeeName: "John Doe", NetPay: 100})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, _ := ledger.List(ctx)
	records[0].EmployeeName = "tampered"
	records[0].NetPay = 0

	again, _ := ledger.List(ctx)
	if again[0].EmployeeName != "John Doe" || again[0].NetPay != 100 {
		t.Fatalf("ledger records must be immutable, got %+v", again[0])
	}

	got, err := ledger.Get(ctx, appended.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EmployeeName != "John Doe" {
		t.Fatalf("unexpected record %+v", got)
	}
}
