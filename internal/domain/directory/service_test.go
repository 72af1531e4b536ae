package directory

import (
	"context"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryStore())
}

func TestAddAssignsIDAndLists(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	emp, err := svc.Add(ctx, Draft{Name: "John Doe", Email: "john@example.com", Position: "Senior Accountant", Department: "accounting", Salary: 75000, Status: StatusActive})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if emp.ID == "" {
		t.Fatal("expected a generated id")
	}

	employees, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(employees) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(employees))
	}
	if employees[0].ID != emp.ID || employees[0].Name != "John Doe" {
		t.Fatalf("unexpected roster entry %+v", employees[0])
	}
}

func TestAddRejectsNegativeSalary(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Add(context.Background(), Draft{Name: "X", Salary: -1}); err != ErrNegativeSalary {
		t.Fatalf("expected ErrNegativeSalary, got %v", err)
	}
}

func TestUpdatePreservesIDAndOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, _ := svc.Add(ctx, Draft{Name: "John Doe", Email: "john@example.com", Salary: 75000})
	second, _ := svc.Add(ctx, Draft{Name: "Jane Smith", Email: "jane@example.com", Salary: 85000})

	updated, err := svc.Update(ctx, first.ID, Draft{Name: "John D.", Email: "jd@example.com", Position: "Controller", Salary: 80000, Status: StatusInactive})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != first.ID {
		t.Fatalf("update must preserve id, got %s", updated.ID)
	}
	if updated.Status != StatusInactive {
		t.Fatalf("expected status inactive, got %s", updated.Status)
	}

	employees, _ := svc.List(ctx)
	if employees[0].ID != first.ID || employees[1].ID != second.ID {
		t.Fatal("update must not reorder the roster")
	}
	if employees[0].Name != "John D." {
		t.Fatalf("expected replaced fields, got %+v", employees[0])
	}
}

func TestUpdateMissingEmployee(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Update(context.Background(), "absent", Draft{Name: "X"}); err != ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	emp, _ := svc.Add(ctx, Draft{Name: "John Doe", Salary: 75000})
	if err := svc.Remove(ctx, emp.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, emp.ID); err != nil {
		t.Fatalf("second remove must be a no-op, got %v", err)
	}

	employees, _ := svc.List(ctx)
	if len(employees) != 0 {
		t.Fatalf("expected empty roster, got %d", len(employees))
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	john, _ := svc.Add(ctx, Draft{Name: "John Doe", Email: "john@x.com", Position: "Accountant", Salary: 75000})
	jane, _ := svc.Add(ctx, Draft{Name: "Jane Smith", Email: "jane@x.com", Position: "HR Manager", Salary: 85000})

	all, err := svc.Search(ctx, "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(all) != 2 || all[0].ID != john.ID || all[1].ID != jane.ID {
		t.Fatal("empty query must return the full roster in list order")
	}

	byPosition, _ := svc.Search(ctx, "ACC")
	if len(byPosition) != 1 || byPosition[0].ID != john.ID {
		t.Fatalf("expected case-insensitive position match, got %+v", byPosition)
	}

	byEmail, _ := svc.Search(ctx, "jane@")
	if len(byEmail) != 1 || byEmail[0].ID != jane.ID {
		t.Fatalf("expected email match, got %+v", byEmail)
	}

	none, _ := svc.Search(ctx, "zzz")
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %+v", none)
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	svc.Add(ctx, Draft{Name: "A", Status: StatusActive})
	svc.Add(ctx, Draft{Name: "B", Status: StatusInactive})
	svc.Add(ctx, Draft{Name: "C", Status: StatusActive})

	total, active, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 3 || active != 2 {
		t.Fatalf("expected 3 total / 2 active, got %d/%d", total, active)
	}
}
