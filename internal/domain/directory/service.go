package directory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service owns the employee roster. All mutations go through it so the
// stores stay free of lifecycle rules.
type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Add inserts a new employee with a freshly assigned ID and returns the
// stored record.
func (s *Service) Add(ctx context.Context, draft Draft) (*Employee, error) {
	if draft.Salary < 0 {
		return nil, ErrNegativeSalary
	}
	now := time.Now().UTC()
	emp := Employee{
		ID:         uuid.NewString(),
		Name:       draft.Name,
		Email:      draft.Email,
		Position:   draft.Position,
		Department: draft.Department,
		Salary:     draft.Salary,
		Status:     normalizeStatus(draft.Status),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.Insert(ctx, emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// Update replaces every mutable field of the employee; the ID, creation
// time, and roster position are preserved.
func (s *Service) Update(ctx context.Context, id string, draft Draft) (*Employee, error) {
	if draft.Salary < 0 {
		return nil, ErrNegativeSalary
	}
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	emp := Employee{
		ID:         current.ID,
		Name:       draft.Name,
		Email:      draft.Email,
		Position:   draft.Position,
		Department: draft.Department,
		Salary:     draft.Salary,
		Status:     normalizeStatus(draft.Status),
		CreatedAt:  current.CreatedAt,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.store.Replace(ctx, emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// Remove deletes the employee. Removing an absent ID is a no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, ErrEmployeeNotFound) {
		return nil
	}
	return err
}

func (s *Service) Get(ctx context.Context, id string) (*Employee, error) {
	return s.store.Get(ctx, id)
}

// List returns the roster in insertion order.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	employees, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []Employee{}
	}
	return employees, nil
}

// Search returns employees whose name, email, or position contains the
// query as a case-insensitive substring. An empty query returns the full
// roster in list order.
func (s *Service) Search(ctx context.Context, query string) ([]Employee, error) {
	employees, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	if needle == "" {
		return employees, nil
	}
	matched := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if containsFold(emp.Name, needle) || containsFold(emp.Email, needle) || containsFold(emp.Position, needle) {
			matched = append(matched, emp)
		}
	}
	return matched, nil
}

// Count returns headcount and the number of active employees.
func (s *Service) Count(ctx context.Context) (total, active int, err error) {
	employees, err := s.store.List(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, emp := range employees {
		if emp.Status == StatusActive {
			active++
		}
	}
	return len(employees), active, nil
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

func normalizeStatus(status string) string {
	if strings.EqualFold(strings.TrimSpace(status), StatusInactive) {
		return StatusInactive
	}
	return StatusActive
}
