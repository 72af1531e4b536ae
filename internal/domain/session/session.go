package session

import (
	"context"
	"log/slog"
	"sync"

	"paydesk/internal/domain/directory"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/events"
)

type State string

const (
	StateIdle       State = "idle"
	StateEditing    State = "editing"
	StateProcessing State = "processing"
)

// Service is the dashboard's orchestrator: a single-user state machine
// over the directory and the ledger. At most one of the editing and
// processing states is active at any instant; every trigger is serialized
// by the mutex so a record only becomes visible after its computation
// completed.
type Service struct {
	mu         sync.Mutex
	state      State
	editID     string
	processing *directory.Employee

	roster    *directory.Service
	ledger    *payroll.Ledger
	publisher events.Publisher
}

// Stats is the aggregate block the dashboard header shows.
type Stats struct {
	TotalEmployees  int     `json:"totalEmployees"`
	ActiveEmployees int     `json:"activeEmployees"`
	TotalPayroll    float64 `json:"totalPayroll"`
}

// View is a read-only snapshot of the session for the transport layer.
type View struct {
	State        State               `json:"state"`
	EditTargetID string              `json:"editTargetId,omitempty"`
	Processing   *directory.Employee `json:"processing,omitempty"`
}

func NewService(roster *directory.Service, ledger *payroll.Ledger, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		state:     StateIdle,
		roster:    roster,
		ledger:    ledger,
		publisher: publisher,
	}
}

func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{State: s.state, EditTargetID: s.editID}
	if s.processing != nil {
		emp := *s.processing
		view.Processing = &emp
	}
	return view
}

// BeginAdd opens the employee form for a new employee.
func (s *Service) BeginAdd() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return ErrNotIdle
	}
	s.state = StateEditing
	s.editID = ""
	return nil
}

// BeginEdit opens the employee form targeting an existing employee.
func (s *Service) BeginEdit(ctx context.Context, employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return ErrNotIdle
	}
	if _, err := s.roster.Get(ctx, employeeID); err != nil {
		return err
	}
	s.state = StateEditing
	s.editID = employeeID
	return nil
}

// Save commits the open form through the directory and returns to idle.
// On a directory error the form stays open so the caller can correct and
// re-save.
func (s *Service) Save(ctx context.Context, draft directory.Draft) (*directory.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return nil, ErrNotEditing
	}

	var emp *directory.Employee
	var err error
	if s.editID == "" {
		emp, err = s.roster.Add(ctx, draft)
	} else {
		emp, err = s.roster.Update(ctx, s.editID, draft)
	}
	if err != nil {
		return nil, err
	}

	s.state = StateIdle
	s.editID = ""
	return emp, nil
}

// CancelEdit discards the open form without touching the directory.
func (s *Service) CancelEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return ErrNotEditing
	}
	s.state = StateIdle
	s.editID = ""
	return nil
}

// BeginProcess opens a payroll run for exactly one employee, capturing a
// snapshot of its identity.
func (s *Service) BeginProcess(ctx context.Context, employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return ErrNotIdle
	}
	emp, err := s.roster.Get(ctx, employeeID)
	if err != nil {
		return err
	}
	s.state = StateProcessing
	s.processing = emp
	return nil
}

// CloseProcess discards the in-progress run; the ledger is untouched.
func (s *Service) CloseProcess() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateProcessing {
		return ErrNotProcessing
	}
	s.state = StateIdle
	s.processing = nil
	return nil
}

// Preview computes the breakdown for the open run without appending
// anything; the processor form shows it live as inputs change.
func (s *Service) Preview(in payroll.Input) (payroll.Breakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateProcessing {
		return payroll.Breakdown{}, ErrNotProcessing
	}
	return payroll.Compute(s.processing.Salary, in), nil
}

// FinalizeProcess runs the calculator on the open run, appends the record
// to the ledger, and returns to idle. The record snapshots the employee's
// identity at processing time.
func (s *Service) FinalizeProcess(ctx context.Context, in payroll.Input) (*payroll.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateProcessing {
		return nil, ErrNotProcessing
	}
	rec, err := s.finalizeLocked(ctx, s.processing, in)
	if err != nil {
		return nil, err
	}
	s.state = StateIdle
	s.processing = nil
	return rec, nil
}

// Process is the one-shot flow: begin and finalize a run for the employee
// in a single step. The session must be idle and stays idle.
func (s *Service) Process(ctx context.Context, employeeID string, in payroll.Input) (*payroll.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return nil, ErrNotIdle
	}
	emp, err := s.roster.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return s.finalizeLocked(ctx, emp, in)
}

func (s *Service) finalizeLocked(ctx context.Context, emp *directory.Employee, in payroll.Input) (*payroll.Record, error) {
	if in.PayPeriod == "" {
		in.PayPeriod = payroll.DefaultPayPeriod
	}
	out := payroll.Compute(emp.Salary, in)

	rec, err := s.ledger.Append(ctx, payroll.Record{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.Name,
		PayPeriod:     in.PayPeriod,
		HoursWorked:   in.HoursWorked,
		OvertimeHours: in.OvertimeHours,
		Bonuses:       in.Bonuses,
		Deductions:    in.Deductions,
		GrossPay:      out.GrossPay,
		Taxes:         out.Taxes,
		NetPay:        out.NetPay,
	})
	if err != nil {
		return nil, err
	}

	event := events.PayrollProcessed{
		RecordID:      rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		GrossPay:      rec.GrossPay,
		NetPay:        rec.NetPay,
		ProcessedDate: rec.ProcessedDate,
	}
	if err := s.publisher.Publish(ctx, events.TopicPayrollProcessed, event); err != nil {
		// The record is already committed; event delivery is best effort.
		slog.Warn("payroll.processed publish failed", "recordId", rec.ID, "err", err)
	}

	return rec, nil
}

// Stats reports headcount, active headcount, and total net payroll paid.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	total, active, err := s.roster.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	paid, err := s.ledger.TotalNetPay(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalEmployees: total, ActiveEmployees: active, TotalPayroll: paid}, nil
}
