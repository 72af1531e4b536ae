package events

import (
	"context"
	"time"
)

const TopicPayrollProcessed = "payroll.processed"

// Publisher emits domain events after state changes commit. Implementations
// must not be consulted before the change is persisted.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

// PayrollProcessed is emitted once per finalized pay run.
type PayrollProcessed struct {
	RecordID      string    `json:"recordId"`
	EmployeeID    string    `json:"employeeId"`
	EmployeeName  string    `json:"employeeName"`
	GrossPay      float64   `json:"grossPay"`
	NetPay        float64   `json:"netPay"`
	ProcessedDate time.Time `json:"processedDate"`
}
