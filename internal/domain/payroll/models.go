package payroll

import "time"

// Input is the ephemeral per-run pay period report. It only lives while a
// run is being composed for one employee.
type Input struct {
	HoursWorked   float64 `json:"hoursWorked"`
	OvertimeHours float64 `json:"overtimeHours"`
	Bonuses       float64 `json:"bonuses"`
	Deductions    float64 `json:"deductions"`
	PayPeriod     string  `json:"payPeriod"`
}

// NewInput returns the defaults the processor form starts from.
func NewInput() Input {
	return Input{HoursWorked: DefaultHoursWorked, PayPeriod: DefaultPayPeriod}
}

// Breakdown is the computed result of one pay run. Amounts are raw
// float64; presentation rounds to cents.
type Breakdown struct {
	HourlyRate     float64 `json:"hourlyRate"`
	RegularPay     float64 `json:"regularPay"`
	OvertimePay    float64 `json:"overtimePay"`
	GrossPay       float64 `json:"grossPay"`
	FederalTax     float64 `json:"federalTax"`
	StateTax       float64 `json:"stateTax"`
	SocialSecurity float64 `json:"socialSecurity"`
	Medicare       float64 `json:"medicare"`
	Taxes          float64 `json:"taxes"`
	NetPay         float64 `json:"netPay"`
}

// Record is a finalized pay run. Employee identity is a snapshot taken at
// processing time, never a live reference; later roster edits or deletes
// must not alter it.
type Record struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	EmployeeName  string    `json:"employeeName"`
	PayPeriod     string    `json:"payPeriod"`
	HoursWorked   float64   `json:"hoursWorked"`
	OvertimeHours float64   `json:"overtimeHours"`
	Bonuses       float64   `json:"bonuses"`
	Deductions    float64   `json:"deductions"`
	GrossPay      float64   `json:"grossPay"`
	Taxes         float64   `json:"taxes"`
	NetPay        float64   `json:"netPay"`
	ProcessedDate time.Time `json:"processedDate"`
}
