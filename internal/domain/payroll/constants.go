package payroll

// Policy values, not derived figures. Changing payroll policy means
// changing these, never the calculation itself.
const (
	HoursPerYear       = 2080.0
	OvertimeMultiplier = 1.5

	FederalTaxRate     = 0.22
	StateTaxRate       = 0.05
	SocialSecurityRate = 0.062
	MedicareRate       = 0.0145

	DefaultPayPeriod   = "bi-weekly"
	DefaultHoursWorked = 40.0
)
