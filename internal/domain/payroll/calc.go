package payroll

// Compute derives one pay period's amounts from an annual salary and the
// reported input. Pure and deterministic: it accepts any numeric input,
// never errors, and does not clamp. Net pay goes negative when deductions
// exceed gross minus taxes; callers that want a floor must apply their own.
func Compute(annualSalary float64, in Input) Breakdown {
	hourlyRate := annualSalary / HoursPerYear
	regularPay := in.HoursWorked * hourlyRate
	overtimePay := in.OvertimeHours * hourlyRate * OvertimeMultiplier
	grossPay := regularPay + overtimePay + in.Bonuses

	federal := grossPay * FederalTaxRate
	state := grossPay * StateTaxRate
	socialSecurity := grossPay * SocialSecurityRate
	medicare := grossPay * MedicareRate
	taxes := federal + state + socialSecurity + medicare

	return Breakdown{
		HourlyRate:     hourlyRate,
		RegularPay:     regularPay,
		OvertimePay:    overtimePay,
		GrossPay:       grossPay,
		FederalTax:     federal,
		StateTax:       state,
		SocialSecurity: socialSecurity,
		Medicare:       medicare,
		Taxes:          taxes,
		NetPay:         grossPay - taxes - in.Deductions,
	}
}
