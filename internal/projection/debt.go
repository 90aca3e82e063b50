package projection

import "math"

// AnnualDebtPayment computes the level yearly payment on an amortizing loan.
// A zero principal or zero tenor means no loan, hence no payment; a
// zero-interest loan amortizes straight-line.
func AnnualDebtPayment(principal, annualRate float64, tenorYears int) float64 {
	if principal == 0 || tenorYears == 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / float64(tenorYears)
	}
	growth := math.Pow(1+annualRate, float64(tenorYears))
	return principal * annualRate * growth / (growth - 1)
}
