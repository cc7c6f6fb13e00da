// Package fincalc provides compound-interest calculations for the fincalc CLI.
package fincalc

import "math"

// CompoundInterest returns the final capital after compounding the principal
// at the given annual rate for the given number of years.
// compoundingFrequency is the number of compounding periods per year
// (1 = annually, 12 = monthly).
func CompoundInterest(principal, annualRate, years, compoundingFrequency float64) float64 {
	ratePerPeriod := annualRate / compoundingFrequency
	numberOfPeriods := years * compoundingFrequency
	return principal * math.Pow(1+ratePerPeriod, numberOfPeriods)
}
