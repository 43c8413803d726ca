package salary

import (
	"math"

	"payroll_system/models"

	"github.com/shopspring/decimal"
)

// Salary component rates, as fractions of the basic salary.
var (
	hraRate = decimal.RequireFromString("0.20")
	daRate  = decimal.RequireFromString("0.10")
	taxRate = decimal.RequireFromString("0.05")
	pfRate  = decimal.RequireFromString("0.02")
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// scaled multiplies v by rate. Non-finite values cannot be represented as
// a decimal and are computed in float64 instead.
func scaled(v float64, rate decimal.Decimal) float64 {
	if !finite(v) {
		return v * rate.InexactFloat64()
	}
	return dec(v).Mul(rate).InexactFloat64()
}

// HRA is the house rent allowance, 20% of basic.
func HRA(e models.Employee) float64 {
	return scaled(e.BasicSalary, hraRate)
}

// DA is the dearness allowance, 10% of basic.
func DA(e models.Employee) float64 {
	return scaled(e.BasicSalary, daRate)
}

// Tax is the flat 5% tax deduction.
func Tax(e models.Employee) float64 {
	return scaled(e.BasicSalary, taxRate)
}

// ProvidentFund is the 2% PF deduction.
func ProvidentFund(e models.Employee) float64 {
	return scaled(e.BasicSalary, pfRate)
}

func OvertimePay(e models.Employee) float64 {
	if !finite(e.OvertimeHours, e.OvertimeRate) {
		return e.OvertimeHours * e.OvertimeRate
	}
	return dec(e.OvertimeHours).Mul(dec(e.OvertimeRate)).InexactFloat64()
}

// NetSalary is basic + HRA + DA + bonus + overtime - tax - PF. It depends
// on nothing but the four numeric fields of e.
func NetSalary(e models.Employee) float64 {
	if !finite(e.BasicSalary, e.OvertimeHours, e.OvertimeRate, e.Bonus) {
		b := e.BasicSalary
		return b + HRA(e) + DA(e) + e.Bonus + OvertimePay(e) - Tax(e) - ProvidentFund(e)
	}
	return netSalary(e).InexactFloat64()
}

func netSalary(e models.Employee) decimal.Decimal {
	basic := dec(e.BasicSalary)
	return basic.
		Add(basic.Mul(hraRate)).
		Add(basic.Mul(daRate)).
		Add(dec(e.Bonus)).
		Add(dec(e.OvertimeHours).Mul(dec(e.OvertimeRate))).
		Sub(basic.Mul(taxRate)).
		Sub(basic.Mul(pfRate))
}

// Breakdown computes every derived component of e. ProcessedAt is left zero.
func Breakdown(e models.Employee) models.Payslip {
	return models.Payslip{
		Employee:    e,
		HRA:         HRA(e),
		DA:          DA(e),
		Tax:         Tax(e),
		PF:          ProvidentFund(e),
		OvertimePay: OvertimePay(e),
		NetSalary:   NetSalary(e),
	}
}
