// Package subsidy implements the income-based eligibility check and the
// tiered subsidy calculation for new fuel connections.
// This is pure domain logic - no I/O, no side effects.
package subsidy

// BaseConnectionCost is the fixed cost of a new connection in whole currency
// units; the subsidy covers a bracket-dependent share of it.
const BaseConnectionCost = 3000

// EligibilityCeiling is the inclusive annual-income upper bound for the scheme.
const EligibilityCeiling = 100000

// Bracket maps an inclusive income range onto a subsidy percentage.
type Bracket struct {
	MinIncome  int
	MaxIncome  int
	Percentage int
	Label      string
}

// Brackets partitions [0, EligibilityCeiling] into ordered, non-overlapping,
// boundary-inclusive ranges. Kept exported so the admin surface can render
// the slab table.
var Brackets = []Bracket{
	{MinIncome: 0, MaxIncome: 0, Percentage: 50, Label: "Nil income"},
	{MinIncome: 1, MaxIncome: 25000, Percentage: 40, Label: "Income up to 25,000"},
	{MinIncome: 25001, MaxIncome: 50000, Percentage: 30, Label: "Income up to 50,000"},
	{MinIncome: 50001, MaxIncome: 75000, Percentage: 20, Label: "Income up to 75,000"},
	{MinIncome: 75001, MaxIncome: 100000, Percentage: 10, Label: "Income up to 1,00,000"},
}

// Result is the outcome of a subsidy calculation.
type Result struct {
	Percentage int `json:"percentage"`
	Amount     int `json:"amount"`
}

// IsEligible reports whether the declared income qualifies for the scheme.
func IsEligible(income int) bool {
	return income <= EligibilityCeiling
}

// Calculate returns the subsidy share for the declared income. Incomes that
// fall in no bracket (above the ceiling, or negative) yield a zero result
// rather than an error; eligibility is the caller's gate, not this table's.
//
// Amounts are rounded half-up to the whole currency unit. The configured
// percentages all divide BaseConnectionCost exactly, so rounding only
// matters if the base cost changes.
func Calculate(income int) Result {
	for _, bracket := range Brackets {
		if income >= bracket.MinIncome && income <= bracket.MaxIncome {
			amount := (BaseConnectionCost*bracket.Percentage + 50) / 100
			return Result{Percentage: bracket.Percentage, Amount: amount}
		}
	}
	return Result{}
}
