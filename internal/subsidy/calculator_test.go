package subsidy

import "testing"

func TestIsEligible(t *testing.T) {
	cases := []struct {
		income int
		want   bool
	}{
		{0, true},
		{45000, true},
		{99999, true},
		{100000, true}, // ceiling is inclusive
		{100001, false},
		{120000, false},
	}
	for _, tc := range cases {
		if got := IsEligible(tc.income); got != tc.want {
			t.Errorf("IsEligible(%d) = %v, want %v", tc.income, got, tc.want)
		}
	}
}

func TestCalculateBrackets(t *testing.T) {
	cases := []struct {
		name           string
		income         int
		wantPercentage int
		wantAmount     int
	}{
		{"nil income", 0, 50, 1500},
		{"first slab lower bound", 1, 40, 1200},
		{"first slab upper bound", 25000, 40, 1200},
		{"second slab lower bound", 25001, 30, 900},
		{"second slab upper bound", 50000, 30, 900},
		{"third slab lower bound", 50001, 20, 600},
		{"third slab upper bound", 75000, 20, 600},
		{"fourth slab lower bound", 75001, 10, 300},
		{"ceiling", 100000, 10, 300},
		{"above ceiling", 100001, 0, 0},
		{"well above ceiling", 120000, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.income)
			if got.Percentage != tc.wantPercentage {
				t.Errorf("Calculate(%d).Percentage = %d, want %d", tc.income, got.Percentage, tc.wantPercentage)
			}
			if got.Amount != tc.wantAmount {
				t.Errorf("Calculate(%d).Amount = %d, want %d", tc.income, got.Amount, tc.wantAmount)
			}
		})
	}
}

// TestBracketsCoverEligibleRange walks the whole eligible range and checks the
// slabs are exhaustive and non-overlapping: every income matches exactly one.
func TestBracketsCoverEligibleRange(t *testing.T) {
	for income := 0; income <= EligibilityCeiling; income++ {
		matches := 0
		for _, bracket := range Brackets {
			if income >= bracket.MinIncome && income <= bracket.MaxIncome {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("income %d matches %d brackets, want exactly 1", income, matches)
		}
	}
}
