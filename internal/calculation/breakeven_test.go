package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func cf(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func TestFindBreakEvenYear(t *testing.T) {
	tests := []struct {
		name   string
		rentCF []decimal.Decimal
		ownCF  []decimal.Decimal
		want   *int
	}{
		{
			name:   "crossing in year two",
			rentCF: cf(0, 18000, 18000, 18000),
			ownCF:  cf(20000, 12000, 12000, 12000),
			want:   intPtr(2),
		},
		{
			name:   "crossing in final year via sale proceeds",
			rentCF: cf(0, 18000, 18540),
			ownCF:  cf(60000, 25000, -40000),
			want:   intPtr(2),
		},
		{
			name:   "no crossing",
			rentCF: cf(0, 18000, 18540),
			ownCF:  cf(90000, 25000, 25000),
			want:   nil,
		},
		{
			name:   "crossing at index zero reports year one",
			rentCF: cf(0, 18000),
			ownCF:  cf(0, 17000),
			want:   intPtr(1),
		},
		{
			name:   "exact tie counts as break-even",
			rentCF: cf(0, 18000, 18000),
			ownCF:  cf(10000, 8000, 20000),
			want:   intPtr(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindBreakEvenYear(tt.rentCF, tt.ownCF)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("FindBreakEvenYear() = %d, want none", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("FindBreakEvenYear() = none, want %d", *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("FindBreakEvenYear() = %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestFindBreakEvenYearNeverReturnsZero(t *testing.T) {
	// Both sides start at zero: the crossing is detected at the year-0
	// snapshot but must be reported as year 1.
	got := FindBreakEvenYear(cf(0, 100), cf(0, 200))
	if got == nil || *got != 1 {
		t.Fatalf("FindBreakEvenYear() = %v, want 1", got)
	}
}

func intPtr(v int) *int { return &v }
