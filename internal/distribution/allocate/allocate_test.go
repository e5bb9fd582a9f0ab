package allocate

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		roster  []Entry
		want    []string
		wantErr error
	}{
		{
			name:   "four chapters, rounding cancels out",
			total:  "9000",
			roster: []Entry{{1, 14}, {2, 10}, {3, 12}, {4, 8}},
			// 9000 / 44 = 204.5454... per member
			want: []string{"2863.64", "2045.45", "2454.55", "1636.36"},
		},
		{
			name:   "exact division, no remainder",
			total:  "100",
			roster: []Entry{{1, 3}, {2, 3}, {3, 3}, {4, 1}},
			want:   []string{"30.00", "30.00", "30.00", "10.00"},
		},
		{
			name:   "remainder cent goes to first chapter",
			total:  "10",
			roster: []Entry{{1, 1}, {2, 1}, {3, 1}},
			// 3.33 each leaves 0.01 unassigned
			want: []string{"3.34", "3.33", "3.33"},
		},
		{
			name:   "negative remainder subtracted from first chapter",
			total:  "100",
			roster: []Entry{{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1}},
			// 16.67 each over-assigns 0.02
			want: []string{"16.65", "16.67", "16.67", "16.67", "16.67", "16.67"},
		},
		{
			name:   "single chapter takes the full amount",
			total:  "1234.56",
			roster: []Entry{{7, 42}},
			want:   []string{"1234.56"},
		},
		{
			name:    "empty roster",
			total:   "100",
			roster:  []Entry{},
			wantErr: ErrEmptyRoster,
		},
		{
			name:    "zero amount",
			total:   "0",
			roster:  []Entry{{1, 5}},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			total:   "-50",
			roster:  []Entry{{1, 5}},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "chapter with zero members",
			total:   "100",
			roster:  []Entry{{1, 5}, {2, 0}},
			wantErr: ErrInvalidMemberCount,
		},
		{
			// 0.005 per member rounds up to 0.01 each; the -0.05
			// remainder would drive the first share below zero.
			name:    "total too small to cover the roster",
			total:   "0.05",
			roster:  []Entry{{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1}, {7, 1}, {8, 1}, {9, 1}, {10, 1}},
			wantErr: ErrAmountTooSmall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := Allocate(dec(tt.total), tt.roster)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("Allocate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Allocate() unexpected error: %v", err)
			}

			if len(shares) != len(tt.roster) {
				t.Fatalf("Allocate() returned %d shares, want %d", len(shares), len(tt.roster))
			}

			sum := decimal.Zero
			for i, share := range shares {
				if share.ChapterID != tt.roster[i].ChapterID {
					t.Errorf("share %d chapter = %d, want %d", i, share.ChapterID, tt.roster[i].ChapterID)
				}
				if !share.Amount.Equal(dec(tt.want[i])) {
					t.Errorf("share %d amount = %s, want %s", i, share.Amount, tt.want[i])
				}
				if share.Amount.IsNegative() {
					t.Errorf("share %d amount %s is negative", i, share.Amount)
				}
				sum = sum.Add(share.Amount)
			}

			if !sum.Equal(dec(tt.total)) {
				t.Errorf("sum of shares = %s, want exactly %s", sum, tt.total)
			}
		})
	}
}

// The sum invariant must hold for any valid input, not just curated
// fixtures, so sweep a grid of awkward totals and roster shapes.
func TestAllocateSumInvariant(t *testing.T) {
	totals := []string{"0.01", "0.05", "1", "9.99", "100", "333.33", "1000.01", "99999.97", "10000000"}
	rosters := [][]Entry{
		{{1, 1}},
		{{1, 1}, {2, 1}, {3, 1}},
		{{1, 7}, {2, 13}},
		{{1, 3}, {2, 5}, {3, 7}, {4, 11}, {5, 13}},
		{{1, 1}, {2, 99}},
		{{1, 14}, {2, 10}, {3, 12}, {4, 8}, {5, 21}, {6, 6}, {7, 17}},
	}

	for _, total := range totals {
		for _, roster := range rosters {
			shares, err := Allocate(dec(total), roster)
			if err != nil {
				t.Fatalf("Allocate(%s, %v) error: %v", total, roster, err)
			}

			sum := decimal.Zero
			for _, share := range shares {
				if share.Amount.IsNegative() {
					t.Errorf("Allocate(%s, %v): negative share %s", total, roster, share.Amount)
				}
				sum = sum.Add(share.Amount)
			}
			if !sum.Equal(dec(total)) {
				t.Errorf("Allocate(%s, %v): shares sum to %s", total, roster, sum)
			}
		}
	}
}

func TestAllocateDeterminism(t *testing.T) {
	roster := []Entry{{1, 3}, {2, 3}, {3, 4}, {4, 9}}
	total := dec("777.77")

	first, err := Allocate(total, roster)
	if err != nil {
		t.Fatalf("Allocate() error: %v", err)
	}
	second, err := Allocate(total, roster)
	if err != nil {
		t.Fatalf("Allocate() error: %v", err)
	}

	for i := range first {
		if first[i].ChapterID != second[i].ChapterID || !first[i].Amount.Equal(second[i].Amount) {
			t.Errorf("run 1 share %d = %+v, run 2 = %+v", i, first[i], second[i])
		}
	}
}

// Only the first entry may deviate from its straightforwardly rounded
// fair share, and only by the accumulated rounding remainder.
func TestAllocateRemainderPlacement(t *testing.T) {
	roster := []Entry{{1, 1}, {2, 1}, {3, 1}}
	total := dec("10")

	shares, err := Allocate(total, roster)
	if err != nil {
		t.Fatalf("Allocate() error: %v", err)
	}

	costPerMember := total.Div(decimal.NewFromInt(3))
	for i := 1; i < len(shares); i++ {
		rounded := costPerMember.Mul(decimal.NewFromInt(int64(roster[i].MemberCount))).Round(2)
		if !shares[i].Amount.Equal(rounded) {
			t.Errorf("share %d = %s, want plain rounded value %s", i, shares[i].Amount, rounded)
		}
	}

	firstRounded := costPerMember.Round(2)
	adjustment := shares[0].Amount.Sub(firstRounded)
	if !adjustment.Equal(dec("0.01")) {
		t.Errorf("first share absorbed %s, want 0.01", adjustment)
	}
}

func TestCostPerMember(t *testing.T) {
	got := CostPerMember(dec("9000"), 44)
	if !got.Equal(dec("204.55")) {
		t.Errorf("CostPerMember(9000, 44) = %s, want 204.55", got)
	}

	if !CostPerMember(dec("100"), 0).IsZero() {
		t.Errorf("CostPerMember with zero members should be zero")
	}
}
