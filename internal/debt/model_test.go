package debt

import "testing"

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusInReview, true},
		{StatusPending, StatusOverdue, true},
		{StatusPending, StatusApproved, false},
		{StatusInReview, StatusApproved, true},
		{StatusInReview, StatusPending, true},
		{StatusInReview, StatusOverdue, false},
		{StatusOverdue, StatusInReview, true},
		{StatusOverdue, StatusApproved, false},
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusInReview, false},
		{StatusApproved, StatusOverdue, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidType(t *testing.T) {
	for _, valid := range []Type{TypeDues, TypeFine, TypeContribution} {
		if !ValidType(valid) {
			t.Errorf("ValidType(%s) = false, want true", valid)
		}
	}
	if ValidType("LOAN") {
		t.Error("ValidType(LOAN) = true, want false")
	}
}
