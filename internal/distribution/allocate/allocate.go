// Package allocate computes per-chapter shares of a total amount,
// proportional to chapter membership. It is pure calculation: no I/O,
// no side effects.
//
// Rounding slack is absorbed by the first roster entry so that the
// shares always sum to the input total exactly. This assignment is
// order-dependent on purpose; changing it changes financial outcomes.
package allocate

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRoster        = errors.New("roster must contain at least one chapter")
	ErrNonPositiveAmount  = errors.New("total amount must be positive")
	ErrInvalidMemberCount = errors.New("every chapter must have at least one member")
	ErrAmountTooSmall     = errors.New("total amount too small to distribute across the roster")
)

// Entry is one chapter in the roster snapshot
type Entry struct {
	ChapterID   int64
	MemberCount int
}

// Share is the amount assigned to one chapter
type Share struct {
	ChapterID int64
	Amount    decimal.Decimal
}

// Allocate distributes total across the roster proportionally to
// member counts. Each share is rounded half-up to 2 decimal places;
// any remainder left by rounding is added to the first entry, so the
// returned shares sum to total exactly. A total so small that the
// remainder would push the first share below zero is rejected: every
// share must stay non-negative.
func Allocate(total decimal.Decimal, roster []Entry) ([]Share, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNonPositiveAmount
	}

	totalMembers := 0
	for _, entry := range roster {
		if entry.MemberCount < 1 {
			return nil, ErrInvalidMemberCount
		}
		totalMembers += entry.MemberCount
	}

	costPerMember := total.Div(decimal.NewFromInt(int64(totalMembers)))

	shares := make([]Share, len(roster))
	assigned := decimal.Zero
	for i, entry := range roster {
		amount := costPerMember.Mul(decimal.NewFromInt(int64(entry.MemberCount))).Round(2)
		shares[i] = Share{ChapterID: entry.ChapterID, Amount: amount}
		assigned = assigned.Add(amount)
	}

	if remainder := total.Sub(assigned); !remainder.IsZero() {
		shares[0].Amount = shares[0].Amount.Add(remainder)
	}

	if shares[0].Amount.IsNegative() {
		return nil, ErrAmountTooSmall
	}

	return shares, nil
}

// CostPerMember returns the per-member rate rounded for display.
// The allocation itself never uses the rounded value.
func CostPerMember(total decimal.Decimal, totalMembers int) decimal.Decimal {
	if totalMembers == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(totalMembers))).Round(2)
}
