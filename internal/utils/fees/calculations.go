package fees

import (
	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FeeBreakdown is the result of splitting a gross payment into the platform
// fee and the worker's net amount. Gross = Net + Fee always holds.
type FeeBreakdown struct {
	Gross decimal.Decimal
	Fee   decimal.Decimal
	Net   decimal.Decimal
}

// ComputePlatformFee splits amount per the fee policy. The fee is a
// percentage plus a fixed component, clamped between the policy minimum and
// maximum (a zero maximum means no cap), rounded to 2 decimal places at each
// step, and never allowed to exceed the gross amount itself. A disabled
// policy or non-positive amount yields a zero fee.
func ComputePlatformFee(amount decimal.Decimal, policy domain.FeePolicy) FeeBreakdown {
	if !policy.Enabled || amount.LessThanOrEqual(decimal.Zero) {
		return FeeBreakdown{Gross: amount, Fee: decimal.Zero, Net: amount}
	}

	fee := amount.Mul(policy.Percentage).Div(decimal.NewFromInt(100)).Round(2)
	fee = fee.Add(policy.FixedFee).Round(2)

	if fee.LessThan(policy.MinimumFee) {
		fee = policy.MinimumFee.Round(2)
	}
	if policy.MaximumFee.GreaterThan(decimal.Zero) && fee.GreaterThan(policy.MaximumFee) {
		fee = policy.MaximumFee.Round(2)
	}
	if fee.GreaterThan(amount) {
		fee = amount
	}

	return FeeBreakdown{
		Gross: amount,
		Fee:   fee,
		Net:   amount.Sub(fee),
	}
}

// SplitHalf splits amount into two halves for a partial dispute resolution.
// The first share is half rounded to 2 decimal places; the second is the
// remainder, so the two always sum back to amount.
func SplitHalf(amount decimal.Decimal) (first, second decimal.Decimal) {
	first = amount.Div(decimal.NewFromInt(2)).Round(2)
	second = amount.Sub(first)
	return first, second
}
