package fees

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputePlatformFee(t *testing.T) {
	policy := domain.FeePolicy{
		Enabled:    true,
		Percentage: dec("5"),
		FixedFee:   dec("0"),
		MinimumFee: dec("0.10"),
		MaximumFee: dec("0"),
	}

	// Standard 5% fee on $100
	b := ComputePlatformFee(dec("100"), policy)
	assert.True(t, b.Fee.Equal(dec("5.00")), "fee should be 5.00, got %s", b.Fee)
	assert.True(t, b.Net.Equal(dec("95.00")), "net should be 95.00, got %s", b.Net)
	assert.True(t, b.Fee.Add(b.Net).Equal(b.Gross), "fee + net must equal gross")

	// Minimum fee kicks in on small amounts
	b = ComputePlatformFee(dec("1"), policy)
	assert.True(t, b.Fee.Equal(dec("0.10")), "minimum fee should apply, got %s", b.Fee)
	assert.True(t, b.Net.Equal(dec("0.90")))

	// Maximum fee caps large amounts
	capped := policy
	capped.MaximumFee = dec("10")
	b = ComputePlatformFee(dec("1000"), capped)
	assert.True(t, b.Fee.Equal(dec("10")), "maximum fee should cap, got %s", b.Fee)
	assert.True(t, b.Net.Equal(dec("990")))

	// Fixed fee is added on top of the percentage
	withFixed := policy
	withFixed.FixedFee = dec("0.50")
	b = ComputePlatformFee(dec("100"), withFixed)
	assert.True(t, b.Fee.Equal(dec("5.50")), "fee should include fixed component, got %s", b.Fee)
}

func TestComputePlatformFeeDisabledOrZero(t *testing.T) {
	policy := domain.FeePolicy{
		Enabled:    false,
		Percentage: dec("5"),
	}

	b := ComputePlatformFee(dec("100"), policy)
	assert.True(t, b.Fee.IsZero(), "disabled policy should yield zero fee")
	assert.True(t, b.Net.Equal(dec("100")))

	policy.Enabled = true
	b = ComputePlatformFee(decimal.Zero, policy)
	assert.True(t, b.Fee.IsZero(), "zero amount should yield zero fee")

	b = ComputePlatformFee(dec("-5"), policy)
	assert.True(t, b.Fee.IsZero(), "negative amount should yield zero fee")
	assert.True(t, b.Net.Equal(dec("-5")))
}

func TestComputePlatformFeeNeverExceedsGross(t *testing.T) {
	policy := domain.FeePolicy{
		Enabled:    true,
		Percentage: dec("5"),
		MinimumFee: dec("1.00"),
	}

	// Minimum fee larger than the amount itself collapses net to zero.
	b := ComputePlatformFee(dec("0.50"), policy)
	assert.True(t, b.Fee.Equal(dec("0.50")), "fee must not exceed gross, got %s", b.Fee)
	assert.True(t, b.Net.IsZero())
}

func TestComputePlatformFeeRounding(t *testing.T) {
	policy := domain.FeePolicy{
		Enabled:    true,
		Percentage: dec("5"),
	}

	// 5% of 33.33 is 1.6665, rounded to 1.67.
	b := ComputePlatformFee(dec("33.33"), policy)
	assert.True(t, b.Fee.Equal(dec("1.67")), "fee should round half up, got %s", b.Fee)
	assert.True(t, b.Net.Equal(dec("31.66")))
	assert.True(t, b.Fee.Add(b.Net).Equal(b.Gross))
}

func TestSplitHalf(t *testing.T) {
	first, second := SplitHalf(dec("100"))
	assert.True(t, first.Equal(dec("50")))
	assert.True(t, second.Equal(dec("50")))

	// Odd cents: halves still sum back to the original amount.
	first, second = SplitHalf(dec("33.33"))
	assert.True(t, first.Equal(dec("16.67")), "first share should round, got %s", first)
	assert.True(t, second.Equal(dec("16.66")))
	assert.True(t, first.Add(second).Equal(dec("33.33")))

	first, second = SplitHalf(dec("0.01"))
	assert.True(t, first.Add(second).Equal(dec("0.01")))
}
