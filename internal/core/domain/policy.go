package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeoutUnit is the unit a revision-policy timeout is expressed in.
type TimeoutUnit string

const (
	UnitMinutes TimeoutUnit = "minutes"
	UnitHours   TimeoutUnit = "hours"
	UnitDays    TimeoutUnit = "days"
)

// Valid reports whether u is one of the supported units.
func (u TimeoutUnit) Valid() bool {
	switch u {
	case UnitMinutes, UnitHours, UnitDays:
		return true
	}
	return false
}

// Duration converts value expressed in the unit to a time.Duration.
// Unknown units are treated as days.
func (u TimeoutUnit) Duration(value int) time.Duration {
	switch u {
	case UnitMinutes:
		return time.Duration(value) * time.Minute
	case UnitHours:
		return time.Duration(value) * time.Hour
	default:
		return time.Duration(value) * 24 * time.Hour
	}
}

// FeePolicy describes how the platform fee is computed from a gross payment.
type FeePolicy struct {
	Enabled    bool            `json:"enabled"`
	Percentage decimal.Decimal `json:"percentage"`
	FixedFee   decimal.Decimal `json:"fixedFee"`
	MinimumFee decimal.Decimal `json:"minimumFee"`
	MaximumFee decimal.Decimal `json:"maximumFee"` // zero means no cap
}

// Timeout is a value with a unit, as stored in platform settings.
type Timeout struct {
	Value int         `json:"value"`
	Unit  TimeoutUnit `json:"unit"`
}

// Duration returns the timeout as a time.Duration.
func (t Timeout) Duration() time.Duration {
	return t.Unit.Duration(t.Value)
}

// RevisionPolicy governs the rejection/revision windows and what happens
// when they lapse.
type RevisionPolicy struct {
	MaxRevisionRequests     int     `json:"maxRevisionRequests"`
	RejectionTimeout        Timeout `json:"rejectionTimeout"`
	RevisionTimeout         Timeout `json:"revisionTimeout"`
	EnableAutomaticRefunds  bool    `json:"enableAutomaticRefunds"`
	RefundOnRejectionExpiry bool    `json:"refundOnRejectionExpiry"`
	RefundOnRevisionExpiry  bool    `json:"refundOnRevisionExpiry"`
}

// ApprovalPolicy governs instant approvals and the payment floor applied
// when no usable amount can be resolved for a proof.
type ApprovalPolicy struct {
	InstantEnabled     bool            `json:"instantEnabled"`
	ManualApprovalDays int             `json:"manualApprovalDays"`
	MinimumPayment     decimal.Decimal `json:"minimumPayment"`
}
