package dto

import (
	"github.com/shopspring/decimal"

	"github.com/khaledkhbro/microjob-backend/internal/core/domain"
)

// UpdateFeePolicyRequest defines the payload for updating the platform fee policy.
type UpdateFeePolicyRequest struct {
	Enabled    *bool           `json:"enabled" binding:"required"`
	Percentage decimal.Decimal `json:"percentage" binding:"required"`
	FixedFee   decimal.Decimal `json:"fixedFee"`
	MinimumFee decimal.Decimal `json:"minimumFee"`
	MaximumFee decimal.Decimal `json:"maximumFee"`
}

// TimeoutDTO is a timeout value with its unit.
type TimeoutDTO struct {
	Value int    `json:"value" binding:"required,min=1"`
	Unit  string `json:"unit" binding:"required,oneof=minutes hours days"`
}

// UpdateRevisionPolicyRequest defines the payload for updating the revision policy.
type UpdateRevisionPolicyRequest struct {
	MaxRevisionRequests     int        `json:"maxRevisionRequests" binding:"min=0"`
	RejectionTimeout        TimeoutDTO `json:"rejectionTimeout" binding:"required"`
	RevisionTimeout         TimeoutDTO `json:"revisionTimeout" binding:"required"`
	EnableAutomaticRefunds  *bool      `json:"enableAutomaticRefunds" binding:"required"`
	RefundOnRejectionExpiry *bool      `json:"refundOnRejectionExpiry" binding:"required"`
	RefundOnRevisionExpiry  *bool      `json:"refundOnRevisionExpiry" binding:"required"`
}

// UpdateApprovalPolicyRequest defines the payload for updating the approval policy.
type UpdateApprovalPolicyRequest struct {
	InstantEnabled     *bool           `json:"instantEnabled" binding:"required"`
	ManualApprovalDays int             `json:"manualApprovalDays" binding:"required,min=1"`
	MinimumPayment     decimal.Decimal `json:"minimumPayment"`
}

// FeePolicyResponse defines the data returned for the fee policy.
type FeePolicyResponse struct {
	Enabled    bool            `json:"enabled"`
	Percentage decimal.Decimal `json:"percentage"`
	FixedFee   decimal.Decimal `json:"fixedFee"`
	MinimumFee decimal.Decimal `json:"minimumFee"`
	MaximumFee decimal.Decimal `json:"maximumFee"`
}

// RevisionPolicyResponse defines the data returned for the revision policy.
type RevisionPolicyResponse struct {
	MaxRevisionRequests     int        `json:"maxRevisionRequests"`
	RejectionTimeout        TimeoutDTO `json:"rejectionTimeout"`
	RevisionTimeout         TimeoutDTO `json:"revisionTimeout"`
	EnableAutomaticRefunds  bool       `json:"enableAutomaticRefunds"`
	RefundOnRejectionExpiry bool       `json:"refundOnRejectionExpiry"`
	RefundOnRevisionExpiry  bool       `json:"refundOnRevisionExpiry"`
}

// ApprovalPolicyResponse defines the data returned for the approval policy.
type ApprovalPolicyResponse struct {
	InstantEnabled     bool            `json:"instantEnabled"`
	ManualApprovalDays int             `json:"manualApprovalDays"`
	MinimumPayment     decimal.Decimal `json:"minimumPayment"`
}

// ToFeePolicyResponse converts a domain.FeePolicy to its DTO.
func ToFeePolicyResponse(p *domain.FeePolicy) FeePolicyResponse {
	return FeePolicyResponse{
		Enabled:    p.Enabled,
		Percentage: p.Percentage,
		FixedFee:   p.FixedFee,
		MinimumFee: p.MinimumFee,
		MaximumFee: p.MaximumFee,
	}
}

// ToRevisionPolicyResponse converts a domain.RevisionPolicy to its DTO.
func ToRevisionPolicyResponse(p *domain.RevisionPolicy) RevisionPolicyResponse {
	return RevisionPolicyResponse{
		MaxRevisionRequests: p.MaxRevisionRequests,
		RejectionTimeout: TimeoutDTO{
			Value: p.RejectionTimeout.Value,
			Unit:  string(p.RejectionTimeout.Unit),
		},
		RevisionTimeout: TimeoutDTO{
			Value: p.RevisionTimeout.Value,
			Unit:  string(p.RevisionTimeout.Unit),
		},
		EnableAutomaticRefunds:  p.EnableAutomaticRefunds,
		RefundOnRejectionExpiry: p.RefundOnRejectionExpiry,
		RefundOnRevisionExpiry:  p.RefundOnRevisionExpiry,
	}
}

// ToApprovalPolicyResponse converts a domain.ApprovalPolicy to its DTO.
func ToApprovalPolicyResponse(p *domain.ApprovalPolicy) ApprovalPolicyResponse {
	return ApprovalPolicyResponse{
		InstantEnabled:     p.InstantEnabled,
		ManualApprovalDays: p.ManualApprovalDays,
		MinimumPayment:     p.MinimumPayment,
	}
}
