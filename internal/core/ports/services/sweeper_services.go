package services

import "context"

// SweepSummary reports the outcome of a deadline sweep.
type SweepSummary struct {
	Scanned         int `json:"scanned"`
	RejectionsFinal int `json:"rejectionsFinal"`
	RevisionsFinal  int `json:"revisionsFinal"`
	AutoApproved    int `json:"autoApproved"`
	Refunded        int `json:"refunded"`
	Failed          int `json:"failed"`
}

// SweeperSvc finalizes work proofs whose response deadline has lapsed.
type SweeperSvc interface {
	// SweepExpiredDeadlines scans for proofs past their rejection or revision
	// deadline and finalizes each per the revision policy, then auto-approves
	// submitted proofs on manual-approval jobs whose review window has lapsed.
	// Individual proof failures are counted, not fatal.
	SweepExpiredDeadlines(ctx context.Context) (SweepSummary, error)
}
