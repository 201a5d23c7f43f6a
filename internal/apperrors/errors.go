package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that a state transition was attempted from a status
// that does not permit it.
var ErrInvalidState = errors.New("invalid state for requested transition")

// ErrLimitExceeded indicates that a configured cap (e.g. revision requests) was hit.
var ErrLimitExceeded = errors.New("limit exceeded")

// ErrAlreadyProcessed indicates an idempotent duplicate: the requested money
// movement has already been recorded for the same reference. Callers that
// expect re-execution (sweeper re-runs, retried API calls) treat this as
// success, not failure.
var ErrAlreadyProcessed = errors.New("transaction already processed")

// ErrAlreadyResolved indicates that resolution was attempted on a dispute that
// has already been resolved. Unlike ErrAlreadyProcessed this signals a caller
// bug and is surfaced as a failure.
var ErrAlreadyResolved = errors.New("dispute already resolved")

// ErrPayment indicates that a wallet/ledger operation failed.
var ErrPayment = errors.New("payment processing failed")

// ErrForbidden indicates the actor is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the request conflicts with the current resource state.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
