package port

import "errors"

// Error taxonomy of the ledger engine. Operations fail fast with exactly
// one of these; callers match with errors.Is. Wrapped variants carry
// detail, e.g. fmt.Errorf("%w: campaign %s is rejected", ErrInvalidState, id).
var (
	// ErrInvalidInput marks missing or malformed fields, detected before
	// any store access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a referenced campaign, listing or vendor that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState marks a status transition that is not legal from
	// the campaign's current status.
	ErrInvalidState = errors.New("invalid state")

	// ErrInsufficientFunds marks a wallet balance below the required
	// campaign cost.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrStoreUnavailable marks an infrastructure failure of the
	// underlying store. The operation was fully rolled back and is safe
	// to retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)
