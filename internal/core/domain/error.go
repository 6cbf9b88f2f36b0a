package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Business errors. A credit rejection is expected behaviour,
	// shown to the caller, never logged as a failure.
	ErrAccountNotVerified = errors.New("account is not verified")
	ErrInsufficientCredit = errors.New("available credit is not enough")
	ErrInstallmentPaid    = errors.New("installment is already paid")
	ErrNotPrivileged      = errors.New("operation requires admin privilege")
	ErrNonPositiveAmount  = errors.New("amount must be positive")
	ErrEmptyOrder         = errors.New("order has no line items")

	// * Contract errors.
	ErrInvalidTransition      = errors.New("invalid order state transition")
	ErrConcurrentModification = errors.New("account state changed concurrently, retry the operation")
	ErrPrecondition           = errors.New("precondition violation")
)

// InvalidTransitionError reports a transition the order state table does
// not allow. It names both states so the misbehaving caller can be found.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order state transition from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
