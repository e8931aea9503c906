package errors

import "fmt"

var (
	// ErrInvalidCapacity rejects sheet creation with a negative capacity.
	ErrInvalidCapacity = fmt.Errorf("capacity must not be negative")

	// ErrInvariantViolation flags persisted sheet state that no sequence of
	// operations could have produced. It signals a defect, not a recoverable
	// condition.
	ErrInvariantViolation = fmt.Errorf("sheet state violates signup invariants")

	ErrUnknownSession     = fmt.Errorf("unknown session")
	ErrSheetAlreadyExists = fmt.Errorf("signup sheet already exists")
	ErrSessionFull        = fmt.Errorf("session is full")
	ErrSignupClosed       = fmt.Errorf("signup is closed")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)
