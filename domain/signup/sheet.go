// Package signup models the sign-up sheet of one conference session as an
// immutable variant hierarchy. A sheet is always exactly one of Available,
// Full or Closed, and each variant only exposes the operations that are
// legal in that state: signing up on a full or closed sheet is not a
// runtime failure, it simply cannot be written.
package signup

import (
	"session-signup/errors"
)

// Status names the variant a sheet is in. It exists for persistence and
// display; transition rules never branch on it.
type Status string

const (
	StatusAvailable Status = "available"
	StatusFull      Status = "full"
	StatusClosed    Status = "closed"
)

// Sheet is the sign-up sheet of one session. The variant set is sealed:
// only Available, Full and Closed implement it.
type Sheet interface {
	SessionID() SessionID
	Status() Status
	Capacity() int
	Signups() AttendeeSet
	IsSignedUp(id AttendeeID) bool

	sheet()
}

// Open is the capability shared by Available and Full: attendees on the
// sheet can still cancel, and sign-up can still be closed. Closed does not
// implement it, so neither operation can be expressed on a closed sheet.
type Open interface {
	Sheet

	// CancelSignUp removes the attendee and returns the next open variant.
	// Cancelling someone who is not on the sheet changes nothing.
	CancelSignUp(id AttendeeID) Open

	// Close ends sign-up permanently, snapshotting the current signups.
	Close() Closed
}

// Available is a sheet with at least one seat left: len(signups) < capacity.
type Available struct {
	id       SessionID
	capacity int
	signups  AttendeeSet
}

// Full is a sheet with every seat taken. Capacity is not stored; it is by
// definition the number of signups.
type Full struct {
	id      SessionID
	signups AttendeeSet
}

// Closed is terminal. No transition consumes it.
type Closed struct {
	id       SessionID
	capacity int
	signups  AttendeeSet
}

// NewSheet creates the sheet for a freshly announced session. A session
// with capacity zero starts out Full: Available promises a free seat, and
// a zero-capacity sheet never has one.
func NewSheet(id SessionID, capacity int) (Sheet, error) {
	if capacity < 0 {
		return nil, errors.ErrInvalidCapacity
	}
	if capacity == 0 {
		return Full{id: id}, nil
	}
	return Available{id: id, capacity: capacity}, nil
}

// RestoreSheet rebuilds a sheet from persisted state. It is the only door
// back into the variant hierarchy besides NewSheet, and it refuses any
// combination the transitions could not have produced.
func RestoreSheet(id SessionID, status Status, capacity int, attendees []AttendeeID) (Sheet, error) {
	set := NewAttendeeSet(attendees...)
	switch status {
	case StatusAvailable:
		if capacity < 0 || set.Len() >= capacity {
			return nil, errors.ErrInvariantViolation
		}
		return Available{id: id, capacity: capacity, signups: set}, nil
	case StatusFull:
		if capacity != set.Len() {
			return nil, errors.ErrInvariantViolation
		}
		return Full{id: id, signups: set}, nil
	case StatusClosed:
		if capacity < 0 || set.Len() > capacity {
			return nil, errors.ErrInvariantViolation
		}
		return Closed{id: id, capacity: capacity, signups: set}, nil
	default:
		return nil, errors.ErrInvariantViolation
	}
}

func (a Available) SessionID() SessionID { return a.id }
func (a Available) Status() Status       { return StatusAvailable }
func (a Available) Capacity() int        { return a.capacity }
func (a Available) Signups() AttendeeSet { return a.signups }
func (a Available) IsSignedUp(id AttendeeID) bool {
	return a.signups.Contains(id)
}
func (a Available) sheet() {}

// SignUp adds the attendee and returns the next open variant: Full exactly
// when the sheet reaches capacity, Available otherwise. Signing up an
// attendee who is already on the sheet leaves the set unchanged, which is
// why this can never overshoot capacity.
func (a Available) SignUp(id AttendeeID) Open {
	signups := a.signups.Add(id)
	if signups.Len() == a.capacity {
		return Full{id: a.id, signups: signups}
	}
	return Available{id: a.id, capacity: a.capacity, signups: signups}
}

func (a Available) CancelSignUp(id AttendeeID) Open {
	return Available{id: a.id, capacity: a.capacity, signups: a.signups.Remove(id)}
}

func (a Available) Close() Closed {
	return Closed{id: a.id, capacity: a.capacity, signups: a.signups}
}

func (f Full) SessionID() SessionID { return f.id }
func (f Full) Status() Status       { return StatusFull }
func (f Full) Capacity() int        { return f.signups.Len() }
func (f Full) Signups() AttendeeSet { return f.signups }
func (f Full) IsSignedUp(id AttendeeID) bool {
	return f.signups.Contains(id)
}
func (f Full) sheet() {}

// CancelSignUp frees a seat and returns Available. Cancelling an attendee
// who is not on the sheet changes nothing, so the sheet stays Full.
func (f Full) CancelSignUp(id AttendeeID) Open {
	if !f.signups.Contains(id) {
		return f
	}
	return Available{id: f.id, capacity: f.signups.Len(), signups: f.signups.Remove(id)}
}

func (f Full) Close() Closed {
	return Closed{id: f.id, capacity: f.signups.Len(), signups: f.signups}
}

func (c Closed) SessionID() SessionID { return c.id }
func (c Closed) Status() Status       { return StatusClosed }
func (c Closed) Capacity() int        { return c.capacity }
func (c Closed) Signups() AttendeeSet { return c.signups }
func (c Closed) IsSignedUp(id AttendeeID) bool {
	return c.signups.Contains(id)
}
func (c Closed) sheet() {}
