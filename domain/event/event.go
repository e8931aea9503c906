package event

import (
	"time"

	"session-signup/domain/signup"
)

// DomainEvent is emitted after a sheet transition has been persisted.
// Events are notifications only; the sheet value itself is the source of truth.
type DomainEvent interface {
	Name() string
	SessionID() signup.SessionID
}

type SheetCreated struct {
	Session  signup.SessionID
	Capacity int
	At       time.Time
}

func (e SheetCreated) Name() string                { return "SheetCreated" }
func (e SheetCreated) SessionID() signup.SessionID { return e.Session }

type AttendeeSignedUp struct {
	Session  signup.SessionID
	Attendee signup.AttendeeID
	// Remaining counts the seats still free after this sign-up; zero means
	// the sheet just transitioned to full.
	Remaining int
	At        time.Time
}

func (e AttendeeSignedUp) Name() string                { return "AttendeeSignedUp" }
func (e AttendeeSignedUp) SessionID() signup.SessionID { return e.Session }

type SignupCancelled struct {
	Session  signup.SessionID
	Attendee signup.AttendeeID
	At       time.Time
}

func (e SignupCancelled) Name() string                { return "SignupCancelled" }
func (e SignupCancelled) SessionID() signup.SessionID { return e.Session }

type SheetClosed struct {
	Session signup.SessionID
	Signups int
	At      time.Time
}

func (e SheetClosed) Name() string                { return "SheetClosed" }
func (e SheetClosed) SessionID() signup.SessionID { return e.Session }
