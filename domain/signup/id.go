package signup

// SessionID identifies one conference session. It is assigned when the
// sign-up sheet is created and never changes afterwards.
type SessionID string

func (s SessionID) String() string {
	return string(s)
}

// AttendeeID identifies one attendee.
type AttendeeID string

func (a AttendeeID) String() string {
	return string(a)
}
