package sink

import (
	"context"
	"log/slog"

	"session-signup/domain/event"
)

// LogSink writes every domain event to the structured log. It is the
// default sink wired in the server binary.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.SheetCreated:
		s.log.Info("sheet created",
			"session", evt.Session, "capacity", evt.Capacity)
	case event.AttendeeSignedUp:
		s.log.Info("attendee signed up",
			"session", evt.Session, "attendee", evt.Attendee, "remaining", evt.Remaining)
	case event.SignupCancelled:
		s.log.Info("signup cancelled",
			"session", evt.Session, "attendee", evt.Attendee)
	case event.SheetClosed:
		s.log.Info("sheet closed",
			"session", evt.Session, "signups", evt.Signups)
	default:
		s.log.Debug("unhandled event", "name", e.Name(), "session", e.SessionID())
	}
	return nil
}
