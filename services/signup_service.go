//go:generate go run go.uber.org/mock/mockgen -source=signup_service.go -destination=../mocks/mock_signup_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"session-signup/contract"
	"session-signup/domain/event"
	"session-signup/domain/signup"
	"session-signup/errors"
	"session-signup/repositories"
)

type ISignupService interface {
	CreateSheet(ctx context.Context, id signup.SessionID, capacity int) (signup.Sheet, error)
	SignUp(ctx context.Context, id signup.SessionID, attendee signup.AttendeeID) (signup.Sheet, error)
	CancelSignUp(ctx context.Context, id signup.SessionID, attendee signup.AttendeeID) (signup.Sheet, error)
	CloseSignup(ctx context.Context, id signup.SessionID) (signup.Sheet, error)
	IsSignedUp(ctx context.Context, id signup.SessionID, attendee signup.AttendeeID) (bool, error)
	ListSignups(ctx context.Context, id signup.SessionID) ([]signup.AttendeeID, error)
	ListSheets(ctx context.Context) ([]signup.Sheet, error)
}

// SignupService drives sheet transitions through the repository's atomic
// update. It is the single place that dispatches on the sheet variant: the
// operations the type system keeps off Full and Closed become sentinel
// errors here, and nowhere else.
type SignupService struct {
	sheets repositories.ISheetRepository
	sinks  []contract.EventSink
	log    *slog.Logger
	clock  func() time.Time
}

func NewSignupService(log *slog.Logger, sheets repositories.ISheetRepository, sinks ...contract.EventSink) *SignupService {
	return &SignupService{
		sheets: sheets,
		sinks:  sinks,
		log:    log,
		clock:  time.Now,
	}
}

func (s *SignupService) CreateSheet(ctx context.Context, id signup.SessionID, capacity int) (signup.Sheet, error) {
	sheet, err := signup.NewSheet(id, capacity)
	if err != nil {
		return nil, err
	}
	if err := s.sheets.Create(ctx, sheet); err != nil {
		return nil, err
	}

	s.publish(ctx, event.SheetCreated{
		Session:  id,
		Capacity: capacity,
		At:       s.clock(),
	})
	return sheet, nil
}

// SignUp reserves a seat for the attendee. Re-signing an attendee who is
// already on the sheet succeeds without changing it, even when the sheet is
// full; asking for a seat on a full sheet otherwise reports ErrSessionFull.
func (s *SignupService) SignUp(ctx context.Context, id signup.SessionID, attendee signup.AttendeeID) (signup.Sheet, error) {
	updated, err := s.sheets.Update(ctx, id, func(current signup.Sheet) (signup.Sheet, error) {
		switch sheet := current.(type) {
		case signup.Available:
			return sheet.SignUp(attendee), nil
		case signup.Full:
			if sheet.IsSignedUp(attendee) {
				return sheet, nil
			}
			return nil, errors.ErrSessionFull
		default:
			return nil, errors.ErrSignupClosed
		}
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.AttendeeSignedUp{
		Session:   id,
		Attendee:  attendee,
		Remaining: updated.Capacity() - updated.Signups().Len(),
		At:        s.clock(),
	})
	return updated, nil
}

// CancelSignUp frees the attendee's seat. Cancelling someone who never
// signed up leaves the sheet unchanged and still succeeds.
func (s *SignupService) CancelSignUp(ctx context.Context, id signup.SessionID, attendee signup.AttendeeID) (signup.Sheet, error) {
	updated, err := s.sheets.Update(ctx, id, func(current signup.Sheet) (signup.Sheet, error) {
		open, ok := current.(signup.Open)
		if !ok {
			return nil, errors.ErrSignupClosed
		}
		return open.CancelSignUp(attendee), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.SignupCancelled{
		Session:  id,
		Attendee: attendee,
		At:       s.clock(),
	})
	return updated, nil
}

// CloseSignup ends sign-up permanently. Closing an already closed sheet
// reports ErrSignupClosed; the happy path cannot be expressed twice on the
// same value.
func (s *SignupService) CloseSignup(ctx context.Context, id signup.SessionID) (signup.Sheet, error) {
	updated, err := s.sheets.Update(ctx, id, func(current signup.Sheet) (signup.Sheet, error) {
		open, ok := current.(signup.Open)
		if !ok {
			return nil, errors.ErrSignupClosed
		}
		return open.Close(), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.SheetClosed{
		Session: id,
		Signups: updated.Signups().Len(),
		At:      s.clock(),
	})
	return updated, nil
}

func (s *SignupService) IsSignedUp(ctx context.Context, id signup.SessionID, attendee signup.AttendeeID) (bool, error) {
	sheet, err := s.sheets.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return sheet.IsSignedUp(attendee), nil
}

func (s *SignupService) ListSignups(ctx context.Context, id signup.SessionID) ([]signup.AttendeeID, error) {
	sheet, err := s.sheets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return sheet.Signups().IDs(), nil
}

func (s *SignupService) ListSheets(ctx context.Context) ([]signup.Sheet, error) {
	return s.sheets.List(ctx)
}

// publish notifies sinks after the transition has been persisted. Sink
// failures are logged and swallowed; they must never fail the operation.
func (s *SignupService) publish(ctx context.Context, e event.DomainEvent) {
	for _, sink := range s.sinks {
		if err := sink.Consume(ctx, e); err != nil {
			s.log.Error("event sink failed", "event", e.Name(), "session", e.SessionID(), "err", err)
		}
	}
}
