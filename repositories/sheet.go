//go:generate go run go.uber.org/mock/mockgen -source=sheet.go -destination=../mocks/mock_sheet_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"session-signup/domain/signup"
	"session-signup/errors"
)

// MutateFunc transitions a loaded sheet to its next value. Returning an
// error aborts the update and leaves the stored sheet untouched.
type MutateFunc func(signup.Sheet) (signup.Sheet, error)

type ISheetRepository interface {
	Create(ctx context.Context, sheet signup.Sheet) error
	Get(ctx context.Context, id signup.SessionID) (signup.Sheet, error)
	// Update runs mutate inside a single transaction, providing the atomic
	// load-transition-save contract that keeps two concurrent sign-ups from
	// both taking the last seat.
	Update(ctx context.Context, id signup.SessionID, mutate MutateFunc) (signup.Sheet, error)
	List(ctx context.Context) ([]signup.Sheet, error)
}

const sheetKeyPrefix = "sheet:"

type SheetRepository struct {
	db         *badger.DB
	log        *slog.Logger
	maxRetries int
}

// NewSheetRepository builds a Badger-backed sheet store. maxRetries bounds
// how often a conflicting transaction is retried before the conflict is
// surfaced to the caller.
func NewSheetRepository(db *badger.DB, log *slog.Logger, maxRetries int) *SheetRepository {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &SheetRepository{db: db, log: log, maxRetries: maxRetries}
}

// sheetRecord is the persisted shape of a sheet. Attendees are stored
// sorted so identical sheets always serialize identically.
type sheetRecord struct {
	SessionID string   `json:"session_id"`
	Status    string   `json:"status"`
	Capacity  int      `json:"capacity"`
	Attendees []string `json:"attendees"`
}

func sheetKey(id signup.SessionID) []byte {
	return []byte(sheetKeyPrefix + id.String())
}

func encodeSheet(sheet signup.Sheet) ([]byte, error) {
	record := sheetRecord{
		SessionID: sheet.SessionID().String(),
		Status:    string(sheet.Status()),
		Capacity:  sheet.Capacity(),
		Attendees: lo.Map(sheet.Signups().IDs(), func(id signup.AttendeeID, _ int) string {
			return id.String()
		}),
	}
	return json.Marshal(record)
}

func decodeSheet(raw []byte) (signup.Sheet, error) {
	var record sheetRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("corrupt sheet record: %w", err)
	}
	attendees := lo.Map(record.Attendees, func(id string, _ int) signup.AttendeeID {
		return signup.AttendeeID(id)
	})
	// RestoreSheet re-checks the invariants, so a tampered or corrupt record
	// can never rehydrate into an impossible sheet value.
	return signup.RestoreSheet(
		signup.SessionID(record.SessionID),
		signup.Status(record.Status),
		record.Capacity,
		attendees,
	)
}

func (r *SheetRepository) Create(_ context.Context, sheet signup.Sheet) error {
	raw, err := encodeSheet(sheet)
	if err != nil {
		return err
	}
	key := sheetKey(sheet.SessionID())
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return errors.ErrSheetAlreadyExists
		case !goerrors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(key, raw)
	})
}

func (r *SheetRepository) Get(_ context.Context, id signup.SessionID) (signup.Sheet, error) {
	var sheet signup.Sheet
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sheetKey(id))
		if goerrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrUnknownSession
		}
		if err != nil {
			return err
		}
		return item.Value(func(raw []byte) error {
			sheet, err = decodeSheet(raw)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return sheet, nil
}

// Update loads the sheet, applies mutate and writes the result back inside
// one Badger transaction. Badger detects write conflicts at commit time, so
// an interleaved writer causes a retry rather than a lost update.
func (r *SheetRepository) Update(ctx context.Context, id signup.SessionID, mutate MutateFunc) (signup.Sheet, error) {
	var next signup.Sheet
	for attempt := 1; ; attempt++ {
		err := r.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(sheetKey(id))
			if goerrors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrUnknownSession
			}
			if err != nil {
				return err
			}

			var current signup.Sheet
			err = item.Value(func(raw []byte) error {
				var decodeErr error
				current, decodeErr = decodeSheet(raw)
				return decodeErr
			})
			if err != nil {
				return err
			}

			next, err = mutate(current)
			if err != nil {
				return err
			}

			raw, err := encodeSheet(next)
			if err != nil {
				return err
			}
			return txn.Set(sheetKey(id), raw)
		})

		switch {
		case err == nil:
			return next, nil
		case goerrors.Is(err, badger.ErrConflict) && attempt < r.maxRetries:
			r.log.Debug("sheet update conflict, retrying",
				"session", id, "attempt", attempt)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		default:
			return nil, err
		}
	}
}

func (r *SheetRepository) List(_ context.Context) ([]signup.Sheet, error) {
	var sheets []signup.Sheet
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(sheetKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(raw []byte) error {
				sheet, err := decodeSheet(raw)
				if err != nil {
					return err
				}
				sheets = append(sheets, sheet)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sheets, nil
}
