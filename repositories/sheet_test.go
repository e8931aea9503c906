package repositories

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"session-signup/domain/signup"
	"session-signup/errors"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func newTestRepository(t *testing.T) (*SheetRepository, func()) {
	db, cleanup := SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSheetRepository(db, logger, 3), cleanup
}

func TestSheetRepository_CreateAndGet(t *testing.T) {
	req := require.New(t)
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	sheet, err := signup.NewSheet("go-conf", 2)
	req.NoError(err)

	req.NoError(repo.Create(ctx, sheet))

	loaded, err := repo.Get(ctx, "go-conf")
	req.NoError(err)
	req.Equal(signup.StatusAvailable, loaded.Status())
	req.Equal(signup.SessionID("go-conf"), loaded.SessionID())
	req.Equal(2, loaded.Capacity())
	req.Equal(0, loaded.Signups().Len())
}

func TestSheetRepository_CreateExistingSheetFails(t *testing.T) {
	req := require.New(t)
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	sheet, err := signup.NewSheet("go-conf", 2)
	req.NoError(err)

	req.NoError(repo.Create(ctx, sheet))
	req.ErrorIs(repo.Create(ctx, sheet), errors.ErrSheetAlreadyExists)
}

func TestSheetRepository_GetUnknownSession(t *testing.T) {
	req := require.New(t)
	repo, cleanup := newTestRepository(t)
	defer cleanup()

	_, err := repo.Get(context.Background(), "nope")

	req.ErrorIs(err, errors.ErrUnknownSession)
}

// TestSheetRepository_RoundTripEveryVariant pins the store contract: what
// comes back is behaviorally equal to what went in, for each variant.
func TestSheetRepository_RoundTripEveryVariant(t *testing.T) {
	req := require.New(t)
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	fresh, err := signup.NewSheet("s1", 2)
	req.NoError(err)
	available := fresh.(signup.Available).SignUp("alice")
	full := available.(signup.Available).SignUp("bob")
	closed := full.(signup.Full).Close()

	for _, sheet := range []signup.Sheet{available, full, closed} {
		key := signup.SessionID(string(sheet.SessionID()) + "-" + string(sheet.Status()))
		stored, err := signup.RestoreSheet(key, sheet.Status(), sheet.Capacity(), sheet.Signups().IDs())
		req.NoError(err)

		req.NoError(repo.Create(ctx, stored))
		loaded, err := repo.Get(ctx, key)
		req.NoError(err)

		req.Equal(stored.Status(), loaded.Status())
		req.Equal(stored.Capacity(), loaded.Capacity())
		req.Equal(stored.Signups().IDs(), loaded.Signups().IDs())
	}
}

func TestSheetRepository_UpdateAppliesTransition(t *testing.T) {
	req := require.New(t)
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	sheet, err := signup.NewSheet("s1", 1)
	req.NoError(err)
	req.NoError(repo.Create(ctx, sheet))

	updated, err := repo.Update(ctx, "s1", func(current signup.Sheet) (signup.Sheet, error) {
		return current.(signup.Available).SignUp("alice"), nil
	})
	req.NoError(err)
	req.Equal(signup.StatusFull, updated.Status())

	// The transition is durable, not just returned.
	loaded, err := repo.Get(ctx, "s1")
	req.NoError(err)
	req.Equal(signup.StatusFull, loaded.Status())
	req.True(loaded.IsSignedUp("alice"))
}

func TestSheetRepository_UpdateErrorLeavesSheetUntouched(t *testing.T) {
	req := require.New(t)
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	sheet, err := signup.NewSheet("s1", 1)
	req.NoError(err)
	req.NoError(repo.Create(ctx, sheet))

	_, err = repo.Update(ctx, "s1", func(signup.Sheet) (signup.Sheet, error) {
		return nil, errors.ErrSessionFull
	})
	req.ErrorIs(err, errors.ErrSessionFull)

	loaded, err := repo.Get(ctx, "s1")
	req.NoError(err)
	req.Equal(signup.StatusAvailable, loaded.Status())
	req.Equal(0, loaded.Signups().Len())
}

func TestSheetRepository_UpdateUnknownSession(t *testing.T) {
	req := require.New(t)
	repo, cleanup := newTestRepository(t)
	defer cleanup()

	_, err := repo.Update(context.Background(), "nope", func(current signup.Sheet) (signup.Sheet, error) {
		return current, nil
	})

	req.ErrorIs(err, errors.ErrUnknownSession)
}

func TestSheetRepository_List(t *testing.T) {
	req := require.New(t)
	repo, cleanup := newTestRepository(t)
	defer cleanup()
	ctx := context.Background()

	for _, id := range []signup.SessionID{"a", "b", "c"} {
		sheet, err := signup.NewSheet(id, 5)
		req.NoError(err)
		req.NoError(repo.Create(ctx, sheet))
	}

	sheets, err := repo.List(ctx)
	req.NoError(err)
	req.Len(sheets, 3)
}
