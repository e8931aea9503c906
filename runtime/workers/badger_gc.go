package workers

import (
	"context"
	goerrors "errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// discardRatio is the reclaimable fraction a value-log file must reach
// before Badger rewrites it. 0.5 is the value recommended by the Badger docs.
const discardRatio = 0.5

// BadgerGCWorker periodically runs Badger's value-log garbage collection.
// Badger never reclaims value-log space on its own; without this loop the
// store grows with every sheet update.
type BadgerGCWorker struct {
	db       *badger.DB
	log      *slog.Logger
	interval time.Duration
}

func NewBadgerGCWorker(db *badger.DB, log *slog.Logger, interval time.Duration) *BadgerGCWorker {
	return &BadgerGCWorker{db: db, log: log, interval: interval}
}

func (w *BadgerGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// One GC call rewrites at most one file; loop until Badger
			// reports there is nothing left to rewrite.
			for {
				err := w.db.RunValueLogGC(discardRatio)
				if goerrors.Is(err, badger.ErrNoRewrite) {
					break
				}
				if err != nil {
					w.log.Warn("value log GC failed", "err", err)
					break
				}
				w.log.Debug("value log file reclaimed")
			}
		}
	}
}
