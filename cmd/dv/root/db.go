package root

import (
	"context"
	"database/sql"

	"divyang/internal/engine"
	"divyang/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openTracker loads today's progress; the daily reset check runs as part
// of loading.
func openTracker(ctx context.Context) (*engine.Tracker, *sql.DB, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	tr, err := engine.LoadTracker(ctx, storage.NewKVRepo(db),
		engine.WithJournal(storage.NewCompletionRepo(db)),
	)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return tr, db, cleanup, nil
}
