package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) (*KVRepo, *CompletionRepo) {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewKVRepo(db), NewCompletionRepo(db)
}

func TestKVLoadMissing(t *testing.T) {
	kv, _ := openTestDB(t)

	v, ok, err := kv.Load(context.Background(), "points")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("load missing = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestKVSaveOverwrites(t *testing.T) {
	kv, _ := openTestDB(t)
	ctx := context.Background()

	if err := kv.Save(ctx, "points", "10"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := kv.Save(ctx, "points", "20"); err != nil {
		t.Fatalf("save again: %v", err)
	}
	v, ok, err := kv.Load(ctx, "points")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok || v != "20" {
		t.Fatalf("load = (%q, %v), want (\"20\", true)", v, ok)
	}

	entries, err := kv.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Key != "points" {
		t.Fatalf("entries = %+v, want single points entry", entries)
	}
}

func TestOpenFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := NewKVRepo(db).Save(ctx, "userInfo", `{"name":"Sam","age":7}`); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = db.Close()

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	v, ok, err := NewKVRepo(db).Load(ctx, "userInfo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok || v != `{"name":"Sam","age":7}` {
		t.Fatalf("load = (%q, %v)", v, ok)
	}
}

func TestCompletionRecentOrder(t *testing.T) {
	_, comps := openTestDB(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	if _, err := comps.Insert(ctx, "eating", base, 10); err != nil {
		t.Fatalf("insert eating: %v", err)
	}
	if _, err := comps.Insert(ctx, "yoga", base.Add(time.Hour), 10); err != nil {
		t.Fatalf("insert yoga: %v", err)
	}

	got, err := comps.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("recent len=%d, want 2", len(got))
	}
	if got[0].Activity != "yoga" || got[1].Activity != "eating" {
		t.Fatalf("recent order = %s,%s; want yoga,eating", got[0].Activity, got[1].Activity)
	}

	n, err := comps.CountSince(ctx, base.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("count since: %v", err)
	}
	if n != 1 {
		t.Fatalf("count since=%d, want 1", n)
	}
}
