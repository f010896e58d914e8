package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"divyang/internal/engine"
	"divyang/internal/storage"
)

func newTestModel(t *testing.T) (boardModel, *engine.Tracker) {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	tr, err := engine.LoadTracker(ctx, storage.NewKVRepo(db))
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	return newBoardModel(ctx, tr), tr
}

func press(t *testing.T, m boardModel, key tea.KeyMsg) boardModel {
	t.Helper()
	next, cmd := m.Update(key)
	m = next.(boardModel)
	if cmd != nil {
		msg := cmd()
		if _, quit := msg.(tea.QuitMsg); quit {
			return m
		}
		next, _ = m.Update(msg)
		m = next.(boardModel)
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestBoardWalkThroughGuide(t *testing.T) {
	m, tr := newTestModel(t)

	m = press(t, m, keyDown) // bathing
	m = press(t, m, keyEnter)
	if m.flow == nil || m.flow.Activity() != engine.ActivityBathing {
		t.Fatalf("expected bathing guide to open")
	}
	if !strings.Contains(m.View(), "Check water temperature") {
		t.Fatalf("view missing first step:\n%s", m.View())
	}

	for !m.flow.Finished() {
		m = press(t, m, keyEnter)
	}
	if !tr.IsCompleted(engine.ActivityBathing) || tr.Points() != engine.PointsPerActivity {
		t.Fatalf("tracker points=%d completed=%v", tr.Points(), tr.Completed())
	}
	if m.snap.Points != engine.PointsPerActivity {
		t.Fatalf("snapshot points=%d, want %d", m.snap.Points, engine.PointsPerActivity)
	}
	if !strings.Contains(m.lastLog, "+10 points") {
		t.Fatalf("lastLog=%q", m.lastLog)
	}

	m = press(t, m, keyEnter)
	if m.flow != nil {
		t.Fatalf("expected return to board after finishing")
	}
}

func TestBoardEscLeavesGuideWithoutCompleting(t *testing.T) {
	m, tr := newTestModel(t)

	m = press(t, m, keyEnter)
	m = press(t, m, keyEnter)
	m = press(t, m, keyEsc)
	if m.flow != nil {
		t.Fatalf("expected board view")
	}
	if tr.Points() != 0 {
		t.Fatalf("points=%d, want 0", tr.Points())
	}
}

func TestBoardResetRefreshesSnapshot(t *testing.T) {
	m, tr := newTestModel(t)
	if _, err := tr.MarkActivityComplete(context.Background(), "music"); err != nil {
		t.Fatalf("mark: %v", err)
	}

	next, _ := m.Update(resetMsg{})
	m = next.(boardModel)
	if m.snap.Points != engine.PointsPerActivity {
		t.Fatalf("snapshot not refreshed: %+v", m.snap)
	}
}
