package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"divyang/internal/engine"
)

// RunBoard runs the interactive board until the user quits. While it is
// open the reset poller re-checks the day every interval.
func RunBoard(ctx context.Context, tracker *engine.Tracker, interval time.Duration, out io.Writer) error {
	m := newBoardModel(ctx, tracker)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))

	poller := engine.NewResetPoller(tracker, interval, slog.Default())
	poller.OnReset(func() { p.Send(resetMsg{}) })
	if err := poller.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := poller.Stop(); err != nil {
			slog.Warn("stop reset poller", "error", err)
		}
	}()

	_, err := p.Run()
	return err
}
