package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"divyang/internal/engine"
	"divyang/internal/ui"
)

type boardModel struct {
	ctx     context.Context
	tracker *engine.Tracker

	width  int
	height int

	snap     engine.Snapshot
	selected int

	// flow is non-nil while a guide is open.
	flow    *engine.Flow
	awarded int
	busy    bool

	lastLog string
}

type resetMsg struct{}

type advancedMsg struct {
	awarded int
	err     error
}

func newBoardModel(ctx context.Context, tracker *engine.Tracker) boardModel {
	return boardModel{
		ctx:     ctx,
		tracker: tracker,
		snap:    tracker.Snapshot(),
		lastLog: "Pick an activity and press enter.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) advanceCmd() tea.Cmd {
	flow := m.flow
	ctx := m.ctx
	return func() tea.Msg {
		n, err := flow.Advance(ctx)
		return advancedMsg{awarded: n, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case resetMsg:
		m.snap = m.tracker.Snapshot()
		m.lastLog = fmt.Sprintf("New day! Progress reset at %s.", time.Now().Format("15:04"))
		return m, nil
	case advancedMsg:
		m.busy = false
		if msg.err != nil {
			m.lastLog = "Could not save progress: " + msg.err.Error()
			return m, nil
		}
		m.awarded += msg.awarded
		m.snap = m.tracker.Snapshot()
		if m.flow != nil && m.flow.Finished() {
			if msg.awarded > 0 {
				m.lastLog = fmt.Sprintf("%s complete: +%d points!", m.flow.Activity().DisplayName(), msg.awarded)
			} else {
				m.lastLog = fmt.Sprintf("%s was already completed today.", m.flow.Activity().DisplayName())
			}
		}
		return m, nil
	case tea.KeyMsg:
		if m.flow != nil {
			return m.updateGuide(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m boardModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(engine.Activities)-1 {
			m.selected++
		}
	case "enter", " ":
		a := engine.Activities[m.selected]
		flow, err := engine.StartFlow(a, m.tracker)
		if err != nil {
			m.lastLog = err.Error()
			return m, nil
		}
		m.flow = flow
		m.awarded = 0
		m.lastLog = flow.Title()
	}
	return m, nil
}

func (m boardModel) updateGuide(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "b":
		m.flow = nil
		m.snap = m.tracker.Snapshot()
		m.lastLog = "Back to activities."
		return m, nil
	case "enter", " ", "right", "l", "n":
		if m.busy {
			return m, nil
		}
		if m.flow.Finished() {
			m.flow = nil
			m.snap = m.tracker.Snapshot()
			return m, nil
		}
		m.busy = true
		return m, m.advanceCmd()
	}
	return m, nil
}

func (m boardModel) View() string {
	header := m.renderHeader()
	var body string
	if m.flow != nil {
		body = m.renderGuide()
	} else {
		body = m.renderBoard()
	}
	return header + "\n\n" + body + "\n\n" + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	s := m.snap
	return fmt.Sprintf("%s | %s %s | %s | %s %d/%d",
		ui.Title.Render(ui.IconHeart+" Divyang"),
		ui.IconUser, s.Profile.Name,
		ui.PointsText(s.Points),
		ui.ProgressBar(len(s.Completed), s.Total, 16), len(s.Completed), s.Total,
	)
}

func (m boardModel) renderBoard() string {
	lines := []string{ui.H2.Render("Activities")}
	for i, a := range engine.Activities {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %s %s", cursor, ui.DoneMark(m.snap.IsCompleted(a)), ui.ActivityIcon(string(a)), a.DisplayName())
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", ui.Muted.Render("↑/↓ or j/k: move · enter: open guide · q: quit"))
	return strings.Join(lines, "\n")
}

func (m boardModel) renderGuide() string {
	f := m.flow
	var out []string
	out = append(out, ui.H2.Render(ui.ActivityIcon(string(f.Activity()))+" "+f.Title()))

	if step, ok := f.Step(); ok {
		out = append(out, ui.Muted.Render(fmt.Sprintf("Step %d of %d", f.Index()+1, f.Len())))
		out = append(out, ui.Panel.Render(ui.IconStep+" "+step))
		out = append(out, stepDots(f.Index(), f.Len()))
		next := "next step"
		if f.Index() == f.Len()-1 {
			next = "finish"
		}
		out = append(out, "", ui.Muted.Render("enter/→: "+next+" · esc: back · q: quit"))
		return strings.Join(out, "\n")
	}

	out = append(out, ui.Panel.Render(ui.Good.Render(ui.IconSparkle+" Great job! All steps done.")))
	if m.awarded > 0 {
		out = append(out, ui.Gold.Render(fmt.Sprintf("+%d points", m.awarded)))
	}
	out = append(out, "", ui.Muted.Render("enter/esc: back to activities · q: quit"))
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return m.lastLog
}

func stepDots(index, total int) string {
	var b strings.Builder
	for i := 0; i < total; i++ {
		switch {
		case i < index:
			b.WriteString(ui.Good.Render("●"))
		case i == index:
			b.WriteString(ui.Gold.Render("●"))
		default:
			b.WriteString(ui.Muted.Render("○"))
		}
	}
	return b.String()
}
