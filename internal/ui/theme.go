package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divyang theme (CLI + TUI).
// Kept small: reusable styles and a few emojis.

const (
	IconHeart   = "💖"
	IconTrophy  = "🏆"
	IconUser    = "👤"
	IconDone    = "✅"
	IconTodo    = "⚪"
	IconStep    = "👉"
	IconSparkle = "✨"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
)

var activityIcons = map[string]string{
	"eating":   "🍽️",
	"bathing":  "🛁",
	"dressing": "👕",
	"brushing": "🪥",
	"yoga":     "🧘",
	"sleeping": "🛌",
	"learning": "📚",
	"music":    "🎵",
}

var (
	cPrimary = lipgloss.Color("99")  // purple
	cAccent  = lipgloss.Color("205") // pink
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func ActivityIcon(id string) string {
	if icon, ok := activityIcons[id]; ok {
		return icon
	}
	return IconScroll
}

func DoneMark(done bool) string {
	if done {
		return IconDone
	}
	return IconTodo
}

func PointsText(points int) string {
	return Gold.Render(fmt.Sprintf("%s %d Points", IconTrophy, points))
}

// ProgressBar renders value/total as a fixed-width bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + Good.Render(strings.Repeat("#", filled)) + Muted.Render(strings.Repeat("-", width-filled)) + "]"
}
