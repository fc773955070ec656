package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeremyfitness/fitplayer/icon"
	"github.com/jeremyfitness/fitplayer/style"
)

// listItem implements list.Item for the settings menus.
type listItem struct {
	internal interface{}
	marked   bool
}

func (t *listItem) getMark() string {
	return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Success))
}

// Title retrieves the display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case float64:
		title = formatRate(e)
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = title + " " + t.getMark()
	}

	return
}

func (t *listItem) Description() string {
	return ""
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case float64:
		return formatRate(e)
	case string:
		return e
	default:
		return ""
	}
}

func formatRate(rate float64) string {
	if rate == 1 {
		return "Normal"
	}
	return strconv.FormatFloat(rate, 'f', -1, 64) + "x"
}
