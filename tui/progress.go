package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeremyfitness/fitplayer/style"
	"github.com/samber/lo"
)

const (
	filledCell = "━"
	trackCell  = "─"
)

// progressCells splits width cells into the played part, the buffered part
// drawn after it and the remaining track. Extents are floored so the bar
// never claims more than was actually played or downloaded.
func progressCells(width int, played, buffered float64) (playedCells, bufferedCells, rest int) {
	if width <= 0 {
		return 0, 0, 0
	}

	clamp := func(f float64) float64 {
		if math.IsNaN(f) {
			return 0
		}
		return lo.Clamp(f, 0, 1)
	}

	playedCells = int(math.Floor(clamp(played) * float64(width)))
	loaded := int(math.Floor(clamp(buffered) * float64(width)))

	bufferedCells = max(loaded-playedCells, 0)
	rest = width - playedCells - bufferedCells

	return
}

func renderProgressBar(width int, played, buffered float64) string {
	p, b, r := progressCells(width, played, buffered)

	return lipgloss.NewStyle().Foreground(style.PlayedColor).Render(strings.Repeat(filledCell, p)) +
		lipgloss.NewStyle().Foreground(style.BufferedColor).Render(strings.Repeat(filledCell, b)) +
		lipgloss.NewStyle().Foreground(style.TrackColor).Render(strings.Repeat(trackCell, r))
}
