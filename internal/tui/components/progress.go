package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "█"
	emptyChar  = "░"
)

// Progress renders an hour-based progress bar like: ████░░░░ 50% (10/20h)
type Progress struct {
	CompletedHours int
	TotalHours     int
	Width          int // character width of the bar portion
	ShowHours      bool
}

// NewProgress creates a new Progress instance.
func NewProgress(completed, total, width int) Progress {
	return Progress{
		CompletedHours: completed,
		TotalHours:     total,
		Width:          width,
	}
}

// View returns the rendered progress bar string. A plan with no hours renders
// an empty bar at 0%.
func (p Progress) View() string {
	if p.Width <= 0 {
		return ""
	}

	completed := p.CompletedHours
	if completed < 0 {
		completed = 0
	}

	percent := 0
	filled := 0
	if p.TotalHours > 0 {
		if completed > p.TotalHours {
			completed = p.TotalHours
		}
		percent = completed * 100 / p.TotalHours
		filled = completed * p.Width / p.TotalHours
	}

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, p.Width-filled)
	if p.ShowHours {
		return fmt.Sprintf("%s %d%% (%d/%dh)", bar, percent, completed, p.TotalHours)
	}
	return fmt.Sprintf("%s %d%%", bar, percent)
}
