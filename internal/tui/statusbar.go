package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(itemCount, likeCount, width int, searching bool, hints string) string {
	left := fmt.Sprintf(" %d artworks", itemCount)
	if likeCount > 0 {
		left += fmt.Sprintf(" · %s %d", itemLikedStyle.Render("♥"), likeCount)
	}
	if searching {
		left += " (searching...)"
	}

	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
