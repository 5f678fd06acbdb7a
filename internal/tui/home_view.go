package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	`█████╗ ██████╗ ████████╗███╗   ███╗ ██████╗  ██████╗ ██████╗ `,
	`██╔══██╗██╔══██╗╚══██╔══╝████╗ ████║██╔═══██╗██╔═══██╗██╔══██╗`,
	`███████║██████╔╝   ██║   ██╔████╔██║██║   ██║██║   ██║██║  ██║`,
	`██╔══██║██╔══██╗   ██║   ██║╚██╔╝██║██║   ██║██║   ██║██║  ██║`,
	`██║  ██║██║  ██║   ██║   ██║ ╚═╝ ██║╚██████╔╝╚██████╔╝██████╔╝`,
	`╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝     ╚═╝ ╚═════╝  ╚═════╝ ╚═════╝ `,
}

func renderHomeScreen(width, height, likeCount int, updateVersion string) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorSecondary)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "")
	lines = append(lines, helpDimStyle.Render("    Type how you feel. Get artwork that matches the vibe."))
	lines = append(lines, "")

	lines = append(lines, "          "+keyStyle.Render("[s]")+"  "+labelStyle.Render("Search by mood"))
	if likeCount > 0 {
		lines = append(lines, "          "+keyStyle.Render("[L]")+"  "+labelStyle.Render("Liked artworks"))
	}
	lines = append(lines, "")
	lines = append(lines, "          "+keyStyle.Render("[q]")+"  "+labelStyle.Render("Quit"))

	if updateVersion != "" {
		lines = append(lines, "")
		lines = append(lines, logoStyle.Render("          Update available: v"+updateVersion))
	}

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
