package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasferri/artmood/internal/artwork"
)

func renderPreview(it *artwork.Artwork, liked bool, width, height, scroll int) string {
	if it == nil {
		return lipglossCenter("Select an artwork", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(it.Title)

	byline := it.Artist
	if it.Date != "" {
		byline += " · " + it.Date
	}
	if liked {
		byline += " " + itemLikedStyle.Render("♥ liked")
	}
	artist := previewArtistStyle.Render(byline)

	var details []string
	if it.Medium != "" {
		details = append(details, "Medium: "+it.Medium)
	}
	if it.Classification != "" {
		details = append(details, "Classification: "+it.Classification)
	}
	if len(details) == 0 {
		details = append(details, "(No medium information)")
	}
	body := previewBodyStyle.Width(contentWidth).Render(wrapText(strings.Join(details, "\n"), contentWidth))

	links := previewLinkStyle.Width(contentWidth).Render(
		"Image: " + it.ImageURL + "\nDetails: " + it.DetailURL,
	)

	content := lipgloss.JoinVertical(lipgloss.Left, title, artist, "", body, "", links)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				out = append(out, line)
				line = w
			} else {
				line += " " + w
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
