package tui

import (
	"strings"

	"github.com/lucasferri/artmood/internal/artwork"
)

func renderListItem(it artwork.Artwork, selected, liked bool, width int) string {
	if width < 10 {
		width = 30
	}

	heart := "  "
	if liked {
		heart = itemLikedStyle.Render("♥") + " "
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(it.Title, width-6))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(it.Title, width-6))
	}

	meta := "  " + heart + itemArtistStyle.Render(truncateStr(it.Artist, width/2))
	if it.Date != "" {
		meta += " " + itemDateStyle.Render("· "+truncateStr(it.Date, width/3))
	}

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(items []artwork.Artwork, liked map[string]bool, cursor int, height int, width int) string {
	if len(items) == 0 {
		return lipglossCenter("No artworks found", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(items[i], i == cursor, liked[items[i].ID], width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
