package tui

import (
	"github.com/lucasferri/artmood/internal/artwork"
	"github.com/lucasferri/artmood/internal/search"
)

type searchDoneMsg struct {
	result search.Result
}

type likesLoadedMsg struct {
	items []artwork.Artwork
}

type likeToggledMsg struct {
	id    string
	liked bool
}

type errMsg struct {
	err error
}

type updateAvailableMsg struct {
	version string
}
