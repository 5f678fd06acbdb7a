package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasferri/artmood/internal/artwork"
	"github.com/lucasferri/artmood/internal/browser"
	"github.com/lucasferri/artmood/internal/likes"
	"github.com/lucasferri/artmood/internal/search"
	"github.com/lucasferri/artmood/internal/update"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeHome mode = iota
	modeInput
	modeResults
	modeLikes
	modeHelp
)

type App struct {
	searcher *search.Orchestrator
	store    *likes.Store

	result     search.Result
	likedItems []artwork.Artwork
	liked      map[string]bool

	cursor int
	focus  focusPane
	mode   mode

	width  int
	height int

	moodInput textinput.Model
	spinner   spinner.Model

	searching     bool
	previewScroll int
	currentDate   string
	version       string
	updateVersion string
	initialMood   string
	err           error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Searcher *search.Orchestrator
	Store    *likes.Store
	Version  string
	// MoodText pre-fills and immediately runs a search when non-empty.
	MoodText string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "e.g., I feel calm but a little nostalgic"
	ti.Prompt = moodPromptStyle.Render("mood> ")
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	startMode := modeHome
	if opts.MoodText != "" {
		startMode = modeResults
	}

	return &App{
		searcher:    opts.Searcher,
		store:       opts.Store,
		liked:       make(map[string]bool),
		moodInput:   ti,
		spinner:     sp,
		currentDate: time.Now().Format("Jan 2"),
		mode:        startMode,
		version:     opts.Version,
		initialMood: opts.MoodText,
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.loadLikesCmd()}

	if a.initialMood != "" {
		a.searching = true
		cmds = append(cmds, a.searchCmd(a.initialMood), a.spinner.Tick)
	}

	if a.version != "" && a.version != "dev" {
		cmds = append(cmds, checkUpdateCmd(a.version))
	}

	return tea.Batch(cmds...)
}

func checkUpdateCmd(version string) tea.Cmd {
	return func() tea.Msg {
		res := update.Check(context.Background(), version)
		if res == nil {
			return nil
		}
		return updateAvailableMsg{version: res.LatestVersion}
	}
}

// searchCmd runs one orchestrated search. The result carries the generation
// of the search that produced it; stale results are dropped in Update.
func (a *App) searchCmd(text string) tea.Cmd {
	searcher := a.searcher
	return func() tea.Msg {
		return searchDoneMsg{result: searcher.Run(context.Background(), text)}
	}
}

func (a *App) loadLikesCmd() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		items, err := store.List()
		if err != nil {
			return errMsg{err: err}
		}
		return likesLoadedMsg{items: items}
	}
}

func (a *App) toggleLikeCmd(it artwork.Artwork) tea.Cmd {
	store := a.store
	return func() tea.Msg {
		liked, err := store.Toggle(it)
		if err != nil {
			return errMsg{err: err}
		}
		return likeToggledMsg{id: it.ID, liked: liked}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case searchDoneMsg:
		// A newer search supersedes this one: drop stale results.
		if msg.result.Generation != a.searcher.Generation() {
			return a, nil
		}
		a.searching = false
		a.result = msg.result
		a.cursor = 0
		a.previewScroll = 0
		if msg.result.Err != nil {
			a.err = msg.result.Err
		}
		return a, nil

	case likesLoadedMsg:
		a.likedItems = msg.items
		a.liked = make(map[string]bool, len(msg.items))
		for _, it := range msg.items {
			a.liked[it.ID] = true
		}
		if a.mode == modeLikes && a.cursor >= len(a.likedItems) {
			a.cursor = max(0, len(a.likedItems)-1)
		}
		return a, nil

	case likeToggledMsg:
		a.liked[msg.id] = msg.liked
		if !msg.liked {
			delete(a.liked, msg.id)
		}
		// Re-read the store so the likes view stays in sync.
		return a, a.loadLikesCmd()

	case errMsg:
		a.err = msg.err
		return a, nil

	case updateAvailableMsg:
		a.updateVersion = msg.version
		return a, nil

	case spinner.TickMsg:
		if a.searching {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeInput:
		return a.handleInputKey(msg)
	case modeLikes:
		return a.handleLikesKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeResults
		}
		return a, nil
	}

	// Results mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.result.Items)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "o", "enter":
		if it := a.selected(); it != nil {
			return a, openBrowserCmd(it.DetailURL)
		}
		return a, nil
	case "l", " ":
		if it := a.selected(); it != nil {
			return a, a.toggleLikeCmd(*it)
		}
		return a, nil
	case "L":
		a.mode = modeLikes
		a.cursor = 0
		a.previewScroll = 0
		return a, a.loadLikesCmd()
	case "/", "s":
		a.mode = modeInput
		a.moodInput.Focus()
		return a, textinput.Blink
	case "h":
		a.mode = modeHome
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "/", "enter":
		a.mode = modeInput
		a.moodInput.Focus()
		return a, textinput.Blink
	case "L":
		a.mode = modeLikes
		a.cursor = 0
		return a, a.loadLikesCmd()
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeHome
		a.moodInput.Blur()
		return a, nil
	case "enter":
		text := strings.TrimSpace(a.moodInput.Value())
		if text == "" {
			return a, nil
		}
		a.mode = modeResults
		a.moodInput.Blur()
		a.searching = true
		a.focus = focusList
		return a, tea.Batch(a.searchCmd(text), a.spinner.Tick)
	}

	var cmd tea.Cmd
	a.moodInput, cmd = a.moodInput.Update(msg)
	return a, cmd
}

func (a *App) handleLikesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "h":
		a.mode = modeHome
		a.cursor = 0
		return a, nil
	case "e":
		a.mode = modeResults
		a.cursor = 0
		return a, nil
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.likedItems)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "o", "enter":
		if a.cursor < len(a.likedItems) {
			return a, openBrowserCmd(a.likedItems[a.cursor].DetailURL)
		}
		return a, nil
	case "l", " ":
		if a.cursor < len(a.likedItems) {
			return a, a.toggleLikeCmd(a.likedItems[a.cursor])
		}
		return a, nil
	}
	return a, nil
}

func (a *App) selected() *artwork.Artwork {
	if len(a.result.Items) == 0 || a.cursor >= len(a.result.Items) {
		return nil
	}
	return &a.result.Items[a.cursor]
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  artmood")
	}

	switch a.mode {
	case modeHome:
		home := renderHomeScreen(a.width, a.height-1, len(a.likedItems), a.updateVersion)
		bar := renderStatusBar(len(a.result.Items), len(a.likedItems), a.width, false, "s search  L likes  q quit")
		return lipgloss.JoinVertical(lipgloss.Left, home, bar)
	case modeInput:
		return a.renderInput()
	case modeLikes:
		return a.renderBrowse(a.likedItems, "Liked artworks", "j/k move  o open  l unlike  esc back  q quit")
	case modeHelp:
		return a.renderHelp()
	}

	hints := "j/k move  tab focus  o open  l like  / new mood  ? help  q quit"
	return a.renderBrowse(a.result.Items, a.queryLabel(), hints)
}

func (a *App) renderInput() string {
	title := headerStyle.Render("artmood")
	prompt := "\n\n  How are you feeling?\n\n  " + a.moodInput.View() +
		"\n\n" + helpDimStyle.Render("  enter search  esc back")
	content := title + prompt
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Center, content)
}

func (a *App) queryLabel() string {
	if a.searching {
		return "Searching..."
	}
	if a.result.Query == "" {
		return ""
	}
	return "Searching The Met and Art Institute of Chicago for: " +
		queryTermStyle.Render(a.result.Query)
}

func (a *App) renderBrowse(items []artwork.Artwork, label, hints string) string {
	headerHeight := 1
	queryHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - queryHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("artmood")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	queryBar := queryBarStyle.Render(truncateStr(label, a.width-2))

	// List pane
	innerListW := listWidth - 4 // border + padding
	listContent := renderList(items, a.liked, a.cursor, contentHeight, innerListW)

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	// Preview pane
	var selected *artwork.Artwork
	if len(items) > 0 && a.cursor < len(items) {
		selected = &items[a.cursor]
	}
	innerPreviewW := previewWidth - 4
	var isLiked bool
	if selected != nil {
		isLiked = a.liked[selected.ID]
	}
	previewContent := renderPreview(selected, isLiked, innerPreviewW, contentHeight, a.previewScroll)

	var previewPane string
	if a.focus == focusPreview {
		previewPane = previewPaneActiveStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	} else {
		previewPane = previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	status := renderStatusBar(len(items), len(a.likedItems), a.width, a.searching, hints)

	if a.searching {
		status = a.spinner.View() + " " + status
	}

	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorHeart).Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, queryBar, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("artmood")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Navigate artwork list\n" +
		"  tab           Switch focus between list and preview\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open artwork page in browser\n" +
		"  l, space      Like / unlike the selected artwork\n" +
		"  L             View liked artworks\n" +
		"  /, s          Search with a new mood\n\n" +
		dim.Render("General") + "\n" +
		"  h             Go to home screen\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
