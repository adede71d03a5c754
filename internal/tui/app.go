// internal/tui/app.go
//
// This is the main TUI for tagboard. It uses bubbletea, which follows The
// Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The TUI owns no resolution logic. Every apply/remove key press goes
// through the widget, and the screen redraws from board state afterwards.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/tagboard/internal/board"
	"github.com/kingrea/tagboard/internal/config"
	"github.com/kingrea/tagboard/internal/logbook"
	"github.com/kingrea/tagboard/internal/tag"
	"github.com/kingrea/tagboard/internal/widget"
)

// appState represents which "screen" we're on
type appState int

const (
	stateBrowse appState = iota // Browsing the tag catalog
	stateAddTag                 // Typing the name of a new user tag
)

const logTailLines = 4

var (
	appliedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	gatedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	logStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// tagItem implements list.Item for one catalog entry.
type tagItem struct {
	name    tag.Tag
	applied bool
	desc    string
}

func (i tagItem) Title() string {
	if i.applied {
		return appliedStyle.Render("● " + string(i.name))
	}
	return "○ " + string(i.name)
}
func (i tagItem) Description() string { return i.desc }
func (i tagItem) FilterValue() string { return string(i.name) }

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	config  *config.Config
	widget  *widget.Widget
	board   *board.Board
	logbook *logbook.Logbook

	// UI components
	tagList   list.Model
	input     textinput.Model
	statusMsg string

	// Focus echo bookkeeping: which tag the cursor currently rests on.
	focusedTag tag.Tag

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance wired to the project's configuration.
func NewApp(projectDir string) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	w, err := widget.New(cfg.PredefinedTags(), cfg.Policies())
	if err != nil {
		return nil, err
	}
	b := board.New()
	w.Subscribe(b)

	logPath := filepath.Join(cfg.LogsDir(), "actions.log")
	lb, err := logbook.New(logPath)
	if err != nil {
		return nil, err
	}
	lb.Info("Session opened · %d predefined tags", len(cfg.PredefinedTags()))
	w.Subscribe(tag.SinkFunc(func(ev tag.Event) {
		if resolved, ok := ev.(tag.ActionResolvedEvent); ok {
			lb.Action("%s %s", resolved.Action.Kind, resolved.Action.Tag)
		}
	}))

	input := textinput.New()
	input.Placeholder = "new tag name"
	input.CharLimit = 64

	app := &App{
		state:   stateBrowse,
		config:  cfg,
		widget:  w,
		board:   b,
		logbook: lb,
		input:   input,
	}
	app.tagList = list.New(app.buildTagItems(), list.NewDefaultDelegate(), 0, 0)
	app.tagList.Title = "⬡ TAGBOARD"
	app.tagList.SetShowStatusBar(false)
	app.tagList.SetFilteringEnabled(false)
	if t, ok := app.selectedTag(); ok {
		app.focusedTag = t
	}
	return app, nil
}

// buildTagItems renders the catalog into list items with applied markers and
// policy hints.
func (a *App) buildTagItems() []list.Item {
	tags := a.widget.Tags()
	items := make([]list.Item, 0, len(tags))
	for _, t := range tags {
		items = append(items, tagItem{
			name:    t,
			applied: a.board.IsApplied(t),
			desc:    a.describeTag(t),
		})
	}
	return items
}

func (a *App) describeTag(t tag.Tag) string {
	policy, ok := a.widget.Policy(t)
	if !ok {
		return gatedStyle.Render("no policy · gated")
	}
	var parts []string
	if !policy.Applicable && !policy.Removable {
		parts = append(parts, "derived · not directly settable")
	} else {
		if !policy.Applicable {
			parts = append(parts, "apply blocked")
		}
		if !policy.Removable {
			parts = append(parts, "remove blocked")
		}
	}
	if len(policy.Negates) > 0 {
		names := make([]string, len(policy.Negates))
		for i, n := range policy.Negates {
			names[i] = string(n)
		}
		parts = append(parts, "negates "+strings.Join(names, ", "))
	}
	if len(parts) == 0 {
		return "apply and remove freely"
	}
	return strings.Join(parts, " · ")
}

// refreshTagList rebuilds the list items in place, keeping the cursor.
func (a *App) refreshTagList() {
	selected := a.tagList.Index()
	a.tagList.SetItems(a.buildTagItems())
	if selected >= len(a.tagList.Items()) {
		selected = len(a.tagList.Items()) - 1
	}
	if selected >= 0 {
		a.tagList.Select(selected)
	}
}

func (a *App) selectedTag() (tag.Tag, bool) {
	item, ok := a.tagList.SelectedItem().(tagItem)
	if !ok {
		return "", false
	}
	return item.name, true
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles all incoming messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Leave room for the summary, log tail, status, and help lines.
		listHeight := msg.Height - (logTailLines + 5)
		if listHeight < 4 {
			listHeight = 4
		}
		a.tagList.SetSize(msg.Width, listHeight)
		return a, nil
	case tea.KeyMsg:
		switch a.state {
		case stateAddTag:
			return a.updateAddTag(msg)
		default:
			return a.updateBrowse(msg)
		}
	}
	return a, nil
}

func (a *App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		a.logbook.Info("Session closed")
		return a, tea.Quit
	case "enter":
		if t, ok := a.selectedTag(); ok {
			a.requestAction(t, tag.KindApply)
		}
		return a, nil
	case "x", "backspace":
		if t, ok := a.selectedTag(); ok {
			a.requestAction(t, tag.KindRemove)
		}
		return a, nil
	case "a":
		a.state = stateAddTag
		a.input.SetValue("")
		a.input.Focus()
		a.statusMsg = ""
		return a, textinput.Blink
	case "c":
		a.widget.ClearUserTags()
		a.logbook.Info("Cleared user tags")
		a.statusMsg = "User tags cleared"
		a.refreshTagList()
		a.emitFocusChange()
		return a, nil
	}

	var cmd tea.Cmd
	a.tagList, cmd = a.tagList.Update(msg)
	a.emitFocusChange()
	return a, cmd
}

func (a *App) updateAddTag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := tag.Tag(strings.TrimSpace(a.input.Value()))
		a.state = stateBrowse
		a.input.Blur()
		if name == "" {
			return a, nil
		}
		added, err := a.widget.AddUserTag(name)
		switch {
		case err != nil:
			a.statusMsg = fmt.Sprintf("Add failed: %v", err)
			a.logbook.Error("add user tag %s: %v", name, err)
		case !added:
			a.statusMsg = fmt.Sprintf("%s is already in the catalog", name)
		default:
			a.statusMsg = fmt.Sprintf("Added %s", name)
			a.logbook.Info("Added user tag %s", name)
		}
		a.refreshTagList()
		return a, nil
	case "esc":
		a.state = stateBrowse
		a.input.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// requestAction routes one user intent through the widget and reports the
// outcome. The board and logbook react through their subscriptions.
func (a *App) requestAction(t tag.Tag, kind tag.Kind) {
	actions := a.widget.RequestAction(t, kind)
	if len(actions) == 0 {
		a.statusMsg = fmt.Sprintf("Policy blocks %s on %s", kind, t)
		a.logbook.Warn("policy blocked %s %s", kind, t)
	} else {
		a.statusMsg = fmt.Sprintf("%d action(s) for %s %s", len(actions), kind, t)
	}
	a.refreshTagList()
}

// emitFocusChange echoes cursor movement to the widget's subscribers.
func (a *App) emitFocusChange() {
	t, ok := a.selectedTag()
	if !ok || t == a.focusedTag {
		return
	}
	if a.focusedTag != "" {
		a.widget.FocusTag(a.focusedTag, false)
	}
	a.widget.FocusTag(t, true)
	a.widget.SelectTag(t)
	a.focusedTag = t
}

// View renders the current screen.
func (a *App) View() string {
	var b strings.Builder

	if a.state == stateAddTag {
		b.WriteString("Add a tag to the catalog\n\n")
		b.WriteString(a.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: add · esc: cancel"))
		return b.String()
	}

	b.WriteString(a.tagList.View())
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render("Applied: " + a.appliedSummary()))
	b.WriteString("\n")
	for _, line := range a.logbook.Tail(logTailLines) {
		b.WriteString(logStyle.Render(line))
		b.WriteString("\n")
	}
	if a.statusMsg != "" {
		b.WriteString(statusStyle.Render(a.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: apply · x: remove · a: add tag · c: clear user tags · q: quit"))
	return b.String()
}

func (a *App) appliedSummary() string {
	applied := a.board.Applied()
	if len(applied) == 0 {
		return "none"
	}
	names := make([]string, len(applied))
	for i, t := range applied {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
