// Package tui provides a Bubble Tea terminal user interface for the
// storyboard editor.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/storyboard-creator/internal/export"
	"github.com/handiism/storyboard-creator/internal/model"
	"github.com/handiism/storyboard-creator/internal/studio"
)

// maxLogs is the number of recent events shown under the board.
const maxLogs = 5

// eventBuffer is the capacity of an Events queue.
const eventBuffer = 64

// focusArea identifies the component receiving key presses.
type focusArea int

const (
	focusTitle focusArea = iota
	focusDescription
	focusPrompt
	focusBoard

	focusCount
)

// Events queues Studio events for the program. Push never blocks: events
// arriving while the queue is full are dropped.
type Events chan studio.Event

// NewEvents creates an event queue.
func NewEvents() Events {
	return make(Events, eventBuffer)
}

// Push queues event. Its signature matches the Studio event callback.
func (e Events) Push(event studio.Event) {
	select {
	case e <- event:
	default:
	}
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	studio *studio.Studio
	events Events

	title       textinput.Model
	description textarea.Model
	prompt      textinput.Model
	spinner     spinner.Model
	help        help.Model
	keys        keyMap

	focus      focusArea
	selected   int
	generating bool
	exporting  bool
	logs       []studio.Event
	previews   *previewCache
	exportPath string

	width  int
	height int
}

// NewModel creates a new TUI model editing the storyboard held by st.
// Events pushed to events are shown under the board.
func NewModel(st *studio.Studio, events Events, exportPath string) Model {
	title := textinput.New()
	title.Placeholder = "Shot title"
	title.CharLimit = 200
	title.Width = 60
	title.Focus()

	description := textarea.New()
	description.Placeholder = "Description (optional)"
	description.ShowLineNumbers = false
	description.CharLimit = 2000
	description.SetWidth(62)
	description.SetHeight(3)

	prompt := textinput.New()
	prompt.Placeholder = "Image prompt (defaults to the title)"
	prompt.CharLimit = 500
	prompt.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		studio:      st,
		events:      events,
		title:       title,
		description: description,
		prompt:      prompt,
		spinner:     sp,
		help:        help.New(),
		keys:        defaultKeyMap(),
		focus:       focusTitle,
		previews:    newPreviewCache(),
		exportPath:  exportPath,
	}
}

// Message types
type (
	// EventMsg carries one Studio event.
	EventMsg struct {
		Event studio.Event
	}

	// ShotAddedMsg is sent when a submission completes.
	ShotAddedMsg struct {
		Shot model.Shot
		Err  error
	}

	// ExportDoneMsg is sent when an export completes.
	ExportDoneMsg struct {
		Result *export.Result
		Err    error
	}
)

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForEvent())
}

// waitForEvent delivers the next queued Studio event.
func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Event: event}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		fieldWidth := min(max(msg.Width-8, 20), 80)
		m.title.Width = fieldWidth
		m.prompt.Width = fieldWidth
		m.description.SetWidth(fieldWidth + 2)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.generating && !m.exporting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case EventMsg:
		m.logs = append(m.logs, msg.Event)
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}
		return m, m.waitForEvent()

	case ShotAddedMsg:
		m.generating = false
		if msg.Err == nil {
			m.title.Reset()
			m.description.Reset()
			m.prompt.Reset()
			m.selected = max(m.studio.Len()-1, 0)
		}
		return m, nil

	case ExportDoneMsg:
		m.exporting = false
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.focus == focusBoard {
			return m.setFocus(focusTitle)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextField):
		return m.setFocus((m.focus + 1) % focusCount)

	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Export):
		return m.startExport()
	}

	if m.focus == focusBoard {
		return m.handleBoardKey(msg)
	}

	if msg.Type == tea.KeyEnter && (m.focus == focusTitle || m.focus == focusPrompt) {
		return m.submit()
	}

	return m.updateFocused(msg)
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := m.studio.Len()
	if total == 0 {
		return m, nil
	}
	columns := columnsFor(m.width)

	switch {
	case key.Matches(msg, m.keys.MoveUp):
		if m.studio.MoveShot(m.selected, model.Up) {
			m.selected--
		}
	case key.Matches(msg, m.keys.MoveDown):
		if m.studio.MoveShot(m.selected, model.Down) {
			m.selected++
		}
	case key.Matches(msg, m.keys.Delete):
		shots := m.studio.Shots()
		if m.selected < len(shots) {
			m.studio.DeleteShot(shots[m.selected].ID)
			m.forgetPreviews()
		}
	case key.Matches(msg, m.keys.Left):
		m.selected--
	case key.Matches(msg, m.keys.Right):
		m.selected++
	case key.Matches(msg, m.keys.Up):
		if m.selected-columns >= 0 {
			m.selected -= columns
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected+columns < total {
			m.selected += columns
		}
	}

	m.selected = min(max(m.selected, 0), max(m.studio.Len()-1, 0))
	return m, nil
}

// setFocus moves key focus, blurring the previous field.
func (m Model) setFocus(focus focusArea) (tea.Model, tea.Cmd) {
	m.title.Blur()
	m.description.Blur()
	m.prompt.Blur()
	m.focus = focus

	var cmd tea.Cmd
	switch focus {
	case focusTitle:
		cmd = m.title.Focus()
	case focusDescription:
		cmd = m.description.Focus()
	case focusPrompt:
		cmd = m.prompt.Focus()
	}
	return m, cmd
}

// updateFocused forwards msg to the focused form field.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
	case focusPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	}
	return m, cmd
}

// canSubmit reports whether the form may be submitted.
func (m Model) canSubmit() bool {
	return !m.generating && !m.studio.Busy() && strings.TrimSpace(m.title.Value()) != ""
}

func (m Model) draft() studio.Draft {
	return studio.Draft{
		Title:       strings.TrimSpace(m.title.Value()),
		Description: strings.TrimSpace(m.description.Value()),
		Prompt:      strings.TrimSpace(m.prompt.Value()),
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.canSubmit() {
		return m, nil
	}
	m.generating = true
	return m, tea.Batch(m.spinner.Tick, addShot(m.studio, m.draft()))
}

func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.exporting || m.studio.Len() == 0 {
		return m, nil
	}
	m.exporting = true
	return m, tea.Batch(m.spinner.Tick, exportBoard(m.studio, m.exportPath))
}

// addShot runs a submission in the background.
func addShot(st *studio.Studio, draft studio.Draft) tea.Cmd {
	return func() tea.Msg {
		shot, err := st.AddShot(context.Background(), draft)
		return ShotAddedMsg{Shot: shot, Err: err}
	}
}

// exportBoard writes the storyboard in the background.
func exportBoard(st *studio.Studio, dir string) tea.Cmd {
	return func() tea.Msg {
		result, err := st.Export(context.Background(), dir)
		return ExportDoneMsg{Result: result, Err: err}
	}
}

func (m Model) forgetPreviews() {
	keep := make(map[string]bool)
	for _, shot := range m.studio.Shots() {
		keep[shot.ID] = true
	}
	m.previews.forget(keep)
}

// View renders the UI.
func (m Model) View() string {
	var top strings.Builder

	top.WriteString(titleStyle.Render("Storyboard Creator"))
	top.WriteString("\n")
	top.WriteString(m.viewForm())
	top.WriteString("\n\n")

	var bottom strings.Builder
	if logs := m.renderLogs(); logs != "" {
		bottom.WriteString("\n")
		bottom.WriteString(logs)
	}
	bottom.WriteString("\n")
	bindings := m.keys.formHelp()
	if m.focus == focusBoard {
		bindings = m.keys.boardHelp()
	}
	bottom.WriteString(m.help.View(bindings))

	budget := 0
	if m.height > 0 {
		budget = max(m.height-lipgloss.Height(top.String())-lipgloss.Height(bottom.String()), 1)
	}

	return top.String() + m.viewBoard(budget) + "\n" + bottom.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Add a shot"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(m.description.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Image prompt"))
	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	b.WriteString("\n\n")

	switch {
	case m.generating:
		b.WriteString(disabledButtonStyle.Render(m.spinner.View() + " Generating..."))
	case m.canSubmit():
		b.WriteString(buttonStyle.Render("Add Shot"))
	default:
		b.WriteString(disabledButtonStyle.Render("Add Shot"))
	}
	if m.exporting {
		b.WriteString("  ")
		b.WriteString(infoStyle.Render(m.spinner.View() + " Exporting..."))
	}

	count := m.studio.Len()
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d shot(s) • export to %s", count, m.exportPath)))

	return formStyle.Render(b.String())
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, event := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch event.Level {
		case studio.LevelError:
			style = errorStyle
			prefix = "✗"
		case studio.LevelWarning:
			style = warningStyle
			prefix = "!"
		case studio.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case studio.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + event.Message))
		b.WriteString("\n")
	}

	return b.String()
}

// Run starts the TUI application.
func Run(st *studio.Studio, events Events, exportPath string) error {
	p := tea.NewProgram(NewModel(st, events, exportPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
