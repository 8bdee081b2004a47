// Package tui provides a Bubble Tea terminal user interface for photo-renamer.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Nius/Photo-Renamer/internal/config"
	"github.com/Nius/Photo-Renamer/internal/download"
	"github.com/Nius/Photo-Renamer/internal/model"
	"github.com/Nius/Photo-Renamer/internal/naming"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	photoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateParsing
	StateReview
	StateEditing
	StateDownloading
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// eventLog collects progress events from manager goroutines. The model is
// copied on every update, so the log lives behind a shared pointer and the
// UI pulls a snapshot on each tick.
type eventLog struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (l *eventLog) Add(event download.ProgressEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Message: event.Message, Level: event.Level})
}

func (l *eventLog) Snapshot() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), l.entries...)
}

// Option cycle orders for the review screen.
var (
	replacementOptions = []string{"hyphen", "comma", "nothing"}
	overLengthOptions  = []string{"refuse", "warn", "truncate", "drop_vowels", "do_nothing"}
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	editInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	events    *eventLog
	err       error

	// Download context
	ctx    context.Context
	cancel context.CancelFunc

	manager *download.Manager
	result  naming.Result
	cursor  int

	// Download progress
	totalFiles      int32
	downloadedFiles int32
	totalBytes      int64
	receivedBytes   int64

	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model using the given settings.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/saved-album-page.mhtml"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	ei := textinput.New()
	ei.Placeholder = "Custom description"
	ei.CharLimit = 300
	ei.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		editInput: ei,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		events:    &eventLog{},
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ParseDoneMsg is sent when archive parsing completes.
	ParseDoneMsg struct {
		Manager *download.Manager
		Result  naming.Result
		Err     error
	}

	// DownloadDoneMsg is sent when all downloads complete.
	DownloadDoneMsg struct {
		Received int64
		Total    int64
		Files    int32
		TotalF   int32
		Err      error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ParseDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.manager = msg.Manager
			m.result = msg.Result
			m.cursor = 0
			m.state = StateReview
		}

	case DownloadDoneMsg:
		m.receivedBytes = msg.Received
		m.totalBytes = msg.Total
		m.downloadedFiles = msg.Files
		m.totalFiles = msg.TotalF
		m.logs = m.filteredLogs()
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateDownloading {
			received, total, files, totalFiles := m.manager.Progress()
			m.receivedBytes = received
			m.totalBytes = total
			m.downloadedFiles = files
			m.totalFiles = totalFiles
			m.logs = m.filteredLogs()

			var percent float64
			if totalFiles > 0 {
				percent = float64(files) / float64(totalFiles)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text inputs
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.state == StateEditing {
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit
	}

	switch m.state {
	case StateInput:
		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "enter":
			if m.textInput.Value() != "" {
				m.state = StateParsing
				return m, tea.Batch(m.parseArchives(), m.spinner.Tick)
			}
		}
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd

	case StateParsing, StateDownloading:
		if msg.String() == "esc" {
			m.cancel()
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		}

	case StateReview:
		return m.handleReviewKey(msg)

	case StateEditing:
		switch msg.String() {
		case "esc":
			m.state = StateReview
			return m, nil
		case "enter":
			text := strings.TrimSpace(m.editInput.Value())
			if text == "" {
				m.result = m.manager.Uncustomize(m.cursor)
			} else {
				m.manager.Customize(m.cursor, text)
				m.result.Worst = worstOf(m.manager.Photos())
			}
			m.state = StateReview
			return m, nil
		}
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		return m, cmd

	case StateComplete, StateError:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "r":
			fresh := NewModel(m.settings)
			fresh.width = m.width
			fresh.height = m.height
			return fresh, fresh.Init()
		}
	}

	return m, nil
}

func (m Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	photos := m.manager.Photos()

	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(photos)-1 {
			m.cursor++
		}

	case "e":
		photo := photos[m.cursor]
		m.editInput.SetValue(photo.Description)
		m.editInput.Focus()
		m.state = StateEditing
		return m, textinput.Blink

	case "u":
		m.result = m.manager.Uncustomize(m.cursor)

	case "t":
		m.settings.RemoveTrailingNumbers = !m.settings.RemoveTrailingNumbers
		m.result = m.manager.Plan()

	case "c":
		m.settings.CorrectCaps = !m.settings.CorrectCaps
		m.result = m.manager.Plan()

	case "i":
		m.settings.IndexUnique = !m.settings.IndexUnique
		m.result = m.manager.Plan()

	case "s":
		m.settings.ReplacementCharacter = cycle(replacementOptions, m.settings.ReplacementCharacter)
		m.result = m.manager.Plan()

	case "o":
		m.settings.OverLengthBehavior = cycle(overLengthOptions, m.settings.OverLengthBehavior)
		m.result = m.manager.Plan()

	case "v":
		m.verbose = !m.verbose

	case "enter":
		if m.result.Worst.BlocksExecution() {
			m.events.Add(download.ProgressEvent{
				Message: "Cannot start: resolve refused photos first",
				Level:   download.LevelError,
			})
			m.logs = m.filteredLogs()
			return m, nil
		}
		m.state = StateDownloading
		return m, tea.Batch(m.startDownload(), m.tickProgress())
	}

	return m, nil
}

// worstOf recomputes the batch worst status after a customized edit, which
// bypasses the full pipeline pass.
func worstOf(photos []*model.Photo) model.Status {
	worst := model.StatusReady
	for _, p := range photos {
		worst = model.Worst(worst, p.Status)
	}
	return worst
}

func cycle(options []string, current string) string {
	for i, option := range options {
		if option == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// filteredLogs returns the latest collected events, honoring the verbose
// toggle and keeping only the last 10 entries.
func (m Model) filteredLogs() []LogEntry {
	var logs []LogEntry
	for _, entry := range m.events.Snapshot() {
		if entry.Level == download.LevelVerbose && !m.verbose {
			continue
		}
		logs = append(logs, entry)
	}
	if len(logs) > 10 {
		logs = logs[len(logs)-10:]
	}
	return logs
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📷 Photo Renamer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Extract, rename and download album photos"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateParsing:
		b.WriteString(m.viewParsing())
	case StateReview:
		b.WriteString(m.viewReview())
	case StateEditing:
		b.WriteString(m.viewEditing())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter saved page path(s), separated by semicolons:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output directory: %s", m.settings.OutputDirectory)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewParsing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading album pages..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewReview() string {
	var b strings.Builder
	photos := m.manager.Photos()

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d photos — worst status: %s", len(photos), m.result.Worst)))
	b.WriteString("\n\n")

	// Window the list around the cursor so long albums stay readable.
	const rows = 14
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(photos) {
		end = len(photos)
	}

	for i := start; i < end; i++ {
		photo := photos[i]
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}

		line := fmt.Sprintf("%s %s", statusIcon(photo.Status), photo.Description)
		if photo.Customized {
			line += dimStyle.Render("  (custom)")
		}
		if photo.Status.IsWorseThan(model.StatusReady) {
			line += dimStyle.Render(fmt.Sprintf("  [%s]", photo.Status))
		}

		b.WriteString(pointer)
		if i == m.cursor {
			b.WriteString(photoStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	if end < len(photos) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(photos)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Remove trailing numbers (t)\n", check(m.settings.RemoveTrailingNumbers)))
	b.WriteString(fmt.Sprintf("  %s Correct capitalization (c)\n", check(m.settings.CorrectCaps)))
	b.WriteString(fmt.Sprintf("  %s Index unique descriptions (i)\n", check(m.settings.IndexUnique)))
	b.WriteString(fmt.Sprintf("  Replacement character: %s (s)\n", m.settings.ReplacementCharacter))
	b.WriteString(fmt.Sprintf("  Over-length behavior: %s (o)\n", m.settings.OverLengthBehavior))
	if m.result.Echo.Prefix != "" || m.result.Echo.Suffix != "" {
		// Show the affixes as the pass actually applied them, which may
		// differ from the configured text after sanitization.
		b.WriteString(dimStyle.Render(fmt.Sprintf("  Prefix: %q  Suffix: %q", m.result.Echo.Prefix, m.result.Echo.Suffix)))
		b.WriteString("\n")
	}

	return b.String()
}

func check(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

func statusIcon(status model.Status) string {
	switch {
	case status == model.StatusSaved:
		return successStyle.Render("✓")
	case status == model.StatusReady:
		return infoStyle.Render("•")
	case status == model.StatusWarningLength || status == model.StatusErrorMinor:
		return warningStyle.Render("!")
	default:
		return errorStyle.Render("✗")
	}
}

func (m Model) viewEditing() string {
	var b strings.Builder
	photo := m.manager.Photos()[m.cursor]

	b.WriteString(subtitleStyle.Render("Custom description"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Original: %s", photo.OriginalDescription)))
	b.WriteString("\n\n")
	b.WriteString(m.editInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.downloadedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Photos: %d/%d | Downloaded: %.2f MB",
		m.downloadedFiles,
		m.totalFiles,
		float64(m.receivedBytes)/1024/1024,
	)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	saved := 0
	for _, p := range m.manager.Photos() {
		if p.Status == model.StatusSaved {
			saved++
		}
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Done!\n\n"+
			"Photos saved: %d/%d\n"+
			"Size: %.2f MB\n"+
			"Output: %s",
		saved,
		len(m.manager.Photos()),
		float64(m.receivedBytes)/1024/1024,
		m.settings.OutputDirectory,
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: read pages • esc: quit"
	case StateParsing, StateDownloading:
		return "esc: cancel"
	case StateReview:
		return "↑/↓: select • e: edit • u: revert • t/c/i/s/o: options • v: verbose • enter: download • esc: quit"
	case StateEditing:
		return "enter: apply • esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// parseArchives reads the saved pages and runs the first naming pass.
func (m *Model) parseArchives() tea.Cmd {
	input := m.textInput.Value()
	settings := m.settings
	events := m.events

	return func() tea.Msg {
		var paths []string
		for _, part := range strings.Split(input, ";") {
			if part = strings.TrimSpace(part); part != "" {
				paths = append(paths, part)
			}
		}

		manager := download.NewManager(settings, events.Add)
		if err := manager.Initialize(paths); err != nil {
			return ParseDoneMsg{Err: err}
		}

		return ParseDoneMsg{
			Manager: manager,
			Result:  manager.Plan(),
		}
	}
}

// startDownload starts the actual download in background.
func (m *Model) startDownload() tea.Cmd {
	manager := m.manager
	ctx := m.ctx

	return func() tea.Msg {
		err := manager.Execute(ctx)
		received, total, files, totalFiles := manager.Progress()

		return DownloadDoneMsg{
			Received: received,
			Total:    total,
			Files:    files,
			TotalF:   totalFiles,
			Err:      err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
