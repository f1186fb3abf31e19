// Package wizard is the interactive setup flow: task selection, credential
// entry and confirmation, rendered with bubbletea.
package wizard

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spotify-alarm/setup/internal/credentials"
	"github.com/spotify-alarm/setup/internal/install"
)

// Page is one step of the wizard.
type Page int

const (
	PageTasks Page = iota
	PageCredentials
	PageConfirm
)

const (
	fieldClientID = iota
	fieldClientSecret
	fieldDefaultURI
)

const (
	taskDesktopShortcut = iota
	taskAutostart
)

// ErrCancelled is returned when the user leaves the wizard before confirming.
var ErrCancelled = errors.New("setup cancelled")

// Options prefill the wizard.
type Options struct {
	Record      credentials.Record
	Tasks       *install.Tasks // nil selects install.DefaultTasks()
	NoAutostart bool           // hide start on login where it is unsupported
	ConfigPath  string         // shown on the confirmation page
}

// Result is what the user confirmed.
type Result struct {
	Record credentials.Record
	Tasks  install.Tasks
}

// Model is the bubbletea model for the wizard. Each page either completes
// or is rejected before the next one is shown.
type Model struct {
	page        Page
	tasks       install.Tasks
	taskCursor  int
	noAutostart bool
	inputs      []textinput.Model
	focus       int
	errMsg      string
	configPath  string

	done      bool
	cancelled bool
}

// New builds the wizard at its first page.
func New(opts Options) Model {
	id := textinput.New()
	id.Placeholder = "Client ID"
	id.CharLimit = 256
	id.SetValue(opts.Record.ClientID)

	secret := textinput.New()
	secret.Placeholder = "Client Secret"
	secret.CharLimit = 256
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '•'
	secret.SetValue(opts.Record.ClientSecret)

	uri := textinput.New()
	uri.Placeholder = "spotify:playlist:37i9dQZF1DXcBWIGoYBM5M (optional)"
	uri.CharLimit = 512
	uri.SetValue(opts.Record.DefaultURI)

	tasks := install.DefaultTasks()
	if opts.Tasks != nil {
		tasks = *opts.Tasks
	}
	if opts.NoAutostart {
		tasks.Autostart = false
	}

	return Model{
		page:        PageTasks,
		tasks:       tasks,
		noAutostart: opts.NoAutostart,
		inputs:      []textinput.Model{id, secret, uri},
		configPath:  opts.ConfigPath,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Page returns the page currently shown.
func (m Model) Page() Page { return m.page }

// ValidationMessage returns the inline validation message, if any.
func (m Model) ValidationMessage() string { return m.errMsg }

// Done reports whether the user confirmed the install.
func (m Model) Done() bool { return m.done }

// Cancelled reports whether the user quit.
func (m Model) Cancelled() bool { return m.cancelled }

// Record returns the values currently entered.
func (m Model) Record() credentials.Record {
	return credentials.Record{
		ClientID:     m.inputs[fieldClientID].Value(),
		ClientSecret: m.inputs[fieldClientSecret].Value(),
		DefaultURI:   m.inputs[fieldDefaultURI].Value(),
	}
}

// Result returns the confirmed record and tasks.
func (m Model) Result() Result {
	return Result{Record: m.Record(), Tasks: m.tasks}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		switch m.page {
		case PageTasks:
			return m.updateTasks(msg)
		case PageCredentials:
			return m.updateCredentials(msg)
		case PageConfirm:
			return m.updateConfirm(msg)
		}
	}

	if m.page == PageCredentials {
		return m.updateInput(msg)
	}
	return m, nil
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case "down", "j":
		if m.taskCursor < m.lastTask() {
			m.taskCursor++
		}
	case " ", "x":
		switch m.taskCursor {
		case taskDesktopShortcut:
			m.tasks.DesktopShortcut = !m.tasks.DesktopShortcut
		case taskAutostart:
			m.tasks.Autostart = !m.tasks.Autostart
		}
	case "enter":
		m.page = PageCredentials
		return m, m.setFocus(fieldClientID)
	}
	return m, nil
}

func (m Model) updateCredentials(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.blurAll()
		m.errMsg = ""
		m.page = PageTasks
		return m, nil
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % len(m.inputs))
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
	case "enter":
		if m.focus < len(m.inputs)-1 {
			return m, m.setFocus(m.focus + 1)
		}
		return m.submit()
	}
	return m.updateInput(msg)
}

// submit is the gate out of the credentials page: advancing happens only
// when the record validates, otherwise the message is shown inline and the
// offending field takes focus.
func (m Model) submit() (tea.Model, tea.Cmd) {
	err := credentials.Validate(m.Record())
	var verr *credentials.ValidationError
	if errors.As(err, &verr) {
		m.errMsg = verr.Message()
		field := fieldClientID
		if verr.Field == credentials.FieldClientSecret {
			field = fieldClientSecret
		}
		return m, m.setFocus(field)
	}
	m.errMsg = ""
	m.blurAll()
	m.page = PageConfirm
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		m.done = true
		return m, tea.Quit
	case "esc", "b":
		m.page = PageCredentials
		return m, m.setFocus(fieldClientID)
	case "q":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) lastTask() int {
	if m.noAutostart {
		return taskDesktopShortcut
	}
	return taskAutostart
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.blurAll()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m *Model) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}
