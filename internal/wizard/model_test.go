package wizard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotify-alarm/setup/internal/credentials"
	"github.com/spotify-alarm/setup/internal/install"
)

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

// toCredentials moves past the tasks page.
func toCredentials(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, key(tea.KeyEnter))
	require.Equal(t, PageCredentials, m.Page())
	return m
}

func TestTasksPage(t *testing.T) {
	m := New(Options{Tasks: &install.Tasks{DesktopShortcut: true}})
	assert.Equal(t, PageTasks, m.Page())

	m = send(t, m, key(tea.KeySpace), key(tea.KeyDown), runes("x"))
	res := m.Result()
	assert.False(t, res.Tasks.DesktopShortcut)
	assert.True(t, res.Tasks.Autostart)

	m = send(t, m, key(tea.KeyDown), key(tea.KeySpace))
	assert.False(t, m.Result().Tasks.Autostart, "cursor stays on the last task")

	view := m.View()
	assert.Contains(t, view, "[ ] Create a desktop shortcut")
	assert.Contains(t, view, "[ ] Start Spotify Alarm when I log in")
}

func TestDefaultTasks(t *testing.T) {
	m := New(Options{})
	assert.Equal(t, install.Tasks{DesktopShortcut: true}, m.Result().Tasks)
	assert.Contains(t, m.View(), "[x] Create a desktop shortcut")
	assert.Contains(t, m.View(), "[ ] Start Spotify Alarm when I log in")

	m = New(Options{Tasks: &install.Tasks{}})
	assert.Equal(t, install.Tasks{}, m.Result().Tasks, "explicit selection wins over defaults")
}

func TestNoAutostartHidesTask(t *testing.T) {
	m := New(Options{Tasks: &install.Tasks{DesktopShortcut: true, Autostart: true}, NoAutostart: true})
	assert.False(t, m.Result().Tasks.Autostart)
	assert.NotContains(t, m.View(), "Start Spotify Alarm when I log in")

	m = send(t, m, key(tea.KeyDown), key(tea.KeySpace))
	res := m.Result()
	assert.False(t, res.Tasks.DesktopShortcut, "cursor stays on the only task")
	assert.False(t, res.Tasks.Autostart)

	m = send(t, m, key(tea.KeyEnter), runes("a"), key(tea.KeyEnter), runes("b"), key(tea.KeyEnter), key(tea.KeyEnter))
	require.Equal(t, PageConfirm, m.Page())
	assert.NotContains(t, m.View(), "Start on login")
}

func TestHappyPath(t *testing.T) {
	m := toCredentials(t, New(Options{}))

	m = send(t, m,
		runes("abc123"), key(tea.KeyEnter),
		runes("s3cr3t"), key(tea.KeyEnter),
		key(tea.KeyEnter),
	)
	require.Equal(t, PageConfirm, m.Page())
	assert.Empty(t, m.ValidationMessage())

	view := m.View()
	assert.Contains(t, view, "abc123")
	assert.NotContains(t, view, "s3cr3t")
	assert.Contains(t, view, "(none)")

	next, cmd := m.Update(key(tea.KeyEnter))
	m = next.(Model)
	assert.True(t, m.Done())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, credentials.Record{ClientID: "abc123", ClientSecret: "s3cr3t"}, m.Result().Record)
}

func TestBlankClientIDBlocksAdvance(t *testing.T) {
	for _, blank := range []string{"", "  ", "\t"} {
		t.Run("client id "+blank, func(t *testing.T) {
			m := toCredentials(t, New(Options{Record: credentials.Record{ClientID: blank, ClientSecret: "s3cr3t"}}))

			m = send(t, m, key(tea.KeyShiftTab), key(tea.KeyEnter))
			assert.Equal(t, PageCredentials, m.Page())
			assert.Equal(t, "Client ID is required.", m.ValidationMessage())
			assert.Contains(t, m.View(), "Client ID is required.")
			assert.NotContains(t, m.View(), "Client Secret is required.")
		})
	}
}

func TestBlankClientSecretBlocksAdvance(t *testing.T) {
	m := toCredentials(t, New(Options{Record: credentials.Record{ClientID: "abc123", ClientSecret: "   "}}))

	m = send(t, m, key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter))
	assert.Equal(t, PageCredentials, m.Page())
	assert.Equal(t, "Client Secret is required.", m.ValidationMessage())

	// Focus moved to the secret field, so typing fixes it.
	m = send(t, m, runes("pw"), key(tea.KeyShiftTab), key(tea.KeyShiftTab), key(tea.KeyEnter))
	assert.Equal(t, PageConfirm, m.Page())
	assert.Empty(t, m.ValidationMessage())
	assert.Equal(t, "   pw", m.Result().Record.ClientSecret)
}

func TestDefaultURIPrefilled(t *testing.T) {
	opts := Options{Record: credentials.Record{ClientID: "id", ClientSecret: "secret", DefaultURI: "spotify:playlist:abc"}}
	m := toCredentials(t, New(opts))

	m = send(t, m, key(tea.KeyShiftTab), key(tea.KeyEnter))
	require.Equal(t, PageConfirm, m.Page())
	assert.Equal(t, opts.Record, m.Result().Record)
	assert.Contains(t, m.View(), "spotify:playlist:abc")
}

func TestSecretIsMaskedWhileTyping(t *testing.T) {
	m := toCredentials(t, New(Options{}))
	m = send(t, m, key(tea.KeyTab), runes("hunter2"))

	assert.Equal(t, "hunter2", m.Record().ClientSecret)
	assert.NotContains(t, m.View(), "hunter2")
}

func TestNavigationBack(t *testing.T) {
	m := toCredentials(t, New(Options{Record: credentials.Record{ClientID: "a", ClientSecret: "b"}}))
	m = send(t, m, key(tea.KeyShiftTab), key(tea.KeyEnter))
	require.Equal(t, PageConfirm, m.Page())

	m = send(t, m, key(tea.KeyEsc))
	assert.Equal(t, PageCredentials, m.Page())

	m = send(t, m, key(tea.KeyEsc))
	assert.Equal(t, PageTasks, m.Page())
	assert.False(t, m.Cancelled())
}

func TestBackToTasksClearsValidationMessage(t *testing.T) {
	m := toCredentials(t, New(Options{}))
	m = send(t, m, key(tea.KeyShiftTab), key(tea.KeyEnter))
	require.Equal(t, "Client ID is required.", m.ValidationMessage())

	m = send(t, m, key(tea.KeyEsc))
	require.Equal(t, PageTasks, m.Page())
	assert.Empty(t, m.ValidationMessage())

	m = toCredentials(t, m)
	assert.Empty(t, m.ValidationMessage())
	assert.NotContains(t, m.View(), "Client ID is required.")
}

func TestCancel(t *testing.T) {
	m := send(t, New(Options{}), key(tea.KeyEsc))
	assert.True(t, m.Cancelled())
	assert.False(t, m.Done())

	m = toCredentials(t, New(Options{}))
	m = send(t, m, key(tea.KeyCtrlC))
	assert.True(t, m.Cancelled())
	assert.Empty(t, m.View())
}

func TestTypingQOnCredentialsDoesNotQuit(t *testing.T) {
	m := toCredentials(t, New(Options{}))
	m = send(t, m, runes("q"), runes(" "), runes("j"))

	assert.False(t, m.Cancelled())
	assert.Equal(t, "q j", m.Record().ClientID)
}
