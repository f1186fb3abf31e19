package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spotify-alarm/setup/internal/credentials"
)

// RedirectURI must be registered in the Spotify developer dashboard.
const RedirectURI = "http://127.0.0.1:8080/callback"

const instructions = `To get your Spotify API credentials:
  1. Open https://developer.spotify.com/dashboard and log in.
  2. Create an app (any name and description will do).
  3. In the app settings add this Redirect URI exactly:
       ` + RedirectURI + `
  4. Copy the Client ID and Client Secret into the fields below.

Default URI is optional. Leave it blank to set a URI on each alarm.`

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	summaryStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var taskLabels = []string{
	"Create a desktop shortcut",
	"Start Spotify Alarm when I log in",
}

var fieldLabels = []string{"Client ID", "Client Secret", "Default URI"}

func (m Model) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	switch m.page {
	case PageTasks:
		m.viewTasks(&b)
	case PageCredentials:
		m.viewCredentials(&b)
	case PageConfirm:
		m.viewConfirm(&b)
	}
	return b.String()
}

func (m Model) viewTasks(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Spotify Alarm Setup · Additional tasks"))
	b.WriteString("\n")

	checked := []bool{m.tasks.DesktopShortcut, m.tasks.Autostart}
	for i, label := range taskLabels[:m.lastTask()+1] {
		cursor := "  "
		if i == m.taskCursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if checked[i] {
			box = "[x]"
		}
		fmt.Fprintf(b, "%s%s %s\n", cursor, box, label)
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("space toggle · enter next · esc quit"))
	b.WriteString("\n")
}

func (m Model) viewCredentials(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Spotify Alarm Setup · Spotify API credentials"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(instructions))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(mutedStyle.Render("tab next field · enter on last field continues · esc back"))
	b.WriteString("\n")
}

func (m Model) viewConfirm(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Spotify Alarm Setup · Ready to install"))
	b.WriteString("\n")

	rec := m.Record()
	uri := rec.DefaultURI
	if uri == "" {
		uri = "(none)"
	}

	var s strings.Builder
	fmt.Fprintf(&s, "Client ID:        %s\n", rec.ClientID)
	fmt.Fprintf(&s, "Client Secret:    %s\n", credentials.Mask(rec.ClientSecret))
	fmt.Fprintf(&s, "Default URI:      %s\n", uri)
	fmt.Fprintf(&s, "Desktop shortcut: %s", yesNo(m.tasks.DesktopShortcut))
	if !m.noAutostart {
		fmt.Fprintf(&s, "\nStart on login:   %s", yesNo(m.tasks.Autostart))
	}
	if m.configPath != "" {
		fmt.Fprintf(&s, "\nConfig file:      %s", m.configPath)
	}
	b.WriteString(summaryStyle.Render(s.String()))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("enter install · esc back · q quit"))
	b.WriteString("\n")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
