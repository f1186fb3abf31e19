// Package autostart registers the installed application to start at login
// through the current user's Run key.
package autostart

import (
	"errors"
	"fmt"
	"strings"
)

// RunKeyPath is the per-user Run key under HKEY_CURRENT_USER.
const RunKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// ErrUnsupported is returned on platforms without a Run key.
var ErrUnsupported = errors.New("start on login is only supported on Windows")

// Manager adds and removes the start-on-login entry.
type Manager interface {
	Enable(name, exe string) error
	Disable(name string) error
	Enabled(name string) (bool, error)
}

// Command returns the Run value data for exe. Windows parses Run values as
// command lines, so the path is quoted.
func Command(exe string) string {
	return `"` + strings.Trim(exe, `"`) + `"`
}

func checkArgs(name, exe string) error {
	if name == "" {
		return fmt.Errorf("enable autostart: app name is empty")
	}
	if exe == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}
	return nil
}
