//go:build windows

package autostart

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// Registry writes to HKCU\Software\Microsoft\Windows\CurrentVersion\Run.
type Registry struct{}

// Supported reports whether start on login is available on this platform.
func Supported() bool { return true }

// New returns the platform Manager.
func New() Manager { return Registry{} }

func (Registry) Enable(name, exe string) error {
	if err := checkArgs(name, exe); err != nil {
		return err
	}

	key, _, err := registry.CreateKey(registry.CURRENT_USER, RunKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue(name, Command(exe)); err != nil {
		return fmt.Errorf("failed to write Run entry %s: %w", name, err)
	}
	return nil
}

func (Registry) Disable(name string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, RunKeyPath, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open Run key: %w", err)
	}
	defer key.Close()

	if err := key.DeleteValue(name); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to delete Run entry %s: %w", name, err)
	}
	return nil
}

func (Registry) Enabled(name string) (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, RunKeyPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open Run key: %w", err)
	}
	defer key.Close()

	_, _, err = key.GetStringValue(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, registry.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to read Run entry %s: %w", name, err)
	}
}
