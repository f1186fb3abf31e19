// Package install runs the install step: it persists the configuration,
// lays down the executable and applies the selected tasks.
package install

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spotify-alarm/setup/internal/autostart"
	"github.com/spotify-alarm/setup/internal/config"
	"github.com/spotify-alarm/setup/internal/credentials"
	"github.com/spotify-alarm/setup/internal/paths"
)

// Tasks are the optional actions selected on the first wizard page.
type Tasks struct {
	DesktopShortcut bool `yaml:"desktop_shortcut"`
	Autostart       bool `yaml:"autostart"`
}

// DefaultTasks is the selection offered before the user changes anything:
// a desktop shortcut, no start on login.
func DefaultTasks() Tasks {
	return Tasks{DesktopShortcut: true}
}

// Plan is everything the install step needs, fixed before it starts.
type Plan struct {
	Record     credentials.Record
	Tasks      Tasks
	SourceExe  string
	ProgramDir string
	Launch     bool
}

// Result lists what the install step produced.
type Result struct {
	ConfigPath   string
	ExePath      string
	ShortcutPath string
	Autostart    bool
	Launched     bool
}

// Installer executes a Plan.
type Installer struct {
	Config     *config.Store
	Autostart  autostart.Manager
	DesktopDir string
	Launch     func(exe string) error
	Log        zerolog.Logger
}

// Run executes the plan in order and stops at the first failure. Config is
// written first, before any file is copied. Start on login is refused up
// front when the platform has no Run key. A failed launch is logged but
// does not fail the install.
func (i *Installer) Run(ctx context.Context, p Plan) (*Result, error) {
	res := &Result{}

	if err := credentials.Validate(p.Record); err != nil {
		return res, err
	}
	if p.Tasks.Autostart {
		if _, err := i.Autostart.Enabled(paths.AppName); errors.Is(err, autostart.ErrUnsupported) {
			return res, err
		}
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := i.Config.Write(p.Record); err != nil {
		return res, err
	}
	configPath, err := i.Config.Path()
	if err != nil {
		return res, err
	}
	res.ConfigPath = configPath
	i.Log.Info().Str("path", configPath).Msg("configuration written")

	if err := ctx.Err(); err != nil {
		return res, err
	}
	exe, err := copyExecutable(p.SourceExe, p.ProgramDir)
	if err != nil {
		return res, fmt.Errorf("failed to install executable: %w", err)
	}
	res.ExePath = exe
	i.Log.Info().Str("path", exe).Msg("executable installed")

	if p.Tasks.DesktopShortcut {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		link, err := writeShortcut(i.DesktopDir, paths.AppName, exe)
		if err != nil {
			return res, fmt.Errorf("failed to create desktop shortcut: %w", err)
		}
		res.ShortcutPath = link
		i.Log.Info().Str("path", link).Msg("desktop shortcut created")
	}

	if p.Tasks.Autostart {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := i.Autostart.Enable(paths.AppName, exe); err != nil {
			return res, fmt.Errorf("failed to register start on login: %w", err)
		}
		res.Autostart = true
		i.Log.Info().Str("name", paths.AppName).Msg("start on login registered")
	}

	if p.Launch && i.Launch != nil {
		if err := i.Launch(exe); err != nil {
			i.Log.Warn().Err(err).Str("path", exe).Msg("failed to launch application")
		} else {
			res.Launched = true
		}
	}

	return res, nil
}
