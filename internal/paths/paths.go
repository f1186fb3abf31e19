// Package paths resolves where setup puts the configuration file and the
// installed executable, following each platform's conventions.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName names the per-user data directory and the program directory.
	AppName = "SpotifyAlarm"
	// ConfigFile is read by the application at startup.
	ConfigFile = "config.json"
	// ExecutableName is the installed application binary.
	ExecutableName = "SpotifyAlarm.exe"
)

// Provider supplies the directory config.json is written to.
type Provider interface {
	ConfigDir() (string, error)
}

// Static is a Provider that always returns the same directory.
type Static string

func (s Static) ConfigDir() (string, error) {
	if s == "" {
		return "", fmt.Errorf("config directory is empty")
	}
	return string(s), nil
}

// Env describes the process environment paths are derived from.
type Env struct {
	GOOS    string
	Getenv  func(string) string
	HomeDir func() (string, error)
}

// SystemEnv returns the environment of the running process.
func SystemEnv() Env {
	return Env{GOOS: runtime.GOOS, Getenv: os.Getenv, HomeDir: os.UserHomeDir}
}

// UserDir resolves the per-user application-data directory for AppName.
type UserDir struct {
	AppName string
	Env     Env
}

// NewUserDir returns the default provider for the running process.
func NewUserDir() UserDir {
	return UserDir{AppName: AppName, Env: SystemEnv()}
}

func (u UserDir) ConfigDir() (string, error) {
	base, err := u.Env.configBase()
	if err != nil {
		return "", err
	}
	return join(u.Env.GOOS, base, u.AppName), nil
}

func (e Env) configBase() (string, error) {
	switch e.GOOS {
	case "windows":
		if appData := e.Getenv("APPDATA"); appData != "" {
			return appData, nil
		}
		home, err := e.home()
		if err != nil {
			return "", err
		}
		return join(e.GOOS, home, "AppData", "Roaming"), nil
	case "darwin":
		home, err := e.home()
		if err != nil {
			return "", err
		}
		return join(e.GOOS, home, "Library", "Application Support"), nil
	default:
		if xdg := e.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg, nil
		}
		home, err := e.home()
		if err != nil {
			return "", err
		}
		return join(e.GOOS, home, ".config"), nil
	}
}

func (e Env) home() (string, error) {
	home, err := e.HomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return home, nil
}

// Scope selects between a per-user and a per-machine program directory.
type Scope string

const (
	ScopeUser    Scope = "user"
	ScopeMachine Scope = "machine"
)

// ValidateScope checks if the given string is a valid Scope
func ValidateScope(scope string) (Scope, error) {
	switch Scope(scope) {
	case ScopeUser, "":
		return ScopeUser, nil
	case ScopeMachine:
		return ScopeMachine, nil
	default:
		return "", fmt.Errorf("invalid scope %q: must be 'user' or 'machine'", scope)
	}
}

// ProgramDir returns the directory the executable is installed into.
func (e Env) ProgramDir(scope Scope, app string) (string, error) {
	if e.GOOS == "windows" {
		if scope == ScopeMachine {
			pf := e.Getenv("ProgramFiles")
			if pf == "" {
				pf = `C:\Program Files`
			}
			return join(e.GOOS, pf, app), nil
		}
		local := e.Getenv("LOCALAPPDATA")
		if local == "" {
			home, err := e.home()
			if err != nil {
				return "", err
			}
			local = join(e.GOOS, home, "AppData", "Local")
		}
		return join(e.GOOS, local, "Programs", app), nil
	}

	if scope == ScopeMachine {
		return join(e.GOOS, "/opt", app), nil
	}
	home, err := e.home()
	if err != nil {
		return "", err
	}
	return join(e.GOOS, home, ".local", "share", app, "bin"), nil
}

// DesktopDir returns the current user's desktop folder.
func (e Env) DesktopDir() (string, error) {
	if e.GOOS == "windows" {
		if profile := e.Getenv("USERPROFILE"); profile != "" {
			return join(e.GOOS, profile, "Desktop"), nil
		}
	}
	home, err := e.home()
	if err != nil {
		return "", err
	}
	return join(e.GOOS, home, "Desktop"), nil
}

// join uses the target platform's separator so paths can be computed for
// Windows from tests running elsewhere.
func join(goos string, elem ...string) string {
	if goos == runtime.GOOS {
		return filepath.Join(elem...)
	}
	sep := "/"
	if goos == "windows" {
		sep = `\`
	}
	out := ""
	for _, e := range elem {
		if e == "" {
			continue
		}
		if out == "" || out[len(out)-1:] == sep {
			out += e
			continue
		}
		out += sep + e
	}
	return out
}
