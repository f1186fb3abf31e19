//go:build !windows

package autostart

// Unsupported is the Manager for platforms without a Run key.
type Unsupported struct{}

// Supported reports whether start on login is available on this platform.
func Supported() bool { return false }

// New returns the platform Manager.
func New() Manager { return Unsupported{} }

func (Unsupported) Enable(name, exe string) error {
	if err := checkArgs(name, exe); err != nil {
		return err
	}
	return ErrUnsupported
}

func (Unsupported) Disable(string) error { return ErrUnsupported }

func (Unsupported) Enabled(string) (bool, error) { return false, ErrUnsupported }
