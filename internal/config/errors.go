package config

import "fmt"

// IOError reports an environment failure while persisting the config, such
// as a permission problem or a full disk. It aborts the install.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
