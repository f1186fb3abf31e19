// Package testutils holds helpers shared by tests across packages.
package testutils

import (
	"os"
	"testing"
)

// SetEnv sets the given environment variables and returns a function that
// restores their previous values.
func SetEnv(t *testing.T, vars map[string]string) func() {
	t.Helper()

	type prev struct {
		value string
		ok    bool
	}
	saved := make(map[string]prev, len(vars))
	for k, v := range vars {
		old, ok := os.LookupEnv(k)
		saved[k] = prev{value: old, ok: ok}
		if err := os.Setenv(k, v); err != nil {
			t.Fatalf("failed to set %s: %v", k, err)
		}
	}

	return func() {
		for k, p := range saved {
			if p.ok {
				_ = os.Setenv(k, p.value)
			} else {
				_ = os.Unsetenv(k)
			}
		}
	}
}
