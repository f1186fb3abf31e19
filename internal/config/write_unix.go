//go:build !windows

package config

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFile replaces path atomically: a crash leaves either the old file or
// the new one, never a truncated config.
func writeFile(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
