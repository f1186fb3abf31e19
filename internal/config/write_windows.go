//go:build windows

package config

import "os"

// renameio has no Windows implementation.
func writeFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
