package install

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// copyExecutable copies src into dir, keeping its base name, and returns
// the destination path. Copying a file onto itself is a no-op.
func copyExecutable(src, dir string) (string, error) {
	if src == "" {
		return "", errors.New("source executable is not set")
	}
	if dir == "" {
		return "", errors.New("program directory is not set")
	}

	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", src)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	dst := filepath.Join(dir, filepath.Base(src))
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return dst, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to copy to %s: %w", dst, err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to sync %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", dst, err)
	}
	return dst, nil
}

// writeShortcut creates an Internet Shortcut (.url) in dir pointing at exe.
// Explorer treats it like a regular shortcut and it needs no COM calls.
func writeShortcut(dir, name, exe string) (string, error) {
	if dir == "" {
		return "", errors.New("desktop directory is not set")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	body := strings.Join([]string{
		"[InternetShortcut]",
		"URL=" + fileURL(exe),
		"IconFile=" + exe,
		"IconIndex=0",
		"",
	}, "\r\n")

	path := filepath.Join(dir, name+".url")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func fileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// StartDetached launches exe without waiting for it to exit.
func StartDetached(exe string) error {
	cmd := exec.Command(exe)
	cmd.Dir = filepath.Dir(exe)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", exe, err)
	}
	return cmd.Process.Release()
}
