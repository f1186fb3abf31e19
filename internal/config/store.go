// Package config persists the credential record as config.json in the
// per-user application-data directory.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spotify-alarm/setup/internal/credentials"
	"github.com/spotify-alarm/setup/internal/paths"
)

const (
	dirPerm  = 0700
	filePerm = 0600
)

// Store reads and writes config.json through an FS and a path Provider.
type Store struct {
	FS    FS
	Paths paths.Provider
}

// NewStore returns a Store on the real filesystem.
func NewStore(p paths.Provider) *Store {
	return &Store{FS: OSFS{}, Paths: p}
}

// Path returns the location of config.json.
func (s *Store) Path() (string, error) {
	dir, err := s.Paths.ConfigDir()
	if err != nil {
		return "", &IOError{Op: "resolve", Path: "config directory", Err: err}
	}
	return filepath.Join(dir, paths.ConfigFile), nil
}

// Write validates rec and replaces config.json with it. Records that fail
// validation are never written. Filesystem failures come back as *IOError.
func (s *Store) Write(rec credentials.Record) error {
	if err := credentials.Validate(rec); err != nil {
		return err
	}

	dir, err := s.Paths.ConfigDir()
	if err != nil {
		return &IOError{Op: "resolve", Path: "config directory", Err: err}
	}
	if err := s.FS.MkdirAll(dir, dirPerm); err != nil {
		return &IOError{Op: "create directory", Path: dir, Err: err}
	}

	path := filepath.Join(dir, paths.ConfigFile)
	if err := s.FS.WriteFile(path, credentials.Encode(rec), filePerm); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Load reads config.json back with the application's rules.
func (s *Store) Load() (credentials.Record, error) {
	data, path, err := s.read()
	if err != nil {
		return credentials.Record{}, err
	}
	rec, err := credentials.Decode(data)
	if err != nil {
		return credentials.Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Check validates config.json on disk against the schema and returns the
// path it checked.
func (s *Store) Check() (string, error) {
	data, path, err := s.read()
	if err != nil {
		return path, err
	}
	if err := ValidateDocument(data); err != nil {
		return path, fmt.Errorf("%s: %w", path, err)
	}
	return path, nil
}

func (s *Store) read() ([]byte, string, error) {
	path, err := s.Path()
	if err != nil {
		return nil, "", err
	}
	data, err := s.FS.ReadFile(path)
	if err != nil {
		return nil, path, &IOError{Op: "read", Path: path, Err: err}
	}
	return data, path, nil
}
