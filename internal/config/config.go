// Package config reads framework settings and element locators from a
// sectioned INI file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// DefaultPath is where the registry lives relative to the working
// directory, unless WEBFORGE_CONFIG points elsewhere.
const DefaultPath = "config/config.ini"

// LocatorSection is the section holding element locators.
const LocatorSection = "locators"

// KeyNotFoundError is returned when a section or key is absent from the
// registry.
type KeyNotFoundError struct {
	Section string
	Key     string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("config: no key %q in section %q", e.Key, e.Section)
}

// Reader resolves (section, key) pairs against the backing INI file. The
// file is re-read on every lookup so external edits are picked up between
// test steps; lookups are cheap enough that freshness wins over caching.
type Reader struct {
	fs   afero.Fs
	path string
}

// NewReader returns a Reader over the given filesystem and INI path.
func NewReader(fsys afero.Fs, path string) *Reader {
	return &Reader{fs: fsys, path: path}
}

// Default returns a Reader over the conventional registry location,
// honoring the WEBFORGE_CONFIG environment variable.
func Default(fsys afero.Fs) *Reader {
	path := os.Getenv("WEBFORGE_CONFIG")
	if path == "" {
		path = DefaultPath
	}
	return NewReader(fsys, path)
}

// Value returns the raw string stored under (section, key).
func (r *Reader) Value(section, key string) (string, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return "", fmt.Errorf("config: reading %q: %w", r.path, err)
	}
	cfg, err := ini.Load(data)
	if err != nil {
		return "", fmt.Errorf("config: parsing %q: %w", r.path, err)
	}
	sec, err := cfg.GetSection(section)
	if err != nil {
		return "", &KeyNotFoundError{Section: section, Key: key}
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return "", &KeyNotFoundError{Section: section, Key: key}
	}
	return k.String(), nil
}

// Locator returns the raw selector string registered under the given
// locator name.
func (r *Reader) Locator(name string) (string, error) {
	return r.Value(LocatorSection, name)
}

// LoadEnv applies a .env file to the process environment if one exists.
// A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: loading %q: %w", path, err)
	}
	return nil
}
