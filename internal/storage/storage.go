// Package storage provides the local state directory used to persist
// favorites and the cached session between runs.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/eventtix/eventtix/pkg/errors"
)

// File names within the state directory.
const (
	FavoritesFile = "favorites.json"
	SessionFile   = "session.json"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Dir is a directory holding the client's local state files.
type Dir struct {
	path string
}

// NewDir returns a Dir rooted at path. The directory is created lazily on
// first write.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// DefaultDir returns the per-user state directory, ~/.eventtix.
func DefaultDir() (*Dir, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.WrapIO("resolve", "home directory", err)
	}
	return NewDir(filepath.Join(home, ".eventtix")), nil
}

// Path returns the directory path.
func (d *Dir) Path() string {
	return d.path
}

// ReadJSON decodes the named file into v. A missing file returns
// errors.ErrNotFound; a malformed file returns a parse error.
func (d *Dir) ReadJSON(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(d.path, name))
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError("state file", name)
		}
		return errors.WrapIO("read", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapParse("json", name, err)
	}
	return nil
}

// WriteJSON encodes v into the named file, creating the directory if
// needed. Writes go through a temp file and rename so a crash never leaves
// a half-written state file.
func (d *Dir) WriteJSON(name string, v interface{}) error {
	if err := os.MkdirAll(d.path, dirPermissions); err != nil {
		return errors.WrapIO("create", d.path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapParse("json", name, err)
	}

	target := filepath.Join(d.path, name)
	tmp, err := os.CreateTemp(d.path, name+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", target, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.WrapIO("write", target, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("write", target, err)
	}
	if err := os.Chmod(tmp.Name(), filePermissions); err != nil {
		return errors.WrapIO("chmod", target, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return errors.WrapIO("rename", target, err)
	}
	return nil
}

// Remove deletes the named state file. Removing a file that does not exist
// is not an error.
func (d *Dir) Remove(name string) error {
	err := os.Remove(filepath.Join(d.path, name))
	if err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("remove", name, err)
	}
	return nil
}
