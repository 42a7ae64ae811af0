package favorites

import (
	"github.com/eventtix/eventtix/internal/storage"
	"github.com/eventtix/eventtix/pkg/errors"
)

// FileStore persists the favorite set as a JSON array in the state
// directory.
type FileStore struct {
	dir *storage.Dir
}

// NewFileStore returns a persister backed by the given state directory.
func NewFileStore(dir *storage.Dir) *FileStore {
	return &FileStore{dir: dir}
}

// Load reads the persisted favorite identifiers.
func (s *FileStore) Load() ([]int64, error) {
	var ids []int64
	if err := s.dir.ReadJSON(storage.FavoritesFile, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Save writes the favorite identifiers.
func (s *FileStore) Save(ids []int64) error {
	if err := s.dir.WriteJSON(storage.FavoritesFile, ids); err != nil {
		return errors.WrapIO("persist", storage.FavoritesFile, err)
	}
	return nil
}
