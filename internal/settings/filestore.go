package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileStore keeps all records in a single YAML file, one top-level key
// per record. Saves are atomic: the file is rewritten through a temp
// file and renamed into place.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore backed by path. The file is created
// on first Set; a missing file reads as an empty store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the record under key, if any.
func (s *FileStore) Get(key string) (Record, bool, error) {
	all, err := s.load()
	if err != nil {
		return Record{}, false, err
	}
	m, ok := all[key]
	if !ok {
		return Record{}, false, nil
	}
	return FromMap(m), true, nil
}

// Set writes the record under key, preserving all other keys in the file.
func (s *FileStore) Set(key string, rec Record) error {
	all, err := s.load()
	if err != nil {
		return err
	}
	all[key] = rec.AsMap()
	return s.save(all)
}

func (s *FileStore) load() (map[string]map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", s.path, err)
	}

	all := map[string]map[string]any{}
	if err := yaml.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", s.path, err)
	}
	return all, nil
}

func (s *FileStore) save(all map[string]map[string]any) error {
	data, err := yaml.Marshal(all)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp settings file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming temp settings file to %s: %w", s.path, err)
	}
	return nil
}
