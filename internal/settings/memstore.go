package settings

// MemStore is an in-memory Store for tests and embedders with their own
// persistence.
type MemStore struct {
	records map[string]map[string]any
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]map[string]any)}
}

// Get returns the record under key, if any.
func (s *MemStore) Get(key string) (Record, bool, error) {
	m, ok := s.records[key]
	if !ok {
		return Record{}, false, nil
	}
	return FromMap(m), true, nil
}

// Set stores the record under key.
func (s *MemStore) Set(key string, rec Record) error {
	s.records[key] = rec.AsMap()
	return nil
}

// Raw returns the stored mapping for key, for inspection in tests.
func (s *MemStore) Raw(key string) (map[string]any, bool) {
	m, ok := s.records[key]
	return m, ok
}
