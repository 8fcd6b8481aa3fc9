// Package settings persists the installed-version record in a host-owned
// key-value store. Records are general mappings: the host may keep its
// own keys alongside ours, so every write merges into the freshest read
// instead of overwriting.
package settings

// installedVersionKey is the one key this module owns inside a record.
const installedVersionKey = "installedVersion"

// Record is the persisted state for one settings key. InstalledVersion
// is the version last deployed through the reconciler; Rest carries any
// host-added keys verbatim so they survive our writes.
type Record struct {
	InstalledVersion string
	Rest             map[string]any
}

// HasVersion reports whether an installed version is recorded.
func (r Record) HasVersion() bool {
	return r.InstalledVersion != ""
}

// AsMap flattens the record into the wire mapping.
func (r Record) AsMap() map[string]any {
	m := make(map[string]any, len(r.Rest)+1)
	for k, v := range r.Rest {
		m[k] = v
	}
	if r.InstalledVersion != "" {
		m[installedVersionKey] = r.InstalledVersion
	}
	return m
}

// FromMap builds a Record from a wire mapping, splitting out the
// installed version from passthrough keys.
func FromMap(m map[string]any) Record {
	r := Record{}
	for k, v := range m {
		if k == installedVersionKey {
			if s, ok := v.(string); ok {
				r.InstalledVersion = s
			}
			continue
		}
		if r.Rest == nil {
			r.Rest = make(map[string]any)
		}
		r.Rest[k] = v
	}
	return r
}

// Store is the external key-value settings store. Get returns the record
// and whether one exists under the key.
type Store interface {
	Get(key string) (Record, bool, error)
	Set(key string, rec Record) error
}
