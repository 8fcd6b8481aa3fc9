package settings

// Adapter mediates one reconciler's access to its record. Reads are
// memoized after first access so repeated checks within one cycle cost a
// single store round-trip; writes always merge into a fresh read of the
// store so host keys added between our reads are never clobbered.
type Adapter struct {
	store Store
	key   string

	cached Record
	loaded bool
}

// NewAdapter returns an Adapter over store for key.
func NewAdapter(store Store, key string) *Adapter {
	return &Adapter{store: store, key: key}
}

// InstalledVersion returns the recorded version, or "" when none is
// recorded.
func (a *Adapter) InstalledVersion() (string, error) {
	if !a.loaded {
		rec, _, err := a.store.Get(a.key)
		if err != nil {
			return "", err
		}
		a.cached = rec
		a.loaded = true
	}
	return a.cached.InstalledVersion, nil
}

// SetInstalledVersion records version, preserving coexisting keys.
func (a *Adapter) SetInstalledVersion(version string) error {
	rec, _, err := a.store.Get(a.key)
	if err != nil {
		return err
	}
	rec.InstalledVersion = version
	if err := a.store.Set(a.key, rec); err != nil {
		return err
	}
	a.cached = rec
	a.loaded = true
	return nil
}

// ClearInstalledVersion deletes only the version key from the record;
// everything else in the mapping survives.
func (a *Adapter) ClearInstalledVersion() error {
	rec, _, err := a.store.Get(a.key)
	if err != nil {
		return err
	}
	rec.InstalledVersion = ""
	if err := a.store.Set(a.key, rec); err != nil {
		return err
	}
	a.cached = rec
	a.loaded = true
	return nil
}

// Invalidate drops the memoized record so the next read hits the store.
func (a *Adapter) Invalidate() {
	a.loaded = false
	a.cached = Record{}
}
