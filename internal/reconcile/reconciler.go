// Package reconcile decides whether a versioned drop-in file needs to be
// installed, updated, or removed, and carries the decision out against a
// filesystem capability and a settings store.
//
// The persisted record is advisory; the installed listing is the source
// of truth. Every decision revalidates against the listing, so a record
// that drifted from reality (an out-of-band deletion, a failed record
// write after a successful copy) is healed on the next check.
package reconcile

import (
	"context"
	"fmt"
	"strings"

	"github.com/dropin-dev/dropin/internal/fsys"
	"github.com/dropin-dev/dropin/internal/notice"
	"github.com/dropin-dev/dropin/internal/settings"
	"github.com/dropin-dev/dropin/internal/version"
)

// Reconciler converges one deployment spec against the filesystem. It
// holds no lock and assumes no exclusive ownership of the destination
// file or the record; rerunning any operation after a race converges to
// the same end state.
type Reconciler struct {
	spec    Spec
	fs      fsys.Capability
	listing fsys.Lister
	record  *settings.Adapter // nil when the spec has no settings key
	sink    notice.Sink
}

// New builds a Reconciler for spec. listing defaults to a directory
// listing of spec.DestDir; sink defaults to a discard sink; store may be
// nil when spec.SettingsKey is empty.
func New(spec Spec, fs fsys.Capability, listing fsys.Lister, store settings.Store, sink notice.Sink) (*Reconciler, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if fs == nil {
		return nil, fsys.ErrInit
	}
	if listing == nil {
		listing = fsys.NewDirLister(spec.DestDir)
	}
	if sink == nil {
		sink = notice.Nop{}
	}

	var record *settings.Adapter
	if spec.SettingsKey != "" {
		if store == nil {
			return nil, fmt.Errorf("spec has settings key %q but no store was given", spec.SettingsKey)
		}
		record = settings.NewAdapter(store, spec.SettingsKey)
	}

	return &Reconciler{
		spec:    spec,
		fs:      fs,
		listing: listing,
		record:  record,
		sink:    sink,
	}, nil
}

// Spec returns the deployment spec this reconciler was built from.
func (r *Reconciler) Spec() Spec {
	return r.spec
}

// Check decides whether the deployment needs work and performs the
// install when it does. It is idempotent and cheap when nothing changed.
func (r *Reconciler) Check(ctx context.Context) Result {
	required, err := r.updateRequired()
	if err != nil {
		r.sink.Debug("installed listing unavailable", map[string]any{
			"dir": r.spec.DestDir, "error": err.Error(),
		})
		return failure(KindFilesystemInit, err.Error())
	}
	if !required {
		r.sink.Debug("deployment current", map[string]any{
			"file": r.spec.DestFilename, "version": r.spec.Version,
		})
		return skipped()
	}
	return r.Install(ctx)
}

// updateRequired revalidates against the installed listing first, then
// consults the persisted record. A record read failure counts as "no
// version recorded": installing again is always safe.
func (r *Reconciler) updateRequired() (bool, error) {
	installed, err := r.listing.ListInstalled()
	if err != nil {
		return false, err
	}
	if !listingContains(installed, r.spec.DestFilename) {
		return true, nil
	}
	if r.record == nil {
		// No persistence configured: every check treats an update as
		// required.
		return true, nil
	}

	recorded, err := r.record.InstalledVersion()
	if err != nil {
		r.sink.Debug("settings record unreadable, assuming no version", map[string]any{
			"key": r.spec.SettingsKey, "error": err.Error(),
		})
		return true, nil
	}
	if recorded == "" {
		return true, nil
	}

	// Equal versions are current; a higher recorded version is left
	// alone. There is no downgrade path.
	return version.Newer(r.spec.Version, recorded), nil
}

// Install copies the source into the destination directory, creating the
// directory if needed, and records the installed version. A record write
// failure does not demote a successful copy.
func (r *Reconciler) Install(ctx context.Context) Result {
	if !r.fs.IsDir(r.spec.DestDir) {
		if err := r.fs.MkdirAll(r.spec.DestDir); err != nil {
			r.sink.Debug("destination directory not created", map[string]any{
				"dir": r.spec.DestDir, "error": err.Error(),
			})
			return failure(KindDirNotCreated, err.Error())
		}
	}

	if err := r.fs.Copy(r.spec.SourcePath, r.spec.DestPath()); err != nil {
		r.sink.Debug("copy failed", map[string]any{
			"source": r.spec.SourcePath, "dest": r.spec.DestPath(), "error": err.Error(),
		})
		return failure(KindNotWritable, err.Error())
	}

	if r.record != nil {
		if err := r.record.SetInstalledVersion(r.spec.Version); err != nil {
			// The copy stands; the next check self-heals the record via
			// the installed listing.
			r.sink.Debug("installed version not persisted", map[string]any{
				"key": r.spec.SettingsKey, "version": r.spec.Version, "error": err.Error(),
			})
		}
	}

	r.sink.Debug("installed", map[string]any{
		"file": r.spec.DestFilename, "version": r.spec.Version,
	})
	return success()
}

// Remove deletes the deployed file and clears the recorded version. A
// missing destination is a successful no-op.
func (r *Reconciler) Remove(ctx context.Context) Result {
	dest := r.spec.DestPath()

	if r.fs.Exists(dest) {
		if err := r.fs.Remove(dest); err != nil {
			r.sink.Debug("delete failed", map[string]any{
				"dest": dest, "error": err.Error(),
			})
			return failure(KindNotWritable, err.Error())
		}
	}

	if r.record != nil {
		if err := r.record.ClearInstalledVersion(); err != nil {
			r.sink.Debug("installed version not cleared", map[string]any{
				"key": r.spec.SettingsKey, "error": err.Error(),
			})
		}
	}

	r.sink.Debug("removed", map[string]any{"file": r.spec.DestFilename})
	return success()
}

// IsWritable is a diagnostic predicate: true when both the destination
// directory and the destination file are either absent or writable. It
// only informs operator warnings and never gates Install or Remove.
func (r *Reconciler) IsWritable() bool {
	dirOK := !r.fs.Exists(r.spec.DestDir) || r.fs.IsWritable(r.spec.DestDir)
	dest := r.spec.DestPath()
	destOK := !r.fs.Exists(dest) || r.fs.IsWritable(dest)
	return dirOK && destOK
}

// listingContains matches by substring: listings may carry bare names
// or full paths.
func listingContains(names []string, filename string) bool {
	for _, n := range names {
		if strings.Contains(n, filename) {
			return true
		}
	}
	return false
}
