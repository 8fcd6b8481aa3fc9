package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropin-dev/dropin/internal/settings"
)

// recordingSink captures sink calls for assertions.
type recordingSink struct {
	debugs []string
	warns  []string
}

func (s *recordingSink) Debug(msg string, _ map[string]any) { s.debugs = append(s.debugs, msg) }
func (s *recordingSink) Warn(msg string, _ map[string]any)  { s.warns = append(s.warns, msg) }

func TestOnActivateInstalls(t *testing.T) {
	fs := newFakeFS()
	fs.sources["/src/loader.bin"] = "bytes"
	store := settings.NewMemStore()

	r := newTestReconciler(t, testSpec(), fs, store)
	res := r.OnActivate(context.Background())

	require.True(t, res.Succeeded())
	assert.Equal(t, "bytes", fs.files["/priv/loader.bin"])
}

func TestOnActivateFailureLogsAndReturnsValue(t *testing.T) {
	fs := newFakeFS()
	fs.mkdirErr = errors.New("permission denied")
	sink := &recordingSink{}

	r, err := New(testSpec(), fs, &lister{fs: fs, dir: "/priv"}, settings.NewMemStore(), sink)
	require.NoError(t, err)

	res := r.OnActivate(context.Background())
	assert.True(t, res.Failed())
	assert.Equal(t, KindDirNotCreated, res.Kind)
	assert.NotEmpty(t, sink.warns, "activation failure must reach the sink")
}

func TestOnDeactivateClearsRecord(t *testing.T) {
	fs := newFakeFS()
	fs.files["/priv/loader.bin"] = "bytes"
	store := settings.NewMemStore()
	require.NoError(t, store.Set("loader", settings.Record{InstalledVersion: "1.0.0"}))

	r := newTestReconciler(t, testSpec(), fs, store)
	res, err := r.OnDeactivate(context.Background())

	require.NoError(t, err)
	require.True(t, res.Succeeded())

	rec, _, getErr := store.Get("loader")
	require.NoError(t, getErr)
	assert.Empty(t, rec.InstalledVersion)
}

func TestOnDeactivateStrictEscalates(t *testing.T) {
	fs := newFakeFS()
	fs.files["/priv/loader.bin"] = "bytes"
	fs.removeErr = errors.New("busy")

	spec := testSpec()
	spec.StrictOnTeardown = true
	r := newTestReconciler(t, spec, fs, settings.NewMemStore())

	res, err := r.OnDeactivate(context.Background())
	require.Error(t, err, "strict teardown must escalate a failed removal")
	assert.True(t, res.Failed())
	assert.Equal(t, KindNotWritable, res.Kind)
}

func TestOnDeactivateLenientOnlyLogs(t *testing.T) {
	fs := newFakeFS()
	fs.files["/priv/loader.bin"] = "bytes"
	fs.removeErr = errors.New("busy")
	sink := &recordingSink{}

	r, err := New(testSpec(), fs, &lister{fs: fs, dir: "/priv"}, settings.NewMemStore(), sink)
	require.NoError(t, err)

	res, deactErr := r.OnDeactivate(context.Background())
	require.NoError(t, deactErr, "without strict teardown the failure stays a value")
	assert.True(t, res.Failed())
	assert.NotEmpty(t, sink.warns)
}

// The end-to-end scenario: activate at 0.1.0, upgrade via check to
// 0.2.0, then deactivate.
func TestLifecycleEndToEnd(t *testing.T) {
	fs := newFakeFS()
	fs.sources["/src/loader.bin"] = "v1"
	store := settings.NewMemStore()

	spec := testSpec()
	spec.Version = "0.1.0"
	r := newTestReconciler(t, spec, fs, store)
	require.True(t, r.OnActivate(context.Background()).Succeeded())

	rec, _, err := store.Get("loader")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", rec.InstalledVersion)

	// New host lifetime, new file contents, higher version.
	fs.sources["/src/loader.bin"] = "v2"
	spec.Version = "0.2.0"
	r = newTestReconciler(t, spec, fs, store)
	require.True(t, r.Check(context.Background()).Succeeded())
	assert.Equal(t, "v2", fs.files["/priv/loader.bin"])

	rec, _, err = store.Get("loader")
	require.NoError(t, err)
	assert.Equal(t, "0.2.0", rec.InstalledVersion)

	res, deactErr := r.OnDeactivate(context.Background())
	require.NoError(t, deactErr)
	require.True(t, res.Succeeded())

	_, present := fs.files["/priv/loader.bin"]
	assert.False(t, present)
	raw, ok := store.Raw("loader")
	require.True(t, ok)
	_, present = raw["installedVersion"]
	assert.False(t, present)
}
