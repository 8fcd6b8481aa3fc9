package dropin

import (
	"github.com/dropin-dev/dropin/internal/notice"
	"github.com/dropin-dev/dropin/internal/reconcile"
	"github.com/dropin-dev/dropin/internal/settings"
)

// Type aliases re-export internal types as the public API. Users import
// "github.com/dropin-dev/dropin/pkg/dropin" and use dropin.Result,
// dropin.Record, etc.

type Result = reconcile.Result
type Status = reconcile.Status
type FailureKind = reconcile.FailureKind
type Spec = reconcile.Spec

type Record = settings.Record
type Store = settings.Store

type Sink = notice.Sink
type Warning = notice.Warning

const (
	StatusSuccess = reconcile.StatusSuccess
	StatusSkipped = reconcile.StatusSkipped
	StatusFailed  = reconcile.StatusFailed

	KindDirNotCreated  = reconcile.KindDirNotCreated
	KindNotWritable    = reconcile.KindNotWritable
	KindFilesystemInit = reconcile.KindFilesystemInit
)
