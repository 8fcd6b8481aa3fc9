package reconcile

import (
	"context"
	"fmt"
)

// OnActivate runs the install side of host activation. Failures are
// surfaced to the operator and returned as a value; activation never
// escalates an error.
func (r *Reconciler) OnActivate(ctx context.Context) Result {
	res := r.Install(ctx)
	if res.Failed() {
		r.sink.Warn("activation install failed", map[string]any{
			"dir":    r.spec.DestDir,
			"kind":   res.Kind.String(),
			"detail": res.Message,
		})
	}
	return res
}

// OnDeactivate runs the removal side of host teardown. Failures are
// surfaced like activation failures, but when the spec sets
// StrictOnTeardown a failed removal is additionally returned as an
// error. That can block the host's own deactivation sequence, which is
// intentional: strict teardown means cleanup must not be skipped.
func (r *Reconciler) OnDeactivate(ctx context.Context) (Result, error) {
	res := r.Remove(ctx)
	if res.Failed() {
		r.sink.Warn("teardown removal failed", map[string]any{
			"dir":    r.spec.DestDir,
			"kind":   res.Kind.String(),
			"detail": res.Message,
		})
		if r.spec.StrictOnTeardown {
			return res, fmt.Errorf("removing %s: %s", r.spec.DestPath(), res.Message)
		}
	}
	return res, nil
}
