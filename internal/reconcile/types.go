package reconcile

import (
	"path/filepath"
	"strings"
)

// Status classifies the outcome of a reconciler operation.
type Status int

const (
	// StatusSuccess means the operation performed its effect.
	StatusSuccess Status = iota
	// StatusSkipped means no work was needed; the target is current.
	StatusSkipped
	// StatusFailed means the operation could not complete.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// FailureKind identifies what blocked a failed operation.
type FailureKind int

const (
	// KindNone is the zero kind for non-failure results.
	KindNone FailureKind = iota
	// KindDirNotCreated means the target directory is missing and could
	// not be created; no copy was attempted.
	KindDirNotCreated
	// KindNotWritable means a copy or delete was blocked by permissions
	// or a filesystem fault.
	KindNotWritable
	// KindFilesystemInit means the filesystem capability itself is
	// unavailable or could not answer.
	KindFilesystemInit
)

func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDirNotCreated:
		return "dir-not-created"
	case KindNotWritable:
		return "not-writable"
	case KindFilesystemInit:
		return "filesystem-init"
	}
	return "unknown"
}

// Result is the tagged outcome of a Check, Install, or Remove. Kind and
// Message are populated only for failures. There is no partial-success
// state: a copy that lands but whose record write fails still reports
// success, and the next check self-heals via the installed listing.
type Result struct {
	Status  Status
	Kind    FailureKind
	Message string
}

// Succeeded reports whether the operation performed its effect.
func (r Result) Succeeded() bool { return r.Status == StatusSuccess }

// Skipped reports whether the operation was a no-op.
func (r Result) Skipped() bool { return r.Status == StatusSkipped }

// Failed reports whether the operation failed.
func (r Result) Failed() bool { return r.Status == StatusFailed }

func success() Result {
	return Result{Status: StatusSuccess}
}

func skipped() Result {
	return Result{Status: StatusSkipped}
}

func failure(kind FailureKind, message string) Result {
	return Result{Status: StatusFailed, Kind: kind, Message: message}
}

// Spec describes one deployment: a source file, the version it carries,
// and where it lands. A Spec is immutable for the lifetime of the
// reconciler built from it.
type Spec struct {
	// SourcePath is the file to deploy. Existence is not pre-validated;
	// a missing source surfaces at copy time.
	SourcePath string

	// DestDir is the privileged target directory.
	DestDir string

	// DestFilename is the simple filename appended to DestDir. It must
	// not contain path separators.
	DestFilename string

	// Version is the semantic version this spec installs.
	Version string

	// SettingsKey identifies the persisted record. Empty means no
	// persistence: every check treats an update as required.
	SettingsKey string

	// StrictOnTeardown escalates a failed removal during teardown as an
	// error instead of merely logging it.
	StrictOnTeardown bool
}

// DestPath is the full destination path of the deployed file.
func (s Spec) DestPath() string {
	return filepath.Join(s.DestDir, s.DestFilename)
}

// Validate reports the first structural problem with the spec.
func (s Spec) Validate() error {
	switch {
	case s.SourcePath == "":
		return errSpec("source path is required")
	case s.DestDir == "":
		return errSpec("destination directory is required")
	case s.DestFilename == "":
		return errSpec("destination filename is required")
	case strings.ContainsAny(s.DestFilename, `/\`):
		return errSpec("destination filename must not contain path separators")
	case s.Version == "":
		return errSpec("version is required")
	}
	return nil
}

type errSpec string

func (e errSpec) Error() string { return "invalid deployment spec: " + string(e) }
