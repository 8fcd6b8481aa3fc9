package fsys

import (
	"fmt"
	"os"
)

// Lister enumerates the files currently recognized as installed in a
// privileged directory. The listing, not the persisted record, is the
// authoritative answer to "is the file actually there".
type Lister interface {
	ListInstalled() ([]string, error)
}

// DirLister lists the regular files of a single directory.
type DirLister struct {
	Dir string
}

// NewDirLister returns a Lister over dir.
func NewDirLister(dir string) *DirLister {
	return &DirLister{Dir: dir}
}

// ListInstalled returns the names of regular files in the directory. A
// missing directory yields an empty listing, not an error: nothing is
// installed there.
func (l *DirLister) ListInstalled() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", l.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
