package scanner

import "github.com/lumipallolabs/gpscan/internal/model"

// InodeTracker remembers the inodes already written during one scan so that
// hard-linked files are reported once. It is not safe for concurrent use.
type InodeTracker struct {
	seen map[model.InodeKey]struct{}
}

// NewInodeTracker returns an empty tracker
func NewInodeTracker() *InodeTracker {
	return &InodeTracker{seen: make(map[model.InodeKey]struct{})}
}

// Seen reports whether id was marked. The zero key is never seen.
func (t *InodeTracker) Seen(id model.InodeKey) bool {
	if id == 0 {
		return false
	}
	_, ok := t.seen[id]
	return ok
}

// Mark records id. The zero key is ignored.
func (t *InodeTracker) Mark(id model.InodeKey) {
	if id == 0 {
		return
	}
	t.seen[id] = struct{}{}
}

// Len returns the number of marked inodes
func (t *InodeTracker) Len() int {
	return len(t.seen)
}
