// Package platform isolates the per-OS parts of reading file metadata:
// device identity, inode identity, allocated size and timestamps.
// Implementations are selected at build time.
package platform

import (
	"io/fs"

	"github.com/lumipallolabs/gpscan/internal/model"
)

// Kind classifies a filesystem entry
type Kind uint8

const (
	KindOther Kind = iota // devices, sockets, fifos
	KindFile
	KindDir
	KindSymlink
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Metadata is the platform-neutral view of one entry's metadata
type Metadata interface {
	Kind() Kind
	// Device identifies the filesystem holding the entry.
	Device() uint64
	// Inode identifies the entry's content on its device, or 0 when the
	// platform cannot tell.
	Inode() model.InodeKey
	// Size returns the content length when apparent is true, and the
	// allocated storage otherwise.
	Size(apparent bool) uint64
	Times() model.Times
}

// Stater reads Metadata for paths
type Stater interface {
	// Stat follows symbolic links.
	Stat(path string) (Metadata, error)
	// Lstat reports on a symbolic link itself.
	Lstat(path string) (Metadata, error)
}

// Native returns the Stater for the running platform
func Native() Stater {
	return nativeStater{}
}

// nativeStater is implemented in the stat_*.go files
type nativeStater struct{}

// allocationUnit is the rounding used where the platform does not expose
// allocated blocks
const allocationUnit = 4096

// entry is the Metadata every platform implementation fills in
type entry struct {
	kind     Kind
	dev      uint64
	ino      uint64
	size     uint64
	physical uint64
	times    model.Times
}

func (e *entry) Kind() Kind            { return e.kind }
func (e *entry) Device() uint64        { return e.dev }
func (e *entry) Inode() model.InodeKey { return model.InodeKey(e.ino) }
func (e *entry) Times() model.Times    { return e.times }

func (e *entry) Size(apparent bool) uint64 {
	if apparent {
		return e.size
	}
	return e.physical
}

// roundToAllocation rounds size up to a whole number of allocation units
func roundToAllocation(size, unit uint64) uint64 {
	if unit == 0 || size%unit == 0 {
		return size
	}
	return (size/unit + 1) * unit
}

// kindOfMode classifies an entry from its portable file mode
func kindOfMode(mode fs.FileMode) Kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
