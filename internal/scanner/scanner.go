package scanner

import (
	"github.com/lumipallolabs/gpscan/internal/model"
	"github.com/lumipallolabs/gpscan/internal/stats"
)

// Options is the scan configuration, resolved once before traversal
type Options struct {
	// ApparentSize reports content length instead of allocated storage
	ApparentSize bool
	// CrossMounts descends into directories on other filesystems
	CrossMounts bool
	// IncludeZeroFiles keeps files whose reported size is zero
	IncludeZeroFiles bool
	// IncludeEmptyFolders keeps folders with nothing written inside
	IncludeEmptyFolders bool
}

// Emitter receives the folders and files of a scan in document order
type Emitter interface {
	OpenFolder(d model.DirectoryRecord) error
	File(f model.FileRecord) error
	CloseFolder() error
}

// Scanner defines the interface for filesystem scanning
type Scanner interface {
	// Scan walks root and streams its contents to out
	Scan(root string, out Emitter) error

	// Stats returns the counters of the last scan
	Stats() *stats.Counters
}
