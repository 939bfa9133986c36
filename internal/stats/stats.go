// Package stats counts what a scan wrote and what it skipped.
package stats

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Reason explains why an entry was left out of the scan dump
type Reason int

const (
	Unreadable   Reason = iota // metadata or listing could not be read
	ForeignMount               // directory on another filesystem
	EmptyFolder                // folder with nothing written inside
	Symlink                    // symbolic links are never followed
	HardLink                   // inode already written
	ZeroSize                   // file with no bytes in the active size mode
	Special                    // devices, sockets, fifos
	numReasons
)

// String returns a short label for the reason
func (r Reason) String() string {
	switch r {
	case Unreadable:
		return "unreadable"
	case ForeignMount:
		return "foreign mount"
	case EmptyFolder:
		return "empty folder"
	case Symlink:
		return "symlink"
	case HardLink:
		return "hard link"
	case ZeroSize:
		return "zero size"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// Counters accumulates scan statistics. It is not safe for concurrent use;
// a scan is a single sequential traversal.
type Counters struct {
	Folders int64
	Files   int64
	Bytes   uint64
	skipped [numReasons]int64
}

// AddFolder records a folder written to the dump
func (c *Counters) AddFolder() {
	c.Folders++
}

// AddFile records a file written to the dump
func (c *Counters) AddFile(size uint64) {
	c.Files++
	c.Bytes += size
}

// Skip records an entry left out for the given reason
func (c *Counters) Skip(r Reason) {
	if r < 0 || r >= numReasons {
		return
	}
	c.skipped[r]++
}

// Skipped returns how many entries were left out for the given reason
func (c *Counters) Skipped(r Reason) int64 {
	if r < 0 || r >= numReasons {
		return 0
	}
	return c.skipped[r]
}

// TotalSkipped returns the number of entries left out for any reason
func (c *Counters) TotalSkipped() int64 {
	var total int64
	for _, n := range c.skipped {
		total += n
	}
	return total
}

// Summary returns a one-line description of the scan
func (c *Counters) Summary() string {
	s := fmt.Sprintf("%s folders, %s files, %s",
		humanize.Comma(c.Folders),
		humanize.Comma(c.Files),
		humanize.IBytes(c.Bytes))

	var parts []string
	for r := Reason(0); r < numReasons; r++ {
		if n := c.skipped[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", humanize.Comma(n), r))
		}
	}
	if len(parts) > 0 {
		s += "; skipped " + strings.Join(parts, ", ")
	}
	return s
}
