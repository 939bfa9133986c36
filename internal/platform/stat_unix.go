//go:build linux || darwin

package platform

import (
	"time"

	"golang.org/x/sys/unix"
)

// blockSize is the unit of st_blocks on every unix we support
const blockSize = 512

// kindOf classifies an entry from its st_mode
func kindOf(mode uint32) Kind {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return KindFile
	case unix.S_IFDIR:
		return KindDir
	case unix.S_IFLNK:
		return KindSymlink
	default:
		return KindOther
	}
}

func timespecTime(ts unix.Timespec) time.Time {
	return time.Unix(ts.Unix())
}
