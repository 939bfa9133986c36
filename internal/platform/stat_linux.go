//go:build linux

package platform

import (
	"errors"
	"io/fs"
	"time"

	"github.com/lumipallolabs/gpscan/internal/model"
	"golang.org/x/sys/unix"
)

func (nativeStater) Stat(path string) (Metadata, error) {
	return statx(path, 0)
}

func (nativeStater) Lstat(path string) (Metadata, error) {
	return statx(path, unix.AT_SYMLINK_NOFOLLOW)
}

// statx reads metadata with statx(2), which also reports birth time on
// filesystems that record it. Kernels older than 4.11 fall back to fstatat.
func statx(path string, flags int) (Metadata, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, flags|unix.AT_STATX_SYNC_AS_STAT,
		unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if errors.Is(err, unix.ENOSYS) {
		return fstatat(path, flags)
	}
	if err != nil {
		return nil, &fs.PathError{Op: "statx", Path: path, Err: err}
	}

	e := &entry{
		kind:     kindOf(uint32(stx.Mode)),
		dev:      unix.Mkdev(stx.Dev_major, stx.Dev_minor),
		ino:      stx.Ino,
		size:     stx.Size,
		physical: stx.Blocks * blockSize,
		times: model.Times{
			Modified: statxTime(stx.Mtime),
			Accessed: statxTime(stx.Atime),
		},
	}
	if stx.Mask&unix.STATX_BTIME != 0 {
		e.times.Created = statxTime(stx.Btime)
	}
	return e, nil
}

func fstatat(path string, flags int) (Metadata, error) {
	var st unix.Stat_t
	if err := unix.Fstatat(unix.AT_FDCWD, path, &st, flags); err != nil {
		return nil, &fs.PathError{Op: "fstatat", Path: path, Err: err}
	}
	return &entry{
		kind:     kindOf(st.Mode),
		dev:      uint64(st.Dev),
		ino:      st.Ino,
		size:     uint64(st.Size),
		physical: uint64(st.Blocks) * blockSize,
		times: model.Times{
			Modified: timespecTime(st.Mtim),
			Accessed: timespecTime(st.Atim),
		},
	}, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
