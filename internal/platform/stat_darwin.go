//go:build darwin

package platform

import (
	"io/fs"

	"github.com/lumipallolabs/gpscan/internal/model"
	"golang.org/x/sys/unix"
)

func (nativeStater) Stat(path string) (Metadata, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return fromStat(&st), nil
}

func (nativeStater) Lstat(path string) (Metadata, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}
	return fromStat(&st), nil
}

func fromStat(st *unix.Stat_t) *entry {
	return &entry{
		kind:     kindOf(uint32(st.Mode)),
		dev:      uint64(st.Dev),
		ino:      uint64(st.Ino),
		size:     uint64(st.Size),
		physical: uint64(st.Blocks) * blockSize,
		times: model.Times{
			Created:  timespecTime(st.Btim),
			Modified: timespecTime(st.Mtim),
			Accessed: timespecTime(st.Atim),
		},
	}
}
