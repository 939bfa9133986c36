//go:build !linux && !darwin && !windows

package platform

import (
	"io/fs"
	"os"

	"github.com/lumipallolabs/gpscan/internal/model"
)

// Without a known stat layout there is no device or inode identity, so
// mount boundaries and hard links go undetected.

func (nativeStater) Stat(path string) (Metadata, error) {
	return stat(path, os.Stat)
}

func (nativeStater) Lstat(path string) (Metadata, error) {
	return stat(path, os.Lstat)
}

func stat(path string, statFn func(string) (fs.FileInfo, error)) (Metadata, error) {
	info, err := statFn(path)
	if err != nil {
		return nil, err
	}
	size := uint64(info.Size())
	return &entry{
		kind:     kindOfMode(info.Mode()),
		size:     size,
		physical: roundToAllocation(size, allocationUnit),
		times:    model.Times{Modified: info.ModTime()},
	}, nil
}
