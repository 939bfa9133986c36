//go:build linux

package model

import (
	"github.com/moby/sys/mountinfo"
	"golang.org/x/sys/unix"
)

func getPlatformDrives() ([]Drive, error) {
	mounts, err := mountinfo.GetMounts(localFilesystems)
	if err != nil {
		return nil, err
	}

	var drives []Drive
	for _, m := range mounts {
		total, free, ok := diskSpace(m.Mountpoint)
		if !ok {
			// Mounts we cannot statfs (permissions, stale) are left out
			continue
		}
		drives = append(drives, Drive{
			Path:       m.Mountpoint,
			Label:      m.Source,
			TotalBytes: total,
			FreeBytes:  free,
		})
	}
	return drives, nil
}

// localFilesystems skips network and pseudo filesystems
func localFilesystems(m *mountinfo.Info) (skip, stop bool) {
	return isFilteredFilesystem(m.FSType), false
}

// diskSpace returns total and available bytes for the filesystem at path
func diskSpace(path string) (total, free uint64, ok bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, 0, false
	}
	unit := uint64(st.Frsize)
	if unit == 0 {
		unit = uint64(st.Bsize)
	}
	return st.Blocks * unit, st.Bavail * unit, true
}
