//go:build darwin

package model

import "golang.org/x/sys/unix"

func getPlatformDrives() ([]Drive, error) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return nil, err
	}
	stats := make([]unix.Statfs_t, n)
	n, err = unix.Getfsstat(stats, unix.MNT_NOWAIT)
	if err != nil {
		return nil, err
	}

	var drives []Drive
	for _, st := range stats[:n] {
		// Filter out network and pseudo filesystems
		fsType := unix.ByteSliceToString(st.Fstypename[:])
		if isFilteredFilesystem(fsType) {
			continue
		}

		total := st.Blocks * uint64(st.Bsize)
		if total == 0 {
			continue
		}

		drives = append(drives, Drive{
			Path:       unix.ByteSliceToString(st.Mntonname[:]),
			Label:      fsType,
			TotalBytes: total,
			FreeBytes:  st.Bavail * uint64(st.Bsize),
		})
	}

	return drives, nil
}
