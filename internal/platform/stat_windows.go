//go:build windows

package platform

import (
	"io/fs"
	"os"
	"syscall"
	"time"

	"github.com/lumipallolabs/gpscan/internal/model"
	"golang.org/x/sys/windows"
)

func (nativeStater) Stat(path string) (Metadata, error) {
	return stat(path, os.Stat, 0)
}

func (nativeStater) Lstat(path string) (Metadata, error) {
	return stat(path, os.Lstat, windows.FILE_FLAG_OPEN_REPARSE_POINT)
}

func stat(path string, statFn func(string) (fs.FileInfo, error), openFlags uint32) (Metadata, error) {
	info, err := statFn(path)
	if err != nil {
		return nil, err
	}

	size := uint64(info.Size())
	e := &entry{
		kind: kindOfMode(info.Mode()),
		size: size,
		// NTFS does not expose allocated clusters through the stat APIs
		physical: roundToAllocation(size, allocationUnit),
		times:    model.Times{Modified: info.ModTime()},
	}
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		e.times.Created = time.Unix(0, d.CreationTime.Nanoseconds())
		e.times.Accessed = time.Unix(0, d.LastAccessTime.Nanoseconds())
	}
	e.dev, e.ino = fileID(path, openFlags)
	return e, nil
}

// fileID returns the volume serial number and file index of path.
// Both are 0 when the file cannot be opened, which turns hard link
// detection off for that entry.
func fileID(path string, openFlags uint32) (dev, ino uint64) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0
	}
	h, err := windows.CreateFile(pathPtr, 0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS|openFlags, 0)
	if err != nil {
		return 0, 0
	}
	defer windows.CloseHandle(h)

	var d windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &d); err != nil {
		return 0, 0
	}
	return uint64(d.VolumeSerialNumber), uint64(d.FileIndexHigh)<<32 | uint64(d.FileIndexLow)
}
