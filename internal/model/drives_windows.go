//go:build windows

package model

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func getPlatformDrives() ([]Drive, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, err
	}

	var drives []Drive
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		letter := 'A' + rune(i)
		path := fmt.Sprintf("%c:\\", letter)

		// Empty card readers and disconnected network drives fail here
		total, free, ok := diskSpace(path)
		if !ok {
			continue
		}

		drives = append(drives, Drive{
			Path:       path,
			Label:      string(letter),
			TotalBytes: total,
			FreeBytes:  free,
		})
	}

	return drives, nil
}

func diskSpace(path string) (total, free uint64, ok bool) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, false
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	err = windows.GetDiskFreeSpaceEx(pathPtr, &freeBytesAvailable, &totalBytes, &totalFreeBytes)
	if err != nil {
		return 0, 0, false
	}

	return totalBytes, freeBytesAvailable, true
}
