package model

import (
	"path/filepath"
	"strings"
)

// Drive represents a mounted drive/volume
type Drive struct {
	Path       string // mount point, e.g. "/" or "C:\\"
	Label      string // device, filesystem type or drive letter
	TotalBytes uint64
	FreeBytes  uint64 // available to unprivileged users
}

// UsedBytes returns bytes used on this drive
func (d Drive) UsedBytes() uint64 {
	if d.FreeBytes > d.TotalBytes {
		return 0
	}
	return d.TotalBytes - d.FreeBytes
}

// FallbackDrive is reported when no known drive contains the scan root
var FallbackDrive = Drive{Path: "/"}

// GetDrives returns all available drives on the system
func GetDrives() ([]Drive, error) {
	return getPlatformDrives()
}

// VolumeFor returns the drive whose mount path is the deepest prefix of path.
// Prefixes are matched per path component, so /mnt/data does not contain
// /mnt/database.
func VolumeFor(path string, drives []Drive) Drive {
	best, bestDepth := -1, -1
	for i, d := range drives {
		if !withinMount(path, d.Path) {
			continue
		}
		if depth := pathDepth(d.Path); depth > bestDepth {
			best, bestDepth = i, depth
		}
	}
	if best < 0 {
		return FallbackDrive
	}
	return drives[best]
}

func withinMount(path, mount string) bool {
	if mount == "" || path == "" {
		return false
	}
	path = filepath.Clean(path)
	mount = filepath.Clean(mount)
	if path == mount {
		return true
	}
	if !strings.HasSuffix(mount, string(filepath.Separator)) {
		mount += string(filepath.Separator)
	}
	return strings.HasPrefix(path, mount)
}

func pathDepth(path string) int {
	return len(strings.FieldsFunc(filepath.Clean(path), func(r rune) bool {
		return r == filepath.Separator
	}))
}
