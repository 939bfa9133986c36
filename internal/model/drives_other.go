//go:build !windows && !darwin && !linux

package model

import "runtime"

func getPlatformDrives() ([]Drive, error) {
	return getUnixMounts()
}

// getUnixMounts reports the root filesystem only; sizes are not available
// without a per-OS statfs layout.
func getUnixMounts() ([]Drive, error) {
	return []Drive{
		{Path: "/", Label: runtime.GOOS},
	}, nil
}
