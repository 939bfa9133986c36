package model

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeForPicksDeepestMount(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix mount paths")
	}

	drives := []Drive{
		{Path: "/", TotalBytes: 100, FreeBytes: 10},
		{Path: "/mnt/data", TotalBytes: 500, FreeBytes: 50},
		{Path: "/mnt", TotalBytes: 300, FreeBytes: 30},
	}

	got := VolumeFor("/mnt/data/photos/2024", drives)
	assert.Equal(t, "/mnt/data", got.Path)
	assert.Equal(t, uint64(500), got.TotalBytes)

	got = VolumeFor("/mnt/database", drives)
	assert.Equal(t, "/mnt", got.Path, "prefix must match whole components")

	got = VolumeFor("/home/user", drives)
	assert.Equal(t, "/", got.Path)

	got = VolumeFor("/mnt/data", drives)
	assert.Equal(t, "/mnt/data", got.Path)
}

func TestVolumeForFallback(t *testing.T) {
	got := VolumeFor("/nonexistent", nil)
	assert.Equal(t, FallbackDrive, got)
	assert.Equal(t, "/", got.Path)
	assert.Zero(t, got.TotalBytes)
	assert.Zero(t, got.FreeBytes)
}

func TestVolumeForIgnoresEmptyMountPath(t *testing.T) {
	got := VolumeFor("/srv", []Drive{{Path: ""}})
	assert.Equal(t, FallbackDrive, got)
}

func TestUsedBytes(t *testing.T) {
	assert.Equal(t, uint64(70), Drive{TotalBytes: 100, FreeBytes: 30}.UsedBytes())
	assert.Zero(t, Drive{TotalBytes: 10, FreeBytes: 30}.UsedBytes())
}

func TestGetDrivesContainsWorkingDirectory(t *testing.T) {
	drives, err := GetDrives()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	cwd, err = filepath.EvalSymlinks(cwd)
	require.NoError(t, err)

	vol := VolumeFor(cwd, drives)
	assert.NotEmpty(t, vol.Path)
}

func TestSortNamesIsByteOrder(t *testing.T) {
	names := []string{"b.txt", "B.txt", "a", "_x", "Z", "ä", "a.txt"}
	SortNames(names)
	assert.Equal(t, []string{"B.txt", "Z", "_x", "a", "a.txt", "b.txt", "ä"}, names)
}
