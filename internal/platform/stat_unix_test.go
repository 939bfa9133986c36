//go:build linux || darwin

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHardLinksShareInode(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	require.NoError(t, os.WriteFile(a, []byte("data"), 0o644))
	require.NoError(t, os.Link(a, b))
	require.NoError(t, os.WriteFile(c, []byte("data"), 0o644))

	ma, err := Native().Lstat(a)
	require.NoError(t, err)
	mb, err := Native().Lstat(b)
	require.NoError(t, err)
	mc, err := Native().Lstat(c)
	require.NoError(t, err)

	assert.NotZero(t, ma.Inode())
	assert.Equal(t, ma.Inode(), mb.Inode())
	assert.NotEqual(t, ma.Inode(), mc.Inode())
	assert.Equal(t, ma.Device(), mc.Device())
}

func TestPhysicalSizeIsBlockMultiple(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, make([]byte, 1000), 0o644))

	meta, err := Native().Lstat(path)
	require.NoError(t, err)
	assert.Zero(t, meta.Size(false)%blockSize)
	assert.Equal(t, uint64(1000), meta.Size(true))
}

func TestDirectoryDeviceMatchesChildren(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	md, err := Native().Stat(dir)
	require.NoError(t, err)
	mf, err := Native().Lstat(path)
	require.NoError(t, err)
	assert.Equal(t, md.Device(), mf.Device())
}
