package platform

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToAllocation(t *testing.T) {
	tests := []struct {
		size, unit, want uint64
	}{
		{0, 4096, 0},
		{1, 4096, 4096},
		{4096, 4096, 4096},
		{4097, 4096, 8192},
		{10, 0, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundToAllocation(tt.size, tt.unit), "size=%d unit=%d", tt.size, tt.unit)
	}
}

func TestKindOfMode(t *testing.T) {
	assert.Equal(t, KindFile, kindOfMode(0o644))
	assert.Equal(t, KindDir, kindOfMode(fs.ModeDir|0o755))
	assert.Equal(t, KindSymlink, kindOfMode(fs.ModeSymlink|0o777))
	assert.Equal(t, KindOther, kindOfMode(fs.ModeNamedPipe))
	assert.Equal(t, KindOther, kindOfMode(fs.ModeDevice|fs.ModeCharDevice))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "directory", KindDir.String())
	assert.Equal(t, "symlink", KindSymlink.String())
	assert.Equal(t, "other", KindOther.String())
}

func TestEntrySizeMode(t *testing.T) {
	e := &entry{size: 10, physical: 4096}
	assert.Equal(t, uint64(10), e.Size(true))
	assert.Equal(t, uint64(4096), e.Size(false))
}
