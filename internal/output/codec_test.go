package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecForPath(t *testing.T) {
	tests := []struct {
		path string
		want Codec
	}{
		{"file.txt", Gzip},
		{"file.xml", None},
		{"FILE.XML", None},
		{"file.gz", Gzip},
		{"file.xml.gz", Gzip},
		{"scan.GPSCAN", Gzip},
		{"scan.xml.zst", Zstd},
		{"scan.zstd", Zstd},
		{"noext", Gzip},
		{"dir.d/noext", Gzip},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CodecForPath(tt.path), tt.path)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, None, Auto.Resolve(""))
	assert.Equal(t, None, Auto.Resolve("-"))
	assert.Equal(t, Gzip, Auto.Resolve("out.xml.gz"))
	assert.Equal(t, None, Auto.Resolve("out.xml"))
	assert.Equal(t, Gzip, Auto.Resolve("out"))
	assert.Equal(t, Zstd, Auto.Resolve("out.zst"))
	assert.Equal(t, Gzip, Gzip.Resolve("-"))
	assert.Equal(t, None, None.Resolve("out.gz"))
	assert.Equal(t, Zstd, Zstd.Resolve("out.gz"))
}

func TestParseCodec(t *testing.T) {
	tests := []struct {
		in      string
		want    Codec
		wantErr bool
	}{
		{"auto", Auto, false},
		{"none", None, false},
		{"GZIP", Gzip, false},
		{"gz", Gzip, false},
		{"zstd", Zstd, false},
		{"bzip2", Auto, true},
	}
	for _, tt := range tests {
		got, err := ParseCodec(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCodecText(t *testing.T) {
	var c Codec
	require.NoError(t, c.UnmarshalText([]byte("zstd")))
	assert.Equal(t, Zstd, c)
	assert.Error(t, c.UnmarshalText([]byte("lzma")))
	assert.Equal(t, Zstd, c, "failed parse leaves value unchanged")

	text, err := Gzip.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "gzip", string(text))
	assert.Equal(t, "unknown", Codec(99).String())
}

func TestLevelRange(t *testing.T) {
	lo, hi := Gzip.LevelRange()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 9, hi)
	lo, hi = Zstd.LevelRange()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 22, hi)
	lo, hi = None.LevelRange()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}
