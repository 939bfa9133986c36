package output

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

func writeAll(t *testing.T, w io.WriteCloser) {
	t.Helper()
	_, err := io.WriteString(w, payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func TestOpenPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	w, err := Open(path, nil, Auto, 0)
	require.NoError(t, err)
	writeAll(t, w)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestOpenGzipByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml.gz")
	w, err := Open(path, nil, Auto, 0)
	require.NoError(t, err)
	writeAll(t, w)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestOpenGzipByDefaultForFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home-scan")
	w, err := Open(path, nil, Auto, 0)
	require.NoError(t, err)
	writeAll(t, w)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestOpenZstdExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	w, err := Open(path, nil, Zstd, 19)
	require.NoError(t, err)
	writeAll(t, w)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	zr, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestOpenStdoutIsNotClosed(t *testing.T) {
	var buf bytes.Buffer
	w, err := Open("-", &buf, Auto, 0)
	require.NoError(t, err)
	writeAll(t, w)
	assert.Equal(t, payload, buf.String())
}

func TestOpenStdoutGzip(t *testing.T) {
	var buf bytes.Buffer
	w, err := Open("", &buf, Gzip, 9)
	require.NoError(t, err)
	writeAll(t, w)

	zr, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestOpenMissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nonexistent_directory", "output.xml"), nil, Auto, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrapRejectsBadGzipLevel(t *testing.T) {
	_, err := Wrap(nopCloser{io.Discard}, Gzip, 42)
	assert.Error(t, err)
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestWrapClosesDestination(t *testing.T) {
	for _, c := range []Codec{None, Gzip, Zstd} {
		dst := &closeRecorder{}
		w, err := Wrap(dst, c, 0)
		require.NoError(t, err, c.String())
		writeAll(t, w)
		assert.True(t, dst.closed, c.String())
		assert.NotZero(t, dst.Len(), c.String())
	}
}
