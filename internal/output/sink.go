package output

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// IsStdout reports whether dest names standard output
func IsStdout(dest string) bool {
	return dest == "" || dest == "-"
}

// Open creates the destination file (or uses stdout for "" and "-") and
// wraps it with codec c. Closing the result flushes the encoder and closes
// the file; stdout is left open.
func Open(dest string, stdout io.Writer, c Codec, level int) (io.WriteCloser, error) {
	c = c.Resolve(dest)

	if IsStdout(dest) {
		return Wrap(nopCloser{stdout}, c, level)
	}

	f, err := os.Create(dest)
	if err != nil {
		return nil, err
	}
	w, err := Wrap(f, c, level)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// Wrap compresses writes to dst with codec c. Closing the returned writer
// closes dst.
func Wrap(dst io.WriteCloser, c Codec, level int) (io.WriteCloser, error) {
	switch c {
	case None, Auto:
		return dst, nil
	case Gzip:
		if level == 0 {
			level = gzip.DefaultCompression
		}
		zw, err := gzip.NewWriterLevel(dst, level)
		if err != nil {
			return nil, fmt.Errorf("gzip level %d: %w", level, err)
		}
		return &encoder{enc: zw, dst: dst}, nil
	case Zstd:
		opts := []zstd.EOption{}
		if level != 0 {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		}
		zw, err := zstd.NewWriter(dst, opts...)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return &encoder{enc: zw, dst: dst}, nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}

// encoder closes the compression stream before its destination
type encoder struct {
	enc io.WriteCloser
	dst io.Closer
}

func (e *encoder) Write(p []byte) (int, error) {
	return e.enc.Write(p)
}

func (e *encoder) Close() error {
	encErr := e.enc.Close()
	dstErr := e.dst.Close()
	if encErr != nil {
		return encErr
	}
	return dstErr
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
