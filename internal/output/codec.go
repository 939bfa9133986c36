// Package output opens the destination of a scan dump and wraps it in the
// selected compression codec.
package output

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Codec is a compression format for the scan dump
type Codec int

const (
	// Auto picks a codec from the destination: the file extension for
	// files, no compression for standard output.
	Auto Codec = iota
	None
	Gzip
	Zstd
)

// String returns the command-line name of the codec
func (c Codec) String() string {
	switch c {
	case Auto:
		return "auto"
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseCodec parses a codec name
func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return Auto, nil
	case "none", "off", "xml":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	default:
		return Auto, fmt.Errorf("invalid compression: %s (valid: auto, none, gzip, zstd)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (c *Codec) UnmarshalText(text []byte) error {
	parsed, err := ParseCodec(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, used for help defaults
func (c Codec) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// extensions maps file extensions to the codec they imply. .gpscan is
// GrandPerspective's own extension for gzip-compressed dumps.
var extensions = map[string]Codec{
	".xml":    None,
	".gz":     Gzip,
	".gpscan": Gzip,
	".zst":    Zstd,
	".zstd":   Zstd,
}

// CodecForPath returns the codec for a file destination. Files are
// gzip-compressed unless the extension names another codec or plain XML.
func CodecForPath(path string) Codec {
	if c, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}
	return Gzip
}

// Resolve turns Auto into a concrete codec for the destination
func (c Codec) Resolve(dest string) Codec {
	if c != Auto {
		return c
	}
	if IsStdout(dest) {
		return None
	}
	return CodecForPath(dest)
}

// LevelRange returns the valid compression levels for the codec.
// Level 0 always selects the codec's default.
func (c Codec) LevelRange() (lo, hi int) {
	switch c {
	case Gzip:
		return 1, 9
	case Zstd:
		return 1, 22
	default:
		return 0, 0
	}
}
