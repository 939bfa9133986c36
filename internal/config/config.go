// Package config handles command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/lumipallolabs/gpscan/internal/output"
	"github.com/lumipallolabs/gpscan/internal/scanner"
	"github.com/lumipallolabs/gpscan/internal/ui"
)

// Version is the program version reported by --version
const Version = "0.6.0"

// Config holds the application configuration
type Config struct {
	Directory           string       `arg:"positional,required" placeholder:"DIRECTORY" help:"The directory to scan"`
	Output              string       `arg:"-o,--output" placeholder:"FILE" help:"Write the dump to FILE instead of standard output"`
	Mounts              bool         `arg:"-m,--mounts" help:"Cross filesystem boundaries during scan"`
	ApparentSize        bool         `arg:"-A,--apparent-size" help:"Report logical file sizes instead of allocated storage"`
	IncludeZeroFiles    bool         `arg:"-z,--include-zero-files" help:"Include zero-byte files in the scan output"`
	IncludeEmptyFolders bool         `arg:"-e,--include-empty-folders" help:"Include empty folders in the scan output"`
	Gzip                bool         `arg:"--gzip" help:"Compress the output with gzip"`
	Zstd                bool         `arg:"--zstd" help:"Compress the output with zstd"`
	Compression         output.Codec `arg:"--compression" default:"auto" help:"Output compression: auto|none|gzip|zstd (auto: gzip for files, zstd for .zst, none for .xml and standard output)"`
	CompressionLevel    int          `arg:"--compression-level" placeholder:"N" help:"Compression level, 0 for the codec default (gzip 1-9, zstd 1-22)"`
	Verbose             bool         `arg:"-v,--verbose" help:"Log every skipped entry to standard error"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return ui.NewStyles(os.Stdout).Banner(Version) + "\n"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "gpscan " + Version
}

// ParseFlags parses command-line flags and returns configuration. Help,
// version and usage errors exit the process.
func ParseFlags() (*Config, error) {
	cfg := &Config{}
	arg.MustParse(cfg)
	return PostProcessConfig(cfg)
}

// Parse parses args, excluding the program name
func Parse(args []string) (*Config, error) {
	cfg := &Config{}
	p, err := arg.NewParser(arg.Config{Program: "gpscan"}, cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Parse(args); err != nil {
		return nil, err
	}
	return PostProcessConfig(cfg)
}

// PostProcessConfig validates flag combinations
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Directory == "" {
		return nil, errors.New("directory is required")
	}
	if cfg.Gzip && cfg.Zstd {
		return nil, errors.New("--gzip and --zstd are mutually exclusive")
	}
	if cfg.Gzip && cfg.Compression != output.Auto && cfg.Compression != output.Gzip {
		return nil, fmt.Errorf("--gzip conflicts with --compression %s", cfg.Compression)
	}
	if cfg.Zstd && cfg.Compression != output.Auto && cfg.Compression != output.Zstd {
		return nil, fmt.Errorf("--zstd conflicts with --compression %s", cfg.Compression)
	}

	if cfg.CompressionLevel != 0 {
		c := cfg.Codec()
		lo, hi := c.LevelRange()
		if lo == 0 && hi == 0 {
			return nil, fmt.Errorf("--compression-level needs gzip or zstd output (resolved compression: %s)", c)
		}
		if cfg.CompressionLevel < lo || cfg.CompressionLevel > hi {
			return nil, fmt.Errorf("%s compression level must be between %d and %d, got %d", c, lo, hi, cfg.CompressionLevel)
		}
	}

	return cfg, nil
}

// ScanOptions returns the walker options selected by the flags
func (cfg *Config) ScanOptions() scanner.Options {
	return scanner.Options{
		ApparentSize:        cfg.ApparentSize,
		CrossMounts:         cfg.Mounts,
		IncludeZeroFiles:    cfg.IncludeZeroFiles,
		IncludeEmptyFolders: cfg.IncludeEmptyFolders,
	}
}

// Codec returns the concrete output codec. --gzip and --zstd win over
// --compression; auto compresses files by their extension and leaves
// standard output uncompressed.
func (cfg *Config) Codec() output.Codec {
	switch {
	case cfg.Gzip:
		return output.Gzip
	case cfg.Zstd:
		return output.Zstd
	}
	return cfg.Compression.Resolve(cfg.Output)
}
