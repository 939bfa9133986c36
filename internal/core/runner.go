// Package core runs one scan: it checks the root, looks up its volume and
// frames the walker's output as a complete scan dump.
package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lumipallolabs/gpscan/internal/config"
	"github.com/lumipallolabs/gpscan/internal/gpxml"
	"github.com/lumipallolabs/gpscan/internal/logging"
	"github.com/lumipallolabs/gpscan/internal/model"
	"github.com/lumipallolabs/gpscan/internal/output"
	"github.com/lumipallolabs/gpscan/internal/platform"
	"github.com/lumipallolabs/gpscan/internal/scanner"
	"github.com/lumipallolabs/gpscan/internal/stats"
)

// Root precondition failures, reported before any output is written
var (
	ErrRootNotFound = errors.New("directory not found")
	ErrNotDirectory = errors.New("not a directory")
)

// Runner holds the collaborators of a scan. The zero value is not usable;
// create one with NewRunner.
type Runner struct {
	Stater platform.Stater
	Drives func() ([]model.Drive, error)
	Now    func() time.Time
	Logger *slog.Logger
	Stdout io.Writer
}

// NewRunner creates a runner for the native platform writing to os.Stdout
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard
	}
	return &Runner{
		Stater: platform.Native(),
		Drives: model.GetDrives,
		Now:    time.Now,
		Logger: logger,
		Stdout: os.Stdout,
	}
}

// Run scans cfg.Directory and writes the dump to the configured output.
// The returned counters are valid even when the scan fails part way.
func (r *Runner) Run(cfg *config.Config) (*stats.Counters, error) {
	root, err := r.resolveRoot(cfg.Directory)
	if err != nil {
		return nil, err
	}

	drives, err := r.Drives()
	if err != nil {
		r.Logger.Warn("failed to list volumes", "err", err)
	}
	vol := model.VolumeFor(root, drives)
	r.Logger.Debug("scan volume", "root", root, "volume", vol.Path,
		"total", vol.TotalBytes, "free", vol.FreeBytes)

	codec := cfg.Codec()
	sink, err := output.Open(cfg.Output, r.Stdout, codec, cfg.CompressionLevel)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	r.Logger.Debug("writing scan dump", "output", cfg.Output, "compression", codec)

	walker := scanner.NewWalker(cfg.ScanOptions(), r.Stater, r.Logger)
	info := gpxml.ScanInfo{
		VolumePath:  vol.Path,
		VolumeSize:  vol.TotalBytes,
		FreeSpace:   vol.FreeBytes,
		ScanTime:    r.Now(),
		SizeMeasure: gpxml.SizeMeasure(cfg.ApparentSize),
	}

	err = writeDump(sink, info, root, walker)
	if closeErr := sink.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	return walker.Stats(), err
}

// resolveRoot checks that path is an existing directory and returns its
// absolute path with symbolic links resolved
func (r *Runner) resolveRoot(path string) (string, error) {
	meta, err := r.Stater.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("cannot access %s: %w", path, err)
	}
	if meta.Kind() != platform.KindDir {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return canonical, nil
}

func writeDump(w io.Writer, info gpxml.ScanInfo, root string, sc scanner.Scanner) error {
	xw := gpxml.NewWriter(w)
	if err := xw.StartDocument(); err != nil {
		return err
	}
	if err := xw.StartScanInfo(info); err != nil {
		return err
	}
	if err := sc.Scan(root, xw); err != nil {
		return err
	}
	if err := xw.EndScanInfo(); err != nil {
		return err
	}
	return xw.EndDocument()
}
