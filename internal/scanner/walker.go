package scanner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lumipallolabs/gpscan/internal/logging"
	"github.com/lumipallolabs/gpscan/internal/model"
	"github.com/lumipallolabs/gpscan/internal/platform"
	"github.com/lumipallolabs/gpscan/internal/stats"
)

// Walker implements sequential, depth-first filesystem scanning.
//
// Within every folder, files are written before subfolders and siblings are
// ordered by name. Entries that cannot be read are left out; only errors
// from the Emitter stop a scan.
type Walker struct {
	opts   Options
	stater platform.Stater
	logger *slog.Logger
	stats  *stats.Counters
}

// NewWalker creates a new walker. A nil stater uses the native platform and
// a nil logger discards diagnostics.
func NewWalker(opts Options, stater platform.Stater, logger *slog.Logger) *Walker {
	if stater == nil {
		stater = platform.Native()
	}
	if logger == nil {
		logger = logging.Discard
	}
	return &Walker{
		opts:   opts,
		stater: stater,
		logger: logger,
		stats:  &stats.Counters{},
	}
}

// Stats returns the counters of the last scan
func (w *Walker) Stats() *stats.Counters {
	return w.stats
}

// scanContext is the state of one scan, threaded through every frame
type scanContext struct {
	rootDev uint64
	opts    Options
	inodes  *InodeTracker
	out     Emitter
	stats   *stats.Counters
	logger  *slog.Logger

	// open is the chain of folders entered but not yet closed. Unless empty
	// folders are kept, a folder is written only when the first file below
	// it is, so the unwritten folders are always a suffix of the chain.
	open []openFolder
}

type openFolder struct {
	record  model.DirectoryRecord
	path    string
	written bool
}

// fileEntry is a regular file waiting to be written
type fileEntry struct {
	path string
	name string
	meta platform.Metadata
}

// Scan walks root and streams its contents to out. The root name is
// written exactly as given. An error is returned only when the root cannot
// be read or out fails.
func (w *Walker) Scan(root string, out Emitter) error {
	rootMeta, err := w.stater.Stat(root)
	if err != nil {
		return fmt.Errorf("stat scan root: %w", err)
	}

	w.stats = &stats.Counters{}
	sc := &scanContext{
		rootDev: rootMeta.Device(),
		opts:    w.opts,
		inodes:  NewInodeTracker(),
		out:     out,
		stats:   w.stats,
		logger:  w.logger,
	}

	if err := w.walkDir(sc, root, true); err != nil {
		return err
	}
	w.logger.Debug("scan finished", "root", root, "inodes", sc.inodes.Len())
	return nil
}

func (w *Walker) walkDir(sc *scanContext, path string, isRoot bool) error {
	meta, err := w.stater.Stat(path)
	if err != nil {
		sc.logger.Warn("failed to access metadata", "path", path, "err", err)
		sc.stats.Skip(stats.Unreadable)
		return nil
	}

	if !sc.opts.CrossMounts && meta.Device() != sc.rootDev {
		sc.logger.Debug("skipping directory on different filesystem",
			"path", path, "root_dev", sc.rootDev, "dev", meta.Device())
		sc.stats.Skip(stats.ForeignMount)
		return nil
	}

	name := path
	if !isRoot {
		name = filepath.Base(path)
	}

	names, err := readNames(path)
	if err != nil {
		sc.logger.Warn("failed to read directory", "path", path, "err", err)
		sc.stats.Skip(stats.Unreadable)
		return nil
	}

	if len(names) == 0 && !sc.opts.IncludeEmptyFolders {
		sc.logger.Debug("skipping empty folder", "path", path)
		sc.stats.Skip(stats.EmptyFolder)
		return nil
	}

	model.SortNames(names)

	if err := sc.openFolder(path, model.DirectoryRecord{Name: name, Times: meta.Times()}); err != nil {
		return err
	}

	// GrandPerspective expects all File elements of a folder before its
	// Folder elements
	var files []fileEntry
	var dirs []string
	for _, n := range names {
		p := filepath.Join(path, n)
		m, err := w.stater.Lstat(p)
		if err != nil {
			sc.logger.Warn("failed to access metadata", "path", p, "err", err)
			sc.stats.Skip(stats.Unreadable)
			continue
		}
		switch m.Kind() {
		case platform.KindSymlink:
			sc.logger.Debug("skipping symbolic link", "path", p)
			sc.stats.Skip(stats.Symlink)
		case platform.KindFile:
			files = append(files, fileEntry{path: p, name: n, meta: m})
		case platform.KindDir:
			dirs = append(dirs, p)
		default:
			sc.logger.Warn("unknown file type", "path", p)
			sc.stats.Skip(stats.Special)
		}
	}

	for _, f := range files {
		if err := sc.file(f); err != nil {
			return err
		}
	}
	for _, d := range dirs {
		if err := w.walkDir(sc, d, false); err != nil {
			return err
		}
	}

	return sc.closeFolder()
}

// readNames lists the names in a directory. A partial listing counts as a
// failure.
func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}

func (sc *scanContext) file(f fileEntry) error {
	ino := f.meta.Inode()
	if sc.inodes.Seen(ino) {
		sc.logger.Debug("skipping hard link file", "path", f.path)
		sc.stats.Skip(stats.HardLink)
		return nil
	}
	sc.inodes.Mark(ino)

	size := f.meta.Size(sc.opts.ApparentSize)
	if size == 0 && !sc.opts.IncludeZeroFiles {
		sc.logger.Debug("skipping zero-byte file", "path", f.path)
		sc.stats.Skip(stats.ZeroSize)
		return nil
	}

	if err := sc.flush(); err != nil {
		return err
	}
	if err := sc.out.File(model.FileRecord{
		Name:  f.name,
		Size:  size,
		Times: f.meta.Times(),
		Inode: ino,
	}); err != nil {
		return fmt.Errorf("write file %s: %w", f.path, err)
	}
	sc.stats.AddFile(size)
	return nil
}

func (sc *scanContext) openFolder(path string, rec model.DirectoryRecord) error {
	sc.open = append(sc.open, openFolder{record: rec, path: path})
	if sc.opts.IncludeEmptyFolders {
		return sc.flush()
	}
	return nil
}

// flush writes every entered folder that has not been written yet
func (sc *scanContext) flush() error {
	for i := range sc.open {
		f := &sc.open[i]
		if f.written {
			continue
		}
		if err := sc.out.OpenFolder(f.record); err != nil {
			return fmt.Errorf("write folder %s: %w", f.path, err)
		}
		f.written = true
		sc.stats.AddFolder()
	}
	return nil
}

func (sc *scanContext) closeFolder() error {
	n := len(sc.open)
	top := sc.open[n-1]
	sc.open = sc.open[:n-1]

	if !top.written {
		sc.logger.Debug("skipping folder with no output", "path", top.path)
		sc.stats.Skip(stats.EmptyFolder)
		return nil
	}
	if err := sc.out.CloseFolder(); err != nil {
		return fmt.Errorf("close folder %s: %w", top.path, err)
	}
	return nil
}

// Ensure Walker implements Scanner
var _ Scanner = (*Walker)(nil)
