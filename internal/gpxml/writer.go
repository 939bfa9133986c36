// Package gpxml streams GrandPerspective scan dumps.
//
// Elements are written as they are opened and closed; the Writer keeps only
// the chain of currently open elements, so memory grows with tree depth and
// not with tree size.
package gpxml

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lumipallolabs/gpscan/internal/model"
)

// Format identifiers understood by GrandPerspective
const (
	AppVersion    = "4"
	FormatVersion = "7"
)

// Timestamp layout and the value written when a time is unavailable
const (
	TimeLayout  = "2006-01-02T15:04:05Z"
	DefaultTime = "1970-01-01T00:00:00Z"
)

// fileSizeMeasure values
const (
	MeasurePhysical = "physical"
	MeasureLogical  = "logical"
)

const (
	tagScanDump = "GrandPerspectiveScanDump"
	tagScanInfo = "ScanInfo"
	tagFolder   = "Folder"
	tagFile     = "File"
)

// ScanInfo holds the attributes of the ScanInfo element
type ScanInfo struct {
	VolumePath  string
	VolumeSize  uint64
	FreeSpace   uint64
	ScanTime    time.Time
	SizeMeasure string // MeasurePhysical or MeasureLogical
}

// SizeMeasure returns the fileSizeMeasure value for a size mode
func SizeMeasure(apparent bool) string {
	if apparent {
		return MeasureLogical
	}
	return MeasurePhysical
}

// FormatTime renders t in UTC, or DefaultTime for the zero time
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return DefaultTime
	}
	return t.UTC().Format(TimeLayout)
}

type attr struct {
	name  string
	value string
}

type openElement struct {
	name        string
	hasChildren bool
}

// Writer writes one scan dump. Elements go on their own lines, indented one
// space per level. The first write error is kept and returned by every
// later call.
type Writer struct {
	w       *bufio.Writer
	open    []openElement
	started bool
	err     error
}

// NewWriter returns a Writer that writes to w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// StartDocument writes the XML declaration and opens the root element
func (w *Writer) StartDocument() error {
	if w.started {
		return fmt.Errorf("gpxml: document already started")
	}
	w.write(`<?xml version="1.0" encoding="UTF-8"?>`)
	w.started = true
	return w.start(tagScanDump,
		attr{"appVersion", AppVersion},
		attr{"formatVersion", FormatVersion})
}

// StartScanInfo opens the ScanInfo element
func (w *Writer) StartScanInfo(info ScanInfo) error {
	return w.start(tagScanInfo,
		attr{"volumePath", info.VolumePath},
		attr{"volumeSize", strconv.FormatUint(info.VolumeSize, 10)},
		attr{"freeSpace", strconv.FormatUint(info.FreeSpace, 10)},
		attr{"scanTime", FormatTime(info.ScanTime)},
		attr{"fileSizeMeasure", info.SizeMeasure})
}

// OpenFolder opens a Folder element
func (w *Writer) OpenFolder(d model.DirectoryRecord) error {
	return w.start(tagFolder,
		attr{"name", d.Name},
		attr{"created", FormatTime(d.Times.Created)},
		attr{"modified", FormatTime(d.Times.Modified)},
		attr{"accessed", FormatTime(d.Times.Accessed)})
}

// File writes a self-closing File element
func (w *Writer) File(f model.FileRecord) error {
	return w.empty(tagFile,
		attr{"name", f.Name},
		attr{"size", strconv.FormatUint(f.Size, 10)},
		attr{"created", FormatTime(f.Times.Created)},
		attr{"modified", FormatTime(f.Times.Modified)},
		attr{"accessed", FormatTime(f.Times.Accessed)})
}

// CloseFolder closes the innermost Folder element
func (w *Writer) CloseFolder() error {
	return w.end(tagFolder)
}

// EndScanInfo closes the ScanInfo element
func (w *Writer) EndScanInfo() error {
	return w.end(tagScanInfo)
}

// EndDocument closes the root element, terminates the document with a
// newline and flushes buffered output
func (w *Writer) EndDocument() error {
	if err := w.end(tagScanDump); err != nil {
		return err
	}
	if len(w.open) > 0 {
		return fmt.Errorf("gpxml: %d elements left open", len(w.open))
	}
	w.write("\n")
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		w.err = err
	}
	return w.err
}

// Depth returns the number of open elements
func (w *Writer) Depth() int {
	return len(w.open)
}

func (w *Writer) start(name string, attrs ...attr) error {
	w.element(name, attrs)
	w.write(">")
	w.open = append(w.open, openElement{name: name})
	return w.err
}

func (w *Writer) empty(name string, attrs ...attr) error {
	w.element(name, attrs)
	w.write(" />")
	return w.err
}

// element writes the line break, indentation and attributes of a start tag
func (w *Writer) element(name string, attrs []attr) {
	if n := len(w.open); n > 0 {
		w.open[n-1].hasChildren = true
	}
	w.newline(len(w.open))
	w.write("<")
	w.write(name)
	for _, a := range attrs {
		w.write(" ")
		w.write(a.name)
		w.write(`="`)
		w.write(Escape(a.value))
		w.write(`"`)
	}
}

func (w *Writer) end(name string) error {
	if w.err != nil {
		return w.err
	}
	n := len(w.open)
	if n == 0 || w.open[n-1].name != name {
		return fmt.Errorf("gpxml: cannot close %s: not the innermost open element", name)
	}
	top := w.open[n-1]
	w.open = w.open[:n-1]
	if top.hasChildren {
		w.newline(len(w.open))
	}
	w.write("</")
	w.write(name)
	w.write(">")
	return w.err
}

func (w *Writer) newline(depth int) {
	if !w.started {
		return
	}
	w.write("\n")
	for i := 0; i < depth; i++ {
		w.write(" ")
	}
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = err
	}
}
