package model

import "time"

// InodeKey identifies on-disk file content within one scan.
// Zero means the platform could not supply an identity.
type InodeKey uint64

// Times holds the timestamps reported for an entry.
// A zero time means the filesystem could not supply that value.
type Times struct {
	Created  time.Time
	Modified time.Time
	Accessed time.Time
}

// DirectoryRecord describes a folder as it is written to the scan dump.
// Children are streamed between its open and close events, never stored.
type DirectoryRecord struct {
	Name  string // full path for the scan root, base name otherwise
	Times Times
}

// FileRecord describes a regular file as it is written to the scan dump
type FileRecord struct {
	Name  string
	Size  uint64 // logical or physical bytes, depending on the size mode
	Times Times
	Inode InodeKey // used for hard link detection, not written
}
