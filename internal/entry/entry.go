package entry

import (
	"io/fs"
	"path/filepath"
	"time"
)

// Kind represents the type of filesystem entry.
type Kind uint8

const (
	KindFile    Kind = 0
	KindDir     Kind = 1
	KindSymlink Kind = 2
	KindOther   Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// KindFromMode derives the Kind from an fs.FileMode.
func KindFromMode(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindOther
	}
}

// Permission is a coarse read-only/read-write classification.
type Permission uint8

const (
	ReadWrite Permission = iota
	ReadOnly
)

// String returns the abbreviation shown in listings.
func (p Permission) String() string {
	if p == ReadOnly {
		return "r--"
	}
	return "rw-"
}

// PermissionFromMode reports ReadOnly when no write bit is set for anyone.
func PermissionFromMode(mode fs.FileMode) Permission {
	if mode.Perm()&0o222 == 0 {
		return ReadOnly
	}
	return ReadWrite
}

// Record is one filesystem entry that survived filtering.
type Record struct {
	Path       string
	Name       string
	Kind       Kind
	Size       uint64
	ModTime    *time.Time // nil when the platform reports no modification time
	Permission Permission
	Depth      int
}

// NewRecord builds a Record from Lstat metadata. Directories report
// a size of zero; their contents are not summed.
func NewRecord(path string, depth int, info fs.FileInfo) Record {
	r := Record{
		Path:       path,
		Name:       info.Name(),
		Kind:       KindFromMode(info.Mode()),
		Permission: PermissionFromMode(info.Mode()),
		Depth:      depth,
	}
	if size := info.Size(); size > 0 && r.Kind != KindDir {
		r.Size = uint64(size)
	}
	if mt := info.ModTime(); !mt.IsZero() {
		r.ModTime = &mt
	}
	if r.Name == "" {
		r.Name = filepath.Base(path)
	}
	return r
}

// IsDir reports whether the record is a directory.
func (r Record) IsDir() bool {
	return r.Kind == KindDir
}
