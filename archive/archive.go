// Package archive provides the minimal file-list archive primitive and a
// generic zip codec. COMBINE-aware reading and writing builds on top of
// this in the combine package.
package archive

import (
	"github.com/biosimulators/omexkit/keysort"
)

// File is one member of an archive: a file on the local filesystem and
// the path it occupies inside the archive. Either path may be empty when
// the corresponding side is unknown (e.g. a listed-but-not-extracted
// member has no local path).
type File struct {
	// LocalPath is the path of the file on the local filesystem.
	LocalPath string

	// ArchivePath is the path of the file within the archive.
	ArchivePath string
}

// Key returns the comparison key for the file.
func (f *File) Key() keysort.Key {
	return keysort.Key{optional(f.LocalPath), optional(f.ArchivePath)}
}

// IsEqual reports structural equality with another file.
func (f *File) IsEqual(other *File) bool {
	if other == nil {
		return false
	}
	return keysort.Equal(f.Key(), other.Key())
}

// Archive is an ordered list of files.
type Archive struct {
	Files []*File
}

// New creates an archive from a list of files.
func New(files ...*File) *Archive {
	return &Archive{Files: files}
}

// Key returns the comparison key for the archive: the sorted keys of its
// files, so equality holds up to reordering.
func (a *Archive) Key() keysort.Key {
	keys := make([]keysort.Key, 0, len(a.Files))
	for _, f := range a.Files {
		keys = append(keys, f.Key())
	}
	keysort.SortKeys(keys)
	out := make(keysort.Key, len(keys))
	for i, k := range keys {
		out[i] = k
	}
	return out
}

// IsEqual reports whether two archives contain equal files, ignoring
// order.
func (a *Archive) IsEqual(other *Archive) bool {
	if other == nil {
		return false
	}
	return keysort.Equal(a.Key(), other.Key())
}

// optional maps an empty string to nil so unset fields take the
// nil-sorts-first position in comparison keys.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
