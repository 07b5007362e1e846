// Package combine models COMBINE/OMEX archives: the typed content
// listing declared by an archive's manifest, codecs to and from real
// archive files, and the archive-level validation pipeline.
package combine

import (
	"time"

	"github.com/biosimulators/omexkit/keysort"
)

// Author is a person credited in archive or content metadata.
type Author struct {
	// FamilyName is the author's family name.
	FamilyName string

	// GivenName is the author's given name.
	GivenName string
}

// Key returns the comparison key for the author.
func (a *Author) Key() keysort.Key {
	return keysort.Key{optional(a.FamilyName), optional(a.GivenName)}
}

// Content is one located, typed entry of a COMBINE archive.
type Content struct {
	// Location is the path of the entry within the archive. Unique per
	// archive.
	Location string

	// Format is the URI identifying the entry's MIME/spec type. Compare
	// with MatchesFormat, not by string equality.
	Format string

	// Master flags the entry as the archive's primary document. The model
	// does not enforce uniqueness; producers may flag several.
	Master bool

	// Description is the free-text description from the entry's metadata.
	Description string

	// Authors lists the entry's credited authors from its metadata.
	Authors []*Author

	// Created is the creation timestamp from the entry's metadata, if one
	// was set.
	Created *time.Time

	// Updated is the last-modified timestamp from the entry's metadata.
	Updated *time.Time
}

// Key returns the comparison key for the content entry.
func (c *Content) Key() keysort.Key {
	authorKeys := make([]keysort.Key, 0, len(c.Authors))
	for _, a := range c.Authors {
		authorKeys = append(authorKeys, a.Key())
	}
	keysort.SortKeys(authorKeys)
	authors := make(keysort.Key, len(authorKeys))
	for i, k := range authorKeys {
		authors[i] = k
	}

	return keysort.Key{
		optional(c.Location),
		optional(c.Format),
		c.Master,
		optional(c.Description),
		authors,
		optionalTime(c.Created),
		optionalTime(c.Updated),
	}
}

// IsEqual reports structural equality with another content entry.
func (c *Content) IsEqual(other *Content) bool {
	if other == nil {
		return false
	}
	return keysort.Equal(c.Key(), other.Key())
}

// Archive is the structured representation of a COMBINE archive's
// manifest plus its archive-level metadata.
type Archive struct {
	// Contents is the ordered list of content entries.
	Contents []*Content

	// Description is the archive-level free-text description.
	Description string

	// Authors lists the archive's credited authors.
	Authors []*Author

	// Created is the archive creation timestamp, if one was set.
	Created *time.Time

	// Updated is the archive last-modified timestamp.
	Updated *time.Time
}

// NewArchive creates an archive from a list of content entries.
func NewArchive(contents ...*Content) *Archive {
	return &Archive{Contents: contents}
}

// Key returns the comparison key for the archive: content keys sorted so
// equality holds up to reordering, then the archive-level metadata.
func (a *Archive) Key() keysort.Key {
	keys := make([]keysort.Key, 0, len(a.Contents))
	for _, c := range a.Contents {
		keys = append(keys, c.Key())
	}
	keysort.SortKeys(keys)
	contents := make(keysort.Key, len(keys))
	for i, k := range keys {
		contents[i] = k
	}

	authorKeys := make([]keysort.Key, 0, len(a.Authors))
	for _, au := range a.Authors {
		authorKeys = append(authorKeys, au.Key())
	}
	keysort.SortKeys(authorKeys)
	authors := make(keysort.Key, len(authorKeys))
	for i, k := range authorKeys {
		authors[i] = k
	}

	return keysort.Key{
		contents,
		optional(a.Description),
		authors,
		optionalTime(a.Created),
		optionalTime(a.Updated),
	}
}

// IsEqual reports whether two archives contain equal contents and
// metadata, ignoring content order.
func (a *Archive) IsEqual(other *Archive) bool {
	if other == nil {
		return false
	}
	return keysort.Equal(a.Key(), other.Key())
}

// MasterContent returns every content entry flagged as master. Nil
// entries are skipped; validation reports them separately.
func (a *Archive) MasterContent() []*Content {
	var out []*Content
	for _, c := range a.Contents {
		if c != nil && c.Master {
			out = append(out, c)
		}
	}
	return out
}

// ContentsByFormat returns every content entry whose format URI matches
// the pattern for the given format. Nil entries are skipped.
func (a *Archive) ContentsByFormat(format ContentFormat) []*Content {
	var out []*Content
	for _, c := range a.Contents {
		if c != nil && MatchesFormat(c.Format, format) {
			out = append(out, c)
		}
	}
	return out
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
