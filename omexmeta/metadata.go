package omexmeta

import (
	"regexp"
	"strings"

	"github.com/biosimulators/omexkit/vocabulary"
)

// RootURIPrefix is the hard-coded convention for URIs describing OMEX
// archives: http://omex-library.org/<archive-name>.omex. Subjects under
// this prefix describe the archive or files within it.
const RootURIPrefix = "http://omex-library.org/"

// rootURIPattern matches URIs that identify an archive container itself,
// as opposed to files within it or external references.
var rootURIPattern = regexp.MustCompile(`^https?://omex-library\.org/[^/]+\.omex$`)

// localIDScheme prefixes synthetic graph-local blank-node identifiers
// generated during serialization. Subjects under this scheme never
// describe archive-relative entities.
const localIDScheme = "local:"

// LabeledIdentifier is a metadata value carrying a resolvable URI, a
// human-readable label, or both.
type LabeledIdentifier struct {
	// URI identifies the value, e.g. an identifiers.org URL. May be
	// empty for label-only values.
	URI string `json:"uri" yaml:"uri"`

	// Label is the human-readable name of the value.
	Label string `json:"label" yaml:"label"`
}

// CustomStatement is a metadata statement whose predicate is outside the
// fixed vocabulary.
type CustomStatement struct {
	// Attribute is the predicate URI of the statement.
	Attribute string `json:"attribute" yaml:"attribute"`

	// AttributeLabel is the human-readable name of the predicate.
	AttributeLabel string `json:"attribute_label" yaml:"attribute_label"`

	// URI identifies the value, if resolvable.
	URI string `json:"uri" yaml:"uri"`

	// Label is the human-readable value.
	Label string `json:"label" yaml:"label"`
}

// Metadata is one projected BioSimulations metadata record: the
// attributes describing an archive (URI ".") or one of its files.
// Single-valued attributes are scalars; multi-valued attributes are
// slices. The vocabulary predicate-type table declares which is which.
type Metadata struct {
	// URI locates the described entity relative to the archive root:
	// "." for the archive itself, a relative path for a file within it.
	URI string `json:"uri" yaml:"uri"`

	Title        string               `json:"title,omitempty" yaml:"title,omitempty"`
	Abstract     string               `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Keywords     []string             `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Description  string               `json:"description,omitempty" yaml:"description,omitempty"`
	Thumbnails   []string             `json:"thumbnails,omitempty" yaml:"thumbnails,omitempty"`
	Sources      []LabeledIdentifier  `json:"sources,omitempty" yaml:"sources,omitempty"`
	Taxa         []LabeledIdentifier  `json:"taxa,omitempty" yaml:"taxa,omitempty"`
	Encodes      []LabeledIdentifier  `json:"encodes,omitempty" yaml:"encodes,omitempty"`
	Predecessors []LabeledIdentifier  `json:"predecessors,omitempty" yaml:"predecessors,omitempty"`
	Successors   []LabeledIdentifier  `json:"successors,omitempty" yaml:"successors,omitempty"`
	SeeAlso      []LabeledIdentifier  `json:"see_also,omitempty" yaml:"see_also,omitempty"`
	Identifiers  []LabeledIdentifier  `json:"identifiers,omitempty" yaml:"identifiers,omitempty"`
	Citations    []LabeledIdentifier  `json:"citations,omitempty" yaml:"citations,omitempty"`
	Creators     []LabeledIdentifier  `json:"creators,omitempty" yaml:"creators,omitempty"`
	Contributors []LabeledIdentifier  `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	License      *LabeledIdentifier   `json:"license,omitempty" yaml:"license,omitempty"`
	Funders      []LabeledIdentifier  `json:"funders,omitempty" yaml:"funders,omitempty"`
	Created      string               `json:"created,omitempty" yaml:"created,omitempty"`
	Modified     []string             `json:"modified,omitempty" yaml:"modified,omitempty"`
	Other        []CustomStatement    `json:"other,omitempty" yaml:"other,omitempty"`
}

// IsArchiveRecord reports whether the record describes the archive
// itself rather than one of its files.
func (m *Metadata) IsArchiveRecord() bool {
	return m.URI == "."
}

// setLabels binds label-only attribute results onto the record. The
// caller has already enforced multiplicity, so single-valued attributes
// receive at most one value.
func (m *Metadata) setLabels(attribute string, values []string) {
	first := ""
	if len(values) > 0 {
		first = values[0]
	}
	switch attribute {
	case vocabulary.AttrTitle:
		m.Title = first
	case vocabulary.AttrAbstract:
		m.Abstract = first
	case vocabulary.AttrDescription:
		m.Description = first
	case vocabulary.AttrKeywords:
		m.Keywords = values
	case vocabulary.AttrCreated:
		m.Created = first
	case vocabulary.AttrModified:
		m.Modified = values
	}
}

// setURIs binds URI-only attribute results onto the record.
func (m *Metadata) setURIs(attribute string, values []string) {
	switch attribute {
	case vocabulary.AttrThumbnails:
		m.Thumbnails = values
	}
}

// setIdentifiers binds dual URI+label attribute results onto the record.
func (m *Metadata) setIdentifiers(attribute string, values []LabeledIdentifier) {
	switch attribute {
	case vocabulary.AttrSources:
		m.Sources = values
	case vocabulary.AttrTaxa:
		m.Taxa = values
	case vocabulary.AttrEncodes:
		m.Encodes = values
	case vocabulary.AttrPredecessors:
		m.Predecessors = values
	case vocabulary.AttrSuccessors:
		m.Successors = values
	case vocabulary.AttrSeeAlso:
		m.SeeAlso = values
	case vocabulary.AttrIdentifiers:
		m.Identifiers = values
	case vocabulary.AttrCitations:
		m.Citations = values
	case vocabulary.AttrCreators:
		m.Creators = values
	case vocabulary.AttrContributors:
		m.Contributors = values
	case vocabulary.AttrFunders:
		m.Funders = values
	case vocabulary.AttrLicense:
		if len(values) > 0 {
			v := values[0]
			m.License = &v
		}
	}
}

// labels returns the label-only values of an attribute for serialization.
func (m *Metadata) labels(attribute string) []string {
	switch attribute {
	case vocabulary.AttrTitle:
		return scalar(m.Title)
	case vocabulary.AttrAbstract:
		return scalar(m.Abstract)
	case vocabulary.AttrDescription:
		return scalar(m.Description)
	case vocabulary.AttrKeywords:
		return m.Keywords
	case vocabulary.AttrCreated:
		return scalar(m.Created)
	case vocabulary.AttrModified:
		return m.Modified
	}
	return nil
}

// uris returns the URI-only values of an attribute for serialization.
func (m *Metadata) uris(attribute string) []string {
	switch attribute {
	case vocabulary.AttrThumbnails:
		return m.Thumbnails
	}
	return nil
}

// identifiers returns the dual URI+label values of an attribute for
// serialization.
func (m *Metadata) identifiers(attribute string) []LabeledIdentifier {
	switch attribute {
	case vocabulary.AttrSources:
		return m.Sources
	case vocabulary.AttrTaxa:
		return m.Taxa
	case vocabulary.AttrEncodes:
		return m.Encodes
	case vocabulary.AttrPredecessors:
		return m.Predecessors
	case vocabulary.AttrSuccessors:
		return m.Successors
	case vocabulary.AttrSeeAlso:
		return m.SeeAlso
	case vocabulary.AttrIdentifiers:
		return m.Identifiers
	case vocabulary.AttrCitations:
		return m.Citations
	case vocabulary.AttrCreators:
		return m.Creators
	case vocabulary.AttrContributors:
		return m.Contributors
	case vocabulary.AttrFunders:
		return m.Funders
	case vocabulary.AttrLicense:
		if m.License == nil {
			return nil
		}
		return []LabeledIdentifier{*m.License}
	}
	return nil
}

// LabelValues returns the label-only values of an attribute. Validators
// use the accessor pair with the predicate-type table so their checks
// cannot diverge from the projection.
func (m *Metadata) LabelValues(attribute string) []string {
	return m.labels(attribute)
}

// URIValues returns the URI-only values of an attribute.
func (m *Metadata) URIValues(attribute string) []string {
	return m.uris(attribute)
}

// IdentifierValues returns the dual URI+label values of an attribute.
func (m *Metadata) IdentifierValues(attribute string) []LabeledIdentifier {
	return m.identifiers(attribute)
}

func scalar(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

// IsRootURI reports whether a URI identifies an archive container.
func IsRootURI(uri string) bool {
	return rootURIPattern.MatchString(uri)
}

// RelativeToRoot rewrites an archive-absolute URI into a path relative
// to the archive root: the root URI itself becomes ".", a file URI
// becomes its in-archive path. Other URIs are returned unchanged with
// ok=false.
func RelativeToRoot(uri, rootURI string) (string, bool) {
	if uri == rootURI {
		return ".", true
	}
	if strings.HasPrefix(uri, rootURI+"/") {
		return strings.TrimPrefix(uri, rootURI+"/"), true
	}
	return uri, false
}
