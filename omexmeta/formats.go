package omexmeta

import "fmt"

// Format identifies an OMEX Metadata serialization.
type Format string

// Supported serializations. Input formats are the subset the RDF engine
// can parse; all listed formats are available for output.
const (
	FormatRDFXML       Format = "rdfxml"
	FormatRDFXMLAbbrev Format = "rdfxml-abbrev"
	FormatTurtle       Format = "turtle"
	FormatNTriples     Format = "ntriples"
	FormatNQuads       Format = "nquads"
	FormatJSON         Format = "json"
)

// DefaultFormat is the format assumed when none is configured. OMEX
// Metadata files in the wild are predominantly RDF/XML.
const DefaultFormat = FormatRDFXML

// FormatInfo provides metadata about a serialization format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Readable indicates the RDF engine can parse this format.
	Readable bool

	// Writable indicates the serializer can emit this format.
	Writable bool
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatRDFXML: {
		Name:      FormatRDFXML,
		MIMEType:  "application/rdf+xml",
		Extension: ".rdf",
		Readable:  true,
		Writable:  true,
	},
	FormatRDFXMLAbbrev: {
		Name:      FormatRDFXMLAbbrev,
		MIMEType:  "application/rdf+xml",
		Extension: ".rdf",
		Readable:  false,
		Writable:  true,
	},
	FormatTurtle: {
		Name:      FormatTurtle,
		MIMEType:  "text/turtle",
		Extension: ".ttl",
		Readable:  true,
		Writable:  true,
	},
	FormatNTriples: {
		Name:      FormatNTriples,
		MIMEType:  "application/n-triples",
		Extension: ".nt",
		Readable:  true,
		Writable:  true,
	},
	FormatNQuads: {
		Name:      FormatNQuads,
		MIMEType:  "application/n-quads",
		Extension: ".nq",
		Readable:  true,
		Writable:  true,
	},
	FormatJSON: {
		Name:      FormatJSON,
		MIMEType:  "application/ld+json",
		Extension: ".jsonld",
		Readable:  false,
		Writable:  true,
	},
}

// ParseFormat resolves a format name to a registered format.
func ParseFormat(name string) (Format, error) {
	f := Format(name)
	if _, ok := FormatRegistry[f]; !ok {
		return "", fmt.Errorf("unsupported OMEX Metadata format: %s", name)
	}
	return f, nil
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}
