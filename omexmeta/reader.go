package omexmeta

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/knakk/rdf"

	"github.com/biosimulators/omexkit/validation"
)

// xml11Prolog matches an XML 1.1 declaration. The RDF engine's XML
// parser rejects version 1.1 prologs it could otherwise process
// identically, so they are rewritten to 1.0 in memory before parsing.
var xml11Prolog = regexp.MustCompile(`(<\?xml[^>]*version\s*=\s*["'])1\.1(["'])`)

// ReadFile parses an OMEX Metadata file in the given format and returns
// its triples. Parse failures are fatal: they are reported as findings
// and no triples are returned, because a partially parsed graph is never
// treated as valid. Warnings carry non-fatal engine notices.
func ReadFile(filename string, format Format) ([]Triple, []validation.Finding, []validation.Finding) {
	var errors, warnings []validation.Finding

	info, ok := GetFormatInfo(format)
	if !ok || !info.Readable {
		errors = append(errors, validation.New("format %s cannot be read", format))
		return nil, errors, warnings
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		errors = append(errors, validation.New("`%s` could not be read: %s", filename, err))
		return nil, errors, warnings
	}

	if format == FormatRDFXML && xml11Prolog.Match(data) {
		data = xml11Prolog.ReplaceAll(data, []byte("${1}1.0${2}"))
		warnings = append(warnings, validation.New(
			"XML 1.1 declaration in `%s` was read as XML 1.0", filename))
	}

	triples, err := decodeTriples(bytes.NewReader(data), format)
	if err != nil {
		errors = append(errors, validation.Group(
			fmt.Sprintf("`%s` could not be parsed as %s", filename, format),
			[]validation.Finding{validation.New("%s", err)}))
		return nil, errors, warnings
	}
	return triples, errors, warnings
}

// decodeTriples runs the RDF engine over an input stream and
// materializes every statement.
func decodeTriples(r io.Reader, format Format) ([]Triple, error) {
	if format == FormatNQuads {
		dec := rdf.NewQuadDecoder(r, rdf.NQuads)
		quads, err := dec.DecodeAll()
		if err != nil {
			return nil, err
		}
		out := make([]Triple, 0, len(quads))
		for _, q := range quads {
			out = append(out, Triple{
				Subject:   fromTerm(q.Subj),
				Predicate: fromTerm(q.Pred),
				Object:    fromTerm(q.Obj),
			})
		}
		return out, nil
	}

	var engineFormat rdf.Format
	switch format {
	case FormatRDFXML:
		engineFormat = rdf.RDFXML
	case FormatTurtle:
		engineFormat = rdf.Turtle
	case FormatNTriples:
		engineFormat = rdf.NTriples
	default:
		return nil, fmt.Errorf("format %s cannot be read", format)
	}

	dec := rdf.NewTripleDecoder(r, engineFormat)
	parsed, err := dec.DecodeAll()
	if err != nil {
		return nil, err
	}

	out := make([]Triple, 0, len(parsed))
	for _, t := range parsed {
		out = append(out, Triple{
			Subject:   fromTerm(t.Subj),
			Predicate: fromTerm(t.Pred),
			Object:    fromTerm(t.Obj),
		})
	}
	return out, nil
}

// fromTerm converts an RDF engine term into the package's tagged node
// type.
func fromTerm(t rdf.Term) Node {
	switch t.Type() {
	case rdf.TermBlank:
		return Blank(strings.TrimPrefix(t.String(), "_:"))
	case rdf.TermLiteral:
		return Literal(t.String())
	default:
		return IRI(t.String())
	}
}

// TriplesReader reads an OMEX Metadata file into a flat triple list,
// the escape-hatch representation for consumers that want raw RDF.
type TriplesReader struct {
	// Format is the serialization of the input file.
	Format Format
}

// NewTriplesReader creates a reader for the given input format.
func NewTriplesReader(format Format) *TriplesReader {
	if format == "" {
		format = DefaultFormat
	}
	return &TriplesReader{Format: format}
}

// Run parses filename and returns its triples plus collected findings.
func (r *TriplesReader) Run(filename string) ([]Triple, []validation.Finding, []validation.Finding) {
	return ReadFile(filename, r.Format)
}
