package omexmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for name, format := range map[string]Format{
		"rdfxml":        FormatRDFXML,
		"rdfxml-abbrev": FormatRDFXMLAbbrev,
		"turtle":        FormatTurtle,
		"ntriples":      FormatNTriples,
		"nquads":        FormatNQuads,
		"json":          FormatJSON,
	} {
		parsed, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, format, parsed)
	}

	_, err := ParseFormat("n3")
	assert.Error(t, err)
}

func TestFormatRegistry(t *testing.T) {
	info, ok := GetFormatInfo(DefaultFormat)
	require.True(t, ok)
	assert.True(t, info.Readable)
	assert.True(t, info.Writable)

	// Abbreviated RDF/XML is an output-only rendering; on the wire it is
	// plain RDF/XML.
	info, ok = GetFormatInfo(FormatRDFXMLAbbrev)
	require.True(t, ok)
	assert.False(t, info.Readable)
	assert.True(t, info.Writable)

	_, ok = GetFormatInfo(Format("n3"))
	assert.False(t, ok)
}

func TestSerializeTriples_SyntheticNodesAsBlankNodes(t *testing.T) {
	triples, err := BuildTriples([]*Metadata{sampleArchiveRecord()}, testRootURI)
	require.NoError(t, err)

	for _, format := range []Format{FormatRDFXML, FormatRDFXMLAbbrev} {
		out, err := SerializeTriples(triples, format)
		require.NoError(t, err, "format %s", format)

		// Synthetic pair-node identifiers are not resolvable URIs; they
		// must travel as rdf:nodeID blank nodes, never as rdf:about or
		// rdf:resource values the parser would reject.
		assert.NotContains(t, out, `rdf:about="local:`, "format %s", format)
		assert.NotContains(t, out, `rdf:resource="local:`, "format %s", format)
	}
}

func TestSerializeTriples_AbbreviatedReferenceCycle(t *testing.T) {
	a := IRI("http://example.org/a")
	b := IRI("http://example.org/b")
	seeAlso := IRI("http://www.w3.org/2000/01/rdf-schema#seeAlso")
	triples := []Triple{
		{Subject: a, Predicate: seeAlso, Object: b},
		{Subject: b, Predicate: seeAlso, Object: a},
	}

	out, err := SerializeTriples(triples, FormatRDFXMLAbbrev)
	require.NoError(t, err)

	// Each subject references the other exactly once; neither may be
	// dropped on the assumption it will be inlined elsewhere.
	assert.Contains(t, out, "http://example.org/a")
	assert.Contains(t, out, "http://example.org/b")
	assert.Contains(t, out, "rdfs:seeAlso")
}

func TestSerializeTriples_AllWritableFormats(t *testing.T) {
	triples, err := BuildTriples([]*Metadata{sampleArchiveRecord()}, testRootURI)
	require.NoError(t, err)

	for format, info := range FormatRegistry {
		if !info.Writable {
			continue
		}
		out, err := SerializeTriples(triples, format)
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, out, "format %s", format)
	}
}
