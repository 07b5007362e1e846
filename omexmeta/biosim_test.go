package omexmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosimulators/omexkit/validation"
	"github.com/biosimulators/omexkit/vocabulary"
)

const testRootURI = "http://omex-library.org/test.omex"

func sampleArchiveRecord() *Metadata {
	return &Metadata{
		URI:         ".",
		Title:       "A model of something",
		Abstract:    "A short summary",
		Keywords:    []string{"signaling", "kinetics"},
		Description: "A longer description",
		Thumbnails:  []string{"thumbnail.png"},
		Taxa: []LabeledIdentifier{
			{URI: "http://identifiers.org/taxonomy/9606", Label: "Homo sapiens"},
		},
		Citations: []LabeledIdentifier{
			{URI: "http://identifiers.org/doi/10.1016/j.copbio.2017.12.013", Label: "A paper"},
		},
		Creators: []LabeledIdentifier{
			{URI: "http://identifiers.org/orcid/0000-0001-8254-4958", Label: "Jane Doe"},
			{Label: "John Doe"},
		},
		License:  &LabeledIdentifier{URI: "http://identifiers.org/spdx/MIT", Label: "MIT"},
		Created:  "2021-06-01",
		Modified: []string{"2021-06-02"},
		Other: []CustomStatement{
			{
				Attribute:      "http://www.w3.org/2004/02/skos/core#related",
				AttributeLabel: "Related resource",
				URI:            "http://identifiers.org/pubmed/1234567",
				Label:          "Another paper",
			},
		},
	}
}

func sampleFileRecord() *Metadata {
	return &Metadata{
		URI:         "sim.sedml",
		Title:       "Simulation",
		Description: "The simulation experiment",
	}
}

func TestReadTriples_RoundTrip(t *testing.T) {
	original := []*Metadata{sampleArchiveRecord(), sampleFileRecord()}

	triples, err := BuildTriples(original, testRootURI)
	require.NoError(t, err)

	records, errors, warnings := ReadTriples(triples)
	require.Empty(t, errors, "errors: %v", errors)
	assert.Empty(t, warnings)
	require.Len(t, records, 2)

	assert.Equal(t, original[0], records[0])
	assert.Equal(t, original[1], records[1])
}

func TestReadTriples_RequiredTitle(t *testing.T) {
	record := sampleArchiveRecord()
	record.Title = ""

	triples, err := BuildTriples([]*Metadata{record}, testRootURI)
	require.NoError(t, err)

	records, errors, _ := ReadTriples(triples)
	assert.Nil(t, records)
	assert.True(t, validation.AnyContains(errors, "required"))

	// Supplying a title clears the error.
	record.Title = "A model of something"
	triples, err = BuildTriples([]*Metadata{record}, testRootURI)
	require.NoError(t, err)
	records, errors, _ = ReadTriples(triples)
	require.NotNil(t, records)
	assert.False(t, validation.AnyContains(errors, "required"))
}

func TestReadTriples_RequiredTitleOnlyForArchiveRecord(t *testing.T) {
	file := sampleFileRecord()
	file.Title = ""

	triples, err := BuildTriples([]*Metadata{sampleArchiveRecord(), file}, testRootURI)
	require.NoError(t, err)

	records, errors, _ := ReadTriples(triples)
	assert.False(t, validation.AnyContains(errors, "required"))
	require.Len(t, records, 2)
}

func TestReadTriples_NoRootURI(t *testing.T) {
	triples := []Triple{
		{IRI("http://example.com/thing"), IRI(vocabulary.DcTitle), Literal("x")},
	}
	records, errors, _ := ReadTriples(triples)
	assert.Nil(t, records)
	assert.True(t, validation.AnyContains(errors, "root URI"))
}

func TestReadTriples_MultipleRootURIs(t *testing.T) {
	triples := []Triple{
		{IRI("http://omex-library.org/a.omex"), IRI(vocabulary.DcTitle), Literal("a")},
		{IRI("http://omex-library.org/b.omex"), IRI(vocabulary.DcTitle), Literal("b")},
	}
	records, errors, _ := ReadTriples(triples)
	assert.Nil(t, records)
	assert.True(t, validation.AnyContains(errors, "more than one"))
}

func TestReadTriples_CardinalityFirstWins(t *testing.T) {
	triples := []Triple{
		{IRI(testRootURI), IRI(vocabulary.DcTitle), Literal("first title")},
		{IRI(testRootURI), IRI(vocabulary.DcTitle), Literal("second title")},
	}
	records, errors, _ := ReadTriples(triples)
	assert.Nil(t, records)
	assert.True(t, validation.AnyContains(errors, "only one title"))
}

func TestReadTriples_DroppedValueWithoutLabel(t *testing.T) {
	triples := []Triple{
		{IRI(testRootURI), IRI(vocabulary.DcTitle), Literal("a title")},
		{IRI(testRootURI), IRI(vocabulary.BqbiolHasTaxon), IRI("http://identifiers.org/taxonomy/9606")},
	}
	records, errors, warnings := ReadTriples(triples)
	require.Empty(t, errors)
	assert.True(t, validation.AnyContains(warnings, "does not contain a label"))
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Taxa)
}

func TestReadTriples_InvalidDates(t *testing.T) {
	triples := []Triple{
		{IRI(testRootURI), IRI(vocabulary.DcTitle), Literal("a title")},
		{IRI(testRootURI), IRI(vocabulary.DcCreated), Literal("not a date")},
	}
	records, errors, _ := ReadTriples(triples)
	assert.Nil(t, records)
	assert.True(t, validation.AnyContains(errors, "not valid"))
}

func TestBuildTriples_RejectsBadRootURI(t *testing.T) {
	_, err := BuildTriples(nil, "http://example.com/not-an-archive")
	assert.Error(t, err)
}

func TestBiosimulationsWriterReader_FileRoundTrip(t *testing.T) {
	original := []*Metadata{sampleArchiveRecord(), sampleFileRecord()}

	for _, format := range []Format{FormatRDFXML, FormatRDFXMLAbbrev, FormatTurtle, FormatNTriples} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "metadata.rdf")
			require.NoError(t, NewBiosimulationsWriter(format).Run(original, testRootURI, path))

			readFormat := format
			if format == FormatRDFXMLAbbrev {
				// Abbreviated RDF/XML is plain RDF/XML on the wire.
				readFormat = FormatRDFXML
			}
			records, errors, _ := NewBiosimulationsReader(readFormat).Run(path)
			require.Empty(t, errors, "errors: %v", errors)
			require.Len(t, records, 2)
			assert.Equal(t, original[0], records[0])
			assert.Equal(t, original[1], records[1])
		})
	}
}

func TestReadFile_XML11Prolog(t *testing.T) {
	content := `<?xml version="1.1" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
    xmlns:dcterms="http://purl.org/dc/terms/">
  <rdf:Description rdf:about="http://omex-library.org/test.omex">
    <dcterms:title>a title</dcterms:title>
  </rdf:Description>
</rdf:RDF>
`
	path := filepath.Join(t.TempDir(), "metadata.rdf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	triples, errors, warnings := ReadFile(path, FormatRDFXML)
	require.Empty(t, errors, "errors: %v", errors)
	assert.True(t, validation.AnyContains(warnings, "XML 1.0"))
	require.Len(t, triples, 1)
	assert.Equal(t, "a title", triples[0].Object.Value)
}

func TestTriplesReader_UnreadableFormat(t *testing.T) {
	_, errors, _ := NewTriplesReader(FormatRDFXMLAbbrev).Run("does-not-matter.rdf")
	assert.True(t, validation.AnyContains(errors, "cannot be read"))
}
