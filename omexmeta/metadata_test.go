package omexmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosimulators/omexkit/vocabulary"
)

// Every attribute in the predicate-type table must be bound by both the
// setter side (projection) and the accessor side (serialization and
// validation). An attribute missing from either switch would silently
// vanish in one direction.
func TestMetadata_EveryTableAttributeIsBound(t *testing.T) {
	for _, attr := range vocabulary.AttributeOrder {
		pt, ok := vocabulary.Primary(attr)
		require.True(t, ok, "attribute %s has no primary predicate", attr)

		record := &Metadata{URI: "."}
		switch {
		case pt.HasURI && pt.HasLabel:
			values := []LabeledIdentifier{{URI: "http://example.com/x", Label: "x"}}
			record.setIdentifiers(attr, values)
			assert.Equal(t, values, record.IdentifierValues(attr),
				"attribute %s is not bound on both sides", attr)
		case pt.HasURI:
			values := []string{"http://example.com/x"}
			record.setURIs(attr, values)
			assert.Equal(t, values, record.URIValues(attr),
				"attribute %s is not bound on both sides", attr)
		default:
			values := []string{"x"}
			record.setLabels(attr, values)
			assert.Equal(t, values, record.LabelValues(attr),
				"attribute %s is not bound on both sides", attr)
		}
	}
}

func TestIsRootURI(t *testing.T) {
	assert.True(t, IsRootURI("http://omex-library.org/test.omex"))
	assert.True(t, IsRootURI("https://omex-library.org/some-archive.omex"))
	assert.False(t, IsRootURI("http://omex-library.org/test.omex/model.xml"))
	assert.False(t, IsRootURI("http://example.com/test.omex"))
	assert.False(t, IsRootURI("test.omex"))
}

func TestRelativeToRoot(t *testing.T) {
	root := "http://omex-library.org/test.omex"

	rel, ok := RelativeToRoot(root, root)
	assert.True(t, ok)
	assert.Equal(t, ".", rel)

	rel, ok = RelativeToRoot(root+"/sim.sedml", root)
	assert.True(t, ok)
	assert.Equal(t, "sim.sedml", rel)

	rel, ok = RelativeToRoot("http://identifiers.org/pubmed/1", root)
	assert.False(t, ok)
	assert.Equal(t, "http://identifiers.org/pubmed/1", rel)
}

func TestIsArchiveRecord(t *testing.T) {
	assert.True(t, (&Metadata{URI: "."}).IsArchiveRecord())
	assert.False(t, (&Metadata{URI: "sim.sedml"}).IsArchiveRecord())
}
