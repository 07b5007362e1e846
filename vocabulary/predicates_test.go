package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicateTypes_KeyedByOwnPredicate(t *testing.T) {
	for iri, pt := range PredicateTypes {
		assert.Equal(t, iri, pt.Predicate, "table key must match declared predicate")
		assert.NotEmpty(t, pt.Attribute)
	}
}

func TestPredicateTypes_OnlyTitleRequired(t *testing.T) {
	for iri, pt := range PredicateTypes {
		if iri == DcTitle {
			assert.True(t, pt.Required)
		} else {
			assert.False(t, pt.Required, "only title is required, got %s", iri)
		}
	}
}

func TestAttributeOrder_CoversTable(t *testing.T) {
	ordered := make(map[string]bool, len(AttributeOrder))
	for _, attr := range AttributeOrder {
		ordered[attr] = true
	}
	for _, pt := range PredicateTypes {
		assert.True(t, ordered[pt.Attribute], "attribute %s missing from order", pt.Attribute)
	}
}

func TestPrimary_EveryOrderedAttribute(t *testing.T) {
	for _, attr := range AttributeOrder {
		pt, ok := Primary(attr)
		require.True(t, ok, "no primary predicate for %s", attr)
		assert.Equal(t, attr, pt.Attribute)
	}
}

func TestPrimary_CitationsDisambiguated(t *testing.T) {
	pt, ok := Primary(AttrCitations)
	require.True(t, ok)
	assert.Equal(t, BqmodelIsDescribedBy, pt.Predicate)
	assert.Len(t, ByAttribute(AttrCitations), 2)
}
