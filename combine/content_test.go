package combine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/biosimulators/omexkit/keysort"
)

func TestContentTupleEquality(t *testing.T) {
	created := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	build := func() *Content {
		return &Content{
			Location:    "sim.sedml",
			Format:      string(FormatSEDML),
			Master:      true,
			Description: "a simulation",
			Authors:     []*Author{{FamilyName: "Doe", GivenName: "Jane"}},
			Created:     &created,
		}
	}

	a, b := build(), build()
	assert.True(t, a.IsEqual(b))
	assert.True(t, keysort.Equal(a.Key(), b.Key()))

	// Changing any one field flips both equality and the tuple key.
	mutations := []func(*Content){
		func(c *Content) { c.Location = "other.sedml" },
		func(c *Content) { c.Format = string(FormatSBML) },
		func(c *Content) { c.Master = false },
		func(c *Content) { c.Description = "different" },
		func(c *Content) { c.Authors = nil },
		func(c *Content) { c.Created = nil },
	}
	for i, mutate := range mutations {
		changed := build()
		mutate(changed)
		assert.False(t, a.IsEqual(changed), "mutation %d should break equality", i)
		assert.False(t, keysort.Equal(a.Key(), changed.Key()), "mutation %d should change the key", i)
	}
}

func TestArchiveEqualityIgnoresContentOrder(t *testing.T) {
	sedml := &Content{Location: "sim.sedml", Format: string(FormatSEDML), Master: true}
	model := &Content{Location: "model.xml", Format: string(FormatSBML)}

	a := NewArchive(sedml, model)
	b := NewArchive(model, sedml)
	assert.True(t, a.IsEqual(b))

	c := NewArchive(sedml)
	assert.False(t, a.IsEqual(c))
}

func TestAuthorOrderDoesNotAffectEquality(t *testing.T) {
	doe := &Author{FamilyName: "Doe", GivenName: "Jane"}
	roe := &Author{FamilyName: "Roe", GivenName: "John"}

	a := &Content{Location: "sim.sedml", Authors: []*Author{doe, roe}}
	b := &Content{Location: "sim.sedml", Authors: []*Author{roe, doe}}
	assert.True(t, a.IsEqual(b))
}

func TestMasterContent(t *testing.T) {
	sedml := &Content{Location: "sim.sedml", Format: string(FormatSEDML), Master: true}
	model := &Content{Location: "model.xml", Format: string(FormatSBML)}
	a := NewArchive(sedml, model)

	masters := a.MasterContent()
	assert.Equal(t, []*Content{sedml}, masters)
}

func TestNilContentEntriesAreSkipped(t *testing.T) {
	sedml := &Content{Location: "sim.sedml", Format: string(FormatSEDML), Master: true}
	a := NewArchive(nil, sedml, nil)

	assert.Equal(t, []*Content{sedml}, a.MasterContent())
	assert.Equal(t, []*Content{sedml}, a.ContentsByFormat(FormatSEDML))
}

func TestContentsByFormat(t *testing.T) {
	sedml := &Content{Location: "sim.sedml", Format: "https://identifiers.org/combine.specifications/sed-ml.level-1.version-3"}
	model := &Content{Location: "model.xml", Format: string(FormatSBML)}
	a := NewArchive(sedml, model)

	assert.Equal(t, []*Content{sedml}, a.ContentsByFormat(FormatSEDML))
	assert.Equal(t, []*Content{model}, a.ContentsByFormat(FormatSBML))
	assert.Empty(t, a.ContentsByFormat(FormatCellML))
}
