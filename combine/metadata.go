package combine

import (
	"fmt"
	"sort"
	"time"

	"github.com/araddon/dateparse"

	"github.com/biosimulators/omexkit/omexmeta"
	"github.com/biosimulators/omexkit/validation"
	"github.com/biosimulators/omexkit/vocabulary"
)

// MetadataFilename is the conventional name of an archive's description
// metadata file.
const MetadataFilename = "metadata.rdf"

// noDateSet is the sentinel timestamp producers write when no creation
// date was recorded. It is never surfaced as a real date.
var noDateSet = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// description is the archive- or content-level OMEX description block:
// free text, credited authors, and creation/modification timestamps.
type description struct {
	text     string
	authors  []*Author
	created  *time.Time
	modified []time.Time
}

// updated returns the most recent modification timestamp, if any.
func (d *description) updated() *time.Time {
	if len(d.modified) == 0 {
		return nil
	}
	latest := d.modified[0]
	for _, t := range d.modified[1:] {
		if t.After(latest) {
			latest = t
		}
	}
	return &latest
}

// readDescriptions parses an OMEX description metadata file into one
// description per subject location. The archive itself is keyed ".".
func readDescriptions(filename string) (map[string]*description, []validation.Finding, []validation.Finding) {
	triples, errors, warnings := omexmeta.ReadFile(filename, omexmeta.FormatRDFXML)
	if len(errors) > 0 {
		return nil, errors, warnings
	}

	bySubject := map[string][]omexmeta.Triple{}
	for _, t := range triples {
		key := t.Subject.Value
		if t.Subject.Kind == omexmeta.KindBlank {
			key = "_:" + t.Subject.Value
		}
		bySubject[key] = append(bySubject[key], t)
	}

	resolve := func(n omexmeta.Node) []omexmeta.Triple {
		if n.Kind == omexmeta.KindBlank {
			return bySubject["_:"+n.Value]
		}
		return bySubject[n.Value]
	}

	out := map[string]*description{}
	for subject, stmts := range bySubject {
		if len(subject) > 2 && subject[:2] == "_:" {
			continue
		}
		location := normalizeLocation(subject)

		desc := &description{}
		for _, t := range stmts {
			switch t.Predicate.Value {
			case vocabulary.DcDescription:
				if t.Object.Kind == omexmeta.KindLiteral && desc.text == "" {
					desc.text = t.Object.Value
				}
			case vocabulary.DcCreator:
				if author := readAuthor(t.Object, resolve); author != nil {
					desc.authors = append(desc.authors, author)
				}
			case vocabulary.DcCreated:
				when, err := readDate(t.Object, resolve)
				if err != nil {
					errors = append(errors, validation.New(
						"`%s` has an invalid creation date: %s", location, err))
				} else if when != nil {
					desc.created = when
				}
			case vocabulary.DcModified:
				when, err := readDate(t.Object, resolve)
				if err != nil {
					errors = append(errors, validation.New(
						"`%s` has an invalid modification date: %s", location, err))
				} else if when != nil {
					desc.modified = append(desc.modified, *when)
				}
			}
		}
		if desc.text == "" && len(desc.authors) == 0 && desc.created == nil && len(desc.modified) == 0 {
			continue
		}
		out[location] = desc
	}

	if len(errors) > 0 {
		return nil, errors, warnings
	}
	return out, nil, warnings
}

// readAuthor extracts a vCard name from a creator node. The family and
// given names may sit on the creator node itself or behind vcard:hasName.
func readAuthor(node omexmeta.Node, resolve func(omexmeta.Node) []omexmeta.Triple) *Author {
	stmts := resolve(node)
	author := &Author{}
	for _, t := range stmts {
		switch t.Predicate.Value {
		case vocabulary.VCardHasName:
			if nested := readAuthor(t.Object, resolve); nested != nil {
				return nested
			}
		case vocabulary.VCardFamilyName:
			author.FamilyName = t.Object.Value
		case vocabulary.VCardGivenName:
			author.GivenName = t.Object.Value
		}
	}
	if author.FamilyName == "" && author.GivenName == "" {
		return nil
	}
	return author
}

// readDate extracts a timestamp from a created/modified node: either a
// literal directly, or a nested node carrying a dcterms:W3CDTF literal.
// The no-date sentinel yields nil.
func readDate(node omexmeta.Node, resolve func(omexmeta.Node) []omexmeta.Triple) (*time.Time, error) {
	value := ""
	if node.Kind == omexmeta.KindLiteral {
		value = node.Value
	} else {
		for _, t := range resolve(node) {
			if t.Predicate.Value == vocabulary.DcW3CDTF && t.Object.Kind == omexmeta.KindLiteral {
				value = t.Object.Value
				break
			}
		}
	}
	if value == "" {
		return nil, nil
	}

	when, err := dateparse.ParseAny(value)
	if err != nil {
		return nil, fmt.Errorf("`%s` is not a valid date", value)
	}
	when = when.UTC()
	if when.Equal(noDateSet) {
		return nil, nil
	}
	return &when, nil
}

// writeMetadata serializes the archive's description metadata to an
// OMEX description RDF/XML file at filename.
func writeMetadata(archive *Archive, filename string) error {
	var triples []omexmeta.Triple
	counter := 0
	nextBlank := func() omexmeta.Node {
		counter++
		return omexmeta.Blank(fmt.Sprintf("desc%05d", counter))
	}

	describe := func(subject string, desc *description) {
		subj := omexmeta.IRI(subject)
		if desc.text != "" {
			triples = append(triples, omexmeta.Triple{
				Subject:   subj,
				Predicate: omexmeta.IRI(vocabulary.DcDescription),
				Object:    omexmeta.Literal(desc.text),
			})
		}
		for _, author := range desc.authors {
			creator := nextBlank()
			name := nextBlank()
			triples = append(triples,
				omexmeta.Triple{Subject: subj, Predicate: omexmeta.IRI(vocabulary.DcCreator), Object: creator},
				omexmeta.Triple{Subject: creator, Predicate: omexmeta.IRI(vocabulary.VCardHasName), Object: name},
				omexmeta.Triple{Subject: name, Predicate: omexmeta.IRI(vocabulary.VCardFamilyName), Object: omexmeta.Literal(author.FamilyName)},
				omexmeta.Triple{Subject: name, Predicate: omexmeta.IRI(vocabulary.VCardGivenName), Object: omexmeta.Literal(author.GivenName)},
			)
		}
		created := noDateSet
		if desc.created != nil {
			created = desc.created.UTC()
		}
		stamp := func(predicate string, when time.Time) {
			node := nextBlank()
			triples = append(triples,
				omexmeta.Triple{Subject: subj, Predicate: omexmeta.IRI(predicate), Object: node},
				omexmeta.Triple{Subject: node, Predicate: omexmeta.IRI(vocabulary.DcW3CDTF), Object: omexmeta.Literal(when.Format(time.RFC3339))},
			)
		}
		stamp(vocabulary.DcCreated, created)
		for _, when := range desc.modified {
			stamp(vocabulary.DcModified, when.UTC())
		}
	}

	describe(".", &description{
		text:     archive.Description,
		authors:  archive.Authors,
		created:  archive.Created,
		modified: modifiedList(archive.Updated),
	})

	located := make([]*Content, 0, len(archive.Contents))
	for _, c := range archive.Contents {
		if c.Description != "" || len(c.Authors) > 0 || c.Created != nil || c.Updated != nil {
			located = append(located, c)
		}
	}
	sort.Slice(located, func(i, j int) bool { return located[i].Location < located[j].Location })
	for _, c := range located {
		describe("./"+normalizeLocation(c.Location), &description{
			text:     c.Description,
			authors:  c.Authors,
			created:  c.Created,
			modified: modifiedList(c.Updated),
		})
	}

	return omexmeta.NewTriplesWriter(omexmeta.FormatRDFXML).Run(triples, filename)
}

func modifiedList(updated *time.Time) []time.Time {
	if updated == nil {
		return nil
	}
	return []time.Time{updated.UTC()}
}
