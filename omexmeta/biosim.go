package omexmeta

import (
	"sort"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/biosimulators/omexkit/validation"
	"github.com/biosimulators/omexkit/vocabulary"
)

// BiosimulationsReader projects an OMEX Metadata graph onto the fixed
// BioSimulations attribute schema.
type BiosimulationsReader struct {
	// Format is the serialization of the input file.
	Format Format
}

// NewBiosimulationsReader creates a projecting reader for the given
// input format.
func NewBiosimulationsReader(format Format) *BiosimulationsReader {
	if format == "" {
		format = DefaultFormat
	}
	return &BiosimulationsReader{Format: format}
}

// Run parses filename and projects the graph into metadata records, one
// per archive-relative entity the graph describes. On error the records
// are nil: partial metadata is never returned alongside errors.
func (r *BiosimulationsReader) Run(filename string) ([]*Metadata, []validation.Finding, []validation.Finding) {
	triples, errors, warnings := ReadFile(filename, r.Format)
	if len(errors) > 0 {
		return nil, errors, warnings
	}
	records, projErrors, projWarnings := ReadTriples(triples)
	errors = append(errors, projErrors...)
	warnings = append(warnings, projWarnings...)
	if len(errors) > 0 {
		return nil, errors, warnings
	}
	return records, errors, warnings
}

// ArchiveURI locates the single root URI describing the archive among
// the subjects of a triple set. Zero or more than one distinct root URI
// is an error: an archive's metadata must describe exactly one archive.
func ArchiveURI(triples []Triple) (string, []validation.Finding) {
	seen := map[string]bool{}
	for _, t := range triples {
		if t.Subject.Kind == KindIRI && IsRootURI(t.Subject.Value) {
			seen[t.Subject.Value] = true
		}
	}

	switch len(seen) {
	case 0:
		return "", []validation.Finding{validation.New(
			"metadata does not contain a root URI for a COMBINE/OMEX archive (%s<name>.omex)",
			RootURIPrefix)}
	case 1:
		for uri := range seen {
			return uri, nil
		}
	}

	uris := make([]string, 0, len(seen))
	for uri := range seen {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	nested := make([]validation.Finding, len(uris))
	for i, uri := range uris {
		nested[i] = validation.New("%s", uri)
	}
	return "", []validation.Finding{validation.Group(
		"metadata describes more than one COMBINE/OMEX archive", nested)}
}

// rdfStatement is one statement attached to a subject during indexing.
type rdfStatement struct {
	predicate string
	object    *rdfObject
}

// rdfObject is the index entry for one node of the graph: its kind and
// value, the statements filed under recognized attributes, and the
// generic "other" statements.
type rdfObject struct {
	node       Node
	statements map[string][]*rdfStatement
	other      []*rdfStatement
}

// indexTriples builds an entry for every node appearing anywhere in the
// triple set and files each statement under its subject, keyed by the
// predicate's declared attribute or under "other" for predicates outside
// the vocabulary.
func indexTriples(triples []Triple) (map[string]*rdfObject, []string) {
	objects := map[string]*rdfObject{}
	var subjectOrder []string

	get := func(n Node) *rdfObject {
		key := n.key()
		obj, ok := objects[key]
		if !ok {
			obj = &rdfObject{node: n, statements: map[string][]*rdfStatement{}}
			objects[key] = obj
		}
		return obj
	}

	for _, t := range triples {
		subj := get(t.Subject)
		obj := get(t.Object)

		stmt := &rdfStatement{predicate: t.Predicate.Value, object: obj}
		if pt, ok := vocabulary.PredicateTypes[t.Predicate.Value]; ok {
			if len(subj.statements) == 0 && len(subj.other) == 0 {
				subjectOrder = append(subjectOrder, t.Subject.key())
			}
			subj.statements[pt.Attribute] = append(subj.statements[pt.Attribute], stmt)
		} else {
			if len(subj.statements) == 0 && len(subj.other) == 0 {
				subjectOrder = append(subjectOrder, t.Subject.key())
			}
			subj.other = append(subj.other, stmt)
		}
	}
	return objects, subjectOrder
}

// ReadTriples projects a triple set into BioSimulations metadata
// records. It returns one record per archive-relative entity (the
// archive itself and any of its files the graph describes).
func ReadTriples(triples []Triple) ([]*Metadata, []validation.Finding, []validation.Finding) {
	var errors, warnings []validation.Finding

	rootURI, rootErrors := ArchiveURI(triples)
	if len(rootErrors) > 0 {
		return nil, rootErrors, warnings
	}

	objects, subjectOrder := indexTriples(triples)

	var records []*Metadata
	for _, key := range subjectOrder {
		subj := objects[key]
		if subj.node.Kind != KindIRI {
			continue
		}
		uri := subj.node.Value
		if strings.HasPrefix(uri, localIDScheme) {
			continue
		}
		rel, ok := RelativeToRoot(uri, rootURI)
		if !ok {
			continue
		}

		record, recErrors, recWarnings := projectRecord(subj, rel, rootURI)
		errors = append(errors, recErrors...)
		warnings = append(warnings, recWarnings...)
		if record != nil {
			records = append(records, record)
		}
	}

	if len(errors) > 0 {
		return nil, errors, warnings
	}
	return records, errors, warnings
}

// projectRecord builds one metadata record from an indexed subject.
func projectRecord(subj *rdfObject, uri, rootURI string) (*Metadata, []validation.Finding, []validation.Finding) {
	var errors, warnings []validation.Finding

	record := &Metadata{URI: uri}

	// Attributes are walked in declaration order so findings are
	// deterministic. Attributes fed by several predicates (citations)
	// pool their statements under one attribute key and are processed
	// once.
	for _, attr := range vocabulary.AttributeOrder {
		pt, ok := vocabulary.Primary(attr)
		if !ok {
			continue
		}
		stmts := subj.statements[pt.Attribute]

		switch {
		case pt.HasURI && pt.HasLabel:
			values, vw := extractIdentifiers(stmts)
			warnings = append(warnings, vw...)
			values, ve := enforceIdentifierCardinality(pt, values)
			errors = append(errors, ve...)
			record.setIdentifiers(pt.Attribute, values)

		case pt.HasURI:
			values := extractURIs(stmts)
			values, ve := enforceLabelCardinality(pt, values)
			errors = append(errors, ve...)
			record.setURIs(pt.Attribute, values)

		default:
			values, vw := extractLabels(stmts)
			warnings = append(warnings, vw...)
			values, ve := enforceLabelCardinality(pt, values)
			errors = append(errors, ve...)
			record.setLabels(pt.Attribute, values)
		}
	}

	// Required attributes are enforced only on the record describing the
	// archive itself.
	if record.IsArchiveRecord() {
		for _, attr := range vocabulary.AttributeOrder {
			pt, ok := vocabulary.Primary(attr)
			if !ok || !pt.Required {
				continue
			}
			if empty(record, pt) {
				errors = append(errors, validation.New(
					"%s (%s) is required", pt.Attribute, pt.Predicate))
			}
		}
	}

	other, ow := extractOther(subj)
	warnings = append(warnings, ow...)
	record.Other = other

	postErrors := postProcess(record, rootURI)
	errors = append(errors, postErrors...)

	if len(errors) > 0 {
		return nil, errors, warnings
	}
	return record, errors, warnings
}

// extractIdentifiers reconciles dual URI+label statements. The URI comes
// from the object node itself or a nested identifier sub-statement; the
// label from a nested label sub-statement or a direct literal. An entry
// without a label is dropped with a warning, unless its value is a
// blank node, which is expected to be annotated elsewhere.
func extractIdentifiers(stmts []*rdfStatement) ([]LabeledIdentifier, []validation.Finding) {
	var out []LabeledIdentifier
	var warnings []validation.Finding

	for _, stmt := range stmts {
		obj := stmt.object

		uri := ""
		if obj.node.Kind == KindIRI && !strings.HasPrefix(obj.node.Value, localIDScheme) {
			uri = obj.node.Value
		}
		if nested := identifierOf(obj); nested != "" {
			uri = nested
		}

		label := ""
		if obj.node.Kind == KindLiteral {
			label = obj.node.Value
		}
		if nested := labelOf(obj); nested != "" {
			label = nested
		}

		if label == "" {
			if obj.node.Kind != KindBlank {
				warnings = append(warnings, validation.New(
					"value `%s` (%s) does not contain a label and was ignored",
					obj.node.Value, stmt.predicate))
			}
			continue
		}
		out = append(out, LabeledIdentifier{URI: uri, Label: label})
	}
	return out, warnings
}

// extractURIs collects URI-only statements, appending any nested
// identifier annotations producers redundantly attach.
func extractURIs(stmts []*rdfStatement) []string {
	var out []string
	for _, stmt := range stmts {
		obj := stmt.object
		switch obj.node.Kind {
		case KindIRI:
			out = append(out, obj.node.Value)
		case KindLiteral:
			out = append(out, obj.node.Value)
		}
		if nested := identifierOf(obj); nested != "" && obj.node.Kind == KindBlank {
			out = append(out, nested)
		}
	}
	return out
}

// extractLabels collects label-only statements, following nested label
// annotations when the object is not a direct literal.
func extractLabels(stmts []*rdfStatement) ([]string, []validation.Finding) {
	var out []string
	var warnings []validation.Finding
	for _, stmt := range stmts {
		obj := stmt.object
		if obj.node.Kind == KindLiteral {
			out = append(out, obj.node.Value)
			continue
		}
		if nested := labelOf(obj); nested != "" {
			out = append(out, nested)
			continue
		}
		warnings = append(warnings, validation.New(
			"value `%s` (%s) does not contain a label and was ignored",
			obj.node.Value, stmt.predicate))
	}
	return out, warnings
}

// identifierOf searches an object's nested annotations for an identifier
// sub-statement and returns the URI it yields.
func identifierOf(obj *rdfObject) string {
	for _, stmt := range obj.other {
		if !vocabulary.IdentifierPredicates[stmt.predicate] {
			continue
		}
		switch stmt.object.node.Kind {
		case KindIRI, KindLiteral:
			return stmt.object.node.Value
		}
	}
	return ""
}

// labelOf searches an object's nested annotations for a label
// sub-statement. A nested title statement also counts: title is in the
// vocabulary, so it is filed under the title attribute rather than
// "other".
func labelOf(obj *rdfObject) string {
	for _, stmt := range obj.other {
		if !vocabulary.LabelPredicates[stmt.predicate] {
			continue
		}
		if stmt.object.node.Kind == KindLiteral {
			return stmt.object.node.Value
		}
	}
	for _, stmt := range obj.statements[vocabulary.AttrTitle] {
		if stmt.object.node.Kind == KindLiteral {
			return stmt.object.node.Value
		}
	}
	return ""
}

// extractOther reduces statements with predicates outside the vocabulary
// into custom statements. Both the attribute label (from a nested
// description statement) and the value label are required; a statement
// missing either is dropped with a warning, never kept half-populated.
func extractOther(subj *rdfObject) ([]CustomStatement, []validation.Finding) {
	var out []CustomStatement
	var warnings []validation.Finding

	for _, stmt := range subj.other {
		obj := stmt.object

		attributeLabel := ""
		for _, nested := range obj.statements[vocabulary.AttrDescription] {
			if nested.object.node.Kind == KindLiteral {
				attributeLabel = nested.object.node.Value
				break
			}
		}

		label := ""
		if obj.node.Kind == KindLiteral {
			label = obj.node.Value
		}
		if nested := labelOf(obj); nested != "" {
			label = nested
		}

		uri := ""
		if obj.node.Kind == KindIRI && !strings.HasPrefix(obj.node.Value, localIDScheme) {
			uri = obj.node.Value
		}
		if nested := identifierOf(obj); nested != "" {
			uri = nested
		}

		if attributeLabel == "" || label == "" {
			warnings = append(warnings, validation.New(
				"statement with predicate `%s` does not contain an attribute label and a value label and was ignored",
				stmt.predicate))
			continue
		}

		out = append(out, CustomStatement{
			Attribute:      stmt.predicate,
			AttributeLabel: attributeLabel,
			URI:            uri,
			Label:          label,
		})
	}
	return out, warnings
}

// enforceIdentifierCardinality applies the multiplicity declaration.
// First-wins on violation: the first encountered value is kept and the
// violation is reported.
func enforceIdentifierCardinality(pt vocabulary.PredicateType, values []LabeledIdentifier) ([]LabeledIdentifier, []validation.Finding) {
	if pt.MultipleAllowed || len(values) <= 1 {
		return values, nil
	}
	return values[:1], []validation.Finding{validation.New(
		"only one %s (%s) is allowed", pt.Attribute, pt.Predicate)}
}

// enforceLabelCardinality is enforceIdentifierCardinality for scalar
// value lists.
func enforceLabelCardinality(pt vocabulary.PredicateType, values []string) ([]string, []validation.Finding) {
	if pt.MultipleAllowed || len(values) <= 1 {
		return values, nil
	}
	return values[:1], []validation.Finding{validation.New(
		"only one %s (%s) is allowed", pt.Attribute, pt.Predicate)}
}

// empty reports whether an attribute ended up with no value.
func empty(record *Metadata, pt vocabulary.PredicateType) bool {
	switch {
	case pt.HasURI && pt.HasLabel:
		return len(record.identifiers(pt.Attribute)) == 0
	case pt.HasURI:
		return len(record.uris(pt.Attribute)) == 0
	default:
		return len(record.labels(pt.Attribute)) == 0
	}
}

// postProcess rewrites thumbnail URIs relative to the archive root and
// checks that date literals parse.
func postProcess(record *Metadata, rootURI string) []validation.Finding {
	var errors []validation.Finding

	for i, thumbnail := range record.Thumbnails {
		if rel, ok := RelativeToRoot(thumbnail, rootURI); ok {
			record.Thumbnails[i] = rel
		}
	}

	if record.Created != "" {
		if _, err := dateparse.ParseAny(record.Created); err != nil {
			errors = append(errors, validation.New(
				"created date `%s` is not valid", record.Created))
		}
	}
	for _, modified := range record.Modified {
		if _, err := dateparse.ParseAny(modified); err != nil {
			errors = append(errors, validation.New(
				"modified date `%s` is not valid", modified))
		}
	}
	return errors
}
