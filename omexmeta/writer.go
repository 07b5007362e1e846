package omexmeta

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/biosimulators/omexkit/vocabulary"
)

// BiosimulationsWriter serializes BioSimulations metadata records back
// into OMEX Metadata triples and writes them in a chosen format.
type BiosimulationsWriter struct {
	// Format is the output serialization.
	Format Format
}

// NewBiosimulationsWriter creates a writer for the given output format.
func NewBiosimulationsWriter(format Format) *BiosimulationsWriter {
	if format == "" {
		format = DefaultFormat
	}
	return &BiosimulationsWriter{Format: format}
}

// Run serializes the records to filename. rootURI must be the archive's
// root URI (http://omex-library.org/<name>.omex).
func (w *BiosimulationsWriter) Run(records []*Metadata, rootURI, filename string) error {
	triples, err := BuildTriples(records, rootURI)
	if err != nil {
		return err
	}
	return NewTriplesWriter(w.Format).Run(triples, filename)
}

// BuildTriples generates the OMEX Metadata triples for a set of records.
// The predicate-type table decides which triples each populated
// attribute yields. Synthetic graph-local identifiers attach URI+label
// pairs to shared anonymous subjects; the identifier counter is scoped
// to this one call so output is deterministic and reentrant.
func BuildTriples(records []*Metadata, rootURI string) ([]Triple, error) {
	if !IsRootURI(rootURI) {
		return nil, fmt.Errorf("`%s` is not a valid archive root URI (%s<name>.omex)", rootURI, RootURIPrefix)
	}

	counter := 0
	nextLocal := func() Node {
		counter++
		return IRI(fmt.Sprintf("%s%05d", localIDScheme, counter))
	}

	var triples []Triple
	for _, record := range records {
		subjectURI := rootURI
		if !record.IsArchiveRecord() {
			subjectURI = rootURI + "/" + record.URI
		}
		subject := IRI(subjectURI)

		for _, attr := range vocabulary.AttributeOrder {
			pt, ok := vocabulary.Primary(attr)
			if !ok {
				continue
			}
			pred := IRI(pt.Predicate)

			switch {
			case pt.HasURI && pt.HasLabel:
				for _, value := range record.identifiers(attr) {
					local := nextLocal()
					triples = append(triples, Triple{subject, pred, local})
					if value.URI != "" {
						triples = append(triples, Triple{local, IRI(vocabulary.DcIdentifier), IRI(value.URI)})
					}
					triples = append(triples, Triple{local, IRI(vocabulary.FoafName), Literal(value.Label)})
				}

			case pt.HasURI:
				for _, value := range record.uris(attr) {
					uri := value
					if !strings.Contains(uri, "://") && !strings.HasPrefix(uri, localIDScheme) {
						uri = rootURI + "/" + strings.TrimPrefix(uri, "./")
					}
					triples = append(triples, Triple{subject, pred, IRI(uri)})
				}

			default:
				for _, value := range record.labels(attr) {
					triples = append(triples, Triple{subject, pred, Literal(value)})
				}
			}
		}

		for _, custom := range record.Other {
			local := nextLocal()
			triples = append(triples, Triple{subject, IRI(custom.Attribute), local})
			triples = append(triples, Triple{local, IRI(vocabulary.DcDescription), Literal(custom.AttributeLabel)})
			triples = append(triples, Triple{local, IRI(vocabulary.RdfsLabel), Literal(custom.Label)})
			if custom.URI != "" {
				triples = append(triples, Triple{local, IRI(vocabulary.DcIdentifier), IRI(custom.URI)})
			}
		}
	}
	return triples, nil
}

// TriplesWriter serializes a flat triple list to a file in a chosen
// format.
type TriplesWriter struct {
	// Format is the output serialization.
	Format Format
}

// NewTriplesWriter creates a writer for the given output format.
func NewTriplesWriter(format Format) *TriplesWriter {
	if format == "" {
		format = DefaultFormat
	}
	return &TriplesWriter{Format: format}
}

// Run serializes the triples to filename.
func (w *TriplesWriter) Run(triples []Triple, filename string) error {
	out, err := SerializeTriples(triples, w.Format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, []byte(out), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// SerializeTriples renders a triple set in the requested format.
func SerializeTriples(triples []Triple, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return toTurtle(triples), nil
	case FormatNTriples, FormatNQuads:
		return toNTriples(triples), nil
	case FormatRDFXML:
		return toRDFXML(triples, false)
	case FormatRDFXMLAbbrev:
		return toRDFXML(triples, true)
	case FormatJSON:
		return toJSONLD(triples)
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// subjectGroups orders triples by first appearance of their subject,
// preserving statement order within a subject.
func subjectGroups(triples []Triple) ([]Node, map[string][]Triple) {
	var order []Node
	groups := map[string][]Triple{}
	for _, t := range triples {
		key := t.Subject.key()
		if _, ok := groups[key]; !ok {
			order = append(order, t.Subject)
		}
		groups[key] = append(groups[key], t)
	}
	return order, groups
}

// toTurtle writes the triples in Turtle, one subject block per subject.
func toTurtle(triples []Triple) string {
	var sb strings.Builder

	prefixes := make([]string, 0, len(vocabulary.NamespacePrefixes))
	for prefix := range vocabulary.NamespacePrefixes {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, vocabulary.NamespacePrefixes[prefix]))
	}
	sb.WriteString("\n")

	order, groups := subjectGroups(triples)
	for _, subject := range order {
		group := groups[subject.key()]
		sb.WriteString(fmt.Sprintf("%s\n", turtleTerm(subject)))
		for i, t := range group {
			terminator := " ;"
			if i == len(group)-1 {
				terminator = " ."
			}
			sb.WriteString(fmt.Sprintf("    %s %s%s\n", turtleTerm(t.Predicate), turtleTerm(t.Object), terminator))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// toNTriples writes one triple per line.
func toNTriples(triples []Triple) string {
	var sb strings.Builder
	for _, t := range triples {
		sb.WriteString(fmt.Sprintf("%s %s %s .\n",
			turtleTerm(t.Subject), turtleTerm(t.Predicate), turtleTerm(t.Object)))
	}
	return sb.String()
}

// turtleTerm renders a node in Turtle/N-Triples syntax.
func turtleTerm(n Node) string {
	switch n.Kind {
	case KindLiteral:
		return fmt.Sprintf("\"%s\"", escapeLiteral(n.Value))
	case KindBlank:
		return "_:" + n.Value
	default:
		return "<" + n.Value + ">"
	}
}

func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

// qname splits a predicate IRI into a namespace and local name at the
// last '#' or '/'.
func qname(iri string) (string, string) {
	idx := strings.LastIndexAny(iri, "#/")
	if idx < 0 || idx == len(iri)-1 {
		return "", iri
	}
	return iri[:idx+1], iri[idx+1:]
}

// toRDFXML writes the triples as RDF/XML. In abbreviated form, subjects
// that only appear as the object of one statement (the synthetic
// URI+label pair nodes) are nested inside the referencing property
// element instead of being emitted as top-level descriptions.
func toRDFXML(triples []Triple, abbrev bool) (string, error) {
	order, groups := subjectGroups(triples)

	// Assign a prefix to every predicate namespace.
	nsPrefix := map[string]string{}
	for prefix, ns := range vocabulary.NamespacePrefixes {
		nsPrefix[ns] = prefix
	}
	generated := 0
	prefixFor := func(ns string) string {
		if prefix, ok := nsPrefix[ns]; ok {
			return prefix
		}
		generated++
		prefix := fmt.Sprintf("ns%d", generated)
		nsPrefix[ns] = prefix
		return prefix
	}

	type property struct {
		ns, local string
		object    Node
	}
	properties := map[string][]property{}
	referenceCount := map[string]int{}
	for _, subject := range order {
		for _, t := range groups[subject.key()] {
			if t.Predicate.Kind != KindIRI {
				return "", fmt.Errorf("predicate %s is not a URI", t.Predicate)
			}
			ns, local := qname(t.Predicate.Value)
			if ns == "" {
				return "", fmt.Errorf("predicate %s has no namespace", t.Predicate)
			}
			prefixFor(ns)
			properties[subject.key()] = append(properties[subject.key()], property{ns, local, t.Object})
			if t.Object.Kind != KindLiteral {
				referenceCount[t.Object.key()]++
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString("<rdf:RDF")

	namespaces := make([]string, 0, len(nsPrefix))
	for ns := range nsPrefix {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)
	for _, ns := range namespaces {
		buf.WriteString(fmt.Sprintf("\n    xmlns:%s=%q", nsPrefix[ns], ns))
	}
	buf.WriteString(">\n")

	inlined := map[string]bool{}
	written := map[string]bool{}
	var writeDescription func(subject Node, indent string) error
	writeDescription = func(subject Node, indent string) error {
		if id, ok := rdfNodeID(subject); ok {
			buf.WriteString(fmt.Sprintf("%s<rdf:Description rdf:nodeID=%q>\n", indent, id))
		} else {
			buf.WriteString(fmt.Sprintf("%s<rdf:Description rdf:about=%q>\n", indent, subject.Value))
		}
		for _, p := range properties[subject.key()] {
			tag := nsPrefix[p.ns] + ":" + p.local
			id, isNodeID := rdfNodeID(p.object)
			switch {
			case p.object.Kind == KindLiteral:
				buf.WriteString(fmt.Sprintf("%s  <%s>%s</%s>\n", indent, tag, xmlEscape(p.object.Value), tag))
			case abbrev && referenceCount[p.object.key()] == 1 && len(properties[p.object.key()]) > 0 &&
				!inlined[p.object.key()] && !written[p.object.key()]:
				inlined[p.object.key()] = true
				buf.WriteString(fmt.Sprintf("%s  <%s>\n", indent, tag))
				if err := writeDescription(p.object, indent+"    "); err != nil {
					return err
				}
				buf.WriteString(fmt.Sprintf("%s  </%s>\n", indent, tag))
			case isNodeID:
				buf.WriteString(fmt.Sprintf("%s  <%s rdf:nodeID=%q/>\n", indent, tag, id))
			default:
				buf.WriteString(fmt.Sprintf("%s  <%s rdf:resource=%q/>\n", indent, tag, p.object.Value))
			}
		}
		buf.WriteString(indent + "</rdf:Description>\n")
		return nil
	}

	for _, subject := range order {
		if inlined[subject.key()] {
			continue
		}
		if abbrev && referenceCount[subject.key()] == 1 {
			// Will be nested under its referencing statement.
			continue
		}
		written[subject.key()] = true
		if err := writeDescription(subject, "  "); err != nil {
			return "", err
		}
	}
	if abbrev {
		// Subjects in a reference cycle are single-referenced yet never
		// reached by inlining; emit any leftover at top level.
		for _, subject := range order {
			if inlined[subject.key()] || written[subject.key()] {
				continue
			}
			written[subject.key()] = true
			if err := writeDescription(subject, "  "); err != nil {
				return "", err
			}
		}
	}
	buf.WriteString("</rdf:RDF>\n")
	return buf.String(), nil
}

// rdfNodeID reports whether a node must serialize as an RDF/XML blank
// node reference rather than a resource URI, and yields its NCName safe
// node id. Synthetic graph-local identifiers carry a scheme no parser
// can resolve, so they travel as blank nodes and the projection
// re-reads them through their nested annotations either way.
func rdfNodeID(n Node) (string, bool) {
	switch {
	case n.Kind == KindBlank:
		return n.Value, true
	case n.Kind == KindIRI && strings.HasPrefix(n.Value, localIDScheme):
		return "local" + strings.TrimPrefix(n.Value, localIDScheme), true
	}
	return "", false
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// jsonldDocument mirrors the JSON-LD shape used for the json output
// format.
type jsonldDocument struct {
	Context map[string]any `json:"@context"`
	Graph   []jsonldNode   `json:"@graph"`
}

type jsonldNode struct {
	ID         string
	Properties map[string][]any
}

// MarshalJSON flattens the node's properties alongside its @id.
func (n jsonldNode) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(n.Properties)+1)
	m["@id"] = n.ID
	for k, values := range n.Properties {
		if len(values) == 1 {
			m[k] = values[0]
		} else {
			m[k] = values
		}
	}
	return json.Marshal(m)
}

// toJSONLD writes the triples as a JSON-LD graph document.
func toJSONLD(triples []Triple) (string, error) {
	doc := jsonldDocument{Context: map[string]any{}}
	for prefix, ns := range vocabulary.NamespacePrefixes {
		doc.Context[prefix] = ns
	}

	order, groups := subjectGroups(triples)
	for _, subject := range order {
		node := jsonldNode{ID: jsonldID(subject), Properties: map[string][]any{}}
		for _, t := range groups[subject.key()] {
			var value any
			if t.Object.Kind == KindLiteral {
				value = t.Object.Value
			} else {
				value = map[string]string{"@id": jsonldID(t.Object)}
			}
			node.Properties[t.Predicate.Value] = append(node.Properties[t.Predicate.Value], value)
		}
		doc.Graph = append(doc.Graph, node)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON-LD: %w", err)
	}
	return string(data) + "\n", nil
}

func jsonldID(n Node) string {
	if n.Kind == KindBlank {
		return "_:" + n.Value
	}
	return n.Value
}
