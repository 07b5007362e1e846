// Package vocabulary defines the fixed OMEX Metadata predicate vocabulary
// and the predicate-type table that drives both directions of the
// BioSimulations schema projection.
//
// The table is the single source of truth: the metadata reader uses it to
// classify incoming triples and enforce cardinality, and the metadata
// writer uses it to decide which triples to emit. Neither direction keeps
// its own copy of these declarations.
package vocabulary

// Attribute names of the BioSimulations metadata record.
const (
	AttrTitle        = "title"
	AttrAbstract     = "abstract"
	AttrKeywords     = "keywords"
	AttrDescription  = "description"
	AttrThumbnails   = "thumbnails"
	AttrSources      = "sources"
	AttrTaxa         = "taxa"
	AttrEncodes      = "encodes"
	AttrPredecessors = "predecessors"
	AttrSuccessors   = "successors"
	AttrSeeAlso      = "see_also"
	AttrIdentifiers  = "identifiers"
	AttrCitations    = "citations"
	AttrCreators     = "creators"
	AttrContributors = "contributors"
	AttrLicense      = "license"
	AttrFunders      = "funders"
	AttrCreated      = "created"
	AttrModified     = "modified"
	AttrOther        = "other"
)

// PredicateType declares how one predicate maps into the BioSimulations
// schema: the attribute it populates, whether multiple statements are
// allowed, whether the value carries a URI and/or a human label, and
// whether the attribute is required on an archive-describing record.
type PredicateType struct {
	// Predicate is the full predicate IRI.
	Predicate string

	// Attribute is the schema attribute the predicate populates.
	Attribute string

	// MultipleAllowed permits more than one statement per subject.
	MultipleAllowed bool

	// HasURI indicates the value carries a resolvable URI.
	HasURI bool

	// HasLabel indicates the value carries a human-readable label.
	HasLabel bool

	// Required marks attributes that must be present on the record
	// describing the archive itself.
	Required bool
}

// PredicateTypes is the fixed predicate-type table, indexed by predicate
// IRI.
var PredicateTypes = map[string]PredicateType{
	DcTitle: {
		Predicate:       DcTitle,
		Attribute:       AttrTitle,
		MultipleAllowed: false,
		HasURI:          false,
		HasLabel:        true,
		Required:        true,
	},
	DcAbstract: {
		Predicate:       DcAbstract,
		Attribute:       AttrAbstract,
		MultipleAllowed: false,
		HasURI:          false,
		HasLabel:        true,
	},
	PrismKeyword: {
		Predicate:       PrismKeyword,
		Attribute:       AttrKeywords,
		MultipleAllowed: true,
		HasURI:          false,
		HasLabel:        true,
	},
	DcDescription: {
		Predicate:       DcDescription,
		Attribute:       AttrDescription,
		MultipleAllowed: false,
		HasURI:          false,
		HasLabel:        true,
	},
	CollexThumbnail: {
		Predicate:       CollexThumbnail,
		Attribute:       AttrThumbnails,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        false,
	},
	DcSource: {
		Predicate:       DcSource,
		Attribute:       AttrSources,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	BqbiolHasTaxon: {
		Predicate:       BqbiolHasTaxon,
		Attribute:       AttrTaxa,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	BqbiolEncodes: {
		Predicate:       BqbiolEncodes,
		Attribute:       AttrEncodes,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	BqmodelIsDerivedFrom: {
		Predicate:       BqmodelIsDerivedFrom,
		Attribute:       AttrPredecessors,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	ScoroSuccessor: {
		Predicate:       ScoroSuccessor,
		Attribute:       AttrSuccessors,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	RdfsSeeAlso: {
		Predicate:       RdfsSeeAlso,
		Attribute:       AttrSeeAlso,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	BqmodelIs: {
		Predicate:       BqmodelIs,
		Attribute:       AttrIdentifiers,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	BqmodelIsDescribedBy: {
		Predicate:       BqmodelIsDescribedBy,
		Attribute:       AttrCitations,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	DcReferences: {
		Predicate:       DcReferences,
		Attribute:       AttrCitations,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	DcCreator: {
		Predicate:       DcCreator,
		Attribute:       AttrCreators,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	DcContributor: {
		Predicate:       DcContributor,
		Attribute:       AttrContributors,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	DcLicense: {
		Predicate:       DcLicense,
		Attribute:       AttrLicense,
		MultipleAllowed: false,
		HasURI:          true,
		HasLabel:        true,
	},
	ScoroFunder: {
		Predicate:       ScoroFunder,
		Attribute:       AttrFunders,
		MultipleAllowed: true,
		HasURI:          true,
		HasLabel:        true,
	},
	DcCreated: {
		Predicate:       DcCreated,
		Attribute:       AttrCreated,
		MultipleAllowed: false,
		HasURI:          false,
		HasLabel:        true,
	},
	DcModified: {
		Predicate:       DcModified,
		Attribute:       AttrModified,
		MultipleAllowed: true,
		HasURI:          false,
		HasLabel:        true,
	},
}

// ByAttribute returns the predicate types populating an attribute. Most
// attributes are populated by one predicate; citations accepts two.
func ByAttribute(attribute string) []PredicateType {
	var out []PredicateType
	for _, pt := range PredicateTypes {
		if pt.Attribute == attribute {
			out = append(out, pt)
		}
	}
	return out
}

// AttributeOrder fixes the emission order of attributes during
// serialization so output is deterministic.
var AttributeOrder = []string{
	AttrTitle,
	AttrAbstract,
	AttrKeywords,
	AttrDescription,
	AttrThumbnails,
	AttrSources,
	AttrTaxa,
	AttrEncodes,
	AttrPredecessors,
	AttrSuccessors,
	AttrSeeAlso,
	AttrIdentifiers,
	AttrCitations,
	AttrCreators,
	AttrContributors,
	AttrLicense,
	AttrFunders,
	AttrCreated,
	AttrModified,
}

// primaryByAttribute disambiguates attributes populated by more than one
// predicate; the writer emits the primary predicate only.
var primaryByAttribute = map[string]string{
	AttrCitations: BqmodelIsDescribedBy,
}

// Primary returns the predicate type the writer emits for an attribute.
func Primary(attribute string) (PredicateType, bool) {
	if pred, ok := primaryByAttribute[attribute]; ok {
		return PredicateTypes[pred], true
	}
	types := ByAttribute(attribute)
	if len(types) != 1 {
		return PredicateType{}, false
	}
	return types[0], true
}

// LabelPredicates are recognized as label sub-statements on nested nodes.
var LabelPredicates = map[string]bool{
	FoafName:  true,
	RdfsLabel: true,
	DcTitle:   true,
}

// IdentifierPredicates are recognized as identifier sub-statements on
// nested nodes.
var IdentifierPredicates = map[string]bool{
	DcIdentifier: true,
}
