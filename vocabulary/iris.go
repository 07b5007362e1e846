package vocabulary

// Standard ontology IRI constants used by the OMEX Metadata vocabulary.
const (
	// DcTitle is the Dublin Core title property.
	DcTitle = "http://purl.org/dc/terms/title"

	// DcAbstract is the Dublin Core abstract property.
	DcAbstract = "http://purl.org/dc/terms/abstract"

	// DcDescription is the Dublin Core description property.
	DcDescription = "http://purl.org/dc/terms/description"

	// DcSource is the Dublin Core source property.
	DcSource = "http://purl.org/dc/terms/source"

	// DcCreator is the Dublin Core creator property.
	DcCreator = "http://purl.org/dc/terms/creator"

	// DcContributor is the Dublin Core contributor property.
	DcContributor = "http://purl.org/dc/terms/contributor"

	// DcLicense is the Dublin Core license property.
	DcLicense = "http://purl.org/dc/terms/license"

	// DcCreated is the Dublin Core created property.
	DcCreated = "http://purl.org/dc/terms/created"

	// DcModified is the Dublin Core modified property.
	DcModified = "http://purl.org/dc/terms/modified"

	// DcReferences is the Dublin Core references property.
	DcReferences = "http://purl.org/dc/terms/references"

	// DcIdentifier is the Dublin Core identifier property, used on nested
	// nodes to attach a resolvable URI to a labelled value.
	DcIdentifier = "http://purl.org/dc/elements/1.1/identifier"
)

// PRISM publishing vocabulary.
const (
	// PrismKeyword is the PRISM keyword property.
	PrismKeyword = "http://prismstandard.org/namespaces/basic/2.0/keyword"
)

// BioModels.net qualifiers.
const (
	// BqbiolHasTaxon links a model to the taxon it describes.
	BqbiolHasTaxon = "http://biomodels.net/biology-qualifiers/hasTaxon"

	// BqbiolEncodes links a model to the biology it encodes.
	BqbiolEncodes = "http://biomodels.net/biology-qualifiers/encodes"

	// BqmodelIs links a model to its identifier in a registry.
	BqmodelIs = "http://biomodels.net/model-qualifiers/is"

	// BqmodelIsDerivedFrom links a model to the model it was derived from.
	BqmodelIsDerivedFrom = "http://biomodels.net/model-qualifiers/isDerivedFrom"

	// BqmodelIsDescribedBy links a model to a publication describing it.
	BqmodelIsDescribedBy = "http://biomodels.net/model-qualifiers/isDescribedBy"
)

// SCoRO scholarly contributions and roles ontology.
const (
	// ScoroSuccessor links a work to its successor.
	ScoroSuccessor = "http://purl.org/spar/scoro/successor"

	// ScoroFunder links a work to its funder.
	ScoroFunder = "http://purl.org/spar/scoro/funder"
)

// RDF core vocabularies.
const (
	// RdfsSeeAlso points to additional information about a resource.
	RdfsSeeAlso = "http://www.w3.org/2000/01/rdf-schema#seeAlso"

	// RdfsLabel is the human-readable label of a resource.
	RdfsLabel = "http://www.w3.org/2000/01/rdf-schema#label"
)

// vCard and date vocabulary used by archive-description metadata
// (creator names and creation/modification timestamps).
const (
	// VCardHasName links a person to their structured name.
	VCardHasName = "http://www.w3.org/2006/vcard/ns#hasName"

	// VCardFamilyName is the family-name component of a structured name.
	VCardFamilyName = "http://www.w3.org/2006/vcard/ns#family-name"

	// VCardGivenName is the given-name component of a structured name.
	VCardGivenName = "http://www.w3.org/2006/vcard/ns#given-name"

	// DcW3CDTF carries a W3C date-time literal on a created/modified node.
	DcW3CDTF = "http://purl.org/dc/terms/W3CDTF"
)

// Miscellaneous vocabularies.
const (
	// CollexThumbnail links a resource to a thumbnail image.
	CollexThumbnail = "http://www.collex.org/schema#thumbnail"

	// FoafName is the FOAF name property, used on nested nodes to attach
	// a human label to a person or resource.
	FoafName = "http://xmlns.com/foaf/0.1/name"
)

// NamespacePrefixes maps short prefixes to the namespace IRIs of the
// vocabulary. Serializers use these for Turtle prefix declarations and
// RDF/XML qualified names.
var NamespacePrefixes = map[string]string{
	"dcterms":  "http://purl.org/dc/terms/",
	"dc":       "http://purl.org/dc/elements/1.1/",
	"prism":    "http://prismstandard.org/namespaces/basic/2.0/",
	"bqbiol":   "http://biomodels.net/biology-qualifiers/",
	"bqmodel":  "http://biomodels.net/model-qualifiers/",
	"scoro":    "http://purl.org/spar/scoro/",
	"rdfs":     "http://www.w3.org/2000/01/rdf-schema#",
	"rdf":      "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"collex":   "http://www.collex.org/schema#",
	"vcard":    "http://www.w3.org/2006/vcard/ns#",
	"foaf":     "http://xmlns.com/foaf/0.1/",
	"xsd":      "http://www.w3.org/2001/XMLSchema#",
}
