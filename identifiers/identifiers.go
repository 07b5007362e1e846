// Package identifiers checks identifiers.org URLs against a registry of
// known namespaces and their local-identifier patterns. The metadata
// validator delegates external-identifier checks here.
package identifiers

import (
	"fmt"
	"regexp"
	"strings"
)

// resolverURL matches identifiers.org resolver URLs and captures the
// namespace prefix and local identifier.
var resolverURL = regexp.MustCompile(`^https?://identifiers\.org/([^/:]+)[/:](.+)$`)

// Namespace describes one registered identifiers.org namespace.
type Namespace struct {
	// Prefix is the namespace prefix, e.g. "taxonomy".
	Prefix string

	// Name is the display name of the registry.
	Name string

	// Pattern validates local identifiers within the namespace.
	Pattern *regexp.Regexp
}

// Registry lists the namespaces the toolkit recognizes, indexed by
// prefix. The patterns follow the identifiers.org registrations.
var Registry = map[string]Namespace{
	"taxonomy": {
		Prefix:  "taxonomy",
		Name:    "NCBI Taxonomy",
		Pattern: regexp.MustCompile(`^\d+$`),
	},
	"ncbi.taxonomy": {
		Prefix:  "ncbi.taxonomy",
		Name:    "NCBI Taxonomy",
		Pattern: regexp.MustCompile(`^\d+$`),
	},
	"doi": {
		Prefix:  "doi",
		Name:    "Digital Object Identifier",
		Pattern: regexp.MustCompile(`^10\.\S+/\S+$`),
	},
	"pubmed": {
		Prefix:  "pubmed",
		Name:    "PubMed",
		Pattern: regexp.MustCompile(`^\d+$`),
	},
	"biomodels.db": {
		Prefix:  "biomodels.db",
		Name:    "BioModels Database",
		Pattern: regexp.MustCompile(`^(BIOMD|MODEL)\d{10}$|^BMID\d{12}$`),
	},
	"go": {
		Prefix:  "go",
		Name:    "Gene Ontology",
		Pattern: regexp.MustCompile(`^(GO:)?\d{7}$`),
	},
	"kegg.pathway": {
		Prefix:  "kegg.pathway",
		Name:    "KEGG Pathway",
		Pattern: regexp.MustCompile(`^\w{2,4}\d{5}$`),
	},
	"uniprot": {
		Prefix:  "uniprot",
		Name:    "UniProt Knowledgebase",
		Pattern: regexp.MustCompile(`^([A-NR-Z][0-9]([A-Z][A-Z0-9]{2}[0-9]){1,2})|([OPQ][0-9][A-Z0-9]{3}[0-9])(\.\d+)?$`),
	},
	"ncbi.gene": {
		Prefix:  "ncbi.gene",
		Name:    "NCBI Gene",
		Pattern: regexp.MustCompile(`^\d+$`),
	},
	"chebi": {
		Prefix:  "chebi",
		Name:    "Chemical Entities of Biological Interest",
		Pattern: regexp.MustCompile(`^(CHEBI:)?\d+$`),
	},
	"efo": {
		Prefix:  "efo",
		Name:    "Experimental Factor Ontology",
		Pattern: regexp.MustCompile(`^\d{7}$`),
	},
	"edam": {
		Prefix:  "edam",
		Name:    "EDAM Ontology",
		Pattern: regexp.MustCompile(`^(data|topic|operation|format)_\d{4}$`),
	},
	"kisao": {
		Prefix:  "kisao",
		Name:    "Kinetic Simulation Algorithm Ontology",
		Pattern: regexp.MustCompile(`^(KISAO[_:])?\d{7}$`),
	},
	"spdx": {
		Prefix:  "spdx",
		Name:    "SPDX License List",
		Pattern: regexp.MustCompile(`^[0-9A-Za-z\-.+]+$`),
	},
	"orcid": {
		Prefix:  "orcid",
		Name:    "ORCID",
		Pattern: regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`),
	},
	"arxiv": {
		Prefix:  "arxiv",
		Name:    "arXiv",
		Pattern: regexp.MustCompile(`^(\w+(-\w+)?(\.\w+)?)?\d{4,7}(\.\d+(v\d+)?)?$`),
	},
}

// IsResolverURL reports whether the URL points at the identifiers.org
// resolver, returning the namespace prefix and local identifier.
func IsResolverURL(url string) (prefix, local string, ok bool) {
	m := resolverURL.FindStringSubmatch(url)
	if m == nil {
		return "", "", false
	}
	return strings.ToLower(m[1]), m[2], true
}

// Validate checks an identifiers.org URL against the registry. A URL in
// an unregistered namespace or with a malformed local identifier yields
// an error; non-resolver URLs are not this package's concern and yield
// ok=false with no error.
func Validate(url string) (bool, error) {
	prefix, local, ok := IsResolverURL(url)
	if !ok {
		return false, nil
	}

	ns, known := Registry[prefix]
	if !known {
		return true, fmt.Errorf("`%s` is not a registered identifiers.org namespace", prefix)
	}
	if !ns.Pattern.MatchString(local) {
		return true, fmt.Errorf("`%s` is not a valid identifier in namespace `%s` (%s)", local, prefix, ns.Name)
	}
	return true, nil
}
