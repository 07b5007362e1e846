package combine

import "regexp"

// ContentFormat is the canonical URI identifying the MIME/spec type of an
// archive content entry.
type ContentFormat string

// Canonical format URIs for the content types the toolkit understands.
const (
	FormatAntimony     ContentFormat = "http://purl.org/NET/mediatypes/text/x-antimony"
	FormatBMP          ContentFormat = "http://purl.org/NET/mediatypes/image/bmp"
	FormatBNGL         ContentFormat = "http://purl.org/NET/mediatypes/text/bngl+plain"
	FormatBioPAX       ContentFormat = "http://identifiers.org/combine.specifications/biopax"
	FormatCellML       ContentFormat = "http://identifiers.org/combine.specifications/cellml"
	FormatCopasiML     ContentFormat = "http://purl.org/NET/mediatypes/application/x-copasi"
	FormatCSV          ContentFormat = "http://purl.org/NET/mediatypes/text/csv"
	FormatDOCX         ContentFormat = "http://purl.org/NET/mediatypes/application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	FormatGIF          ContentFormat = "http://purl.org/NET/mediatypes/image/gif"
	FormatGINML        ContentFormat = "http://purl.org/NET/mediatypes/application/ginml+xml"
	FormatHDF5         ContentFormat = "http://purl.org/NET/mediatypes/application/x-hdf"
	FormatHOC          ContentFormat = "http://purl.org/NET/mediatypes/text/x-hoc"
	FormatHTML         ContentFormat = "http://purl.org/NET/mediatypes/text/html"
	FormatICO          ContentFormat = "http://purl.org/NET/mediatypes/image/x-icon"
	FormatIPythonNB    ContentFormat = "http://purl.org/NET/mediatypes/application/x-ipynb+json"
	FormatJPEG         ContentFormat = "http://purl.org/NET/mediatypes/image/jpeg"
	FormatJSON         ContentFormat = "http://purl.org/NET/mediatypes/application/json"
	FormatKISAO        ContentFormat = "http://identifiers.org/combine.specifications/kisao"
	FormatLEMS         ContentFormat = "http://purl.org/NET/mediatypes/application/lems+xml"
	FormatMarkdown     ContentFormat = "http://purl.org/NET/mediatypes/text/markdown"
	FormatMATLAB       ContentFormat = "http://purl.org/NET/mediatypes/text/x-matlab"
	FormatMorpheusML   ContentFormat = "http://purl.org/NET/mediatypes/application/morpheusml+xml"
	FormatNeuroML      ContentFormat = "http://identifiers.org/combine.specifications/neuroml"
	FormatNMODL        ContentFormat = "http://purl.org/NET/mediatypes/text/x-nmodl"
	FormatOctave       ContentFormat = "http://purl.org/NET/mediatypes/text/x-octave"
	FormatOMEX         ContentFormat = "http://identifiers.org/combine.specifications/omex"
	FormatOMEXManifest ContentFormat = "http://identifiers.org/combine.specifications/omex-manifest"
	FormatOMEXMetadata ContentFormat = "http://identifiers.org/combine.specifications/omex-metadata"
	FormatOWL          ContentFormat = "http://purl.org/NET/mediatypes/application/rdf+xml"
	FormatPDF          ContentFormat = "http://purl.org/NET/mediatypes/application/pdf"
	FormatPharmML      ContentFormat = "http://purl.org/NET/mediatypes/application/pharmml+xml"
	FormatPNG          ContentFormat = "http://purl.org/NET/mediatypes/image/png"
	FormatPostScript   ContentFormat = "http://purl.org/NET/mediatypes/application/postscript"
	FormatPython       ContentFormat = "http://purl.org/NET/mediatypes/application/x-python-code"
	FormatR            ContentFormat = "http://purl.org/NET/mediatypes/text/x-r"
	FormatRBA          ContentFormat = "http://purl.org/NET/mediatypes/application/rba+zip"
	FormatSBGN         ContentFormat = "http://identifiers.org/combine.specifications/sbgn"
	FormatSBML         ContentFormat = "http://identifiers.org/combine.specifications/sbml"
	FormatSBOL         ContentFormat = "http://identifiers.org/combine.specifications/sbol"
	FormatSBOLVisual   ContentFormat = "http://identifiers.org/combine.specifications/sbol-visual"
	FormatScilab       ContentFormat = "http://purl.org/NET/mediatypes/application/x-scilab"
	FormatSEDML        ContentFormat = "http://identifiers.org/combine.specifications/sed-ml"
	FormatSLI          ContentFormat = "http://purl.org/NET/mediatypes/text/x-sli"
	FormatSmoldyn      ContentFormat = "http://purl.org/NET/mediatypes/text/smoldyn+plain"
	FormatSVG          ContentFormat = "http://purl.org/NET/mediatypes/image/svg+xml"
	FormatText         ContentFormat = "http://purl.org/NET/mediatypes/text/plain"
	FormatTIFF         ContentFormat = "http://purl.org/NET/mediatypes/image/tiff"
	FormatTSV          ContentFormat = "http://purl.org/NET/mediatypes/text/tab-separated-values"
	FormatVCML         ContentFormat = "http://purl.org/NET/mediatypes/application/vcml+xml"
	FormatVega         ContentFormat = "http://purl.org/NET/mediatypes/application/vnd.vega.v5+json"
	FormatVegaLite     ContentFormat = "http://purl.org/NET/mediatypes/application/vnd.vegalite.v3+json"
	FormatWEBP         ContentFormat = "http://purl.org/NET/mediatypes/image/webp"
	FormatXLSX         ContentFormat = "http://purl.org/NET/mediatypes/application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FormatXML          ContentFormat = "http://purl.org/NET/mediatypes/application/xml"
	FormatXPP          ContentFormat = "http://purl.org/NET/mediatypes/text/x-xpp"
	FormatYAML         ContentFormat = "http://purl.org/NET/mediatypes/application/x-yaml"
	FormatZIP          ContentFormat = "http://purl.org/NET/mediatypes/application/zip"
	FormatOther        ContentFormat = "http://purl.org/NET/mediatypes/application/octet-stream"
)

// mediaTypePattern builds the permissive pattern for a purl.org media
// type URI: http or https, exact media type.
func mediaTypePattern(mediaType string) *regexp.Regexp {
	return regexp.MustCompile(`^https?://purl\.org/NET/mediatypes/` + regexp.QuoteMeta(mediaType) + `$`)
}

// specPattern builds the permissive pattern for a combine.specifications
// URI: http or https, optional version suffix after a dot (producers emit
// e.g. ".../sbml.level-3.version-1").
func specPattern(spec string) *regexp.Regexp {
	return regexp.MustCompile(`^https?://identifiers\.org/combine\.specifications/` + regexp.QuoteMeta(spec) + `($|\.)`)
}

// ContentFormatPatterns maps each canonical format to a deliberately more
// permissive pattern. Format-sensitive logic must match against these
// patterns, never exact-compare against the canonical URIs, because
// producers in the wild emit minor URI variants.
var ContentFormatPatterns = map[ContentFormat]*regexp.Regexp{
	FormatAntimony:     mediaTypePattern("text/x-antimony"),
	FormatBMP:          mediaTypePattern("image/bmp"),
	FormatBNGL:         mediaTypePattern("text/bngl+plain"),
	FormatBioPAX:       specPattern("biopax"),
	FormatCellML:       specPattern("cellml"),
	FormatCopasiML:     mediaTypePattern("application/x-copasi"),
	FormatCSV:          mediaTypePattern("text/csv"),
	FormatDOCX:         mediaTypePattern("application/vnd.openxmlformats-officedocument.wordprocessingml.document"),
	FormatGIF:          mediaTypePattern("image/gif"),
	FormatGINML:        mediaTypePattern("application/ginml+xml"),
	FormatHDF5:         regexp.MustCompile(`^https?://purl\.org/NET/mediatypes/application/x-hdf5?$`),
	FormatHOC:          mediaTypePattern("text/x-hoc"),
	FormatHTML:         mediaTypePattern("text/html"),
	FormatICO:          regexp.MustCompile(`^https?://purl\.org/NET/mediatypes/image/(x-icon|vnd\.microsoft\.icon)$`),
	FormatIPythonNB:    mediaTypePattern("application/x-ipynb+json"),
	FormatJPEG:         mediaTypePattern("image/jpeg"),
	FormatJSON:         mediaTypePattern("application/json"),
	FormatKISAO:        specPattern("kisao"),
	FormatLEMS:         mediaTypePattern("application/lems+xml"),
	FormatMarkdown:     mediaTypePattern("text/markdown"),
	FormatMATLAB:       mediaTypePattern("text/x-matlab"),
	FormatMorpheusML:   mediaTypePattern("application/morpheusml+xml"),
	FormatNeuroML:      specPattern("neuroml"),
	FormatNMODL:        mediaTypePattern("text/x-nmodl"),
	FormatOctave:       mediaTypePattern("text/x-octave"),
	FormatOMEX:         specPattern("omex"),
	FormatOMEXManifest: specPattern("omex-manifest"),
	FormatOMEXMetadata: specPattern("omex-metadata"),
	FormatOWL:          mediaTypePattern("application/rdf+xml"),
	FormatPDF:          mediaTypePattern("application/pdf"),
	FormatPharmML:      mediaTypePattern("application/pharmml+xml"),
	FormatPNG:          mediaTypePattern("image/png"),
	FormatPostScript:   mediaTypePattern("application/postscript"),
	FormatPython:       mediaTypePattern("application/x-python-code"),
	FormatR:            mediaTypePattern("text/x-r"),
	FormatRBA:          mediaTypePattern("application/rba+zip"),
	FormatSBGN:         specPattern("sbgn"),
	FormatSBML:         specPattern("sbml"),
	FormatSBOL:         specPattern("sbol"),
	FormatSBOLVisual:   specPattern("sbol-visual"),
	FormatScilab:       mediaTypePattern("application/x-scilab"),
	FormatSEDML:        regexp.MustCompile(`^https?://identifiers\.org/combine\.specifications/sed\-?ml($|\.)`),
	FormatSLI:          mediaTypePattern("text/x-sli"),
	FormatSmoldyn:      mediaTypePattern("text/smoldyn+plain"),
	FormatSVG:          mediaTypePattern("image/svg+xml"),
	FormatText:         mediaTypePattern("text/plain"),
	FormatTIFF:         mediaTypePattern("image/tiff"),
	FormatTSV:          mediaTypePattern("text/tab-separated-values"),
	FormatVCML:         mediaTypePattern("application/vcml+xml"),
	FormatVega:         regexp.MustCompile(`^https?://purl\.org/NET/mediatypes/application/vnd\.vega\.v5\+json$`),
	FormatVegaLite:     regexp.MustCompile(`^https?://purl\.org/NET/mediatypes/application/vnd\.vegalite\.v[0-9]+\+json$`),
	FormatWEBP:         mediaTypePattern("image/webp"),
	FormatXLSX:         mediaTypePattern("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"),
	FormatXML:          mediaTypePattern("application/xml"),
	FormatXPP:          mediaTypePattern("text/x-xpp"),
	FormatYAML:         mediaTypePattern("application/x-yaml"),
	FormatZIP:          mediaTypePattern("application/zip"),
	FormatOther:        mediaTypePattern("application/octet-stream"),
}

// MatchesFormat reports whether a format URI from an archive matches the
// permissive pattern for a known format.
func MatchesFormat(uri string, format ContentFormat) bool {
	pattern, ok := ContentFormatPatterns[format]
	if !ok {
		return false
	}
	return pattern.MatchString(uri)
}

// ClassifyFormat resolves a format URI to the known format whose pattern
// it matches, if any.
func ClassifyFormat(uri string) (ContentFormat, bool) {
	for format, pattern := range ContentFormatPatterns {
		if pattern.MatchString(uri) {
			return format, true
		}
	}
	return "", false
}

// ThumbnailFormats are the image formats accepted for metadata
// thumbnails.
var ThumbnailFormats = []ContentFormat{
	FormatGIF,
	FormatJPEG,
	FormatPNG,
	FormatWEBP,
}

// IsThumbnailFormat reports whether a format URI matches one of the
// accepted thumbnail image formats.
func IsThumbnailFormat(uri string) bool {
	for _, format := range ThumbnailFormats {
		if MatchesFormat(uri, format) {
			return true
		}
	}
	return false
}
