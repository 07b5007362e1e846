package combine

import (
	"encoding/xml"
	"fmt"
	"os"
	"path"
	"strings"
)

// manifestNamespace is the XML namespace of the OMEX manifest schema.
const manifestNamespace = "http://identifiers.org/combine.specifications/omex-manifest"

// ManifestFilename is the fixed name of the manifest inside an archive.
const ManifestFilename = "manifest.xml"

type omexManifest struct {
	XMLName xml.Name        `xml:"omexManifest"`
	XMLNS   string          `xml:"xmlns,attr"`
	Entries []manifestEntry `xml:"content"`
}

type manifestEntry struct {
	Location string `xml:"location,attr"`
	Format   string `xml:"format,attr"`
	Master   bool   `xml:"master,attr,omitempty"`
}

// normalizeLocation strips the leading "./" producers commonly prepend to
// manifest locations.
func normalizeLocation(location string) string {
	return strings.TrimPrefix(path.Clean(location), "./")
}

// isSelfEntry reports whether a manifest entry describes the archive or
// the manifest itself rather than a content file.
func isSelfEntry(location string) bool {
	normalized := normalizeLocation(location)
	return normalized == "." || normalized == ManifestFilename
}

// readManifest parses the manifest at filename into content entries,
// dropping the archive/manifest self-entries.
func readManifest(filename string) ([]*Content, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m omexManifest
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("`%s` is not a valid OMEX manifest: %w", filename, err)
	}

	var contents []*Content
	for _, entry := range m.Entries {
		if isSelfEntry(entry.Location) {
			continue
		}
		contents = append(contents, &Content{
			Location: normalizeLocation(entry.Location),
			Format:   entry.Format,
			Master:   entry.Master,
		})
	}
	return contents, nil
}

// writeManifest serializes the archive's content listing, prepending the
// archive and manifest self-entries, to filename.
func writeManifest(archive *Archive, filename string, withMetadata bool) error {
	m := omexManifest{
		XMLNS: manifestNamespace,
		Entries: []manifestEntry{
			{Location: ".", Format: string(FormatOMEX)},
			{Location: "./" + ManifestFilename, Format: string(FormatOMEXManifest)},
		},
	}
	if withMetadata {
		m.Entries = append(m.Entries, manifestEntry{
			Location: "./" + MetadataFilename,
			Format:   string(FormatOMEXMetadata),
		})
	}
	for _, c := range archive.Contents {
		m.Entries = append(m.Entries, manifestEntry{
			Location: "./" + normalizeLocation(c.Location),
			Format:   c.Format,
			Master:   c.Master,
		})
	}

	data, err := xml.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return os.WriteFile(filename, []byte(xml.Header+string(data)+"\n"), 0644)
}
