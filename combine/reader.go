package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/biosimulators/omexkit/archive"
	"github.com/biosimulators/omexkit/validation"
)

// Reader deserializes a COMBINE archive file into the content model,
// extracting its members and reading the manifest and description
// metadata. When TryPlainZip is set, files that are valid zips but not
// valid COMBINE archives are interpreted as single-listing plain zips.
type Reader struct {
	// TryPlainZip enables the plain-zip fallback when the manifest is
	// missing or unreadable.
	TryPlainZip bool
}

// NewReader creates a COMBINE archive reader with the plain-zip
// fallback enabled.
func NewReader() *Reader {
	return &Reader{TryPlainZip: true}
}

// Run reads the COMBINE archive at inFile, extracting its members into
// outDir. Problems with the description metadata of an otherwise valid
// archive are returned as error findings alongside the archive; the
// plain-zip fallback applies only when the zip or the manifest cannot
// be read. An unreadable file is an error naming the file.
func (r *Reader) Run(inFile, outDir string) (*Archive, []validation.Finding, []validation.Finding, error) {
	a, errors, warnings, err := r.readCombine(inFile, outDir)
	if err == nil {
		return a, errors, warnings, nil
	}

	if r.TryPlainZip {
		a, zipErr := NewZipReader().Run(inFile, outDir)
		if zipErr == nil {
			warnings = append(warnings, validation.New(
				"`%s` is not a valid COMBINE/OMEX archive; it was interpreted as a plain zip archive", inFile))
			return a, nil, warnings, nil
		}
	}

	return nil, nil, nil, fmt.Errorf("`%s` is not a valid COMBINE/OMEX archive: %w", inFile, err)
}

func (r *Reader) readCombine(inFile, outDir string) (*Archive, []validation.Finding, []validation.Finding, error) {
	if _, err := archive.NewReader().Run(inFile, outDir); err != nil {
		return nil, nil, nil, err
	}

	manifestPath := filepath.Join(outDir, ManifestFilename)
	if _, err := os.Stat(manifestPath); err != nil {
		return nil, nil, nil, fmt.Errorf("archive has no %s", ManifestFilename)
	}

	contents, err := readManifest(manifestPath)
	if err != nil {
		return nil, nil, nil, err
	}
	a := NewArchive(contents...)

	errors, warnings := r.readMetadata(a, outDir)
	return a, errors, warnings, nil
}

// readMetadata attaches description metadata from the archive's
// description file, if one is listed, to the archive and its contents.
// Metadata problems never fail the read; they are returned as findings
// so the declared contents survive.
func (r *Reader) readMetadata(a *Archive, outDir string) ([]validation.Finding, []validation.Finding) {
	var metadataLocation string
	for _, c := range a.Contents {
		if MatchesFormat(c.Format, FormatOMEXMetadata) {
			metadataLocation = c.Location
			break
		}
	}
	if metadataLocation == "" {
		return nil, nil
	}

	path := filepath.Join(outDir, filepath.FromSlash(metadataLocation))
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	descriptions, errors, warnings := readDescriptions(path)
	if len(errors) > 0 {
		return []validation.Finding{validation.Group(
			fmt.Sprintf("`%s` is invalid", metadataLocation), errors)}, warnings
	}

	if desc, ok := descriptions["."]; ok {
		a.Description = desc.text
		a.Authors = desc.authors
		a.Created = desc.created
		a.Updated = desc.updated()
	}
	for _, c := range a.Contents {
		if desc, ok := descriptions[normalizeLocation(c.Location)]; ok {
			c.Description = desc.text
			c.Authors = desc.authors
			c.Created = desc.created
			c.Updated = desc.updated()
		}
	}
	return warnings, nil
}

// ZipReader interprets a plain zip file as a COMBINE archive with one
// unclassified content entry per member. Members with a `.sedml`
// extension are assigned the SED-ML format; no other inference is done.
type ZipReader struct{}

// NewZipReader creates a plain-zip COMBINE reader.
func NewZipReader() *ZipReader {
	return &ZipReader{}
}

// Run reads the zip at inFile, extracting its members into outDir.
func (z *ZipReader) Run(inFile, outDir string) (*Archive, error) {
	unpacked, err := archive.NewReader().Run(inFile, outDir)
	if err != nil {
		return nil, err
	}

	a := NewArchive()
	for _, f := range unpacked.Files {
		content := &Content{Location: f.ArchivePath}
		if strings.EqualFold(filepath.Ext(f.ArchivePath), ".sedml") {
			content.Format = string(FormatSEDML)
		}
		a.Contents = append(a.Contents, content)
	}
	return a, nil
}
