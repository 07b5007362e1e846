package combine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/biosimulators/omexkit/archive"
)

// Writer serializes the content model into a COMBINE archive file: every
// listed content plus a generated manifest and, when any description
// metadata is present, a description metadata file.
type Writer struct{}

// NewWriter creates a COMBINE archive writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Run writes the archive to outFile. Each content entry's file is read
// from inDir at its declared location. Any object carrying description
// metadata must have its Updated timestamp set; the description format
// has no representation for a missing modification date.
func (w *Writer) Run(a *Archive, inDir, outFile string) error {
	if err := w.checkUpdated(a); err != nil {
		return err
	}

	staging, err := os.MkdirTemp("", "omexkit-"+uuid.NewString())
	if err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	files := archive.New()
	for _, c := range a.Contents {
		location := normalizeLocation(c.Location)
		local := filepath.Join(inDir, filepath.FromSlash(location))
		if _, err := os.Stat(local); err != nil {
			return fmt.Errorf("content `%s` does not exist in `%s`", c.Location, inDir)
		}
		files.Files = append(files.Files, &archive.File{
			LocalPath:   local,
			ArchivePath: location,
		})
	}

	withMetadata := w.hasMetadata(a)
	manifestPath := filepath.Join(staging, ManifestFilename)
	if err := writeManifest(a, manifestPath, withMetadata); err != nil {
		return err
	}
	files.Files = append(files.Files, &archive.File{
		LocalPath:   manifestPath,
		ArchivePath: ManifestFilename,
	})

	if withMetadata {
		metadataPath := filepath.Join(staging, MetadataFilename)
		if err := writeMetadata(a, metadataPath); err != nil {
			return fmt.Errorf("write description metadata: %w", err)
		}
		files.Files = append(files.Files, &archive.File{
			LocalPath:   metadataPath,
			ArchivePath: MetadataFilename,
		})
	}

	return archive.NewWriter().Run(files, outFile)
}

// hasMetadata reports whether the archive or any content carries
// description metadata worth a metadata file.
func (w *Writer) hasMetadata(a *Archive) bool {
	if a.Description != "" || len(a.Authors) > 0 || a.Created != nil || a.Updated != nil {
		return true
	}
	for _, c := range a.Contents {
		if c.Description != "" || len(c.Authors) > 0 || c.Created != nil || c.Updated != nil {
			return true
		}
	}
	return false
}

// checkUpdated rejects metadata-bearing objects without a modification
// timestamp.
func (w *Writer) checkUpdated(a *Archive) error {
	if !w.hasMetadata(a) {
		return nil
	}
	if a.Updated == nil {
		return fmt.Errorf("writing archive metadata without an updated timestamp is not implemented")
	}
	for _, c := range a.Contents {
		if (c.Description != "" || len(c.Authors) > 0 || c.Created != nil) && c.Updated == nil {
			return fmt.Errorf("writing metadata for `%s` without an updated timestamp is not implemented", c.Location)
		}
	}
	return nil
}
