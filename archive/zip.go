package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Writer bundles a list of files into a compressed zip archive.
type Writer struct{}

// NewWriter creates a zip archive writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Run writes every file in the archive into a single zip at filename. The
// in-archive name of each entry is its ArchivePath. A failure part-way
// through aborts the write; no usable output is guaranteed afterwards.
func (w *Writer) Run(a *Archive, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create archive file: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, f := range a.Files {
		if f.ArchivePath == "" {
			return fmt.Errorf("file %q has no archive path", f.LocalPath)
		}
		if err := addFile(zw, f); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, f *File) error {
	src, err := os.Open(f.LocalPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.LocalPath, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", f.LocalPath, err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("header for %s: %w", f.LocalPath, err)
	}
	header.Name = filepath.ToSlash(f.ArchivePath)
	header.Method = zip.Deflate

	dst, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("add %s: %w", f.ArchivePath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write %s: %w", f.ArchivePath, err)
	}
	return nil
}

// Reader lists and optionally extracts the members of a zip archive.
type Reader struct{}

// NewReader creates a zip archive reader.
func NewReader() *Reader {
	return &Reader{}
}

// Run builds an Archive describing the members of the zip at filename.
// When outDir is non-empty every member is extracted beneath it and each
// file's LocalPath points at the extracted copy; otherwise LocalPath is
// left empty. A file that is not a valid zip yields an error.
func (r *Reader) Run(filename, outDir string) (*Archive, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("`%s` is not a valid zip archive: %w", filename, err)
	}
	defer zr.Close()

	a := New()
	for _, member := range zr.File {
		if member.FileInfo().IsDir() {
			continue
		}
		f := &File{ArchivePath: member.Name}
		if outDir != "" {
			dest, err := extractMember(member, outDir)
			if err != nil {
				return nil, err
			}
			f.LocalPath = dest
		}
		a.Files = append(a.Files, f)
	}
	return a, nil
}

func extractMember(member *zip.File, outDir string) (string, error) {
	// Reject entries that would escape the extraction directory.
	cleaned := filepath.Clean(filepath.FromSlash(member.Name))
	if strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) || cleaned == ".." {
		return "", fmt.Errorf("archive member %q escapes the extraction directory", member.Name)
	}

	dest := filepath.Join(outDir, cleaned)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("create directory for %s: %w", member.Name, err)
	}

	src, err := member.Open()
	if err != nil {
		return "", fmt.Errorf("open member %s: %w", member.Name, err)
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("extract %s: %w", member.Name, err)
	}
	return dest, nil
}
