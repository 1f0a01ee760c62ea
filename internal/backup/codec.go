package backup

import (
	"archive/zip"
	"compress/flate"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dkuzmenko/wisdomvault/internal/common"
	"github.com/dkuzmenko/wisdomvault/internal/models"
)

const (
	// dataEntryName is the archive entry holding the structured document.
	dataEntryName = "data"
	// filesDirName is the archive directory mirroring the attachment store.
	filesDirName = "files"
)

// Document is the structured payload of an archive: the four record
// families, field-named and ordered.
type Document struct {
	Categories []models.Category `json:"categories"`
	Entries    []models.Entry    `json:"entries"`
	Ratings    []models.Rating   `json:"ratings"`
	Comments   []models.Comment  `json:"comments"`
}

func (d *Document) normalize() {
	if d.Categories == nil {
		d.Categories = []models.Category{}
	}
	if d.Entries == nil {
		d.Entries = []models.Entry{}
	}
	if d.Ratings == nil {
		d.Ratings = []models.Rating{}
	}
	if d.Comments == nil {
		d.Comments = []models.Comment{}
	}
}

// writeArchive packs doc (and, when filesDir is non-empty, every regular
// file in it under "files/") into a zip archive at dest. The archive is
// written to a temporary name next to dest and renamed into place, so a
// failure never leaves a truncated archive behind.
func writeArchive(dest string, doc *Document, filesDir string) (err error) {
	doc.normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".export-*")
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = writeZip(tmp, data, filesDir); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	if err = os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("rename archive into place: %w", err)
	}
	return nil
}

func writeZip(w io.Writer, data []byte, filesDir string) error {
	zw := zip.NewWriter(w)
	// Batch, infrequent operation: trade CPU for output size.
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	f, err := zw.Create(dataEntryName)
	if err != nil {
		return fmt.Errorf("create data entry: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write data entry: %w", err)
	}

	if filesDir != "" {
		dirents, err := os.ReadDir(filesDir)
		if err != nil {
			return fmt.Errorf("read attachment dir: %w", err)
		}
		for _, de := range dirents {
			if de.IsDir() {
				continue
			}
			if err := addFileEntry(zw, filesDir, de.Name()); err != nil {
				return err
			}
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}

func addFileEntry(zw *zip.Writer, dir, name string) error {
	src, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("open attachment %s: %w", name, err)
	}
	defer src.Close()

	// Archive paths use forward slashes regardless of platform.
	w, err := zw.Create(filesDirName + "/" + name)
	if err != nil {
		return fmt.Errorf("create attachment entry %s: %w", name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("write attachment entry %s: %w", name, err)
	}
	return nil
}

// readArchive extracts the archive at src into a private temporary directory
// and parses the data entry. It returns the document, the extracted
// attachment directory ("" when the archive packed none) and a cleanup
// function that removes the temporary directory; cleanup must always run,
// success or failure. A missing or unparsable data entry, or a container
// that is not a zip file, yields common.ErrInvalidArchive.
func readArchive(src string) (*Document, string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "wisdomvault-import-*")
	if err != nil {
		return nil, "", nil, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	zr, err := zip.OpenReader(src)
	if err != nil {
		cleanup()
		return nil, "", nil, fmt.Errorf("%w: %v", common.ErrInvalidArchive, err)
	}
	defer zr.Close()

	for _, zf := range zr.File {
		if err := extractEntry(tmpDir, zf); err != nil {
			cleanup()
			return nil, "", nil, err
		}
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, dataEntryName))
	if err != nil {
		cleanup()
		return nil, "", nil, fmt.Errorf("%w: missing data entry", common.ErrInvalidArchive)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		cleanup()
		return nil, "", nil, fmt.Errorf("%w: %v", common.ErrInvalidArchive, err)
	}

	extractedFiles := filepath.Join(tmpDir, filesDirName)
	if fi, err := os.Stat(extractedFiles); err != nil || !fi.IsDir() {
		extractedFiles = ""
	}
	return doc, extractedFiles, cleanup, nil
}

func extractEntry(dstDir string, zf *zip.File) error {
	name := filepath.FromSlash(zf.Name)
	// Reject entries that would escape the extraction dir. The check is per
	// path segment: stored names such as "a..b.txt" are legitimate.
	if !filepath.IsLocal(name) {
		return fmt.Errorf("%w: unsafe entry name %q", common.ErrInvalidArchive, zf.Name)
	}
	dst := filepath.Join(dstDir, name)

	if zf.FileInfo().IsDir() {
		return os.MkdirAll(dst, 0o770)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o770); err != nil {
		return fmt.Errorf("extract %s: %w", zf.Name, err)
	}

	src, err := zf.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidArchive, err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("extract %s: %w", zf.Name, err)
	}
	_, err = io.Copy(out, src)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("extract %s: %w", zf.Name, err)
	}
	return nil
}
