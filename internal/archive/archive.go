// Package archive compresses an export file into a single-entry zip container.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"csvexport/internal/logging"
)

// Suffix is appended to the source path to name the archive.
const Suffix = ".zip"

func bestCompression(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, flate.BestCompression)
}

// Path returns the archive path for src.
func Path(src string) string {
	return src + Suffix
}

// Zip writes src into Path(src) as its only entry, named by the base name of src.
// An existing archive is overwritten and src is left untouched.
func Zip(src string) (dst string, err error) {
	dst = Path(src)

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %q: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %q: %w", src, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %q: %w", dst, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", dst, closeErr)
		}
	}()
	logging.PrintAndLog("path_to_zipfile: %s", dst)

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, bestCompression)

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return "", fmt.Errorf("zip header for %q: %w", src, err)
	}
	header.Name = filepath.Base(src)
	header.Method = zip.Deflate

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return "", fmt.Errorf("zip entry %q: %w", header.Name, err)
	}
	if _, err := io.Copy(entry, in); err != nil {
		return "", fmt.Errorf("compress %q: %w", src, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finish %q: %w", dst, err)
	}
	return dst, nil
}
