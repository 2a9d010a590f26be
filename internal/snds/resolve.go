package snds

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// NotFoundError indicates that neither the plain nor the compressed variant
// of an export exists for the given prefix and date tag.
type NotFoundError struct {
	Dir    string
	Prefix string
	Tag    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s-%s.csv(.gz) in %s", e.Prefix, e.Tag, e.Dir)
}

// Resolve returns the path of the export for prefix and tag inside dir,
// checking `<prefix>-<tag>.csv` before `<prefix>-<tag>.csv.gz`. No wildcard
// or fuzzy matching is attempted.
func Resolve(dir, prefix, tag string) (string, error) {
	candidates := []string{
		filepath.Join(dir, fmt.Sprintf("%s-%s.csv", prefix, tag)),
		filepath.Join(dir, fmt.Sprintf("%s-%s.csv.gz", prefix, tag)),
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", &NotFoundError{Dir: dir, Prefix: prefix, Tag: tag}
}

// OpenText opens path as a UTF-8 text stream. Files ending in .gz are
// decompressed transparently; selection is by extension only, never by
// content sniffing. The caller must close the returned reader.
func OpenText(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &gzipReadCloser{gz: gz, f: f}, nil
}

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.gz.Read(p)
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	fErr := g.f.Close()
	if gzErr != nil {
		return gzErr
	}
	return fErr
}
