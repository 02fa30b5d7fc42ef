package uploads

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// MaxUploadBytes caps an upload request at 4 MiB.
const MaxUploadBytes = 4 << 20

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"svg":  true,
	"bmp":  true,
}

var allowedMimetypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/gif":     true,
	"image/svg+xml": true,
	"image/bmp":     true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// AllowedFile reports whether the filename carries one of the accepted
// image extensions.
func AllowedFile(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(name[i+1:])]
}

// AllowedMimetype reports whether a client-declared content type is an
// accepted image type.
func AllowedMimetype(m string) bool {
	return allowedMimetypes[m]
}

// SecureFilename flattens path components and strips characters that are
// not safe on every filesystem. An empty result means the name was unusable.
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// Dir is the relative directory for one entity's files, e.g. "books/104".
func Dir(subdir string, id uint) string {
	return path.Join(subdir, strconv.FormatUint(uint64(id), 10))
}

// Store manages the upload root. Entity rows persist paths relative to it,
// always with forward slashes.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string { return s.root }

// Abs resolves a stored relative path against the upload root.
func (s *Store) Abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// EnsureDir creates the directory for rel, tolerating one that already
// exists, and returns its absolute path.
func (s *Store) EnsureDir(rel string) (string, error) {
	abs := s.Abs(rel)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", err
	}
	return abs, nil
}

// HasDir reports whether rel exists under the root as a directory.
func (s *Store) HasDir(rel string) bool {
	fi, err := os.Stat(s.Abs(rel))
	return err == nil && fi.IsDir()
}

// RemoveFile deletes a stored file if it exists. Missing files are not an
// error: the row may reference a path that was never written.
func (s *Store) RemoveFile(rel string) {
	abs := s.Abs(rel)
	if fi, err := os.Stat(abs); err == nil && fi.Mode().IsRegular() {
		os.Remove(abs)
	}
}

// RemoveDir deletes a directory tree under the root if it exists.
func (s *Store) RemoveDir(rel string) {
	abs := s.Abs(rel)
	if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
		os.RemoveAll(abs)
	}
}
