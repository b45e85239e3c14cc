package host

import (
	"os"
	"path/filepath"
)

// File is a file-like resource identified by its path. Two files are equal
// when their paths are equal.
type File string

// Path returns the path of the file.
func (f File) Path() string {
	return string(f)
}

// String implements fmt.Stringer.
func (f File) String() string {
	return string(f)
}

// Name returns the last element of the path.
func (f File) Name() string {
	return filepath.Base(string(f))
}

// Ext returns the file name extension without the leading dot.
func (f File) Ext() string {
	ext := filepath.Ext(string(f))
	if ext == "" {
		return ""
	}
	return ext[1:]
}

// Parent returns the directory containing the file.
func (f File) Parent() File {
	return File(filepath.Dir(string(f)))
}

// Join resolves elem relative to f.
func (f File) Join(elem ...string) File {
	return File(filepath.Join(append([]string{string(f)}, elem...)...))
}

// Exists reports whether anything exists at the path.
func (f File) Exists() bool {
	_, err := os.Stat(string(f))
	return err == nil
}

// IsRegular reports whether the path names an existing regular file.
func (f File) IsRegular() bool {
	info, err := os.Stat(string(f))
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether the path names an existing directory.
func (f File) IsDir() bool {
	info, err := os.Stat(string(f))
	return err == nil && info.IsDir()
}
