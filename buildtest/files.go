package buildtest

import (
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/roach88/buildassert/host"
)

// FileSet is a file collection backed by a list of paths.
type FileSet []host.File

// Files returns a collection of the given paths with duplicates removed.
func Files(paths ...string) FileSet {
	set := make(FileSet, 0, len(paths))
	for _, p := range paths {
		if f := host.File(p); !slices.Contains(set, f) {
			set = append(set, f)
		}
	}
	return set
}

// Files implements host.FileCollection.
func (s FileSet) Files() []host.File {
	return slices.Clone([]host.File(s))
}

// Directory is a directory location. Its file tree is either given
// explicitly or read from disk when requested.
type Directory struct {
	location host.File
	tree     FileSet
	explicit bool
}

// NewDirectory returns the directory at path.
func NewDirectory(path string) *Directory {
	return &Directory{location: host.File(path)}
}

// WithTree fixes the file tree to the given paths, relative to the
// directory, instead of reading it from disk.
func (d *Directory) WithTree(paths ...string) *Directory {
	resolved := make([]string, len(paths))
	for i, p := range paths {
		resolved[i] = d.location.Join(p).Path()
	}
	d.tree, d.explicit = Files(resolved...), true
	return d
}

// AsFile implements host.Directory.
func (d *Directory) AsFile() host.File {
	return d.location
}

// AsFileTree implements host.Directory. Without an explicit tree the
// regular files beneath the directory are listed; a missing directory has
// an empty tree.
func (d *Directory) AsFileTree() host.FileCollection {
	if d.explicit {
		return d.tree
	}

	var paths []string
	_ = filepath.WalkDir(d.location.Path(), func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fs.SkipDir
		}
		if entry.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	return Files(paths...)
}

// String returns the directory path.
func (d *Directory) String() string {
	return d.location.Path()
}

// RegularFile is a regular file location.
type RegularFile struct {
	location host.File
}

// NewRegularFile returns the regular file at path.
func NewRegularFile(path string) RegularFile {
	return RegularFile{location: host.File(path)}
}

// AsFile implements host.RegularFile.
func (f RegularFile) AsFile() host.File {
	return f.location
}

// String returns the file path.
func (f RegularFile) String() string {
	return f.location.Path()
}
