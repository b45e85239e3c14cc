package fixture

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Error codes for fixture loading.
const (
	ErrCodeNotFound    = "F001"
	ErrCodeUnsupported = "F002"
	ErrCodeParse       = "F003"
	ErrCodeDecode      = "F004"
	ErrCodeInvalid     = "F005"
)

// LoadError describes why a fixture file could not be loaded.
type LoadError struct {
	Path    string
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Fixture is a loaded fixture file.
type Fixture struct {
	// Path is the fixture file as given to Load.
	Path    string
	Format  string
	Project *Project
}

// Dir returns the directory relative paths in the fixture resolve against.
func (f *Fixture) Dir() string {
	return filepath.Dir(f.Path)
}

// Decoder turns fixture bytes into a Project.
type Decoder func(path string, data []byte) (*Project, error)

var decoders = map[string]struct {
	format string
	decode Decoder
}{
	".yaml": {"yaml", decodeYAML},
	".yml":  {"yaml", decodeYAML},
	".cue":  {"cue", decodeCUE},
	".hcl":  {"hcl", decodeHCL},
}

// Extensions returns the file extensions Load understands.
func Extensions() []string {
	return sortedKeys(decoders)
}

// Load reads, decodes and validates the fixture at path. The format is
// chosen by file extension.
func Load(ctx context.Context, path string) (*Fixture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	d, ok := decoders[ext]
	if !ok {
		return nil, &LoadError{
			Path:    path,
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported fixture extension %q (want one of %s)", ext, strings.Join(Extensions(), ", ")),
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Path: path, Code: ErrCodeNotFound, Message: "fixture not found", Err: err}
	}
	if err != nil {
		return nil, &LoadError{Path: path, Code: ErrCodeNotFound, Message: "failed to read fixture", Err: err}
	}

	project, err := d.decode(path, data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, le
		}
		return nil, &LoadError{Path: path, Code: ErrCodeDecode, Message: fmt.Sprintf("failed to decode %s fixture", d.format), Err: err}
	}

	if err := project.Validate(); err != nil {
		return nil, &LoadError{Path: path, Code: ErrCodeInvalid, Message: "invalid fixture", Err: err}
	}

	return &Fixture{Path: path, Format: d.format, Project: project}, nil
}

func parseError(path, format string, err error) error {
	return &LoadError{Path: path, Code: ErrCodeParse, Message: fmt.Sprintf("failed to parse %s", format), Err: err}
}
