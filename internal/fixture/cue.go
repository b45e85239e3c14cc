package fixture

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// projectField is the top-level CUE field holding the project.
const projectField = "project"

func decodeCUE(path string, data []byte) (*Project, error) {
	ctx := cuecontext.New()

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, parseError(path, "CUE", err)
	}

	projectVal := value.LookupPath(cue.ParsePath(projectField))
	if !projectVal.Exists() {
		return nil, &LoadError{Path: path, Code: ErrCodeInvalid, Message: "missing top-level field \"" + projectField + "\""}
	}
	if err := projectVal.Validate(cue.Concrete(true)); err != nil {
		return nil, &LoadError{Path: path, Code: ErrCodeInvalid, Message: "project must be concrete", Err: err}
	}

	var p Project
	if err := projectVal.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
