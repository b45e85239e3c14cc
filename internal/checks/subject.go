package checks

import (
	"fmt"
	"strings"
)

// Subject kinds.
const (
	kindProject       = "project"
	kindTask          = "task"
	kindTaskFiles     = "task files"
	kindConfiguration = "configuration"
	kindProperty      = "property"
	kindBuildDir      = "build_dir"
	kindFile          = "file"
)

type subject struct {
	kind string
	name string
	// files is "inputs" or "outputs" for task file subjects.
	files string
}

func parseSubject(s string) (subject, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return subject{}, fmt.Errorf("subject is required")
	}

	switch head := fields[0]; head {
	case kindProject, kindBuildDir:
		if len(fields) != 1 {
			return subject{}, fmt.Errorf("subject %q takes no name", head)
		}
		return subject{kind: head}, nil

	case kindTask:
		switch {
		case len(fields) == 2:
			return subject{kind: kindTask, name: fields[1]}, nil
		case len(fields) == 3 && (fields[2] == "inputs" || fields[2] == "outputs"):
			return subject{kind: kindTaskFiles, name: fields[1], files: fields[2]}, nil
		}
		return subject{}, fmt.Errorf("subject %q: want \"task <name>\" or \"task <name> inputs|outputs\"", s)

	case kindConfiguration, kindProperty:
		if len(fields) != 2 {
			return subject{}, fmt.Errorf("subject %q: want \"%s <name>\"", s, head)
		}
		return subject{kind: head, name: fields[1]}, nil

	case kindFile:
		path := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), kindFile))
		if path == "" {
			return subject{}, fmt.Errorf("subject %q: want \"file <path>\"", s)
		}
		return subject{kind: kindFile, name: path}, nil

	default:
		return subject{}, fmt.Errorf("unknown subject %q", head)
	}
}
