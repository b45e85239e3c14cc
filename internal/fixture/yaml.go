package fixture

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

func decodeYAML(path string, data []byte) (*Project, error) {
	var p Project

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, parseError(path, "YAML", errors.New("empty document"))
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, err
		}
		return nil, parseError(path, "YAML", err)
	}

	return &p, nil
}
