package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"anatorient/internal/models"
)

// Load reads the datasets listed in a YAML header file
func Load(path string) ([]models.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading header file: %w", err)
	}

	datasets, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing header file %s: %w", path, err)
	}
	return datasets, nil
}

// Parse decodes a YAML header document. Unknown fields are rejected.
func Parse(data []byte) ([]models.Dataset, error) {
	var hdr models.Header
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&hdr); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return hdr.Datasets, nil
}
