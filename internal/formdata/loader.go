// Package formdata reads form data records from JSON or YAML fixtures.
package formdata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads path from fsys and parses it as a form data record.
func Load(fsys fs.FS, path string) (map[string]any, error) {
	if fsys == nil {
		return nil, fmt.Errorf("formdata: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("formdata: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes data as JSON, falling back to YAML. The document must be an
// object keyed by field name.
func Parse(data []byte, source string) (map[string]any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("formdata: file %s is empty", source)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err == nil {
		return ensureRecord(record, source)
	}

	record = nil
	if err := yaml.Unmarshal(data, &record); err == nil {
		return ensureRecord(record, source)
	}

	return nil, fmt.Errorf("formdata: parse %s: expected a JSON or YAML object", source)
}

func ensureRecord(record map[string]any, source string) (map[string]any, error) {
	if record == nil {
		return nil, fmt.Errorf("formdata: file %s does not contain an object", source)
	}
	return record, nil
}
