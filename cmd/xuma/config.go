package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadDocument reads a matcher-tree document from path and returns it as
// JSON, the wire format [registry.Load] consumes. YAML is accepted as a
// caller convenience at this CLI boundary only — the core library and
// the registry loader never see anything but the abstract document
// shape described in the configuration section, decoded from JSON.
func loadDocument(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return json.Marshal(doc)
}
