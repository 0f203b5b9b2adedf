// Package katvectors loads known-answer-test fixtures for YSC2 from a
// checked-in YAML document.
package katvectors

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vector is one hash known-answer test: a hex-encoded message and its
// expected hex-encoded fixed-length digest, for a named variant.
type Vector struct {
	Variant string `yaml:"variant"`
	Message string `yaml:"message_hex"`
	Digest  string `yaml:"digest_hex"`
}

// Document is the top-level shape of a fixture file.
type Document struct {
	Vectors []Vector `yaml:"vectors"`
}

// Load decodes a Document from raw YAML bytes.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("katvectors: decode: %w", err)
	}
	return &doc, nil
}
