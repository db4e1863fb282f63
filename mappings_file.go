package remodel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFieldMappings reads a field mapping table from a YAML file
//
// the document is a map of target field name to a list of candidate source
// keys, e.g.
//
//	id:
//	  - _id
//	  - id
//	author:
//	  - author
//	  - createdBy.name
func LoadFieldMappings(path string) (FieldMappings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read field mappings: %w", err)
	}
	return ParseFieldMappings(data)
}

// ParseFieldMappings parses a field mapping table from YAML data
func ParseFieldMappings(data []byte) (FieldMappings, error) {
	result := FieldMappings{}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse field mappings: %w", err)
	}
	return result, nil
}
