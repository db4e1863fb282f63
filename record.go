package remodel

import "strings"

// Record is an arbitrary-shape source record
//
// no schema is assumed beyond "is a mapping" - values may be scalars, arrays
// or nested objects (as produced by parsing JSON, reading sql rows, etc.)
type Record map[string]any

// Model is a generated target model
//
// the field set is determined entirely by the FieldMappings (and Defaults)
// used to generate it
type Model map[string]any

// Candidates is the ordered list of alternative source keys consulted when
// resolving a target field
//
// a candidate containing a "." is treated as a nested path (e.g. "user.name")
type Candidates []string

// FieldMappings is a map of Candidates by target field name
type FieldMappings map[string]Candidates

func (fm FieldMappings) copy() FieldMappings {
	result := make(FieldMappings, len(fm))
	for k, v := range fm {
		result[k] = v
	}
	return result
}

// resolve scans the candidates in order and returns the first defined value
//
// presence is what counts, not truthiness - nil (and zero/empty) values are
// defined and stop the scan; only an absent key moves on to the next candidate
func (c Candidates) resolve(record Record) (any, bool) {
	for _, key := range c {
		if strings.Contains(key, ".") {
			if v, ok := resolvePath(record, strings.Split(key, ".")); ok {
				return v, true
			}
		} else if v, ok := lookup(record, key); ok {
			return v, true
		}
	}
	return nil, false
}

// resolvePath performs a strict nested traversal - every segment must be a
// present key in a mapping; failure at any segment fails the whole candidate
func resolvePath(record Record, path []string) (any, bool) {
	current := any(map[string]any(record))
	for _, segment := range path {
		v, ok := lookupIn(current, segment)
		if !ok {
			return nil, false
		}
		current = v
	}
	return current, true
}

func lookup(record Record, key string) (any, bool) {
	v, ok := record[key]
	return v, ok
}

func lookupIn(container any, key string) (any, bool) {
	switch m := container.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case Record:
		v, ok := m[key]
		return v, ok
	case Model:
		v, ok := m[key]
		return v, ok
	}
	return nil, false
}
