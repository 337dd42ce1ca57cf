package entities

import (
	"fmt"
)

// Metadata holds the tags extracted from a record's note.
// Tags written as <Name: value> hold a string, bare <Name> tags hold true.
type Metadata map[string]interface{}

// GetString retrieves a string value from metadata
func (m Metadata) GetString(key string) (string, error) {
	if m == nil {
		return "", fmt.Errorf("metadata is nil")
	}

	value, exists := m[key]
	if !exists {
		return "", fmt.Errorf("key %q not found", key)
	}

	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("key %q is not a string (got %T)", key, value)
	}

	return str, nil
}

// GetStringOrDefault retrieves a string value or returns the default
func (m Metadata) GetStringOrDefault(key, defaultValue string) string {
	str, err := m.GetString(key)
	if err != nil {
		return defaultValue
	}
	return str
}

// IsFlag reports whether key was written as a bare tag with no value
func (m Metadata) IsFlag(key string) bool {
	b, ok := m[key].(bool)
	return ok && b
}

// Set sets a value in the metadata
func (m Metadata) Set(key string, value interface{}) {
	if m == nil {
		return
	}
	m[key] = value
}

// Lookup returns the raw tag value
func (m Metadata) Lookup(key string) (interface{}, bool) {
	if m == nil {
		return nil, false
	}
	value, exists := m[key]
	return value, exists
}
