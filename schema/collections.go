package schema

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/docschema/pkg/sanitizer"
)

var deriveCollection = sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)

// DeriveCollection is the mechanical fallback: the trimmed, lower-cased model name.
func DeriveCollection(modelName string) string {
	return deriveCollection(modelName)
}

// Collections resolves the storage collection of each record kind.
// Overrides keyed by model name take precedence over the model's own
// declaration. The zero value and a nil *Collections use declarations only.
// A Collections value is read-only after construction.
type Collections struct {
	overrides map[string]string
}

// NewCollections returns a resolver with the given overrides (model name -> collection).
func NewCollections(overrides map[string]string) (*Collections, error) {
	clean := make(map[string]string, len(overrides))
	for model, collection := range overrides {
		model = strings.TrimSpace(model)
		collection = strings.TrimSpace(collection)
		if model == "" || collection == "" {
			return nil, fmt.Errorf("%w: %q -> %q", ErrInvalidCollection, model, collection)
		}
		clean[model] = collection
	}
	return &Collections{overrides: clean}, nil
}

type collectionsFile struct {
	Collections map[string]string `yaml:"collections"`
}

// LoadCollections reads overrides from a YAML file of the form:
//
//	collections:
//	  BlogPost: blogs
//	  Lead: leads
func LoadCollections(path string) (*Collections, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadCollections, err)
	}

	var file collectionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrReadCollections, err)
	}

	return NewCollections(file.Collections)
}

// Collection returns the collection name for m.
func (c *Collections) Collection(m Model) string {
	if c != nil {
		if name, ok := c.overrides[m.Name]; ok {
			return name
		}
	}
	if m.Collection != "" {
		return m.Collection
	}
	return DeriveCollection(m.Name)
}

// For returns the collection name for a record.
func (c *Collections) For(rec Record) string {
	return c.Collection(rec.Model())
}

// Overrides returns a copy of the configured overrides.
func (c *Collections) Overrides() map[string]string {
	if c == nil {
		return map[string]string{}
	}
	return maps.Clone(c.overrides)
}
