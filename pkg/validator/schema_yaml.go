package validator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type schemaDocument struct {
	Fields   yaml.Node                    `yaml:"fields"`
	Messages map[string]map[string]string `yaml:"messages"`
}

// LoadSchema reads a YAML schema document:
//
//	fields:
//	  username: required|max_length:20
//	  birthday: date_before:1990-12-12
//	messages:
//	  username:
//	    required: username is required
//
// Field order follows the document.
func LoadSchema(r io.Reader) (*Schema, error) {
	var doc schemaDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
		}
		return nil, errors.Join(ErrInvalidSchema, err)
	}

	if doc.Fields.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: fields must be a mapping", ErrInvalidSchema)
	}

	b := NewSchema()
	content := doc.Fields.Content
	for i := 0; i+1 < len(content); i += 2 {
		key, value := content[i], content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: chain of %q must be a string", ErrInvalidSchema, value.Line, key.Value)
		}
		b.Field(key.Value, value.Value)
	}
	for field, templates := range doc.Messages {
		b.Messages(field, templates)
	}
	return b.Build(), nil
}

// LoadSchemaFile reads a YAML schema document from path.
func LoadSchemaFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	defer func() { _ = f.Close() }()
	return LoadSchema(f)
}
