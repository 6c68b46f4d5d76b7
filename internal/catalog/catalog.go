// Package catalog holds the named validation schemas served by validatord.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

var (
	ErrSchemaNotFound = errors.New("schema not found")
	ErrDuplicateName  = errors.New("duplicate schema name")
	ErrEmptyName      = errors.New("schema name is empty")
)

// Catalog maps schema names to compiled schemas. It is read-only once built
// and safe for concurrent use.
type Catalog struct {
	schemas map[string]*validator.Schema
}

// New builds a catalog from already constructed schemas. Every schema is
// compiled with opts so unknown rules and bad parameters fail here.
func New(schemas map[string]*validator.Schema, opts ...validator.Option) (*Catalog, error) {
	c := &Catalog{schemas: make(map[string]*validator.Schema, len(schemas))}
	for name, s := range schemas {
		if err := c.add(name, s, opts); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadDir reads every *.yaml and *.yml file of dir. The schema name is the
// file name without its extension: schemas/signup.yaml serves as "signup".
func LoadDir(dir string, opts ...validator.Option) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read schema dir: %w", err)
	}

	c := &Catalog{schemas: make(map[string]*validator.Schema)}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		s, err := validator.LoadSchemaFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := c.add(strings.TrimSuffix(e.Name(), ext), s, opts); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return c, nil
}

func (c *Catalog) add(name string, s *validator.Schema, opts []validator.Option) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := c.schemas[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if err := s.Compile(opts...); err != nil {
		return fmt.Errorf("schema %q: %w", name, err)
	}
	c.schemas[name] = s
	return nil
}

// Get returns the schema registered under name.
func (c *Catalog) Get(name string) (*validator.Schema, error) {
	s, ok := c.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	return s, nil
}

// Names returns the schema names in lexical order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.schemas))
	for name := range c.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (c *Catalog) Len() int { return len(c.schemas) }
