// Package catalog loads the static list of learnable items.
//
// A catalog is an ordered list of categories, each an ordered list of items.
// It is read once at startup and never modified. Review state refers to
// items by id only; ids that are not in the catalog are still tracked.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

var validate = validator.New()

// Item is a single learnable word or phrase.
type Item struct {
	ID     string `json:"id" validate:"required"`
	Native string `json:"native" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// Category groups items for the learn flow.
type Category struct {
	Name  string `json:"name" validate:"required"`
	Items []Item `json:"items" validate:"required,min=1,dive"`
}

// Catalog is the full set of categories with an id index.
type Catalog struct {
	Categories []Category `json:"categories" validate:"required,min=1,dive"`

	byID       map[string]Item
	byCategory map[string]int
}

// Parse decodes and validates a catalog. Item ids and category names must
// be unique across the whole catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	c.byID = make(map[string]Item)
	c.byCategory = make(map[string]int, len(c.Categories))
	for i, cat := range c.Categories {
		if _, dup := c.byCategory[cat.Name]; dup {
			return nil, fmt.Errorf("duplicate category %q", cat.Name)
		}
		c.byCategory[cat.Name] = i
		for _, it := range cat.Items {
			if _, dup := c.byID[it.ID]; dup {
				return nil, fmt.Errorf("duplicate item id %q in category %q", it.ID, cat.Name)
			}
			c.byID[it.ID] = it
		}
	}
	return &c, nil
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogJSON)
}

// Load reads a catalog file, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Lookup returns the item with the given id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Category returns the category with the given name.
func (c *Catalog) Category(name string) (Category, bool) {
	i, ok := c.byCategory[name]
	if !ok {
		return Category{}, false
	}
	return c.Categories[i], true
}

// Names returns category names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}

// First returns the name of the first category.
func (c *Catalog) First() string {
	return c.Categories[0].Name
}

// Size returns the total number of items.
func (c *Catalog) Size() int {
	return len(c.byID)
}
