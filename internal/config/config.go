package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/ruminaider/filterlist/internal/filterlist"
	"go.yaml.in/yaml/v3"
)

// Document is a picker definition, usually read from a YAML file or stdin.
type Document struct {
	Title       string  `yaml:"title,omitempty"`
	Placeholder string  `yaml:"placeholder,omitempty"`
	Filter      string  `yaml:"filter,omitempty"`
	Selected    string  `yaml:"selected,omitempty"`
	Headers     *bool   `yaml:"headers,omitempty"`
	RowHeight   int     `yaml:"row_height,omitempty"`
	Groups      []Group `yaml:"groups"`
}

// Group is a named list of items.
type Group struct {
	Name  string `yaml:"name"`
	Items []Item `yaml:"items"`
}

// Item is a single pickable entry. In YAML an item is either a mapping
// (id/text/detail) or a plain string used as both id and text.
type Item struct {
	Key    string `yaml:"id"`
	Label  string `yaml:"text,omitempty"`
	Detail string `yaml:"detail,omitempty"`
}

// ID returns the item id.
func (it Item) ID() string { return it.Key }

// Text returns the label the filter matches, falling back to the id.
func (it Item) Text() string {
	if it.Label == "" {
		return it.Key
	}
	return it.Label
}

// Description returns the optional second line shown under the label.
func (it Item) Description() string { return it.Detail }

// UnmarshalYAML accepts both the scalar and the mapping form of an item.
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*it = Item{Key: node.Value, Label: node.Value}
		return nil
	case yaml.MappingNode:
		type plain Item
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*it = Item(p)
		return nil
	default:
		return fmt.Errorf("line %d: item must be a string or a mapping", node.Line)
	}
}

// Parse parses document bytes. An empty input is an empty document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

// Load reads and parses a document from r.
func Load(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("reading document: %w", err)
	}
	return Parse(data)
}

// Marshal serializes a Document to YAML bytes.
func Marshal(doc Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// ShowHeaders reports whether group headers are rendered. Defaults to true.
func (d Document) ShowHeaders() bool {
	return d.Headers == nil || *d.Headers
}

// Validate checks ids and layout settings. All problems are reported at once.
func (d Document) Validate() error {
	var errs []error
	if d.RowHeight < 0 {
		errs = append(errs, fmt.Errorf("row_height must not be negative, got %d", d.RowHeight))
	}

	seen := make(map[string]string)
	for gi, g := range d.Groups {
		for ii, it := range g.Items {
			if it.Key == "" {
				errs = append(errs, fmt.Errorf("group %d (%q) item %d: missing id", gi, g.Name, ii))
				continue
			}
			if prev, ok := seen[it.Key]; ok {
				errs = append(errs, fmt.Errorf("duplicate id %q in groups %q and %q", it.Key, prev, g.Name))
				continue
			}
			seen[it.Key] = g.Name
		}
	}

	if d.Selected != "" {
		if _, ok := seen[d.Selected]; !ok {
			errs = append(errs, fmt.Errorf("selected id %q not found", d.Selected))
		}
	}
	return errors.Join(errs...)
}

// ItemCount returns the total number of items across groups.
func (d Document) ItemCount() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Items)
	}
	return n
}

// ListGroups converts the document groups for the widget.
func (d Document) ListGroups() []filterlist.Group {
	groups := make([]filterlist.Group, 0, len(d.Groups))
	for _, g := range d.Groups {
		items := make([]filterlist.ListItem, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, it)
		}
		groups = append(groups, filterlist.Group{Identifier: g.Name, Items: items})
	}
	return groups
}

// Find returns the item with the given id, or false.
func (d Document) Find(id string) (Item, bool) {
	for _, g := range d.Groups {
		for _, it := range g.Items {
			if it.Key == id {
				return it, true
			}
		}
	}
	return Item{}, false
}
