package feed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ElementMap names the XML elements that carry each product field in
// a supplier feed. Item, SKU and Stock are required; Name and Group
// are optional and default to empty values when the feed omits them.
type ElementMap struct {
	Item  string `yaml:"item"`
	SKU   string `yaml:"sku"`
	Stock string `yaml:"stock"`
	Name  string `yaml:"name,omitempty"`
	Group string `yaml:"group,omitempty"`
}

// Profile describes one supplier's feed dialect.
type Profile struct {
	Supplier string     `yaml:"supplier"`
	Elements ElementMap `yaml:"elements"`
}

// DefaultProfile returns the dialect of the Carero wholesale feed.
func DefaultProfile() Profile {
	return Profile{
		Supplier: "carero",
		Elements: ElementMap{
			Item:  "SHOPITEM",
			SKU:   "ID_PRODUCT",
			Stock: "SKLADOVOST",
			Name:  "PRODUCT",
			Group: "SKUPINA",
		},
	}
}

// LoadProfile reads a YAML feed profile and validates that the
// required element names are present.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read feed profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse feed profile %s: %w", path, err)
	}

	if p.Elements.Item == "" {
		return Profile{}, fmt.Errorf("feed profile %s: missing item element", path)
	}
	if p.Elements.SKU == "" || p.Elements.Stock == "" {
		return Profile{}, fmt.Errorf("feed profile %s: sku and stock elements are required", path)
	}

	return p, nil
}
