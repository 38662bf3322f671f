// Package rulebook provides the per-document-type baseline rules the
// analysis prompt is built from.
package rulebook

import (
	_ "embed"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

//go:embed catalog.yaml
var builtin []byte

// RuleSet is the baseline for one document type.
type RuleSet struct {
	Type  contract.DocumentType `yaml:"key" json:"document_type"`
	Label string                `yaml:"label" json:"label"`
	Rules string                `yaml:"rules" json:"rules"`
}

type catalogFile struct {
	Rulebooks []RuleSet `yaml:"rulebooks"`
}

// Catalog is an immutable lookup of rule sets.  It is safe for concurrent use.
type Catalog struct {
	order []contract.DocumentType
	byKey map[contract.DocumentType]RuleSet
}

// NewCatalog loads the built-in rulebooks.
func NewCatalog() (*Catalog, error) {
	return Parse(builtin)
}

// MustCatalog is NewCatalog for process start-up.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a catalog from YAML.  Every entry needs a key, a label and
// non-empty rules, keys must be unique, and a generic entry must exist.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "rule catalog could not be parsed")
	}
	if len(f.Rulebooks) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "rule catalog is empty")
	}

	c := &Catalog{byKey: make(map[contract.DocumentType]RuleSet, len(f.Rulebooks))}
	for i, rs := range f.Rulebooks {
		rs.Type = contract.DocumentType(strings.ToLower(strings.TrimSpace(string(rs.Type))))
		rs.Label = strings.TrimSpace(rs.Label)
		rs.Rules = strings.TrimSpace(rs.Rules)
		switch {
		case rs.Type == "":
			return nil, errors.Newf(errors.ErrCodeValidation, "rulebooks[%d]: key is empty", i)
		case rs.Label == "":
			return nil, errors.Newf(errors.ErrCodeValidation, "rulebook %q: label is empty", rs.Type)
		case rs.Rules == "":
			return nil, errors.Newf(errors.ErrCodeValidation, "rulebook %q: rules are empty", rs.Type)
		}
		if _, dup := c.byKey[rs.Type]; dup {
			return nil, errors.Newf(errors.ErrCodeValidation, "rulebook %q is defined twice", rs.Type)
		}
		c.byKey[rs.Type] = rs
		c.order = append(c.order, rs.Type)
	}
	if _, ok := c.byKey[contract.DocumentGeneric]; !ok {
		return nil, errors.Newf(errors.ErrCodeValidation, "rule catalog has no %q rulebook", contract.DocumentGeneric)
	}
	return c, nil
}

// Lookup returns the rule set for t.
func (c *Catalog) Lookup(t contract.DocumentType) (RuleSet, error) {
	rs, ok := c.byKey[t]
	if !ok {
		return RuleSet{}, c.unknown(string(t))
	}
	return rs, nil
}

// Resolve accepts either a key ("rental") or a display label
// ("Rental / Lease Agreement"), case-insensitively.
func (c *Catalog) Resolve(name string) (RuleSet, error) {
	name = strings.TrimSpace(name)
	if rs, ok := c.byKey[contract.DocumentType(strings.ToLower(name))]; ok {
		return rs, nil
	}
	for _, t := range c.order {
		if strings.EqualFold(c.byKey[t].Label, name) {
			return c.byKey[t], nil
		}
	}
	return RuleSet{}, c.unknown(name)
}

// Types lists document types in catalog order.
func (c *Catalog) Types() []contract.DocumentType {
	out := make([]contract.DocumentType, len(c.order))
	copy(out, c.order)
	return out
}

// All returns every rule set in catalog order.
func (c *Catalog) All() []RuleSet {
	out := make([]RuleSet, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, c.byKey[t])
	}
	return out
}

// Label returns the display label for t, or t itself when unknown.
func (c *Catalog) Label(t contract.DocumentType) string {
	if rs, ok := c.byKey[t]; ok {
		return rs.Label
	}
	return string(t)
}

func (c *Catalog) unknown(name string) error {
	keys := make([]string, 0, len(c.order))
	for _, t := range c.order {
		keys = append(keys, string(t))
	}
	sort.Strings(keys)
	return errors.Newf(errors.CodeUnknownDocumentType, "unknown document type %q", name).
		WithDetail("expected one of " + strings.Join(keys, ", "))
}

//Personal.AI order the ending
