package ssml

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed flavors.yaml
var flavorsYAML []byte

// rawTable mirrors the YAML layout of one flavor's capability table.
type rawTable struct {
	UnsupportedElements   []string `yaml:"unsupported_elements"`
	UnsupportedAttributes []struct {
		Element string `yaml:"element"`
		Attr    string `yaml:"attr"`
	} `yaml:"unsupported_attributes"`
	Nesting []struct {
		Element       string `yaml:"element"`
		RequireParent string `yaml:"require_parent"`
		DenyParent    string `yaml:"deny_parent"`
	} `yaml:"nesting"`
	Attributes []struct {
		Element     string   `yaml:"element"`
		Attr        string   `yaml:"attr"`
		Policy      string   `yaml:"policy"`
		Min         *float64 `yaml:"min"`
		Max         *float64 `yaml:"max"`
		Values      []string `yaml:"values"`
		OmitDefault string   `yaml:"omit_default"`
		Domain      string   `yaml:"domain"`
	} `yaml:"attributes"`
}

// rule is one flavor's restriction on an (element, attribute) pair. The zero
// rule places no restriction.
type rule struct {
	unsupported bool
	policy      string
	min, max    *float64
	values      map[string]bool
	omitDefault string
	domain      string
}

type attrKey struct {
	kind ElementKind
	attr string
}

type nestingRule struct {
	requireParent ElementKind
	denyParent    ElementKind
}

type capabilityTable struct {
	unsupported map[ElementKind]bool
	nesting     map[ElementKind]nestingRule
	attrs       map[attrKey]rule
}

var capabilityTables = loadCapabilityTables()

func loadCapabilityTables() map[Flavor]*capabilityTable {
	var raw map[string]rawTable
	if err := yaml.Unmarshal(flavorsYAML, &raw); err != nil {
		panic(fmt.Sprintf("ssml: embedded capability tables: %v", err))
	}

	byName := make(map[string]Flavor, len(flavorNames))
	for f, n := range flavorNames {
		byName[n] = f
	}

	out := make(map[Flavor]*capabilityTable, len(raw))
	for name, rt := range raw {
		f, ok := byName[name]
		if !ok {
			panic("ssml: embedded capability tables: unknown flavor " + name)
		}
		t := &capabilityTable{
			unsupported: make(map[ElementKind]bool),
			nesting:     make(map[ElementKind]nestingRule),
			attrs:       make(map[attrKey]rule),
		}
		for _, k := range rt.UnsupportedElements {
			t.unsupported[ElementKind(k)] = true
		}
		for _, n := range rt.Nesting {
			t.nesting[ElementKind(n.Element)] = nestingRule{
				requireParent: ElementKind(n.RequireParent),
				denyParent:    ElementKind(n.DenyParent),
			}
		}
		for _, ua := range rt.UnsupportedAttributes {
			t.attrs[attrKey{ElementKind(ua.Element), ua.Attr}] = rule{unsupported: true}
		}
		for _, ar := range rt.Attributes {
			r := rule{
				policy:      ar.Policy,
				min:         ar.Min,
				max:         ar.Max,
				omitDefault: ar.OmitDefault,
				domain:      ar.Domain,
			}
			if len(ar.Values) > 0 {
				r.values = make(map[string]bool, len(ar.Values))
				for _, v := range ar.Values {
					r.values[v] = true
				}
			}
			if r.domain == "" {
				r.domain = describeDomain(ar.Values, ar.Min, ar.Max)
			}
			t.attrs[attrKey{ElementKind(ar.Element), ar.Attr}] = r
		}
		out[f] = t
	}
	return out
}

func describeDomain(values []string, min, max *float64) string {
	switch {
	case len(values) > 0:
		return "one of " + strings.Join(values, ", ")
	case min != nil && max != nil:
		return formatFloat(*min) + " to " + formatFloat(*max)
	case max != nil:
		return "at most " + formatFloat(*max)
	case min != nil:
		return "at least " + formatFloat(*min)
	default:
		return "a supported value"
	}
}

// capability returns the flavor's rule for an attribute. Missing entries
// return the zero rule.
func capability(f Flavor, kind ElementKind, name string) rule {
	t := capabilityTables[f]
	if t == nil {
		return rule{}
	}
	return t.attrs[attrKey{kind, name}]
}

// elementAllowed reports whether the flavor accepts kind directly under
// parent. Structural rules that hold in every flavor are checked at
// construction time, not here.
func elementAllowed(f Flavor, kind, parent ElementKind) bool {
	t := capabilityTables[f]
	if t == nil {
		return true
	}
	if t.unsupported[kind] {
		return false
	}
	if n, ok := t.nesting[kind]; ok {
		if n.requireParent != "" && parent != n.requireParent {
			return false
		}
		if n.denyParent != "" && parent == n.denyParent {
			return false
		}
	}
	return true
}
