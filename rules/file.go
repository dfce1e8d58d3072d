// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/frozencore/elements"
	"github.com/katalvlaran/frozencore/shell"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Definition is the decoded form of a rule file:
//
//	name: MyCore
//	active: true
//	default: [1, 1, 2, 3]
//	groups:
//	  transition: [2, 2, 2, 3]
//	elements:
//	  Pd: [1, 1, 1, 3]
//	  "79": [2, 2, 2, 3]
//
// Level vectors are applied default first, then groups in the fixed order
// alkali, lanthanides, actinides, transition, pmain, metalloids, then
// individual elements. Active defaults to true.
type Definition struct {
	Name     string           `koanf:"name"`
	Active   *bool            `koanf:"active"`
	Default  []int            `koanf:"default"`
	Groups   map[string][]int `koanf:"groups"`
	Elements map[string][]int `koanf:"elements"`
}

// LoadFile reads a YAML rule definition from path and builds its rule.
func LoadFile(path string) (*TableRule, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %v: %w", path, err, ErrRuleFile)
	}

	return fromKoanf(k, path)
}

// Parse decodes a YAML rule definition held in memory.
func Parse(data []byte) (*TableRule, error) {
	raw, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrRuleFile)
	}
	k := koanf.New(".")
	if err = k.Load(confmap.Provider(raw, "."), nil); err != nil {
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrRuleFile)
	}

	return fromKoanf(k, "<memory>")
}

func fromKoanf(k *koanf.Koanf, source string) (*TableRule, error) {
	var def Definition
	if err := k.Unmarshal("", &def); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", source, err, ErrRuleFile)
	}
	if def.Name == "" {
		def.Name = source
	}

	return def.Build()
}

// Build turns the definition into a TableRule.
func (d Definition) Build() (*TableRule, error) {
	active := true
	if d.Active != nil {
		active = *d.Active
	}

	var b tableBuilder
	if d.Default != nil {
		lv, err := toLevels(d.Default)
		if err != nil {
			return nil, fmt.Errorf("%s: default: %w", d.Name, err)
		}
		b.fill(lv)
	}

	known := make(map[string]bool, len(groupOrder))
	for _, g := range groupOrder {
		known[g.name] = true
	}
	groups := make(map[string][]int, len(d.Groups))
	for name, v := range d.Groups {
		key := Normalize(name)
		if !known[key] {
			return nil, fmt.Errorf("%s: group %q: %w", d.Name, name, ErrUnknownGroup)
		}
		groups[key] = v
	}
	for _, g := range groupOrder {
		v, ok := groups[g.name]
		if !ok {
			continue
		}
		lv, err := toLevels(v)
		if err != nil {
			return nil, fmt.Errorf("%s: group %s: %w", d.Name, g.name, err)
		}
		b.set(g.members(), lv)
	}

	for id, v := range d.Elements {
		z, err := elements.Charge(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		lv, err := toLevels(v)
		if err != nil {
			return nil, fmt.Errorf("%s: element %s: %w", d.Name, strings.TrimSpace(id), err)
		}
		b[z] = lv
	}

	levels := make([]shell.Levels, len(b))
	copy(levels, b[:])

	return NewTableRule(d.Name, levels, active)
}

func toLevels(v []int) (shell.Levels, error) {
	if len(v) != shell.MaxAng {
		return shell.Levels{}, fmt.Errorf("%d entries, want %d: %w", len(v), shell.MaxAng, ErrLevelsShape)
	}
	var lv shell.Levels
	copy(lv[:], v)

	return lv, lv.Validate()
}
