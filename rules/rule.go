// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"

	"github.com/katalvlaran/frozencore/elements"
	"github.com/katalvlaran/frozencore/shell"
)

// Rule reports the number of frozen-core electrons of an element.
type Rule interface {
	// Name identifies the rule in logs and listings.
	Name() string

	// NumCore returns the frozen electrons of atomic number z.
	NumCore(z int) (int, error)
}

// TableRule is a Rule backed by one level vector per element and a fixed
// direction (see shell.Configuration.ActiveTable).
type TableRule struct {
	name   string
	levels [elements.Count]shell.Levels
	active bool
}

// NewTableRule builds a TableRule from a full level table.
//
// Errors: ErrLevelsShape if len(levels) != elements.Count,
// shell.ErrNegativeLevel on negative entries.
func NewTableRule(name string, levels []shell.Levels, active bool) (*TableRule, error) {
	if len(levels) != elements.Count {
		return nil, fmt.Errorf("NewTableRule(%q): %d rows, want %d: %w",
			name, len(levels), elements.Count, ErrLevelsShape)
	}
	r := &TableRule{name: name, active: active}
	for z, lv := range levels {
		if err := lv.Validate(); err != nil {
			return nil, fmt.Errorf("NewTableRule(%q): Z=%d: %w", name, z, err)
		}
		r.levels[z] = lv
	}

	return r, nil
}

// Name returns the rule name.
func (r *TableRule) Name() string { return r.name }

// Active reports whether levels count kept shells (true) or frozen shells (false).
func (r *TableRule) Active() bool { return r.active }

// Levels returns the level vector of atomic number z.
func (r *TableRule) Levels(z int) (shell.Levels, error) {
	if !elements.Valid(z) {
		return shell.Levels{}, fmt.Errorf("%s.Levels(%d): %w", r.name, z, elements.ErrUnknownElement)
	}

	return r.levels[z], nil
}

// NumCore returns the frozen electrons of atomic number z under r.
func (r *TableRule) NumCore(z int) (int, error) {
	lv, err := r.Levels(z)
	if err != nil {
		return 0, err
	}
	cfg, err := shell.New(z)
	if err != nil {
		return 0, err
	}
	n, err := cfg.NumCoreElectrons(lv, r.active)
	if err != nil {
		return 0, fmt.Errorf("%s.NumCore(%d): %w", r.name, z, err)
	}

	return n, nil
}

// tableBuilder assembles level tables in the literal order the conventions
// are defined: later assignments override earlier ones.
type tableBuilder [elements.Count]shell.Levels

func (b *tableBuilder) fill(lv shell.Levels) *tableBuilder {
	for z := range b {
		b[z] = lv
	}

	return b
}

func (b *tableBuilder) set(zs []int, lv shell.Levels) *tableBuilder {
	for _, z := range zs {
		b[z] = lv
	}

	return b
}

func (b *tableBuilder) rule(name string, active bool) *TableRule {
	return &TableRule{name: name, levels: *b, active: active}
}
