// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"

	"github.com/katalvlaran/frozencore/elements"
)

// Configuration is the immutable occupancy table of one element.
type Configuration struct {
	z     int
	table Table
}

// New builds the Configuration of atomic number z.
// Returns ErrUnknownElement when z is outside the reference table.
func New(z int) (*Configuration, error) {
	counts, err := elements.Configuration(z)
	if err != nil {
		return nil, fmt.Errorf("shell.New: %w", err)
	}

	var table Table
	for ang := 0; ang < MaxAng; ang++ {
		n := counts[ang]
		if n == 0 {
			continue
		}
		capacity := Capacity(ang)
		full := n / capacity
		end := ang + full
		if end > MaxLevel {
			return nil, fmt.Errorf("shell.New(%d): %s column overflows %d levels: %w",
				z, angLabels[ang], MaxLevel, ErrUnknownElement)
		}
		for l := ang; l < end; l++ {
			table[l][ang] = capacity
		}
		if end < MaxLevel {
			table[end][ang] = n % capacity
		}
	}

	return &Configuration{z: z, table: table}, nil
}

// ForElement builds the Configuration of an element identifier accepted by
// elements.Charge (symbol, name or atomic number).
func ForElement(id string) (*Configuration, error) {
	z, err := elements.Charge(id)
	if err != nil {
		return nil, fmt.Errorf("shell.ForElement: %w", err)
	}

	return New(z)
}

// AtomicNumber returns the element of c.
func (c *Configuration) AtomicNumber() int {
	return c.z
}

// Table returns a copy of the full occupancy table.
func (c *Configuration) Table() Table {
	return c.table
}

// valenceEdge returns the highest occupied s level, or -1 for an empty table.
// The s column marks the valence shell for every angular momentum type.
func (c *Configuration) valenceEdge() int {
	for l := MaxLevel - 1; l >= 0; l-- {
		if c.table[l][0] > 0 {
			return l
		}
	}

	return -1
}

// ActiveTable returns the occupancy table left after freezing according to
// levels.
//
// With active=false, levels[c] counts the rows of column c frozen from level 1
// upward. With active=true, levels[c] counts the rows kept active below and
// including the valence edge; rows beneath them are frozen.
//
// Errors: ErrNegativeLevel, ErrPartialShell.
func (c *Configuration) ActiveTable(levels Levels, active bool) (Table, error) {
	if err := levels.Validate(); err != nil {
		return Table{}, fmt.Errorf("ActiveTable(Z=%d): %w", c.z, err)
	}

	table := c.table
	edge := c.valenceEdge()
	for ang := 0; ang < MaxAng; ang++ {
		cut := levels[ang]
		if active {
			if edge < 0 {
				continue
			}
			cut = edge - levels[ang] + 1
			if cut <= 0 {
				continue
			}
		}
		if cut > MaxLevel {
			cut = MaxLevel
		}
		if table.columnSum(ang, cut)%Capacity(ang) != 0 {
			return Table{}, fmt.Errorf("ActiveTable(Z=%d): %s levels below %d: %w",
				c.z, angLabels[ang], cut+1, ErrPartialShell)
		}
		for l := 0; l < cut; l++ {
			table[l][ang] = 0
		}
	}

	return table, nil
}

// NumCoreElectrons returns the number of electrons frozen by levels, i.e.
// the full table sum minus the ActiveTable sum.
func (c *Configuration) NumCoreElectrons(levels Levels, active bool) (int, error) {
	act, err := c.ActiveTable(levels, active)
	if err != nil {
		return 0, err
	}

	return c.table.Sum() - act.Sum(), nil
}
