// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/frozencore/elements"
)

const (
	// MaxLevel is the number of principal levels in a Table.
	MaxLevel = 7

	// MaxAng is the number of angular momentum types (s, p, d, f).
	MaxAng = elements.MaxAng
)

// angLabels names the Table columns.
var angLabels = [MaxAng]string{"s", "p", "d", "f"}

// Capacity returns the electron capacity of one shell of angular momentum ang.
func Capacity(ang int) int {
	return 2 + 4*ang
}

// Table is an occupancy table indexed [level][angular momentum].
type Table [MaxLevel][MaxAng]int

// Sum returns the total number of electrons in t.
func (t Table) Sum() int {
	total := 0
	for l := 0; l < MaxLevel; l++ {
		for a := 0; a < MaxAng; a++ {
			total += t[l][a]
		}
	}

	return total
}

// Column returns the per-level electron counts of angular momentum ang.
func (t Table) Column(ang int) [MaxLevel]int {
	var col [MaxLevel]int
	for l := 0; l < MaxLevel; l++ {
		col[l] = t[l][ang]
	}

	return col
}

// columnSum returns the electrons of column ang held in rows [0, upto).
func (t Table) columnSum(ang, upto int) int {
	total := 0
	for l := 0; l < upto && l < MaxLevel; l++ {
		total += t[l][ang]
	}

	return total
}

// String renders t as spectroscopic notation, e.g. "1s2 2s2 2p4".
func (t Table) String() string {
	var parts []string
	for l := 0; l < MaxLevel; l++ {
		for a := 0; a < MaxAng; a++ {
			if t[l][a] > 0 {
				parts = append(parts, fmt.Sprintf("%d%s%d", l+1, angLabels[a], t[l][a]))
			}
		}
	}

	return strings.Join(parts, " ")
}

// Levels holds one level count per angular momentum column.
type Levels [MaxAng]int

// Uniform returns a Levels vector with every column set to n.
func Uniform(n int) Levels {
	return Levels{n, n, n, n}
}

// Validate returns ErrNegativeLevel if any entry of lv is negative.
func (lv Levels) Validate() error {
	for a, n := range lv {
		if n < 0 {
			return fmt.Errorf("Levels[%s]=%d: %w", angLabels[a], n, ErrNegativeLevel)
		}
	}

	return nil
}
