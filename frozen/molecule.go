// SPDX-License-Identifier: MIT

package frozen

import (
	"fmt"

	"github.com/katalvlaran/frozencore/elements"
)

// Molecule is the view of a molecular structure needed for frozen-core
// selection. It is normally provided by the SCF engine.
type Molecule interface {
	// NumAtoms returns the number of atoms.
	NumAtoms() int

	// AtomSymbol returns an element identifier of atom i accepted by
	// elements.Charge.
	AtomSymbol(i int) string

	// AtomCharge returns the explicit electrons attributed to atom i: the
	// nuclear charge minus electrons replaced by an effective core potential.
	AtomCharge(i int) int

	// NumElectrons returns the total number of explicit electrons.
	NumElectrons() int
}

// Atom is one atom of a Mol.
type Atom struct {
	// Symbol is an element identifier accepted by elements.Charge.
	Symbol string

	// ECPElectrons is the number of core electrons replaced by an effective
	// core potential; zero for all-electron atoms.
	ECPElectrons int
}

// Mol is a minimal Molecule: atoms plus net charge.
type Mol struct {
	atoms  []Atom
	z      []int
	charge int
}

// NewMol validates atoms and builds a Mol with net molecular charge.
//
// Errors: ErrUnknownElement for unknown symbols, ErrInvalidMolecule when an
// ECP removes more electrons than the nucleus carries or the charge leaves a
// negative electron count.
func NewMol(charge int, atoms ...Atom) (*Mol, error) {
	m := &Mol{atoms: make([]Atom, len(atoms)), z: make([]int, len(atoms)), charge: charge}
	copy(m.atoms, atoms)
	for i, a := range atoms {
		z, err := elements.Charge(a.Symbol)
		if err != nil {
			return nil, fmt.Errorf("NewMol: atom %d: %w", i, err)
		}
		if a.ECPElectrons < 0 || a.ECPElectrons > z {
			return nil, fmt.Errorf("NewMol: atom %d (%s): %d ECP electrons for Z=%d: %w",
				i, a.Symbol, a.ECPElectrons, z, ErrInvalidMolecule)
		}
		m.z[i] = z
	}
	if m.NumElectrons() < 0 {
		return nil, fmt.Errorf("NewMol: charge %d leaves %d electrons: %w", charge, m.NumElectrons(), ErrInvalidMolecule)
	}

	return m, nil
}

// NumAtoms returns the number of atoms.
func (m *Mol) NumAtoms() int { return len(m.atoms) }

// AtomSymbol returns the identifier of atom i.
func (m *Mol) AtomSymbol(i int) string { return m.atoms[i].Symbol }

// AtomCharge returns the nuclear charge of atom i minus its ECP electrons.
func (m *Mol) AtomCharge(i int) int { return m.z[i] - m.atoms[i].ECPElectrons }

// NumElectrons returns the explicit electrons of the molecule.
func (m *Mol) NumElectrons() int {
	total := -m.charge
	for i := range m.atoms {
		total += m.AtomCharge(i)
	}

	return total
}
