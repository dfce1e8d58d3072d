package frozen_test

import (
	"testing"

	"github.com/katalvlaran/frozencore/frozen"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// water returns H2O (10 electrons).
func water(t *testing.T) *frozen.Mol {
	t.Helper()
	mol, err := frozen.NewMol(0, frozen.Atom{Symbol: "O"}, frozen.Atom{Symbol: "H"}, frozen.Atom{Symbol: "H"})
	require.NoError(t, err)

	return mol
}

// waterCation returns H2O+ (9 electrons).
func waterCation(t *testing.T) *frozen.Mol {
	t.Helper()
	mol, err := frozen.NewMol(1, frozen.Atom{Symbol: "O"}, frozen.Atom{Symbol: "H"}, frozen.Atom{Symbol: "H"})
	require.NoError(t, err)

	return mol
}

// closedShell is the restricted occupation of water in seven orbitals.
func closedShell() *mat.VecDense {
	return mat.NewVecDense(7, []float64{2, 2, 2, 2, 2, 0, 0})
}

// openShell is the unrestricted occupation of the water cation.
func openShell() *mat.Dense {
	return mat.NewDense(2, 7, []float64{
		1, 1, 1, 1, 1, 0, 0,
		1, 1, 1, 1, 0, 0, 0,
	})
}

// energies are orbital energies matching closedShell.
func energies() *mat.VecDense {
	return mat.NewVecDense(7, []float64{-20.5, -1.3, -0.7, -0.5, -0.4, 0.2, 0.3})
}
