// Package frozen selects the orbitals kept active in a post-SCF correlation
// treatment (MP2, IEPA, ring-CCD, doubly-hybrid functionals) and freezes the
// rest.
//
// Two stages:
//
//   - Resolve turns a Spec and a Molecule into frozen electron totals
//     (occupied core and high-lying virtual), consulting package rules per
//     atom and crediting electrons already removed by effective core potentials.
//   - Selection turns a Spec, an occupation array and optional orbital
//     energies into an active Mask aligned with the occupation array.
//
// Spec variants, in the order the mask builder dispatches on them:
//
//	FrozenList, FrozenLists  explicit frozen orbital indices
//	EnergyWindow             orbitals with energy inside [low, high] are active
//	GaussianWindow           reserved, ErrNotImplemented
//	None, Counts, Named,     rule-based: frozen electrons → lowest occupied and
//	Custom, PerElement       highest virtual orbitals
//
// Occupations and energies are gonum values: a mat.Vector is a single
// channel (restricted or generalized orbitals), any other mat.Matrix has one
// row per spin channel. Orbitals must be sorted occupied-first, which the
// pre-condition checks enforce.
//
//	sel := frozen.New(mol, occ, frozen.Named("FreezeNobleGasCore"))
//	mask, err := sel.Mask()
//	frz := mask.Frozen() // [][]int, ascending per channel
//
// A Selection memoizes its mask; Reset (or any Set* call) discards it.
// Selections are not safe for concurrent mutation; distinct Selections share
// only the read-only rule registry.
package frozen
