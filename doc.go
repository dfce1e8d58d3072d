// Package frozencore selects the frozen-core orbitals of a molecule before a
// post-SCF correlation calculation (MP2, coupled cluster, double hybrids).
//
// 🚀 What is frozencore?
//
//	A small, deterministic library that brings together:
//		• Reference data: ground-state electron configurations of Z = 0..118
//		• Shell tables: per-level occupancy and core/valence splitting
//		• Rules: ORCA, noble-gas, inner noble-gas, small- and large-core conventions
//		• Resolution: frozen electron counts with ECP accounting
//		• Masks: active orbital masks for restricted and unrestricted references
//
// ✨ Why choose frozencore?
//
//   - Published conventions reproduced element by element
//   - Custom rules from YAML files, per-element overrides, index lists and
//     energy windows
//   - Explicit errors for every inconsistent request; nothing panics on input
//   - gonum matrices in and out
//
// Everything is organized under four packages and one command:
//
//	elements/       element symbols, names and reference configurations
//	shell/          occupancy table [level][s,p,d,f] and frozen-level splitting
//	rules/          frozen-core rules, the named registry, YAML rule files
//	frozen/         frozen-number resolution, active masks, orbital partition
//	cmd/frozencore/ CLI: rules, table, resolve, mask
//
// Quick example:
//
//	mol, _ := frozen.NewMol(0, frozen.Atom{Symbol: "O"}, frozen.Atom{Symbol: "H"}, frozen.Atom{Symbol: "H"})
//	occ := mat.NewVecDense(7, []float64{2, 2, 2, 2, 2, 0, 0})
//	mask, _ := frozen.BuildActiveMask(mol, occ, frozen.Named("orca"))
//	fmt.Println(mask) // 0111111
//
//	go get github.com/katalvlaran/frozencore
package frozencore
