// SPDX-License-Identifier: MIT

package rules

import "github.com/katalvlaran/frozencore/shell"

// None freezes nothing.
func None() *TableRule {
	var b tableBuilder
	return b.rule("None", false)
}

// ORCA returns the ORCA default frozen core.
//
//	H–He 0; Li–Be 0; B–Ne 2; Na–Mg 2; Al–Ar 10; K–Zn 10; Ga–Kr 18; Rb–Sr 18;
//	Y–Cd 28 (Pd 10); In–Xe 36; Cs–Ba 36; La–Lu 36; Hf–Hg 46; Tl–Rn 68;
//	Fr–Ra 68; Ac–Lr 68; Rf–Og 100.
func ORCA() *TableRule {
	var b tableBuilder
	b.set(span(0, 3), shell.Levels{1, 1, 1, 1})
	b.set(AlkaliMetals(), shell.Levels{2, 2, 3, 3})
	b.set(Lanthanides(), shell.Levels{2, 2, 3, 3})
	b.set(Actinides(), shell.Levels{2, 2, 3, 3})
	b.set(TransitionMetals(), shell.Levels{2, 2, 2, 3})
	b.set(MainGroupP(), shell.Levels{1, 1, 2, 2})
	// post-actinide transition metals
	b.set(span(104, 113), shell.Levels{1, 1, 2, 2})

	return b.rule("ORCA", true)
}

// NobleGasCore freezes the previous noble-gas shell of every element.
//
//	Li–Ne 2; Na–Ar 10; K–Kr 18; Rb–Xe 36 (Pd 18); Cs–Rn 54; Fr–Og 86.
func NobleGasCore() *TableRule {
	var b tableBuilder
	b.fill(shell.Levels{1, 1, 2, 3})

	return b.rule("FreezeNobleGasCore", true)
}

// InnerNobleGasCore freezes the noble-gas shell one period below the previous one.
//
//	H–Ne 0; Na–Ar 2; K–Kr 10; Rb–Xe 18 (Pd 10); Cs–Rn 36; Fr–Og 54.
func InnerNobleGasCore() *TableRule {
	var b tableBuilder
	b.fill(shell.Levels{2, 2, 3, 4})

	return b.rule("FreezeInnerNobleGasCore", true)
}

// SmallCore is the small-core convention of Rassolov, Pople, Redfern and
// Curtiss, Chem. Phys. Lett. 350, 573 (2001).
func SmallCore() *TableRule {
	var b tableBuilder
	b.fill(shell.Levels{1, 1, 2, 3})
	b.set(AlkaliMetals(), shell.Levels{2, 2, 2, 3})
	b.set(span(3, 5), shell.Levels{1, 1, 2, 3})

	return b.rule("SmallCore", true)
}

// LargeCore is the large-core convention of Rassolov et al. (2001).
func LargeCore() *TableRule {
	var b tableBuilder
	b.fill(shell.Levels{1, 1, 2, 3})
	b.set(MainGroupP(), shell.Levels{1, 1, 1, 2})
	b.set(TransitionMetals(), shell.Levels{1, 1, 2, 2})

	return b.rule("LargeCore", true)
}
