// Package rules defines frozen-core conventions: per-element level vectors
// that decide how many electrons of each atom are excluded from a post-SCF
// correlation treatment.
//
// A Rule answers NumCore(z), the number of frozen electrons of element z.
// The built-in conventions are TableRule values:
//
//	None               nothing is frozen
//	ORCA (alias PySCF) the ORCA default frozen core
//	NobleGasCore       the previous noble-gas shell is frozen
//	InnerNobleGasCore  the noble-gas shell before the previous one is frozen
//	SmallCore          small-core definition of Rassolov et al., CPL 350, 573 (2001)
//	LargeCore          large-core definition of the same work
//
// Built-ins are reachable by name through Lookup; names are matched
// case-insensitively with "-", "_" and spaces ignored, so "Freeze-Noble-Gas-Core"
// and "freezenoblegascore" are the same rule. Custom conventions can be
// assembled with NewTableRule or loaded from YAML with LoadFile/Parse.
//
// Rules are immutable once built and safe for concurrent use.
package rules
