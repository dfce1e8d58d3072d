// SPDX-License-Identifier: MIT

package frozen

import (
	"errors"

	"github.com/katalvlaran/frozencore/elements"
	"github.com/katalvlaran/frozencore/shell"
)

var (
	// ErrUnknownElement aliases elements.ErrUnknownElement.
	ErrUnknownElement = elements.ErrUnknownElement

	// ErrPartialShell aliases shell.ErrPartialShell (policy consistency).
	ErrPartialShell = shell.ErrPartialShell

	// ErrShapeMismatch indicates occupation/energy arrays of different shapes,
	// or a per-channel index list count different from the channel count.
	ErrShapeMismatch = errors.New("frozen: shape mismatch")

	// ErrFractionalOrbital indicates frozen electrons that do not fill whole
	// orbitals across all channels.
	ErrFractionalOrbital = errors.New("frozen: could not partially freeze orbitals")

	// ErrSanity indicates an occupation array failing the pre-conditions:
	// electron count, integrality or non-increasing order.
	ErrSanity = errors.New("frozen: occupation sanity check failed")

	// ErrNotImplemented marks a declared but unsupported selection mode.
	ErrNotImplemented = errors.New("frozen: selection mode not implemented")

	// ErrInvalidSpec indicates a Spec variant that cannot be used where it
	// was given, or invalid values inside it.
	ErrInvalidSpec = errors.New("frozen: invalid frozen-core specification")

	// ErrNoElementRule indicates a PerElement spec without an entry for an
	// element present in the molecule.
	ErrNoElementRule = errors.New("frozen: no rule for element")

	// ErrIndexOutOfRange indicates a frozen orbital index outside the orbital range.
	ErrIndexOutOfRange = errors.New("frozen: orbital index out of range")

	// ErrEnergyRequired indicates an energy-based operation without orbital energies.
	ErrEnergyRequired = errors.New("frozen: orbital energies required")

	// ErrTooManyFrozen indicates more frozen orbitals than orbitals in a channel.
	ErrTooManyFrozen = errors.New("frozen: frozen orbitals exceed orbital count")

	// ErrInvalidMolecule indicates an atom list that cannot describe a molecule.
	ErrInvalidMolecule = errors.New("frozen: invalid molecule")
)
