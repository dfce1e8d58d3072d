// SPDX-License-Identifier: MIT

package frozen

import (
	"fmt"

	"github.com/katalvlaran/frozencore/elements"
	"github.com/katalvlaran/frozencore/rules"
	"go.uber.org/zap"
)

// Resolve returns the frozen electron totals of mol under spec.
//
//   - None (or nil) → {0, 0}.
//   - Counts → returned unchanged, no per-atom logic.
//   - Named, Custom → the rule is applied to every atom.
//   - PerElement → each atom uses the entry of its element.
//
// Atoms carrying an effective core potential (AtomCharge below the nuclear
// charge) are credited for the electrons it removed: with ecpOnly they
// contribute no rule-based frozen electrons, otherwise their rule value is
// reduced by min(rule, nuclear − AtomCharge).
//
// Errors: ErrInvalidSpec, ErrNoElementRule, ErrUnknownElement,
// rules.ErrUnknownRule, ErrPartialShell.
func Resolve(mol Molecule, spec Spec, ecpOnly bool) (Counts, error) {
	return resolve(mol, spec, ecpOnly, zap.NewNop())
}

func resolve(mol Molecule, spec Spec, ecpOnly bool, log *zap.Logger) (Counts, error) {
	var perElement map[int]Spec
	switch s := spec.(type) {
	case nil, None:
		return Counts{}, nil
	case Counts:
		if s.Occupied < 0 || s.Virtual < 0 {
			return Counts{}, fmt.Errorf("Resolve: negative counts %+v: %w", s, ErrInvalidSpec)
		}
		return s, nil
	case PerElement:
		perElement = make(map[int]Spec, len(s))
		for id, sub := range s {
			z, err := elements.Charge(id)
			if err != nil {
				return Counts{}, fmt.Errorf("Resolve: PerElement key: %w", err)
			}
			if _, dup := perElement[z]; dup {
				return Counts{}, fmt.Errorf("Resolve: PerElement key %q repeats Z=%d: %w", id, z, ErrInvalidSpec)
			}
			perElement[z] = sub
		}
	case Named, Custom:
	default:
		return Counts{}, fmt.Errorf("Resolve: %T does not define frozen electron counts: %w", spec, ErrInvalidSpec)
	}

	var total Counts
	for i := 0; i < mol.NumAtoms(); i++ {
		sym := mol.AtomSymbol(i)
		nuclear, err := elements.Charge(sym)
		if err != nil {
			return Counts{}, fmt.Errorf("Resolve: atom %d: %w", i, err)
		}
		explicit := mol.AtomCharge(i)

		sub := spec
		if perElement != nil {
			var ok bool
			if sub, ok = perElement[nuclear]; !ok {
				return Counts{}, fmt.Errorf("Resolve: atom %d (%s): %w", i, sym, ErrNoElementRule)
			}
		}
		atom, err := atomCounts(sub, nuclear)
		if err != nil {
			return Counts{}, fmt.Errorf("Resolve: atom %d (%s): %w", i, sym, err)
		}

		if ecp := nuclear - explicit; ecp != 0 {
			if ecpOnly {
				atom.Occupied = 0
			} else {
				atom.Occupied -= min(atom.Occupied, ecp)
			}
		}
		log.Debug("frozen electrons of atom",
			zap.Int("atom", i),
			zap.String("symbol", sym),
			zap.Int("nuclear_charge", nuclear),
			zap.Int("ecp_electrons", nuclear-explicit),
			zap.Int("occupied", atom.Occupied),
			zap.Int("virtual", atom.Virtual))
		total = total.Add(atom)
	}

	return total, nil
}

// atomCounts evaluates a per-atom spec for atomic number z.
func atomCounts(spec Spec, z int) (Counts, error) {
	switch s := spec.(type) {
	case nil, None:
		return Counts{}, nil
	case Counts:
		if s.Occupied < 0 || s.Virtual < 0 {
			return Counts{}, fmt.Errorf("negative counts %+v: %w", s, ErrInvalidSpec)
		}
		return s, nil
	case Named:
		r, err := rules.Lookup(string(s))
		if err != nil {
			return Counts{}, err
		}
		n, err := r.NumCore(z)
		return Counts{Occupied: n}, err
	case Custom:
		if s.Rule == nil {
			return Counts{}, fmt.Errorf("Custom without rule: %w", ErrInvalidSpec)
		}
		n, err := s.Rule.NumCore(z)
		return Counts{Occupied: n}, err
	default:
		return Counts{}, fmt.Errorf("%T is not a per-atom rule: %w", spec, ErrInvalidSpec)
	}
}
