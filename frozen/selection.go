// SPDX-License-Identifier: MIT

package frozen

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Selection builds the active mask of one molecule/occupation/spec triple and
// memoizes it until Reset.
type Selection struct {
	mol  Molecule
	occ  mat.Matrix
	spec Spec
	opts options

	mask *Mask
}

// New returns a Selection. Inputs are validated lazily by Mask.
func New(mol Molecule, occ mat.Matrix, spec Spec, opts ...Option) *Selection {
	return &Selection{mol: mol, occ: occ, spec: spec, opts: gatherOptions(opts...)}
}

// BuildActiveMask is the one-shot form of New(...).Mask().
func BuildActiveMask(mol Molecule, occ mat.Matrix, spec Spec, opts ...Option) (*Mask, error) {
	return New(mol, occ, spec, opts...).Mask()
}

// Spec returns the current frozen-core specification.
func (s *Selection) Spec() Spec { return s.spec }

// ECPOnly reports the ECP accounting mode.
func (s *Selection) ECPOnly() bool { return s.opts.ecpOnly }

// Reset discards the memoized mask.
func (s *Selection) Reset() {
	s.mask = nil
}

// SetSpec replaces the specification and resets.
func (s *Selection) SetSpec(spec Spec) {
	s.spec = spec
	s.Reset()
}

// SetOccupation replaces the occupation array and resets.
func (s *Selection) SetOccupation(occ mat.Matrix) {
	s.occ = occ
	s.Reset()
}

// SetEnergy replaces the orbital energies (nil removes them) and resets.
func (s *Selection) SetEnergy(e mat.Matrix) {
	s.opts.energy = e
	s.Reset()
}

// SetECPOnly changes the ECP accounting mode and resets.
func (s *Selection) SetECPOnly(v bool) {
	s.opts.ecpOnly = v
	s.Reset()
}

// Check runs the pre-conditions: occupation shape, electron count,
// integrality and non-increasing order (ErrSanity), and energy shape
// (ErrShapeMismatch).
func (s *Selection) Check() error {
	_, _, err := s.arrays()

	return err
}

func (s *Selection) arrays() (occ array, energy *array, err error) {
	occ, err = newArray(s.occ)
	if err != nil {
		return array{}, nil, fmt.Errorf("Check: occupation: %w", err)
	}
	if err = checkOccupation(occ, s.mol.NumElectrons()); err != nil {
		return array{}, nil, fmt.Errorf("Check: %w", err)
	}
	if s.opts.energy != nil {
		e, err := newArray(s.opts.energy)
		if err != nil {
			return array{}, nil, fmt.Errorf("Check: energy: %w", err)
		}
		if !e.sameShape(occ) {
			return array{}, nil, fmt.Errorf("Check: energy %dx%d (ndim %d) vs occupation %dx%d (ndim %d): %w",
				e.channels(), e.orbitals(), e.ndim, occ.channels(), occ.orbitals(), occ.ndim, ErrShapeMismatch)
		}
		energy = &e
	}

	return occ, energy, nil
}

// Mask returns the active mask, building it on first use.
func (s *Selection) Mask() (*Mask, error) {
	if s.mask != nil {
		return s.mask, nil
	}
	m, err := s.build()
	if err != nil {
		return nil, err
	}
	s.mask = m

	return m, nil
}

// Frozen returns the frozen orbital indices per channel. The indices are
// derived from the memoized mask; each call returns a fresh copy.
func (s *Selection) Frozen() ([][]int, error) {
	m, err := s.Mask()
	if err != nil {
		return nil, err
	}

	return m.Frozen(), nil
}

func (s *Selection) build() (*Mask, error) {
	occ, energy, err := s.arrays()
	if err != nil {
		return nil, err
	}
	nset, nmo := occ.channels(), occ.orbitals()
	mask := newMask(nset, nmo, occ.ndim)

	switch spec := s.spec.(type) {
	case FrozenList:
		for ch := 0; ch < nset; ch++ {
			if err = mask.freeze(ch, spec); err != nil {
				return nil, fmt.Errorf("Mask: FrozenList: %w", err)
			}
		}
	case FrozenLists:
		if len(spec) != nset {
			return nil, fmt.Errorf("Mask: %d frozen lists for %d channels: %w", len(spec), nset, ErrShapeMismatch)
		}
		for ch, idx := range spec {
			if err = mask.freeze(ch, idx); err != nil {
				return nil, fmt.Errorf("Mask: FrozenLists: %w", err)
			}
		}
	case EnergyWindow:
		if energy == nil {
			return nil, fmt.Errorf("Mask: EnergyWindow: %w", ErrEnergyRequired)
		}
		lo, hi := math.Min(spec.Low, spec.High), math.Max(spec.Low, spec.High)
		for ch, row := range energy.data {
			for i, e := range row {
				mask.data[ch][i] = e >= lo && e <= hi
			}
		}
	case GaussianWindow:
		return nil, fmt.Errorf("Mask: GaussianWindow: %w", ErrNotImplemented)
	default:
		counts, err := resolve(s.mol, s.spec, s.opts.ecpOnly, s.opts.log)
		if err != nil {
			return nil, fmt.Errorf("Mask: %w", err)
		}
		if err = freezeByElectrons(mask, occ, counts); err != nil {
			return nil, fmt.Errorf("Mask: %w", err)
		}
		s.opts.log.Debug("frozen electrons resolved",
			zap.Int("occupied", counts.Occupied),
			zap.Int("virtual", counts.Virtual),
			zap.Int("channels", nset))
	}

	return mask, nil
}

// freezeByElectrons freezes the lowest Occupied and highest Virtual orbitals
// given as electron counts. Each orbital holds max(occ) electrons per channel.
func freezeByElectrons(mask *Mask, occ array, counts Counts) error {
	perOrbital := int(math.Round(occ.max()))
	denom := occ.channels() * perOrbital
	if denom == 0 {
		if counts.Occupied != 0 || counts.Virtual != 0 {
			return fmt.Errorf("%+v frozen electrons with empty occupation: %w", counts, ErrFractionalOrbital)
		}
		return nil
	}
	if counts.Occupied%denom != 0 || counts.Virtual%denom != 0 {
		return fmt.Errorf("%+v electrons over %d channels of %d-electron orbitals: %w",
			counts, occ.channels(), perOrbital, ErrFractionalOrbital)
	}
	nOcc, nVir := counts.Occupied/denom, counts.Virtual/denom
	nmo := occ.orbitals()
	if nOcc+nVir > nmo {
		return fmt.Errorf("%d occupied + %d virtual frozen of %d orbitals: %w", nOcc, nVir, nmo, ErrTooManyFrozen)
	}
	for _, row := range mask.data {
		for i := 0; i < nOcc; i++ {
			row[i] = false
		}
		for i := nmo - nVir; i < nmo; i++ {
			row[i] = false
		}
	}

	return nil
}
