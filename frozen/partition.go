// SPDX-License-Identifier: MIT

package frozen

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Partition counts the orbital classes of one channel. Occupied orbitals are
// those with non-zero occupation; they precede the virtual ones.
type Partition struct {
	NMO       int // orbitals in the channel
	NOcc      int // occupied orbitals, frozen or not
	Core      int // frozen occupied
	Occ       int // active occupied
	Vir       int // active virtual
	FrozenVir int // frozen virtual
}

// Active returns the active orbital count.
func (p Partition) Active() int { return p.Occ + p.Vir }

// Bounds returns the block boundaries of the shuffled orbital order:
// (Core, NOcc, NOcc+Vir, NMO).
func (p Partition) Bounds() [4]int {
	return [4]int{p.Core, p.NOcc, p.NOcc + p.Vir, p.NMO}
}

// Partition returns the orbital partition of every channel.
func (s *Selection) Partition() ([]Partition, error) {
	occ, _, err := s.arrays()
	if err != nil {
		return nil, err
	}
	mask, err := s.Mask()
	if err != nil {
		return nil, err
	}

	out := make([]Partition, occ.channels())
	for ch, row := range occ.data {
		p := Partition{NMO: len(row)}
		for _, v := range row {
			if v > absTol {
				p.NOcc++
			}
		}
		for i, active := range mask.data[ch] {
			switch {
			case i < p.NOcc && active:
				p.Occ++
			case i < p.NOcc:
				p.Core++
			case active:
				p.Vir++
			default:
				p.FrozenVir++
			}
		}
		out[ch] = p
	}

	return out, nil
}

// Shuffle returns the orbital permutation of channel ch that groups orbitals
// as frozen occupied, active occupied, active virtual, frozen virtual, each
// group in ascending index order. Orbital i of the shuffled order is
// original orbital perm[i].
func (s *Selection) Shuffle(ch int) ([]int, error) {
	parts, err := s.Partition()
	if err != nil {
		return nil, err
	}
	if ch < 0 || ch >= len(parts) {
		return nil, fmt.Errorf("Shuffle(%d): %d channels: %w", ch, len(parts), ErrIndexOutOfRange)
	}
	nocc := parts[ch].NOcc
	row := s.mask.data[ch]

	var frzOcc, actOcc, actVir, frzVir []int
	for i, active := range row {
		switch {
		case i < nocc && !active:
			frzOcc = append(frzOcc, i)
		case i < nocc:
			actOcc = append(actOcc, i)
		case active:
			actVir = append(actVir, i)
		default:
			frzVir = append(frzVir, i)
		}
	}
	perm := make([]int, 0, len(row))
	perm = append(perm, frzOcc...)
	perm = append(perm, actOcc...)
	perm = append(perm, actVir...)
	perm = append(perm, frzVir...)

	for i, p := range perm {
		if i != p {
			s.opts.log.Warn("orbital indices will be shuffled", zap.Int("channel", ch), zap.Ints("order", perm))
			break
		}
	}

	return perm, nil
}

// ActiveColumns returns the columns of coeff (AO × MO coefficients of channel
// ch) belonging to active orbitals, in shuffled order.
func (s *Selection) ActiveColumns(coeff mat.Matrix, ch int) (*mat.Dense, error) {
	perm, err := s.Shuffle(ch)
	if err != nil {
		return nil, err
	}
	nao, nmo := coeff.Dims()
	if nmo != len(perm) {
		return nil, fmt.Errorf("ActiveColumns: %d coefficient columns for %d orbitals: %w", nmo, len(perm), ErrShapeMismatch)
	}
	parts, _ := s.Partition()
	p := parts[ch]
	if p.Active() == 0 {
		return nil, fmt.Errorf("ActiveColumns: channel %d has no active orbitals: %w", ch, ErrTooManyFrozen)
	}

	out := mat.NewDense(nao, p.Active(), nil)
	col := make([]float64, nao)
	for j, src := range perm[p.Core : p.Core+p.Active()] {
		mat.Col(col, src, coeff)
		out.SetCol(j, col)
	}

	return out, nil
}

// ActiveEnergies returns the orbital energies of the active orbitals of
// channel ch in shuffled order. Requires WithEnergy.
func (s *Selection) ActiveEnergies(ch int) ([]float64, error) {
	_, energy, err := s.arrays()
	if err != nil {
		return nil, err
	}
	if energy == nil {
		return nil, fmt.Errorf("ActiveEnergies: %w", ErrEnergyRequired)
	}
	perm, err := s.Shuffle(ch)
	if err != nil {
		return nil, err
	}
	parts, _ := s.Partition()
	p := parts[ch]

	out := make([]float64, 0, p.Active())
	for _, src := range perm[p.Core : p.Core+p.Active()] {
		out = append(out, energy.data[ch][src])
	}

	return out, nil
}
