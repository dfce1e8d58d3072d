// SPDX-License-Identifier: MIT

package frozen

import (
	"fmt"
	"strings"
)

// Mask marks active orbitals per channel. It mirrors the shape of the
// occupation array it was built from: NDim 1 for a single vector, 2 otherwise.
type Mask struct {
	data [][]bool
	ndim int
}

// newMask returns an all-active mask.
func newMask(channels, orbitals, ndim int) *Mask {
	data := make([][]bool, channels)
	for ch := range data {
		row := make([]bool, orbitals)
		for i := range row {
			row[i] = true
		}
		data[ch] = row
	}

	return &Mask{data: data, ndim: ndim}
}

// NDim returns 1 for a single-vector mask and 2 for a channel matrix.
func (m *Mask) NDim() int { return m.ndim }

// Channels returns the number of channels.
func (m *Mask) Channels() int { return len(m.data) }

// Orbitals returns the number of orbitals per channel.
func (m *Mask) Orbitals() int {
	if len(m.data) == 0 {
		return 0
	}

	return len(m.data[0])
}

// At reports whether orbital i of channel ch is active.
func (m *Mask) At(ch, i int) bool { return m.data[ch][i] }

// Channel returns a copy of the active flags of channel ch.
func (m *Mask) Channel(ch int) []bool {
	out := make([]bool, len(m.data[ch]))
	copy(out, m.data[ch])

	return out
}

// Flat returns all flags in row-major order; for NDim 1 this is the mask itself.
func (m *Mask) Flat() []bool {
	out := make([]bool, 0, m.Channels()*m.Orbitals())
	for _, row := range m.data {
		out = append(out, row...)
	}

	return out
}

// NumActive returns the number of active orbitals over all channels.
func (m *Mask) NumActive() int {
	n := 0
	for _, row := range m.data {
		for _, v := range row {
			if v {
				n++
			}
		}
	}

	return n
}

// Frozen returns the frozen (inactive) orbital indices of every channel in
// ascending order. A NDim 1 mask yields a single row.
func (m *Mask) Frozen() [][]int {
	return m.indices(false)
}

// FrozenFlat returns the frozen orbital indices of a single-channel mask as a
// plain list. It fails with ErrShapeMismatch when the mask has NDim 2.
func (m *Mask) FrozenFlat() ([]int, error) {
	if m.ndim != 1 {
		return nil, fmt.Errorf("FrozenFlat: mask has %d dimensions: %w", m.ndim, ErrShapeMismatch)
	}

	return m.indices(false)[0], nil
}

// Active returns the active orbital indices of every channel in ascending order.
func (m *Mask) Active() [][]int {
	return m.indices(true)
}

func (m *Mask) indices(want bool) [][]int {
	out := make([][]int, len(m.data))
	for ch, row := range m.data {
		idx := []int{}
		for i, v := range row {
			if v == want {
				idx = append(idx, i)
			}
		}
		out[ch] = idx
	}

	return out
}

// Equal reports whether m and o have the same shape and flags.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.ndim != o.ndim || len(m.data) != len(o.data) {
		return false
	}
	for ch := range m.data {
		if len(m.data[ch]) != len(o.data[ch]) {
			return false
		}
		for i := range m.data[ch] {
			if m.data[ch][i] != o.data[ch][i] {
				return false
			}
		}
	}

	return true
}

// String renders each channel as a row of 1 (active) and 0 (frozen).
func (m *Mask) String() string {
	rows := make([]string, len(m.data))
	for ch, row := range m.data {
		var sb strings.Builder
		for _, v := range row {
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		rows[ch] = sb.String()
	}

	return strings.Join(rows, "\n")
}

// freeze clears idx in channel ch.
func (m *Mask) freeze(ch int, idx []int) error {
	row := m.data[ch]
	for _, i := range idx {
		if i < 0 || i >= len(row) {
			return fmt.Errorf("channel %d index %d of %d orbitals: %w", ch, i, len(row), ErrIndexOutOfRange)
		}
		row[i] = false
	}

	return nil
}

// FrozenIndices returns the frozen orbital indices of m, one row per channel
// even for NDim 1; see Mask.FrozenFlat for the single-channel list.
func FrozenIndices(m *Mask) [][]int {
	return m.Frozen()
}
