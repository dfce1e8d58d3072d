package elements_test

import (
	"testing"

	"github.com/katalvlaran/frozencore/elements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfiguration_SumsToAtomicNumber checks every reference row.
func TestConfiguration_SumsToAtomicNumber(t *testing.T) {
	for z := 0; z < elements.Count; z++ {
		cfg, err := elements.Configuration(z)
		require.NoError(t, err)
		sum := 0
		for _, n := range cfg {
			sum += n
		}
		assert.Equal(t, z, sum, "configuration of Z=%d", z)
	}
}

// TestConfiguration_OutOfRange verifies the reference table bounds.
func TestConfiguration_OutOfRange(t *testing.T) {
	_, err := elements.Configuration(elements.Count)
	assert.ErrorIs(t, err, elements.ErrUnknownElement)

	_, err = elements.Configuration(-1)
	assert.ErrorIs(t, err, elements.ErrUnknownElement)
}

func TestCharge(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"H", 1},
		{"he", 2},
		{"FE", 26},
		{"Fe2", 26},
		{"o1", 8},
		{" Og ", 118},
		{"oxygen", 8},
		{"Aluminum", 13},
		{"caesium", 55},
		{"X", 0},
		{"ghost", 0},
		{"79", 79},
		{"0", 0},
	}
	for _, tc := range cases {
		z, err := elements.Charge(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, z, tc.in)
	}
}

func TestCharge_Unknown(t *testing.T) {
	for _, in := range []string{"", "Zz", "119", "-1", "unobtainium"} {
		_, err := elements.Charge(in)
		assert.ErrorIs(t, err, elements.ErrUnknownElement, in)
	}
}

// TestSymbolRoundTrip checks Symbol and Charge agree for every element.
func TestSymbolRoundTrip(t *testing.T) {
	for z := 0; z < elements.Count; z++ {
		sym, err := elements.Symbol(z)
		require.NoError(t, err)
		back, err := elements.Charge(sym)
		require.NoError(t, err)
		assert.Equal(t, z, back, sym)

		name, err := elements.Name(z)
		require.NoError(t, err)
		back, err = elements.Charge(name)
		require.NoError(t, err)
		assert.Equal(t, z, back, name)
	}
}

func TestMustCharge_Panics(t *testing.T) {
	assert.Equal(t, 6, elements.MustCharge("C"))
	assert.Panics(t, func() { elements.MustCharge("Qq") })
}
