package frozen_test

import (
	"testing"

	"github.com/katalvlaran/frozencore/frozen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"
)

func TestPartition_Bounds(t *testing.T) {
	sel := frozen.New(water(t), closedShell(), frozen.Counts{Occupied: 2, Virtual: 2})
	parts, err := sel.Partition()
	require.NoError(t, err)
	require.Len(t, parts, 1)

	p := parts[0]
	assert.Equal(t, frozen.Partition{NMO: 7, NOcc: 5, Core: 1, Occ: 4, Vir: 1, FrozenVir: 1}, p)
	assert.Equal(t, 5, p.Active())
	assert.Equal(t, [4]int{1, 5, 6, 7}, p.Bounds())
}

func TestPartition_OpenShell(t *testing.T) {
	sel := frozen.New(waterCation(t), openShell(), frozen.Named("orca"))
	parts, err := sel.Partition()
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, frozen.Partition{NMO: 7, NOcc: 5, Core: 1, Occ: 4, Vir: 2}, parts[0])
	assert.Equal(t, frozen.Partition{NMO: 7, NOcc: 4, Core: 1, Occ: 3, Vir: 3}, parts[1])
}

func TestShuffle_Identity(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sel := frozen.New(water(t), closedShell(), frozen.Counts{Occupied: 2, Virtual: 2},
		frozen.WithLogger(zap.New(core)))

	perm, err := sel.Shuffle(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, perm)
	assert.Zero(t, logs.Len())
}

func TestShuffle_Reorders(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sel := frozen.New(water(t), closedShell(), frozen.FrozenList{2, 5},
		frozen.WithLogger(zap.New(core)))

	perm, err := sel.Shuffle(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 3, 4, 6, 5}, perm)
	assert.Equal(t, 1, logs.FilterMessage("orbital indices will be shuffled").Len())

	_, err = sel.Shuffle(1)
	assert.ErrorIs(t, err, frozen.ErrIndexOutOfRange)
}

func TestActiveColumns(t *testing.T) {
	coeff := mat.NewDense(2, 7, []float64{
		0, 1, 2, 3, 4, 5, 6,
		10, 11, 12, 13, 14, 15, 16,
	})
	sel := frozen.New(water(t), closedShell(), frozen.FrozenList{2, 5})

	got, err := sel.ActiveColumns(coeff, 0)
	require.NoError(t, err)
	want := mat.NewDense(2, 5, []float64{
		0, 1, 3, 4, 6,
		10, 11, 13, 14, 16,
	})
	assert.True(t, mat.Equal(want, got))

	_, err = sel.ActiveColumns(mat.NewDense(2, 6, nil), 0)
	assert.ErrorIs(t, err, frozen.ErrShapeMismatch)
}

func TestActiveEnergies(t *testing.T) {
	sel := frozen.New(water(t), closedShell(), frozen.FrozenList{2, 5}, frozen.WithEnergy(energies()))
	got, err := sel.ActiveEnergies(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{-20.5, -1.3, -0.5, -0.4, 0.3}, got)

	_, err = frozen.New(water(t), closedShell(), nil).ActiveEnergies(0)
	assert.ErrorIs(t, err, frozen.ErrEnergyRequired)
}
