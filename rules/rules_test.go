package rules_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/frozencore/elements"
	"github.com/katalvlaran/frozencore/rules"
	"github.com/katalvlaran/frozencore/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuiltins_MatchPublishedTables compares every built-in convention
// against its reference table for all elements.
func TestBuiltins_MatchPublishedTables(t *testing.T) {
	builtins := map[string]*rules.TableRule{
		"ORCA":              rules.ORCA(),
		"NobleGasCore":      rules.NobleGasCore(),
		"InnerNobleGasCore": rules.InnerNobleGasCore(),
		"SmallCore":         rules.SmallCore(),
		"LargeCore":         rules.LargeCore(),
	}
	for name, r := range builtins {
		want := expectedCore[name]
		require.Len(t, want, elements.Count, name)
		got, err := rules.Summary(r)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
		assert.True(t, r.Active(), name)
	}
}

func TestNone_FreezesNothing(t *testing.T) {
	r := rules.None()
	assert.False(t, r.Active())
	for z := 0; z < elements.Count; z++ {
		n, err := r.NumCore(z)
		require.NoError(t, err)
		assert.Zero(t, n, "Z=%d", z)
	}
}

func TestTableRule_UnknownElement(t *testing.T) {
	_, err := rules.ORCA().NumCore(elements.Count)
	assert.ErrorIs(t, err, elements.ErrUnknownElement)

	_, err = rules.ORCA().Levels(-1)
	assert.ErrorIs(t, err, elements.ErrUnknownElement)
}

func TestORCA_Levels(t *testing.T) {
	r := rules.ORCA()
	cases := map[int]shell.Levels{
		1:   {1, 1, 1, 1},
		11:  {2, 2, 3, 3},
		26:  {2, 2, 2, 3},
		8:   {1, 1, 2, 2},
		64:  {2, 2, 3, 3},
		92:  {2, 2, 3, 3},
		105: {1, 1, 2, 2},
	}
	for z, want := range cases {
		got, err := r.Levels(z)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Z=%d", z)
	}
}

func TestNewTableRule_Validation(t *testing.T) {
	_, err := rules.NewTableRule("short", make([]shell.Levels, 3), true)
	assert.ErrorIs(t, err, rules.ErrLevelsShape)

	levels := make([]shell.Levels, elements.Count)
	levels[26] = shell.Levels{0, 0, -1, 0}
	_, err = rules.NewTableRule("negative", levels, false)
	assert.ErrorIs(t, err, shell.ErrNegativeLevel)

	levels[26] = shell.Levels{1, 0, 0, 0}
	r, err := rules.NewTableRule("custom", levels, false)
	require.NoError(t, err)
	assert.Equal(t, "custom", r.Name())
	n, err := r.NumCore(26)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// TestNumCore_PartialShell verifies a convention cutting through an open
// shell surfaces shell.ErrPartialShell.
func TestNumCore_PartialShell(t *testing.T) {
	levels := make([]shell.Levels, elements.Count)
	levels[24] = shell.Levels{4, 0, 0, 0} // Cr 4s1
	r, err := rules.NewTableRule("broken", levels, false)
	require.NoError(t, err)
	_, err = r.NumCore(24)
	assert.ErrorIs(t, err, shell.ErrPartialShell)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"ORCA", "pyscf", "Freeze-Noble-Gas-Core", "freeze_inner_noble_gas_core", "Small Core", "largecore", "NONE"} {
		r, err := rules.Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, r, name)
	}

	orca, _ := rules.Lookup("orca")
	pyscf, _ := rules.Lookup("PySCF")
	assert.Same(t, orca, pyscf)

	_, err := rules.Lookup("frozen")
	assert.ErrorIs(t, err, rules.ErrUnknownRule)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"freezeinnernoblegascore", "freezenoblegascore", "largecore", "none", "orca", "pyscf", "smallcore",
	}, rules.Names())
	assert.Equal(t, "freezenoblegascore", rules.Normalize("Freeze-Noble_Gas Core"))
}

// TestLookup_Concurrent reads the registry from many goroutines.
func TestLookup_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := rules.Lookup("smallcore")
			assert.NoError(t, err)
			n, err := r.NumCore(55)
			assert.NoError(t, err)
			assert.Equal(t, 46, n)
		}()
	}
	wg.Wait()
}

func TestGroups_Disjoint(t *testing.T) {
	seen := map[int]string{}
	families := map[string][]int{
		"alkali":      rules.AlkaliMetals(),
		"transition":  rules.TransitionMetals(),
		"pmain":       rules.MainGroupP(),
		"lanthanides": rules.Lanthanides(),
		"actinides":   rules.Actinides(),
	}
	for name, zs := range families {
		for _, z := range zs {
			prev, dup := seen[z]
			assert.False(t, dup, "Z=%d in %s and %s", z, name, prev)
			seen[z] = name
		}
	}
	// everything but H, He and the ghost is classified
	assert.Len(t, seen, elements.Count-3)
	for _, z := range rules.Metalloids() {
		assert.Equal(t, "pmain", seen[z], "Z=%d", z)
	}
}

func TestParse(t *testing.T) {
	doc := []byte(`
name: MyCore
default: [1, 1, 2, 3]
groups:
  transition: [2, 2, 2, 3]
elements:
  Pd: [1, 1, 1, 3]
  "79": [2, 2, 2, 3]
`)
	r, err := rules.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "MyCore", r.Name())
	assert.True(t, r.Active())

	lv, err := r.Levels(26)
	require.NoError(t, err)
	assert.Equal(t, shell.Levels{2, 2, 2, 3}, lv)

	lv, err = r.Levels(46)
	require.NoError(t, err)
	assert.Equal(t, shell.Levels{1, 1, 1, 3}, lv)

	// matches NobleGasCore outside overridden entries
	n, err := r.NumCore(8)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = r.NumCore(26)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"short vector":  {"default: [1, 1]", rules.ErrLevelsShape},
		"unknown group": {"groups:\n  halogens: [1, 1, 1, 1]", rules.ErrUnknownGroup},
		"bad element":   {"elements:\n  Qq: [1, 1, 1, 1]", elements.ErrUnknownElement},
		"negative":      {"default: [1, -1, 2, 3]", shell.ErrNegativeLevel},
		"bad yaml":      {"default: [1, 1", rules.ErrRuleFile},
	}
	for name, tc := range cases {
		_, err := rules.Parse([]byte(tc.doc))
		assert.ErrorIs(t, err, tc.want, name)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frozen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Valence\nactive: false\ndefault: [1, 0, 0, 0]\n"), 0o600))

	r, err := rules.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Valence", r.Name())
	assert.False(t, r.Active())
	n, err := r.NumCore(10)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = rules.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, rules.ErrRuleFile)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rules.Render(&buf, rules.ORCA()))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 22)
	assert.Equal(t, "   X ", lines[0])
	assert.Equal(t, "   0 ", lines[1])
	assert.Equal(t, "   H "+strings.Repeat(" ", 80)+"  He ", lines[2])
	assert.Equal(t, "", lines[16])
	assert.Equal(t, "   Lanthanides "+strings.Repeat("  36 ", 15), lines[18])
	assert.Equal(t, "     Actinides "+strings.Repeat("  68 ", 15), lines[20])
	assert.Contains(t, lines[15], " 100 ")
}
