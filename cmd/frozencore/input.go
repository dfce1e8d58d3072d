package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/frozencore/frozen"
	"github.com/katalvlaran/frozencore/rules"
	"gonum.org/v1/gonum/mat"
)

// parseAtoms decodes --atom values of the form "Fe" or "I:28", the suffix
// being the ECP electron count.
func parseAtoms(values []string) ([]frozen.Atom, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one --atom is required")
	}
	atoms := make([]frozen.Atom, 0, len(values))
	for _, v := range values {
		sym, ecp, hasECP := strings.Cut(strings.TrimSpace(v), ":")
		a := frozen.Atom{Symbol: sym}
		if hasECP {
			n, err := strconv.Atoi(ecp)
			if err != nil {
				return nil, fmt.Errorf("atom %q: bad ECP electron count: %w", v, err)
			}
			a.ECPElectrons = n
		}
		atoms = append(atoms, a)
	}

	return atoms, nil
}

// parseOrbitals decodes a per-orbital array: comma-separated values, with
// channels separated by ';'. One channel gives a vector, more a matrix.
func parseOrbitals(s string) (mat.Matrix, error) {
	var rows [][]float64
	for _, part := range strings.Split(s, ";") {
		var row []float64
		for _, f := range strings.Split(part, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("orbital value %q: %w", f, err)
			}
			row = append(row, v)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("channel %d has %d orbitals, channel 0 has %d", len(rows), len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 1 {
		return mat.NewVecDense(len(rows[0]), rows[0]), nil
	}
	data := make([]float64, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), len(rows[0]), data), nil
}

func isRuleFile(s string) bool {
	switch strings.ToLower(filepath.Ext(s)) {
	case ".yaml", ".yml":
		return true
	}

	return false
}

// ruleFor returns a registered rule or loads a YAML rule file.
func ruleFor(s string) (rules.Rule, error) {
	if isRuleFile(s) {
		return rules.LoadFile(s)
	}

	return rules.Lookup(s)
}

// specFor turns the --rule value into a frozen.Spec.
func specFor(s string) (frozen.Spec, error) {
	if isRuleFile(s) {
		r, err := rules.LoadFile(s)
		if err != nil {
			return nil, err
		}
		return frozen.Custom{Rule: r}, nil
	}

	return frozen.ParseSpec(s)
}
