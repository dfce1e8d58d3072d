// SPDX-License-Identifier: MIT

package frozen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/frozencore/rules"
)

// Spec selects frozen orbitals. It is a closed set of variants; a nil Spec
// behaves like None.
type Spec interface {
	isSpec()
}

// None freezes nothing.
type None struct{}

// Counts gives frozen electrons directly: Occupied core electrons and
// Virtual "electrons" (virtual orbitals times their capacity). Electrons, not
// orbitals.
type Counts struct {
	Occupied int
	Virtual  int
}

// Named refers to a registered rule by name (see rules.Lookup).
type Named string

// Custom applies a caller-supplied rule to every atom.
type Custom struct {
	Rule rules.Rule
}

// PerElement maps element identifiers (symbol, name or atomic number) to the
// Spec used for atoms of that element. Values must be None, Counts, Named or
// Custom.
type PerElement map[string]Spec

// FrozenList freezes the same orbital indices in every channel.
type FrozenList []int

// FrozenLists freezes one index list per channel.
type FrozenLists [][]int

// EnergyWindow keeps active the orbitals whose energy lies in the closed
// interval between Low and High; the bounds may be given in either order.
type EnergyWindow struct {
	Low  float64
	High float64
}

// GaussianWindow is reserved for smooth energy-window selection.
type GaussianWindow struct {
	Params []float64
}

func (None) isSpec()           {}
func (Counts) isSpec()         {}
func (Named) isSpec()          {}
func (Custom) isSpec()         {}
func (PerElement) isSpec()     {}
func (FrozenList) isSpec()     {}
func (FrozenLists) isSpec()    {}
func (EnergyWindow) isSpec()   {}
func (GaussianWindow) isSpec() {}

// Add returns the element-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{Occupied: c.Occupied + o.Occupied, Virtual: c.Virtual + o.Virtual}
}

// ParseSpec decodes the textual forms used by configuration files and the CLI:
//
//	""  or "none"          None / the "none" rule
//	"2,0"                  Counts{2, 0}
//	"orca", "Small-Core"   Named
//	"list:0,1"             FrozenList{0, 1}
//	"lists:0;0,1"          FrozenLists{{0}, {0, 1}}
//	"window:-1.5,0.5"      EnergyWindow{-1.5, 0.5}
//	"gaussian:0,1"         GaussianWindow
//	"O=orca;Fe=2,0"        PerElement
func ParseSpec(s string) (Spec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return None{}, nil
	}

	if kind, rest, ok := strings.Cut(s, ":"); ok {
		switch rules.Normalize(kind) {
		case "list":
			idx, err := parseInts(rest, ",")
			if err != nil {
				return nil, fmt.Errorf("ParseSpec(%q): %w", s, err)
			}
			return FrozenList(idx), nil
		case "lists":
			var lists FrozenLists
			for _, part := range strings.Split(rest, ";") {
				idx, err := parseInts(part, ",")
				if err != nil {
					return nil, fmt.Errorf("ParseSpec(%q): %w", s, err)
				}
				lists = append(lists, idx)
			}
			return lists, nil
		case "window", "energywindow":
			v, err := parseFloats(rest, 2)
			if err != nil {
				return nil, fmt.Errorf("ParseSpec(%q): %w", s, err)
			}
			return EnergyWindow{Low: v[0], High: v[1]}, nil
		case "gaussian", "gaussianwindow":
			v, err := parseFloats(rest, -1)
			if err != nil {
				return nil, fmt.Errorf("ParseSpec(%q): %w", s, err)
			}
			return GaussianWindow{Params: v}, nil
		default:
			return nil, fmt.Errorf("ParseSpec(%q): unknown kind %q: %w", s, kind, ErrInvalidSpec)
		}
	}

	if strings.Contains(s, "=") {
		per := PerElement{}
		for _, part := range strings.Split(s, ";") {
			id, sub, ok := strings.Cut(part, "=")
			if !ok || strings.TrimSpace(id) == "" {
				return nil, fmt.Errorf("ParseSpec(%q): entry %q: %w", s, part, ErrInvalidSpec)
			}
			subSpec, err := ParseSpec(sub)
			if err != nil {
				return nil, err
			}
			per[strings.TrimSpace(id)] = subSpec
		}
		return per, nil
	}

	if strings.Contains(s, ",") {
		v, err := parseInts(s, ",")
		if err != nil || len(v) != 2 {
			return nil, fmt.Errorf("ParseSpec(%q): want two electron counts: %w", s, ErrInvalidSpec)
		}
		return Counts{Occupied: v[0], Virtual: v[1]}, nil
	}

	return Named(s), nil
}

func parseInts(s, sep string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, sep)
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, ErrInvalidSpec)
		}
		out[i] = v
	}

	return out, nil
}

func parseFloats(s string, want int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if want >= 0 && len(parts) != want {
		return nil, fmt.Errorf("%d values, want %d: %w", len(parts), want, ErrInvalidSpec)
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, ErrInvalidSpec)
		}
		out[i] = v
	}

	return out, nil
}
