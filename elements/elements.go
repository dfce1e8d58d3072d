// SPDX-License-Identifier: MIT

package elements

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	// Count is the number of entries in the reference table, ghost included.
	Count = 119

	// MaxAng is the number of angular momentum types (s, p, d, f).
	MaxAng = 4
)

// bySymbol and byName are reverse indexes built once at package init.
var (
	bySymbol = make(map[string]int, Count)
	byName   = make(map[string]int, Count+len(aliases))
)

func init() {
	for z := 0; z < Count; z++ {
		bySymbol[strings.ToLower(symbols[z])] = z
		byName[names[z]] = z
	}
	for name, z := range aliases {
		byName[name] = z
	}
}

// Valid reports whether z is an atomic number of the reference table.
func Valid(z int) bool {
	return z >= 0 && z < Count
}

// Symbol returns the element symbol of atomic number z ("X" for 0).
func Symbol(z int) (string, error) {
	if !Valid(z) {
		return "", fmt.Errorf("Symbol(%d): %w", z, ErrUnknownElement)
	}

	return symbols[z], nil
}

// Name returns the lower-case English name of atomic number z.
func Name(z int) (string, error) {
	if !Valid(z) {
		return "", fmt.Errorf("Name(%d): %w", z, ErrUnknownElement)
	}

	return names[z], nil
}

// Configuration returns the ground-state electron count per angular momentum
// column [s, p, d, f] of atomic number z. The counts sum to z.
func Configuration(z int) ([MaxAng]int, error) {
	if !Valid(z) {
		return [MaxAng]int{}, fmt.Errorf("Configuration(%d): %w", z, ErrUnknownElement)
	}

	return configurations[z], nil
}

// Charge resolves an element identifier to its atomic number.
//
// Accepted forms:
//   - decimal atomic number: "8"
//   - symbol, case-insensitive, surrounding digits stripped: "O", "o1", "FE2"
//   - English name: "oxygen", "Aluminum"
//   - ghost aliases: "X", "ghost"
func Charge(id string) (int, error) {
	key := strings.TrimSpace(id)
	if key == "" {
		return 0, fmt.Errorf("Charge(%q): empty identifier: %w", id, ErrUnknownElement)
	}

	if z, err := strconv.Atoi(key); err == nil {
		if !Valid(z) {
			return 0, fmt.Errorf("Charge(%q): %w", id, ErrUnknownElement)
		}
		return z, nil
	}

	lower := strings.ToLower(key)
	if z, ok := byName[lower]; ok {
		return z, nil
	}

	letters := strings.TrimFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) })
	if z, ok := bySymbol[letters]; ok {
		return z, nil
	}

	return 0, fmt.Errorf("Charge(%q): %w", id, ErrUnknownElement)
}

// MustCharge is like Charge but panics on unknown identifiers. Intended for
// package-level tables built from literal symbols.
func MustCharge(id string) int {
	z, err := Charge(id)
	if err != nil {
		panic(err)
	}

	return z
}
