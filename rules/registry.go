// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// registry is built on first use and never mutated afterwards.
var registry = sync.OnceValue(func() map[string]Rule {
	orca := ORCA()
	return map[string]Rule{
		"none":                    None(),
		"pyscf":                   orca,
		"orca":                    orca,
		"freezenoblegascore":      NobleGasCore(),
		"freezeinnernoblegascore": InnerNobleGasCore(),
		"smallcore":               SmallCore(),
		"largecore":               LargeCore(),
	}
})

// nameReplacer drops the separators ignored in rule names.
var nameReplacer = strings.NewReplacer("-", "", "_", "", " ", "")

// Normalize folds a rule name to its registry key.
func Normalize(name string) string {
	return nameReplacer.Replace(strings.ToLower(name))
}

// Lookup returns the built-in rule registered under name.
func Lookup(name string) (Rule, error) {
	r, ok := registry()[Normalize(name)]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownRule)
	}

	return r, nil
}

// Names returns the registry keys in sorted order.
func Names() []string {
	reg := registry()
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
