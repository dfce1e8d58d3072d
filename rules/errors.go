// SPDX-License-Identifier: MIT

package rules

import "errors"

var (
	// ErrUnknownRule is returned by Lookup for names not in the registry.
	ErrUnknownRule = errors.New("rules: unknown frozen-core rule")

	// ErrLevelsShape indicates a level table that does not cover exactly the
	// known elements, or a level vector without one entry per angular momentum.
	ErrLevelsShape = errors.New("rules: level table has wrong shape")

	// ErrUnknownGroup indicates an unknown element group in a rule file.
	ErrUnknownGroup = errors.New("rules: unknown element group")

	// ErrRuleFile wraps decoding failures of rule files.
	ErrRuleFile = errors.New("rules: invalid rule file")
)
