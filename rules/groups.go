// SPDX-License-Identifier: MIT

package rules

// Chemical families used to assign level vectors. Atomic numbers are literal.

// AlkaliMetals returns the alkali and alkaline-earth metals.
func AlkaliMetals() []int {
	return []int{3, 4, 11, 12, 19, 20, 37, 38, 55, 56, 87, 88}
}

// TransitionMetals returns the d-block transition metals (lanthanum and
// actinium excluded).
func TransitionMetals() []int {
	return concat(span(21, 31), span(39, 49), span(72, 81), span(104, 113))
}

// MainGroupP returns the p-block main-group elements, noble gases included.
func MainGroupP() []int {
	return concat(span(5, 11), span(13, 19), span(31, 37), span(49, 55), span(81, 87), span(113, 119))
}

// Lanthanides returns La through Lu.
func Lanthanides() []int {
	return span(57, 72)
}

// Actinides returns Ac through Lr.
func Actinides() []int {
	return span(89, 104)
}

// Metalloids returns the p-block metals and metalloids.
func Metalloids() []int {
	return []int{5, 13, 14, 31, 32, 33, 49, 50, 51, 52, 81, 82, 83, 84, 113, 114, 115, 116}
}

// groupOrder maps rule-file group keys to their members, in application order.
var groupOrder = []struct {
	name    string
	members func() []int
}{
	{"alkali", AlkaliMetals},
	{"lanthanides", Lanthanides},
	{"actinides", Actinides},
	{"transition", TransitionMetals},
	{"pmain", MainGroupP},
	{"metalloids", Metalloids},
}

// span returns [lo, hi).
func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for z := lo; z < hi; z++ {
		out = append(out, z)
	}

	return out
}

func concat(parts ...[]int) []int {
	var out []int
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
