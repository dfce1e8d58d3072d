// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/frozencore/elements"
)

// Summary returns NumCore of r for every known element, indexed by atomic number.
func Summary(r Rule) ([]int, error) {
	out := make([]int, elements.Count)
	for z := range out {
		n, err := r.NumCore(z)
		if err != nil {
			return nil, err
		}
		out[z] = n
	}

	return out, nil
}

// cellWidth is the width of one periodic-table cell.
const cellWidth = 5

// Render writes r as a periodic table: each element symbol with its number of
// frozen-core electrons underneath, lanthanides and actinides split out below.
func Render(w io.Writer, r Rule) error {
	counts, err := Summary(r)
	if err != nil {
		return err
	}
	sym := make([]string, elements.Count)
	num := make([]string, elements.Count)
	for z := range sym {
		s, _ := elements.Symbol(z)
		sym[z] = fmt.Sprintf(" %3s ", s)
		num[z] = fmt.Sprintf(" %3d ", counts[z])
	}
	gap := func(cells int) string { return strings.Repeat(" ", cells*cellWidth) }
	join := func(parts ...string) string { return strings.Join(parts, "") + "\n" }
	cat := func(cells []string) string { return strings.Join(cells, "") }

	var sb strings.Builder
	pair := func(build func(cells []string) string) {
		sb.WriteString(build(sym))
		sb.WriteString(build(num))
	}

	pair(func(c []string) string { return join(c[0]) })
	pair(func(c []string) string { return join(c[1], gap(16), c[2]) })
	pair(func(c []string) string { return join(cat(c[3:5]), gap(10), cat(c[5:11])) })
	pair(func(c []string) string { return join(cat(c[11:13]), gap(10), cat(c[13:19])) })
	pair(func(c []string) string { return join(cat(c[19:37])) })
	pair(func(c []string) string { return join(cat(c[37:55])) })
	pair(func(c []string) string { return join(cat(c[55:57]), gap(1), cat(c[72:87])) })
	pair(func(c []string) string { return join(cat(c[87:89]), gap(1), cat(c[104:119])) })

	sb.WriteString("\n")
	sb.WriteString(join(strings.Repeat(" ", 15), cat(sym[57:72])))
	sb.WriteString(join("   Lanthanides ", cat(num[57:72])))
	sb.WriteString(join(strings.Repeat(" ", 15), cat(sym[89:104])))
	sb.WriteString(join("     Actinides ", cat(num[89:104])))

	_, err = io.WriteString(w, sb.String())

	return err
}
