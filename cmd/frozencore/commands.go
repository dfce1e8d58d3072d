package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/katalvlaran/frozencore/elements"
	"github.com/katalvlaran/frozencore/frozen"
	"github.com/katalvlaran/frozencore/rules"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in frozen-core rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Key", "Rule", "Direction"})
			for _, key := range rules.Names() {
				r, err := rules.Lookup(key)
				if err != nil {
					return err
				}
				dir := "frozen"
				if tr, ok := r.(*rules.TableRule); ok && tr.Active() {
					dir = "active"
				}
				t.AppendRow(table.Row{key, r.Name(), dir})
			}
			t.Render()

			return nil
		},
	}
}

func newTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table [rule|file.yaml]",
		Short: "Print the frozen core electrons of every element as a periodic table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := cfg.Rule
			if len(args) == 1 {
				name = args[0]
			}
			r, err := ruleFor(name)
			if err != nil {
				return err
			}
			logger.Debug("rendering rule", zap.String("rule", r.Name()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", r.Name())

			return rules.Render(cmd.OutOrStdout(), r)
		},
	}
}

func newResolveCommand() *cobra.Command {
	var atomFlags []string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve frozen electron counts of a molecule",
		Example: `  frozencore resolve --atom Fe --atom O --rule orca
  frozencore resolve --atom I:28 --atom H --ecp-only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			atoms, err := parseAtoms(atomFlags)
			if err != nil {
				return err
			}
			mol, err := frozen.NewMol(cfg.Charge, atoms...)
			if err != nil {
				return err
			}
			spec, err := specFor(cfg.Rule)
			if err != nil {
				return err
			}
			total, err := frozen.Resolve(mol, spec, cfg.ECPOnly)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.Style().Format.Footer = text.FormatDefault
			t.AppendHeader(table.Row{"#", "Atom", "Z", "ECP", "Frozen occ", "Frozen vir"})
			switch spec.(type) {
			case frozen.Named, frozen.Custom, frozen.PerElement:
				for i, a := range atoms {
					single, err := frozen.NewMol(0, a)
					if err != nil {
						return err
					}
					c, err := frozen.Resolve(single, spec, cfg.ECPOnly)
					if err != nil {
						return err
					}
					t.AppendRow(table.Row{i, a.Symbol, elements.MustCharge(a.Symbol), a.ECPElectrons, c.Occupied, c.Virtual})
				}
			}
			t.AppendFooter(table.Row{"", "Total", "", "", total.Occupied, total.Virtual})
			t.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "electrons: %d\n", mol.NumElectrons())

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&atomFlags, "atom", "a", nil, "atom as SYMBOL or SYMBOL:ECP_ELECTRONS (repeatable)")

	return cmd
}

func newMaskCommand() *cobra.Command {
	var (
		atomFlags []string
		occFlag   string
		energy    string
	)
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Build the active orbital mask of a molecule",
		Example: `  frozencore mask --atom O --atom H --atom H --occ 2,2,2,2,2,0,0 --rule 2,0
  frozencore mask --atom O --atom H --atom H --charge 1 --occ "1,1,1,1,1,0,0;1,1,1,1,0,0,0"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			atoms, err := parseAtoms(atomFlags)
			if err != nil {
				return err
			}
			mol, err := frozen.NewMol(cfg.Charge, atoms...)
			if err != nil {
				return err
			}
			if occFlag == "" {
				return fmt.Errorf("--occ is required")
			}
			occ, err := parseOrbitals(occFlag)
			if err != nil {
				return err
			}
			spec, err := specFor(cfg.Rule)
			if err != nil {
				return err
			}
			opts := []frozen.Option{frozen.WithECPOnly(cfg.ECPOnly), frozen.WithLogger(logger)}
			if energy != "" {
				e, err := parseOrbitals(energy)
				if err != nil {
					return err
				}
				opts = append(opts, frozen.WithEnergy(e))
			}

			sel := frozen.New(mol, occ, spec, opts...)
			mask, err := sel.Mask()
			if err != nil {
				return err
			}
			parts, err := sel.Partition()
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Channel", "Mask", "Frozen", "Core", "Occ", "Vir", "Frozen vir"})
			frz := mask.Frozen()
			for ch, p := range parts {
				t.AppendRow(table.Row{ch, maskRow(mask, ch), fmt.Sprint(frz[ch]), p.Core, p.Occ, p.Vir, p.FrozenVir})
			}
			t.Render()

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&atomFlags, "atom", "a", nil, "atom as SYMBOL or SYMBOL:ECP_ELECTRONS (repeatable)")
	cmd.Flags().StringVar(&occFlag, "occ", "", "occupation numbers, channels separated by ';'")
	cmd.Flags().StringVar(&energy, "energy", "", "orbital energies shaped like --occ")

	return cmd
}

func maskRow(m *frozen.Mask, ch int) string {
	row := make([]byte, m.Orbitals())
	for i := range row {
		row[i] = '0'
		if m.At(ch, i) {
			row[i] = '1'
		}
	}

	return string(row)
}
