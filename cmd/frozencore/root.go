package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	cfgFile string
	cfg     *Config
	logger  = zap.NewNop()
)

// buildLogger returns the process logger; tests replace it.
var buildLogger = func(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "frozencore",
		Short: "Frozen-core orbital selection for post-SCF correlation methods",
		Long: `frozencore lists the built-in frozen-core rules, prints their per-element
core electron counts and resolves the frozen orbitals of a molecule.

A rule is a registry name (orca, FreezeNobleGasCore, ...), a YAML rule file,
an explicit "occupied,virtual" electron pair, or one of the mask forms
list:..., lists:..., window:lo,hi.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			var (
				used string
				err  error
			)
			cfg, used, err = LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err = buildLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger.Debug("configuration loaded",
				zap.String("file", used),
				zap.String("rule", cfg.Rule),
				zap.Bool("ecp_only", cfg.ECPOnly),
				zap.Int("charge", cfg.Charge))

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./frozencore.yaml)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.StringP("rule", "r", "", "frozen-core rule or spec (default: "+DefaultRule+")")
	pf.Bool("ecp-only", false, "atoms with an ECP contribute no rule-based frozen electrons")
	pf.Int("charge", 0, "net molecular charge")

	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newTableCommand())
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newMaskCommand())

	return rootCmd
}
