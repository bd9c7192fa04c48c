// Command anatorient inspects and validates the anatomical orientation of
// volumetric dataset headers.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"anatorient/pkg/config"
)

// app carries state shared by all subcommands
type app struct {
	out    io.Writer
	cfg    *config.Config
	logger *zap.Logger

	configPath string
	verbose    bool
	strict     bool
}

func main() {
	if err := newRootCmd(os.Stdout, nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A nil logger is built from the
// production zap config once flags are parsed.
func newRootCmd(out io.Writer, logger *zap.Logger) *cobra.Command {
	a := &app{out: out, logger: logger}

	root := &cobra.Command{
		Use:   "anatorient",
		Short: "Anatomical orientation codes for volumetric datasets",
		Long: `anatorient maps orientation letters (R, L, P, A, I, S) to axis codes,
checks that three codes form a valid anatomical frame, labels coordinates
with their anatomical side and validates dataset header files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.strict, "strict", false, "Treat dataset errors as fatal")

	root.AddCommand(
		a.codeCmd(),
		a.frameCmd(),
		a.labelCmd(),
		a.checkCmd(),
		a.locateCmd(),
		a.configCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strict") {
		cfg.Validation.Strict = a.strict
	}
	if a.verbose {
		cfg.Output.Verbose = true
	}
	a.cfg = cfg

	if a.logger == nil {
		zcfg := zap.NewProductionConfig()
		if cfg.Output.Verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		a.logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Bool("strict", cfg.Validation.Strict),
		zap.Int("workers", cfg.Validation.Workers))
	return nil
}
