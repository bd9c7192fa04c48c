package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"anatorient/internal/models"
	"anatorient/pkg/config"
	"anatorient/pkg/coords"
	"anatorient/pkg/header"
	"anatorient/pkg/orientation"
)

var errDatasetsNotOK = errors.New("one or more datasets failed validation")

func (a *app) normalize(s string) string {
	if a.cfg.Parsing.FoldCase {
		return strings.ToUpper(s)
	}
	return s
}

func (a *app) codeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "code LETTER...",
		Short: "Print the orientation code for each letter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				tok := a.normalize(arg)
				c := orientation.Illegal
				if len(tok) == 1 {
					c = orientation.CodeFor(tok[0])
				}
				fmt.Fprintf(a.out, "%s\t%v\t%d\t%v\n", arg, c, int(c), c.Pair())
			}
			return nil
		},
	}
}

func (a *app) frameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frame ORIENT",
		Short: "Check that a three-letter orientation forms a valid frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := orientation.ParseFrame(a.normalize(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "frame:      %s (%v %v %v)\n", f, f[0], f[1], f[2])
			fmt.Fprintf(a.out, "handedness: %v\n", f.Handedness())
			for i := 0; i < 3; i++ {
				fmt.Fprintf(a.out, "axis %d:     %s slices\n", i+1, f.Plane(i))
			}
			return nil
		},
	}
}

func (a *app) labelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label [--] X Y Z",
		Short: "Label a coordinate with its anatomical sides",
		Long: `Label a coordinate with its anatomical sides.

Put -- before the coordinates when any of them is negative, otherwise the
leading minus sign is read as a flag.`,
		Example: "  anatorient label 12 3.5 0\n  anatorient label -- -3.2 0 7",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var xyz [3]float64
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q: %w", arg, err)
				}
				xyz[i] = v
			}
			p := coords.NewPoint(xyz[0], xyz[1], xyz[2])
			fmt.Fprintln(a.out, p.Format(a.cfg.Output.Precision))
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w (negative coordinates must follow --, e.g. anatorient label -- -3.2 0 7)", err)
	})
	return cmd
}

func (a *app) loadAll(paths []string) ([]models.Dataset, error) {
	var all []models.Dataset
	for _, path := range paths {
		datasets, err := header.Load(path)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("header file loaded", zap.String("path", path), zap.Int("datasets", len(datasets)))
		for i := range datasets {
			datasets[i].Orient = a.normalize(datasets[i].Orient)
		}
		all = append(all, datasets...)
	}
	return all, nil
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate the datasets in one or more header files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			datasets, err := a.loadAll(args)
			if err != nil {
				return err
			}

			v := header.NewValidator(header.NewZapReporter(a.logger), a.cfg.Validation.Strict)
			statuses, err := v.ValidateAll(cmd.Context(), datasets, a.cfg.Validation.Workers)
			if err != nil {
				a.logger.Error("validation aborted", zap.Error(err))
				return err
			}

			failed := 0
			for _, st := range statuses {
				state := "OK"
				if !st.OK {
					state = "FAILED"
					failed++
				}
				fmt.Fprintf(a.out, "%-20s %-3s %s\n", st.Name, st.Frame, state)
				for _, msg := range st.Errors {
					fmt.Fprintf(a.out, "  error:   %s\n", msg)
				}
				for _, msg := range st.Warnings {
					fmt.Fprintf(a.out, "  warning: %s\n", msg)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errDatasetsNotOK, failed, len(statuses))
			}
			return nil
		},
	}
}

func (a *app) locateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate FILE NAME I J K",
		Short: "Print the labeled coordinate of a voxel",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			datasets, err := a.loadAll(args[:1])
			if err != nil {
				return err
			}

			var ijk [3]int
			for i, arg := range args[2:] {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid voxel index %q: %w", arg, err)
				}
				ijk[i] = n
			}

			for _, ds := range datasets {
				if ds.Name != args[1] {
					continue
				}
				p, err := coords.Locate(ds, ijk[0], ijk[1], ijk[2])
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, p.Format(a.cfg.Output.Precision))
				return nil
			}
			return fmt.Errorf("dataset %q not found in %s", args[1], args[0])
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init PATH",
		Short: "Write a default configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateDefaultConfigFile(args[0]); err != nil {
				return err
			}
			a.logger.Info("configuration written", zap.String("path", args[0]))
			return nil
		},
	})
	return cmd
}
