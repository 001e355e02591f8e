package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/solver"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	verify bool // fail unless the loop is a simple cycle
	layers bool // print every propagation layer
	noMask bool // propagate over the unmasked grid
	quiet  bool // print only the distance
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the farthest distance along the loop through S",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("verify") {
				opts.verify = c.cfg.Verify
			}
			if !cmd.Flags().Changed("layers") {
				opts.layers = c.cfg.ShowLayers
			}
			return c.runSolve(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.verify, "verify", false, "fail unless the loop is a simple closed cycle")
	cmd.Flags().BoolVar(&opts.layers, "layers", false, "print every propagation layer")
	cmd.Flags().BoolVar(&opts.noMask, "no-mask", false, "propagate without masking non-loop tiles to ground")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the maximum distance")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, args []string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	in, name, err := c.openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()
	logger.Debug("reading grid", "source", name)

	rep, err := solver.SolveReader(ctx, in, solver.Options{
		Logger:   logger,
		Verify:   opts.verify,
		SkipMask: opts.noMask,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	w := cmd.OutOrStdout()
	if opts.quiet {
		fmt.Fprintln(w, rep.MaxDistance)
		return nil
	}
	printField(w, c.cfg.Color, "loop", fmt.Sprintf("%d tiles", rep.Loop.Len()))
	printField(w, c.cfg.Color, "start", fmt.Sprintf("%v (%v)", rep.Start, rep.StartShape))
	printField(w, c.cfg.Color, "farthest", rep.Distance.Farthest())
	printField(w, c.cfg.Color, "distance", rep.MaxDistance)
	if opts.layers {
		for d, layer := range rep.Distance.Layers {
			printField(w, c.cfg.Color, fmt.Sprintf("layer %d", d), layer)
		}
	}
	return nil
}
