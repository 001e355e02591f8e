package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/render"
	"github.com/katalvlaran/pipeloop/solver"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format string // text, dot or svg
	output string // output file path (stdout if empty)
	color  bool   // styled text output
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the loop through S as text, Graphviz DOT or SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.cfg.Format
			}
			if !cmd.Flags().Changed("color") {
				opts.color = c.cfg.Color && opts.output == ""
			}
			return c.runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "output format: text, dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.color, "color", false, "colour text output")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts renderOpts) error {
	if err := (config.Config{Format: opts.format}).Validate(); err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	in, name, err := c.openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	rep, err := solver.SolveReader(ctx, in, solver.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	var data []byte
	switch opts.format {
	case config.FormatText:
		data = []byte(render.Text(rep.Grid, rep.Loop, render.TextOptions{
			Color:    opts.color,
			Farthest: rep.Distance.Farthest(),
		}))
	case config.FormatDOT:
		data = []byte(render.DOT(rep.Grid, rep.Loop, rep.Distance))
	case config.FormatSVG:
		data, err = render.SVG(ctx, render.DOT(rep.Grid, rep.Loop, rep.Distance))
		if err != nil {
			return err
		}
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	logger.Infof("Wrote %s", opts.output)
	return nil
}
