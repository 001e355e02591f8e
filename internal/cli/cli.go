// Package cli implements the pipeloop command-line interface.
//
// # Commands
//
//   - solve: find the loop through S and print the farthest distance along it
//   - render: draw the loop as text, Graphviz DOT or SVG
//
// Both read a grid from a file argument, or from stdin when the argument is
// missing or "-". Settings come from an optional TOML file (--config or
// $XDG_CONFIG_HOME/pipeloop/config.toml); flags override it.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which traces
// every propagation layer.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/internal/config"
)

const appName = "pipeloop"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is injected via ldflags at build time.
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	In     io.Reader
	Out    io.Writer

	configPath string
	cfg        config.Config
}

// New creates a CLI writing results to out and logs to logW.
func New(out, logW io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logW, level),
		In:     os.Stdin,
		Out:    out,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pipeloop finds the pipe loop through S and its farthest tile",
		Long:         `Pipeloop reads a grid of pipe tiles, follows the pipes that connect to each other from the start tile S around their closed loop, and reports how many steps away the farthest loop tile lies.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetOut(c.Out)
	root.SetVersionTemplate(fmt.Sprintf("%s %s\n", appName, version))
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())

	return root
}

// openInput returns the grid source named by args: a file path, or stdin
// when args is empty or "-".
func (c *CLI) openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(c.In), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open grid: %w", err)
	}
	return f, args[0], nil
}
