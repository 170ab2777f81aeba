// Package cli implements the dfvscli command-line interface: the
// "solve" (exact) and "heuristic" subcommands of spec.md §6, plus
// -workers and exit-code translation. Grounded on
// matzehuels-stacktower/internal/cli/cli.go's CLI struct (shared logger,
// RootCommand factory) and charmbracelet/log for structured logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "dfvscli"

// Log levels exported for main.go's -verbose handling.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared across subcommands: just a logger, since every
// dfvscli invocation is a single one-shot solve rather than a long-lived
// session with a cache or config file.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI writing logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level in place.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the root cobra command with both subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Compute minimum feedback vertex sets of directed graphs",
		SilenceUsage: true,
	}

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.heuristicCommand())

	return root
}
