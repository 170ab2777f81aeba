package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xosmig/breaking-the-cycle/dfvs"
)

const defaultHeuristicTimeout = 10 * time.Minute

func (c *CLI) heuristicCommand() *cobra.Command {
	var (
		timeout time.Duration
		output  string
	)

	cmd := &cobra.Command{
		Use:   "heuristic <file>",
		Short: "Compute a feasible feedback vertex set quickly (best-effort)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readInput(args[0])
			if err != nil {
				return err
			}

			deadline := time.Now().Add(timeout)
			c.Logger.Infof("running heuristic on %s (n=%d, deadline in %s)", args[0], g.N(), timeout)

			cancel := make(chan struct{})
			done := make(chan []int, 1)
			go func() {
				done <- dfvs.SolveHeuristicUntil(g, deadline, cancel)
			}()

			var s []int
			interrupted := false
			select {
			case s = <-done:
			case <-cmd.Context().Done():
				c.Logger.Warn("signal received, flushing best-known solution")
				close(cancel)
				s = <-done
				interrupted = true
			}

			if err := writeOutput(output, s); err != nil {
				return wrapExitError(ExitInternalError, err)
			}
			c.Logger.Infof("found feasible S of size %d", len(s))
			if interrupted {
				return &ExitCodeError{Code: ExitFeasibleNonOptimal, Err: fmt.Errorf("interrupted before the search finished")}
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", defaultHeuristicTimeout, "wall-clock budget for the search")
	cmd.Flags().StringVar(&output, "output", "", "output file (stdout if empty)")

	return cmd
}
