package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/xosmig/breaking-the-cycle/dfvs"
	"github.com/xosmig/breaking-the-cycle/driver"
)

const defaultSolveTimeout = 600 * time.Second

func (c *CLI) solveCommand() *cobra.Command {
	var (
		timeout time.Duration
		workers int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Compute an exact minimum feedback vertex set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers > 0 {
				os.Setenv(driver.WorkersEnvVar, fmt.Sprintf("%d", workers))
			}

			g, err := readInput(args[0])
			if err != nil {
				return err
			}

			deadline := time.Now().Add(timeout)
			c.Logger.Infof("solving %s exactly (n=%d, deadline in %s)", args[0], g.N(), timeout)

			s, status := dfvs.SolveExact(g, deadline)
			if err := writeOutput(output, s); err != nil {
				return wrapExitError(ExitInternalError, err)
			}

			c.Logger.Infof("found S of size %d, status=%s", len(s), status)
			if status == dfvs.TIMEOUT {
				return &ExitCodeError{Code: ExitFeasibleNonOptimal, Err: fmt.Errorf("deadline reached before optimality was proven")}
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", defaultSolveTimeout, "wall-clock budget for the search")
	cmd.Flags().IntVar(&workers, "workers", 0, "override DFVS_WORKERS (0 = auto)")
	cmd.Flags().StringVar(&output, "output", "", "output file (stdout if empty)")

	return cmd
}
