package cli

import (
	"fmt"
	"os"

	"github.com/xosmig/breaking-the-cycle/graph"
	"github.com/xosmig/breaking-the-cycle/ioformat"
)

func readInput(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, exitError(ExitInvalidInput, "open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ioformat.ReadMETIS(f)
	if err != nil {
		return nil, wrapExitError(ExitInvalidInput, fmt.Errorf("parse %s: %w", path, err))
	}
	return g, nil
}

func writeOutput(path string, s []int) error {
	if path == "" {
		return ioformat.WriteSolution(os.Stdout, s)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return ioformat.WriteSolution(f, s)
}
