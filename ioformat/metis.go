// File: metis.go
// Role: ReadMETIS and WriteSolution, the two functions of spec.md §6.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xosmig/breaking-the-cycle/graph"
)

// ReadMETIS parses r per the METIS-derived DFVS input format of
// spec.md §6: a header line "n m 0", `%`-prefixed comment lines ignored
// wherever they occur, followed by exactly n adjacency lines — one per
// vertex in order, each a whitespace-separated list of 1-based
// out-neighbor ids, with an empty line meaning no out-edges. Trailing
// whitespace and blank non-adjacency lines are tolerated.
func ReadMETIS(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	nextSignificantLine := func() (string, int, bool) {
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			if strings.HasPrefix(strings.TrimLeft(line, " \t"), "%") {
				continue
			}
			return line, lineNo, true
		}
		return "", lineNo, false
	}

	header, headerLine, ok := nextSignificantLine()
	for ok && strings.TrimSpace(header) == "" {
		header, headerLine, ok = nextSignificantLine()
	}
	if !ok {
		return graph.NewGraph(0), nil
	}

	fields := strings.Fields(header)
	if len(fields) < 3 {
		return nil, parseErrorf(headerLine, 1, `expected header "n m 0", got %q`, header)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return nil, parseErrorf(headerLine, 1, "invalid vertex count %q", fields[0])
	}
	if _, err := strconv.Atoi(fields[1]); err != nil {
		return nil, parseErrorf(headerLine, len(fields[0])+2, "invalid edge count %q", fields[1])
	}

	g := graph.NewGraph(n)
	for i := 0; i < n; i++ {
		line, ln, ok := nextSignificantLine()
		if !ok {
			return nil, parseErrorf(lineNo, 1, "expected adjacency line for vertex %d, got end of input", i+1)
		}
		offset := 0
		for _, tok := range strings.Fields(line) {
			start := offset + strings.Index(line[offset:], tok)
			offset = start + len(tok)
			col := start
			w, err := strconv.Atoi(tok)
			if err != nil {
				return nil, parseErrorf(ln, col+1, "invalid neighbor id %q", tok)
			}
			if w < 1 || w > n {
				return nil, parseErrorf(ln, col+1, "neighbor id %d out of range [1,%d]", w, n)
			}
			g.AddEdge(i, w-1)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: ReadMETIS: %w", err)
	}
	return g, nil
}

// WriteSolution writes s (0-indexed vertex ids) as one 1-indexed id per
// line, ascending, per spec.md §6. An empty s produces an empty write.
func WriteSolution(w io.Writer, s []int) error {
	sorted := append([]int(nil), s...)
	sort.Ints(sorted)

	bw := bufio.NewWriter(w)
	for _, v := range sorted {
		if _, err := fmt.Fprintf(bw, "%d\n", v+1); err != nil {
			return fmt.Errorf("ioformat: WriteSolution: %w", err)
		}
	}
	return bw.Flush()
}
