// File: driver.go
// Role: Driver and Solve, the package's public surface (spec.md 4.G).
package driver

import (
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/xosmig/breaking-the-cycle/graph"
	"github.com/xosmig/breaking-the-cycle/scc"
)

// WorkersEnvVar overrides the worker pool size when set to a positive
// integer, per spec.md 4.G.
const WorkersEnvVar = "DFVS_WORKERS"

// Driver holds the worker-pool sizing policy. The zero value is ready to
// use: Workers == 0 means "auto", resolved at Solve time from
// DFVS_WORKERS or runtime.GOMAXPROCS(0).
type Driver struct {
	Workers int
}

// Solve partitions g into SCCs, discards trivial ones (they lie on no
// cycle and need no search), and dispatches the rest to a fixed-size
// worker pool sorted by |V|*|E| descending so the largest, slowest
// components start first. Each worker solves its component against the
// shared deadline and contributes its vertices to the result under a
// single mutex, mirroring core/types.go's lock-per-shared-value
// discipline with one lock instead of two since there is only one
// shared mutable value here.
func (d *Driver) Solve(g *graph.Graph, deadline time.Time) []int {
	components := scc.Tarjan(g)

	jobs := make([]scc.Component, 0, len(components))
	for _, c := range components {
		if !c.Trivial {
			jobs = append(jobs, c)
		}
	}
	sort.Slice(jobs, func(i, j int) bool {
		return componentWeight(g, jobs[i]) > componentWeight(g, jobs[j])
	})

	workers := numWorkers(d.Workers, len(jobs))

	var (
		mu     sync.Mutex
		result []int
		wg     sync.WaitGroup
	)
	queue := make(chan scc.Component)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range queue {
				partial := solveComponent(g, c.Vertices, deadline)
				mu.Lock()
				result = append(result, partial...)
				mu.Unlock()
			}
		}()
	}
	for _, c := range jobs {
		queue <- c
	}
	close(queue)
	wg.Wait()

	sort.Ints(result)
	return result
}

// componentWeight approximates |V|*|E| for c using only its internal
// edges, for the descending dispatch order of spec.md 4.G.
func componentWeight(g *graph.Graph, c scc.Component) int {
	inComponent := make(map[int]struct{}, len(c.Vertices))
	for _, v := range c.Vertices {
		inComponent[v] = struct{}{}
	}
	edges := 0
	for _, v := range c.Vertices {
		for _, w := range g.NeighborsOut(v) {
			if _, ok := inComponent[w]; ok {
				edges++
			}
		}
	}
	return len(c.Vertices) * edges
}

func numWorkers(configured, jobCount int) int {
	n := configured
	if n <= 0 {
		if raw := os.Getenv(WorkersEnvVar); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				n = parsed
			}
		}
	}
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if jobCount > 0 && n > jobCount {
		n = jobCount
	}
	if n < 1 {
		n = 1
	}
	return n
}
