// Package observability collects build telemetry. A Collector plugs into
// the runner's hooks and accumulates a Report: which actions ran, how
// long each took, and which failed.
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/runner"
)

// ActionResult records one executed action.
type ActionResult struct {
	Type        string
	DisplayName string
	Err         error
	Elapsed     time.Duration
}

// Report is the accumulated outcome of a build run.
type Report struct {
	Groups  int
	Results []ActionResult
	Elapsed time.Duration
}

// Failures counts actions that returned an error.
func (r Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Collector gathers results from a run. Safe for concurrent hook calls.
type Collector struct {
	mu      sync.Mutex
	started time.Time
	report  Report
}

func NewCollector() *Collector {
	return &Collector{}
}

// Hooks returns runner hooks that feed this collector.
func (c *Collector) Hooks() runner.Hooks {
	return runner.Hooks{
		OnEnterGroup: func(ctx context.Context, g *blueprint.Group) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.started.IsZero() {
				c.started = time.Now()
			}
			c.report.Groups++
		},
		OnActionDone: func(ctx context.Context, a blueprint.Action, err error, elapsed time.Duration) {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.report.Results = append(c.report.Results, ActionResult{
				Type:        a.TypeName(),
				DisplayName: a.DisplayName(),
				Err:         err,
				Elapsed:     elapsed,
			})
		},
	}
}

// Report returns a snapshot of everything collected so far.
func (c *Collector) Report() Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.report
	snap.Results = make([]ActionResult, len(c.report.Results))
	copy(snap.Results, c.report.Results)
	if !c.started.IsZero() {
		snap.Elapsed = time.Since(c.started)
	}
	return snap
}
