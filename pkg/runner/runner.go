// Package runner executes a blueprint's actions depth-first, in tree
// order. What each action does is the host's business; the runner only
// guarantees ordering, error policy, and observability.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/loader"
)

// Hooks are observability callbacks fired during a run. Any field may be
// nil.
type Hooks struct {
	OnEnterGroup  func(ctx context.Context, g *blueprint.Group)
	OnActionStart func(ctx context.Context, a blueprint.Action)
	OnActionDone  func(ctx context.Context, a blueprint.Action, err error, elapsed time.Duration)
}

// Runner walks a blueprint tree and runs each action it encounters.
type Runner struct {
	log *slog.Logger

	// ContinueOnError keeps the walk going past failing actions; errors
	// are collected and returned joined at the end.
	ContinueOnError bool

	// SkipUnbound treats actions without a bound runner as skipped
	// instead of failed. Useful for partial host integrations.
	SkipUnbound bool

	Hooks Hooks
}

// New creates a runner. A nil logger disables logging.
func New(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{log: log}
}

// Run executes every action in the blueprint, depth-first in child
// order. The context is checked between actions so a cancelled build
// stops at the next boundary.
func (r *Runner) Run(ctx context.Context, b *blueprint.Blueprint) error {
	r.log.Info("build started", "blueprint", b.Name, "version", b.Version)

	var errs []error
	err := r.runGroup(ctx, b.RootGroup(), &errs)

	switch {
	case err != nil:
		return err
	case len(errs) > 0:
		r.log.Error("build finished with failures", "blueprint", b.Name, "failures", len(errs))
		return errors.Join(errs...)
	default:
		r.log.Info("build finished", "blueprint", b.Name)
		return nil
	}
}

func (r *Runner) runGroup(ctx context.Context, g *blueprint.Group, errs *[]error) error {
	if r.Hooks.OnEnterGroup != nil {
		r.Hooks.OnEnterGroup(ctx, g)
	}
	r.log.Debug("entering group", "group", g.DisplayName())

	for _, child := range g.Children() {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch item := child.(type) {
		case *blueprint.Group:
			if err := r.runGroup(ctx, item, errs); err != nil {
				return err
			}
		case blueprint.Action:
			if err := r.runAction(ctx, item, errs); err != nil {
				return err
			}
		default:
			// Non-action, non-group items carry no build behavior.
			r.log.Debug("skipping inert item", "type", child.TypeName())
		}
	}
	return nil
}

func (r *Runner) runAction(ctx context.Context, a blueprint.Action, errs *[]error) error {
	if r.Hooks.OnActionStart != nil {
		r.Hooks.OnActionStart(ctx, a)
	}

	start := time.Now()
	err := a.Run(ctx)
	elapsed := time.Since(start)

	if r.Hooks.OnActionDone != nil {
		r.Hooks.OnActionDone(ctx, a, err, elapsed)
	}

	if err == nil {
		r.log.Info("action complete", "action", a.TypeName(), "elapsed", elapsed)
		return nil
	}

	if r.SkipUnbound && errors.Is(err, loader.ErrNotRunnable) {
		r.log.Warn("action skipped: no runner bound", "action", a.TypeName())
		return nil
	}

	wrapped := fmt.Errorf("action %s: %w", a.TypeName(), err)
	if r.ContinueOnError {
		r.log.Error("action failed, continuing", "action", a.TypeName(), "error", err)
		*errs = append(*errs, wrapped)
		return nil
	}
	return wrapped
}
