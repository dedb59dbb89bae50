// Package soak drives randomized workloads through the tree containers and
// verifies their invariants against an unbalanced reference tree.
package soak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/segmentio/avltree/compare"
	"github.com/segmentio/avltree/container/avl"
	"github.com/segmentio/avltree/container/bst"
	"github.com/segmentio/avltree/container/tree"
	"github.com/segmentio/avltree/internal/config"
)

// ErrMismatch is returned when a tree disagrees with the reference tree.
var ErrMismatch = errors.New("tree diverged from reference")

// ErrInvariant is returned when a tree fails its own consistency check.
var ErrInvariant = errors.New("tree invariant violated")

// subject adapts one tree form to the operations of the harness.
type subject struct {
	form   string
	tree   tree.Interface[int]
	remove func(int) bool
	// height is nil when the form does not expose its true height.
	height func() int
	// check is nil when the form has no consistency check of its own.
	check func() error

	result Result
}

func newSubject(form string) *subject {
	switch form {
	case config.FormBalance:
		t := avl.New[int](compare.Function[int])
		return &subject{form: form, tree: t, remove: t.Remove, check: t.Check, result: newResult(form)}
	case config.FormHeight:
		t := avl.NewHeightTree[int](compare.Function[int])
		return &subject{form: form, tree: t, remove: t.Remove, height: t.Height, check: t.Check, result: newResult(form)}
	default:
		t := bst.New[int](compare.Function[int])
		return &subject{form: form, tree: t, remove: t.Delete, height: t.Height, result: newResult(form)}
	}
}

// Run executes the workload described by cfg. The run stops at the first
// divergence or invariant violation, or when ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prng := rand.New(rand.NewSource(cfg.Seed))
	ref := bst.New[int](compare.Function[int])

	subjects := make([]*subject, len(cfg.Forms))
	for i, form := range cfg.Forms {
		subjects[i] = newSubject(form)
	}

	report := &Report{Seed: cfg.Seed}
	start := time.Now()

	defer func() {
		report.Elapsed = time.Since(start)
		for _, s := range subjects {
			report.Results = append(report.Results, s.result)
		}
	}()

	logger.InfoContext(ctx, "soak: starting",
		"seed", cfg.Seed,
		"operations", cfg.Operations,
		"key_space", cfg.KeySpace,
		"forms", cfg.Forms,
	)

	for step := 1; step <= cfg.Operations; step++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		value := prng.Intn(cfg.KeySpace)
		if prng.Float64() < cfg.RemoveRatio {
			if err := removeAll(subjects, ref, value, step); err != nil {
				return report, err
			}
		} else {
			insertAll(subjects, ref, value)
		}
		report.Operations = step

		if cfg.CheckEvery > 0 && step%cfg.CheckEvery == 0 {
			if err := verify(subjects, ref, step); err != nil {
				return report, err
			}
			report.Checks++
			logger.DebugContext(ctx, "soak: checkpoint", "step", step, "len", ref.Len())
		}
	}

	if err := verify(subjects, ref, report.Operations); err != nil {
		return report, err
	}
	report.Checks++

	logger.InfoContext(ctx, "soak: finished",
		"operations", report.Operations,
		"checks", report.Checks,
		"elapsed", time.Since(start),
	)

	return report, nil
}

func insertAll(subjects []*subject, ref *bst.Tree[int], value int) {
	ref.Insert(value)
	for _, s := range subjects {
		start := time.Now()
		s.tree.Insert(value)
		s.result.Elapsed += time.Since(start)
		s.result.Inserts++
	}
}

func removeAll(subjects []*subject, ref *bst.Tree[int], value, step int) error {
	want := ref.Delete(value)
	for _, s := range subjects {
		start := time.Now()
		got := s.remove(value)
		s.result.Elapsed += time.Since(start)

		if got != want {
			return fmt.Errorf("%w: form=%s step=%d remove(%d)=%t want=%t", ErrMismatch, s.form, step, value, got, want)
		}
		if got {
			s.result.Removes++
		} else {
			s.result.Misses++
		}
	}
	return nil
}

func verify(subjects []*subject, ref *bst.Tree[int], step int) error {
	want := tree.Slice[int](ref)

	for _, s := range subjects {
		if s.check != nil {
			if err := s.check(); err != nil {
				return fmt.Errorf("%w: form=%s step=%d: %w", ErrInvariant, s.form, step, err)
			}
		}
		if got := tree.Slice(s.tree); !slices.Equal(got, want) {
			return fmt.Errorf("%w: form=%s step=%d len=%d want=%d", ErrMismatch, s.form, step, len(got), len(want))
		}

		s.result.Len = s.tree.Len()
		if s.height != nil {
			h := s.height()
			s.result.Height = &h
			s.result.MaxHeight = max(s.result.MaxHeight, h)
		}
	}
	return nil
}
