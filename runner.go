//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Copyright (C) 2026 Nyein Phyo nphyo.dev@gmail.com
//
// This file is part of Wrangler.
//
// Wrangler is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wrangler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wrangler. If not, see https://www.gnu.org/licenses/.

package wrangler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nphyo/wrangler/market"
	"github.com/nphyo/wrangler/rules"
)

// RunnerBuilder provides a fluent API for constructing cleaning runs.
// Use NewRunner() to create a builder, then chain From, ForMarket, To and
// configuration methods.
//
// Example usage:
//
//	runner, err := wrangler.NewRunner().
//	    From(csvReader).
//	    ForMarket(market.Ireland()).
//	    To(csvWriter).
//	    Build()
//	if err != nil { log.Fatal(err) }
//	if err := runner.Execute(context.Background()); err != nil { log.Fatal(err) }
type RunnerBuilder struct {
	runner *Runner
}

// NewRunner creates a new RunnerBuilder.
func NewRunner() *RunnerBuilder {
	return &RunnerBuilder{
		runner: &Runner{
			registry: rules.Builtin(),
			logger:   zap.NewNop(),
		},
	}
}

// From sets the TableSource for the run.
func (rb *RunnerBuilder) From(source TableSource) *RunnerBuilder {
	rb.runner.source = source
	return rb
}

// ForMarket sets the market configuration whose rule sequence the run
// applies.
func (rb *RunnerBuilder) ForMarket(cfg *market.Config) *RunnerBuilder {
	rb.runner.market = cfg
	return rb
}

// WithRegistry replaces the builtin rule registry, e.g. to add custom
// operations for one processing task.
func (rb *RunnerBuilder) WithRegistry(registry *rules.Registry) *RunnerBuilder {
	rb.runner.registry = registry
	return rb
}

// WithLogger sets the structured logger for per-step progress.
func (rb *RunnerBuilder) WithLogger(logger *zap.Logger) *RunnerBuilder {
	rb.runner.logger = logger
	return rb
}

// To sets the TableSink for the run.
func (rb *RunnerBuilder) To(sink TableSink) *RunnerBuilder {
	rb.runner.sink = sink
	return rb
}

// Build validates and constructs the Runner.
func (rb *RunnerBuilder) Build() (*Runner, error) {
	if rb.runner.source == nil {
		return nil, fmt.Errorf("runner requires a table source")
	}
	if rb.runner.sink == nil {
		return nil, fmt.Errorf("runner requires a table sink")
	}
	if rb.runner.market == nil {
		return nil, fmt.Errorf("runner requires a market configuration")
	}
	if rb.runner.registry == nil {
		return nil, fmt.Errorf("runner requires a rule registry")
	}
	return rb.runner, nil
}

// Runner drives one market's cleaning run: load the raw table, apply the
// configured rule sequence strictly in order and hand the result to the
// sink. The first failing rule aborts the run; there is no local recovery
// or retry, the caller decides whether to rerun after fixing data or
// configuration.
type Runner struct {
	source   TableSource
	sink     TableSink
	market   *market.Config
	registry *rules.Registry
	logger   *zap.Logger
}

// Execute runs the cleaning sequence. The rule registry's dispatch point
// enforces that every operation returns a table, so a defective rule fails
// the run immediately with a contract error rather than corrupting the
// pipeline silently.
func (r *Runner) Execute(ctx context.Context) error {
	defer func() {
		r.source.Close()
		r.sink.Close()
	}()

	runID := uuid.NewString()
	log := r.logger.With(
		zap.String("run_id", runID),
		zap.String("market", r.market.Name),
	)

	tbl, err := r.source.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}
	log.Info("table loaded",
		zap.Int("rows", tbl.NumRows()),
		zap.Int("columns", tbl.NumCols()),
	)

	for i, spec := range r.market.Rules {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		out, err := r.registry.Apply(ctx, tbl, spec.Name, spec.Args)
		if err != nil {
			log.Error("rule failed",
				zap.Int("step", i+1),
				zap.String("rule", spec.Name),
				zap.Error(err),
			)
			return fmt.Errorf("rule %d (%s): %w", i+1, spec.Name, err)
		}
		tbl = out
		log.Debug("rule applied",
			zap.Int("step", i+1),
			zap.String("rule", spec.Name),
			zap.Int("rows", tbl.NumRows()),
			zap.Int("columns", tbl.NumCols()),
		)
	}

	if err := r.sink.WriteAll(ctx, tbl); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	log.Info("run finished",
		zap.Int("rules_applied", len(r.market.Rules)),
		zap.Int("rows", tbl.NumRows()),
		zap.Int("columns", tbl.NumCols()),
	)
	return nil
}
