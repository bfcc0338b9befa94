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

package rules

import (
	"context"

	"github.com/nphyo/wrangler/table"
)

// Rule is a single named table operation in a market's cleaning sequence.
// Every rule, mutating or asserting, returns the table so that rules
// compose uniformly in a pipeline without the caller branching on return
// type. Assertions return the table unchanged.
type Rule interface {
	// Apply runs the operation against the table and returns the same or a
	// derived table.
	Apply(ctx context.Context, tbl *table.Table) (*table.Table, error)
}

// RuleFunc is a function adapter for the Rule interface.
// Allows ordinary functions to be used as Rules.
type RuleFunc func(ctx context.Context, tbl *table.Table) (*table.Table, error)

// Apply implements the Rule interface for RuleFunc.
func (f RuleFunc) Apply(ctx context.Context, tbl *table.Table) (*table.Table, error) {
	return f(ctx, tbl)
}
