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

// columns.go - column-level structural operations (drop, rename, derive)
package rules

import (
	"context"
	"strings"

	"github.com/nphyo/wrangler/table"
)

// unnamedMarker is the header substring that marks phantom columns left
// behind by Excel exports with empty but hidden columns.
const unnamedMarker = "Unnamed"

// DropColumnsByIndex creates a rule that removes the columns at the given
// zero-based positions.
func DropColumnsByIndex(indices []int) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		if err := tbl.DropByIndex(indices); err != nil {
			return nil, err
		}
		return tbl, nil
	})
}

// DropColumnsByName creates a rule that removes the named columns.
func DropColumnsByName(names []string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		if err := tbl.DropByName(names); err != nil {
			return nil, err
		}
		return tbl, nil
	})
}

// DropUnnamedColumns creates a rule that removes every column whose header
// contains "Unnamed".
func DropUnnamedColumns() Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		var drop []string
		for _, name := range tbl.Columns() {
			if strings.Contains(name, unnamedMarker) {
				drop = append(drop, name)
			}
		}
		if len(drop) > 0 {
			if err := tbl.DropByName(drop); err != nil {
				return nil, err
			}
		}
		return tbl, nil
	})
}

// RenameColumns creates a rule that renames column headers via an
// old-to-new mapping. Columns not present in the mapping keep their names.
func RenameColumns(mapping map[string]string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		tbl.Rename(mapping)
		return tbl, nil
	})
}

// DeriveColumn creates a rule that adds a new column whose cells are the
// mapped values of an existing column. Source cells not present in the
// mapping produce missing cells; there is no fallback.
func DeriveColumn(newName, sourceName string, mapping map[string]string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		src, err := tbl.Column(sourceName)
		if err != nil {
			return nil, err
		}
		derived := make([]table.Value, len(src))
		for i, v := range src {
			if s, ok := v.(string); ok {
				if mapped, found := mapping[s]; found {
					derived[i] = mapped
				}
			}
		}
		if err := tbl.SetColumn(newName, derived); err != nil {
			return nil, err
		}
		return tbl, nil
	})
}
