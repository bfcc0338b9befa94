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

// values.go - value-mapping rules (partial-override recoding)
package rules

import (
	"context"

	"github.com/nphyo/wrangler/table"
)

// applyMapping recodes a column in place using a partial-override mapping:
// cells found as keys are replaced by the mapped value, every other cell is
// left as-is. The leave-as-is default is integral to the contract; mapping
// keys are strings because they originate from serialized configuration,
// so non-string cells are never eligible.
func applyMapping(tbl *table.Table, colName string, mapping map[string]string) error {
	col, err := tbl.Column(colName)
	if err != nil {
		return err
	}
	for i, v := range col {
		if s, ok := v.(string); ok {
			if mapped, found := mapping[s]; found {
				col[i] = mapped
			}
		}
	}
	return nil
}

// UpdateValuesInColumn creates a rule that replaces cell values of one
// column according to an old-to-new mapping. Cells whose value is not a
// mapping key keep their original value.
func UpdateValuesInColumn(colName string, mapping map[string]string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		if err := applyMapping(tbl, colName, mapping); err != nil {
			return nil, err
		}
		return tbl, nil
	})
}

// UpdateValuesInColumns creates a rule that applies one mapping per listed
// column. The column list and the mapping list must be parallel; a length
// mismatch is rejected at build time by the registry.
func UpdateValuesInColumns(colNames []string, mappings []map[string]string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		if len(colNames) != len(mappings) {
			return nil, &InputLengthError{
				Op:       OpUpdateValuesInColumns,
				Columns:  len(colNames),
				Mappings: len(mappings),
			}
		}
		for i, colName := range colNames {
			if err := applyMapping(tbl, colName, mappings[i]); err != nil {
				return nil, err
			}
		}
		return tbl, nil
	})
}

// UpdateIntValuesToStrings creates a rule that first casts each listed
// column's cells to their string representation and then applies the
// per-column partial-override mapping. Needed when numeric cells such as
// the year 2020 must become labels like "2020 YTD", since configuration
// mappings can only carry string keys.
func UpdateIntValuesToStrings(colNames []string, mappings []map[string]string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		if len(colNames) != len(mappings) {
			return nil, &InputLengthError{
				Op:       OpUpdateIntValuesToStrings,
				Columns:  len(colNames),
				Mappings: len(mappings),
			}
		}
		for i, colName := range colNames {
			col, err := tbl.Column(colName)
			if err != nil {
				return nil, err
			}
			for j, v := range col {
				if v != nil {
					col[j] = table.CellString(v)
				}
			}
			if err := applyMapping(tbl, colName, mappings[i]); err != nil {
				return nil, err
			}
		}
		return tbl, nil
	})
}

// UpdateColumnFromBaseColumn creates a rule that sets a target column's
// cell to mapping[base cell] on rows where the base cell is a mapped key.
// Rows whose base cell is unmapped keep their target value.
func UpdateColumnFromBaseColumn(baseName, targetName string, mapping map[string]string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		base, err := tbl.Column(baseName)
		if err != nil {
			return nil, err
		}
		target, err := tbl.Column(targetName)
		if err != nil {
			return nil, err
		}
		for i, v := range base {
			if s, ok := v.(string); ok {
				if mapped, found := mapping[s]; found {
					target[i] = mapped
				}
			}
		}
		return tbl, nil
	})
}

// SetColumnWhereBaseIn creates a rule that sets the target column's cell
// to a constant on rows where the base column's cell is one of the given
// values. All other rows are untouched.
func SetColumnWhereBaseIn(baseName, targetName string, baseValues []string, finalValue string) Rule {
	members := make(map[string]bool, len(baseValues))
	for _, v := range baseValues {
		members[v] = true
	}
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		base, err := tbl.Column(baseName)
		if err != nil {
			return nil, err
		}
		target, err := tbl.Column(targetName)
		if err != nil {
			return nil, err
		}
		for i, v := range base {
			if s, ok := v.(string); ok && members[s] {
				target[i] = finalValue
			}
		}
		return tbl, nil
	})
}

// CopyColumnWhereEquals creates a rule that overwrites the destination
// column's cell with the source column's cell on rows where the
// destination currently equals the trigger value. Used to roll division
// totals down into the market column, for example.
func CopyColumnWhereEquals(srcName, dstName, triggerValue string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		src, err := tbl.Column(srcName)
		if err != nil {
			return nil, err
		}
		dst, err := tbl.Column(dstName)
		if err != nil {
			return nil, err
		}
		for i, v := range dst {
			if s, ok := v.(string); ok && s == triggerValue {
				dst[i] = src[i]
			}
		}
		return tbl, nil
	})
}
