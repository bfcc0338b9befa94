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

// checks.go - assertion rules; each passes the table through unchanged
package rules

import (
	"context"

	"github.com/nphyo/wrangler/table"
)

// AssertColumnCount creates a rule that passes the table through when its
// column count equals the expected value and fails with ColumnCountError
// otherwise.
func AssertColumnCount(expected int) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		if tbl.NumCols() != expected {
			return nil, &ColumnCountError{Expected: expected, Actual: tbl.NumCols()}
		}
		return tbl, nil
	})
}

// AssertNoMissingValues creates a rule that fails with MissingValueError
// when any of the listed columns contains a missing cell.
func AssertNoMissingValues(colNames []string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		for _, colName := range colNames {
			col, err := tbl.Column(colName)
			if err != nil {
				return nil, err
			}
			for _, v := range col {
				if v == nil {
					return nil, &MissingValueError{Columns: colNames}
				}
			}
		}
		return tbl, nil
	})
}

// FillMissingWithEmpty creates a rule that replaces missing cells with the
// empty string in the listed columns. Raw files often carry "NA" cells
// that loaders surface as missing; downstream exports want them empty.
func FillMissingWithEmpty(colNames []string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		for _, colName := range colNames {
			col, err := tbl.Column(colName)
			if err != nil {
				return nil, err
			}
			for i, v := range col {
				if v == nil {
					col[i] = ""
				}
			}
		}
		return tbl, nil
	})
}

// AssertNoEmptyStrings creates a rule that fails with EmptyStringError,
// naming the offending column, when any listed column contains an
// empty-string cell.
func AssertNoEmptyStrings(colNames []string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		for _, colName := range colNames {
			col, err := tbl.Column(colName)
			if err != nil {
				return nil, err
			}
			for _, v := range col {
				if s, ok := v.(string); ok && s == "" {
					return nil, &EmptyStringError{Column: colName}
				}
			}
		}
		return tbl, nil
	})
}

// AssertMinimum creates a rule that fails with ThresholdError when any
// numeric cell of the listed columns is below the threshold. Non-numeric
// and missing cells are not compared. A threshold of 0 doubles as a
// no-negative-values assertion.
func AssertMinimum(threshold float64, colNames []string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		for _, colName := range colNames {
			col, err := tbl.Column(colName)
			if err != nil {
				return nil, err
			}
			for _, v := range col {
				if f, ok := toFloat64(v); ok && f < threshold {
					return nil, &ThresholdError{Column: colName, Threshold: threshold}
				}
			}
		}
		return tbl, nil
	})
}

// toFloat64 converts numeric cell types to float64 for comparison.
func toFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
