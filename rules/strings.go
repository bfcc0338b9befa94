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

// strings.go - string normalization and near-duplicate detection rules
package rules

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/nphyo/wrangler/table"
)

var (
	// wordStart matches the character following start-of-string or
	// whitespace. Capitalizing only that character keeps values like
	// "YouTube" and "GDN Video" intact, which a full title-case pass
	// would corrupt to "Youtube" and "Gdn Video".
	wordStart = regexp.MustCompile(`(^|\s)\S`)

	// nonAlphaNumeric matches everything outside letters, digits and
	// underscore, unicode-aware.
	nonAlphaNumeric = regexp.MustCompile(`[^\p{L}\p{N}_]`)
)

// capitalizeWords uppercases the first letter of each whitespace-separated
// word, leaving every other character unchanged.
func capitalizeWords(s string) string {
	return wordStart.ReplaceAllStringFunc(s, func(m string) string {
		r := []rune(m)
		r[len(r)-1] = unicode.ToUpper(r[len(r)-1])
		return string(r)
	})
}

// normalizeForComparison reduces a value to its duplicate-detection form:
// lowercase with all non-alphanumeric characters removed, so that
// "YouTube", "Youtube" and "You Tube" all collapse to "youtube".
func normalizeForComparison(s string) string {
	return strings.ToLower(nonAlphaNumeric.ReplaceAllString(s, ""))
}

// checkDuplicatesIn compares the count of distinct normalized values in a
// column against the count of distinct originals. Fewer normalized values
// means at least two originals collapsed together.
func checkDuplicatesIn(tbl *table.Table, colName string) error {
	col, err := tbl.Column(colName)
	if err != nil {
		return err
	}
	originals := make(map[string]bool, len(col))
	normalized := make(map[string]bool, len(col))
	for _, v := range col {
		s := table.CellString(v)
		originals[s] = true
		normalized[normalizeForComparison(s)] = true
	}
	if len(normalized) != len(originals) {
		values, err := tbl.SortedDistinct(colName)
		if err != nil {
			return err
		}
		return &PossibleDuplicateError{Column: colName, Values: values}
	}
	return nil
}

// CheckPossibleDuplicatesInColumn creates a rule that fails when a column
// holds values that differ only in case or punctuation, e.g. "YouTube" vs
// "Youtube" or "E-commerce" vs "ECommerce". This is a fail-fast data
// quality gate: the rule never merges values, it reports every original
// value (sorted) and leaves remediation to the operator.
func CheckPossibleDuplicatesInColumn(colName string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		if err := checkDuplicatesIn(tbl, colName); err != nil {
			return nil, err
		}
		return tbl, nil
	})
}

// CheckPossibleDuplicatesInColumns creates a rule that runs the
// near-duplicate gate over each listed column in order.
func CheckPossibleDuplicatesInColumns(colNames []string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		for _, colName := range colNames {
			if err := checkDuplicatesIn(tbl, colName); err != nil {
				return nil, err
			}
		}
		return tbl, nil
	})
}

// CapitalizeWordsInColumn creates a rule that capitalizes the first letter
// of each word of a column's string cells. Applying it twice yields the
// same result as applying it once.
func CapitalizeWordsInColumn(colName string) Rule {
	return CapitalizeWordsInColumns([]string{colName})
}

// CapitalizeWordsInColumns creates a rule that capitalizes the first
// letter of each word across the listed columns. Non-string cells are left
// unchanged.
func CapitalizeWordsInColumns(colNames []string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		for _, colName := range colNames {
			col, err := tbl.Column(colName)
			if err != nil {
				return nil, err
			}
			for i, v := range col {
				if s, ok := v.(string); ok {
					col[i] = capitalizeWords(s)
				}
			}
		}
		return tbl, nil
	})
}

// UppercaseColumns creates a rule that uppercases every string cell of the
// listed columns.
func UppercaseColumns(colNames []string) Rule {
	return RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
		for _, colName := range colNames {
			col, err := tbl.Column(colName)
			if err != nil {
				return nil, err
			}
			for i, v := range col {
				if s, ok := v.(string); ok {
					col[i] = strings.ToUpper(s)
				}
			}
		}
		return tbl, nil
	})
}
