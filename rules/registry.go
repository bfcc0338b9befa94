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

// registry.go - explicit operation-name registry and the single dispatch
// point that enforces the return-a-table contract
package rules

import (
	"context"
	"fmt"

	"github.com/nphyo/wrangler/table"
)

// Operation names as they appear in market configuration files.
const (
	OpDropColumnsByIndex        = "drop_columns_by_index"
	OpDropColumnsByName         = "drop_columns_by_name"
	OpDropUnnamedColumns        = "drop_unnamed_columns"
	OpRenameColumns             = "rename_columns"
	OpCheckDuplicatesInColumn   = "check_possible_duplicates_in_column"
	OpCheckDuplicatesInColumns  = "check_possible_duplicates_in_columns"
	OpCapitalizeWordsInColumn   = "capitalize_words_in_column"
	OpCapitalizeWordsInColumns  = "capitalize_words_in_columns"
	OpUppercaseColumns          = "uppercase_columns"
	OpUpdateValuesInColumn      = "update_values_in_column"
	OpUpdateValuesInColumns     = "update_values_in_columns"
	OpUpdateIntValuesToStrings  = "update_int_values_to_strings"
	OpUpdateColumnFromBase      = "update_column_from_base_column"
	OpSetColumnWhereBaseIn      = "set_column_where_base_in"
	OpCopyColumnWhereEquals     = "copy_column_where_equals"
	OpDeriveColumn              = "derive_column"
	OpAssertColumnCount         = "assert_column_count"
	OpAssertNoMissingValues     = "assert_no_missing_values"
	OpFillMissingWithEmpty      = "fill_missing_with_empty"
	OpAssertNoEmptyStrings      = "assert_no_empty_strings"
	OpAssertMinimum             = "assert_minimum"
)

// Builder validates the raw positional arguments of a configured rule and
// returns a ready-to-apply Rule. Argument shapes are checked here, once,
// when the sequence is resolved, not on every row.
type Builder func(args []interface{}) (Rule, error)

// Registry maps operation names, as written in configuration, to their
// builders. Registration is explicit: an operation exists because it was
// registered under a name, not because a method happens to be defined
// somewhere.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register binds a builder to an operation name. Registering the same name
// twice is an error.
func (r *Registry) Register(name string, builder Builder) error {
	if _, exists := r.builders[name]; exists {
		return fmt.Errorf("rule %q already registered", name)
	}
	r.builders[name] = builder
	return nil
}

// Resolve looks up an operation by its configured name and builds a Rule
// from the raw arguments. Unknown names fail with UnknownRuleError;
// malformed arguments fail with InputTypeError or InputLengthError.
func (r *Registry) Resolve(name string, args []interface{}) (Rule, error) {
	builder, exists := r.builders[name]
	if !exists {
		return nil, &UnknownRuleError{Name: name}
	}
	return builder(args)
}

// Apply resolves a named operation and runs it against the table, checking
// the return-a-table contract at this single dispatch point. A rule that
// returns neither a table nor an error is a programming defect and fails
// loudly with ContractError.
func (r *Registry) Apply(ctx context.Context, tbl *table.Table, name string, args []interface{}) (*table.Table, error) {
	rule, err := r.Resolve(name, args)
	if err != nil {
		return nil, err
	}
	out, err := rule.Apply(ctx, tbl)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, &ContractError{Op: name, Got: out}
	}
	return out, nil
}

// Builtin returns a registry pre-loaded with every operation in this
// package.
func Builtin() *Registry {
	r := NewRegistry()
	for name, builder := range builtinBuilders() {
		// Names are unique by construction.
		_ = r.Register(name, builder)
	}
	return r
}

func builtinBuilders() map[string]Builder {
	return map[string]Builder{
		OpDropColumnsByIndex: func(args []interface{}) (Rule, error) {
			indices, err := argIntList(OpDropColumnsByIndex, args, 0)
			if err != nil {
				return nil, err
			}
			return DropColumnsByIndex(indices), nil
		},
		OpDropColumnsByName: func(args []interface{}) (Rule, error) {
			names, err := argStringList(OpDropColumnsByName, args, 0)
			if err != nil {
				return nil, err
			}
			return DropColumnsByName(names), nil
		},
		OpDropUnnamedColumns: func(args []interface{}) (Rule, error) {
			return DropUnnamedColumns(), nil
		},
		OpRenameColumns: func(args []interface{}) (Rule, error) {
			mapping, err := argStringMap(OpRenameColumns, args, 0)
			if err != nil {
				return nil, err
			}
			return RenameColumns(mapping), nil
		},
		OpCheckDuplicatesInColumn: func(args []interface{}) (Rule, error) {
			colName, err := argString(OpCheckDuplicatesInColumn, args, 0)
			if err != nil {
				return nil, err
			}
			return CheckPossibleDuplicatesInColumn(colName), nil
		},
		OpCheckDuplicatesInColumns: func(args []interface{}) (Rule, error) {
			colNames, err := argStringList(OpCheckDuplicatesInColumns, args, 0)
			if err != nil {
				return nil, err
			}
			return CheckPossibleDuplicatesInColumns(colNames), nil
		},
		OpCapitalizeWordsInColumn: func(args []interface{}) (Rule, error) {
			colName, err := argString(OpCapitalizeWordsInColumn, args, 0)
			if err != nil {
				return nil, err
			}
			return CapitalizeWordsInColumn(colName), nil
		},
		OpCapitalizeWordsInColumns: func(args []interface{}) (Rule, error) {
			colNames, err := argStringList(OpCapitalizeWordsInColumns, args, 0)
			if err != nil {
				return nil, err
			}
			return CapitalizeWordsInColumns(colNames), nil
		},
		OpUppercaseColumns: func(args []interface{}) (Rule, error) {
			colNames, err := argStringList(OpUppercaseColumns, args, 0)
			if err != nil {
				return nil, err
			}
			return UppercaseColumns(colNames), nil
		},
		OpUpdateValuesInColumn: func(args []interface{}) (Rule, error) {
			colName, err := argString(OpUpdateValuesInColumn, args, 0)
			if err != nil {
				return nil, err
			}
			mapping, err := argStringMap(OpUpdateValuesInColumn, args, 1)
			if err != nil {
				return nil, err
			}
			return UpdateValuesInColumn(colName, mapping), nil
		},
		OpUpdateValuesInColumns: func(args []interface{}) (Rule, error) {
			colNames, err := argStringList(OpUpdateValuesInColumns, args, 0)
			if err != nil {
				return nil, err
			}
			mappings, err := argStringMapList(OpUpdateValuesInColumns, args, 1)
			if err != nil {
				return nil, err
			}
			if len(colNames) != len(mappings) {
				return nil, &InputLengthError{
					Op:       OpUpdateValuesInColumns,
					Columns:  len(colNames),
					Mappings: len(mappings),
				}
			}
			return UpdateValuesInColumns(colNames, mappings), nil
		},
		OpUpdateIntValuesToStrings: func(args []interface{}) (Rule, error) {
			colNames, err := argStringList(OpUpdateIntValuesToStrings, args, 0)
			if err != nil {
				return nil, err
			}
			mappings, err := argStringMapList(OpUpdateIntValuesToStrings, args, 1)
			if err != nil {
				return nil, err
			}
			if len(colNames) != len(mappings) {
				return nil, &InputLengthError{
					Op:       OpUpdateIntValuesToStrings,
					Columns:  len(colNames),
					Mappings: len(mappings),
				}
			}
			return UpdateIntValuesToStrings(colNames, mappings), nil
		},
		OpUpdateColumnFromBase: func(args []interface{}) (Rule, error) {
			baseName, err := argString(OpUpdateColumnFromBase, args, 0)
			if err != nil {
				return nil, err
			}
			targetName, err := argString(OpUpdateColumnFromBase, args, 1)
			if err != nil {
				return nil, err
			}
			mapping, err := argStringMap(OpUpdateColumnFromBase, args, 2)
			if err != nil {
				return nil, err
			}
			return UpdateColumnFromBaseColumn(baseName, targetName, mapping), nil
		},
		OpSetColumnWhereBaseIn: func(args []interface{}) (Rule, error) {
			baseName, err := argString(OpSetColumnWhereBaseIn, args, 0)
			if err != nil {
				return nil, err
			}
			targetName, err := argString(OpSetColumnWhereBaseIn, args, 1)
			if err != nil {
				return nil, err
			}
			baseValues, err := argStringList(OpSetColumnWhereBaseIn, args, 2)
			if err != nil {
				return nil, err
			}
			finalValue, err := argString(OpSetColumnWhereBaseIn, args, 3)
			if err != nil {
				return nil, err
			}
			return SetColumnWhereBaseIn(baseName, targetName, baseValues, finalValue), nil
		},
		OpCopyColumnWhereEquals: func(args []interface{}) (Rule, error) {
			srcName, err := argString(OpCopyColumnWhereEquals, args, 0)
			if err != nil {
				return nil, err
			}
			dstName, err := argString(OpCopyColumnWhereEquals, args, 1)
			if err != nil {
				return nil, err
			}
			triggerValue, err := argString(OpCopyColumnWhereEquals, args, 2)
			if err != nil {
				return nil, err
			}
			return CopyColumnWhereEquals(srcName, dstName, triggerValue), nil
		},
		OpDeriveColumn: func(args []interface{}) (Rule, error) {
			newName, err := argString(OpDeriveColumn, args, 0)
			if err != nil {
				return nil, err
			}
			sourceName, err := argString(OpDeriveColumn, args, 1)
			if err != nil {
				return nil, err
			}
			mapping, err := argStringMap(OpDeriveColumn, args, 2)
			if err != nil {
				return nil, err
			}
			return DeriveColumn(newName, sourceName, mapping), nil
		},
		OpAssertColumnCount: func(args []interface{}) (Rule, error) {
			expected, err := argInt(OpAssertColumnCount, args, 0)
			if err != nil {
				return nil, err
			}
			return AssertColumnCount(expected), nil
		},
		OpAssertNoMissingValues: func(args []interface{}) (Rule, error) {
			colNames, err := argStringList(OpAssertNoMissingValues, args, 0)
			if err != nil {
				return nil, err
			}
			return AssertNoMissingValues(colNames), nil
		},
		OpFillMissingWithEmpty: func(args []interface{}) (Rule, error) {
			colNames, err := argStringList(OpFillMissingWithEmpty, args, 0)
			if err != nil {
				return nil, err
			}
			return FillMissingWithEmpty(colNames), nil
		},
		OpAssertNoEmptyStrings: func(args []interface{}) (Rule, error) {
			colNames, err := argStringList(OpAssertNoEmptyStrings, args, 0)
			if err != nil {
				return nil, err
			}
			return AssertNoEmptyStrings(colNames), nil
		},
		OpAssertMinimum: func(args []interface{}) (Rule, error) {
			threshold, err := argFloat(OpAssertMinimum, args, 0)
			if err != nil {
				return nil, err
			}
			colNames, err := argStringList(OpAssertMinimum, args, 1)
			if err != nil {
				return nil, err
			}
			return AssertMinimum(threshold, colNames), nil
		},
	}
}
