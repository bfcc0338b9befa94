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
	"fmt"
	"strings"
)

// Package rules defines the catalog of named table-cleaning operations and
// the closed set of validation errors they raise.
//
// Every error kind below is a distinct struct so callers can match with
// errors.As. Errors carry the offending columns and values: they are meant
// for a human operator to fix the source data or the market configuration,
// not for automated recovery. A raised error aborts the remaining rule
// sequence for the run.

// InputTypeError reports an operation argument whose shape or type does not
// match the operation's contract, e.g. a column-name argument that is not a
// string or a mapping that is not string-to-string.
type InputTypeError struct {
	Op     string // operation name as it appears in configuration
	Reason string
}

func (e *InputTypeError) Error() string {
	return fmt.Sprintf("rule %s: invalid argument: %s", e.Op, e.Reason)
}

// InputLengthError reports two parallel argument lists (column names and
// their value mappings) with mismatched lengths.
type InputLengthError struct {
	Op       string
	Columns  int
	Mappings int
}

func (e *InputLengthError) Error() string {
	return fmt.Sprintf("rule %s: %d columns but %d value mappings; the lists must be parallel",
		e.Op, e.Columns, e.Mappings)
}

// PossibleDuplicateError reports near-duplicate values detected in a column
// after normalization (lowercase, non-alphanumerics stripped). Values holds
// every original value of the column, sorted, so an operator can decide
// which ones to re-map.
type PossibleDuplicateError struct {
	Column string
	Values []string
}

func (e *PossibleDuplicateError) Error() string {
	return fmt.Sprintf("possible duplicates found in the values of column %q: [%s]; "+
		"please map these values to standardized ones", e.Column, strings.Join(e.Values, ", "))
}

// ColumnCountError reports a table whose column count does not equal the
// expected value.
type ColumnCountError struct {
	Expected int
	Actual   int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("expected column count of %d but found %d in the current table",
		e.Expected, e.Actual)
}

// MissingValueError reports a missing (nil) cell in columns expected to be
// fully populated.
type MissingValueError struct {
	Columns []string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value found in one of these columns: [%s]",
		strings.Join(e.Columns, ", "))
}

// EmptyStringError reports an empty-string cell in a column expected to be
// non-empty.
type EmptyStringError struct {
	Column string
}

func (e *EmptyStringError) Error() string {
	return fmt.Sprintf("empty string value found in column %q", e.Column)
}

// ThresholdError reports a value below a required minimum.
type ThresholdError struct {
	Column    string
	Threshold float64
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("value less than threshold %v found in column %q", e.Threshold, e.Column)
}

// ContractError reports an operation that did not return a table. This is
// always a programming defect in the operation, never a data problem, and
// it is raised at the single dispatch point so no operation author can
// forget the contract silently.
type ContractError struct {
	Op  string
	Got interface{}
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("rule %s must return a table but returned %v", e.Op, e.Got)
}

// UnknownRuleError reports a configured operation name with no registered
// implementation.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("no rule registered under name %q", e.Name)
}
