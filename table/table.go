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

package table

import (
	"fmt"
	"sort"
)

// Package table implements the in-memory tabular dataset that flows through
// Wrangler cleaning pipelines.
//
// A Table is an ordered sequence of named columns, each holding an ordered
// slice of cells. Cells are untyped (string, int, float64, bool); a nil cell
// is the missing-value marker. Column names are unique and column order is
// significant for index-based operations.

// Value is a single table cell. A nil Value marks a missing cell.
type Value = interface{}

// Table is an in-memory dataset with named, ordered columns sharing one
// row count.
type Table struct {
	names []string
	cols  map[string][]Value
	rows  int
}

// New creates an empty table with no columns and no rows.
func New() *Table {
	return &Table{
		names: make([]string, 0),
		cols:  make(map[string][]Value),
	}
}

// AddColumn appends a named column. The column's length must match the
// table's current row count unless the table has no columns yet.
func (t *Table) AddColumn(name string, values []Value) error {
	if _, exists := t.cols[name]; exists {
		return fmt.Errorf("table: duplicate column %q", name)
	}
	if len(t.names) > 0 && len(values) != t.rows {
		return fmt.Errorf("table: column %q has %d rows, table has %d", name, len(values), t.rows)
	}
	t.names = append(t.names, name)
	t.cols[name] = append([]Value(nil), values...)
	t.rows = len(values)
	return nil
}

// SetColumn replaces the values of an existing column, or appends a new
// column when the name is unknown.
func (t *Table) SetColumn(name string, values []Value) error {
	if _, exists := t.cols[name]; !exists {
		return t.AddColumn(name, values)
	}
	if len(values) != t.rows {
		return fmt.Errorf("table: column %q has %d rows, table has %d", name, len(values), t.rows)
	}
	t.cols[name] = append([]Value(nil), values...)
	return nil
}

// Column returns the cells of a named column. The returned slice is the
// table's backing storage; callers mutating it mutate the table.
func (t *Table) Column(name string) ([]Value, error) {
	col, exists := t.cols[name]
	if !exists {
		return nil, fmt.Errorf("table: unknown column %q", name)
	}
	return col, nil
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, exists := t.cols[name]
	return exists
}

// Columns returns the column names in order. The slice is a copy.
func (t *Table) Columns() []string {
	return append([]string(nil), t.names...)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.names) }

// NumRows returns the shared row count.
func (t *Table) NumRows() int { return t.rows }

// At returns the cell at the given column and zero-based row.
func (t *Table) At(name string, row int) (Value, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= t.rows {
		return nil, fmt.Errorf("table: row %d out of range [0,%d)", row, t.rows)
	}
	return col[row], nil
}

// Set overwrites the cell at the given column and zero-based row.
func (t *Table) Set(name string, row int, v Value) error {
	col, err := t.Column(name)
	if err != nil {
		return err
	}
	if row < 0 || row >= t.rows {
		return fmt.Errorf("table: row %d out of range [0,%d)", row, t.rows)
	}
	col[row] = v
	return nil
}

// AppendRow appends one row of cells, ordered to match Columns().
func (t *Table) AppendRow(values []Value) error {
	if len(values) != len(t.names) {
		return fmt.Errorf("table: row has %d cells, table has %d columns", len(values), len(t.names))
	}
	for i, name := range t.names {
		t.cols[name] = append(t.cols[name], values[i])
	}
	t.rows++
	return nil
}

// DropByIndex removes the columns at the given zero-based positions.
func (t *Table) DropByIndex(indices []int) error {
	drop := make(map[string]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(t.names) {
			return fmt.Errorf("table: column index %d out of range [0,%d)", idx, len(t.names))
		}
		drop[t.names[idx]] = true
	}
	return t.dropNamed(drop)
}

// DropByName removes the named columns.
func (t *Table) DropByName(names []string) error {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		if _, exists := t.cols[name]; !exists {
			return fmt.Errorf("table: unknown column %q", name)
		}
		drop[name] = true
	}
	return t.dropNamed(drop)
}

func (t *Table) dropNamed(drop map[string]bool) error {
	kept := t.names[:0]
	for _, name := range t.names {
		if drop[name] {
			delete(t.cols, name)
			continue
		}
		kept = append(kept, name)
	}
	t.names = kept
	if len(t.names) == 0 {
		t.rows = 0
	}
	return nil
}

// Rename renames columns according to the old-to-new mapping. Columns not
// present in the mapping keep their names.
func (t *Table) Rename(mapping map[string]string) {
	for i, name := range t.names {
		newName, mapped := mapping[name]
		if !mapped || newName == name {
			continue
		}
		t.names[i] = newName
		t.cols[newName] = t.cols[name]
		delete(t.cols, name)
	}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		names: append([]string(nil), t.names...),
		cols:  make(map[string][]Value, len(t.cols)),
		rows:  t.rows,
	}
	for name, col := range t.cols {
		out.cols[name] = append([]Value(nil), col...)
	}
	return out
}

// SortedDistinct returns the distinct values of a column formatted as
// strings, sorted ascending. Missing cells format as the empty string.
func (t *Table) SortedDistinct(name string) ([]string, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(col))
	for _, v := range col {
		seen[CellString(v)] = true
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

// CellString formats a cell for display or CSV output. Missing cells
// format as the empty string.
func CellString(v Value) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
