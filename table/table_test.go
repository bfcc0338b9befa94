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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T) *Table {
	t.Helper()
	tbl := New()
	require.NoError(t, tbl.AddColumn("channel", []Value{"TV", "Radio", "OOH"}))
	require.NoError(t, tbl.AddColumn("spend", []Value{100, 50, nil}))
	require.NoError(t, tbl.AddColumn("market", []Value{"IE", "IE", "LT"}))
	return tbl
}

func TestTable_AddColumn(t *testing.T) {
	tbl := buildTable(t)

	assert.Equal(t, 3, tbl.NumCols())
	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, []string{"channel", "spend", "market"}, tbl.Columns())

	// Duplicate name rejected
	err := tbl.AddColumn("channel", []Value{"x", "y", "z"})
	assert.Error(t, err)

	// Row count mismatch rejected
	err = tbl.AddColumn("extra", []Value{"only", "two"})
	assert.Error(t, err)
}

func TestTable_ColumnIsBackingStorage(t *testing.T) {
	tbl := buildTable(t)

	col, err := tbl.Column("channel")
	require.NoError(t, err)
	col[0] = "Search"

	v, err := tbl.At("channel", 0)
	require.NoError(t, err)
	assert.Equal(t, "Search", v)
}

func TestTable_AtAndSet(t *testing.T) {
	tbl := buildTable(t)

	v, err := tbl.At("spend", 2)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, tbl.Set("spend", 2, 75))
	v, err = tbl.At("spend", 2)
	require.NoError(t, err)
	assert.Equal(t, 75, v)

	_, err = tbl.At("spend", 3)
	assert.Error(t, err)
	_, err = tbl.At("missing", 0)
	assert.Error(t, err)
}

func TestTable_AppendRow(t *testing.T) {
	tbl := buildTable(t)

	require.NoError(t, tbl.AppendRow([]Value{"Print", 10, "IE"}))
	assert.Equal(t, 4, tbl.NumRows())

	v, err := tbl.At("market", 3)
	require.NoError(t, err)
	assert.Equal(t, "IE", v)

	// Wrong arity rejected
	assert.Error(t, tbl.AppendRow([]Value{"too", "short"}))
}

func TestTable_DropByIndex(t *testing.T) {
	tbl := buildTable(t)

	require.NoError(t, tbl.DropByIndex([]int{0, 2}))
	assert.Equal(t, []string{"spend"}, tbl.Columns())
	assert.False(t, tbl.HasColumn("channel"))

	// Out of range index on a fresh table
	tbl2 := buildTable(t)
	assert.Error(t, tbl2.DropByIndex([]int{5}))
}

func TestTable_DropByName(t *testing.T) {
	tbl := buildTable(t)

	require.NoError(t, tbl.DropByName([]string{"spend"}))
	assert.Equal(t, []string{"channel", "market"}, tbl.Columns())
	assert.Equal(t, 3, tbl.NumRows())

	assert.Error(t, tbl.DropByName([]string{"nope"}))
}

func TestTable_Rename(t *testing.T) {
	tbl := buildTable(t)

	tbl.Rename(map[string]string{"channel": "media_channel", "absent": "whatever"})
	assert.Equal(t, []string{"media_channel", "spend", "market"}, tbl.Columns())

	col, err := tbl.Column("media_channel")
	require.NoError(t, err)
	assert.Equal(t, []Value{"TV", "Radio", "OOH"}, col)
	assert.False(t, tbl.HasColumn("channel"))
}

func TestTable_Clone(t *testing.T) {
	tbl := buildTable(t)
	clone := tbl.Clone()

	require.NoError(t, clone.Set("channel", 0, "Changed"))

	v, err := tbl.At("channel", 0)
	require.NoError(t, err)
	assert.Equal(t, "TV", v, "mutating the clone must not touch the original")
}

func TestTable_SortedDistinct(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.AddColumn("source", []Value{"YouTube", "Youtube", "Other", "YouTube", nil}))

	values, err := tbl.SortedDistinct("source")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "Other", "YouTube", "Youtube"}, values)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", CellString(nil))
	assert.Equal(t, "hello", CellString("hello"))
	assert.Equal(t, "2020", CellString(2020))
	assert.Equal(t, "1.5", CellString(1.5))
	assert.Equal(t, "true", CellString(true))
}
