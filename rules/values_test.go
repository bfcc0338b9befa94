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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nphyo/wrangler/table"
)

func TestUpdateValuesInColumn_PartialOverride(t *testing.T) {
	tbl := newTestTable(t,
		[]string{"SOURCE"},
		[][]table.Value{{"Youtube", "Facebook", "Other", nil, 7}},
	)

	out, err := UpdateValuesInColumn("SOURCE", map[string]string{
		"Youtube": "YouTube",
	}).Apply(context.Background(), tbl)
	require.NoError(t, err)

	col, err := out.Column("SOURCE")
	require.NoError(t, err)
	// Only mapped string cells change; everything else keeps its value.
	assert.Equal(t, []table.Value{"YouTube", "Facebook", "Other", nil, 7}, col)
}

func TestUpdateValuesInColumns(t *testing.T) {
	tbl := newTestTable(t,
		[]string{"SOURCE", "MARKET"},
		[][]table.Value{
			{"Youtube", "Other"},
			{"irl", "irl"},
		},
	)

	out, err := UpdateValuesInColumns(
		[]string{"SOURCE", "MARKET"},
		[]map[string]string{
			{"Youtube": "YouTube"},
			{"irl": "Ireland"},
		},
	).Apply(context.Background(), tbl)
	require.NoError(t, err)

	source, err := out.Column("SOURCE")
	require.NoError(t, err)
	assert.Equal(t, []table.Value{"YouTube", "Other"}, source)

	market, err := out.Column("MARKET")
	require.NoError(t, err)
	assert.Equal(t, []table.Value{"Ireland", "Ireland"}, market)
}

func TestUpdateValuesInColumns_LengthMismatch(t *testing.T) {
	tbl := newTestTable(t, []string{"a", "b"}, [][]table.Value{{1}, {2}})

	_, err := UpdateValuesInColumns(
		[]string{"a", "b"},
		[]map[string]string{{"x": "y"}},
	).Apply(context.Background(), tbl)

	var lenErr *InputLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 2, lenErr.Columns)
	assert.Equal(t, 1, lenErr.Mappings)
}

func TestUpdateIntValuesToStrings(t *testing.T) {
	tbl := newTestTable(t,
		[]string{"YEAR"},
		[][]table.Value{{2020, 2019, nil}},
	)

	out, err := UpdateIntValuesToStrings(
		[]string{"YEAR"},
		[]map[string]string{{"2020": "2020 YTD"}},
	).Apply(context.Background(), tbl)
	require.NoError(t, err)

	col, err := out.Column("YEAR")
	require.NoError(t, err)
	// 2020 cast to "2020" then mapped; 2019 cast but unmapped; missing stays.
	assert.Equal(t, []table.Value{"2020 YTD", "2019", nil}, col)
}

func TestUpdateColumnFromBaseColumn(t *testing.T) {
	tbl := newTestTable(t,
		[]string{"PRODUCT", "CATEGORY"},
		[][]table.Value{
			{"Whitening Paste", "Mystery Item"},
			{"stale", "stale"},
		},
	)

	out, err := UpdateColumnFromBaseColumn("PRODUCT", "CATEGORY", map[string]string{
		"Whitening Paste": "Oral Care",
	}).Apply(context.Background(), tbl)
	require.NoError(t, err)

	col, err := out.Column("CATEGORY")
	require.NoError(t, err)
	// Row with unmapped base keeps its current target value.
	assert.Equal(t, []table.Value{"Oral Care", "stale"}, col)
}

func TestSetColumnWhereBaseIn(t *testing.T) {
	tbl := newTestTable(t,
		[]string{"SOURCE", "CHANNEL"},
		[][]table.Value{
			{"YouTube", "Facebook", "Print"},
			{"old", "old", "old"},
		},
	)

	out, err := SetColumnWhereBaseIn(
		"SOURCE", "CHANNEL",
		[]string{"YouTube", "Facebook"}, "Digital",
	).Apply(context.Background(), tbl)
	require.NoError(t, err)

	col, err := out.Column("CHANNEL")
	require.NoError(t, err)
	assert.Equal(t, []table.Value{"Digital", "Digital", "old"}, col)
}

func TestCopyColumnWhereEquals(t *testing.T) {
	tbl := newTestTable(t,
		[]string{"DIVISION", "MARKET"},
		[][]table.Value{
			{"Northern Europe", "Northern Europe"},
			{"Total", "Ireland"},
		},
	)

	out, err := CopyColumnWhereEquals("DIVISION", "MARKET", "Total").Apply(context.Background(), tbl)
	require.NoError(t, err)

	col, err := out.Column("MARKET")
	require.NoError(t, err)
	// Rows holding the trigger value take the source cell; others keep theirs.
	assert.Equal(t, []table.Value{"Northern Europe", "Ireland"}, col)
}

func TestValueRules_UnknownColumn(t *testing.T) {
	tbl := newTestTable(t, []string{"a"}, [][]table.Value{{1}})
	ctx := context.Background()

	_, err := UpdateValuesInColumn("ghost", nil).Apply(ctx, tbl)
	assert.Error(t, err)
	_, err = UpdateColumnFromBaseColumn("ghost", "a", nil).Apply(ctx, tbl)
	assert.Error(t, err)
	_, err = CopyColumnWhereEquals("a", "ghost", "x").Apply(ctx, tbl)
	assert.Error(t, err)
}
