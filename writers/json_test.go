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

package writers

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter_WriteAll(t *testing.T) {
	mock := newMockWriteCloser()
	writer := NewJSONWriter(mock)

	require.NoError(t, writer.WriteAll(context.Background(), cleanedTable(t)))
	require.NoError(t, writer.Close())
	assert.True(t, mock.closed)

	lines := strings.Split(strings.TrimRight(mock.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Oral Care", first["Category"])
	assert.Equal(t, float64(100), first["Local Spend"])
	assert.Nil(t, first["Remarks"], "missing cells export as null")

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "has, comma", second["Remarks"])
}

func TestJSONWriter_EmptyTable(t *testing.T) {
	mock := newMockWriteCloser()
	writer := NewJSONWriter(mock)

	tbl := cleanedTable(t)
	require.NoError(t, tbl.DropByName(tbl.Columns()))

	require.NoError(t, writer.WriteAll(context.Background(), tbl))
	assert.Empty(t, mock.String())
}
