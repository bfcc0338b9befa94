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
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nphyo/wrangler/table"
)

// Mock writer for testing
type mockWriteCloser struct {
	*strings.Builder
	closed    bool
	failWrite bool
}

func (m *mockWriteCloser) Write(p []byte) (int, error) {
	if m.failWrite {
		return 0, io.ErrUnexpectedEOF
	}
	return m.Builder.Write(p)
}

func (m *mockWriteCloser) Close() error {
	m.closed = true
	return nil
}

func newMockWriteCloser() *mockWriteCloser {
	return &mockWriteCloser{Builder: &strings.Builder{}}
}

func cleanedTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New()
	require.NoError(t, tbl.AddColumn("Category", []table.Value{"Oral Care", "Home Care"}))
	require.NoError(t, tbl.AddColumn("Local Spend", []table.Value{100, 2.5}))
	require.NoError(t, tbl.AddColumn("Remarks", []table.Value{nil, "has, comma"}))
	return tbl
}

func TestCSVWriter_WriteAll(t *testing.T) {
	mock := newMockWriteCloser()
	writer := NewCSVWriter(mock)

	require.NoError(t, writer.WriteAll(context.Background(), cleanedTable(t)))
	require.NoError(t, writer.Close())

	lines := strings.Split(strings.TrimRight(mock.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Category,Local Spend,Remarks", lines[0])
	assert.Equal(t, "Oral Care,100,", lines[1])
	assert.Equal(t, `Home Care,2.5,"has, comma"`, lines[2])
	assert.True(t, mock.closed)
}

func TestCSVWriter_TSV(t *testing.T) {
	mock := newMockWriteCloser()
	writer := NewCSVWriter(mock, WithComma('\t'))

	require.NoError(t, writer.WriteAll(context.Background(), cleanedTable(t)))

	lines := strings.Split(strings.TrimRight(mock.String(), "\n"), "\n")
	assert.Equal(t, "Category\tLocal Spend\tRemarks", lines[0])
	assert.Equal(t, "Home Care\t2.5\thas, comma", lines[2])
}

func TestCSVWriter_NoHeader(t *testing.T) {
	mock := newMockWriteCloser()
	writer := NewCSVWriter(mock, WithWriteHeader(false))

	require.NoError(t, writer.WriteAll(context.Background(), cleanedTable(t)))

	lines := strings.Split(strings.TrimRight(mock.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Oral Care,100,", lines[0])
}

func TestCSVWriter_WriteFailure(t *testing.T) {
	mock := newMockWriteCloser()
	mock.failWrite = true
	writer := NewCSVWriter(mock)

	err := writer.WriteAll(context.Background(), cleanedTable(t))
	require.Error(t, err)

	var csvErr *CSVWriterError
	assert.ErrorAs(t, err, &csvErr)
}

func TestCSVWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	writer := NewCSVWriter(newMockWriteCloser())
	err := writer.WriteAll(ctx, cleanedTable(t))
	assert.ErrorIs(t, err, context.Canceled)
}
