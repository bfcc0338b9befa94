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
	"fmt"
	"io"

	"github.com/nphyo/wrangler/table"
)

// JSONWriterError wraps JSON-specific write errors with context.
type JSONWriterError struct {
	Op  string
	Err error
}

func (e *JSONWriterError) Error() string {
	return fmt.Sprintf("json writer %s: %v", e.Op, e.Err)
}

func (e *JSONWriterError) Unwrap() error {
	return e.Err
}

// JSONWriter implements wrangler.TableSink, emitting one JSON object per
// row (JSON lines). Missing cells export as null.
type JSONWriter struct {
	encoder *json.Encoder
	closer  io.Closer
}

// NewJSONWriter creates a new JSON-lines writer.
func NewJSONWriter(w io.WriteCloser) *JSONWriter {
	return &JSONWriter{
		encoder: json.NewEncoder(w),
		closer:  w,
	}
}

// WriteAll implements the wrangler.TableSink interface.
func (j *JSONWriter) WriteAll(ctx context.Context, tbl *table.Table) error {
	select {
	case <-ctx.Done():
		return &JSONWriterError{Op: "write", Err: ctx.Err()}
	default:
	}

	headers := tbl.Columns()
	cols := make([][]table.Value, len(headers))
	for i, name := range headers {
		col, err := tbl.Column(name)
		if err != nil {
			return &JSONWriterError{Op: "read_column", Err: err}
		}
		cols[i] = col
	}

	for r := 0; r < tbl.NumRows(); r++ {
		row := make(map[string]interface{}, len(headers))
		for i, name := range headers {
			row[name] = cols[i][r]
		}
		if err := j.encoder.Encode(row); err != nil {
			return &JSONWriterError{Op: "encode_row", Err: err}
		}
	}
	return nil
}

// Close implements the wrangler.TableSink interface.
func (j *JSONWriter) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}
