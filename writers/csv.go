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
	"encoding/csv"
	"fmt"
	"io"

	"github.com/nphyo/wrangler/table"
)

// Package writers provides implementations of wrangler.TableSink for
// exporting cleaned tables.

// CSVWriterError wraps CSV-specific write errors with context.
type CSVWriterError struct {
	Op  string
	Err error
}

func (e *CSVWriterError) Error() string {
	return fmt.Sprintf("csv writer %s: %v", e.Op, e.Err)
}

func (e *CSVWriterError) Unwrap() error {
	return e.Err
}

// CSVWriterOptions configures CSV output.
type CSVWriterOptions struct {
	Comma       rune
	UseCRLF     bool
	WriteHeader bool
}

// WriterOptionCSV is a functional option.
type WriterOptionCSV func(*CSVWriterOptions)

// WithComma sets the field delimiter. Pass '\t' for TSV output.
func WithComma(delim rune) WriterOptionCSV {
	return func(opts *CSVWriterOptions) {
		opts.Comma = delim
	}
}

func WithWriteHeader(write bool) WriterOptionCSV {
	return func(opts *CSVWriterOptions) {
		opts.WriteHeader = write
	}
}

func WithUseCRLF(useCRLF bool) WriterOptionCSV {
	return func(opts *CSVWriterOptions) {
		opts.UseCRLF = useCRLF
	}
}

// CSVWriter implements wrangler.TableSink for CSV and TSV output.
// Columns are written in table order; missing cells export as empty
// fields.
type CSVWriter struct {
	writer *csv.Writer
	closer io.Closer
	opts   CSVWriterOptions
}

// NewCSVWriter creates a new CSV writer with the given options.
func NewCSVWriter(w io.WriteCloser, options ...WriterOptionCSV) *CSVWriter {
	opts := CSVWriterOptions{
		Comma:       ',',
		WriteHeader: true,
	}
	for _, opt := range options {
		opt(&opts)
	}

	cw := csv.NewWriter(w)
	cw.Comma = opts.Comma
	cw.UseCRLF = opts.UseCRLF

	return &CSVWriter{
		writer: cw,
		closer: w,
		opts:   opts,
	}
}

// WriteAll implements the wrangler.TableSink interface.
func (c *CSVWriter) WriteAll(ctx context.Context, tbl *table.Table) error {
	select {
	case <-ctx.Done():
		return &CSVWriterError{Op: "write", Err: ctx.Err()}
	default:
	}

	headers := tbl.Columns()
	if c.opts.WriteHeader {
		if err := c.writer.Write(headers); err != nil {
			return &CSVWriterError{Op: "write_header", Err: err}
		}
	}

	cols := make([][]table.Value, len(headers))
	for i, name := range headers {
		col, err := tbl.Column(name)
		if err != nil {
			return &CSVWriterError{Op: "read_column", Err: err}
		}
		cols[i] = col
	}

	row := make([]string, len(headers))
	for r := 0; r < tbl.NumRows(); r++ {
		for i := range headers {
			row[i] = table.CellString(cols[i][r])
		}
		if err := c.writer.Write(row); err != nil {
			return &CSVWriterError{Op: "write_row", Err: err}
		}
	}

	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return &CSVWriterError{Op: "flush", Err: err}
	}
	return nil
}

// Close implements the wrangler.TableSink interface.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return &CSVWriterError{Op: "flush", Err: err}
	}
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
