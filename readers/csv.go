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

package readers

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nphyo/wrangler/table"
)

// Package readers provides implementations of wrangler.TableSource for
// loading raw tables from files, object storage and databases.

// CSVReaderError wraps structured error information for the CSV reader.
type CSVReaderError struct {
	Op  string
	Err error
}

func (e *CSVReaderError) Error() string {
	return fmt.Sprintf("csv reader %s: %v", e.Op, e.Err)
}

func (e *CSVReaderError) Unwrap() error {
	return e.Err
}

// CSVReaderOptions configures the CSV reader.
type CSVReaderOptions struct {
	Comma            rune
	Comment          rune
	LazyQuotes       bool
	TrimLeadingSpace bool
	HasHeaders       bool
	InferTypes       bool
}

// ReaderOptionCSV allows functional customization of CSVReader.
type ReaderOptionCSV func(*CSVReaderOptions)

func WithCSVComma(r rune) ReaderOptionCSV {
	return func(o *CSVReaderOptions) { o.Comma = r }
}

func WithCSVHasHeaders(hasHeaders bool) ReaderOptionCSV {
	return func(o *CSVReaderOptions) { o.HasHeaders = hasHeaders }
}

func WithCSVTrimSpace(trim bool) ReaderOptionCSV {
	return func(o *CSVReaderOptions) { o.TrimLeadingSpace = trim }
}

// WithCSVInferTypes toggles parsing of int/float/bool cells. When off,
// every non-empty cell is a string.
func WithCSVInferTypes(infer bool) ReaderOptionCSV {
	return func(o *CSVReaderOptions) { o.InferTypes = infer }
}

// CSVReader implements wrangler.TableSource for CSV and TSV files.
// Empty cells load as missing values.
type CSVReader struct {
	reader *csv.Reader
	closer io.Closer
	opts   CSVReaderOptions
}

// NewCSVReader creates a CSVReader with default or overridden options.
func NewCSVReader(r io.ReadCloser, options ...ReaderOptionCSV) *CSVReader {
	opts := CSVReaderOptions{
		Comma:            ',',
		HasHeaders:       true,
		TrimLeadingSpace: true,
		InferTypes:       true,
	}

	for _, opt := range options {
		opt(&opts)
	}

	csvReader := csv.NewReader(r)
	csvReader.Comma = opts.Comma
	csvReader.Comment = opts.Comment
	csvReader.LazyQuotes = opts.LazyQuotes
	csvReader.TrimLeadingSpace = opts.TrimLeadingSpace

	return &CSVReader{
		reader: csvReader,
		closer: r,
		opts:   opts,
	}
}

// ReadAll implements the wrangler.TableSource interface.
func (c *CSVReader) ReadAll(ctx context.Context) (*table.Table, error) {
	select {
	case <-ctx.Done():
		return nil, &CSVReaderError{Op: "read", Err: ctx.Err()}
	default:
	}

	rows, err := c.reader.ReadAll()
	if err != nil {
		return nil, &CSVReaderError{Op: "read_records", Err: err}
	}
	if len(rows) == 0 {
		return table.New(), nil
	}

	var headers []string
	if c.opts.HasHeaders {
		headers = rows[0]
		rows = rows[1:]
	} else {
		headers = make([]string, len(rows[0]))
		for i := range headers {
			headers[i] = "col_" + strconv.Itoa(i)
		}
	}

	tbl := table.New()
	for i, header := range headers {
		col := make([]table.Value, len(rows))
		for j, row := range rows {
			col[j] = c.parseValue(row[i])
		}
		if err := tbl.AddColumn(header, col); err != nil {
			return nil, &CSVReaderError{Op: "build_table", Err: err}
		}
	}
	return tbl, nil
}

// Close implements the wrangler.TableSource interface.
func (c *CSVReader) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// parseValue infers int, float or bool when type inference is on; empty
// cells become missing values.
func (c *CSVReader) parseValue(value string) table.Value {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if !c.opts.InferTypes {
		return value
	}
	trimmed := strings.TrimSpace(value)
	if i, err := strconv.Atoi(trimmed); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(trimmed); err == nil {
		return b
	}
	return value
}
