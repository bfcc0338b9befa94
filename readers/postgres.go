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
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/nphyo/wrangler/table"
)

// PostgresReaderError provides structured error information for Postgres
// reader operations.
type PostgresReaderError struct {
	Op  string // Operation that failed (e.g., "connect", "query", "scan")
	Err error
}

func (e *PostgresReaderError) Error() string {
	return fmt.Sprintf("postgres reader %s: %v", e.Op, e.Err)
}

func (e *PostgresReaderError) Unwrap() error {
	return e.Err
}

// PostgresReaderOptions configures the Postgres reader.
type PostgresReaderOptions struct {
	DSN          string        // Database connection string
	Query        string        // SQL query to execute
	Params       []interface{} // Optional query parameters
	QueryTimeout time.Duration // Query execution timeout
	MaxOpenConns int
	MaxIdleConns int
}

// PostgresReaderOption represents a configuration function for
// PostgresReaderOptions.
type PostgresReaderOption func(*PostgresReaderOptions)

// WithPostgresDSN sets the PostgreSQL connection string.
func WithPostgresDSN(dsn string) PostgresReaderOption {
	return func(opts *PostgresReaderOptions) {
		opts.DSN = dsn
	}
}

// WithPostgresQuery sets the SQL query and optional parameters.
func WithPostgresQuery(query string, params ...interface{}) PostgresReaderOption {
	return func(opts *PostgresReaderOptions) {
		opts.Query = query
		if len(params) > 0 {
			opts.Params = make([]interface{}, len(params))
			copy(opts.Params, params)
		}
	}
}

// WithPostgresQueryTimeout sets the query execution timeout.
func WithPostgresQueryTimeout(timeout time.Duration) PostgresReaderOption {
	return func(opts *PostgresReaderOptions) {
		opts.QueryTimeout = timeout
	}
}

// WithPostgresConnectionPool configures the connection pool.
func WithPostgresConnectionPool(maxOpen, maxIdle int) PostgresReaderOption {
	return func(opts *PostgresReaderOptions) {
		opts.MaxOpenConns = maxOpen
		opts.MaxIdleConns = maxIdle
	}
}

// PostgresReader implements wrangler.TableSource for PostgreSQL query
// results. The whole result set is materialized into a table; NULLs load
// as missing values and []byte columns as strings.
type PostgresReader struct {
	db   *sql.DB
	opts *PostgresReaderOptions
}

// NewPostgresReader creates a new PostgreSQL reader with the given
// options. Returns a ready-to-use reader or an error.
func NewPostgresReader(options ...PostgresReaderOption) (*PostgresReader, error) {
	opts := &PostgresReaderOptions{}
	for _, option := range options {
		option(opts)
	}

	if opts.DSN == "" {
		return nil, &PostgresReaderError{Op: "validate", Err: fmt.Errorf("dsn is required")}
	}
	if opts.Query == "" {
		return nil, &PostgresReaderError{Op: "validate", Err: fmt.Errorf("query is required")}
	}

	db, err := sql.Open("postgres", opts.DSN)
	if err != nil {
		return nil, &PostgresReaderError{Op: "connect", Err: err}
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}

	return &PostgresReader{db: db, opts: opts}, nil
}

// ReadAll implements the wrangler.TableSource interface.
func (p *PostgresReader) ReadAll(ctx context.Context) (*table.Table, error) {
	if p.opts.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.QueryTimeout)
		defer cancel()
	}

	if err := p.db.PingContext(ctx); err != nil {
		return nil, &PostgresReaderError{Op: "ping", Err: err}
	}

	rows, err := p.db.QueryContext(ctx, p.opts.Query, p.opts.Params...)
	if err != nil {
		return nil, &PostgresReaderError{Op: "query", Err: err}
	}
	defer rows.Close()

	columnNames, err := rows.Columns()
	if err != nil {
		return nil, &PostgresReaderError{Op: "columns", Err: err}
	}

	cols := make([][]table.Value, len(columnNames))
	scanBuffer := make([]interface{}, len(columnNames))
	for i := range scanBuffer {
		scanBuffer[i] = new(interface{})
	}

	for rows.Next() {
		if err := rows.Scan(scanBuffer...); err != nil {
			return nil, &PostgresReaderError{Op: "scan", Err: err}
		}
		for i := range cols {
			cols[i] = append(cols[i], normalizeSQLValue(*(scanBuffer[i].(*interface{}))))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &PostgresReaderError{Op: "read", Err: err}
	}

	tbl := table.New()
	for i, name := range columnNames {
		if err := tbl.AddColumn(name, cols[i]); err != nil {
			return nil, &PostgresReaderError{Op: "build_table", Err: err}
		}
	}
	return tbl, nil
}

// Close implements the wrangler.TableSource interface.
func (p *PostgresReader) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// normalizeSQLValue maps driver values onto table cell types.
func normalizeSQLValue(v interface{}) table.Value {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return val
	}
}
