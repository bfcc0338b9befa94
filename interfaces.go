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

package wrangler

import (
	"context"

	"github.com/nphyo/wrangler/table"
)

// Package wrangler glues loaders, per-market rule sequences and exporters
// into one cleaning run.
//
// This file contains the boundary interfaces. Sources hand a whole table
// in; sinks take the finished table out. A table never persists beyond one
// run and no two runs share a table.

// TableSource loads one raw table for a cleaning run, e.g. from a CSV
// file, an S3 object or a database query.
type TableSource interface {
	// ReadAll loads and returns the complete table.
	ReadAll(ctx context.Context) (*table.Table, error)
	// Close releases any resources held by the source.
	Close() error
}

// TableSink receives the cleaned table at the end of a run, e.g. a CSV
// exporter or a database writer.
type TableSink interface {
	// WriteAll persists the complete table.
	WriteAll(ctx context.Context, tbl *table.Table) error
	// Close flushes and releases any resources held by the sink.
	Close() error
}
