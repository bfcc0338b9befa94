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

package relay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingFiles(t *testing.T) {
	remote := []string{"b.zip", "a.zip", "report.txt", "c.zip"}
	spooled := map[string]bool{"b.zip": true}

	pending := pendingFiles(remote, spooled, ".zip")

	// Suffix filtered, already-spooled skipped, sorted.
	assert.Equal(t, []string{"a.zip", "c.zip"}, pending)
}

func TestPendingFiles_NoSuffixFilter(t *testing.T) {
	remote := []string{"b.zip", "report.txt"}

	pending := pendingFiles(remote, nil, "")
	assert.Equal(t, []string{"b.zip", "report.txt"}, pending)
}

func TestPendingFiles_AllSpooled(t *testing.T) {
	remote := []string{"a.zip", "b.zip"}
	spooled := map[string]bool{"a.zip": true, "b.zip": true}

	assert.Empty(t, pendingFiles(remote, spooled, ".zip"))
}

func TestListLocalFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen.zip"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	files, err := listLocalFiles(dir)
	require.NoError(t, err)

	assert.True(t, files["seen.zip"])
	assert.False(t, files["subdir"], "directories are not spooled files")
}

func TestListLocalFiles_MissingDir(t *testing.T) {
	_, err := listLocalFiles("/nonexistent/spool")
	assert.Error(t, err)
}

func TestEndpointAddr(t *testing.T) {
	ep := Endpoint{Host: "files.vendor.example", Port: 2022}
	assert.Equal(t, "files.vendor.example:2022", ep.Addr())
}
