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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Package relay moves new vendor files from an SFTP drop location to a
// destination FTP server.
//
// Transferred files are spooled in a local folder; a remote file whose
// name is already present in the spool is considered transferred and is
// skipped on later runs. Clearing the spool folder makes the relay
// re-transfer everything.

// RelayError wraps structured error information for relay operations.
type RelayError struct {
	Op  string
	Err error
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("relay %s: %v", e.Op, e.Err)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// Endpoint identifies one remote file location.
type Endpoint struct {
	Host     string
	Port     int
	User     string
	Password string
	Dir      string
}

// Addr returns the host:port dial address.
func (e Endpoint) Addr() string {
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

// Config holds the relay's source, destination and local spool settings.
type Config struct {
	Source   Endpoint // SFTP server the vendor drops files on
	Dest     Endpoint // FTP server the files are forwarded to
	SpoolDir string   // Local folder that doubles as transfer history
	Suffix   string   // Only file names with this suffix are relayed, e.g. ".zip"
}

// Relay copies new files from the source SFTP location to the destination
// FTP location, one linear pass per Run call.
type Relay struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a relay. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{cfg: cfg, logger: logger}
}

// Run performs one relay pass: list remote candidates, skip the ones
// already spooled locally, download the rest, then upload them to the
// destination. Returns the transferred file names sorted.
func (r *Relay) Run(ctx context.Context) ([]string, error) {
	if err := os.MkdirAll(r.cfg.SpoolDir, 0o755); err != nil {
		return nil, &RelayError{Op: "spool_dir", Err: err}
	}

	spooled, err := listLocalFiles(r.cfg.SpoolDir)
	if err != nil {
		return nil, &RelayError{Op: "list_spool", Err: err}
	}

	src, err := dialSFTP(r.cfg.Source)
	if err != nil {
		return nil, &RelayError{Op: "connect_source", Err: err}
	}
	defer src.Close()

	remote, err := src.List(r.cfg.Source.Dir)
	if err != nil {
		return nil, &RelayError{Op: "list_source", Err: err}
	}

	pending := pendingFiles(remote, spooled, r.cfg.Suffix)
	if len(pending) == 0 {
		r.logger.Info("no new files to transfer",
			zap.String("source", r.cfg.Source.Addr()),
			zap.String("dest", r.cfg.Dest.Addr()),
		)
		return nil, nil
	}

	for _, name := range pending {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		r.logger.Info("downloading file from sftp", zap.String("file", name))
		remotePath := filepath.ToSlash(filepath.Join(r.cfg.Source.Dir, name))
		localPath := filepath.Join(r.cfg.SpoolDir, name)
		if err := src.Download(remotePath, localPath); err != nil {
			return nil, &RelayError{Op: "download", Err: fmt.Errorf("%s: %w", name, err)}
		}
	}
	r.logger.Info("all files downloaded, commencing upload",
		zap.Int("files", len(pending)),
	)

	dst, err := dialFTP(ctx, r.cfg.Dest)
	if err != nil {
		return nil, &RelayError{Op: "connect_dest", Err: err}
	}
	defer dst.Close()

	for _, name := range pending {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		r.logger.Info("uploading file to ftp", zap.String("file", name))
		localPath := filepath.Join(r.cfg.SpoolDir, name)
		if err := dst.Upload(localPath, name); err != nil {
			return nil, &RelayError{Op: "upload", Err: fmt.Errorf("%s: %w", name, err)}
		}
	}

	r.logger.Info("transfer finished",
		zap.Strings("files", pending),
		zap.String("source", r.cfg.Source.Addr()),
		zap.String("dest", r.cfg.Dest.Addr()),
	)
	return pending, nil
}

// pendingFiles selects the remote names with the wanted suffix that are
// not yet in the spooled set, sorted for a deterministic transfer order.
func pendingFiles(remote []string, spooled map[string]bool, suffix string) []string {
	var out []string
	for _, name := range remote {
		if suffix != "" && !strings.HasSuffix(name, suffix) {
			continue
		}
		if spooled[name] {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// listLocalFiles returns the plain-file names in a directory as a set.
func listLocalFiles(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			out[entry.Name()] = true
		}
	}
	return out, nil
}
