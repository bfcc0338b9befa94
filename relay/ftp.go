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

// ftp.go - destination-side FTP client
package relay

import (
	"context"
	"os"
	"time"

	"github.com/jlaffaye/ftp"
)

// ftpConn wraps a logged-in FTP connection positioned in the destination
// directory.
type ftpConn struct {
	conn *ftp.ServerConn
}

// dialFTP connects, logs in and changes into the destination directory.
func dialFTP(ctx context.Context, ep Endpoint) (*ftpConn, error) {
	conn, err := ftp.Dial(ep.Addr(),
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(30*time.Second),
	)
	if err != nil {
		return nil, err
	}
	if err := conn.Login(ep.User, ep.Password); err != nil {
		conn.Quit()
		return nil, err
	}
	if ep.Dir != "" {
		if err := conn.ChangeDir(ep.Dir); err != nil {
			conn.Quit()
			return nil, err
		}
	}
	return &ftpConn{conn: conn}, nil
}

// Upload stores a local file under the given remote name in the current
// directory.
func (c *ftpConn) Upload(localPath, remoteName string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.conn.Stor(remoteName, f)
}

// Close logs out and closes the control connection.
func (c *ftpConn) Close() error {
	return c.conn.Quit()
}
