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

// sftp.go - source-side SFTP client
package relay

import (
	"io"
	"os"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// sftpConn wraps an SSH connection and the SFTP subsystem on top of it.
type sftpConn struct {
	ssh  *ssh.Client
	sftp *sftp.Client
}

// dialSFTP opens an SFTP session with password auth. Vendor drop servers
// rotate host keys without notice, so host-key verification is disabled,
// matching how the transfer was run historically.
func dialSFTP(ep Endpoint) (*sftpConn, error) {
	sshCfg := &ssh.ClientConfig{
		User:            ep.User,
		Auth:            []ssh.AuthMethod{ssh.Password(ep.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}
	sshClient, err := ssh.Dial("tcp", ep.Addr(), sshCfg)
	if err != nil {
		return nil, err
	}
	client, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, err
	}
	return &sftpConn{ssh: sshClient, sftp: client}, nil
}

// List returns the file names (not directories) in a remote directory.
func (c *sftpConn) List(dir string) ([]string, error) {
	entries, err := c.sftp.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, entry := range entries {
		if !entry.IsDir() {
			out = append(out, entry.Name())
		}
	}
	return out, nil
}

// Download copies a remote file to a local path.
func (c *sftpConn) Download(remotePath, localPath string) error {
	src, err := c.sftp.Open(remotePath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Sync()
}

// Close tears down the SFTP session and the SSH connection under it.
func (c *sftpConn) Close() error {
	if err := c.sftp.Close(); err != nil {
		c.ssh.Close()
		return err
	}
	return c.ssh.Close()
}
