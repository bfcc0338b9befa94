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

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nphyo/wrangler/relay"
)

var (
	relaySpoolDir string
	relaySuffix   string
)

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Forward new vendor files from the SFTP drop to the FTP ingest server",
	Long: `Lists the vendor's SFTP drop directory, downloads files not yet seen in
the local spool folder and uploads them to the destination FTP server.

Credentials come from the environment (or a .env file):

  RELAY_SFTP_HOST, RELAY_SFTP_PORT, RELAY_SFTP_USER, RELAY_SFTP_PASSWORD, RELAY_SFTP_DIR
  RELAY_FTP_HOST, RELAY_FTP_PORT, RELAY_FTP_USER, RELAY_FTP_PASSWORD, RELAY_FTP_DIR`,
	RunE: runRelay,
}

func init() {
	relayCmd.Flags().StringVar(&relaySpoolDir, "spool-dir", "spool", "local folder holding already-transferred files")
	relayCmd.Flags().StringVar(&relaySuffix, "suffix", ".zip", "only relay files with this suffix")
}

// endpointFromEnv reads one endpoint's settings from RELAY_<prefix>_* vars.
func endpointFromEnv(prefix string, defaultPort int) (relay.Endpoint, error) {
	ep := relay.Endpoint{
		Host:     os.Getenv("RELAY_" + prefix + "_HOST"),
		User:     os.Getenv("RELAY_" + prefix + "_USER"),
		Password: os.Getenv("RELAY_" + prefix + "_PASSWORD"),
		Dir:      os.Getenv("RELAY_" + prefix + "_DIR"),
		Port:     defaultPort,
	}
	if ep.Host == "" {
		return ep, fmt.Errorf("RELAY_%s_HOST is not set", prefix)
	}
	if raw := os.Getenv("RELAY_" + prefix + "_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return ep, fmt.Errorf("RELAY_%s_PORT: %w", prefix, err)
		}
		ep.Port = port
	}
	return ep, nil
}

func runRelay(cmd *cobra.Command, args []string) error {
	source, err := endpointFromEnv("SFTP", 22)
	if err != nil {
		return err
	}
	dest, err := endpointFromEnv("FTP", 21)
	if err != nil {
		return err
	}

	r := relay.New(relay.Config{
		Source:   source,
		Dest:     dest,
		SpoolDir: relaySpoolDir,
		Suffix:   relaySuffix,
	}, logger)

	transferred, err := r.Run(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "transferred %d file(s)\n", len(transferred))
	return nil
}
