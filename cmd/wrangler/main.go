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

// Package main implements the wrangler CLI: per-market table cleaning,
// vendor file relay and subcategory mapping.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wrangler",
	Short: "Marketing-analytics table cleaning and transfer tooling",
	Long: `wrangler cleans per-market advertising spend tables with configured
rule sequences, relays vendor files between FTP endpoints, and guesses
product subcategories with a text classifier.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Credentials and DSNs come from the environment; .env is optional.
		_ = godotenv.Load()

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(relayCmd)
	rootCmd.AddCommand(mapSubcategoriesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
