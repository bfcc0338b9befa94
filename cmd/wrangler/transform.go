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
	"strings"

	"github.com/spf13/cobra"

	"github.com/nphyo/wrangler"
	"github.com/nphyo/wrangler/market"
	"github.com/nphyo/wrangler/readers"
	"github.com/nphyo/wrangler/writers"
)

var (
	transformMarket string
	transformConfig string
	transformInput  string
	transformOutput string
	transformTSV    bool
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Clean a raw market table with the market's rule sequence",
	Long: `Loads a raw CSV table, applies the market's configured cleaning rules
in order, and writes the cleaned table. The market comes either from the
builtin set (--market ireland) or from a YAML config file (--config).`,
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().StringVarP(&transformMarket, "market", "m", "", "builtin market name, e.g. ireland")
	transformCmd.Flags().StringVarP(&transformConfig, "config", "c", "", "path to a market config YAML file")
	transformCmd.Flags().StringVarP(&transformInput, "input", "i", "", "input CSV file (required)")
	transformCmd.Flags().StringVarP(&transformOutput, "output", "o", "", "output CSV file (required)")
	transformCmd.Flags().BoolVarP(&transformTSV, "tsv", "t", false, "write tab-separated output")
	_ = transformCmd.MarkFlagRequired("input")
	_ = transformCmd.MarkFlagRequired("output")
}

func resolveMarket() (*market.Config, error) {
	switch {
	case transformConfig != "":
		return market.Load(transformConfig)
	case transformMarket != "":
		cfg, ok := market.Builtin(strings.ToLower(transformMarket))
		if !ok {
			return nil, fmt.Errorf("unknown builtin market %q", transformMarket)
		}
		return cfg, nil
	default:
		return nil, fmt.Errorf("either --market or --config is required")
	}
}

func runTransform(cmd *cobra.Command, args []string) error {
	cfg, err := resolveMarket()
	if err != nil {
		return err
	}

	in, err := os.Open(transformInput)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	out, err := os.Create(transformOutput)
	if err != nil {
		in.Close()
		return fmt.Errorf("create output: %w", err)
	}

	var writerOpts []writers.WriterOptionCSV
	if transformTSV {
		writerOpts = append(writerOpts, writers.WithComma('\t'))
	}

	runner, err := wrangler.NewRunner().
		From(readers.NewCSVReader(in)).
		ForMarket(cfg).
		WithLogger(logger).
		To(writers.NewCSVWriter(out, writerOpts...)).
		Build()
	if err != nil {
		in.Close()
		out.Close()
		return err
	}
	return runner.Execute(cmd.Context())
}
