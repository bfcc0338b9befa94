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
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nphyo/wrangler/readers"
	"github.com/nphyo/wrangler/subcat"
	"github.com/nphyo/wrangler/table"
	"github.com/nphyo/wrangler/writers"
)

var (
	subcatCountry string
	subcatModel   string
	subcatOutDir  string
	subcatTSV     bool
)

var mapSubcategoriesCmd = &cobra.Command{
	Use:   "map-subcategories",
	Short: "Suggest subcategories for a country's unmapped products",
	Long: `Trains a naive Bayes classifier on every product an operator has already
mapped to a subcategory, then predicts a subcategory for each of the given
country's still-unmapped products. Suggestions are written to a timestamped
file for operator review; nothing is written back to the database.

The database connection string comes from WRANGLER_DATABASE_URL (or a .env
file). Pass --model to reuse a previously saved classifier instead of
retraining; the model file is (re)written after training.`,
	RunE: runMapSubcategories,
}

func init() {
	mapSubcategoriesCmd.Flags().StringVar(&subcatCountry, "country", "", "country code of the unmapped rows, e.g. IE (required)")
	mapSubcategoriesCmd.Flags().StringVar(&subcatModel, "model", "", "path of a saved classifier to load or save")
	mapSubcategoriesCmd.Flags().StringVar(&subcatOutDir, "out-dir", ".", "directory the suggestions file is written to")
	mapSubcategoriesCmd.Flags().BoolVar(&subcatTSV, "tsv", false, "write tab-separated output")
	_ = mapSubcategoriesCmd.MarkFlagRequired("country")
}

func runMapSubcategories(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dsn := os.Getenv("WRANGLER_DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("WRANGLER_DATABASE_URL is not set")
	}

	mappedReader, err := readers.NewPostgresReader(
		readers.WithPostgresDSN(dsn),
		readers.WithPostgresQuery(subcat.MappedSubcategoriesQuery),
	)
	if err != nil {
		return err
	}
	mapped, err := mappedReader.ReadAll(ctx)
	mappedReader.Close()
	if err != nil {
		return fmt.Errorf("load mapped products: %w", err)
	}

	clf, err := loadOrTrain(mapped)
	if err != nil {
		return err
	}

	unmappedReader, err := readers.NewPostgresReader(
		readers.WithPostgresDSN(dsn),
		readers.WithPostgresQuery(subcat.UnmappedSubcategoriesQuery, subcatCountry),
	)
	if err != nil {
		return err
	}
	unmapped, err := unmappedReader.ReadAll(ctx)
	unmappedReader.Close()
	if err != nil {
		return fmt.Errorf("load unmapped products: %w", err)
	}
	if unmapped.NumRows() == 0 {
		logger.Info("no unmapped products for country", zap.String("country", subcatCountry))
		return nil
	}

	suggested, err := subcat.MapSubcategories(ctx, unmapped, clf, logger)
	if err != nil {
		return err
	}

	outPath := suggestionsPath(subcatOutDir, subcatCountry, subcatTSV, time.Now())
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	var writerOpts []writers.WriterOptionCSV
	if subcatTSV {
		writerOpts = append(writerOpts, writers.WithComma('\t'))
	}
	sink := writers.NewCSVWriter(out, writerOpts...)
	if err := sink.WriteAll(ctx, suggested); err != nil {
		sink.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}

	logger.Info("suggestions written",
		zap.String("file", outPath),
		zap.Int("rows", suggested.NumRows()),
	)
	fmt.Fprintln(cmd.OutOrStdout(), outPath)
	return nil
}

// loadOrTrain reuses the saved model when it exists, otherwise trains from
// the mapped rows and saves the result for the next run.
func loadOrTrain(mapped *table.Table) (*subcat.Classifier, error) {
	if subcatModel != "" {
		if _, err := os.Stat(subcatModel); err == nil {
			logger.Info("loading saved classifier", zap.String("model", subcatModel))
			return subcat.Load(subcatModel, mapped)
		}
	}
	logger.Info("training classifier", zap.Int("mapped_rows", mapped.NumRows()))
	clf, err := subcat.Train(mapped)
	if err != nil {
		return nil, err
	}
	if subcatModel != "" {
		if err := clf.Save(subcatModel); err != nil {
			return nil, err
		}
	}
	return clf, nil
}

// suggestionsPath builds the timestamped output file name, e.g.
// suggested_subcategories_IE_20260830T120000.csv.
func suggestionsPath(dir, country string, tsv bool, now time.Time) string {
	ext := ".csv"
	if tsv {
		ext = ".tsv"
	}
	name := fmt.Sprintf("suggested_subcategories_%s_%s%s", country, now.Format("20060102T150405"), ext)
	return filepath.Join(dir, name)
}
