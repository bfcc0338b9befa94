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

package subcat

import (
	"context"

	"go.uber.org/zap"

	"github.com/nphyo/wrangler/table"
)

// MapSubcategories predicts a subcategory for every row of the unmapped
// table and returns a new output table: the carried-over raw columns plus
// the predicted subcategory name and id. Raw columns absent from the
// unmapped table are carried as empty cells, since country extracts do
// not all share the same shape.
func MapSubcategories(ctx context.Context, unmapped *table.Table, clf *Classifier, logger *zap.Logger) (*table.Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	out := table.New()
	for _, colName := range append(append([]string(nil), RawColumns...), TargetNameColumn, TargetIDColumn) {
		if err := out.AddColumn(colName, nil); err != nil {
			return nil, err
		}
	}

	for row := 0; row < unmapped.NumRows(); row++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		name, id := clf.Predict(FeatureTokens(unmapped, row))

		cells := make([]table.Value, 0, len(RawColumns)+2)
		for _, colName := range RawColumns {
			if unmapped.HasColumn(colName) {
				v, err := unmapped.At(colName, row)
				if err != nil {
					return nil, err
				}
				cells = append(cells, v)
			} else {
				cells = append(cells, "")
			}
		}
		cells = append(cells, name, id)
		if err := out.AppendRow(cells); err != nil {
			return nil, err
		}
	}

	logger.Info("subcategories mapped",
		zap.Int("rows", out.NumRows()),
	)
	return out, nil
}
