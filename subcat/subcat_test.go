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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nphyo/wrangler/table"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Colgate Total Whitening", []string{"colgate", "total", "whitening"}},
		{"AJAX - Spray & Wipe", []string{"ajax", "spray", "wipe"}},
		{"Hill's Science-Diet 2kg", []string{"hill", "s", "science", "diet", "2kg"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Tokenize(tc.in), "input %q", tc.in)
	}

	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  - & "))
}

// mappedTrainingTable builds a small, cleanly separable training set: tooth
// products labeled Toothpaste, pet food labeled Dog Food.
func mappedTrainingTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New()
	require.NoError(t, tbl.AddColumn("GM_ADVERTISER_NAME", []table.Value{
		"Colgate", "Colgate", "Hills", "Hills",
	}))
	require.NoError(t, tbl.AddColumn("GM_BRAND_NAME", []table.Value{
		"Colgate Total", "Colgate Max White", "Science Diet", "Science Plan",
	}))
	require.NoError(t, tbl.AddColumn("GM_PRODUCT_NAME", []table.Value{
		"Whitening Toothpaste", "Fresh Mint Toothpaste", "Adult Dog Chicken", "Puppy Dog Lamb",
	}))
	require.NoError(t, tbl.AddColumn(TargetNameColumn, []table.Value{
		"Toothpaste", "Toothpaste", "Dog Food", "Dog Food",
	}))
	require.NoError(t, tbl.AddColumn(TargetIDColumn, []table.Value{
		"101", "101", "202", "202",
	}))
	return tbl
}

func TestFeatureTokens(t *testing.T) {
	tbl := mappedTrainingTable(t)

	tokens := FeatureTokens(tbl, 0)
	assert.Contains(t, tokens, "colgate")
	assert.Contains(t, tokens, "whitening")
	assert.Contains(t, tokens, "toothpaste")
	// Label columns never leak into the features.
	assert.NotContains(t, tokens, "101")
}

func TestTrainAndPredict(t *testing.T) {
	clf, err := Train(mappedTrainingTable(t))
	require.NoError(t, err)

	name, id := clf.Predict([]string{"colgate", "toothpaste", "mint"})
	assert.Equal(t, "Toothpaste", name)
	assert.Equal(t, "101", id)

	name, id = clf.Predict([]string{"science", "diet", "dog", "chicken"})
	assert.Equal(t, "Dog Food", name)
	assert.Equal(t, "202", id)
}

func TestTrain_RequiresTwoClasses(t *testing.T) {
	tbl := table.New()
	require.NoError(t, tbl.AddColumn("GM_PRODUCT_NAME", []table.Value{"Toothpaste A", "Toothpaste B"}))
	require.NoError(t, tbl.AddColumn(TargetNameColumn, []table.Value{"Toothpaste", "Toothpaste"}))
	require.NoError(t, tbl.AddColumn(TargetIDColumn, []table.Value{"101", "101"}))

	_, err := Train(tbl)
	var clfErr *ClassifierError
	require.ErrorAs(t, err, &clfErr)
	assert.Equal(t, "train", clfErr.Op)
}

func TestSaveAndLoad(t *testing.T) {
	mapped := mappedTrainingTable(t)
	clf, err := Train(mapped)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, clf.Save(path))

	loaded, err := Load(path, mapped)
	require.NoError(t, err)

	name, id := loaded.Predict([]string{"colgate", "toothpaste"})
	assert.Equal(t, "Toothpaste", name)
	assert.Equal(t, "101", id)
}

func TestMapSubcategories(t *testing.T) {
	clf, err := Train(mappedTrainingTable(t))
	require.NoError(t, err)

	unmapped := table.New()
	require.NoError(t, unmapped.AddColumn("GM_COUNTRY_NAME", []table.Value{"Ireland", "Ireland"}))
	require.NoError(t, unmapped.AddColumn("GM_ADVERTISER_NAME", []table.Value{"Colgate", "Hills"}))
	require.NoError(t, unmapped.AddColumn("GM_PRODUCT_NAME", []table.Value{
		"Triple Mint Toothpaste", "Senior Dog Beef",
	}))

	out, err := MapSubcategories(context.Background(), unmapped, clf, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, out.NumRows())
	assert.True(t, out.HasColumn(TargetNameColumn))
	assert.True(t, out.HasColumn(TargetIDColumn))

	names, err := out.Column(TargetNameColumn)
	require.NoError(t, err)
	assert.Equal(t, []table.Value{"Toothpaste", "Dog Food"}, names)

	ids, err := out.Column(TargetIDColumn)
	require.NoError(t, err)
	assert.Equal(t, []table.Value{"101", "202"}, ids)

	// Raw columns present in the input carry over.
	country, err := out.Column("GM_COUNTRY_NAME")
	require.NoError(t, err)
	assert.Equal(t, []table.Value{"Ireland", "Ireland"}, country)
}
