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
	"regexp"
	"strings"

	"github.com/nphyo/wrangler/table"
)

// Package subcat guesses a product's subcategory from free-text
// advertiser, brand and product fields using a naive bayes classifier.
//
// The feature text for a row is the concatenation of the tokenized GM_*
// name columns, the same recipe the mapping operators use when they map
// products by hand.

// Column names in the master product mapping table.
const (
	TargetNameColumn = "CP_SUBCATEGORY_NAME"
	TargetIDColumn   = "CP_SUBCATEGORY_ID"
)

// FeatureColumns are the free-text columns the classifier learns from.
var FeatureColumns = []string{
	"GM_ADVERTISER_NAME",
	"GM_SECTOR_NAME",
	"GM_SUBSECTOR_NAME",
	"GM_CATEGORY_NAME",
	"GM_BRAND_NAME",
	"GM_PRODUCT_NAME",
}

// RawColumns are the columns carried over from the unmapped rows into the
// mapping output, in output order.
var RawColumns = []string{
	"MAPPING_PROCESS_TYPE",
	"GM_GLOBAL_PRODUCT_ID",
	"GM_COUNTRY_ID",
	"GM_COUNTRY_NAME",
	"GM_ADVERTISER_NAME",
	"GM_SECTOR_NAME",
	"GM_SUBSECTOR_NAME",
	"GM_CATEGORY_NAME",
	"GM_BRAND_NAME",
	"GM_PRODUCT_NAME",
	"SOS_PRODUCT",
}

var tokenSeparators = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Tokenize lowercases a value and splits it on every non-alphanumeric
// run, dropping empties.
func Tokenize(s string) []string {
	return strings.Fields(tokenSeparators.ReplaceAllString(strings.ToLower(s), " "))
}

// FeatureTokens builds the classifier document for one table row by
// tokenizing each feature column's cell and concatenating the tokens.
// Columns missing from the table contribute nothing.
func FeatureTokens(tbl *table.Table, row int) []string {
	var tokens []string
	for _, colName := range FeatureColumns {
		if !tbl.HasColumn(colName) {
			continue
		}
		v, err := tbl.At(colName, row)
		if err != nil {
			continue
		}
		tokens = append(tokens, Tokenize(table.CellString(v))...)
	}
	return tokens
}
