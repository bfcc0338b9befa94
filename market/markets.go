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

// markets.go - builtin market configurations
package market

import "github.com/nphyo/wrangler/rules"

// irelandCategoryOverrides holds Ireland-specific category mappings that
// cannot be shared with other EU markets. Currently none are needed; the
// English baseline covers Irish source files.
var irelandCategoryOverrides = map[string]string{}

// lithuaniaCategoryOverrides maps Lithuanian-language category names from
// local vendor files onto the canonical English categories.
var lithuaniaCategoryOverrides = map[string]string{
	"Burnos priežiūra":  "Oral Care",
	"Asmens higiena":    "Personal Care",
	"Namų priežiūra":    "Home Care",
	"Gyvūnų maistas":    "Pet Nutrition",
	"Kita":              "Other",
}

// Ireland returns the builtin cleaning configuration for the Ireland
// market (EU division).
func Ireland() *Config {
	cfg := New("ireland", irelandCategoryOverrides, nil)
	cfg.Rules = euRuleSequence(cfg.CategoryMappings)
	return cfg
}

// Lithuania returns the builtin cleaning configuration for the Lithuania
// market (EU division).
func Lithuania() *Config {
	cfg := New("lithuania", lithuaniaCategoryOverrides, nil)
	cfg.Rules = euRuleSequence(cfg.CategoryMappings)
	return cfg
}

// euRuleSequence is the shared cleaning sequence for EU vendor files. The
// market's effective category mapping is the only per-market argument;
// everything else is common to the division.
func euRuleSequence(categories map[string]string) []RuleSpec {
	return []RuleSpec{
		{Name: rules.OpDropUnnamedColumns},
		{Name: rules.OpCheckDuplicatesInColumns, Args: []interface{}{
			[]string{"Category", "Media Type"},
		}},
		{Name: rules.OpUpdateValuesInColumn, Args: []interface{}{
			"Category", categories,
		}},
		{Name: rules.OpCapitalizeWordsInColumns, Args: []interface{}{
			[]string{"Category", "Media Type"},
		}},
		{Name: rules.OpAssertNoMissingValues, Args: []interface{}{
			[]string{"Category", "Advertiser", "Local Spend"},
		}},
		{Name: rules.OpAssertMinimum, Args: []interface{}{
			0, []string{"Local Spend"},
		}},
	}
}

// Builtin looks up a builtin market configuration by name. The second
// return value is false for unknown markets.
func Builtin(name string) (*Config, bool) {
	switch name {
	case "ireland":
		return Ireland(), true
	case "lithuania":
		return Lithuania(), true
	default:
		return nil, false
	}
}
