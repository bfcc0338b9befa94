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

package market

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Package market supplies the per-market cleaning configuration: an
// ordered rule sequence plus a category value-mapping composed from the
// shared English baseline and market-specific overrides.
//
// A market is a configuration value, not a type. Adding a market means
// supplying a (possibly empty) override map and a rule sequence; nothing
// else changes. Mapping keys are strings because the configuration format
// only supports textual keys: numeric cells cannot be recoded without
// first casting their column to text (the update_int_values_to_strings
// rule exists for exactly that).

// RuleSpec names one configured operation and its positional arguments.
type RuleSpec struct {
	Name string        `yaml:"name"`
	Args []interface{} `yaml:"args"`
}

// Config holds one market's cleaning configuration.
type Config struct {
	// Name identifies the market, e.g. "ireland".
	Name string `yaml:"market"`
	// CategoryMappings is the effective category value-mapping,
	// baseline merged with market overrides.
	CategoryMappings map[string]string `yaml:"category_mappings"`
	// Rules is the ordered cleaning sequence for the market's raw table.
	Rules []RuleSpec `yaml:"rules"`
}

// Merge composes an effective value-mapping from a baseline and a set of
// market overrides. Override entries win on key collision; the inputs are
// not modified.
func Merge(baseline, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(baseline)+len(overrides))
	for k, v := range baseline {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// New builds a market config whose category mapping is the English
// baseline merged with the given overrides.
func New(name string, overrides map[string]string, rules []RuleSpec) *Config {
	return &Config{
		Name:             name,
		CategoryMappings: Merge(EnglishCategoryMappings, overrides),
		Rules:            rules,
	}
}

// Load reads a market config from a YAML file. The file's
// category_mappings are treated as overrides on the English baseline.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("market config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("market config %s: %w", path, err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("market config %s: missing market name", path)
	}
	cfg.CategoryMappings = Merge(EnglishCategoryMappings, cfg.CategoryMappings)
	return &cfg, nil
}
