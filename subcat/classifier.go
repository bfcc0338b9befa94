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
	"fmt"

	"github.com/jbrukh/bayesian"

	"github.com/nphyo/wrangler/table"
)

// ClassifierError wraps structured error information for classifier
// operations.
type ClassifierError struct {
	Op  string
	Err error
}

func (e *ClassifierError) Error() string {
	return fmt.Sprintf("subcat classifier %s: %v", e.Op, e.Err)
}

func (e *ClassifierError) Unwrap() error {
	return e.Err
}

// Classifier predicts subcategory names from feature tokens. The model is
// a multinomial naive bayes over the tokenized feature columns; the
// name-to-id reference map is rebuilt from the mapped table on every run,
// so a saved model stays usable as ids drift.
type Classifier struct {
	model    *bayesian.Classifier
	nameToID map[string]string
}

// classesAndIDs collects the distinct subcategory names of a mapped table
// and the id each name maps to.
func classesAndIDs(mapped *table.Table) ([]bayesian.Class, map[string]string, error) {
	names, err := mapped.Column(TargetNameColumn)
	if err != nil {
		return nil, nil, err
	}
	ids, err := mapped.Column(TargetIDColumn)
	if err != nil {
		return nil, nil, err
	}

	nameToID := make(map[string]string)
	var classes []bayesian.Class
	for i, v := range names {
		name := table.CellString(v)
		if name == "" {
			continue
		}
		if _, seen := nameToID[name]; !seen {
			nameToID[name] = table.CellString(ids[i])
			classes = append(classes, bayesian.Class(name))
		}
	}
	if len(classes) < 2 {
		return nil, nil, fmt.Errorf("need at least 2 distinct subcategories to train, found %d", len(classes))
	}
	return classes, nameToID, nil
}

// Train fits a classifier on the mapped table: one document per row,
// labeled with the row's subcategory name.
func Train(mapped *table.Table) (*Classifier, error) {
	classes, nameToID, err := classesAndIDs(mapped)
	if err != nil {
		return nil, &ClassifierError{Op: "train", Err: err}
	}

	model := bayesian.NewClassifier(classes...)
	names, err := mapped.Column(TargetNameColumn)
	if err != nil {
		return nil, &ClassifierError{Op: "train", Err: err}
	}
	for row := 0; row < mapped.NumRows(); row++ {
		name := table.CellString(names[row])
		if name == "" {
			continue
		}
		tokens := FeatureTokens(mapped, row)
		if len(tokens) == 0 {
			continue
		}
		model.Learn(tokens, bayesian.Class(name))
	}

	return &Classifier{model: model, nameToID: nameToID}, nil
}

// Load reads a previously saved model and rebuilds the name-to-id
// reference map from the current mapped table.
func Load(path string, mapped *table.Table) (*Classifier, error) {
	model, err := bayesian.NewClassifierFromFile(path)
	if err != nil {
		return nil, &ClassifierError{Op: "load", Err: err}
	}
	_, nameToID, err := classesAndIDs(mapped)
	if err != nil {
		return nil, &ClassifierError{Op: "load", Err: err}
	}
	return &Classifier{model: model, nameToID: nameToID}, nil
}

// Save writes the trained model to a file for reuse by later runs.
func (c *Classifier) Save(path string) error {
	if err := c.model.WriteToFile(path); err != nil {
		return &ClassifierError{Op: "save", Err: err}
	}
	return nil
}

// Predict returns the most likely subcategory name and its id for a
// document of feature tokens.
func (c *Classifier) Predict(tokens []string) (name, id string) {
	_, idx, _ := c.model.LogScores(tokens)
	name = string(c.model.Classes[idx])
	return name, c.nameToID[name]
}
