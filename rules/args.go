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

// args.go - positional-argument decoding for configured rules
//
// Market configuration is YAML, so arguments arrive as interface{} values:
// strings, ints, floats, []interface{} lists and map[string]interface{}
// mappings. Mapping keys are always textual, a limitation of the
// serialization format that the value-mapping rules document.
package rules

import "fmt"

func argAt(op string, args []interface{}, idx int) (interface{}, error) {
	if idx >= len(args) {
		return nil, &InputTypeError{
			Op:     op,
			Reason: fmt.Sprintf("argument %d is required but only %d given", idx+1, len(args)),
		}
	}
	return args[idx], nil
}

func argString(op string, args []interface{}, idx int) (string, error) {
	raw, err := argAt(op, args, idx)
	if err != nil {
		return "", err
	}
	s, ok := raw.(string)
	if !ok {
		return "", &InputTypeError{
			Op:     op,
			Reason: fmt.Sprintf("argument %d must be a string, got %T", idx+1, raw),
		}
	}
	return s, nil
}

func argInt(op string, args []interface{}, idx int) (int, error) {
	raw, err := argAt(op, args, idx)
	if err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return 0, &InputTypeError{
		Op:     op,
		Reason: fmt.Sprintf("argument %d must be an integer, got %T", idx+1, raw),
	}
}

func argFloat(op string, args []interface{}, idx int) (float64, error) {
	raw, err := argAt(op, args, idx)
	if err != nil {
		return 0, err
	}
	if f, ok := toFloat64(raw); ok {
		return f, nil
	}
	return 0, &InputTypeError{
		Op:     op,
		Reason: fmt.Sprintf("argument %d must be numeric, got %T", idx+1, raw),
	}
}

func argStringList(op string, args []interface{}, idx int) ([]string, error) {
	raw, err := argAt(op, args, idx)
	if err != nil {
		return nil, err
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &InputTypeError{
					Op:     op,
					Reason: fmt.Sprintf("argument %d must be a list of strings, element %d is %T", idx+1, i, item),
				}
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, &InputTypeError{
		Op:     op,
		Reason: fmt.Sprintf("argument %d must be a list of strings, got %T", idx+1, raw),
	}
}

func argIntList(op string, args []interface{}, idx int) ([]int, error) {
	raw, err := argAt(op, args, idx)
	if err != nil {
		return nil, err
	}
	switch v := raw.(type) {
	case []int:
		return v, nil
	case []interface{}:
		out := make([]int, len(v))
		for i, item := range v {
			n, ok := item.(int)
			if !ok {
				return nil, &InputTypeError{
					Op:     op,
					Reason: fmt.Sprintf("argument %d must be a list of integers, element %d is %T", idx+1, i, item),
				}
			}
			out[i] = n
		}
		return out, nil
	}
	return nil, &InputTypeError{
		Op:     op,
		Reason: fmt.Sprintf("argument %d must be a list of integers, got %T", idx+1, raw),
	}
}

func toStringMap(op string, idx int, raw interface{}) (map[string]string, error) {
	switch v := raw.(type) {
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		out := make(map[string]string, len(v))
		for key, val := range v {
			s, ok := val.(string)
			if !ok {
				return nil, &InputTypeError{
					Op:     op,
					Reason: fmt.Sprintf("argument %d must map strings to strings, value for %q is %T", idx+1, key, val),
				}
			}
			out[key] = s
		}
		return out, nil
	}
	return nil, &InputTypeError{
		Op:     op,
		Reason: fmt.Sprintf("argument %d must be a string-to-string mapping, got %T", idx+1, raw),
	}
}

func argStringMap(op string, args []interface{}, idx int) (map[string]string, error) {
	raw, err := argAt(op, args, idx)
	if err != nil {
		return nil, err
	}
	return toStringMap(op, idx, raw)
}

func argStringMapList(op string, args []interface{}, idx int) ([]map[string]string, error) {
	raw, err := argAt(op, args, idx)
	if err != nil {
		return nil, err
	}
	switch v := raw.(type) {
	case []map[string]string:
		return v, nil
	case []interface{}:
		out := make([]map[string]string, len(v))
		for i, item := range v {
			m, err := toStringMap(op, idx, item)
			if err != nil {
				return nil, err
			}
			out[i] = m
		}
		return out, nil
	}
	return nil, &InputTypeError{
		Op:     op,
		Reason: fmt.Sprintf("argument %d must be a list of string-to-string mappings, got %T", idx+1, raw),
	}
}
