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

package wrangler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nphyo/wrangler/market"
	"github.com/nphyo/wrangler/rules"
	"github.com/nphyo/wrangler/table"
)

type mockSource struct {
	tbl     *table.Table
	readErr error
	closed  bool
}

func (m *mockSource) ReadAll(ctx context.Context) (*table.Table, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.tbl, nil
}

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

type mockSink struct {
	written *table.Table
	closed  bool
}

func (m *mockSink) WriteAll(ctx context.Context, tbl *table.Table) error {
	m.written = tbl
	return nil
}

func (m *mockSink) Close() error {
	m.closed = true
	return nil
}

func rawMarketingTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New()
	require.NoError(t, tbl.AddColumn("Category", []table.Value{"oral care", "home care"}))
	require.NoError(t, tbl.AddColumn("Local Spend", []table.Value{100, 250}))
	require.NoError(t, tbl.AddColumn("Unnamed: 2", []table.Value{nil, nil}))
	return tbl
}

func testMarket(specs ...market.RuleSpec) *market.Config {
	return &market.Config{Name: "testland", Rules: specs}
}

func TestRunnerBuilder_Validation(t *testing.T) {
	src := &mockSource{tbl: table.New()}
	sink := &mockSink{}
	cfg := testMarket()

	_, err := NewRunner().ForMarket(cfg).To(sink).Build()
	assert.Error(t, err, "missing source")

	_, err = NewRunner().From(src).ForMarket(cfg).Build()
	assert.Error(t, err, "missing sink")

	_, err = NewRunner().From(src).To(sink).Build()
	assert.Error(t, err, "missing market")

	_, err = NewRunner().From(src).ForMarket(cfg).To(sink).Build()
	assert.NoError(t, err)
}

func TestRunner_Execute(t *testing.T) {
	src := &mockSource{tbl: rawMarketingTable(t)}
	sink := &mockSink{}
	cfg := testMarket(
		market.RuleSpec{Name: rules.OpDropUnnamedColumns},
		market.RuleSpec{Name: rules.OpCapitalizeWordsInColumns, Args: []interface{}{
			[]string{"Category"},
		}},
		market.RuleSpec{Name: rules.OpAssertMinimum, Args: []interface{}{
			0, []string{"Local Spend"},
		}},
	)

	runner, err := NewRunner().From(src).ForMarket(cfg).To(sink).Build()
	require.NoError(t, err)
	require.NoError(t, runner.Execute(context.Background()))

	require.NotNil(t, sink.written)
	assert.Equal(t, []string{"Category", "Local Spend"}, sink.written.Columns())

	col, err := sink.written.Column("Category")
	require.NoError(t, err)
	assert.Equal(t, []table.Value{"Oral Care", "Home Care"}, col)

	assert.True(t, src.closed)
	assert.True(t, sink.closed)
}

func TestRunner_ExecuteFailsFast(t *testing.T) {
	src := &mockSource{tbl: rawMarketingTable(t)}
	sink := &mockSink{}
	cfg := testMarket(
		market.RuleSpec{Name: rules.OpAssertColumnCount, Args: []interface{}{99}},
		market.RuleSpec{Name: rules.OpDropUnnamedColumns},
	)

	runner, err := NewRunner().From(src).ForMarket(cfg).To(sink).Build()
	require.NoError(t, err)

	err = runner.Execute(context.Background())
	require.Error(t, err)

	var countErr *rules.ColumnCountError
	assert.ErrorAs(t, err, &countErr)
	assert.Nil(t, sink.written, "nothing may reach the sink after a failed rule")
	assert.True(t, src.closed)
	assert.True(t, sink.closed)
}

func TestRunner_ExecuteUnknownRule(t *testing.T) {
	src := &mockSource{tbl: rawMarketingTable(t)}
	sink := &mockSink{}
	cfg := testMarket(market.RuleSpec{Name: "no_such_rule"})

	runner, err := NewRunner().From(src).ForMarket(cfg).To(sink).Build()
	require.NoError(t, err)

	err = runner.Execute(context.Background())
	var unknownErr *rules.UnknownRuleError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestRunner_ExecuteSourceError(t *testing.T) {
	src := &mockSource{readErr: errors.New("connection refused")}
	sink := &mockSink{}

	runner, err := NewRunner().From(src).ForMarket(testMarket()).To(sink).Build()
	require.NoError(t, err)

	err = runner.Execute(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestRunner_ExecuteCancelledContext(t *testing.T) {
	src := &mockSource{tbl: rawMarketingTable(t)}
	sink := &mockSink{}
	cfg := testMarket(market.RuleSpec{Name: rules.OpDropUnnamedColumns})

	runner, err := NewRunner().From(src).ForMarket(cfg).To(sink).Build()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = runner.Execute(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_ContractViolationSurvivesDispatch(t *testing.T) {
	registry := rules.NewRegistry()
	require.NoError(t, registry.Register("defective", func(args []interface{}) (rules.Rule, error) {
		return rules.RuleFunc(func(ctx context.Context, tbl *table.Table) (*table.Table, error) {
			return nil, nil
		}), nil
	}))

	src := &mockSource{tbl: rawMarketingTable(t)}
	sink := &mockSink{}
	cfg := testMarket(market.RuleSpec{Name: "defective"})

	runner, err := NewRunner().From(src).ForMarket(cfg).WithRegistry(registry).To(sink).Build()
	require.NoError(t, err)

	err = runner.Execute(context.Background())
	var contractErr *rules.ContractError
	assert.ErrorAs(t, err, &contractErr)
}
