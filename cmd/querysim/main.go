package main

import (
	"log/slog"

	"github.com/sqlhandbook/querysim/internal/dataset"
	"github.com/sqlhandbook/querysim/internal/logging"
	"github.com/sqlhandbook/querysim/internal/query/params"
	"github.com/sqlhandbook/querysim/internal/session"
	"github.com/sqlhandbook/querysim/internal/simulator"
)

// demoSeed keeps the generated sales table identical across runs so
// the logged walkthrough is reproducible.
const demoSeed = 42

func main() {
	logger, closeFn := logging.Setup("")
	defer closeFn()
	slog.SetDefault(logger)

	slog.Info("starting query simulator walkthrough")

	sess := session.New()
	sim := simulator.New(simulator.WithObserver(simulator.NewLoggingObserver()))

	employees := dataset.Employees()
	sales, err := dataset.GenerateSeeded(dataset.DomainSales, 50, demoSeed)
	if err != nil {
		slog.Error("sample data generation failed", "error", err)
		return
	}

	type demo struct {
		name   string
		topic  params.Topic
		params *params.ParameterSet
	}

	demos := []demo{
		{
			name:  "select columns",
			topic: params.TopicSelect,
			params: &params.ParameterSet{
				Columns: []string{"name", "department", "salary"},
			},
		},
		{
			name:  "filter by department",
			topic: params.TopicWhere,
			params: &params.ParameterSet{
				Filter: &params.Filter{Column: "department", Operator: params.OpEq, Value: "IT"},
			},
		},
		{
			name:  "salary range",
			topic: params.TopicWhere,
			params: &params.ParameterSet{
				Filter: &params.Filter{Column: "salary", Operator: params.OpBetween, Low: int64(65000), High: int64(75000)},
			},
		},
		{
			name:  "multi-level sort",
			topic: params.TopicOrderBy,
			params: &params.ParameterSet{
				Sort: []params.SortKey{
					{Column: "department", Ascending: true},
					{Column: "salary", Ascending: false},
				},
			},
		},
		{
			name:  "pagination",
			topic: params.TopicLimit,
			params: &params.ParameterSet{
				Sort: []params.SortKey{{Column: "id", Ascending: true}},
				Page: &params.Page{Limit: 3, Offset: 3},
			},
		},
		{
			name:  "group by department",
			topic: params.TopicGroupBy,
			params: &params.ParameterSet{
				Grouping: &params.Grouping{
					Keys: []string{"department"},
					Aggregates: []params.AggregateSpec{
						{Func: params.AggCount},
						{Func: params.AggAvg, Column: "salary"},
					},
				},
			},
		},
	}

	for _, d := range demos {
		result := sim.Run(sess.ID.String(), employees, d.topic, d.params)
		logResult(sess, d.name, d.topic, result)
	}

	// Aggregate and window walkthroughs run on the larger sales table.
	salesDemos := []demo{
		{
			name:  "total sales per region",
			topic: params.TopicHaving,
			params: &params.ParameterSet{
				Grouping: &params.Grouping{
					Keys: []string{"region"},
					Aggregates: []params.AggregateSpec{
						{Func: params.AggCount},
						{Func: params.AggSum, Column: "sale_amount", Alias: "total_sales"},
					},
				},
				Having: &params.Filter{Column: "total_sales", Operator: params.OpGt, Value: 1000.0},
			},
		},
		{
			name:  "rank sales by amount per category",
			topic: params.TopicWindow,
			params: &params.ParameterSet{
				Window: &params.Window{
					Func:        params.WinRank,
					PartitionBy: "product_category",
					OrderBy:     []params.SortKey{{Column: "sale_amount", Ascending: false}},
				},
				Page: &params.Page{Limit: 10},
			},
		},
	}

	for _, d := range salesDemos {
		result := sim.Run(sess.ID.String(), sales, d.topic, d.params)
		logResult(sess, d.name, d.topic, result)
	}

	if history := sess.History(); len(history) > 1 {
		sess.AddFavorite("IT department", history[1].Query)
	}

	slog.Info("walkthrough finished",
		"session_id", sess.ID.String(),
		"history_entries", len(sess.History()),
	)
}

// logResult records the interaction in the session and logs its outcome.
func logResult(sess *session.Session, name string, topic params.Topic, result simulator.Result) {
	sess.RecordHistory(session.HistoryEntry{
		Query:     result.Query,
		Topic:     topic,
		Succeeded: !result.Failed(),
	})

	if result.Failed() {
		slog.Warn("simulation failed", "demo", name, "query", result.Query, "error", result.Err)
		return
	}
	slog.Info("simulation",
		"demo", name,
		"query", result.Query,
		"rows", result.Table.Len(),
		"columns", result.Table.ColumnNames(),
	)
}
