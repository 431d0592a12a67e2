package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/ZanzyTHEbar/g2x/g2x/batch"
	"github.com/ZanzyTHEbar/g2x/g2x/indexing"
	"github.com/ZanzyTHEbar/g2x/g2x/resolve"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTable returns a rounded writer whose listed columns (1-based) are right aligned.
func newTable(header table.Row, rightAligned ...int) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, n := range rightAligned {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)
	return tw
}

func statsTable(stats indexing.IndexStats) string {
	tw := newTable(table.Row{"Index", "Count"}, 2)
	tw.AppendRows([]table.Row{
		{"Entries", stats.Entries},
		{"Directories", stats.Directories},
		{"Album names", stats.LastSegments},
		{"Filename trigrams", stats.Trigrams},
	})
	return tw.Render()
}

// resultsTable lists batch results in input order. Resolved rows are skipped
// when onlyUnresolved is set; rows reports how many were written.
func resultsTable(results []batch.Result, onlyUnresolved bool) (out string, rows int) {
	tw := newTable(table.Row{"ID", "Reference", "Resolved", "Method", "Score"}, 5)
	for _, res := range results {
		m := res.Match
		if onlyUnresolved && m.Resolved() {
			continue
		}
		path, method := "-", "unresolved"
		if m.Resolved() {
			path, method = m.Path, string(m.Method)
		}
		tw.AppendRow(table.Row{res.Reference.ID, res.Reference.Parsed.FullPath(), path, method, formatScore(m)})
		rows++
	}
	return tw.Render(), rows
}

func summaryTable(rep *batch.Report) string {
	tw := newTable(table.Row{"Summary", ""}, 2)
	tw.AppendRows([]table.Row{
		{"Run", rep.RunID.String()},
		{"References", rep.Total},
		{"Resolved", rep.Resolved},
		{"Missing", len(rep.Unresolved)},
		{"Deviations", rep.Deviations()},
	})

	methods := make([]string, 0, len(rep.ByMethod))
	for m := range rep.ByMethod {
		methods = append(methods, string(m))
	}
	sort.Strings(methods)
	for _, m := range methods {
		tw.AppendRow(table.Row{"  " + m, strconv.Itoa(rep.ByMethod[resolve.Method(m)])})
	}

	if rep.Scores.Count > 0 {
		tw.AppendSeparator()
		tw.AppendRows([]table.Row{
			{"Fuzzy score mean", fmt.Sprintf("%.3f", rep.Scores.Mean)},
			{"Fuzzy score median", fmt.Sprintf("%.3f", rep.Scores.Median)},
			{"Fuzzy score min", fmt.Sprintf("%.3f", rep.Scores.Min)},
			{"Fuzzy score stddev", fmt.Sprintf("%.3f", rep.Scores.StdDev)},
		})
	}
	tw.AppendRow(table.Row{"Elapsed", rep.Elapsed.Round(time.Millisecond).String()})
	return tw.Render()
}
