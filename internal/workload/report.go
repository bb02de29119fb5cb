package workload

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Render results as a table.
func Render(w io.Writer, p Params, results []Result) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.SetTitle(fmt.Sprintf("%s keys, %d steps, seed %d", humanize.Comma(int64(p.N)), p.Steps, p.Seed))
	tbl.AppendHeader(table.Row{"subject", "ops", "avg/step", "stddev", "per op", "throughput", "size", "height"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	for _, r := range results {
		height := "-"
		if r.Height >= 0 {
			height = strconv.Itoa(r.Height)
		}
		tbl.AppendRow(table.Row{
			r.Subject,
			humanize.Comma(int64(r.Ops)),
			r.Avg.Round(time.Microsecond),
			r.Stddev.Round(time.Microsecond),
			r.PerOp(),
			throughput(r),
			humanize.Comma(int64(r.Size)),
			height,
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d subjects", len(results))})
	tbl.Render()
	return nil
}

func throughput(r Result) string {
	total := r.Avg * time.Duration(r.Steps())
	if total <= 0 {
		return "-"
	}
	return humanize.SIWithDigits(float64(r.Ops)/total.Seconds(), 2, "op/s")
}
