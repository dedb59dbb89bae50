package soak

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Result summarizes the activity of one tree form during a run.
type Result struct {
	Form    string
	Inserts int64
	Removes int64
	// Misses counts removals of values absent from the tree.
	Misses int64
	Len    int
	// Height is the height at the last checkpoint, nil if the form does not
	// expose it.
	Height    *int
	MaxHeight int
	Elapsed   time.Duration
}

func newResult(form string) Result {
	return Result{Form: form, MaxHeight: -1}
}

// Report is the outcome of a soak run.
type Report struct {
	Seed       int64
	Operations int
	Checks     int
	Elapsed    time.Duration
	Results    []Result
}

// Table renders the per-form results of the report.
func (r *Report) Table() string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"form", "inserts", "removes", "misses", "len", "height", "max height", "time"})

	for _, res := range r.Results {
		height, maxHeight := "n/a", "n/a"
		if res.Height != nil {
			height = strconv.Itoa(*res.Height)
			maxHeight = strconv.Itoa(res.MaxHeight)
		}
		tbl.AppendRow(table.Row{
			res.Form,
			humanize.Comma(res.Inserts),
			humanize.Comma(res.Removes),
			humanize.Comma(res.Misses),
			humanize.Comma(int64(res.Len)),
			height,
			maxHeight,
			res.Elapsed.Round(time.Microsecond),
		})
	}

	tbl.AppendFooter(table.Row{
		"seed " + strconv.FormatInt(r.Seed, 10),
		humanize.Comma(int64(r.Operations)) + " ops",
		humanize.Comma(int64(r.Checks)) + " checks",
	})

	return tbl.Render()
}
