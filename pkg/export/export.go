package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/productionplan/core/model"
)

// WriteJSON writes the production plan entries to w in JSON format.
func WriteJSON(w io.Writer, entries []model.PlanEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// WriteCSV writes the production plan entries to w with a name,p header.
func WriteCSV(w io.Writer, entries []model.PlanEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "p"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Name, strconv.FormatFloat(e.P, 'f', 1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteChartHTML renders the plan as a bar chart, one bar group per unit in
// plan order with the allocated output next to the unit capacity.
func WriteChartHTML(w io.Writer, plan model.Plan) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Production plan",
			Subtitle: fmt.Sprintf("load %.1f MW, committed %.1f MW", plan.Load, plan.Committed),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Unit"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "MW"}),
	)

	names := make([]string, 0, len(plan.Allocations))
	output := make([]opts.BarData, 0, len(plan.Allocations))
	capacity := make([]opts.BarData, 0, len(plan.Allocations))
	for _, a := range plan.Allocations {
		names = append(names, a.Unit.Name)
		output = append(output, opts.BarData{Value: model.Round1(a.Output)})
		capacity = append(capacity, opts.BarData{Value: a.Unit.PMax})
	}
	bar.SetXAxis(names).
		AddSeries("output", output).
		AddSeries("p_max", capacity)
	return bar.Render(w)
}
