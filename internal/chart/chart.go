package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/drakos74/edu-cluster/internal/cluster"
	"github.com/drakos74/edu-cluster/internal/model"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	scatterTitle = "Visualisasi Clustering Kelayakan Pendidikan"
	sizesTitle   = "Jumlah Provinsi per Cluster"
)

// palette holds one color per cluster id, cycling for larger k.
var palette = []string{
	"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725",
	"#d62728", "#ff7f0e", "#8c564b",
}

// Color returns the color of the given cluster id.
func Color(c int) string {
	return palette[c%len(palette)]
}

// Axes defines the features plotted on each axis.
type Axes struct {
	X model.Feature
	Y model.Feature
}

// DefaultAxes plots teacher qualification against dropouts.
var DefaultAxes = Axes{
	X: model.TeacherQualification,
	Y: model.Dropouts,
}

// Scatter creates a scatter plot of the result with one series per cluster.
func Scatter(result *cluster.Result, axes Axes) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    scatterTitle,
			Subtitle: fmt.Sprintf("k=%d", result.K),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "5%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: "{a}: {b}",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: axes.X.String(),
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: axes.Y.String(),
			Type: "value",
		}),
	)

	series := make([][]opts.ScatterData, result.K)
	for _, p := range result.Table {
		series[p.Cluster] = append(series[p.Cluster], opts.ScatterData{
			Name:       p.Name,
			Value:      []interface{}{axes.X.Value(p), axes.Y.Value(p)},
			SymbolSize: 12,
		})
	}

	for c, data := range series {
		if len(data) == 0 {
			continue
		}
		scatter.AddSeries(fmt.Sprintf("Cluster %d", c), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: Color(c)}))
	}

	return scatter
}

// Sizes creates a bar chart with the number of provinces in each cluster.
func Sizes(result *cluster.Result) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    sizesTitle,
			Subtitle: fmt.Sprintf("k=%d", result.K),
		}),
	)

	sizes := result.Sizes()
	xAxis := make([]string, len(sizes))
	items := make([]opts.BarData, len(sizes))
	for c, size := range sizes {
		xAxis[c] = strconv.Itoa(c)
		items[c] = opts.BarData{
			Name:      strconv.Itoa(c),
			Value:     size,
			ItemStyle: &opts.ItemStyle{Color: Color(c)},
		}
	}

	bar.SetXAxis(xAxis).AddSeries("Provinsi", items).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
	)

	return bar
}

// Renderer is implemented by all charts.
type Renderer interface {
	Render(w io.Writer) error
}

// Render writes the html page of the chart.
func Render(w io.Writer, chart Renderer) error {
	if err := chart.Render(w); err != nil {
		return fmt.Errorf("could not render chart: %w", err)
	}
	return nil
}
