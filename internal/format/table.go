package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/drakos74/edu-cluster/internal/cluster"
	"github.com/drakos74/edu-cluster/internal/model"
	"github.com/olekukonko/tablewriter"
)

const (
	provinceColumn = "Provinsi"
	clusterColumn  = "Cluster"
)

// Float formats a float with two decimals.
func Float(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	return table
}

// Dataset writes the raw province indicators.
func Dataset(w io.Writer, t model.Table) {
	header := []string{provinceColumn}
	for _, f := range model.Features {
		header = append(header, f.String())
	}
	table := newTable(w, header)
	for _, p := range t {
		row := []string{p.Name}
		for _, f := range model.Features {
			row = append(row, strconv.Itoa(int(f.Value(p))))
		}
		table.Append(row)
	}
	table.Render()
}

// Assignment writes the cluster of each province.
func Assignment(w io.Writer, t model.Table) {
	table := newTable(w, []string{provinceColumn, clusterColumn})
	for _, p := range t {
		table.Append([]string{p.Name, strconv.Itoa(p.Cluster)})
	}
	table.Render()
}

// Summary writes the mean indicators of each cluster.
func Summary(w io.Writer, summary []cluster.Summary) {
	header := []string{clusterColumn, "Size"}
	for _, f := range model.Features {
		header = append(header, f.String())
	}
	table := newTable(w, header)
	for _, s := range summary {
		row := []string{strconv.Itoa(s.Cluster), strconv.Itoa(s.Size)}
		for _, f := range model.Features {
			row = append(row, Float(s.Mean(f)))
		}
		table.Append(row)
	}
	table.Render()
}

// Result writes the full outcome of a pipeline run.
func Result(w io.Writer, result *cluster.Result) {
	fmt.Fprintf(w, "run %s | k=%d seed=%d iterations=%d converged=%v inertia=%s\n",
		result.ID, result.K, result.Seed, result.Iterations, result.Converged, Float(result.Inertia))
	for _, f := range result.Degenerate {
		fmt.Fprintf(w, "warning: column '%s' has zero variance\n", f)
	}
	Assignment(w, result.Table)
	Summary(w, result.Summary)
}
