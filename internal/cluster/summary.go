package cluster

import (
	"fmt"
	"sort"

	"github.com/drakos74/edu-cluster/internal/math/ml"
	"github.com/drakos74/edu-cluster/internal/model"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the raw feature means of one cluster.
type Summary struct {
	Cluster int                       `json:"Cluster"`
	Size    int                       `json:"size"`
	Means   map[model.Feature]float64 `json:"means"`
}

// Mean returns the mean of the given feature within the cluster.
func (s Summary) Mean(f model.Feature) float64 {
	return s.Means[f]
}

// Summarize computes the mean of each raw feature per cluster id, ordered by id.
// Only ids present in the assignment produce a row.
func Summarize(table model.Table, labels ml.Assignment, features []model.Feature) ([]Summary, error) {
	if len(labels) != len(table) {
		return nil, fmt.Errorf("assignment for %d rows on table of %d: %w", len(labels), len(table), model.ShapeMismatchErr)
	}

	rows := make(map[int][]int)
	for i, c := range labels {
		rows[c] = append(rows[c], i)
	}

	ids := make([]int, 0, len(rows))
	for c := range rows {
		ids = append(ids, c)
	}
	sort.Ints(ids)

	summaries := make([]Summary, len(ids))
	for i, c := range ids {
		means := make(map[model.Feature]float64, len(features))
		values := make([]float64, len(rows[c]))
		for _, f := range features {
			for j, r := range rows[c] {
				values[j] = f.Value(table[r])
			}
			means[f] = stat.Mean(values, nil)
		}
		summaries[i] = Summary{
			Cluster: c,
			Size:    len(rows[c]),
			Means:   means,
		}
	}

	return summaries, nil
}
