package math

import (
	"fmt"

	"github.com/drakos74/edu-cluster/internal/buffer"
	"github.com/drakos74/edu-cluster/internal/model"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// Scaled is the standardized representation of a table.
type Scaled struct {
	// Matrix has one row per table row and one column per feature.
	Matrix     *mat.Dense
	Features   []model.Feature
	Mean       []float64
	StdDev     []float64
	Degenerate []model.Feature
}

// Standardize rescales each feature column of the table to zero mean and unit population variance.
// A column with zero variance is mapped to zeros and reported in Scaled.Degenerate.
func Standardize(table model.Table, features []model.Feature) (*Scaled, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("cannot standardize empty table: %w", model.InvalidParameterErr)
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("no features to standardize: %w", model.InvalidParameterErr)
	}

	collector := buffer.NewStatsCollector(len(features))
	row := make([]float64, len(features))
	for _, p := range table {
		for j, f := range features {
			row[j] = f.Value(p)
		}
		collector.Push(row...)
	}

	scaled := &Scaled{
		Matrix:     mat.NewDense(len(table), len(features), nil),
		Features:   features,
		Mean:       make([]float64, len(features)),
		StdDev:     make([]float64, len(features)),
		Degenerate: make([]model.Feature, 0),
	}

	for j, stats := range collector.Stats() {
		f := features[j]
		scaled.Mean[j] = stats.Avg()
		scaled.StdDev[j] = stats.StDev()
		if stats.Constant() || scaled.StdDev[j] == 0 {
			// leave the column at zero
			scaled.Degenerate = append(scaled.Degenerate, f)
			log.Warn().
				Err(model.DegenerateColumnErr).
				Str("feature", f.String()).
				Float64("mean", scaled.Mean[j]).
				Msg("zero variance column")
			continue
		}
		for i, p := range table {
			scaled.Matrix.Set(i, j, (f.Value(p)-scaled.Mean[j])/scaled.StdDev[j])
		}
	}

	return scaled, nil
}

// IsDegenerate checks if the given feature was mapped to a constant column.
func (s *Scaled) IsDegenerate(f model.Feature) bool {
	for _, d := range s.Degenerate {
		if d == f {
			return true
		}
	}
	return false
}
