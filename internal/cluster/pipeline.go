package cluster

import (
	"fmt"
	"time"

	"github.com/drakos74/edu-cluster/infra/config"
	"github.com/drakos74/edu-cluster/internal/dataset"
	edumath "github.com/drakos74/edu-cluster/internal/math"
	"github.com/drakos74/edu-cluster/internal/math/ml"
	"github.com/drakos74/edu-cluster/internal/metrics"
	"github.com/drakos74/edu-cluster/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of a single pipeline run.
type Result struct {
	ID         string          `json:"id"`
	K          int             `json:"k"`
	Seed       int64           `json:"seed"`
	Table      model.Table     `json:"table"`
	Summary    []Summary       `json:"summary"`
	Inertia    float64         `json:"inertia"`
	Iterations int             `json:"iterations"`
	Converged  bool            `json:"converged"`
	Degenerate []model.Feature `json:"degenerate"`
}

// Sizes returns the number of provinces per cluster id in [0,k).
func (r *Result) Sizes() []int {
	sizes := make([]int, r.K)
	for _, p := range r.Table {
		sizes[p.Cluster]++
	}
	return sizes
}

// Pipeline loads the province table, standardizes it, clusters it and summarizes the clusters.
type Pipeline struct {
	provider dataset.Provider
	cfg      config.Clustering
	kmeans   *ml.KMeans
	metrics  *metrics.Metrics
}

// NewPipeline creates a new pipeline on top of the given provider.
func NewPipeline(provider dataset.Provider, cfg config.Clustering) *Pipeline {
	return &Pipeline{
		provider: provider,
		cfg:      cfg,
		kmeans:   ml.NewKMeans(cfg.Iterations, cfg.Restarts),
		metrics:  metrics.Observer,
	}
}

// WithMetrics sets the metrics collector of the pipeline.
func (p *Pipeline) WithMetrics(m *metrics.Metrics) *Pipeline {
	p.metrics = m
	return p
}

// Config returns the clustering configuration of the pipeline.
func (p *Pipeline) Config() config.Clustering {
	return p.cfg
}

// Dataset returns the table the pipeline operates on.
func (p *Pipeline) Dataset() model.Table {
	return p.provider.Load(p.cfg.Seed)
}

// Run clusters the provinces into k groups.
func (p *Pipeline) Run(k int) (*Result, error) {
	start := time.Now()
	id := uuid.New().String()

	result, err := p.run(id, k)
	if err != nil {
		p.metrics.Run(k, metrics.Failed, time.Since(start))
		log.Error().
			Err(err).
			Str("run", id).
			Int("k", k).
			Msg("could not complete clustering")
		return nil, err
	}

	p.metrics.Run(k, metrics.OK, time.Since(start))
	p.metrics.Iterations(result.Iterations)
	for _, f := range result.Degenerate {
		p.metrics.Degenerate(f.String())
	}
	log.Info().
		Str("run", id).
		Int("k", k).
		Int64("seed", p.cfg.Seed).
		Int("rows", len(result.Table)).
		Int("iterations", result.Iterations).
		Bool("converged", result.Converged).
		Float64("inertia", result.Inertia).
		Float64("duration", time.Since(start).Seconds()).
		Msg("clustering completed")
	return result, nil
}

func (p *Pipeline) run(id string, k int) (*Result, error) {
	table := p.provider.Load(p.cfg.Seed)

	scaled, err := edumath.Standardize(table, model.Features)
	if err != nil {
		return nil, fmt.Errorf("could not standardize features: %w", err)
	}

	assignment, err := p.kmeans.Assign(scaled.Matrix, k, p.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("could not assign clusters: %w", err)
	}

	for i := range table {
		table[i].Cluster = assignment.Labels[i]
	}

	summary, err := Summarize(table, assignment.Labels, model.Features)
	if err != nil {
		return nil, fmt.Errorf("could not summarize clusters: %w", err)
	}

	return &Result{
		ID:         id,
		K:          k,
		Seed:       p.cfg.Seed,
		Table:      table,
		Summary:    summary,
		Inertia:    assignment.Inertia,
		Iterations: assignment.Iterations,
		Converged:  assignment.Converged,
		Degenerate: scaled.Degenerate,
	}, nil
}
