package ml

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/drakos74/edu-cluster/internal/model"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultIterations caps the refinement steps of a single run.
	DefaultIterations = 300
	// DefaultRestarts is the number of independent initializations.
	DefaultRestarts = 10
)

// Assignment holds the cluster id of each row, by row position.
type Assignment []int

// Sizes returns the number of rows per cluster id for k clusters.
func (a Assignment) Sizes(k int) []int {
	sizes := make([]int, k)
	for _, c := range a {
		sizes[c]++
	}
	return sizes
}

// Result is the outcome of a k-means run.
type Result struct {
	Labels     Assignment  `json:"labels"`
	Centroids  [][]float64 `json:"centroids"`
	Inertia    float64     `json:"inertia"`
	Iterations int         `json:"iterations"`
	Converged  bool        `json:"converged"`
}

// KMeans partitions rows into k clusters by iterative centroid refinement.
type KMeans struct {
	iterations int
	restarts   int
}

// NewKMeans creates a new k-means assigner.
// Non-positive arguments fall back to the defaults.
func NewKMeans(iterations int, restarts int) *KMeans {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	if restarts <= 0 {
		restarts = DefaultRestarts
	}
	return &KMeans{
		iterations: iterations,
		restarts:   restarts,
	}
}

// Assign clusters the rows of x into k groups.
// The outcome is fully determined by x, k and seed.
func (km *KMeans) Assign(x mat.Matrix, k int, seed int64) (*Result, error) {
	n, dim := x.Dims()
	if n == 0 || dim == 0 {
		return nil, fmt.Errorf("empty matrix [%d x %d]: %w", n, dim, model.InvalidParameterErr)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("k must be in [1,%d] but was %d: %w", n, k, model.InvalidParameterErr)
	}

	data := make([][]float64, n)
	for i := 0; i < n; i++ {
		data[i] = mat.Row(nil, i, x)
	}

	rnd := newRand(seed)
	var best *Result
	for r := 0; r < km.restarts; r++ {
		centroids := initCentroids(data, k, rnd)
		result := km.fit(data, centroids)
		log.Debug().
			Int("k", k).
			Int("restart", r).
			Int("iterations", result.Iterations).
			Bool("converged", result.Converged).
			Float64("inertia", result.Inertia).
			Msg("k-means run")
		if best == nil || result.Inertia < best.Inertia {
			best = result
		}
	}

	return best, nil
}

// fit runs the refinement loop from the given initial centroids.
func (km *KMeans) fit(data [][]float64, centroids [][]float64) *Result {
	labels := make(Assignment, len(data))
	for i := range labels {
		labels[i] = -1
	}

	result := &Result{
		Labels:    labels,
		Centroids: centroids,
	}

	for result.Iterations < km.iterations {
		result.Iterations++
		if !assign(data, centroids, labels) {
			result.Converged = true
			break
		}
		update(data, centroids, labels)
	}

	result.Inertia = inertia(data, centroids, labels)
	return result
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// initCentroids picks k distinct rows following the k-means++ scheme.
func initCentroids(data [][]float64, k int, rnd *rand.Rand) [][]float64 {
	n := len(data)
	chosen := make([]bool, n)
	centroids := make([][]float64, 0, k)

	pick := func(i int) {
		chosen[i] = true
		c := make([]float64, len(data[i]))
		copy(c, data[i])
		centroids = append(centroids, c)
	}

	pick(rnd.Intn(n))

	distances := make([]float64, n)
	for len(centroids) < k {
		var sum float64
		for i, p := range data {
			distances[i] = nearest(p, centroids).distance
			sum += distances[i]
		}

		if sum == 0 {
			// every remaining row coincides with a centroid
			pick(unchosen(chosen, rnd))
			continue
		}

		target := rnd.Float64() * sum
		next := -1
		var acc float64
		for i, d := range distances {
			if d == 0 {
				continue
			}
			acc += d
			next = i
			if acc >= target {
				break
			}
		}
		pick(next)
	}

	return centroids
}

// unchosen selects uniformly one of the rows not marked as chosen.
func unchosen(chosen []bool, rnd *rand.Rand) int {
	free := make([]int, 0, len(chosen))
	for i, c := range chosen {
		if !c {
			free = append(free, i)
		}
	}
	return free[rnd.Intn(len(free))]
}

type match struct {
	index    int
	distance float64
}

// nearest finds the closest centroid in squared euclidean distance.
// Ties resolve to the lowest centroid index.
func nearest(p []float64, centroids [][]float64) match {
	m := match{
		index:    -1,
		distance: math.MaxFloat64,
	}
	for j, c := range centroids {
		d := squaredDistance(p, c)
		if d < m.distance {
			m.index = j
			m.distance = d
		}
	}
	return m
}

func squaredDistance(p, q []float64) float64 {
	diff := floats.SubTo(make([]float64, len(p)), p, q)
	return floats.Dot(diff, diff)
}

// assign labels each row with its nearest centroid and reports if any label changed.
func assign(data [][]float64, centroids [][]float64, labels Assignment) bool {
	changed := false
	for i, p := range data {
		j := nearest(p, centroids).index
		if labels[i] != j {
			labels[i] = j
			changed = true
		}
	}
	return changed
}

// update moves each centroid to the mean of its rows.
// A centroid without rows keeps its previous position.
func update(data [][]float64, centroids [][]float64, labels Assignment) {
	dim := len(centroids[0])
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for j := range sums {
		sums[j] = make([]float64, dim)
	}
	for i, p := range data {
		c := labels[i]
		floats.Add(sums[c], p)
		counts[c]++
	}
	for j := range centroids {
		if counts[j] == 0 {
			continue
		}
		floats.ScaleTo(centroids[j], 1/float64(counts[j]), sums[j])
	}
}

func inertia(data [][]float64, centroids [][]float64, labels Assignment) float64 {
	var sum float64
	for i, p := range data {
		sum += squaredDistance(p, centroids[labels[i]])
	}
	return sum
}
