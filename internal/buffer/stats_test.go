package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	l := 1001

	type test struct {
		transform func(i int) float64
		avg       float64
		count     int
		min, max  float64
		stDev     float64
		variance  float64
		sum       float64
	}

	tests := map[string]test{
		"increasing-positive": {
			transform: func(i int) float64 {
				return float64(i)
			},
			avg:      500,
			count:    l,
			min:      0,
			max:      1000,
			sum:      float64(l) * 500,
			stDev:    289,
			variance: 83500,
		},
		"increasing-centered": {
			transform: func(i int) float64 {
				return float64(-1*l/2) + float64(i)
			},
			avg:   0,
			count: l,
			min:   -500,
			max:   500,
			sum:   0,
			// NOTE : spread does not depend on the offset
			stDev:    289,
			variance: 83500,
		},
		"decreasing-negative": {
			transform: func(i int) float64 {
				return -1 * float64(i)
			},
			avg:      -500,
			count:    l,
			min:      -1000,
			max:      0,
			sum:      -1 * float64(l) * 500,
			stDev:    289,
			variance: 83500,
		},
		"percentages": {
			transform: func(i int) float64 {
				return float64(50 + i%45)
			},
			avg:      72,
			count:    l,
			min:      50,
			max:      94,
			sum:      71885,
			stDev:    13,
			variance: 170,
		},
		"abs": {
			transform: func(i int) float64 {
				return math.Abs(-1*float64(l/2) + float64(i))
			},
			avg:   250,
			count: l,
			min:   0,
			max:   500,
			sum:   250500,
			// NOTE : half the spread of the centered sequence
			stDev:    144,
			variance: 20875,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < l; i++ {
				stats.Push(tt.transform(i))
			}
			assert.Equal(t, tt.avg, math.Round(stats.Avg()))
			assert.Equal(t, tt.count, stats.Count())
			assert.Equal(t, tt.min, stats.Min())
			assert.Equal(t, tt.max, stats.Max())
			assert.Equal(t, tt.sum, math.Round(stats.Sum()))
			assert.Equal(t, tt.stDev, math.Round(stats.StDev()))
			assert.Equal(t, tt.variance, math.Round(stats.Variance()))
			assert.False(t, stats.Constant())
		})
	}
}

func TestStats_Constant(t *testing.T) {
	stats := NewStats()
	assert.False(t, stats.Constant())
	assert.Equal(t, 0.0, stats.Variance())
	for i := 0; i < 31; i++ {
		stats.Push(0.1)
	}
	assert.True(t, stats.Constant())
	assert.InDelta(t, 0.0, stats.StDev(), 1e-12)
	assert.InDelta(t, 0.1, stats.Avg(), 1e-12)
}

func TestStatsCollector(t *testing.T) {
	sc := NewStatsCollector(2)
	sc.Push(1, 10)
	sc.Push(3, 10)
	sc.Push(5, 10)

	assert.Equal(t, 3, sc.Size())
	stats := sc.Stats()
	assert.Equal(t, 3.0, stats[0].Avg())
	assert.False(t, stats[0].Constant())
	assert.Equal(t, 10.0, stats[1].Avg())
	assert.True(t, stats[1].Constant())

	assert.Panics(t, func() {
		sc.Push(1)
	})
}
