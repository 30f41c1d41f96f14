package cluster

import (
	"errors"
	"fmt"
	"testing"

	"github.com/drakos74/edu-cluster/infra/config"
	"github.com/drakos74/edu-cluster/internal/dataset"
	"github.com/drakos74/edu-cluster/internal/metrics"
	"github.com/drakos74/edu-cluster/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func newPipeline(provider dataset.Provider) *Pipeline {
	return NewPipeline(provider, config.Default().Clustering).WithMetrics(metrics.NewMetrics())
}

func TestPipeline_Run(t *testing.T) {
	pipeline := newPipeline(dataset.NewCache(dataset.NewGenerator()))

	for k := 2; k <= 5; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			result, err := pipeline.Run(k)
			require.NoError(t, err)

			assert.NotEmpty(t, result.ID)
			assert.Equal(t, k, result.K)
			assert.Equal(t, dataset.DefaultSeed, result.Seed)
			require.Len(t, result.Table, len(dataset.Provinces))
			assert.Empty(t, result.Degenerate)

			ids := make(map[int]struct{})
			for i, p := range result.Table {
				assert.Equal(t, dataset.Provinces[i], p.Name)
				assert.GreaterOrEqual(t, p.Cluster, 0)
				assert.Less(t, p.Cluster, k)
				ids[p.Cluster] = struct{}{}
			}
			assert.Len(t, result.Summary, len(ids))

			var total int
			for _, s := range result.Sizes() {
				total += s
			}
			assert.Equal(t, len(result.Table), total)

			again, err := pipeline.Run(k)
			require.NoError(t, err)
			assert.NotEqual(t, result.ID, again.ID)
			assert.Equal(t, result.Table, again.Table)
			assert.Equal(t, result.Summary, again.Summary)
		})
	}
}

func TestPipeline_Run_DoesNotMutateDataset(t *testing.T) {
	pipeline := newPipeline(dataset.NewCache(dataset.NewGenerator()))
	_, err := pipeline.Run(4)
	require.NoError(t, err)
	for _, p := range pipeline.Dataset() {
		assert.Equal(t, 0, p.Cluster)
	}
}

func TestPipeline_Run_SingleCluster(t *testing.T) {
	pipeline := newPipeline(dataset.NewGenerator())
	result, err := pipeline.Run(1)
	require.NoError(t, err)
	require.Len(t, result.Summary, 1)
	for _, f := range model.Features {
		assert.Equal(t, stat.Mean(result.Table.Column(f), nil), result.Summary[0].Mean(f))
	}
}

func TestPipeline_Run_SeparatedGroups(t *testing.T) {
	table := model.Table{
		{Name: "a", Students: 0, Dropouts: 0, TeacherQualification: 50, GoodClassrooms: 30},
		{Name: "b", Students: 0, Dropouts: 1, TeacherQualification: 50, GoodClassrooms: 30},
		{Name: "c", Students: 10, Dropouts: 10, TeacherQualification: 50, GoodClassrooms: 30},
		{Name: "d", Students: 10, Dropouts: 11, TeacherQualification: 50, GoodClassrooms: 30},
	}
	pipeline := NewPipeline(dataset.NewStatic(table), config.Clustering{Seed: 0}).WithMetrics(metrics.NewMetrics())

	result, err := pipeline.Run(2)
	require.NoError(t, err)

	assert.Equal(t, []model.Feature{model.TeacherQualification, model.GoodClassrooms}, result.Degenerate)
	assert.Equal(t, result.Table[0].Cluster, result.Table[1].Cluster)
	assert.Equal(t, result.Table[2].Cluster, result.Table[3].Cluster)
	assert.NotEqual(t, result.Table[0].Cluster, result.Table[2].Cluster)

	require.Len(t, result.Summary, 2)
	for _, s := range result.Summary {
		assert.Equal(t, 2, s.Size)
		assert.Equal(t, 50.0, s.Mean(model.TeacherQualification))
	}
}

func TestPipeline_Run_InvalidParameter(t *testing.T) {
	pipeline := newPipeline(dataset.NewGenerator())
	for _, k := range []int{-1, 0, len(dataset.Provinces) + 1} {
		result, err := pipeline.Run(k)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, model.InvalidParameterErr), fmt.Sprintf("k=%d", k))
	}

	empty := newPipeline(dataset.NewStatic(model.Table{}))
	_, err := empty.Run(1)
	assert.True(t, errors.Is(err, model.InvalidParameterErr))
}
