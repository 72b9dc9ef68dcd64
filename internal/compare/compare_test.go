package compare

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/types"
)

func framework(id string, perf, lc, cs, jd, sc int) catalog.Framework {
	return catalog.Framework{
		ID:       id,
		Name:     id,
		Category: catalog.CategoryBackend,
		Scores: map[catalog.Metric]int{
			catalog.MetricPerformance:      perf,
			catalog.MetricLearningCurve:    lc,
			catalog.MetricCommunitySupport: cs,
			catalog.MetricJobDemand:        jd,
			catalog.MetricScalability:      sc,
		},
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Framework{
		framework("a", 90, 60, 80, 70, 50),
		framework("b", 80, 60, 95, 70, 60),
		framework("c", 70, 40, 50, 90, 70),
		framework("d", 60, 30, 40, 10, 80),
		framework("e", 50, 20, 30, 20, 90),
	})
	require.NoError(t, err)
	return c
}

func TestBuild(t *testing.T) {
	cmp, err := Build(testCatalog(t), []string{"b", "a", "c"})
	require.NoError(t, err)

	require.Len(t, cmp.Frameworks, 3)
	assert.Equal(t, "b", cmp.Frameworks[0].ID)
	assert.Equal(t, "a", cmp.Frameworks[1].ID)
	assert.Equal(t, "c", cmp.Frameworks[2].ID)

	require.Len(t, cmp.Rows, len(catalog.Metrics))

	tests := []struct {
		metric      catalog.Metric
		wantValues  []int
		wantLeaders []string
	}{
		{catalog.MetricPerformance, []int{80, 90, 70}, []string{"a"}},
		{catalog.MetricLearningCurve, []int{60, 60, 40}, []string{"b", "a"}},
		{catalog.MetricCommunitySupport, []int{95, 80, 50}, []string{"b"}},
		{catalog.MetricJobDemand, []int{70, 70, 90}, []string{"c"}},
		{catalog.MetricScalability, []int{60, 50, 70}, []string{"c"}},
	}

	for i, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			row := cmp.Rows[i]
			assert.Equal(t, tt.metric, row.Metric)
			assert.Equal(t, tt.metric.Label(), row.Label)
			assert.Equal(t, tt.wantValues, row.Values)
			assert.Equal(t, tt.wantLeaders, row.Leaders)
			for _, id := range tt.wantLeaders {
				assert.True(t, row.IsLeader(id))
			}
		})
	}

	assert.InDeltaSlice(t, []float64{73, 70, 64}, cmp.Averages, 1e-9)
}

func TestBuild_Single(t *testing.T) {
	cmp, err := Build(testCatalog(t), []string{"d"})
	require.NoError(t, err)
	for _, row := range cmp.Rows {
		assert.Equal(t, []string{"d"}, row.Leaders)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name        string
		ids         []string
		wantUnknown bool
	}{
		{"no ids", nil, false},
		{"too many ids", []string{"a", "b", "c", "d", "e"}, false},
		{"duplicate ids", []string{"a", "a"}, false},
		{"unknown id", []string{"a", "zzz"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := Build(testCatalog(t), tt.ids)
			require.Error(t, err)
			assert.Nil(t, cmp)
			assert.True(t, errors.Is(err, types.ErrInvalidInput))
			assert.Equal(t, tt.wantUnknown, errors.Is(err, ErrUnknownFramework))
		})
	}
}

func TestSelection_AddAndCapacity(t *testing.T) {
	s := NewSelection(testCatalog(t))

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Add(id))
	}
	assert.Equal(t, MaxSelected, s.Len())

	// Re-adding a selected id does not count against capacity
	require.NoError(t, s.Add("b"))

	err := s.Add("e")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelectionFull))
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.IDs())
}

func TestSelection_UnknownFramework(t *testing.T) {
	s := NewSelection(testCatalog(t))

	err := s.Add("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFramework))
	assert.Equal(t, 0, s.Len())
}

func TestSelection_Toggle(t *testing.T) {
	s := NewSelection(testCatalog(t))

	selected, err := s.Toggle("a")
	require.NoError(t, err)
	assert.True(t, selected)

	selected, err = s.Toggle("c")
	require.NoError(t, err)
	assert.True(t, selected)

	selected, err = s.Toggle("a")
	require.NoError(t, err)
	assert.False(t, selected)
	assert.Equal(t, []string{"c"}, s.IDs())

	_, err = s.Toggle("nope")
	assert.True(t, errors.Is(err, ErrUnknownFramework))
}

func TestSelection_ToggleFreesCapacity(t *testing.T) {
	s := NewSelection(testCatalog(t))
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Add(id))
	}

	_, err := s.Toggle("e")
	assert.True(t, errors.Is(err, ErrSelectionFull))

	selected, err := s.Toggle("b")
	require.NoError(t, err)
	assert.False(t, selected)

	selected, err = s.Toggle("e")
	require.NoError(t, err)
	assert.True(t, selected)
	assert.Equal(t, []string{"a", "c", "d", "e"}, s.IDs())
}

func TestSelection_IDsIsCopy(t *testing.T) {
	s := NewSelection(testCatalog(t))
	require.NoError(t, s.Add("a"))

	ids := s.IDs()
	ids[0] = "mutated"
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("mutated"))
}

func TestSelection_BuildAndClear(t *testing.T) {
	s := NewSelection(testCatalog(t))
	require.NoError(t, s.Add("e"))
	require.NoError(t, s.Add("a"))

	cmp, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "e", cmp.Frameworks[0].ID)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	_, err = s.Build()
	assert.True(t, errors.Is(err, types.ErrInvalidInput))
}
