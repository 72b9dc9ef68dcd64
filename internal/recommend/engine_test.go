package recommend

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/explain"
	"github.com/dotcommander/stackpick/internal/preset"
	"github.com/dotcommander/stackpick/internal/ranking"
	"github.com/dotcommander/stackpick/internal/types"
)

func framework(id, name string, category catalog.Category, perf, lc, cs, jd, sc int, tags ...string) catalog.Framework {
	return catalog.Framework{
		ID:       id,
		Name:     name,
		Category: category,
		Scores: map[catalog.Metric]int{
			catalog.MetricPerformance:      perf,
			catalog.MetricLearningCurve:    lc,
			catalog.MetricCommunitySupport: cs,
			catalog.MetricJobDemand:        jd,
			catalog.MetricScalability:      sc,
		},
		Tags: catalog.NewTagSet(tags...),
	}
}

func TestRecommend_EndToEnd(t *testing.T) {
	frameworks := []catalog.Framework{
		framework("a", "Alpha", catalog.CategoryFrontend, 90, 70, 95, 95, 88, catalog.TagBeginnerFriendly, catalog.TagFastDevelopment),
		framework("b", "Beta", catalog.CategoryBackend, 92, 80, 90, 88, 85, catalog.TagFastDevelopment),
	}
	p := preset.Preset{Experience: preset.Beginner, Scale: preset.Small, Priority: preset.Jobs, Type: preset.Frontend}

	result, err := Recommend(frameworks, p)
	require.NoError(t, err)

	assert.Equal(t, "a", result.Winner.Framework.ID)
	assert.Equal(t, 186, result.Winner.Score)
	require.Len(t, result.RunnersUp, 1)
	assert.Equal(t, "b", result.RunnersUp[0].Framework.ID)

	// lc 70 < 75 so no Beginner Friendly chip
	assert.Equal(t, []string{explain.ChipStrongJobMarket, explain.ChipGreatCommunity, explain.ChipFrontendNative}, result.Chips)
	assert.Contains(t, result.Explanation, "Alpha is your best match for frontend development")
	assert.Contains(t, result.Explanation, "powerful capabilities")

	assert.Equal(t, 186, result.Breakdown.Total)
	assert.InDelta(t, 186.25, result.Breakdown.Raw, 1e-9)
	assert.Len(t, result.Ranking, 2)
	assert.Equal(t, p, result.Preset)
}

func TestRecommend_BundledCatalog(t *testing.T) {
	c, err := catalog.Bundled()
	require.NoError(t, err)

	for _, exp := range preset.ExperienceOptions {
		for _, typ := range preset.TypeOptions {
			p := preset.Preset{
				Experience: preset.Experience(exp.Value),
				Scale:      preset.Medium,
				Priority:   preset.Speed,
				Type:       preset.ProjectType(typ.Value),
			}
			t.Run(p.String(), func(t *testing.T) {
				result, err := Recommend(c.Frameworks(), p)
				require.NoError(t, err)
				assert.Len(t, result.RunnersUp, 2)
				assert.Equal(t, result.Ranking[0], result.Winner)
				assert.Equal(t, result.Ranking[1:3], result.RunnersUp)
				assert.NotEmpty(t, result.Explanation)
				assert.NotNil(t, result.Chips)
			})
		}
	}
}

func TestRecommend_InvalidInput(t *testing.T) {
	valid := preset.Preset{Experience: preset.Beginner, Scale: preset.Small, Priority: preset.Jobs, Type: preset.Frontend}

	tests := []struct {
		name       string
		frameworks []catalog.Framework
		preset     preset.Preset
	}{
		{"empty catalog", nil, valid},
		{"bad preset", []catalog.Framework{framework("a", "A", catalog.CategoryFrontend, 1, 1, 1, 1, 1)}, preset.Preset{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Recommend(tt.frameworks, tt.preset)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, types.ErrInvalidInput))
		})
	}
}

func TestEngine_ParallelRankerAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := catalog.Bundled()
	require.NoError(t, err)
	p := preset.Preset{Experience: preset.Advanced, Scale: preset.Large, Priority: preset.Performance, Type: preset.Backend}

	engine := NewEngine(ranking.NewRanker(ranking.Options{Parallel: true, Workers: 4, Logger: logger}), logger)
	parallel, err := engine.Recommend(c.Frameworks(), p)
	require.NoError(t, err)

	sequential, err := Recommend(c.Frameworks(), p)
	require.NoError(t, err)

	assert.Equal(t, sequential.Ranking, parallel.Ranking)
	assert.Contains(t, buf.String(), "recommendation ready")
	assert.Contains(t, buf.String(), "winner="+parallel.Winner.Framework.ID)
}
