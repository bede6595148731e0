package core

import (
	"testing"

	"github.com/huangsam/plugtrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveVersionLabels_InitialBeforeFirstRelease(t *testing.T) {
	series := schema.Series{
		snap(1, 100, nil),
		snap(2, 150, map[string]int{"1.0.0": 50}),
		snap(3, 200, map[string]int{"1.0.0": 100}),
	}
	releases := SegmentReleases(series)

	labels := ActiveVersionLabels(series, releases)

	assert.Equal(t, []string{schema.InitialLabel, "1.0.0", "1.0.0"}, labels)
}

func TestActiveVersionLabels_SwitchesAtEachRelease(t *testing.T) {
	series := schema.Series{
		snap(1, 100, map[string]int{"1.0.0": 100}),
		snap(2, 250, map[string]int{"1.1.0": 50}),
		snap(3, 340, map[string]int{"1.1.0": 140}),
		snap(4, 400, map[string]int{"2.0.0": 60}),
	}
	releases := SegmentReleases(series)

	labels := ActiveVersionLabels(series, releases)

	assert.Equal(t, []string{"1.0.0", "1.1.0", "1.1.0", "2.0.0"}, labels)
}

func TestActiveVersionLabels_SameIndexTieGoesToHigherVersion(t *testing.T) {
	series := schema.Series{
		snap(1, 100, map[string]int{"1.1.0": 40, "1.1.1": 60}),
		snap(2, 250, map[string]int{"1.1.1": 210}),
	}
	releases := SegmentReleases(series)

	labels := ActiveVersionLabels(series, releases)

	assert.Equal(t, []string{"1.1.1", "1.1.1"}, labels)
}

func TestVersionColors_RanksAndCycles(t *testing.T) {
	releases := make([]schema.VersionRelease, 12)
	for i := range releases {
		releases[i] = schema.VersionRelease{Version: versionLabel(i)}
	}

	colors := VersionColors(releases)

	require.Len(t, colors, 13) // 12 versions plus the initial label
	assert.Equal(t, schema.InitialColor, colors[schema.InitialLabel])
	assert.Equal(t, schema.VersionPalette[0], colors[versionLabel(0)])
	assert.Equal(t, schema.VersionPalette[9], colors[versionLabel(9)])
	// Rank 10 wraps back around to the first palette entry.
	assert.Equal(t, schema.VersionPalette[0], colors[versionLabel(10)])
}

func versionLabel(i int) string {
	return "1." + string(rune('a'+i))
}
