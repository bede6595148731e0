package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorForRank(t *testing.T) {
	assert.Equal(t, InitialColor, ColorForRank(-1))
	assert.Equal(t, VersionPalette[0], ColorForRank(0))
	assert.Equal(t, VersionPalette[9], ColorForRank(9))
	assert.Equal(t, VersionPalette[0], ColorForRank(10))
	assert.Equal(t, VersionPalette[3], ColorForRank(23))
}

func TestReportDataEmpty(t *testing.T) {
	data := &ReportData{}
	assert.True(t, data.Empty())

	data.Timestamps = []string{"2024-03-01T12:00:00Z"}
	assert.False(t, data.Empty())
}

func TestReservedRecordKeys(t *testing.T) {
	for _, key := range []string{DownloadsKey, UpdatedKey, DailyGrowthKey} {
		_, ok := ReservedRecordKeys[key]
		assert.True(t, ok, key)
	}
	_, ok := ReservedRecordKeys["1.0.0"]
	assert.False(t, ok)
}
