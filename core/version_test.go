package core

import (
	"testing"

	"github.com/huangsam/plugtrend/schema"
	"github.com/stretchr/testify/assert"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal", "1.2.3", "1.2.3", 0},
		{"major difference", "2.0.0", "1.9.9", 1},
		{"minor difference", "1.2.0", "1.10.0", -1},
		{"patch difference", "1.2.4", "1.2.3", 1},
		{"missing components are zero", "1.9", "1.9.0", 0},
		{"shorter vs longer", "1.2", "1.2.1", -1},
		{"non-numeric component is zero", "1.x.0", "1.0.0", 0},
		{"release beats pre-release", "1.9.0", "1.9.0-beta", 1},
		{"pre-release loses to release", "1.9.0-beta", "1.9.0", -1},
		{"suffixes compare lexicographically", "1.0.0-alpha", "1.0.0-beta", -1},
		{"equal suffixes", "1.0.0-rc1", "1.0.0-rc1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareVersions(tt.a, tt.b))
		})
	}
}

func TestSortBySemVer(t *testing.T) {
	chronological := []schema.VersionRelease{
		{Version: "2.0.0", FirstSeenIndex: 0},
		{Version: "1.9.0-beta", FirstSeenIndex: 1},
		{Version: "1.9.0", FirstSeenIndex: 2},
	}

	sorted := sortBySemVer(chronological)

	got := make([]string, len(sorted))
	for i, r := range sorted {
		got[i] = r.Version
	}
	assert.Equal(t, []string{"1.9.0-beta", "1.9.0", "2.0.0"}, got)

	// The chronological input stays untouched.
	assert.Equal(t, "2.0.0", chronological[0].Version)
}
