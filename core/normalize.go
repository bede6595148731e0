package core

import (
	"sort"

	"github.com/huangsam/plugtrend/schema"
)

// NormalizeSeries produces the canonical form of a raw series: sorted by
// timestamp ascending, with every snapshot carrying an explicit daily growth
// value. Snapshots that already have one keep it; the rest get the
// difference from the previous snapshot's total (zero for the first). The
// input is not modified and the result is idempotent: normalizing an
// already-normalized series returns an identical copy.
func NormalizeSeries(raw schema.Series) schema.Series {
	series := make(schema.Series, len(raw))
	copy(series, raw)

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})

	for i := range series {
		if series[i].GrowthKnown {
			continue
		}
		if i == 0 {
			series[i].DailyGrowth = 0
		} else {
			series[i].DailyGrowth = series[i].TotalCount - series[i-1].TotalCount
		}
		series[i].GrowthKnown = true
	}
	return series
}
