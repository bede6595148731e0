package core

import "github.com/huangsam/plugtrend/schema"

// ActiveVersionLabels derives, for every series point, the label of the
// version active at that point: the release with the latest first-seen index
// at or before the point, with same-index ties going to the highest semantic
// version. Points before any release carry the reserved initial label. The
// result is a pure function of the release windows; no scan-state is carried
// beyond the fold's accumulator.
func ActiveVersionLabels(series schema.Series, releases []schema.VersionRelease) []string {
	labels := make([]string, len(series))
	for i := range series {
		labels[i] = schema.InitialLabel
	}

	// releases is in semantic order, so a later entry with the same
	// first-seen index legitimately overwrites an earlier one.
	starts := make(map[int]string)
	for _, r := range releases {
		starts[r.FirstSeenIndex] = r.Version
	}

	active := schema.InitialLabel
	for i := range labels {
		if version, ok := starts[i]; ok {
			active = version
		}
		labels[i] = active
	}
	return labels
}

// VersionColors assigns each release a stable palette color by its semantic
// rank, cycling when there are more releases than palette entries, plus the
// reserved color for the pre-first-version span.
func VersionColors(releases []schema.VersionRelease) map[string]string {
	colors := make(map[string]string, len(releases)+1)
	colors[schema.InitialLabel] = schema.InitialColor
	for rank, r := range releases {
		colors[r.Version] = schema.ColorForRank(rank)
	}
	return colors
}
