package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// CacheBackend represents the database backend for the revision cache.
	CacheBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     CacheBackend = "sqlite" // default
	MySQLBackend      CacheBackend = "mysql"
	PostgreSQLBackend CacheBackend = "postgresql"
	NoneBackend       CacheBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[CacheBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Reserved keys in a stats record. Every other key of a plugin record is
// treated as a version identifier mapped to a per-version cumulative count.
const (
	DownloadsKey   = "downloads"
	UpdatedKey     = "updated"
	DailyGrowthKey = "dailyGrowth"
)

// ReservedRecordKeys lists record keys excluded from version-count extraction.
var ReservedRecordKeys = map[string]struct{}{
	DownloadsKey:   {},
	UpdatedKey:     {},
	DailyGrowthKey: {},
}

// InitialLabel marks series points before the first detected release.
const InitialLabel = "Initial"

// InitialColor is reserved for the pre-first-version span.
const InitialColor = "#9e9e9e"

// VersionPalette is the fixed palette cycled through by semantic release
// rank. More releases than entries wrap around.
var VersionPalette = [10]string{
	"#4e79a7",
	"#f28e2b",
	"#e15759",
	"#76b7b2",
	"#59a14f",
	"#edc948",
	"#b07aa1",
	"#ff9da7",
	"#9c755f",
	"#bab0ac",
}

// ColorForRank returns the palette color for a release at the given semantic
// rank. It is a pure function of the rank; negative ranks map to the
// reserved initial color.
func ColorForRank(rank int) string {
	if rank < 0 {
		return InitialColor
	}
	return VersionPalette[rank%len(VersionPalette)]
}
