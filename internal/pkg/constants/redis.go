package constants

// Redis key prefixes
const (
	// KeyDirectionsCache prefixes cached pickup->dropoff route estimates,
	// completed by geohashes of both endpoints
	KeyDirectionsCache = "directions:"
)

// GeohashPrecision is the cell size used in cache keys (~150m at precision 7),
// so near-identical pickup/dropoff pairs share one cached estimate.
const GeohashPrecision = 7
