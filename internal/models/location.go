package models

// LocationRecord represents a single GPS fix from a location-history export.
//
// LatitudeE7 and LongitudeE7 keep the export's field names for downstream
// compatibility, but after loading they hold standard decimal degrees: the
// raw values are degrees multiplied by 1e7 and are rescaled exactly once
// during load.
type LocationRecord struct {
	LatitudeE7  float64 `json:"latitudeE7"`  // Latitude in decimal degrees, range [-90, 90]
	LongitudeE7 float64 `json:"longitudeE7"` // Longitude in decimal degrees, range [-180, 180]
	TimestampMs int64   `json:"timestampMs"` // Epoch milliseconds, UTC

	// Calendar fields derived from TimestampMs (UTC, no timezone conversion)
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"min"`
	Second int `json:"sec"`

	// DisplayTimestamp is the hover label, formatted "{month}/{day}/{year} {hour}:{minute}"
	// with no zero padding on any field
	DisplayTimestamp string `json:"timestamp_string"`
}
