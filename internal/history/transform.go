package history

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benmeehan/location-mapper/internal/models"
)

// coordinateScale converts E7 fixed-point coordinates (degrees * 1e7,
// Google's location-export convention) into decimal degrees.
const coordinateScale = 1e7

// fixCoordinate rescales one E7 fixed-point value into decimal degrees.
// It must be applied exactly once per field; the loader is the only caller.
func fixCoordinate(raw float64) float64 {
	return raw / coordinateScale
}

// epochMillis extracts the record's timestamp as epoch milliseconds.
// Older exports carry "timestampMs" (a JSON number or a numeric string);
// exports newer than roughly the end of 2021 carry an RFC3339 "timestamp"
// instead, which is accepted as a fallback.
func epochMillis(raw rawLocation) (int64, error) {
	if len(raw.TimestampMs) > 0 {
		text := strings.TrimSpace(strings.Trim(string(raw.TimestampMs), `"`))
		ms, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, &FormatError{Reason: "non-numeric timestampMs " + strconv.Quote(text)}
		}
		return ms, nil
	}

	if raw.Timestamp != "" {
		t, err := time.Parse(time.RFC3339Nano, raw.Timestamp)
		if err != nil {
			return 0, &FormatError{Reason: "unparsable timestamp " + strconv.Quote(raw.Timestamp)}
		}
		return t.UnixMilli(), nil
	}

	return 0, &FormatError{Reason: "missing timestamp"}
}

// deriveCalendar fills the record's calendar fields and display timestamp
// from TimestampMs. Interpretation is UTC, no timezone conversion.
func deriveCalendar(rec *models.LocationRecord) {
	t := time.UnixMilli(rec.TimestampMs).UTC()
	rec.Year = t.Year()
	rec.Month = int(t.Month())
	rec.Day = t.Day()
	rec.Hour = t.Hour()
	rec.Minute = t.Minute()
	rec.Second = t.Second()

	// Unpadded on every field ("1/1/2021 0:0", not "01/01/2021 00:00").
	// Downstream consumers depend on this exact shape.
	rec.DisplayTimestamp = fmt.Sprintf("%d/%d/%d %d:%d", rec.Month, rec.Day, rec.Year, rec.Hour, rec.Minute)
}

// transformRecord turns one raw export entry into a LocationRecord,
// applying the timestamp derivation and the coordinate fix.
func transformRecord(raw rawLocation) (models.LocationRecord, error) {
	var rec models.LocationRecord

	if raw.LatitudeE7 == nil || raw.LongitudeE7 == nil {
		return rec, &FormatError{Reason: "missing latitudeE7 or longitudeE7"}
	}

	ms, err := epochMillis(raw)
	if err != nil {
		return rec, err
	}

	rec.TimestampMs = ms
	rec.LatitudeE7 = fixCoordinate(*raw.LatitudeE7)
	rec.LongitudeE7 = fixCoordinate(*raw.LongitudeE7)
	deriveCalendar(&rec)

	return rec, nil
}
