package history

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 {
	return &v
}

// TestTransformRecord_TimeDerivation verifies the calendar fields and the
// unpadded display timestamp for a known epoch.
func TestTransformRecord_TimeDerivation(t *testing.T) {
	raw := rawLocation{
		LatitudeE7:  float64Ptr(377749000),
		LongitudeE7: float64Ptr(-1224194000),
		TimestampMs: json.RawMessage(`1609459200000`), // 2021-01-01T00:00:00Z
	}

	rec, err := transformRecord(raw)
	require.NoError(t, err)

	assert.Equal(t, int64(1609459200000), rec.TimestampMs)
	assert.Equal(t, 2021, rec.Year)
	assert.Equal(t, 1, rec.Month)
	assert.Equal(t, 1, rec.Day)
	assert.Equal(t, 0, rec.Hour)
	assert.Equal(t, 0, rec.Minute)
	assert.Equal(t, 0, rec.Second)
	assert.Equal(t, "1/1/2021 0:0", rec.DisplayTimestamp)
}

// TestTransformRecord_CoordinateFix verifies the single E7 division.
func TestTransformRecord_CoordinateFix(t *testing.T) {
	raw := rawLocation{
		LatitudeE7:  float64Ptr(377749000),
		LongitudeE7: float64Ptr(-1224194000),
		TimestampMs: json.RawMessage(`"1609459200000"`),
	}

	rec, err := transformRecord(raw)
	require.NoError(t, err)

	assert.InDelta(t, 37.7749, rec.LatitudeE7, 1e-9)
	assert.InDelta(t, -122.4194, rec.LongitudeE7, 1e-9)
}

// TestTransformRecord_DisplayTimestampNotPadded pins the unpadded format
// on a timestamp whose fields would all change under zero padding.
func TestTransformRecord_DisplayTimestampNotPadded(t *testing.T) {
	raw := rawLocation{
		LatitudeE7:  float64Ptr(0),
		LongitudeE7: float64Ptr(0),
		TimestampMs: json.RawMessage(`1615283104000`), // 2021-03-09T09:45:04Z
	}

	rec, err := transformRecord(raw)
	require.NoError(t, err)

	assert.Equal(t, "3/9/2021 9:45", rec.DisplayTimestamp)
	assert.Equal(t, 4, rec.Second)
}

// TestEpochMillis_AcceptsNumberAndString verifies both timestampMs wire
// representations decode to the same epoch.
func TestEpochMillis_AcceptsNumberAndString(t *testing.T) {
	asNumber := rawLocation{TimestampMs: json.RawMessage(`1609459200000`)}
	asString := rawLocation{TimestampMs: json.RawMessage(`"1609459200000"`)}

	msNumber, err := epochMillis(asNumber)
	require.NoError(t, err)
	msString, err := epochMillis(asString)
	require.NoError(t, err)

	assert.Equal(t, msNumber, msString)
}

// TestEpochMillis_ISOFallback verifies the RFC3339 "timestamp" field of
// newer exports is accepted when timestampMs is absent.
func TestEpochMillis_ISOFallback(t *testing.T) {
	raw := rawLocation{Timestamp: "2021-01-01T00:00:00Z"}

	ms, err := epochMillis(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(1609459200000), ms)
}

// TestEpochMillis_Failures verifies missing and non-numeric timestamps
// fail with a FormatError.
func TestEpochMillis_Failures(t *testing.T) {
	cases := map[string]rawLocation{
		"missing":     {},
		"non-numeric": {TimestampMs: json.RawMessage(`"yesterday"`)},
		"null":        {TimestampMs: json.RawMessage(`null`)},
		"bad iso":     {Timestamp: "01.01.2021"},
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := epochMillis(raw)
			var ferr *FormatError
			assert.ErrorAs(t, err, &ferr)
		})
	}
}

// TestTransformRecord_MissingCoordinates verifies absent coordinate
// fields fail with a FormatError.
func TestTransformRecord_MissingCoordinates(t *testing.T) {
	raw := rawLocation{
		LatitudeE7:  float64Ptr(377749000),
		TimestampMs: json.RawMessage(`1609459200000`),
	}

	_, err := transformRecord(raw)
	var ferr *FormatError
	assert.ErrorAs(t, err, &ferr)
}
