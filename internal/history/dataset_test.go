package history

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benmeehan/location-mapper/internal/models"
)

func testRecords(n int) []models.LocationRecord {
	records := make([]models.LocationRecord, n)
	for i := range records {
		records[i] = models.LocationRecord{
			LatitudeE7:  float64(i),
			LongitudeE7: float64(-i),
			TimestampMs: int64(i) * 60000,
		}
	}
	return records
}

// TestDataset_FilterNarrowsView verifies a boolean mask keeps exactly the
// true positions, in order.
func TestDataset_FilterNarrowsView(t *testing.T) {
	d := NewDataset(testRecords(4), zerolog.Nop())

	err := d.Filter([]bool{true, false, true, false})
	require.NoError(t, err)

	assert.Equal(t, 2, d.Len())
	view := d.Records()
	assert.Equal(t, float64(0), view[0].LatitudeE7)
	assert.Equal(t, float64(2), view[1].LatitudeE7)
	assert.Equal(t, 4, d.SnapshotLen())
}

// TestDataset_FiltersCompose verifies a second mask aligns to the already
// narrowed view.
func TestDataset_FiltersCompose(t *testing.T) {
	d := NewDataset(testRecords(5), zerolog.Nop())

	require.NoError(t, d.Filter([]bool{true, true, true, false, false}))
	require.NoError(t, d.Filter([]bool{false, true, true}))

	view := d.Records()
	require.Len(t, view, 2)
	assert.Equal(t, float64(1), view[0].LatitudeE7)
	assert.Equal(t, float64(2), view[1].LatitudeE7)
}

// TestDataset_FilterMaskLengthMismatch verifies the IndexError and that a
// failed call leaves the view unchanged.
func TestDataset_FilterMaskLengthMismatch(t *testing.T) {
	d := NewDataset(testRecords(3), zerolog.Nop())
	before := d.Records()

	err := d.Filter([]bool{true, false})

	var ierr *IndexError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 3, ierr.Want)
	assert.Equal(t, 2, ierr.Got)
	assert.Equal(t, before, d.Records())
}

// TestDataset_ClearFilterRoundTrip verifies ClearFilter restores the
// original record set after any sequence of filters, same order, same
// values.
func TestDataset_ClearFilterRoundTrip(t *testing.T) {
	records := testRecords(6)
	d := NewDataset(records, zerolog.Nop())

	require.NoError(t, d.Filter([]bool{false, true, false, true, false, true}))
	require.NoError(t, d.Filter([]bool{true, false, false}))
	d.ClearFilter()

	assert.Equal(t, records, d.Records())

	// Idempotent
	d.ClearFilter()
	assert.Equal(t, records, d.Records())
}

// TestDataset_FilterFunc verifies the predicate form.
func TestDataset_FilterFunc(t *testing.T) {
	d := NewDataset(testRecords(4), zerolog.Nop())

	d.FilterFunc(func(i int, rec models.LocationRecord) bool {
		return i%2 == 0
	})

	assert.Equal(t, 2, d.Len())
}

// TestDataset_SnapshotIsIsolated verifies mutating what callers get back
// never touches the stored records.
func TestDataset_SnapshotIsIsolated(t *testing.T) {
	d := NewDataset(testRecords(2), zerolog.Nop())

	view := d.Records()
	view[0].LatitudeE7 = 99

	assert.Equal(t, float64(0), d.Records()[0].LatitudeE7)
	d.ClearFilter()
	assert.Equal(t, float64(0), d.Records()[0].LatitudeE7)
}

// TestDataset_TimeRangeMask verifies the window bounds are inclusive and
// zero times leave a side unbounded.
func TestDataset_TimeRangeMask(t *testing.T) {
	d := NewDataset(testRecords(5), zerolog.Nop()) // one record per minute from epoch

	from := time.UnixMilli(60000).UTC()
	to := time.UnixMilli(180000).UTC()

	mask := d.TimeRangeMask(from, to)
	assert.Equal(t, []bool{false, true, true, true, false}, mask)

	open := d.TimeRangeMask(time.Time{}, time.Time{})
	assert.Equal(t, []bool{true, true, true, true, true}, open)
}
