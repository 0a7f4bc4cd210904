package history

import (
	"time"

	"github.com/benmeehan/location-mapper/internal/models"
	"github.com/rs/zerolog"
)

// Dataset owns an immutable snapshot of the loaded-and-transformed records
// plus a separately owned current view that filters may narrow. The
// snapshot is never mutated or aliased after construction; clearing the
// filter restores the view from it, so no data is ever lost, only hidden.
type Dataset struct {
	snapshot []models.LocationRecord
	view     []models.LocationRecord
	logger   zerolog.Logger
}

// NewDataset builds a Dataset from the given records, preserving their
// order (input file order, no sort).
func NewDataset(records []models.LocationRecord, logger zerolog.Logger) *Dataset {
	snapshot := make([]models.LocationRecord, len(records))
	copy(snapshot, records)

	d := &Dataset{
		snapshot: snapshot,
		logger:   logger,
	}
	d.ClearFilter()
	return d
}

// Records returns a copy of the current view.
func (d *Dataset) Records() []models.LocationRecord {
	out := make([]models.LocationRecord, len(d.view))
	copy(out, d.view)
	return out
}

// Len returns the length of the current view.
func (d *Dataset) Len() int {
	return len(d.view)
}

// SnapshotLen returns the number of records originally loaded.
func (d *Dataset) SnapshotLen() int {
	return len(d.snapshot)
}

// Filter narrows the current view to the records whose mask entry is
// true. The mask must align with the CURRENT view, so successive filters
// compose. A length mismatch fails with an *IndexError and leaves the
// view unchanged.
func (d *Dataset) Filter(mask []bool) error {
	if len(mask) != len(d.view) {
		return &IndexError{Want: len(d.view), Got: len(mask)}
	}

	next := make([]models.LocationRecord, 0, len(d.view))
	for i, keep := range mask {
		if keep {
			next = append(next, d.view[i])
		}
	}
	d.view = next

	d.logger.Debug().
		Int("kept", len(d.view)).
		Int("total", len(d.snapshot)).
		Msg("Filter applied to location dataset")
	return nil
}

// FilterFunc narrows the current view with a predicate over (index,
// record), where the index is relative to the current view.
func (d *Dataset) FilterFunc(pred func(i int, rec models.LocationRecord) bool) {
	mask := make([]bool, len(d.view))
	for i, rec := range d.view {
		mask[i] = pred(i, rec)
	}
	// The mask is built against the view, so Filter cannot fail here.
	_ = d.Filter(mask)
}

// ClearFilter restores the current view to the original snapshot,
// discarding any prior filter. Idempotent.
func (d *Dataset) ClearFilter() {
	d.view = make([]models.LocationRecord, len(d.snapshot))
	copy(d.view, d.snapshot)
}

// TimeRangeMask returns a mask over the current view selecting records
// whose timestamp falls within [from, to]. A zero from or to leaves that
// side of the range unbounded.
func (d *Dataset) TimeRangeMask(from, to time.Time) []bool {
	mask := make([]bool, len(d.view))
	for i, rec := range d.view {
		t := time.UnixMilli(rec.TimestampMs).UTC()
		mask[i] = (from.IsZero() || !t.Before(from)) && (to.IsZero() || !t.After(to))
	}
	return mask
}
