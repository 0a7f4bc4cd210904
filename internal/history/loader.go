package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/benmeehan/location-mapper/internal/models"
	"github.com/benmeehan/location-mapper/pkg/file"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// rawLocation is the wire shape of one entry in the export's "locations"
// array. Coordinates are pointers so that absent fields can be told apart
// from zero values; every other field of the export is dropped.
type rawLocation struct {
	LatitudeE7  *float64        `json:"latitudeE7"`
	LongitudeE7 *float64        `json:"longitudeE7"`
	TimestampMs json.RawMessage `json:"timestampMs"`
	Timestamp   string          `json:"timestamp"`
}

// takeoutExport is the top-level wire shape of a location-history export.
type takeoutExport struct {
	Locations *[]rawLocation `json:"locations"`
}

// Loader reads a location-history JSON export into a Dataset.
type Loader struct {
	fileOps file.FileOperations
	logger  zerolog.Logger
}

// NewLoader creates a new Loader using the provided file operations handler.
func NewLoader(fileOps file.FileOperations, logger zerolog.Logger) *Loader {
	return &Loader{
		fileOps: fileOps,
		logger:  logger,
	}
}

// Load parses the export at filePath and returns a Dataset holding the
// transformed records in file order. The transform is batch-atomic: a
// single malformed record fails the whole load with a *FormatError, and
// any structural problem with the document does the same.
func (l *Loader) Load(filePath string) (*Dataset, error) {
	var export takeoutExport
	if err := l.fileOps.ReadJsonFile(filePath, &export); err != nil {
		// Truncated and empty documents surface from the decoder as
		// io.ErrUnexpectedEOF / io.EOF, not as *json.SyntaxError.
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
			errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, &FormatError{Reason: "document is not a location export: " + err.Error()}
		}
		return nil, pkgerrors.Wrap(err, "failed to read location export")
	}

	if export.Locations == nil {
		return nil, &FormatError{Reason: `missing "locations" key`}
	}

	records := make([]models.LocationRecord, 0, len(*export.Locations))
	for i, raw := range *export.Locations {
		rec, err := transformRecord(raw)
		if err != nil {
			var ferr *FormatError
			if errors.As(err, &ferr) {
				return nil, &FormatError{Reason: fmt.Sprintf("record %d: %s", i, ferr.Reason)}
			}
			return nil, err
		}
		records = append(records, rec)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("records", len(records)).
		Msg("Location history loaded")

	return NewDataset(records, l.logger), nil
}
