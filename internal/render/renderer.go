package render

import (
	"errors"
	"fmt"

	"github.com/benmeehan/location-mapper/internal/models"
	"github.com/benmeehan/location-mapper/pkg/file"
	"github.com/pkg/browser"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// RenderService builds interactive map figures from location records and
// emits them on a configurable output channel.
type RenderService struct {
	fileOps file.FileOperations
	logger  zerolog.Logger
}

// NewRenderService creates a new RenderService using the provided file
// operations handler.
func NewRenderService(fileOps file.FileOperations, logger zerolog.Logger) *RenderService {
	return &RenderService{
		fileOps: fileOps,
		logger:  logger,
	}
}

// BuildFigure constructs the declarative figure for the given records:
// one scattermapbox trace with a point per record, hover text equal to
// the record's display timestamp, and a layout centered on the record at
// index floor(len/2). Centering on the midpoint index rather than a
// geographic centroid can miscenter non-contiguous filtered views.
func (r *RenderService) BuildFigure(records []models.LocationRecord, opts Options) (*Figure, error) {
	if len(records) == 0 {
		return nil, errors.New("cannot build a figure from an empty view")
	}

	lat := make([]float64, len(records))
	lon := make([]float64, len(records))
	text := make([]string, len(records))
	for i, rec := range records {
		lat[i] = rec.LatitudeE7
		lon[i] = rec.LongitudeE7
		text[i] = rec.DisplayTimestamp
	}

	mid := records[len(records)/2]

	fig := &Figure{
		Data: []ScatterLayer{
			{
				Type: "scattermapbox",
				Mode: opts.Mode,
				Lat:  lat,
				Lon:  lon,
				Text: text,
				Marker: Marker{
					Size:    opts.Marker.Size,
					Color:   opts.Marker.Color,
					Opacity: opts.Marker.Opacity,
				},
			},
		},
		Layout: Layout{
			Autosize:  true,
			Height:    opts.Layout.Height,
			Width:     opts.Layout.Width,
			Hovermode: "closest",
			Mapbox: Mapbox{
				AccessToken: opts.AccessToken,
				Bearing:     opts.Layout.Bearing,
				Center:      Center{Lat: mid.LatitudeE7, Lon: mid.LongitudeE7},
				Pitch:       opts.Layout.Pitch,
				Zoom:        opts.Layout.Zoom,
				Style:       opts.Layout.Style,
			},
		},
	}

	return fig, nil
}

// Render builds the figure for the given records and emits it on the
// channel selected by opts.Output. The constructed figure is returned for
// further inspection or export by the caller.
func (r *RenderService) Render(records []models.LocationRecord, opts Options) (*Figure, error) {
	fig, err := r.BuildFigure(records, opts)
	if err != nil {
		return nil, err
	}

	switch opts.Output {
	case OutputNone:
		// Build only.

	case OutputJSON:
		if err := r.fileOps.WriteJsonFile(opts.OutputFile, fig); err != nil {
			return nil, pkgerrors.Wrap(err, "failed to write figure JSON")
		}

	case OutputHTML:
		if err := r.writePage(fig, opts.OutputFile); err != nil {
			return nil, err
		}

	case OutputBrowser:
		if err := r.writePage(fig, opts.OutputFile); err != nil {
			return nil, err
		}
		if err := browser.OpenFile(opts.OutputFile); err != nil {
			return nil, pkgerrors.Wrap(err, "failed to open browser")
		}

	default:
		return nil, fmt.Errorf("unknown output channel %q", opts.Output)
	}

	r.logger.Info().
		Int("points", len(records)).
		Str("output", opts.Output).
		Msg("Map figure rendered")

	return fig, nil
}

// writePage renders the figure into a self-contained HTML page and writes
// it to path.
func (r *RenderService) writePage(fig *Figure, path string) error {
	page, err := renderPage(fig)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to render figure page")
	}
	if err := r.fileOps.WriteFile(path, page); err != nil {
		return pkgerrors.Wrap(err, "failed to write figure page")
	}
	return nil
}
