package main

import (
	"os"
	"strings"
	"time"

	"github.com/benmeehan/location-mapper/internal/history"
	"github.com/benmeehan/location-mapper/internal/render"
	"github.com/benmeehan/location-mapper/internal/utils"
	"github.com/benmeehan/location-mapper/pkg/file"
	"github.com/rs/zerolog"
)

func main() {
	// Set up structured logging on stderr
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()

	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Initialize file operations handler
	fileClient := file.NewFileService()

	// Load configuration from file
	config, err := utils.LoadConfig(configPath, fileClient)
	if err != nil {
		logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load configuration")
	}

	// The token can live in its own file to keep it out of the config
	if config.Map.AccessToken == "" && config.Map.AccessTokenFile != "" {
		token, err := fileClient.ReadFileRaw(config.Map.AccessTokenFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", config.Map.AccessTokenFile).Msg("Failed to read access token file")
		}
		config.Map.AccessToken = strings.TrimSpace(string(token))
	}

	// Load and transform the location history
	loader := history.NewLoader(fileClient, logger)
	dataset, err := loader.Load(config.History.File)
	if err != nil {
		logger.Fatal().Err(err).Str("file", config.History.File).Msg("Failed to load location history")
	}

	// Narrow the view to the configured time window, if any
	if config.Filter.Enabled {
		from, to, err := parseWindow(config)
		if err != nil {
			logger.Fatal().Err(err).Msg("Invalid filter window in configuration")
		}

		if err := dataset.Filter(dataset.TimeRangeMask(from, to)); err != nil {
			logger.Fatal().Err(err).Msg("Failed to apply time filter")
		}

		logger.Info().
			Int("kept", dataset.Len()).
			Int("loaded", dataset.SnapshotLen()).
			Msg("Time filter applied")
	}

	// Build and emit the map figure
	renderer := render.NewRenderService(fileClient, logger)
	if _, err := renderer.Render(dataset.Records(), renderOptions(config)); err != nil {
		logger.Fatal().Err(err).Msg("Failed to render map")
	}
}

// parseWindow parses the configured RFC3339 filter bounds. Empty bounds
// stay zero, which TimeRangeMask treats as unbounded.
func parseWindow(config *utils.Config) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error

	if config.Filter.From != "" {
		from, err = time.Parse(time.RFC3339, config.Filter.From)
		if err != nil {
			return from, to, err
		}
	}
	if config.Filter.To != "" {
		to, err = time.Parse(time.RFC3339, config.Filter.To)
		if err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}

// renderOptions merges the configuration onto the render defaults. Only
// fields the config actually sets override a default.
func renderOptions(config *utils.Config) render.Options {
	opts := render.DefaultOptions()
	opts.AccessToken = config.Map.AccessToken

	if config.Map.Style != "" {
		opts.Layout.Style = config.Map.Style
	}
	if config.Map.Zoom != 0 {
		opts.Layout.Zoom = config.Map.Zoom
	}
	if config.Map.Height != 0 {
		opts.Layout.Height = config.Map.Height
	}
	if config.Map.Width != 0 {
		opts.Layout.Width = config.Map.Width
	}
	if config.Map.Marker.Size != 0 {
		opts.Marker.Size = config.Map.Marker.Size
	}
	if config.Map.Marker.Color != "" {
		opts.Marker.Color = config.Map.Marker.Color
	}
	if config.Map.Marker.Opacity != 0 {
		opts.Marker.Opacity = config.Map.Marker.Opacity
	}
	if config.Render.Output != "" {
		opts.Output = config.Render.Output
	}
	if config.Render.OutputFile != "" {
		opts.OutputFile = config.Render.OutputFile
	}
	return opts
}
