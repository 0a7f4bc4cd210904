package utils

import (
	"github.com/benmeehan/location-mapper/pkg/file"
)

// Config represents the structure of the configuration file.
type Config struct {
	History struct {
		File string `yaml:"file"` // Path to the location-history JSON export
	} `yaml:"history"`

	Filter struct {
		Enabled bool   `yaml:"enabled"` // Apply the time-range filter below after load
		From    string `yaml:"from"`    // Inclusive lower bound, RFC3339 (empty = unbounded)
		To      string `yaml:"to"`      // Inclusive upper bound, RFC3339 (empty = unbounded)
	} `yaml:"filter"`

	Map struct {
		AccessToken     string  `yaml:"access_token"`      // Access token for the mapping provider
		AccessTokenFile string  `yaml:"access_token_file"` // Path to a file holding the token, used when access_token is empty
		Style           string  `yaml:"style"`             // Named visual style (default "outdoors")
		Zoom        float64 `yaml:"zoom"`         // Initial zoom level (default 7)
		Height      int     `yaml:"height"`       // Canvas height in pixels (default 800)
		Width       int     `yaml:"width"`        // Canvas width in pixels (default 1200)

		Marker struct {
			Size    int     `yaml:"size"`    // Marker size in pixels (default 10)
			Color   string  `yaml:"color"`   // CSS color (default "rgb(255,0,0)")
			Opacity float64 `yaml:"opacity"` // Marker opacity (default 0.3)
		} `yaml:"marker"`
	} `yaml:"map"`

	Render struct {
		Output     string `yaml:"output"`      // Output channel: html, json, browser or none (default html)
		OutputFile string `yaml:"output_file"` // Target path for the rendered figure (default "map.html")
	} `yaml:"render"`
}

// LoadConfig loads the YAML configuration from the specified file.
// It returns a pointer to the Config struct and an error if loading fails.
func LoadConfig(filename string, fileClient file.FileOperations) (*Config, error) {
	var config Config
	err := fileClient.ReadYamlFile(filename, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}
