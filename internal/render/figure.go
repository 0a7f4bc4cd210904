package render

// The types below mirror the JSON schema the external plotly.js renderer
// consumes. Field names and nesting are fixed by that collaborator and
// must not change.

// Marker is the shared point style of a scatter layer.
type Marker struct {
	Size    int     `json:"size"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// ScatterLayer is one scattermapbox trace: a point per record with
// per-point hover text and a shared marker style.
type ScatterLayer struct {
	Type   string    `json:"type"`
	Mode   string    `json:"mode"`
	Lat    []float64 `json:"lat"`
	Lon    []float64 `json:"lon"`
	Text   []string  `json:"text"`
	Marker Marker    `json:"marker"`
}

// Center is the initial map center.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Mapbox configures the map canvas: credential, style, camera.
type Mapbox struct {
	AccessToken string  `json:"accesstoken"`
	Bearing     int     `json:"bearing"`
	Center      Center  `json:"center"`
	Pitch       int     `json:"pitch"`
	Zoom        float64 `json:"zoom"`
	Style       string  `json:"style"`
}

// Layout is the figure-level layout description.
type Layout struct {
	Autosize  bool   `json:"autosize"`
	Height    int    `json:"height"`
	Width     int    `json:"width"`
	Hovermode string `json:"hovermode"`
	Mapbox    Mapbox `json:"mapbox"`
}

// Figure is the complete declarative figure handed to the renderer.
type Figure struct {
	Data   []ScatterLayer `json:"data"`
	Layout Layout         `json:"layout"`
}
