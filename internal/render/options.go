package render

// Output channels for a render call.
const (
	OutputHTML    = "html"    // Write a self-contained HTML page
	OutputJSON    = "json"    // Write the figure JSON document
	OutputBrowser = "browser" // Write the HTML page, then open it with the platform's default opener
	OutputNone    = "none"    // Build the figure only, emit nothing
)

// MarkerStyle configures the shared point marker.
type MarkerStyle struct {
	Size    int     // Marker size in pixels (default 10)
	Color   string  // CSS color (default "rgb(255,0,0)")
	Opacity float64 // Marker opacity in (0, 1] (default 0.3)
}

// DefaultMarkerStyle returns a fresh MarkerStyle with the documented
// defaults. A new value is constructed per call so that callers can
// never share a mutable default.
func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{
		Size:    10,
		Color:   "rgb(255,0,0)",
		Opacity: 0.3,
	}
}

// LayoutOptions configures the map canvas and camera.
type LayoutOptions struct {
	Height  int     // Canvas height in pixels (default 800)
	Width   int     // Canvas width in pixels (default 1200)
	Style   string  // Named visual style of the map (default "outdoors")
	Zoom    float64 // Initial zoom level (default 7)
	Bearing int     // Camera bearing in degrees (default 0)
	Pitch   int     // Camera pitch in degrees (default 0)
}

// DefaultLayoutOptions returns a fresh LayoutOptions with the documented
// defaults.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		Height: 800,
		Width:  1200,
		Style:  "outdoors",
		Zoom:   7,
	}
}

// Options configures one render call.
type Options struct {
	Mode        string        // Trace mode (default "markers")
	Marker      MarkerStyle   // Shared marker style
	Layout      LayoutOptions // Canvas and camera configuration
	AccessToken string        // Access credential required by the mapping provider
	Output      string        // Output channel, one of the Output* constants (default OutputHTML)
	OutputFile  string        // Target path for the html/json/browser channels (default "map.html")
}

// DefaultOptions returns a fresh Options with the documented defaults.
// The access token has no default and must be supplied by the caller.
func DefaultOptions() Options {
	return Options{
		Mode:       "markers",
		Marker:     DefaultMarkerStyle(),
		Layout:     DefaultLayoutOptions(),
		Output:     OutputHTML,
		OutputFile: "map.html",
	}
}
