package render

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/google/uuid"
)

// plotlyURL is where the generated page loads the plotting runtime from.
const plotlyURL = "https://cdn.plot.ly/plotly-2.27.0.min.js"

var pageTemplate = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<script src="{{.PlotlyURL}}"></script>
</head>
<body>
<div id="{{.ContainerID}}"></div>
<script>
var figure = {{.Figure}};
Plotly.newPlot("{{.ContainerID}}", figure.data, figure.layout);
</script>
</body>
</html>
`))

type pageData struct {
	PlotlyURL   string
	ContainerID string
	Figure      template.JS
}

// renderPage serializes the figure into a self-contained HTML page. The
// container id is uniquified so that multiple pages can be embedded side
// by side without colliding.
func renderPage(fig *Figure) (string, error) {
	doc, err := json.Marshal(fig)
	if err != nil {
		return "", err
	}

	data := pageData{
		PlotlyURL:   plotlyURL,
		ContainerID: "figure-" + uuid.New().String(),
		Figure:      template.JS(doc),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
