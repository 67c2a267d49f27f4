package viz

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ewsmith/papergraph/internal/graph"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("viz").Parse(htmlTemplate))
}

// HTMLOptions configures HTML generation.
type HTMLOptions struct {
	// Layout selects the Cytoscape layout. "preset" uses the positions
	// computed by the layout engine; "cose" lets the browser re-run a
	// force simulation client-side.
	Layout string

	// Title overrides the page title.
	Title string

	// Offline embeds Cytoscape.js inline instead of loading it from the
	// CDN, so the page works without network access.
	Offline bool
}

// DefaultOptions returns default HTML generation options.
func DefaultOptions() HTMLOptions {
	return HTMLOptions{Layout: "preset", Title: "Paper Graph", Offline: false}
}

// ValidLayouts lists the supported layout names.
var ValidLayouts = []string{"preset", "cose", "circle", "grid"}

// GenerateHTML generates a self-contained HTML page for the graph.
func GenerateHTML(nodes []graph.Node, edges []graph.Edge, opts HTMLOptions) (string, error) {
	if err := validateLayout(opts.Layout); err != nil {
		return "", err
	}
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}

	if len(nodes) == 0 {
		return generateEmptyHTML(), nil
	}

	graphJSON, err := ToCytoscapeJSON(nodes, edges)
	if err != nil {
		return "", err
	}

	layout := opts.Layout
	if layout == "" {
		layout = "preset"
	}

	data := templateData{
		Title:     opts.Title,
		GraphJSON: template.JS(graphJSON),
		Layout:    layout,
		ScriptTag: template.HTML(buildScriptTag(opts.Offline)),
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// validateLayout checks if the layout option is valid.
func validateLayout(layout string) error {
	switch layout {
	case "", "preset", "cose", "circle", "grid":
		return nil
	default:
		return fmt.Errorf("invalid layout %q: must be preset, cose, circle, or grid", layout)
	}
}

// templateData holds data for the HTML template.
type templateData struct {
	Title     string
	GraphJSON template.JS
	Layout    string
	ScriptTag template.HTML
}

// buildScriptTag returns either an inline script or a CDN reference.
func buildScriptTag(offline bool) string {
	if offline {
		return "<script>" + cytoscapeJS + "</script>"
	}
	return `<script src="https://unpkg.com/cytoscape@3/dist/cytoscape.min.js"></script>`
}

// generateEmptyHTML returns HTML for an empty graph state.
func generateEmptyHTML() string {
	return `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Paper Graph - Empty</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex;
      justify-content: center;
      align-items: center;
      height: 100vh;
      margin: 0;
      background: #f5f5f5;
    }
    .empty-state { text-align: center; color: #666; }
    .empty-state h2 { margin-bottom: 0.5em; color: #333; }
    .empty-state code { background: #e0e0e0; padding: 2px 6px; border-radius: 3px; }
  </style>
</head>
<body>
  <div class="empty-state">
    <h2>No graph data</h2>
    <p>Your library doesn't have any records yet.</p>
    <p>Import records using <code>papergraph import</code></p>
  </div>
</body>
</html>`
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  {{.ScriptTag}}
  <style>
    * { box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      padding: 0;
      background: #f5f5f5;
    }
    #cy { width: 100%; height: 100vh; background: white; }
    #tooltip {
      position: absolute;
      display: none;
      background: white;
      border: 1px solid #ccc;
      border-radius: 4px;
      padding: 8px 12px;
      box-shadow: 0 2px 8px rgba(0,0,0,0.15);
      max-width: 300px;
      font-size: 13px;
      z-index: 1000;
      pointer-events: none;
    }
    #tooltip .type { font-size: 10px; text-transform: uppercase; color: #888; margin-bottom: 4px; }
    #tooltip .label { font-weight: bold; }
  </style>
</head>
<body>
  <div id="cy"></div>
  <div id="tooltip"></div>
  <script>
    (function() {
      const graphData = {{.GraphJSON}};
      const layout = "{{.Layout}}";

      const cy = cytoscape({
        container: document.getElementById('cy'),
        elements: graphData,
        style: [
          {
            selector: 'node',
            style: {
              'background-color': 'data(color)',
              'label': 'data(label)',
              'color': '#333',
              'font-size': '10px',
              'text-valign': 'bottom',
              'text-margin-y': '5px',
              'width': 'data(size)',
              'height': 'data(size)'
            }
          },
          {
            selector: 'node[type="paper"]',
            style: { 'shape': 'ellipse' }
          },
          {
            selector: 'node[type="author"]',
            style: { 'shape': 'round-rectangle' }
          },
          {
            selector: 'node[type="material"]',
            style: { 'shape': 'diamond' }
          },
          {
            selector: 'node[type="organism"]',
            style: { 'shape': 'hexagon' }
          },
          {
            selector: 'edge[type="authored"]',
            style: { 'line-color': '#f28e2b', 'curve-style': 'bezier', 'width': 2 }
          },
          {
            selector: 'edge[type="uses_material"]',
            style: { 'line-color': '#59a14f', 'curve-style': 'bezier', 'width': 2 }
          },
          {
            selector: 'edge[type="studies_organism"]',
            style: { 'line-color': '#e15759', 'curve-style': 'bezier', 'width': 2 }
          },
          {
            selector: 'edge',
            style: {
              'line-color': '#95A5A6',
              'curve-style': 'bezier',
              'width': 'mapData(strength, 0, 1, 1, 4)',
              'opacity': 0.7
            }
          }
        ],
        layout: { name: layout, fit: true, padding: 30 }
      });

      const tooltip = document.getElementById('tooltip');
      cy.on('mouseover', 'node', function(evt) {
        const d = evt.target.data();
        tooltip.innerHTML =
          '<div class="type">' + d.type + '</div>' +
          '<div class="label">' + d.label + '</div>' +
          '<div>weight ' + d.weight + '</div>';
        tooltip.style.display = 'block';
      });
      cy.on('mouseout', 'node', function() {
        tooltip.style.display = 'none';
      });
      cy.on('mousemove', function(evt) {
        tooltip.style.left = (evt.originalEvent.pageX + 12) + 'px';
        tooltip.style.top = (evt.originalEvent.pageY + 12) + 'px';
      });
    })();
  </script>
</body>
</html>`

// cytoscapeJS holds the bundled Cytoscape.js source for offline pages; a
// build with the vendored asset populates it via embed.
var cytoscapeJS string
