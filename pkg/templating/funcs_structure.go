package templating

import (
	"html/template"
	"strings"
)

// fragmentTemplates holds the markup for everything spliced into a region.
// Pool terms reach the page through these, so they are always HTML-escaped.
const fragmentTemplates = `
{{define "ticker_item"}}<span class="ticker-item ticker-{{lower .Category}}">{{.Text}}{{if .Trend}} <span class="ticker-trend">&#9650; {{.Trend}}%</span>{{end}}</span>{{end}}
{{define "momentum_row"}}<div class="momentum-row"><span class="momentum-label">{{.Label}}</span><span class="momentum-value">{{.Value}}</span></div>{{end}}
`

func (t *Templater) makeFuncMap() template.FuncMap {
	return template.FuncMap{
		"lower": strings.ToLower,
	}
}

func (t *Templater) parseFragments() error {
	tmpl, err := template.New("fragments").Funcs(t.makeFuncMap()).Parse(fragmentTemplates)
	if err != nil {
		return err
	}
	t.fragments = tmpl
	return nil
}

// renderEach executes the named fragment once per item and joins the
// results with a newline and the configured indent.
func renderEach[T any](t *Templater, name string, items []T) (string, error) {
	parts := make([]string, 0, len(items))
	var buf strings.Builder
	for _, item := range items {
		buf.Reset()
		if err := t.fragments.ExecuteTemplate(&buf, name, item); err != nil {
			return "", err
		}
		parts = append(parts, buf.String())
	}
	return strings.Join(parts, "\n"+t.config.FragmentIndent), nil
}

// RenderTicker renders ticker items as markup ready for a ticker region.
func (t *Templater) RenderTicker(items []TickerItem) (string, error) {
	return renderEach(t, "ticker_item", items)
}

// RenderMomentum renders the three momentum rows.
func (t *Templater) RenderMomentum(stats MomentumStats) (string, error) {
	return renderEach(t, "momentum_row", stats.Rows())
}
