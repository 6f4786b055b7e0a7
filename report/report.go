// Package report renders a static HTML battle summary as a templ.Component.
// The markup itself comes from html/template rather than generated .templ
// code (there's no codegen step in this build), but the component is a real
// templ.ComponentFunc so it composes with anything else in the tree that
// expects the templ.Component contract.
package report

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/nstehr/battlesim/battle"
)

var page = template.Must(template.New("battle-summary").Parse(`<!DOCTYPE html>
<html>
<head><title>Battle Summary</title></head>
<body>
<h1>Battle Summary</h1>
<p>Winner: {{if .Outcome.Winner}}Army {{.Outcome.Winner}}{{else}}Draw{{end}}</p>
<p>Ticks: {{.Outcome.Ticks}}</p>
<h2>Events</h2>
<ul>
{{range .Events}}<li>[tick {{.Tick}}] {{.Kind}}: {{.Detail}}</li>
{{end}}
</ul>
</body>
</html>
`))

type pageData struct {
	Outcome battle.Outcome
	Events  []battle.Event
}

// Component builds the battle summary as a templ.Component, for callers
// that want to compose it with other components rather than render it
// directly to a writer.
func Component(outcome battle.Outcome, events []battle.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return page.Execute(w, pageData{Outcome: outcome, Events: events})
	})
}

// RenderHTML writes a single static HTML page summarizing the battle
// outcome and its event log.
func RenderHTML(ctx context.Context, w io.Writer, outcome battle.Outcome, events []battle.Event) error {
	return Component(outcome, events).Render(ctx, w)
}
