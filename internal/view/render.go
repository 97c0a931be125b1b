package view

import (
	"html/template"
	"io"
)

var widgetTemplate = template.Must(template.New("batch").Parse(`<div class="batch" data-batch="{{.Batch}}">
  {{- if .Link}}
  <a class="batch-label" href="{{.Link}}">{{.Label}}</a>
  {{- else}}
  <span class="batch-label">{{.Label}}</span>
  {{- end}}
  {{- with .Panel}}
  {{- if eq .Kind "countdown"}}
  <span class="countdown{{with .Countdown}}{{if .Urgent}} urgent{{end}}{{end}}">
    <svg viewBox="0 0 36 36" class="progress"><circle cx="18" cy="18" r="16" pathLength="100" stroke-dasharray="{{with .Countdown}}{{printf "%.2f" .Progress}}{{else}}0{{end}} 100"/></svg>
    <span class="remaining">{{with .Countdown}}{{.Remaining}}{{end}}</span>
  </span>
  {{- else if eq .Kind "no_solution"}}
  <span class="no-solution">{{.Text}}</span>
  {{- else}}
  <a class="solution" href="{{.TxURL}}" title="{{.Solver}}">{{.TxLabel}}</a>
  {{- end}}
  {{- end}}
</div>
`))

// Render writes the HTML fragment of a snapshot.
func Render(w io.Writer, s Snapshot) error {
	return widgetTemplate.Execute(w, s)
}
