package view

import (
	"html/template"
	"io"
)

var listTemplate = template.Must(template.New("list").Parse(`<ul id="todo-list">
{{- range .Rows}}
<li class="{{.Class}}" data-id="{{.ID}}">
<input type="checkbox" class="{{.Toggle.ClassName}}" aria-label="{{.Toggle.Label}}"{{if .Toggle.Checked}} checked{{end}}>
<span class="{{.Text.ClassName}}" role="{{.Text.Role}}" aria-label="{{.Text.Label}}" contenteditable="{{.Text.Editable}}">{{.Text.Content}}</span>
<button class="{{.Delete.ClassName}}" aria-label="{{.Delete.Label}}">{{.Delete.Content}}</button>
</li>
{{- end}}
</ul>
<span id="items-left">{{.ItemsLeftLabel}}</span>
<nav class="filters" role="tablist">
{{- range .Filters}}
<button class="filter-btn{{if .Selected}} active{{end}}" data-filter="{{.Filter}}" role="tab" aria-selected="{{.AriaSelected}}">{{.Label}}</button>
{{- end}}
</nav>
<button id="clear-completed"{{if not .HasCompleted}} hidden{{end}}>Clear completed</button>
`))

// RenderHTML writes v as an HTML fragment. Text content is escaped.
func RenderHTML(w io.Writer, v View) error {
	return listTemplate.Execute(w, v)
}
