package server

import (
	"fmt"
	"github.com/rycus86/mbta-route-tables/pkg/tables"
	"html/template"
	"io"
	"regexp"
	"sort"
	"strings"
	"text/tabwriter"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>{{.Title}}</title>
{{- if .Styles}}
	<style>{{.Styles}}</style>
{{- end}}
</head>
<body>
<h1>{{.Title}}</h1>
{{- if .Table.Message}}
<p class="message">{{.Table.Message}}</p>
{{- else}}
<table>
{{- if .Table.Header}}
	<thead><tr>{{range .Table.Header}}<th>{{.}}</th>{{end}}</tr></thead>
{{- end}}
	<tbody>
{{- range .Table.Rows}}
		<tr{{with .Classes}} class="{{join . " "}}"{{end}}>{{range .Cells}}<td>{{if .Link}}<a href="{{scheduleURL .Link.Target}}">{{.Link.Label}}</a>{{else}}{{.Text}}{{end}}</td>{{end}}</tr>
{{- end}}
	</tbody>
</table>
{{- end}}
</body>
</html>
`

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

type Renderer struct {
	tmpl *template.Template
}

type page struct {
	Title  string
	Styles template.CSS
	Table  tables.Table
}

// NewRenderer parses the page template; scheduleURL turns a route id into the link of its schedule.
func NewRenderer(scheduleURL func(routeID string) string) (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"join":        strings.Join,
		"scheduleURL": scheduleURL,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, err
	}

	return &Renderer{tmpl: tmpl}, nil
}

func (renderer *Renderer) Render(writer io.Writer, title string, table tables.Table) error {
	data := page{Title: title, Table: table}
	if table.Stylesheet == tables.RouteColorsStylesheet {
		data.Styles = routeColorStyles(table)
	}
	return renderer.tmpl.Execute(writer, data)
}

// routeColorStyles emits a rule for every color class used in the table.
// Only six-digit hex colors make it into the stylesheet.
func routeColorStyles(table tables.Table) template.CSS {
	rules := map[string]string{}

	for _, row := range table.Rows {
		for _, class := range row.Classes {
			if color := strings.TrimPrefix(class, "text-color-"); color != class {
				if hexColor.MatchString(color) {
					rules[class] = fmt.Sprintf(".%s { color: #%s; }", class, color)
				}
			} else if color := strings.TrimPrefix(class, "color-"); color != class {
				if hexColor.MatchString(color) {
					rules[class] = fmt.Sprintf(".%s { background-color: #%s; }", class, color)
				}
			}
		}
	}

	classes := make([]string, 0, len(rules))
	for class := range rules {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	var b strings.Builder
	for _, class := range classes {
		b.WriteString(rules[class])
		b.WriteString("\n")
	}

	return template.CSS(b.String())
}

// WriteText prints a table as aligned plain text columns.
func WriteText(writer io.Writer, table tables.Table) error {
	if table.Message != "" {
		_, err := fmt.Fprintln(writer, table.Message)
		return err
	}

	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if len(table.Header) > 0 {
		fmt.Fprintln(tw, strings.Join(table.Header, "\t"))
	}

	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			if cell.Link != nil {
				cells = append(cells, fmt.Sprintf("%s (%s)", cell.Link.Label, cell.Link.Target))
			} else {
				cells = append(cells, cell.Text)
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
