package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mmynk/roster/internal/models"
)

// renderPeople writes people to w as a table, CSV or Markdown.
func renderPeople(w io.Writer, people []models.Person, format string) error {
	switch format {
	case "", "table", "csv", "md", "markdown":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	if len(people) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "First name", "Last name", "Age"})
	for _, p := range people {
		t.AppendRow(table.Row{p.ID, p.FirstName, p.LastName, p.Age})
	}

	switch format {
	case "csv":
		t.RenderCSV()
	case "md", "markdown":
		t.RenderMarkdown()
	default:
		t.Render()
	}

	return nil
}
