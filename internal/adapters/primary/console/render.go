package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"diamond-price-service/internal/core/domain"
)

// Renderer prints the form's output primitives to a terminal:
// success, warning and error messages, and a tabular input preview.
type Renderer struct {
	out     io.Writer
	success *color.Color
	warning *color.Color
	failure *color.Color
	muted   *color.Color
}

func NewRenderer(out io.Writer, colored bool) *Renderer {
	r := &Renderer{
		out:     out,
		success: color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
		muted:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.success, r.warning, r.failure, r.muted} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) Title(schema domain.FormSchema) {
	fmt.Fprintln(r.out, schema.Title)
	r.muted.Fprintln(r.out, schema.Description)
}

func (r *Renderer) Success(msg string) {
	r.success.Fprintln(r.out, msg)
}

func (r *Renderer) Warning(msg string) {
	r.warning.Fprintln(r.out, msg)
}

// Error prints msg and, when present, the diagnostic detail below it.
func (r *Renderer) Error(msg, detail string) {
	r.failure.Fprintln(r.out, msg)
	if detail != "" {
		r.muted.Fprintln(r.out, detail)
	}
}

// Failure renders err, surfacing DiagnosticError detail.
func (r *Renderer) Failure(err error) {
	var diag *domain.DiagnosticError
	if errors.As(err, &diag) {
		r.Error(diag.Message, diag.Detail)
		return
	}
	r.Error(err.Error(), "")
}

// Status renders a load result: which codec read the artifact, or why none could.
func (r *Renderer) Status(result domain.LoadResult) {
	switch res := result.(type) {
	case domain.Loaded:
		r.Success(fmt.Sprintf("Artifact %s loaded with the %s codec", res.Path, res.Codec))
	case domain.Failed:
		if res.Detail == "" {
			r.Warning(res.Message)
			return
		}
		r.Error(res.Message, res.Detail)
	}
}

func (r *Renderer) Table(columns []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(columns))
	for _, col := range columns {
		header = append(header, col)
	}
	t.AppendHeader(header)

	for _, row := range rows {
		cells := make(table.Row, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		t.AppendRow(cells)
	}
	t.Render()
}
