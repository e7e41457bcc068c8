package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"weather-cli/forecast"
	"weather-cli/models"
)

// Header is the fixed column order of the forecast table
var Header = table.Row{"Time", "Temperature", "Relative Humidity", "Apparent Temperature"}

// Render writes a blank line, the summary line and the hourly table to w.
// Columns of different lengths are rejected before anything is written.
func Render(w io.Writer, summary string, cols *forecast.Columns) error {
	if cols == nil {
		return fmt.Errorf("%w: no columns to render", models.ErrMalformedResponse)
	}
	n := len(cols.Times)
	if len(cols.Temperatures) != n || len(cols.Humidity) != n || len(cols.ApparentTemperatures) != n {
		return fmt.Errorf("%w: column lengths differ (%d/%d/%d/%d)", models.ErrMalformedResponse,
			n, len(cols.Temperatures), len(cols.Humidity), len(cols.ApparentTemperatures))
	}

	t := table.NewWriter()
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(Header)
	for i := 0; i < n; i++ {
		t.AppendRow(table.Row{cols.Times[i], cols.Temperatures[i], cols.Humidity[i], cols.ApparentTemperatures[i]})
	}

	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", summary, t.Render()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
