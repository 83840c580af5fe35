package prof

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/tictoc/pkg"
)

// Table layout of the aggregated report.
const (
	nameWidth   = 60
	numberWidth = 20
	significant = 5
)

// aggregatedHeader names the columns of the aggregated table.
var aggregatedHeader = []string{
	"Description", "Calls", "Total s", "Avg s", "Min s", "Max s",
}

// rawHeader names the fields of the raw report.
var rawHeader = []string{"start_time", "description", "duration"}

// rawSeparator delimits fields of the raw report.
const rawSeparator = "; "

func (r report) writeStats(w io.Writer, stats []Stat) error {
	switch r.format {
	case FormatJSON:
		return writeJSON(w, stats)
	case FormatYAML:
		return writeYAML(w, stats)
	default:
		return write(w, formatTable(stats))
	}
}

func (r report) writeRecords(w io.Writer, recs []Record) error {
	switch r.format {
	case FormatJSON:
		return writeJSON(w, recs)
	case FormatYAML:
		return writeYAML(w, recs)
	default:
		return write(w, formatRaw(recs))
	}
}

// formatTable renders the fixed-width aggregated table.
func formatTable(stats []Stat) string {
	var sb strings.Builder

	sb.WriteString("\n\n")
	writeRow(&sb, aggregatedHeader...)

	for _, s := range stats {
		name := s.Name
		if s.Open > 0 {
			name += fmt.Sprintf(" [%s: %d]", OpenMarker, s.Open)
		}

		cells := []string{name, strconv.Itoa(s.Calls)}

		if s.Calls == 0 {
			for range 4 {
				cells = append(cells, OpenMarker)
			}
		} else {
			for _, v := range []float64{s.Total, s.Avg, s.Min, s.Max} {
				cells = append(cells, formatSeconds(v))
			}
		}

		writeRow(&sb, cells...)
	}

	sb.WriteString("\n")

	return sb.String()
}

// writeRow right-aligns the first cell in the name column and the rest in
// numeric columns. Cells wider than their column are not truncated.
func writeRow(sb *strings.Builder, cells ...string) {
	for i, c := range cells {
		width := numberWidth
		if i == 0 {
			width = nameWidth
		}

		fmt.Fprintf(sb, "%*s", width, c)
	}

	sb.WriteByte('\n')
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', significant, 64)
}

// formatRaw renders the semicolon-separated raw report.
func formatRaw(recs []Record) string {
	var sb strings.Builder

	sb.WriteString(strings.Join(rawHeader, rawSeparator))
	sb.WriteByte('\n')

	for _, r := range recs {
		d := OpenMarker
		if r.Duration != nil {
			d = strconv.FormatInt(*r.Duration, 10)
		}

		sb.WriteString(strings.Join(
			[]string{strconv.FormatInt(r.Start, 10), r.Name, d},
			rawSeparator,
		))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return pkg.ErrJSONMarshal.Wrap(err)
	}

	return write(w, string(data)+"\n")
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
	if err != nil {
		return pkg.ErrYAMLMarshal.Wrap(err)
	}

	return write(w, string(data))
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return pkg.ErrWrite.Wrap(err)
	}

	return nil
}
