package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/countywise-org/countywise/dataset"
	"github.com/countywise-org/countywise/demographics"
	"github.com/countywise-org/countywise/report"
)

// ============================================================================
// COUNTYWISE CLI — County demographics reports
// ============================================================================

const version = "0.1.0"

func main() {
	filePath := flag.String("file", "", "Path to a county feed file, JSON or CSV (default: embedded dataset)")
	state := flag.String("state", "", "Restrict to a two-letter state code (exact match)")
	education := flag.String("education", "", "Education label, e.g. \"Bachelor's Degree or Higher\"")
	ethnicity := flag.String("ethnicity", "", "Ethnicity label, e.g. \"Hispanic or Latino\"")
	poverty := flag.Bool("poverty", false, "Report on the below-poverty share")
	breakdown := flag.String("breakdown", "", "Per-category table for a subject: education or ethnicity")
	above := flag.String("above", "", "List counties whose value is strictly above this threshold")
	below := flag.String("below", "", "List counties whose value is strictly below this threshold")
	format := flag.String("format", "text", "Output format: json, pretty, text, csv")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	verbose := flag.Bool("verbose", false, "Log loading details")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `countywise — county demographics reports

Usage:
  countywise                                               state summary table
  countywise --state CA                                    summary for one state
  countywise --education "Bachelor's Degree or Higher"     percent headline
  countywise --poverty --above 15 --format csv             threshold listing
  countywise --breakdown ethnicity --state CA              per-category shares
  countywise --file counties.csv --ethnicity "Hispanic or Latino" --below 5

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  text      Human-readable table or headline (default)
  json      Full JSON output
  pretty    Pretty-printed JSON
  csv       Table data as CSV (ready for Sheets/Excel)
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("countywise %s\n", version)
		os.Exit(0)
	}

	if err := validateFlags(*education, *ethnicity, *poverty, *breakdown, *above, *below); err != nil {
		fatalf("%v", err)
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Load counties ─────────────────────────────────────────────────────
	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fatalf("Failed to build logger: %v", err)
		}
		defer l.Sync()
		logger = l
	}

	loader := dataset.New(dataset.WithLogger(logger))
	var counties []demographics.County
	var err error
	if *filePath != "" {
		counties, err = loader.LoadFile(*filePath)
	} else {
		counties, err = loader.Load()
	}
	if err != nil {
		fatalf("Failed to load county data: %v", err)
	}

	if *state != "" {
		counties = demographics.FilterByState(counties, *state)
		if *verbose {
			log.Printf("%d counties after state filter (%s)", len(counties), *state)
		}
	}

	// ── Build the report ──────────────────────────────────────────────────
	threshold, thresholdSet, thresholdAbove := parseThreshold(*above, *below)

	switch {
	case *breakdown == "education":
		renderTable(writer, report.BuildEducationBreakdown(counties), *format)

	case *breakdown == "ethnicity":
		renderTable(writer, report.BuildEthnicityBreakdown(counties), *format)

	case thresholdSet:
		table := thresholdTable(counties, *education, *ethnicity, *poverty, threshold, thresholdAbove)
		renderTable(writer, table, *format)

	case *education != "":
		renderText(writer, report.BuildEducationText(counties, *education), *format)

	case *ethnicity != "":
		renderText(writer, report.BuildEthnicityText(counties, *ethnicity), *format)

	case *poverty:
		renderText(writer, report.BuildPovertyText(counties), *format)

	default:
		renderTable(writer, report.BuildStateTable(counties), *format)
	}
}

// validateFlags rejects flag combinations that have no single meaning. A run
// reports on at most one subject, filters in at most one direction, and a
// breakdown run carries no subject or threshold flags at all.
func validateFlags(education, ethnicity string, poverty bool, breakdown, above, below string) error {
	subjects := 0
	if education != "" {
		subjects++
	}
	if ethnicity != "" {
		subjects++
	}
	if poverty {
		subjects++
	}
	if subjects > 1 {
		return errors.New("--education, --ethnicity, and --poverty are mutually exclusive")
	}
	if above != "" && below != "" {
		return errors.New("--above and --below are mutually exclusive")
	}
	if breakdown != "" {
		if breakdown != "education" && breakdown != "ethnicity" {
			return fmt.Errorf("--breakdown subject must be education or ethnicity, got %q", breakdown)
		}
		if subjects > 0 || above != "" || below != "" {
			return errors.New("--breakdown cannot be combined with subject or threshold flags")
		}
	}
	return nil
}

// parseThreshold reads the --above/--below values; exactly one may be set.
func parseThreshold(above, below string) (value float64, set bool, isAbove bool) {
	raw, isAbove := below, false
	if above != "" {
		raw, isAbove = above, true
	}
	if raw == "" {
		return 0, false, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fatalf("Bad threshold %q: %v", raw, err)
	}
	return v, true, isAbove
}

// thresholdTable dispatches a strict threshold filter and wraps the
// matching counties in a render-ready table.
func thresholdTable(counties []demographics.County, education, ethnicity string, poverty bool, threshold float64, isAbove bool) *report.TableData {
	direction := "below"
	if isAbove {
		direction = "above"
	}

	var matched []demographics.County
	var subject string
	switch {
	case education != "":
		subject = education
		if isAbove {
			matched = demographics.EducationAbove(counties, education, threshold)
		} else {
			matched = demographics.EducationBelow(counties, education, threshold)
		}
	case ethnicity != "":
		subject = ethnicity
		if isAbove {
			matched = demographics.EthnicityAbove(counties, ethnicity, threshold)
		} else {
			matched = demographics.EthnicityBelow(counties, ethnicity, threshold)
		}
	case poverty:
		subject = "Persons Below Poverty Level"
		if isAbove {
			matched = demographics.PovertyAbove(counties, threshold)
		} else {
			matched = demographics.PovertyBelow(counties, threshold)
		}
	default:
		fatalf("--above/--below require --education, --ethnicity, or --poverty")
	}

	title := fmt.Sprintf("Counties with %s %s %.1f%%", subject, direction, threshold)
	return report.BuildCountyTable(title, matched)
}

// ============================================================================
// RENDERING
// ============================================================================

func renderTable(w *os.File, table *report.TableData, format string) {
	switch format {
	case "csv":
		writeTableCSV(w, table)
	case "json", "pretty":
		writeJSON(w, table, format)
	default:
		writeTableText(w, table)
	}
}

func renderText(w *os.File, text *report.TextData, format string) {
	switch format {
	case "json", "pretty":
		writeJSON(w, text, format)
	case "csv":
		cw := csv.NewWriter(w)
		defer cw.Flush()
		cw.Write([]string{"Value", "Unit", "Counties"})
		cw.Write([]string{text.Value, text.Unit, strconv.Itoa(text.Count)})
	default:
		fmt.Fprintf(w, "%s (across %d counties)\n", text.Value, text.Count)
	}
}

func writeTableText(w *os.File, table *report.TableData) {
	if table.Title != "" {
		fmt.Fprintln(w, table.Title)
	}

	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col.Label)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	header := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = pad(col.Label, widths[i])
	}
	fmt.Fprintln(w, strings.Join(header, "  "))

	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}

	if table.Summary != nil {
		fmt.Fprintf(w, "%s", table.Summary.Label)
		for _, col := range table.Columns {
			if v, ok := table.Summary.Values[col.Key]; ok {
				fmt.Fprintf(w, "  %s: %s", col.Label, v)
			}
		}
		fmt.Fprintln(w)
	}
}

func writeTableCSV(w *os.File, table *report.TableData) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col.Label
	}
	cw.Write(header)
	for _, row := range table.Rows {
		cw.Write(row)
	}
}

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
