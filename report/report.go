package report

import (
	"fmt"
	"sort"

	"github.com/countywise-org/countywise/demographics"
)

// ============================================================================
// REPORT BUILDERS — Tables and headlines over the analytics core
// ============================================================================
// Builders call the demographics functions and format the results; they
// never compute aggregates themselves. Row order is deterministic: state
// tables sort by state code, county tables preserve the input order the
// filters produced.
// ============================================================================

// BuildStateTable produces one row per state: county count, total 2014
// population, and the share of that population below the poverty level.
func BuildStateTable(counties []demographics.County) *TableData {
	columns := []Column{
		{Key: "state", Label: "State", Type: "text", Align: "left"},
		{Key: "counties", Label: "Counties", Type: "number", Align: "center"},
		{Key: "population", Label: "2014 Population", Type: "number", Align: "right"},
		{Key: "poverty", Label: "Below Poverty", Type: "percent", Align: "right"},
	}

	states := uniqueStates(counties)
	rows := make([][]string, 0, len(states))
	for _, state := range states {
		inState := demographics.FilterByState(counties, state)
		rows = append(rows, []string{
			state,
			fmt.Sprintf("%d", len(inState)),
			FormatInt(demographics.TotalPopulation(inState)),
			FormatPercent(demographics.PercentBelowPoverty(inState)),
		})
	}

	return &TableData{
		Title:   "Population by state",
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("Total (%d counties)", len(counties)),
			Values: map[string]string{
				"population": FormatInt(demographics.TotalPopulation(counties)),
				"poverty":    FormatPercent(demographics.PercentBelowPoverty(counties)),
			},
		},
	}
}

// BuildCountyTable produces one row per county, preserving input order.
// Used for threshold-filter listings.
func BuildCountyTable(title string, counties []demographics.County) *TableData {
	columns := []Column{
		{Key: "county", Label: "County", Type: "text", Align: "left"},
		{Key: "state", Label: "State", Type: "text", Align: "left"},
		{Key: "population", Label: "2014 Population", Type: "number", Align: "right"},
		{Key: "poverty", Label: "Below Poverty", Type: "percent", Align: "right"},
	}

	rows := make([][]string, 0, len(counties))
	for _, c := range counties {
		rows = append(rows, []string{
			c.Name,
			c.State,
			FormatInt(c.Population.Total2014),
			FormatPercent(c.Income.BelowPoverty),
		})
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("%d counties", len(counties)),
			Values: map[string]string{
				"population": FormatInt(demographics.TotalPopulation(counties)),
			},
		},
	}
}

// BuildEducationBreakdown lists every education category present in the
// input with the share of the total population holding it, one row per
// label in sorted order.
func BuildEducationBreakdown(counties []demographics.County) *TableData {
	return breakdownTable("Population by education level", counties,
		func(c demographics.County) demographics.Table { return c.Education },
		demographics.PercentByEducation)
}

// BuildEthnicityBreakdown lists every ethnicity category present in the
// input with its share of the total population, one row per label in
// sorted order.
func BuildEthnicityBreakdown(counties []demographics.County) *TableData {
	return breakdownTable("Population by ethnicity", counties,
		func(c demographics.County) demographics.Table { return c.Ethnicities },
		demographics.PercentByEthnicity)
}

func breakdownTable(title string, counties []demographics.County, tableOf func(demographics.County) demographics.Table, percent func([]demographics.County, string) float64) *TableData {
	columns := []Column{
		{Key: "label", Label: "Category", Type: "text", Align: "left"},
		{Key: "share", Label: "Share", Type: "percent", Align: "right"},
	}

	// Union of the labels across counties; Labels fixes the row order.
	union := make(demographics.Table)
	for _, c := range counties {
		for label, pct := range tableOf(c) {
			union[label] = pct
		}
	}

	labels := union.Labels()
	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, []string{label, FormatPercent(percent(counties, label))})
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("%d counties", len(counties)),
		},
	}
}

// BuildEducationText returns the share of the population holding the given
// education level as a headline value.
func BuildEducationText(counties []demographics.County, educationKey string) *TextData {
	return percentText(demographics.PercentByEducation(counties, educationKey), len(counties))
}

// BuildEthnicityText returns the share of the population of the given
// ethnicity as a headline value.
func BuildEthnicityText(counties []demographics.County, ethnicityKey string) *TextData {
	return percentText(demographics.PercentByEthnicity(counties, ethnicityKey), len(counties))
}

// BuildPovertyText returns the share of the population below the poverty
// level as a headline value.
func BuildPovertyText(counties []demographics.County) *TextData {
	return percentText(demographics.PercentBelowPoverty(counties), len(counties))
}

func percentText(pct float64, count int) *TextData {
	return &TextData{
		Value:    FormatPercent(pct),
		RawValue: pct,
		Unit:     "percent",
		Count:    count,
	}
}

// uniqueStates returns the distinct state codes in sorted order.
func uniqueStates(counties []demographics.County) []string {
	seen := make(map[string]bool)
	var states []string
	for _, c := range counties {
		if !seen[c.State] {
			seen[c.State] = true
			states = append(states, c.State)
		}
	}
	sort.Strings(states)
	return states
}

// ============================================================================
// FORMATTING
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// FormatPercent formats a 0–100 percentage with one decimal place.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
