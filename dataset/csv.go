package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/countywise-org/countywise/demographics"
)

// ============================================================================
// CSV FEED — Flat-file ingest for external county data
// ============================================================================
// Header cells name where each column lands:
//
//	County, State                      identity columns
//	2010 Population, 2014 Population,  canonical population labels
//	Population Percent Change,
//	Population per Square Mile
//	Per Capita Income,                 canonical income labels
//	Persons Below Poverty Level,
//	Median Household Income
//	age:<label>                        Age table entry
//	education:<label>                  Education table entry
//	ethnicity:<label>                  Ethnicities table entry
//
// Unrecognized columns are silently skipped. Cells that fail numeric
// parsing are skipped too — a blank cell means "no recorded value", which
// the core already treats as 0.
// ============================================================================

// ParseCSV converts CSV feed bytes into typed County records.
// The header must include a "2014 Population" column; rows with a blank or
// unparsable value there are rejected, since the core assumes the
// denominator exists on every record.
func ParseCSV(data []byte) ([]demographics.County, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	has2014 := false
	for _, h := range headers {
		if h == KeyPopulation2014 {
			has2014 = true
			break
		}
	}
	if !has2014 {
		return nil, fmt.Errorf("CSV feed missing %q column", KeyPopulation2014)
	}

	var counties []demographics.County
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", row+1, err)
		}
		row++

		c, err := convertRow(headers, record)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", row, err)
		}
		counties = append(counties, c)
	}
	return counties, nil
}

func convertRow(headers, record []string) (demographics.County, error) {
	c := demographics.County{
		Age:         demographics.Table{},
		Education:   demographics.Table{},
		Ethnicities: demographics.Table{},
	}
	saw2014 := false

	for i, h := range headers {
		if i >= len(record) {
			break
		}
		cell := strings.TrimSpace(record[i])

		switch h {
		case "County":
			c.Name = cell
			continue
		case "State":
			c.State = cell
			continue
		}

		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			if h == KeyPopulation2014 {
				return demographics.County{}, fmt.Errorf("bad %q value %q", h, cell)
			}
			continue
		}

		switch {
		case h == KeyPopulation2010:
			c.Population.Total2010 = int(v)
		case h == KeyPopulation2014:
			c.Population.Total2014 = int(v)
			saw2014 = true
		case h == KeyPercentChange:
			c.Population.PercentChange = v
		case h == KeyPerSquareMile:
			c.Population.PerSquareMile = v
		case h == KeyPerCapitaIncome:
			c.Income.PerCapita = int(v)
		case h == KeyBelowPoverty:
			c.Income.BelowPoverty = v
		case h == KeyMedianHousehold, h == keyMedianMisspelled:
			c.Income.MedianHousehold = int(v)
		case strings.HasPrefix(h, "age:"):
			c.Age[strings.TrimPrefix(h, "age:")] = v
		case strings.HasPrefix(h, "education:"):
			c.Education[strings.TrimPrefix(h, "education:")] = v
		case strings.HasPrefix(h, "ethnicity:"):
			c.Ethnicities[strings.TrimPrefix(h, "ethnicity:")] = v
		}
		// Anything else is an unmapped column — skipped.
	}

	if !saw2014 {
		return demographics.County{}, fmt.Errorf("missing %q value", KeyPopulation2014)
	}
	return c, nil
}
