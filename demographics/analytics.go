package demographics

// ============================================================================
// ANALYTICS — Totals, sub-populations, and percentages
// ============================================================================
// Every function here is a pure pass over the county slice it is given:
// no mutation, no shared state, identical output for identical input.
// Sub-populations are float64 even though populations are integers — they
// are aggregate estimates derived from percentages, and rounding them would
// lose precision when they feed the percent functions.
// ============================================================================

// TotalPopulation returns the summed 2014 population across counties.
// Returns 0 for an empty slice.
func TotalPopulation(counties []County) int {
	total := 0
	for _, c := range counties {
		total += c.Population.Total2014
	}
	return total
}

// PopulationByEducation returns the estimated population holding the given
// education level, summed across counties. Counties without the label
// contribute 0.
func PopulationByEducation(counties []County, educationKey string) float64 {
	var total float64
	for _, c := range counties {
		if pct, ok := c.Education.Lookup(educationKey); ok {
			total += (pct / 100) * float64(c.Population.Total2014)
		}
	}
	return total
}

// PopulationByEthnicity returns the estimated population of the given
// ethnicity, summed across counties. Counties without the label
// contribute 0.
func PopulationByEthnicity(counties []County, ethnicityKey string) float64 {
	var total float64
	for _, c := range counties {
		if pct, ok := c.Ethnicities.Lookup(ethnicityKey); ok {
			total += (pct / 100) * float64(c.Population.Total2014)
		}
	}
	return total
}

// PopulationBelowPoverty returns the estimated population below the poverty
// level, summed across counties.
func PopulationBelowPoverty(counties []County) float64 {
	var total float64
	for _, c := range counties {
		total += (c.Income.BelowPoverty / 100) * float64(c.Population.Total2014)
	}
	return total
}

// PercentByEducation returns the education sub-population as a percentage
// of the total 2014 population. Returns 0 when the total population is 0.
func PercentByEducation(counties []County, educationKey string) float64 {
	total := TotalPopulation(counties)
	if total == 0 {
		return 0
	}
	return PopulationByEducation(counties, educationKey) / float64(total) * 100
}

// PercentByEthnicity returns the ethnicity sub-population as a percentage
// of the total 2014 population. Returns 0 when the total population is 0.
func PercentByEthnicity(counties []County, ethnicityKey string) float64 {
	total := TotalPopulation(counties)
	if total == 0 {
		return 0
	}
	return PopulationByEthnicity(counties, ethnicityKey) / float64(total) * 100
}

// PercentBelowPoverty returns the below-poverty sub-population as a
// percentage of the total 2014 population. Returns 0 when the total
// population is 0.
func PercentBelowPoverty(counties []County) float64 {
	total := TotalPopulation(counties)
	if total == 0 {
		return 0
	}
	return PopulationBelowPoverty(counties) / float64(total) * 100
}
