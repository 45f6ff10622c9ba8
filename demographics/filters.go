package demographics

// ============================================================================
// FILTERS — State match and strict threshold partitions
// ============================================================================
// Single-pass filters returning new slices. Input order is preserved and
// the input slice is never touched. Threshold comparisons are strict
// (> or <, never >=): a county whose value equals the threshold lands in
// neither the above nor the below partition. Absent labels compare as 0,
// so such a county is never "above" a positive threshold and always
// "below" one.
// ============================================================================

// FilterByState returns the counties whose State equals stateCode exactly
// (case-sensitive two-letter match). Unknown codes yield an empty result.
func FilterByState(counties []County, stateCode string) []County {
	matched := make([]County, 0)
	for _, c := range counties {
		if c.State == stateCode {
			matched = append(matched, c)
		}
	}
	return matched
}

// EducationAbove returns the counties whose value for educationKey is
// strictly greater than threshold.
func EducationAbove(counties []County, educationKey string, threshold float64) []County {
	return filterCounties(counties, func(c County) bool {
		return c.Education.Get(educationKey) > threshold
	})
}

// EducationBelow returns the counties whose value for educationKey is
// strictly less than threshold.
func EducationBelow(counties []County, educationKey string, threshold float64) []County {
	return filterCounties(counties, func(c County) bool {
		return c.Education.Get(educationKey) < threshold
	})
}

// EthnicityAbove returns the counties whose value for ethnicityKey is
// strictly greater than threshold.
func EthnicityAbove(counties []County, ethnicityKey string, threshold float64) []County {
	return filterCounties(counties, func(c County) bool {
		return c.Ethnicities.Get(ethnicityKey) > threshold
	})
}

// EthnicityBelow returns the counties whose value for ethnicityKey is
// strictly less than threshold.
func EthnicityBelow(counties []County, ethnicityKey string, threshold float64) []County {
	return filterCounties(counties, func(c County) bool {
		return c.Ethnicities.Get(ethnicityKey) < threshold
	})
}

// PovertyAbove returns the counties whose below-poverty percentage is
// strictly greater than threshold.
func PovertyAbove(counties []County, threshold float64) []County {
	return filterCounties(counties, func(c County) bool {
		return c.Income.BelowPoverty > threshold
	})
}

// PovertyBelow returns the counties whose below-poverty percentage is
// strictly less than threshold.
func PovertyBelow(counties []County, threshold float64) []County {
	return filterCounties(counties, func(c County) bool {
		return c.Income.BelowPoverty < threshold
	})
}

func filterCounties(counties []County, keep func(County) bool) []County {
	matched := make([]County, 0)
	for _, c := range counties {
		if keep(c) {
			matched = append(matched, c)
		}
	}
	return matched
}
