package demographics

import "sort"

// ============================================================================
// COUNTY RECORD — Typed demographic row
// ============================================================================
// One County per U.S. county, built once by the dataset loader and treated
// as read-only from then on. Income and Population carry fixed, always-
// present fields; Age, Education, and Ethnicities keep the feed's arbitrary
// category labels, so they stay generic label→percent tables.
// ============================================================================

// Table maps a category label to a percentage of county population on the
// 0–100 scale. Absent labels read as 0 — a county with no recorded value
// for a category simply contributes nothing to aggregates built on it.
type Table map[string]float64

// Get returns the percentage for label, or 0 when the label is absent.
func (t Table) Get(label string) float64 {
	return t[label]
}

// Lookup returns the percentage for label and whether it is present.
func (t Table) Lookup(label string) (float64, bool) {
	v, ok := t[label]
	return v, ok
}

// Labels returns the table's labels in sorted order.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t))
	for l := range t {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Income holds a county's income figures. BelowPoverty is a percentage on
// the 0–100 scale; the other two are in whole currency units.
type Income struct {
	PerCapita       int     `json:"perCapita"`
	BelowPoverty    float64 `json:"belowPoverty"`
	MedianHousehold int     `json:"medianHousehold"`
}

// Population holds a county's census population figures. Total2014 is the
// denominator for every sub-population derivation in this package.
type Population struct {
	Total2010     int     `json:"total2010"`
	Total2014     int     `json:"total2014"`
	PercentChange float64 `json:"percentChange"`
	PerSquareMile float64 `json:"perSquareMile"`
}

// County is one row of demographic data for a single U.S. county.
// Names are not unique across states; Name + State identifies a county.
type County struct {
	Age         Table      `json:"age"`
	Name        string     `json:"name"`
	Education   Table      `json:"education"`
	Ethnicities Table      `json:"ethnicities"`
	Income      Income     `json:"income"`
	Population  Population `json:"population"`
	State       string     `json:"state"`
}
