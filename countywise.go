// Package countywise provides aggregate statistics and threshold filters
// over U.S. county demographic records.
//
// Usage:
//
//	import (
//	    "github.com/countywise-org/countywise/dataset"
//	    "github.com/countywise-org/countywise/demographics"
//	)
//
//	counties, err := dataset.New().Load()
//	total := demographics.TotalPopulation(counties)
//	pct := demographics.PercentByEducation(counties, "Bachelor's Degree or Higher")
//
// The demographics package is the computational core: pure functions over
// read-only county sequences. The dataset package owns loading and key-name
// normalization; the report package turns results into render-ready tables
// and text. Nothing here persists data or talks to the network — all
// computation is local and synchronous.
package countywise
