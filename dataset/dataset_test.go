package dataset

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/countywise-org/countywise/demographics"
)

// ============================================================================
// LOADER TESTS
// ============================================================================

func TestParseJSONEmbeddedFeed(t *testing.T) {
	counties, err := ParseJSON(embeddedFeed)
	if err != nil {
		t.Fatalf("ParseJSON(embeddedFeed) failed: %v", err)
	}
	if len(counties) != 7 {
		t.Fatalf("embedded feed produced %d counties, want 7", len(counties))
	}

	autauga := counties[0]
	if autauga.Name != "Autauga County" || autauga.State != "AL" {
		t.Errorf("first county = %s (%s), want Autauga County (AL)", autauga.Name, autauga.State)
	}
	if autauga.Population.Total2014 != 55395 {
		t.Errorf("Autauga 2014 population = %d, want 55395", autauga.Population.Total2014)
	}
	if autauga.Income.MedianHousehold != 53682 {
		t.Errorf("Autauga median household income = %d, want 53682", autauga.Income.MedianHousehold)
	}
	if got := autauga.Education.Get("Bachelor's Degree or Higher"); got != 20.9 {
		t.Errorf("Autauga bachelor's percentage = %v, want 20.9", got)
	}
}

func TestParseJSONNormalizesMedianIncome(t *testing.T) {
	// Crawford County carries the feed's known misspelling.
	counties, err := ParseJSON(embeddedFeed)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	crawford := counties[1]
	if crawford.Name != "Crawford County" {
		t.Fatalf("counties[1] = %s, want Crawford County", crawford.Name)
	}
	if crawford.Income.MedianHousehold != 39479 {
		t.Errorf("misspelled median income not normalized: got %d, want 39479",
			crawford.Income.MedianHousehold)
	}
}

func TestParseJSONMissingDenominator(t *testing.T) {
	feed := []byte(`[{
		"County": "Nowhere County",
		"State": "KS",
		"Income": {"Persons Below Poverty Level": 10.0},
		"Population": {"2010 Population": 1000}
	}]`)

	_, err := ParseJSON(feed)
	if err == nil {
		t.Fatal("ParseJSON accepted an entry without a 2014 population")
	}
	if !strings.Contains(err.Error(), KeyPopulation2014) {
		t.Errorf("error %q does not name the missing key", err)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	if _, err := ParseJSON([]byte("{not json")); err == nil {
		t.Fatal("ParseJSON accepted malformed bytes")
	}
}

func TestLoaderMemoizes(t *testing.T) {
	l := New(
		WithLogger(zap.NewNop()),
		WithRegistry(prometheus.NewRegistry()),
	)

	first, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := l.Load()
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("loads disagree: %d vs %d counties", len(first), len(second))
	}
	// Same backing array — the feed is parsed exactly once.
	if &first[0] != &second[0] {
		t.Error("Load returned a different slice on the second call")
	}
}

func TestLoaderFeedsAnalytics(t *testing.T) {
	l := New(WithRegistry(prometheus.NewRegistry()))

	counties, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if total := demographics.TotalPopulation(counties); total != 655813 {
		t.Errorf("TotalPopulation over embedded feed = %d, want 655813", total)
	}
	if ca := demographics.FilterByState(counties, "CA"); len(ca) != 2 {
		t.Errorf("FilterByState(CA) over embedded feed = %d counties, want 2", len(ca))
	}
}
