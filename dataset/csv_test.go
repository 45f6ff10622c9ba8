package dataset

import "testing"

// ============================================================================
// CSV FEED TESTS
// ============================================================================

var countyCSV = []byte(`County,State,2010 Population,2014 Population,Population Percent Change,Population per Square Mile,Per Capita Income,Persons Below Poverty Level,Median Household Income,education:Bachelor's Degree or Higher,ethnicity:Hispanic or Latino,age:Percent 65 and Older
Autauga County,AL,54571,55395,1.5,91.8,24571,12.1,53682,20.9,2.7,13.8
Weston County,WY,7208,7201,-0.1,3.0,28764,11.2,55461,17.2,,18.1
`)

func TestParseCSV(t *testing.T) {
	counties, err := ParseCSV(countyCSV)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(counties) != 2 {
		t.Fatalf("ParseCSV produced %d counties, want 2", len(counties))
	}

	autauga := counties[0]
	if autauga.Name != "Autauga County" || autauga.State != "AL" {
		t.Errorf("first row = %s (%s), want Autauga County (AL)", autauga.Name, autauga.State)
	}
	if autauga.Population.Total2014 != 55395 {
		t.Errorf("2014 population = %d, want 55395", autauga.Population.Total2014)
	}
	if autauga.Income.BelowPoverty != 12.1 {
		t.Errorf("below poverty = %v, want 12.1", autauga.Income.BelowPoverty)
	}
	if got := autauga.Education.Get("Bachelor's Degree or Higher"); got != 20.9 {
		t.Errorf("education column = %v, want 20.9", got)
	}
	if got := autauga.Age.Get("Percent 65 and Older"); got != 13.8 {
		t.Errorf("age column = %v, want 13.8", got)
	}
}

func TestParseCSVBlankCellMeansNoEntry(t *testing.T) {
	counties, err := ParseCSV(countyCSV)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	weston := counties[1]
	if _, ok := weston.Ethnicities.Lookup("Hispanic or Latino"); ok {
		t.Error("blank ethnicity cell produced a table entry, want none")
	}
	if got := weston.Ethnicities.Get("Hispanic or Latino"); got != 0 {
		t.Errorf("blank ethnicity cell reads as %v, want 0", got)
	}
}

func TestParseCSVMissingDenominatorColumn(t *testing.T) {
	csv := []byte("County,State,2010 Population\nNowhere County,KS,1000\n")
	if _, err := ParseCSV(csv); err == nil {
		t.Fatal("ParseCSV accepted a feed without a 2014 Population column")
	}
}

func TestParseCSVBadDenominatorCell(t *testing.T) {
	csv := []byte("County,State,2014 Population\nNowhere County,KS,not-a-number\n")
	if _, err := ParseCSV(csv); err == nil {
		t.Fatal("ParseCSV accepted a row with an unparsable 2014 population")
	}
}

func TestParseCSVMisspelledMedianIncomeHeader(t *testing.T) {
	csv := []byte("County,State,2014 Population,Median Houseold Income\nCrawford County,AR,61697,39479\n")
	counties, err := ParseCSV(csv)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if counties[0].Income.MedianHousehold != 39479 {
		t.Errorf("misspelled header not normalized: got %d, want 39479",
			counties[0].Income.MedianHousehold)
	}
}
