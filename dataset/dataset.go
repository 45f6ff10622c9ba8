package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/countywise-org/countywise/demographics"
)

// ============================================================================
// DATASET LOADER — Canonical county feed → typed County records
// ============================================================================
// The loader owns everything the analytics core must never see: feed
// parsing, key-name normalization, and the populate-once cache. Records it
// hands out always carry the canonical key names and a 2014 population.
// ============================================================================

// Canonical feed keys.
const (
	KeyPerCapitaIncome = "Per Capita Income"
	KeyBelowPoverty    = "Persons Below Poverty Level"
	KeyMedianHousehold = "Median Household Income"

	KeyPopulation2010 = "2010 Population"
	KeyPopulation2014 = "2014 Population"
	KeyPercentChange  = "Population Percent Change"
	KeyPerSquareMile  = "Population per Square Mile"

	// The source feed misspells this key for some counties. Normalized to
	// KeyMedianHousehold during loading, before the core sees the data.
	keyMedianMisspelled = "Median Houseold Income"
)

//go:embed counties.json
var embeddedFeed []byte

// feedEntry mirrors one dictionary of the raw feed.
type feedEntry struct {
	Age         map[string]float64 `json:"Age"`
	County      string             `json:"County"`
	Education   map[string]float64 `json:"Education"`
	Ethnicities map[string]float64 `json:"Ethnicities"`
	Income      map[string]float64 `json:"Income"`
	Population  map[string]float64 `json:"Population"`
	State       string             `json:"State"`
}

// ParseJSON converts raw feed bytes into typed County records.
// Every returned record is guaranteed a 2014 population; an entry without
// one is a malformed feed and fails the whole parse.
func ParseJSON(data []byte) ([]demographics.County, error) {
	var entries []feedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode county feed: %w", err)
	}

	counties := make([]demographics.County, 0, len(entries))
	for i, e := range entries {
		c, err := convertEntry(e)
		if err != nil {
			return nil, fmt.Errorf("feed entry %d (%s, %s): %w", i, e.County, e.State, err)
		}
		counties = append(counties, c)
	}
	return counties, nil
}

// convertEntry builds a typed County from one raw feed dictionary,
// normalizing known key-name inconsistencies on the way.
func convertEntry(e feedEntry) (demographics.County, error) {
	income := e.Income
	if v, ok := income[keyMedianMisspelled]; ok {
		if _, canonical := income[KeyMedianHousehold]; !canonical {
			income[KeyMedianHousehold] = v
		}
		delete(income, keyMedianMisspelled)
	}

	pop2014, ok := e.Population[KeyPopulation2014]
	if !ok {
		return demographics.County{}, fmt.Errorf("missing %q", KeyPopulation2014)
	}

	return demographics.County{
		Age:         demographics.Table(e.Age),
		Name:        e.County,
		Education:   demographics.Table(e.Education),
		Ethnicities: demographics.Table(e.Ethnicities),
		Income: demographics.Income{
			PerCapita:       int(income[KeyPerCapitaIncome]),
			BelowPoverty:    income[KeyBelowPoverty],
			MedianHousehold: int(income[KeyMedianHousehold]),
		},
		Population: demographics.Population{
			Total2010:     int(e.Population[KeyPopulation2010]),
			Total2014:     int(pop2014),
			PercentChange: e.Population[KeyPercentChange],
			PerSquareMile: e.Population[KeyPerSquareMile],
		},
		State: e.State,
	}, nil
}

// ============================================================================
// LOADER — populate-once handle over the embedded feed
// ============================================================================

// Loader hands out the canonical county records. The embedded feed is
// parsed on first Load and cached for the life of the process; repeated
// calls return the same slice. Callers must treat the slice as read-only.
type Loader struct {
	cfg config

	once     sync.Once
	counties []demographics.County
	err      error

	// metrics
	loads  prometheus.Counter
	loaded prometheus.Gauge
}

// New returns a Loader. Options configure logging and metrics; the
// zero-option Loader is silent and registers on the default registry.
func New(opts ...Option) *Loader {
	cfg := defaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Loader{cfg: cfg}
	l.initMetrics()
	return l
}

func (l *Loader) initMetrics() {
	l.loads = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "countywise", Subsystem: "dataset",
		Name: "loads_total", Help: "Calls to Loader.Load",
	})
	l.loaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "countywise", Subsystem: "dataset",
		Name: "counties_loaded", Help: "County records held by the loader",
	})

	// Register only once (ignore AlreadyRegisteredError)
	for _, c := range []prometheus.Collector{l.loads, l.loaded} {
		_ = l.cfg.Registry.Register(c)
	}
}

// Load returns the canonical county records, parsing the embedded feed on
// the first call only. Safe to call any number of times; every call after
// the first returns the cached slice (or the cached error).
func (l *Loader) Load() ([]demographics.County, error) {
	l.loads.Inc()
	l.once.Do(func() {
		l.counties, l.err = ParseJSON(embeddedFeed)
		if l.err != nil {
			l.cfg.Logger.Error("embedded county feed failed to parse", zap.Error(l.err))
			return
		}
		l.loaded.Set(float64(len(l.counties)))
		l.cfg.Logger.Info("county feed loaded",
			zap.Int("counties", len(l.counties)))
	})
	return l.counties, l.err
}

// LoadFile parses an external feed file, JSON or CSV by extension.
// External feeds are not cached — the populate-once contract covers only
// the canonical embedded feed.
func (l *Loader) LoadFile(path string) ([]demographics.County, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed file: %w", err)
	}

	var counties []demographics.County
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		counties, err = ParseCSV(data)
	default:
		counties, err = ParseJSON(data)
	}
	if err != nil {
		return nil, err
	}

	l.cfg.Logger.Info("county feed file loaded",
		zap.String("path", path),
		zap.Int("counties", len(counties)))
	return counties, nil
}
