package pricing

import (
	"errors"
	"fmt"
	"os"
	"sort"

	_ "embed"

	"leadmarket/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed default_table.yaml
var defaultTableYAML []byte

// Band is a min/max price pair in whole base-currency units.
type Band struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// RoomBand prices a room whose area is closest to SquareMetres.
type RoomBand struct {
	SquareMetres float64 `yaml:"square_metres"`
	Band         `yaml:",inline"`
}

// ExtraBands holds the per-item bands added on top of room pricing.
type ExtraBands struct {
	Door          Band `yaml:"door"`
	Window        Band `yaml:"window"`
	SkirtingBoard Band `yaml:"skirting_board"`
}

// RegionMultiplier scales prices for postcodes matching Prefix. The longest
// matching prefix wins; no match means 1.0.
type RegionMultiplier struct {
	Prefix     string  `yaml:"prefix"`
	Multiplier float64 `yaml:"multiplier"`
}

// Locale carries the display-currency conversion data for one locale code.
type Locale struct {
	Currency         string  `yaml:"currency"`
	MarketMultiplier float64 `yaml:"market_multiplier"`
	ExchangeRate     float64 `yaml:"exchange_rate"`
}

// Package is a quick-quote price band. When Final is set the band is the
// finished price; otherwise property and region multipliers still apply.
type Package struct {
	Name  string `yaml:"name"`
	Band  `yaml:",inline"`
	Final bool `yaml:"final"`
}

// Table is the versioned pricing lookup data the engine consumes. It is pure
// data: loaded once at startup, never mutated afterwards.
type Table struct {
	Version             string                              `yaml:"version"`
	BaseLocale          string                              `yaml:"base_locale"`
	RoomBands           []RoomBand                          `yaml:"room_bands"`
	Extras              ExtraBands                          `yaml:"extras"`
	PropertyMultipliers map[entities.PropertyType]float64   `yaml:"property_multipliers"`
	RegionMultipliers   []RegionMultiplier                  `yaml:"region_multipliers"`
	Locales             map[string]Locale                   `yaml:"locales"`
	Packages            map[string]Package                  `yaml:"packages"`
}

// Default returns the embedded pricing table.
func Default() (*Table, error) {
	return parse(defaultTableYAML)
}

// Load reads a pricing table from a YAML file.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(raw)
}

// LoadFromEnv loads the table from PRICING_TABLE_PATH when set, otherwise the
// embedded default.
func LoadFromEnv() (*Table, error) {
	if path := os.Getenv("PRICING_TABLE_PATH"); path != "" {
		return Load(path)
	}
	return Default()
}

func parse(raw []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	// Nearest-band ties break on the lower square-metre entry, so keep the
	// bands in ascending area order.
	sort.SliceStable(t.RoomBands, func(i, j int) bool {
		return t.RoomBands[i].SquareMetres < t.RoomBands[j].SquareMetres
	})
	return &t, nil
}

func (t *Table) validate() error {
	if len(t.RoomBands) == 0 {
		return errors.New("pricing table: no room bands")
	}
	for _, b := range t.RoomBands {
		if b.SquareMetres <= 0 {
			return fmt.Errorf("pricing table: non-positive band area %.2f", b.SquareMetres)
		}
		if err := checkBand(b.Band, fmt.Sprintf("room band %.0fm2", b.SquareMetres)); err != nil {
			return err
		}
	}
	for name, b := range map[string]Band{
		"extras.door":           t.Extras.Door,
		"extras.window":         t.Extras.Window,
		"extras.skirting_board": t.Extras.SkirtingBoard,
	} {
		if err := checkBand(b, name); err != nil {
			return err
		}
	}
	for pt, m := range t.PropertyMultipliers {
		if m <= 0 {
			return fmt.Errorf("pricing table: non-positive multiplier for property type %q", pt)
		}
	}
	for _, rm := range t.RegionMultipliers {
		if rm.Prefix == "" || rm.Multiplier <= 0 {
			return fmt.Errorf("pricing table: invalid region multiplier %+v", rm)
		}
	}
	if t.BaseLocale == "" {
		return errors.New("pricing table: base_locale not set")
	}
	if _, ok := t.Locales[t.BaseLocale]; !ok {
		return fmt.Errorf("pricing table: base locale %q missing from locales", t.BaseLocale)
	}
	for code, loc := range t.Locales {
		if loc.MarketMultiplier <= 0 || loc.ExchangeRate <= 0 || loc.Currency == "" {
			return fmt.Errorf("pricing table: invalid locale %q", code)
		}
	}
	for id, p := range t.Packages {
		if err := checkBand(p.Band, "package "+id); err != nil {
			return err
		}
	}
	return nil
}

func checkBand(b Band, name string) error {
	if b.Min < 0 || b.Max < b.Min {
		return fmt.Errorf("pricing table: invalid band for %s (min=%d max=%d)", name, b.Min, b.Max)
	}
	return nil
}

// PropertyMultiplier returns the height multiplier for a property type.
// Unknown types price at 1.0 rather than failing.
func (t *Table) PropertyMultiplier(pt entities.PropertyType) float64 {
	if m, ok := t.PropertyMultipliers[pt]; ok {
		return m
	}
	return 1.0
}

// RegionMultiplierFor returns the multiplier of the longest region prefix
// matching the normalized postcode, or 1.0 when none matches.
func (t *Table) RegionMultiplierFor(normalizedPostcode string) float64 {
	best := 1.0
	bestLen := 0
	for _, rm := range t.RegionMultipliers {
		if len(rm.Prefix) > bestLen && hasPrefix(normalizedPostcode, rm.Prefix) {
			best = rm.Multiplier
			bestLen = len(rm.Prefix)
		}
	}
	return best
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
