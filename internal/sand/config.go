package sand

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Params holds the tunable probabilities and ranges for the element table.
// Zero values are replaced by defaults where that would make an element
// inert, so a partially filled TOML file stays usable.
type Params struct {
	SandSpread        float64 `toml:"sand_spread"`
	WaterDispersion   float64 `toml:"water_dispersion"`
	OilDispersion     float64 `toml:"oil_dispersion"`
	AcidDispersion    float64 `toml:"acid_dispersion"`
	SteamDispersion   float64 `toml:"steam_dispersion"`
	SmokeDispersion   float64 `toml:"smoke_dispersion"`
	AcidCorrosionRate float64 `toml:"acid_corrosion_rate"`

	FireLifeMin  int `toml:"fire_life_min"`
	FireLifeMax  int `toml:"fire_life_max"`
	SparkLifeMin int `toml:"spark_life_min"`
	SparkLifeMax int `toml:"spark_life_max"`
	SmokeLifeMin int `toml:"smoke_life_min"`
	SmokeLifeMax int `toml:"smoke_life_max"`

	SourceEmitRate float64 `toml:"source_emit_rate"`
	VoidRadius     int     `toml:"void_radius"`

	// WoodIgnition is the sustained-contact counter at which burning wood
	// converts to fire.
	WoodIgnition int `toml:"wood_ignition"`

	HistoryLimit int `toml:"history_limit"`
	BrushRadius  int `toml:"brush_radius"`
}

// Config controls the dimensions and tuning of a sand world.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 160,
		Seed:   1337,
		Params: Params{
			SandSpread:        0.75,
			WaterDispersion:   0.8,
			OilDispersion:     0.55,
			AcidDispersion:    0.7,
			SteamDispersion:   0.7,
			SmokeDispersion:   0.6,
			AcidCorrosionRate: 0.05,
			FireLifeMin:       60,
			FireLifeMax:       120,
			SparkLifeMin:      8,
			SparkLifeMax:      20,
			SmokeLifeMin:      80,
			SmokeLifeMax:      150,
			SourceEmitRate:    0.3,
			VoidRadius:        1,
			WoodIgnition:      100,
			HistoryLimit:      10,
			BrushRadius:       2,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["params"]; ok && v != "" {
		if p, err := LoadParams(v); err == nil {
			c.Params = p
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["emit_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SourceEmitRate = parsed
		}
	}
	if v, ok := cfg["void_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.VoidRadius = parsed
		}
	}
	if v, ok := cfg["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.HistoryLimit = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.BrushRadius = parsed
		}
	}
	return c
}

// LoadParams reads TOML overrides on top of the default params. Keys absent
// from the file keep their defaults.
func LoadParams(path string) (Params, error) {
	p := DefaultConfig().Params
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Params{}, fmt.Errorf("sand: load params: %w", err)
	}
	return p, nil
}

// tunedElements copies the base element table and applies params to it.
func tunedElements(p Params) [elementCount]Element {
	elems := baseElements
	elems[Sand].SpreadChance = p.SandSpread
	elems[Water].Dispersion = p.WaterDispersion
	elems[Oil].Dispersion = p.OilDispersion
	elems[Acid].Dispersion = p.AcidDispersion
	elems[Acid].CorrosionRate = p.AcidCorrosionRate
	elems[Steam].Dispersion = p.SteamDispersion
	elems[Smoke].Dispersion = p.SmokeDispersion
	if p.FireLifeMax > 0 {
		elems[Fire].LifeMin, elems[Fire].LifeMax = p.FireLifeMin, p.FireLifeMax
	}
	if p.SparkLifeMax > 0 {
		elems[Spark].LifeMin, elems[Spark].LifeMax = p.SparkLifeMin, p.SparkLifeMax
	}
	if p.SmokeLifeMax > 0 {
		elems[Smoke].LifeMin, elems[Smoke].LifeMax = p.SmokeLifeMin, p.SmokeLifeMax
	}
	elems[WaterSource].EmitRate = p.SourceEmitRate
	elems[SandSource].EmitRate = p.SourceEmitRate
	if p.VoidRadius >= 1 {
		elems[Void].VoidRadius = p.VoidRadius
	}
	return elems
}
