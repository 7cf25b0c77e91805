package sand

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":     "64",
		"h":     "48",
		"seed":  "99",
		"brush": "5",
	})
	if c.Width != 64 || c.Height != 48 {
		t.Fatalf("dimensions = %dx%d, want 64x48", c.Width, c.Height)
	}
	if c.Seed != 99 {
		t.Fatalf("seed = %d, want 99", c.Seed)
	}
	if c.Params.BrushRadius != 5 {
		t.Fatalf("brush = %d, want 5", c.Params.BrushRadius)
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":     "zero",
		"h":     "-3",
		"brush": "0",
	})
	if c.Width != def.Width || c.Height != def.Height || c.Params.BrushRadius != def.Params.BrushRadius {
		t.Fatal("unparseable or out-of-range values must keep defaults")
	}
}

func TestFromMapNil(t *testing.T) {
	c := FromMap(nil)
	if c != DefaultConfig() {
		t.Fatal("nil map must yield the default config")
	}
}

func TestLoadParamsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	body := "sand_spread = 0.5\nwood_ignition = 40\nbrush_radius = 7\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadParams(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.SandSpread != 0.5 {
		t.Fatalf("sand_spread = %v, want 0.5", p.SandSpread)
	}
	if p.WoodIgnition != 40 {
		t.Fatalf("wood_ignition = %d, want 40", p.WoodIgnition)
	}
	if p.BrushRadius != 7 {
		t.Fatalf("brush_radius = %d, want 7", p.BrushRadius)
	}
	// Untouched keys keep their defaults.
	if p.WaterDispersion != DefaultConfig().Params.WaterDispersion {
		t.Fatal("absent keys must keep defaults")
	}
}

func TestLoadParamsMissingFile(t *testing.T) {
	if _, err := LoadParams(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestTunedElementsApplyOverrides(t *testing.T) {
	p := DefaultConfig().Params
	p.SandSpread = 0.1
	p.SourceEmitRate = 0.9
	p.FireLifeMin, p.FireLifeMax = 5, 6

	elems := tunedElements(p)
	if elems[Sand].SpreadChance != 0.1 {
		t.Fatalf("sand spread = %v, want 0.1", elems[Sand].SpreadChance)
	}
	if elems[WaterSource].EmitRate != 0.9 || elems[SandSource].EmitRate != 0.9 {
		t.Fatal("emit rate override must reach both sources")
	}
	if elems[Fire].LifeMin != 5 || elems[Fire].LifeMax != 6 {
		t.Fatal("fire lifespan override not applied")
	}
	if baseElements[Sand].SpreadChance == 0.1 {
		t.Fatal("tuning must not mutate the base table")
	}
}
