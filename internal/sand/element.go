package sand

import "image/color"

// ElementType identifies one of the closed set of element kinds.
type ElementType uint8

const (
	Sand ElementType = iota
	Water
	Wall
	Wood
	Metal
	Oil
	Acid
	Fire
	Steam
	Smoke
	Spark
	WaterSource
	SandSource
	Void

	elementCount
)

// Category groups elements by their broad physical role.
type Category uint8

const (
	CategoryPowder Category = iota
	CategoryLiquid
	CategoryStatic
	CategoryGas
	CategoryEnergy
	// CategorySpecial marks sources and voids. Special elements are exempt
	// from dormancy pruning because their effect is probabilistic per tick
	// rather than triggered by neighbor change.
	CategorySpecial
)

// BehaviorFunc implements an element's movement rule. It may mutate the world
// only through the grid primitives and reports whether anything changed.
type BehaviorFunc func(w *World, p *Particle) bool

// Element is the static definition shared by all particles of one type.
type Element struct {
	Name     string
	Category Category

	Density float64

	Static     bool
	Flammable  bool
	Conductive bool
	AcidImmune bool

	Flammability  float64
	SpreadChance  float64
	Dispersion    float64
	CorrosionRate float64

	EmitRate float64
	Emits    ElementType

	VoidRadius int

	LifeMin int
	LifeMax int

	Color    color.RGBA
	ColorVar int

	Behavior BehaviorFunc
}

// Special reports whether the element belongs to the special category.
func (e *Element) Special() bool { return e.Category == CategorySpecial }

// baseElements is the immutable definition table. Worlds copy it once at
// construction and apply their config overrides to the copy; nothing mutates
// it afterwards.
var baseElements = [elementCount]Element{
	Sand: {
		Name:         "sand",
		Category:     CategoryPowder,
		Density:      1.6,
		SpreadChance: 0.75,
		Color:        color.RGBA{R: 0xE0, G: 0xB2, B: 0x66, A: 0xFF},
		ColorVar:     18,
		Behavior:     behaviorPowder,
	},
	Water: {
		Name:       "water",
		Category:   CategoryLiquid,
		Density:    1.0,
		Dispersion: 0.8,
		Color:      color.RGBA{R: 0x2E, G: 0x6F, B: 0xD8, A: 0xFF},
		ColorVar:   8,
		Behavior:   behaviorLiquid,
	},
	Wall: {
		Name:       "wall",
		Category:   CategoryStatic,
		Density:    3.0,
		Static:     true,
		AcidImmune: true,
		Color:      color.RGBA{R: 0x6E, G: 0x6E, B: 0x76, A: 0xFF},
		ColorVar:   6,
		Behavior:   behaviorStatic,
	},
	Wood: {
		Name:         "wood",
		Category:     CategoryStatic,
		Density:      0.9,
		Static:       true,
		Flammable:    true,
		Flammability: 0.02,
		Color:        color.RGBA{R: 0x8A, G: 0x5A, B: 0x2B, A: 0xFF},
		ColorVar:     12,
		Behavior:     behaviorStatic,
	},
	Metal: {
		Name:       "metal",
		Category:   CategoryStatic,
		Density:    7.8,
		Static:     true,
		Conductive: true,
		Color:      color.RGBA{R: 0xB8, G: 0xBC, B: 0xC4, A: 0xFF},
		ColorVar:   5,
		Behavior:   behaviorStatic,
	},
	Oil: {
		Name:         "oil",
		Category:     CategoryLiquid,
		Density:      0.8,
		Flammable:    true,
		Flammability: 0.6,
		Dispersion:   0.55,
		Color:        color.RGBA{R: 0x4A, G: 0x3A, B: 0x28, A: 0xFF},
		ColorVar:     8,
		Behavior:     behaviorLiquid,
	},
	Acid: {
		Name:          "acid",
		Category:      CategoryLiquid,
		Density:       1.2,
		Dispersion:    0.7,
		CorrosionRate: 0.05,
		Color:         color.RGBA{R: 0x66, G: 0xE0, B: 0x30, A: 0xFF},
		ColorVar:      10,
		Behavior:      behaviorAcid,
	},
	Fire: {
		Name:     "fire",
		Category: CategoryEnergy,
		Density:  0.1,
		LifeMin:  60,
		LifeMax:  120,
		Color:    color.RGBA{R: 0xE8, G: 0x5A, B: 0x20, A: 0xFF},
		ColorVar: 0,
		Behavior: behaviorFire,
	},
	Steam: {
		Name:       "steam",
		Category:   CategoryGas,
		Density:    0.05,
		Dispersion: 0.7,
		Color:      color.RGBA{R: 0xC8, G: 0xD4, B: 0xDC, A: 0xFF},
		ColorVar:   10,
		Behavior:   behaviorSteam,
	},
	Smoke: {
		Name:       "smoke",
		Category:   CategoryGas,
		Density:    0.06,
		Dispersion: 0.6,
		LifeMin:    80,
		LifeMax:    150,
		Color:      color.RGBA{R: 0x50, G: 0x50, B: 0x54, A: 0xFF},
		ColorVar:   8,
		Behavior:   behaviorSmoke,
	},
	Spark: {
		Name:     "spark",
		Category: CategoryEnergy,
		Density:  0.1,
		LifeMin:  8,
		LifeMax:  20,
		Color:    color.RGBA{R: 0xFF, G: 0xF0, B: 0x60, A: 0xFF},
		ColorVar: 0,
		Behavior: behaviorSpark,
	},
	WaterSource: {
		Name:     "water_source",
		Category: CategorySpecial,
		Static:   true,
		EmitRate: 0.3,
		Emits:    Water,
		Color:    color.RGBA{R: 0x18, G: 0x3C, B: 0x8C, A: 0xFF},
		Behavior: behaviorSource,
	},
	SandSource: {
		Name:     "sand_source",
		Category: CategorySpecial,
		Static:   true,
		EmitRate: 0.3,
		Emits:    Sand,
		Color:    color.RGBA{R: 0x9C, G: 0x7A, B: 0x3C, A: 0xFF},
		Behavior: behaviorSource,
	},
	Void: {
		Name:       "void",
		Category:   CategorySpecial,
		Static:     true,
		VoidRadius: 1,
		Color:      color.RGBA{R: 0x14, G: 0x08, B: 0x1C, A: 0xFF},
		Behavior:   behaviorVoid,
	},
}

var elementsByName = map[string]ElementType{}

func init() {
	for t := ElementType(0); t < elementCount; t++ {
		elementsByName[baseElements[t].Name] = t
	}
}

// Valid reports whether t names a defined element.
func (t ElementType) Valid() bool { return t < elementCount }

// String returns the element's registry name, or "unknown".
func (t ElementType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return baseElements[t].Name
}

// TypeByName resolves a registry name to its element type.
func TypeByName(name string) (ElementType, bool) {
	t, ok := elementsByName[name]
	return t, ok
}

// Types lists every defined element type in declaration order.
func Types() []ElementType {
	out := make([]ElementType, 0, elementCount)
	for t := ElementType(0); t < elementCount; t++ {
		out = append(out, t)
	}
	return out
}
