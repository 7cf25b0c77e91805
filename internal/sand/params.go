package sand

import core "sandfall/internal/core"

// BrushRadius returns the current brush radius in cells.
func (w *World) BrushRadius() int { return w.cfg.Params.BrushRadius }

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:   "brush_radius",
			Label: "Brush",
			Type:  core.ParamTypeInt,
			Step:  1,
			Min:   1, HasMin: true,
			Max: 16, HasMax: true,
		},
		{
			Key:   "speed",
			Label: "Speed",
			Type:  core.ParamTypeFloat,
			Step:  0.25,
			Min:   minSpeed, HasMin: true,
			Max: maxSpeed, HasMax: true,
		},
		{
			Key:   "emit_rate",
			Label: "Source rate",
			Type:  core.ParamTypeFloat,
			Step:  0.05,
			Min:   0, HasMin: true,
			Max: 1, HasMax: true,
		},
	}
}

// SetIntParameter updates an integer tunable, clamping to its bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush_radius":
		if value < 1 {
			value = 1
		}
		if value > 16 {
			value = 16
		}
		w.cfg.Params.BrushRadius = value
		return true
	}
	return false
}

// SetFloatParameter updates a float tunable, clamping to its bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "speed":
		w.SetSpeed(value)
		return true
	case "emit_rate":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		w.cfg.Params.SourceEmitRate = value
		w.elems[WaterSource].EmitRate = value
		w.elems[SandSource].EmitRate = value
		return true
	}
	return false
}
