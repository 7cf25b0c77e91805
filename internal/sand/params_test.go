package sand

import "testing"

func TestParameterControlsListed(t *testing.T) {
	w := newTestWorld(8, 8)
	keys := map[string]bool{}
	for _, c := range w.ParameterControls() {
		keys[c.Key] = true
	}
	for _, want := range []string{"brush_radius", "speed", "emit_rate"} {
		if !keys[want] {
			t.Fatalf("control %q not listed", want)
		}
	}
}

func TestSetIntParameterClamps(t *testing.T) {
	w := newTestWorld(8, 8)
	if !w.SetIntParameter("brush_radius", 99) {
		t.Fatal("brush_radius not accepted")
	}
	if w.BrushRadius() != 16 {
		t.Fatalf("brush radius = %d, want clamped to 16", w.BrushRadius())
	}
	w.SetIntParameter("brush_radius", -4)
	if w.BrushRadius() != 1 {
		t.Fatalf("brush radius = %d, want clamped to 1", w.BrushRadius())
	}
	if w.SetIntParameter("no_such_key", 1) {
		t.Fatal("unknown key must be rejected")
	}
}

func TestSetFloatParameterEmitRate(t *testing.T) {
	w := newTestWorld(8, 8)
	if !w.SetFloatParameter("emit_rate", 0.75) {
		t.Fatal("emit_rate not accepted")
	}
	if w.elem(WaterSource).EmitRate != 0.75 || w.elem(SandSource).EmitRate != 0.75 {
		t.Fatal("emit rate must reach both source elements")
	}
	w.SetFloatParameter("emit_rate", 5)
	if w.elem(WaterSource).EmitRate != 1 {
		t.Fatal("emit rate must clamp to 1")
	}
}

func TestSetFloatParameterSpeed(t *testing.T) {
	w := newTestWorld(8, 8)
	w.SetFloatParameter("speed", 2)
	if w.Speed() != 2 {
		t.Fatalf("speed = %v, want 2", w.Speed())
	}
}
