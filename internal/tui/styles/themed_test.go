package styles

import "testing"

func TestBuildStyles_OrbRampLength(t *testing.T) {
	s := BuildStyles(DefaultPalette())
	if len(s.OrbRamp) != OrbRampSteps {
		t.Errorf("Orb ramp has %d steps, want %d", len(s.OrbRamp), OrbRampSteps)
	}
}

func TestBuildStyles_OrbRampEndpoints(t *testing.T) {
	p := DefaultPalette()
	s := BuildStyles(p)

	first := s.OrbRamp[0].GetForeground()
	last := s.OrbRamp[len(s.OrbRamp)-1].GetForeground()
	if first == last {
		t.Error("Orb ramp should blend between two distinct colors")
	}
}

func TestOrbRamp_InvalidColorsDegradeGracefully(t *testing.T) {
	ramp := orbRamp("not-a-color", "#FFFFFF", 5)
	if len(ramp) != 5 {
		t.Errorf("Degraded ramp should still have 5 steps, got %d", len(ramp))
	}
}

func TestOrbRamp_MinimumSteps(t *testing.T) {
	ramp := orbRamp("#000000", "#FFFFFF", 1)
	if len(ramp) < 2 {
		t.Errorf("Ramp should have at least 2 steps, got %d", len(ramp))
	}
}

func TestSetTheme_SwitchesCurrent(t *testing.T) {
	defer SetTheme(ThemeDefault)

	SetTheme(ThemeNord)
	if CurrentThemeName() != ThemeNord {
		t.Errorf("CurrentThemeName = %s, want nord", CurrentThemeName())
	}
	if Current().Palette.Primary != NordPalette().Primary {
		t.Error("Current styles should be rebuilt from the Nord palette")
	}
}

func TestNextTheme_CyclesThroughAll(t *testing.T) {
	ClearCustomThemes()
	defer SetTheme(ThemeDefault)
	SetTheme(ThemeDefault)

	seen := map[ThemeName]bool{CurrentThemeName(): true}
	for i := 0; i < len(BuiltinThemes())-1; i++ {
		seen[NextTheme()] = true
	}

	if len(seen) != len(BuiltinThemes()) {
		t.Errorf("Cycling should visit every built-in theme, saw %d of %d", len(seen), len(BuiltinThemes()))
	}

	// One more step wraps back to the first theme
	if NextTheme() != ThemeName(BuiltinThemes()[0]) {
		t.Error("Cycling past the last theme should wrap to the first")
	}
}
