package preset

import "testing"

func TestResolve(t *testing.T) {
	Init(StyleUnicode)

	if icon := Resolve(None); icon != nil {
		t.Error("Resolve(None) should return nil")
	}

	for _, p := range []Preset{Done, Error, Warning, Heart, Loading} {
		icon := Resolve(p)
		if icon == nil {
			t.Fatalf("Resolve(%v) returned nil", p)
		}
		if icon.Glyph() == "" {
			t.Errorf("Resolve(%v).Glyph() is empty", p)
		}
		if icon.Width() <= 0 {
			t.Errorf("Resolve(%v).Width() = %d, want > 0", p, icon.Width())
		}
	}
}

func TestAnimatableCapability(t *testing.T) {
	Init(StyleUnicode)

	// Static presets must not expose the animate capability.
	for _, p := range []Preset{Error, Warning, Heart} {
		if _, ok := Resolve(p).(Animatable); ok {
			t.Errorf("Resolve(%v) should not be Animatable", p)
		}
	}

	// Done and Loading animate.
	for _, p := range []Preset{Done, Loading} {
		if _, ok := Resolve(p).(Animatable); !ok {
			t.Errorf("Resolve(%v) should be Animatable", p)
		}
	}
}

func TestDoneAnimationFinishes(t *testing.T) {
	Init(StyleUnicode)

	a := Resolve(Done).(Animatable)

	// Not started yet: stepping is a no-op.
	if a.Step() {
		t.Error("Step() before Animate() should report no frames")
	}

	a.Animate()
	steps := 0
	for a.Step() {
		steps++
		if steps > 1000 {
			t.Fatal("done animation never finished")
		}
	}

	// Final frame must be the terminal glyph.
	if got := a.Glyph(); got != "✓" {
		t.Errorf("final frame = %q, want %q", got, "✓")
	}
}

func TestLoadingAnimationLoops(t *testing.T) {
	Init(StyleUnicode)

	a := Resolve(Loading).(Animatable)
	a.Animate()
	for i := 0; i < 500; i++ {
		if !a.Step() {
			t.Fatal("loading animation should loop forever")
		}
	}
}
