package style

import (
	"strings"
	"testing"
)

// fixedPicker always returns the same index (clamped to range).
type fixedPicker struct {
	value int
}

func (f *fixedPicker) Intn(n int) int {
	if f.value >= n {
		return n - 1
	}
	return f.value
}

func TestDeriveMatchesSportSubstring(t *testing.T) {
	engine := NewEngine(&fixedPicker{value: 0})

	bundle := engine.Derive("Brazilian Jiu-Jitsu (gi)")
	if bundle.CallToAction != "Sponsor now" {
		t.Errorf("expected jiu-jitsu pack CTA, got %q", bundle.CallToAction)
	}
	if bundle.Palette[1] != "#e11d48" {
		t.Errorf("expected first jiu-jitsu palette, got %v", bundle.Palette)
	}
}

func TestDeriveIsCaseInsensitive(t *testing.T) {
	engine := NewEngine(&fixedPicker{value: 0})

	upper := engine.Derive("JIU-JITSU")
	lower := engine.Derive("jiu-jitsu")
	if upper.CallToAction != lower.CallToAction || upper.FontPair != lower.FontPair {
		t.Error("case variants of the same sport should match the same pack")
	}

	padded := engine.Derive("  JIU-JITSU  ")
	if padded.CallToAction != lower.CallToAction {
		t.Error("surrounding whitespace should not affect pack matching")
	}
}

func TestDeriveUnknownSportUsesFallbackPack(t *testing.T) {
	engine := NewEngine(&fixedPicker{value: 0})

	bundle := engine.Derive("underwater hockey")
	if bundle.CallToAction != "I want to sponsor" {
		t.Errorf("expected fallback CTA, got %q", bundle.CallToAction)
	}
	if bundle.BackgroundHint != "soft gradient" {
		t.Errorf("expected fallback background hint, got %q", bundle.BackgroundHint)
	}
}

func TestDerivePickerSelectsWithinPack(t *testing.T) {
	first := NewEngine(&fixedPicker{value: 0}).Derive("jiu-jitsu")
	second := NewEngine(&fixedPicker{value: 1}).Derive("jiu-jitsu")

	if first.Palette[1] == second.Palette[1] {
		t.Error("different picker values should select different palettes")
	}
	if first.FontPair == second.FontPair {
		t.Error("different picker values should select different font pairs")
	}
}

func TestPromptTextContainsSelections(t *testing.T) {
	bundle := NewEngine(&fixedPicker{value: 0}).Derive("surf")
	text := bundle.PromptText()

	for _, want := range []string{
		"Palette (hex)",
		bundle.Palette[0],
		bundle.FontPair[0],
		bundle.BackgroundHint,
		bundle.CallToAction,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt text missing %q:\n%s", want, text)
		}
	}
}

func TestPromptTextDefaultsTextColor(t *testing.T) {
	bundle := Bundle{
		Palette:        []string{"#000000", "#111111", "#222222"},
		FontPair:       [2]string{"Montserrat", "Inter"},
		BackgroundHint: "soft gradient",
		Icons:          []string{"⭐"},
		CallToAction:   "Sponsor now",
	}

	if !strings.Contains(bundle.PromptText(), defaultTextColor) {
		t.Errorf("three-color palettes should fall back to the default text color")
	}
}
