package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"accented and hyphenated", "Jiu-Jitsu Brasileiro", "jiu-jitsu-brasileiro"},
		{"messy punctuation collapses", "jiu jitsu   brasileiro!!", "jiu-jitsu-brasileiro"},
		{"leading and trailing junk", "  --Surf!  ", "surf"},
		{"accents stripped", "Vôlei de Praia", "volei-de-praia"},
		{"empty input", "", ""},
		{"symbols only", "!!!", ""},
		{"athlete name", "Ana Silva", "ana-silva"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyEquivalentSpellings(t *testing.T) {
	a := Slugify("Jiu-Jitsu Brasileiro")
	b := Slugify("jiu jitsu   brasileiro!!")
	if a == "" || a != b {
		t.Errorf("expected identical non-empty slugs, got %q and %q", a, b)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  JIU-JITSU  "); got != "jiu-jitsu" {
		t.Errorf("Normalize = %q, want %q", got, "jiu-jitsu")
	}
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize empty = %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("hello", 10); got != "hello" {
		t.Errorf("expected untouched string, got %q", got)
	}
	if got := TruncateString("hello world", 5); got != "hello..." {
		t.Errorf("expected truncated string, got %q", got)
	}
}
