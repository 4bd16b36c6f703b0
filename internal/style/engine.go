// Package style derives the visual guideline bundle used to steer landing-page
// generation for a given sport.
package style

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/prosport1/ProSport/internal/util"
)

// Picker abstracts the random source so tests can force deterministic choices.
type Picker interface {
	Intn(n int) int
}

// Bundle is one concrete selection out of a Pack: a palette, a font pair, a
// background hint and a call to action. Ephemeral, rebuilt per request.
type Bundle struct {
	Palette        []string
	FontPair       [2]string
	BackgroundHint string
	Icons          []string
	CallToAction   string
}

const defaultTextColor = "#f1f5f9"

type Engine struct {
	picker Picker
}

// NewEngine builds a style engine. A nil picker gets a time-seeded math/rand source.
func NewEngine(picker Picker) *Engine {
	if picker == nil {
		picker = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{picker: picker}
}

// Derive matches the sport against the pack table (case-insensitive substring,
// first entry wins) and randomly selects one option per list. Unmatched sports get
// the generic fallback pack.
func (e *Engine) Derive(sport string) Bundle {
	needle := util.Normalize(sport)
	pack := fallbackPack
	for _, entry := range sportPacks {
		if needle != "" && strings.Contains(needle, entry.key) {
			pack = entry.pack
			break
		}
	}

	return Bundle{
		Palette:        e.pickPalette(pack.Palettes),
		FontPair:       pack.Fonts[e.picker.Intn(len(pack.Fonts))],
		BackgroundHint: pack.BackgroundHints[e.picker.Intn(len(pack.BackgroundHints))],
		Icons:          pack.Icons,
		CallToAction:   pack.CTAs[e.picker.Intn(len(pack.CTAs))],
	}
}

func (e *Engine) pickPalette(palettes [][]string) []string {
	return palettes[e.picker.Intn(len(palettes))]
}

// PromptText renders the bundle as the visual-guidelines block embedded in the
// user prompt. Fallback templates do not use it; they carry fixed per-tier fonts.
func (b Bundle) PromptText() string {
	background, primary, accent := b.Palette[0], b.Palette[1], b.Palette[2]
	text := defaultTextColor
	if len(b.Palette) > 3 {
		text = b.Palette[3]
	}

	return strings.TrimSpace(fmt.Sprintf(`Suggested visual guidelines:
- Palette (hex): BG %s | Primary %s | Accent %s | Text %s
- Typography (Google Fonts): Headings "%s", Body "%s"
- Background: %s
- Suggested icons: %s
- Suggested CTA: "%s"
(Note: alternate hero, proportions and grid on every generation.)`,
		background, primary, accent, text,
		b.FontPair[0], b.FontPair[1],
		b.BackgroundHint,
		strings.Join(b.Icons, " "),
		b.CallToAction,
	))
}
