// Package prompt assembles the system/user prompt pair sent to the generative
// model for one landing-page request.
package prompt

import (
	"fmt"
	"strings"

	"github.com/prosport1/ProSport/internal/domain"
)

// Prompts is one fully assembled model request.
type Prompts struct {
	System string
	User   string
}

// Build produces the prompt pair for a profile. derivedHint is the rendered style
// bundle for the sport; an explicit profile StyleHint overrides it. The user prompt
// is deterministic given the profile, hint and variant id.
func Build(p *domain.AthleteProfile, derivedHint string, variantID int) Prompts {
	hint := strings.TrimSpace(p.StyleHint)
	if hint == "" {
		hint = derivedHint
	}

	var b strings.Builder
	b.WriteString(hint)
	b.WriteString("\n\nATHLETE DATA:\n")
	fmt.Fprintf(&b, "- VARIANT_ID: %d\n", variantID)
	fmt.Fprintf(&b, "- Sport: %s\n", p.Sport)
	fmt.Fprintf(&b, "- Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Born: %s\n", p.BirthDate)
	fmt.Fprintf(&b, "- Status: %s\n", p.Status())
	fmt.Fprintf(&b, "- Grade: %s\n", p.Grade)
	fmt.Fprintf(&b, "- Team: %s\n", p.Team)
	fmt.Fprintf(&b, "- Titles: %s\n", p.Titles)
	fmt.Fprintf(&b, "- Primary Image (URL): %s\n", p.PrimaryImageURL)
	fmt.Fprintf(&b, "- Primary Contact (WhatsApp/Email): %s", p.Contact)
	if p.InstagramURL != "" {
		fmt.Fprintf(&b, "\n- Instagram: %s", p.InstagramURL)
	}
	if p.FacebookURL != "" {
		fmt.Fprintf(&b, "\n- Facebook: %s", p.FacebookURL)
	}
	if p.YouTubeURL != "" {
		fmt.Fprintf(&b, "\n- Video (YouTube): %s", p.YouTubeURL)
	}
	if p.BackgroundImageURL != "" {
		fmt.Fprintf(&b, "\n- Background Image (URL): %s", p.BackgroundImageURL)
	}

	if p.Tier.HasGallery() {
		gallery := strings.Join(p.ExtraImageURLs, ", ")
		if gallery == "" {
			gallery = "(no extras)"
		}
		fmt.Fprintf(&b, "\n- Extra Images (Gallery URLs): %s", gallery)
	}

	return Prompts{
		System: SystemFor(p.Tier),
		User:   b.String(),
	}
}
