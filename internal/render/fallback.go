// Package render builds the deterministic landing-page documents used whenever
// the generative model is unavailable or returns unusable output. No network
// calls, no randomness: identical input yields identical HTML.
package render

import (
	"fmt"
	"html"

	"github.com/prosport1/ProSport/internal/domain"
)

type card struct {
	Icon  string
	Title string
	Text  string
}

// Fallback renders the complete HTML5 document for a profile. Dispatch is
// strictly by tier: premium and pro share one path (with the parallax flag on),
// plus has its own, and every other value takes the basic path. The validator
// rejects unknown tiers upstream; the default branch stays as a safety net.
func Fallback(p *domain.AthleteProfile) string {
	switch p.Tier {
	case domain.TierPremium, domain.TierPro:
		return fallbackPremium(p)
	case domain.TierPlus:
		return fallbackPlus(p)
	default:
		return fallbackBasic(p)
	}
}

func fallbackBasic(p *domain.AthleteProfile) string {
	return document(p, heroShell("Montserrat", "Inter", p, false), "Achievements", []card{
		{"🏆", "Titles", p.Titles},
		{"📣", "Presence", "Events, media and activations."},
		{"🤝", "Opportunities", "Visibility plans."},
	})
}

func fallbackPlus(p *domain.AthleteProfile) string {
	return document(p, heroShell("Bebas Neue", "Inter", p, false), "Proposal", []card{
		{"🎯", "Visibility", "Branding on uniforms and content."},
		{"🎥", "Content", "Photo packs, reels and behind-the-scenes."},
		{"🌐", "Community", "Activations and workshops."},
	})
}

func fallbackPremium(p *domain.AthleteProfile) string {
	return document(p, heroShell("Oswald", "Inter", p, true), "Premium Highlights", []card{
		{"🥇", "Achievements", p.Titles},
		{"🛡️", "Reputation", "Winning record and international visibility."},
		{"📺", "Amplification", "Media, press, blogs and digital channels."},
	})
}

func document(p *domain.AthleteProfile, hero, sectionTitle string, cards []card) string {
	var cardsHTML string
	for _, c := range cards {
		cardsHTML += fmt.Sprintf(
			`<article class="card"><div class="card-ico">%s</div><h3 class="card-title">%s</h3><p class="card-txt">%s</p></article>`,
			c.Icon, html.EscapeString(c.Title), html.EscapeString(c.Text),
		)
	}

	return fmt.Sprintf(`<!doctype html><html lang="en"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width,initial-scale=1"/><title>%s | %s</title>
%s
<main class="section">
  <h2 class="section-title">%s</h2>
  <div class="cards">%s</div>
</main>
<p class="footer" id="contact">Contact: %s</p>
</html>`,
		html.EscapeString(p.Name), html.EscapeString(p.Sport),
		hero,
		html.EscapeString(sectionTitle),
		cardsHTML,
		html.EscapeString(p.Contact),
	)
}
