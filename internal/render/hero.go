package render

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/prosport1/ProSport/internal/domain"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
	nonDigits    = regexp.MustCompile(`\D`)
	emailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
)

func cssReset() string {
	return strings.TrimSpace(`
*{box-sizing:border-box}
:root{color-scheme:dark light}
html,body{margin:0;padding:0}
img{display:block;max-width:100%;height:auto}
a{text-decoration:none}
`)
}

func emailFromContact(contact string) string {
	return emailPattern.FindString(contact)
}

// ctaButtons derives the main call-to-action from the contact value: a
// phone-shaped contact becomes a WhatsApp deep link carrying only the digits,
// anything else a mailto (or an in-page anchor when no address can be
// extracted). A copy-link button is always appended.
func ctaButtons(name, contact string) string {
	var href, label string
	if phonePattern.MatchString(strings.TrimSpace(contact)) {
		href = "https://wa.me/" + nonDigits.ReplaceAllString(contact, "")
		label = "Chat on WhatsApp"
	} else {
		if mail := emailFromContact(contact); mail != "" {
			href = "mailto:" + mail
		} else {
			href = "#contact"
		}
		label = "Sponsor " + html.EscapeString(name)
	}

	return fmt.Sprintf(`<a class="btn" href="%s">%s</a>
  <button class="btn ghost" onclick="navigator.clipboard.writeText(location.href)">Copy link</button>`, href, label)
}

// heroShell renders the shared hero header and embedded stylesheet. Fonts are
// fixed per tier at this layer; the style engine only feeds the model path.
func heroShell(titleFont, bodyFont string, p *domain.AthleteProfile, parallax bool) string {
	bg := strings.ReplaceAll(p.BackgroundImageURL, `"`, "%22")

	bgImage := "none"
	bgImg := ""
	bgFilter := ""
	overlay := "linear-gradient(180deg,#0b0b0d,#111418)"
	if bg != "" {
		bgImage = fmt.Sprintf("url('%s')", bg)
		bgImg = fmt.Sprintf(`<img class="hero-bg-img" src="%s" alt="">`, bg)
		bgFilter = "filter: blur(14px) saturate(1.08) brightness(.75);"
		overlay = "radial-gradient(1200px 600px at 70% 35%, rgba(0,0,0,.25), rgba(0,0,0,.65))"
	}

	parallaxRule := ""
	if parallax {
		parallaxRule = ".hero-bg{background-attachment: fixed;}"
	}

	return strings.TrimSpace(fmt.Sprintf(`
<link href="https://fonts.googleapis.com/css2?family=%s:wght@600;800&family=%s:wght@400;600;700&display=swap" rel="stylesheet">
<style>
%s
:root{--tx:#eef2f6;--pri:#e11d48}
body{background:#0b0b0d;color:var(--tx);font-family:%s,system-ui,Arial,sans-serif}
.hero{position:relative;min-height:72vh;overflow:clip;}
.hero-bg{position:absolute;inset:0;z-index:0;background-image:%s;}
.hero-bg-img{width:100%%;height:100%%;object-fit:cover;
  %s
  transform:scale(1.06);}
.hero-bg-overlay{position:absolute;inset:0;background:%s;}
.hero-content{position:relative;z-index:1;max-width:1200px;margin:0 auto;padding:32px 20px;display:grid;gap:28px;grid-template-columns:1.1fr .9fr;align-items:center}
.athlete-photo{width:100%%;height:auto;border-radius:18px;box-shadow:0 30px 70px rgba(0,0,0,.55);border:1px solid rgba(255,255,255,.18)}
.hero-title{font:800 56px/1.05 "%s",system-ui,Arial,sans-serif;margin:0 0 6px;letter-spacing:.5px}
.hero-sub{opacity:.92;margin:0 0 10px}
.hero-desc{opacity:.95;margin:8px 0 16px;max-width:60ch}
.btn{display:inline-block;background:var(--pri);color:#fff;padding:12px 18px;border-radius:12px;font-weight:700;border:0;cursor:pointer;transition:transform .18s ease,opacity .18s}
.btn:hover{transform:translateY(-2px);opacity:.95}
.btn.ghost{background:transparent;color:var(--tx);border:1px solid rgba(255,255,255,.35);margin-left:8px}
.section{max-width:1200px;margin:36px auto 0;padding:0 20px}
.section-title{font:800 28px/1.15 "%s",system-ui,Arial,sans-serif;margin:0 0 6px;letter-spacing:.2px}
.cards{display:grid;grid-template-columns:repeat(3,1fr);gap:16px}
.card{background:rgba(255,255,255,.06);border:1px solid rgba(255,255,255,.14);border-radius:16px;padding:16px;transition:transform .18s ease,box-shadow .18s ease}
.card:hover{transform:translateY(-2px);box-shadow:0 12px 30px rgba(0,0,0,.35)}
.card-ico{font-size:22px;margin-bottom:8px}
.card-title{font:700 16px/1.2 %s,system-ui,Arial,sans-serif;margin:0 0 6px}
.card-txt{margin:0;opacity:.9}
.footer{max-width:1200px;margin:28px auto;padding:0 20px;opacity:.9}
@media (max-width:980px){.hero-content{grid-template-columns:1fr}.hero-title{font-size:40px}.cards{grid-template-columns:1fr}}
%s
</style>
<header class="hero">
  <div class="hero-bg" aria-hidden="true">
    %s
    <div class="hero-bg-overlay"></div>
  </div>
  <div class="hero-content">
    <img class="athlete-photo" src="%s" alt="Photo of %s">
    <div>
      <h1 class="hero-title">%s</h1>
      <p class="hero-sub"><strong>%s</strong> • %s • %s • Born %s • %s</p>
      <p class="hero-desc">Athlete sponsorship proposal.</p>
      <div class="cta-row">%s</div>
    </div>
  </div>
</header>
`,
		url.QueryEscape(titleFont), url.QueryEscape(bodyFont),
		cssReset(),
		bodyFont,
		bgImage,
		bgFilter,
		overlay,
		titleFont,
		titleFont,
		bodyFont,
		parallaxRule,
		bgImg,
		html.EscapeString(p.PrimaryImageURL), html.EscapeString(p.Name),
		html.EscapeString(p.Name),
		html.EscapeString(p.Sport), html.EscapeString(p.Grade), html.EscapeString(p.Team),
		html.EscapeString(p.BirthDate), p.Status(),
		ctaButtons(p.Name, p.Contact),
	))
}
