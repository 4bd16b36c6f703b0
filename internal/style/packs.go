package style

// Pack bundles the visual building blocks for one sport. Each generation picks one
// entry per list at random.
type Pack struct {
	Palettes        [][]string
	Fonts           [][2]string
	BackgroundHints []string
	Icons           []string
	CTAs            []string
}

type packEntry struct {
	key  string
	pack Pack
}

// sportPacks is matched by case-insensitive substring against the profile's sport.
// Slice order is the documented match priority: first entry whose key is contained
// in the sport name wins.
var sportPacks = []packEntry{
	{
		key: "jiu-jitsu",
		pack: Pack{
			Palettes: [][]string{
				{"#0b0b0d", "#e11d48", "#22d3ee", "#f1f5f9"},
				{"#0d0f12", "#c1121f", "#ffba08", "#e6e6eb"},
				{"#0b0b0d", "#ea580c", "#eab308", "#e5e7eb"},
			},
			Fonts: [][2]string{
				{"Montserrat", "Inter"},
				{"Oswald", "Lato"},
				{"Bebas Neue", "Inter"},
			},
			BackgroundHints: []string{"blurred tatami texture", "dark gi fabric weave", "black-and-white dojo"},
			Icons:           []string{"🥋", "🏆", "🇧🇷"},
			CTAs:            []string{"Sponsor now", "Talk to the athlete", "I want to support"},
		},
	},
	{
		key: "mma",
		pack: Pack{
			Palettes: [][]string{
				{"#0a0a0a", "#dc2626", "#f59e0b", "#f5f5f4"},
				{"#111113", "#b91c1c", "#38bdf8", "#e7e5e4"},
			},
			Fonts: [][2]string{
				{"Bebas Neue", "Inter"},
				{"Oswald", "Roboto"},
			},
			BackgroundHints: []string{"octagon fence bokeh", "chalk dust under cage lights"},
			Icons:           []string{"🥊", "🏆", "🔥"},
			CTAs:            []string{"Sponsor now", "Back this fighter"},
		},
	},
	{
		key: "surf",
		pack: Pack{
			Palettes: [][]string{
				{"#03045e", "#00b4d8", "#90e0ef", "#f1f5f9"},
				{"#0b132b", "#3a86ff", "#ffbe0b", "#edf2f4"},
			},
			Fonts: [][2]string{
				{"Montserrat", "Lato"},
				{"Poppins", "Inter"},
			},
			BackgroundHints: []string{"backlit wave barrel", "golden-hour shoreline"},
			Icons:           []string{"🏄", "🌊", "☀️"},
			CTAs:            []string{"Sponsor now", "Join the ride"},
		},
	},
	{
		key: "futebol",
		pack: Pack{
			Palettes: [][]string{
				{"#052e16", "#16a34a", "#facc15", "#f0fdf4"},
				{"#0b0b0d", "#22c55e", "#eab308", "#e5e7eb"},
			},
			Fonts: [][2]string{
				{"Oswald", "Inter"},
				{"Montserrat", "Roboto"},
			},
			BackgroundHints: []string{"floodlit pitch grain", "stadium stands at dusk"},
			Icons:           []string{"⚽", "🏆", "🥅"},
			CTAs:            []string{"Sponsor now", "Support the squad"},
		},
	},
	{
		key: "volei",
		pack: Pack{
			Palettes: [][]string{
				{"#1e1b4b", "#f97316", "#38bdf8", "#f8fafc"},
			},
			Fonts: [][2]string{
				{"Montserrat", "Inter"},
			},
			BackgroundHints: []string{"sand court at sunset", "net silhouette under arena lights"},
			Icons:           []string{"🏐", "🏆", "💪"},
			CTAs:            []string{"Sponsor now", "Serve with us"},
		},
	},
}

// fallbackPack is used when no sport-specific pack matches.
var fallbackPack = Pack{
	Palettes:        [][]string{{"#0b0b0d", "#22d3ee", "#e11d48", "#f1f5f9"}},
	Fonts:           [][2]string{{"Montserrat", "Inter"}},
	BackgroundHints: []string{"soft gradient"},
	Icons:           []string{"⭐"},
	CTAs:            []string{"I want to sponsor"},
}
