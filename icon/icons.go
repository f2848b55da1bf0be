package icon

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Warn
	Anime
	Character
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✖",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(•_•)",
		squares: "🟨",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(¬_¬)",
		squares: "🟧",
	},
	Anime: {
		emoji:   "📺",
		nerd:    "",
		plain:   "#",
		kaomoji: "(◕‿◕)",
		squares: "🟪",
	},
	Character: {
		emoji:   "🧝",
		nerd:    "",
		plain:   "@",
		kaomoji: "(°ロ°)",
		squares: "🟫",
	},
}
