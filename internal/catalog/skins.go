package catalog

import "github.com/osse101/CyberClicker_Go/internal/domain"

var skins = []domain.Skin{
	{ID: "cyberpunk", Name: "Cyberpunk", Cost: 0,
		Colors: domain.Palette{Primary: "#ff2a6d", Secondary: "#05d9e8", Accent: "#d300c5", Background: "#0d0221"}},
	{ID: "vaporwave", Name: "Vaporwave", Cost: 100, UnlockRequirement: "cyberpunk",
		Colors: domain.Palette{Primary: "#ff71ce", Secondary: "#01cdfe", Accent: "#b967ff", Background: "#05ffa1"}},
	{ID: "retro", Name: "Retro", Cost: 250, UnlockRequirement: "vaporwave",
		Colors: domain.Palette{Primary: "#f8b500", Secondary: "#fc3c3c", Accent: "#5d13e7", Background: "#22272e"}},
	{ID: "matrix", Name: "Matrix", Cost: 500, UnlockRequirement: "retro",
		Colors: domain.Palette{Primary: "#00ff41", Secondary: "#008f11", Accent: "#003b00", Background: "#0d0208"}},
	{ID: "neon", Name: "Neon City", Cost: 1000, UnlockRequirement: "matrix",
		Colors: domain.Palette{Primary: "#fe00fe", Secondary: "#00ffff", Accent: "#ffff00", Background: "#121212"}},
	{ID: "synthwave", Name: "Synthwave", Cost: 2000, UnlockRequirement: "neon",
		Colors: domain.Palette{Primary: "#fc28a8", Secondary: "#03edf9", Accent: "#ff8b00", Background: "#2b213a"}},
	{ID: "outrun", Name: "Outrun", Cost: 4000, UnlockRequirement: "synthwave",
		Colors: domain.Palette{Primary: "#ff9933", Secondary: "#ff00ff", Accent: "#0066ff", Background: "#000033"}},
	{ID: "holographic", Name: "Holographic", Cost: 8000, UnlockRequirement: "outrun",
		Colors: domain.Palette{Primary: "#88ffff", Secondary: "#ff88ff", Accent: "#ffff88", Background: "#111122"}},
	{ID: "glitch", Name: "Glitch", Cost: 15000, UnlockRequirement: "holographic",
		Colors: domain.Palette{Primary: "#ff0000", Secondary: "#00ff00", Accent: "#0000ff", Background: "#000000"}},
	{ID: "quantum", Name: "Quantum", Cost: 30000, UnlockRequirement: "glitch",
		Colors: domain.Palette{Primary: "#c0ffee", Secondary: "#facade", Accent: "#bada55", Background: "#010101"}},
	{ID: "cosmic", Name: "Cosmic", Cost: 60000, UnlockRequirement: "quantum",
		Colors: domain.Palette{Primary: "#9d00ff", Secondary: "#00aaff", Accent: "#ffcc00", Background: "#000022"}},
	{ID: "binary", Name: "Binary", Cost: 120000, UnlockRequirement: "cosmic",
		Colors: domain.Palette{Primary: "#ffffff", Secondary: "#000000", Accent: "#00ff00", Background: "#111111"}},
	{ID: "hyperspace", Name: "Hyperspace", Cost: 250000, UnlockRequirement: "binary",
		Colors: domain.Palette{Primary: "#ff00aa", Secondary: "#00ffcc", Accent: "#ffff00", Background: "#110022"}},
	{ID: "digital", Name: "Digital Void", Cost: 500000, UnlockRequirement: "hyperspace",
		Colors: domain.Palette{Primary: "#0088ff", Secondary: "#00ff88", Accent: "#ff0088", Background: "#000011"}},
	{ID: "ethereal", Name: "Ethereal", Cost: 1000000, UnlockRequirement: "digital",
		Colors: domain.Palette{Primary: "#aaccff", Secondary: "#ffaacc", Accent: "#ffffaa", Background: "#112233"}},
}

var skinIndex = indexBy(skins, func(s domain.Skin) domain.SkinID { return s.ID })

// Skins returns the skin chain in unlock order
func Skins() []domain.Skin {
	return append([]domain.Skin(nil), skins...)
}

// Skin looks up one skin
func Skin(id domain.SkinID) (domain.Skin, bool) {
	i, ok := skinIndex[id]
	if !ok {
		return domain.Skin{}, false
	}
	return skins[i], true
}
