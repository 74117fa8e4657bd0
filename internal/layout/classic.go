package layout

// ClassicID is the built-in Crystal Caverns layout.
const ClassicID = "classic"

// Classic returns the built-in 800x600 level.
func Classic() Layout {
	return Layout{
		ID:    ClassicID,
		Title: "Crystal Caverns",
		Story: []string{
			"The Crystal Caverns have gone dark.",
			"Gather the three crystals on every level",
			"to rekindle the light, and keep clear",
			"of the creatures that pace the ledges.",
		},
		Platforms: []Box{
			{X: 0, Y: 550, W: 200, H: 50},
			{X: 250, Y: 450, W: 150, H: 20},
			{X: 450, Y: 350, W: 100, H: 20},
			{X: 600, Y: 250, W: 200, H: 20},
			{X: 300, Y: 200, W: 100, H: 20},
			{X: 0, Y: 150, W: 150, H: 20},
			{X: 650, Y: 450, W: 150, H: 20},
		},
		Crystals: []Box{
			{X: 320, Y: 160, W: 20, H: 20},
			{X: 470, Y: 310, W: 20, H: 20},
			{X: 680, Y: 210, W: 20, H: 20},
		},
		Enemies: []EnemySpawn{
			{Box: Box{X: 260, Y: 420, W: 25, H: 25}, Speed: 2, Kind: "spiky"},
			{Box: Box{X: 610, Y: 220, W: 25, H: 25}, Speed: 1.5, Kind: "ghost"},
			{Box: Box{X: 460, Y: 320, W: 25, H: 25}, Speed: 1, Kind: "blob"},
		},
	}
}

func init() {
	Register(Classic())
}
