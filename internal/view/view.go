// Package view draws quest snapshots into a character screen. It is the
// render sink of the game: it reads a Snapshot and never touches a Session.
package view

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/crystal-quest/internal/core"
	"github.com/vovakirdan/crystal-quest/internal/quest"
)

// Visual constants
const (
	GrassChar   = '▀'
	SoilChar    = '▓'
	PlayerChar  = '█'
	CrystalChar = '◆'
	SparkChar   = '◇'
	FacingLeft  = '◀'
	FacingRight = '▶'
)

// hudRows is the number of screen rows reserved above the play field.
const hudRows = 1

// sparkle is how long a crystal stays in one animation frame.
const sparkle = 250 * time.Millisecond

// enemyRunes picks the glyph for each enemy kind.
var enemyRunes = map[quest.EnemyKind]rune{
	quest.EnemySpiky: '▲',
	quest.EnemyGhost: '∩',
	quest.EnemyBlob:  '●',
}

var enemyColors = map[quest.EnemyKind]core.Color{
	quest.EnemySpiky: core.ColorDarkRed,
	quest.EnemyGhost: core.ColorIndigo,
	quest.EnemyBlob:  core.ColorDarkGreen,
}

// legRunes is the bottom row of the player for each animation phase.
var legRunes = [4]rune{'█', '╱', '╲', '▀'}

// Draw renders the snapshot. The story screen replaces the play field; the
// game-over summary is drawn over the last frame.
func Draw(dst *core.Screen, snap quest.Snapshot) {
	dst.Clear()

	if snap.State == quest.StateStory {
		drawStory(dst, snap)
		return
	}

	drawField(dst, snap)
	drawHUD(dst, snap.HUD)

	if snap.Terminal {
		drawMessage(dst, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Final score: %d", snap.HUD.Score),
			fmt.Sprintf("Level reached: %d", snap.HUD.Level),
			"Press R to play again",
		)
	}
}

// DrawPaused overlays the pause box on an already drawn frame.
func DrawPaused(dst *core.Screen) {
	drawMessage(dst, core.ColorCyan, "PAUSED", "Press P to resume")
}

func drawField(dst *core.Screen, snap quest.Snapshot) {
	vp := newViewport(dst, snap.World)

	for _, p := range snap.Platforms {
		x, y, w, h := vp.cells(p)
		dst.DrawRect(x, y, w, h, SoilChar, core.ColorBrown)
		dst.DrawHLine(x, y, w, GrassChar, core.ColorLime)
	}

	glyph := CrystalChar
	if int(snap.Elapsed/sparkle)%2 == 1 {
		glyph = SparkChar
	}
	for _, c := range snap.Crystals {
		x, y, w, h := vp.cells(c.Body)
		dst.DrawRect(x, y, w, h, glyph, core.ColorGold)
	}

	for _, e := range snap.Enemies {
		x, y, w, h := vp.cells(e.Body)
		dst.DrawRect(x, y, w, h, enemyRunes[e.Kind], enemyColors[e.Kind])
	}

	drawPlayer(dst, vp, snap.Player)
}

// drawPlayer fills the body, puts the facing marker on the leading edge of
// the top row and animates the bottom row.
func drawPlayer(dst *core.Screen, vp viewport, p quest.PlayerView) {
	x, y, w, h := vp.cells(p.Body)
	dst.DrawRect(x, y, w, h, PlayerChar, core.ColorCoral)

	if h > 1 {
		phase := core.Clamp(p.Phase, 0, len(legRunes)-1)
		dst.DrawHLine(x, y+h-1, w, legRunes[phase], core.ColorCoral)
	}

	if p.Facing == quest.FacingLeft {
		dst.SetColored(x, y, FacingLeft, core.ColorWhite)
	} else {
		dst.SetColored(x+w-1, y, FacingRight, core.ColorWhite)
	}
}

func drawHUD(dst *core.Screen, hud quest.HUD) {
	text := fmt.Sprintf(" Score: %d  Lives: %d  Level: %d  Crystals: %d/%d ",
		hud.Score, hud.Lives, hud.Level, hud.Crystals, hud.CrystalsNeeded)
	dst.DrawTextColored(0, 0, text, core.ColorWhite)
}

func drawStory(dst *core.Screen, snap quest.Snapshot) {
	w, h := dst.Width(), dst.Height()
	dst.DrawBox(0, 0, w, h, core.ColorGold)

	// Title, a blank row, the story, a blank row, then the prompt
	rows := len(snap.Story) + 4
	y := core.Max(1, (h-rows)/2)

	title := snap.Layout
	if title == "" {
		title = "Crystal Quest"
	}
	dst.DrawTextCentered(y, title, core.ColorGold)
	y += 2

	for _, line := range snap.Story {
		dst.DrawTextCentered(y, line, core.ColorWhite)
		y++
	}

	dst.DrawTextCentered(y+1, "Press Enter to start", core.ColorYellow)
}

// drawMessage draws a framed box in the center of the screen: the first line
// is the title, the rest follow after a blank row.
func drawMessage(dst *core.Screen, c core.Color, lines ...string) {
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 3
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	dst.DrawTextCentered(boxY+1, lines[0], c)
	for i, l := range lines[1:] {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorWhite)
	}
}

// viewport maps world units onto the rows below the HUD.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, world core.Vec2) viewport {
	rows := core.Max(dst.Height()-hudRows, 1)
	vp := viewport{sx: 1, sy: 1}
	if world.X > 0 {
		vp.sx = float64(dst.Width()) / world.X
	}
	if world.Y > 0 {
		vp.sy = float64(rows) / world.Y
	}
	return vp
}

// cells returns the screen cells covered by r. Every body covers at least
// one cell so small entities never vanish.
func (vp viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * vp.sx))
	y = int(math.Floor(r.Y * vp.sy))
	w = core.Max(int(math.Ceil(r.Right()*vp.sx))-x, 1)
	h = core.Max(int(math.Ceil(r.Bottom()*vp.sy))-y, 1)
	return x, y + hudRows, w, h
}
