package display

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lguibr/pongvolley/game"
)

var (
	backgroundColor = color.Black
	foregroundColor = color.White
	netColor        = color.Gray{Y: 90}
)

// debugGlyphWidth and debugGlyphHeight are the cell size of ebitenutil's
// debug font.
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

func (g *Game) Draw(screen *ebiten.Image) {
	snapshot := g.match.Snapshot()
	screen.Fill(backgroundColor)

	if snapshot.GameOver {
		drawMenu(screen, snapshot, g.match.Config().ReplayChoices)
		return
	}
	drawCourt(screen, snapshot)
}

func drawCourt(screen *ebiten.Image, s game.Snapshot) {
	midX := float32(s.ScreenWidth) / 2
	vector.StrokeLine(screen, midX, 0, midX, float32(s.ScreenHeight), 1, netColor, true)

	drawRect(screen, s.Player)
	drawRect(screen, s.AI)

	radius := float32(s.Ball.Width) / 2
	vector.DrawFilledCircle(screen, float32(s.Ball.X)+radius, float32(s.Ball.Y)+radius, radius, foregroundColor, true)

	playerScore := fmt.Sprint(s.PlayerScore)
	aiScore := fmt.Sprint(s.AIScore)
	drawCentered(screen, playerScore, s.ScreenWidth/4, 10)
	drawCentered(screen, aiScore, s.ScreenWidth*3/4, 10)
}

func drawMenu(screen *ebiten.Image, s game.Snapshot, choices []int) {
	centerX := s.ScreenWidth / 2
	drawCentered(screen, game.WinnerBanner(s.Winner), centerX, s.ScreenHeight/3)
	drawCentered(screen, fmt.Sprintf("%d - %d", s.PlayerScore, s.AIScore), centerX, s.ScreenHeight/3+debugGlyphHeight*2)

	y := s.ScreenHeight / 2
	// The debug font only has ASCII glyphs.
	for _, line := range game.ReplayMenu(choices) {
		drawCentered(screen, strings.ReplaceAll(line, "→", "->"), centerX, y)
		y += debugGlyphHeight * 2
	}
}

func drawRect(screen *ebiten.Image, r game.Rect) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), foregroundColor, false)
}

func drawCentered(screen *ebiten.Image, text string, centerX, y int) {
	width := len([]rune(text)) * debugGlyphWidth
	ebitenutil.DebugPrintAt(screen, text, centerX-width/2, y)
}
