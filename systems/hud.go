package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/starshooter/components"
	cfg "github.com/automoto/starshooter/config"
	"github.com/automoto/starshooter/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 10
)

// DrawHUD renders score, health and the player's buffs.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	score := GetScore(e)
	face := fonts.Regular.Get()
	m := cfg.HUD.Margin
	line := cfg.HUD.LineHeight

	text.Draw(screen, fmt.Sprintf("SCORE %d", score.Value), face, int(m), int(m+line), cfg.HUD.TextColor)
	hi := fmt.Sprintf("HI %d", score.HighScore)
	text.Draw(screen, hi, face, screen.Bounds().Dx()-int(m)-fonts.Width(face, hi), int(m+line), cfg.HUD.AccentColor)

	player, ok := PlayerEntry(e)
	if !ok {
		return
	}
	hp := components.Health.Get(player)
	barY := float32(m + line + 6)

	// Background (dark gray)
	vector.FillRect(screen, float32(m), barY, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)

	ratio := float32(0)
	if hp.Max > 0 && hp.Current > 0 {
		ratio = float32(hp.Current) / float32(hp.Max)
	}
	vector.FillRect(screen, float32(m), barY, hudBarWidth*ratio, hudBarHeight, color.RGBA{40, 220, 40, 255}, false)

	stats := components.Player.Get(player).Stats
	small := fonts.Small.Get()
	buffs := fmt.Sprintf("FIRE x%.2f  SPEED x%.2f", stats.FireRate, stats.Speed)
	text.Draw(screen, buffs, small, int(m), int(barY)+hudBarHeight+int(line), cfg.HUD.TextColor)
}

// DrawOverlay dims the screen and shows the prompt for non-playing states.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	gs := GetGameState(e)
	var title, prompt string
	switch gs.Current {
	case cfg.GameStateReady:
		title, prompt = "STARSHOOTER", "ENTER to start  Q to quit"
	case cfg.GameStatePaused:
		title, prompt = "PAUSED", "ESC to resume  R to restart  Q to quit"
	case cfg.GameStateGameOver:
		title = "GAME OVER"
		prompt = fmt.Sprintf("score %d  R to restart  Q to quit", GetScore(e).Value)
	default:
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)

	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, (width-fonts.Width(titleFont, title))/2, height/2, cfg.HUD.AccentColor)

	menuFont := fonts.Regular.Get()
	text.Draw(screen, prompt, menuFont, (width-fonts.Width(menuFont, prompt))/2, height/2+int(cfg.HUD.LineHeight)*3, cfg.HUD.TextColor)
}
