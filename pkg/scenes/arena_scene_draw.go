package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/broadside/pkg/components"
	"github.com/decker502/broadside/pkg/entities"
	"github.com/decker502/broadside/pkg/game"
	"github.com/decker502/broadside/pkg/types"
	"github.com/decker502/broadside/pkg/utils"
)

// 海浪纹理间距
const waveSpacing = 48.0

var (
	seaColor        = color.RGBA{R: 18, G: 52, B: 96, A: 255}
	waveColor       = color.RGBA{R: 40, G: 90, B: 140, A: 255}
	playerColor     = color.RGBA{R: 150, G: 100, B: 50, A: 255}
	playerHurtColor = color.RGBA{R: 230, G: 200, B: 160, A: 255}
	cannonballColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	pickupColor     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	flashColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	healthBgColor   = color.RGBA{R: 80, G: 0, B: 0, A: 255}
	healthColor     = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	xpColor         = color.RGBA{R: 60, G: 160, B: 255, A: 255}
	rangeColor      = color.RGBA{R: 255, G: 255, B: 255, A: 40}
)

// tierColors 敌人按档位着色
var tierColors = map[types.HostileTier]color.RGBA{
	types.TierCheap: {R: 120, G: 120, B: 120, A: 255},
	types.TierMid:   {R: 40, G: 160, B: 90, A: 255},
	types.TierHeavy: {R: 90, G: 40, B: 40, A: 255},
}

// Draw 绘制海面、实体、HUD 与浮层
func (s *ArenaScene) Draw(screen *ebiten.Image) {
	bounds := s.arena.Bounds()
	s.drawSea(screen, bounds)

	s.arena.EachPickup(func(g *entities.Pickup) {
		vector.DrawFilledCircle(screen, float32(g.Position.X), float32(g.Position.Y),
			float32(g.Collision.Width/2*g.Scale), pickupColor, true)
	})

	s.arena.EachHostile(func(h *entities.Hostile) {
		clr, ok := tierColors[h.Tier]
		if !ok {
			clr = tierColors[types.TierCheap]
		}
		if h.IsFlashing() {
			clr = flashColor
		}
		drawCollider(screen, h.Position, h.Collision, clr)
	})

	s.arena.EachProjectile(func(p *entities.Projectile) {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y),
			float32(p.Collision.Width/2), cannonballColor, true)
	})

	s.drawPlayer(screen)
	s.drawHUD(screen, bounds)

	switch s.snapshot.Phase {
	case game.PhaseAwaitingUpgrade:
		s.drawUpgradeOverlay(screen, bounds)
	case game.PhasePausedByUser:
		drawCenteredPanel(screen, bounds, []string{"PAUSED", "", "Esc / P to resume"})
	}
}

// drawSea 海面随玩家移动滚动
func (s *ArenaScene) drawSea(screen *ebiten.Image, bounds utils.Rect) {
	screen.Fill(seaColor)

	offsetY := wrapOffset(s.snapshot.ScrollOffset.Y, waveSpacing)
	offsetX := wrapOffset(s.snapshot.ScrollOffset.X, waveSpacing*2)
	for y := -offsetY; y < bounds.Height(); y += waveSpacing {
		for x := -offsetX; x < bounds.Width(); x += waveSpacing * 2 {
			vector.StrokeLine(screen, float32(x), float32(y), float32(x+waveSpacing/2), float32(y),
				2, waveColor, true)
		}
	}
}

// wrapOffset 把偏移折回 [0, period)
func wrapOffset(offset, period float64) float64 {
	m := math.Mod(offset, period)
	if m < 0 {
		m += period
	}
	return m
}

func (s *ArenaScene) drawPlayer(screen *ebiten.Image) {
	player := s.arena.Player()

	vector.StrokeCircle(screen, float32(player.Position.X), float32(player.Position.Y),
		float32(player.CannonRange), 1, rangeColor, true)

	clr := playerColor
	if player.Invincible {
		clr = playerHurtColor
	}
	drawCollider(screen, player.Position, player.Collision, clr)

	// 船头指示朝向
	bow := player.Position.Add(utils.FromAngle(player.Rotation).Scale(player.Collision.Width / 2))
	vector.StrokeLine(screen, float32(player.Position.X), float32(player.Position.Y),
		float32(bow.X), float32(bow.Y), 3, flashColor, true)
}

func (s *ArenaScene) drawHUD(screen *ebiten.Image, bounds utils.Rect) {
	snap := s.snapshot
	const barWidth = 200.0
	const barHeight = 10.0

	healthRatio := 0.0
	if snap.MaxHealth > 0 {
		healthRatio = utils.Clamp(snap.Health/snap.MaxHealth, 0, 1)
	}
	ebitenutil.DrawRect(screen, 10, 10, barWidth, barHeight, healthBgColor)
	ebitenutil.DrawRect(screen, 10, 10, barWidth*healthRatio, barHeight, healthColor)

	xpRatio := 0.0
	if snap.XPToNextLevel > 0 {
		xpRatio = utils.Clamp(float64(snap.XP)/float64(snap.XPToNextLevel), 0, 1)
	}
	ebitenutil.DrawRect(screen, 0, bounds.Height()-6, bounds.Width()*xpRatio, 6, xpColor)

	info := fmt.Sprintf("HP %.0f/%.0f  LV %d  XP %d/%d  Kills %d  Time %s  Difficulty %d",
		snap.Health, snap.MaxHealth, snap.Level, snap.XP, snap.XPToNextLevel,
		snap.Kills, utils.FormatGameTime(snap.ElapsedGameTime), snap.Difficulty)
	ebitenutil.DebugPrintAt(screen, info, 220, 6)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()), int(bounds.Width())-70, 6)
}

func (s *ArenaScene) drawUpgradeOverlay(screen *ebiten.Image, bounds utils.Rect) {
	lines := []string{fmt.Sprintf("LEVEL UP! (level %d)", s.snapshot.Level), ""}
	for i, choice := range s.choices {
		lines = append(lines, fmt.Sprintf("[%d] %s - %s", i+1, choice.Name, choice.Description))
	}
	drawCenteredPanel(screen, bounds, lines)
}

// drawCollider 以碰撞盒绘制实体
func drawCollider(screen *ebiten.Image, pos utils.Vec2, col components.CollisionComponent, clr color.Color) {
	left, top, right, bottom := col.Bounds(pos.X, pos.Y)
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(right-left), float32(bottom-top), clr, true)
}

// drawCenteredPanel 半透明遮罩加居中文本
func drawCenteredPanel(screen *ebiten.Image, bounds utils.Rect, lines []string) {
	ebitenutil.DrawRect(screen, 0, 0, bounds.Width(), bounds.Height(), overlayColor)

	// DebugPrint 字符为 6x16 像素
	const charWidth, lineHeight = 6, 16
	startY := int(bounds.Height()/2) - len(lines)*lineHeight/2
	for i, line := range lines {
		x := int(bounds.Width()/2) - len(line)*charWidth/2
		ebitenutil.DebugPrintAt(screen, line, x, startY+i*lineHeight)
	}
}
