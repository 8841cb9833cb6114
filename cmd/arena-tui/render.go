package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/decker502/broadside/pkg/entities"
	"github.com/decker502/broadside/pkg/game"
	"github.com/decker502/broadside/pkg/types"
	"github.com/decker502/broadside/pkg/utils"
)

// Canvas 绘制目标（tcell.Screen 满足该接口）
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// HUD 占用顶部一行
const hudRows = 1

var (
	seaStyle    = tcell.StyleDefault.Background(tcell.NewRGBColor(10, 30, 60))
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	playerStyle = seaStyle.Foreground(tcell.ColorWhite).Bold(true)
	hurtStyle   = seaStyle.Foreground(tcell.ColorRed).Bold(true)
	shotStyle   = seaStyle.Foreground(tcell.ColorSilver)
	pickupStyle = seaStyle.Foreground(tcell.ColorGold)
	flashStyle  = seaStyle.Foreground(tcell.ColorWhite).Reverse(true)
	panelStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

var tierGlyphs = map[types.HostileTier]rune{
	types.TierCheap: 's',
	types.TierMid:   'M',
	types.TierHeavy: 'H',
}

var tierStyles = map[types.HostileTier]tcell.Style{
	types.TierCheap: seaStyle.Foreground(tcell.ColorGray),
	types.TierMid:   seaStyle.Foreground(tcell.ColorGreen),
	types.TierHeavy: seaStyle.Foreground(tcell.ColorMaroon).Bold(true),
}

// toCell 世界坐标映射到终端格子，超出范围时 ok 为 false
func toCell(pos utils.Vec2, bounds utils.Rect, cols, rows int) (x, y int, ok bool) {
	if cols <= 0 || rows <= 0 || bounds.Width() <= 0 || bounds.Height() <= 0 {
		return 0, 0, false
	}
	x = int((pos.X - bounds.MinX) / bounds.Width() * float64(cols))
	y = int((pos.Y - bounds.MinY) / bounds.Height() * float64(rows))
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

// render 绘制一帧
func render(c Canvas, s *session) {
	cols, rows := c.Size()
	seaRows := rows - hudRows
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.SetContent(x, y, ' ', nil, seaStyle)
		}
	}

	bounds := s.arena.Bounds()
	plot := func(pos utils.Vec2, r rune, style tcell.Style) {
		if x, y, ok := toCell(pos, bounds, cols, seaRows); ok {
			c.SetContent(x, y+hudRows, r, nil, style)
		}
	}

	s.arena.EachPickup(func(g *entities.Pickup) {
		plot(g.Position, '*', pickupStyle)
	})
	s.arena.EachHostile(func(h *entities.Hostile) {
		glyph, ok := tierGlyphs[h.Tier]
		if !ok {
			glyph = '?'
		}
		style := tierStyles[h.Tier]
		if h.IsFlashing() {
			style = flashStyle
		}
		plot(h.Position, glyph, style)
	})
	s.arena.EachProjectile(func(p *entities.Projectile) {
		plot(p.Position, 'o', shotStyle)
	})

	player := s.arena.Player()
	style := playerStyle
	if player.Invincible {
		style = hurtStyle
	}
	plot(player.Position, '@', style)

	drawHUD(c, s, cols)

	switch {
	case s.summary != nil:
		drawPanel(c, cols, rows, []string{
			"YOUR SHIP HAS SUNK",
			"",
			fmt.Sprintf("Survived %s  Kills %d  Level %d",
				utils.FormatGameTime(s.summary.ElapsedGameTime), s.summary.Kills, s.summary.Level),
			"",
			"r: sail again   q: quit",
		})
	case s.snapshot.Phase == game.PhaseAwaitingUpgrade:
		lines := []string{fmt.Sprintf("LEVEL UP! (level %d)", s.snapshot.Level), ""}
		for i, choice := range s.choices {
			lines = append(lines, fmt.Sprintf("%d) %s: %s", i+1, choice.Name, choice.Description))
		}
		drawPanel(c, cols, rows, lines)
	case s.snapshot.Phase == game.PhasePausedByUser:
		drawPanel(c, cols, rows, []string{"PAUSED", "", "p: resume"})
	}
}

func drawHUD(c Canvas, s *session, cols int) {
	snap := s.snapshot
	auto := ""
	if s.auto {
		auto = "  [AUTO]"
	}
	line := fmt.Sprintf(" HP %.0f/%.0f  LV %d  XP %d/%d  Kills %d  %s  D%d%s",
		snap.Health, snap.MaxHealth, snap.Level, snap.XP, snap.XPToNextLevel,
		snap.Kills, utils.FormatGameTime(snap.ElapsedGameTime), snap.Difficulty, auto)
	for x := 0; x < cols; x++ {
		c.SetContent(x, 0, ' ', nil, hudStyle)
	}
	drawText(c, 0, 0, cols, line, hudStyle)
}

// drawPanel 居中绘制文本面板，长行按宽度换行
func drawPanel(c Canvas, cols, rows int, lines []string) {
	width := cols - 4
	if width > 60 {
		width = 60
	}
	var wrapped []string
	for _, line := range lines {
		wrapped = append(wrapped, utils.WrapText(line, width)...)
	}

	left := (cols - width) / 2
	top := (rows - len(wrapped)) / 2
	for i, line := range wrapped {
		y := top + i
		for x := left - 1; x <= left+width; x++ {
			c.SetContent(x, y, ' ', nil, panelStyle)
		}
		pad := (width - runewidth.StringWidth(line)) / 2
		drawText(c, left+pad, y, width, line, panelStyle)
	}
}

// drawText 从 (x, y) 开始写文本，超过 maxCols 截断
func drawText(c Canvas, x, y, maxCols int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if col+w > maxCols {
			return
		}
		c.SetContent(x+col, y, r, nil, style)
		col += w
	}
}
