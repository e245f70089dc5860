package loop

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/draw"
	"github.com/tomz197/spaceshooter/internal/effect"
	"github.com/tomz197/spaceshooter/internal/game"
	"github.com/tomz197/spaceshooter/internal/object"
)

// titleArt is the figlet "small" rendering of the game name.
var titleArt = []string{
	` ___ ___  _   ___ ___   ___ _  _  ___   ___ _____ ___ ___ `,
	`/ __| _ \/_\ / __| __| / __| || |/ _ \ / _ \_   _| __| _ \`,
	`\__ \  _/ _ \ (__| _|  \__ \ __ | (_) | (_) || | | _||   /`,
	`|___/_|/_/ \_\___|___| |___/_||_|\___/ \___/ |_| |___|_|_\`,
}

// drawFrame draws the current screen and flushes it.
func (l *Loop) drawFrame() error {
	// On screen or game state transitions, do a full terminal clear
	// so overlays from the previous state don't persist.
	if l.screen != l.prevScreen {
		l.invalidate()
		l.prevScreen = l.screen
	}

	l.canvas.Clear()
	if l.shuttingDown {
		l.canvas.Render(l.cw)
		l.canvas.RenderBorder(l.cw)
		l.drawShutdown()
		return l.cw.Flush()
	}

	switch l.screen {
	case ScreenPlaying:
		snap := l.game.Snapshot(l.sprites)
		l.sprites = snap.Sprites
		if snap.State != l.prevState || effectSignature(snap.Effects) != l.prevEffect {
			l.invalidate()
			l.prevState = snap.State
			l.prevEffect = effectSignature(snap.Effects)
		}
		renderSprites(l.canvas, snap.Sprites)
		l.canvas.Render(l.cw)
		l.canvas.RenderBorder(l.cw)
		l.drawHUD(snap)
	default:
		l.canvas.Render(l.cw)
		l.canvas.RenderBorder(l.cw)
		switch l.screen {
		case ScreenMenu:
			l.drawMenu()
		case ScreenOptions:
			l.drawOptions()
		case ScreenHighScores:
			l.drawHighScores()
		}
	}
	return l.cw.Flush()
}

// renderSprites draws every sprite onto the canvas, back to front.
func renderSprites(c *draw.Canvas, sprites []game.Sprite) {
	for _, s := range sprites {
		b := s.Bounds
		cx, cy := b.Center()
		switch s.Kind {
		case game.SpriteAsteroid:
			c.Rock(cx, cy, min(b.W, b.H)/2, s.Angle, s.Image.Name)
		case game.SpritePowerup:
			c.Diamond(b.X, b.Y, b.W, b.H)
		case game.SpriteProjectile:
			c.FillRect(cx-b.W/6, b.Y, b.W/3, b.H)
		case game.SpriteFragment:
			c.FillRect(b.X, b.Y, b.W, b.H)
		case game.SpritePlayer:
			c.Ship(b.X, b.Y, b.W, b.H, s.FlipX, s.Frame)
			if s.Faded {
				c.DrawCircle(cx, cy, max(b.W, b.H)*0.7, false)
			}
		case game.SpriteExplosion:
			c.Explosion(cx, cy, b.W/2, s.Frame, asset.ExplosionFrameCount)
		}
	}
}

// effectSignature is a bitmask of the active effect kinds, used to spot
// HUD layout changes.
func effectSignature(effects []game.ActiveEffect) uint {
	var sig uint
	for _, e := range effects {
		sig |= 1 << uint(e.Kind)
	}
	return sig
}

// drawHUD draws score, health, running effects and state overlays.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (l *Loop) drawHUD(snap game.Snapshot) {
	cw := l.cw
	termWidth := l.canvas.TerminalWidth()
	termHeight := l.canvas.TerminalHeight()
	centerY := termHeight / 2

	cw.WriteAt(2, 1, fmt.Sprintf("Score: %-8d", snap.Score))

	hp := "HP " + strings.Repeat(string(draw.BlockFull), max(snap.Health, 0)) +
		strings.Repeat(string(draw.BlockLight), max(snap.MaxHealth-snap.Health, 0))
	cw.WriteAt(termWidth-len([]rune(hp)), 1, hp)

	col := 2
	for _, e := range snap.Effects {
		label := fmt.Sprintf("%s %s", strings.ToUpper(e.Kind.String()), draw.Meter(effectLevel(e), MeterWidth))
		if e.Kind == effect.Shield && e.Remaining < ShieldBlinkWindow &&
			!object.ShouldRenderBlink(e.Remaining, ShieldBlinkFrequency) {
			label = strings.Repeat(" ", len([]rune(label)))
		}
		cw.WriteAt(col, 2, label)
		col += len([]rune(label)) + 2
	}

	if l.hub != nil {
		players := fmt.Sprintf("Players: %-4d", l.hub.Count())
		cw.WriteAt(termWidth-len(players), termHeight, players)
	}

	switch snap.State {
	case game.StatePaused:
		draw.Centered(termWidth, centerY-1, "PAUSED").Draw(cw)
		draw.Centered(termWidth, centerY+1, "Press P to resume, Q to quit").Draw(cw)
	case game.StateGameOver:
		draw.Centered(termWidth, centerY-2, "GAME OVER").Draw(cw)
		draw.Centered(termWidth, centerY, fmt.Sprintf("Score: %d", snap.Score)).Draw(cw)
		draw.Centered(termWidth, centerY+2, "R restart  -  X menu  -  Q quit").Draw(cw)
	}
}

// drawShutdown draws the server shutdown notice.
func (l *Loop) drawShutdown() {
	cw := l.cw
	termWidth := l.canvas.TerminalWidth()
	centerY := l.canvas.TerminalHeight() / 2

	draw.Centered(termWidth, centerY-2, "SERVER SHUTTING DOWN").Draw(cw)
	secs := int(l.shutdownLeft.Seconds() + 0.999)
	draw.Centered(termWidth, centerY, fmt.Sprintf("Disconnecting in %2d seconds", secs)).Draw(cw)
	draw.Centered(termWidth, centerY+2, "Thanks for playing!").Draw(cw)
}

// effectLevel is the fraction of an effect's window still remaining.
func effectLevel(e game.ActiveEffect) float64 {
	window := effect.BoostDuration
	if e.Kind == effect.Energy {
		window = effect.EnergyWindow
	}
	return float64(e.Remaining) / float64(window)
}

// drawMenu draws the title screen with ship selection.
func (l *Loop) drawMenu() {
	cw := l.cw
	termWidth := l.canvas.TerminalWidth()
	centerY := l.canvas.TerminalHeight() / 2

	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}
	titleStartY := max(centerY-10, 1)
	for i, line := range titleArt {
		cw.WriteAt((termWidth-titleWidth)/2+1, titleStartY+i, line)
	}

	row := titleStartY + len(titleArt) + 2
	draw.Centered(termWidth, row, "Select ship").Draw(cw)
	draw.Centered(termWidth, row+1, fmt.Sprintf("<  %s  >", shipLabel(l.menu.ship))).Draw(cw)

	row += 4
	for i, label := range menuLabels {
		if menuItem(i) == l.menu.selected {
			label = "> " + label + " <"
		}
		draw.Centered(termWidth, row+i, label).Draw(cw)
	}

	row += len(menuLabels) + 2
	controls := []string{
		"A D / < >  . .  Move / change ship",
		"W S / ^ v  . . . . . .  Move / menu",
		"SPACE  . . . . . . . . . . .  Shoot",
		"P  . . . . . . . . . . . . .  Pause",
		"Q / ESC  . . . . . . . . . . . Quit",
	}
	for i, line := range controls {
		draw.Centered(termWidth, row+i, line).Draw(cw)
	}
}

// shipLabel capitalizes a ship variant name.
func shipLabel(v object.ShipVariant) string {
	name := v.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// drawOptions draws the brightness and volume settings.
func (l *Loop) drawOptions() {
	cw := l.cw
	termWidth := l.canvas.TerminalWidth()
	centerY := l.canvas.TerminalHeight() / 2

	draw.Centered(termWidth, centerY-5, "OPTIONS").Draw(cw)

	rows := [optCount]string{
		fmt.Sprintf("Brightness    <  %3d%%  >", percent(l.options.brightness)),
		fmt.Sprintf("Music volume  <  %3d%%  >", percent(l.options.volume)),
		"Back",
	}
	for i, label := range rows {
		if optionItem(i) == l.options.selected {
			label = "> " + label + " <"
		}
		draw.Centered(termWidth, centerY-2+i*2, label).Draw(cw)
	}

	draw.Centered(termWidth, centerY+5, "Up/down to choose, left/right to adjust, ESC to return").Draw(cw)
}

func percent(v float64) int {
	return int(v*100 + 0.5)
}

// drawHighScores draws the top ten table.
func (l *Loop) drawHighScores() {
	cw := l.cw
	termWidth := l.canvas.TerminalWidth()
	termHeight := l.canvas.TerminalHeight()

	draw.Centered(termWidth, 3, "HIGH SCORES").Draw(cw)

	records := l.scores.Top(0)
	if len(records) == 0 {
		draw.Centered(termWidth, termHeight/2, "No high scores yet!").Draw(cw)
	}
	for i, r := range records {
		line := fmt.Sprintf("%2d.  %-*s  %10s", i+1, DisplayNameLength, truncate(r.Name, DisplayNameLength), humanize.Comma(int64(r.Score)))
		draw.Centered(termWidth, 6+i*2, line).Draw(cw)
	}

	draw.Centered(termWidth, termHeight-1, "Press ESC or ENTER to return to menu").Draw(cw)
}

// drawNameEntry draws the high-score name prompt.
func (l *Loop) drawNameEntry(points int, entry *nameEntry) {
	l.canvas.Clear()
	l.canvas.Render(l.cw)
	l.canvas.RenderBorder(l.cw)

	cw := l.cw
	termWidth := l.canvas.TerminalWidth()
	centerY := l.canvas.TerminalHeight() / 2

	draw.Centered(termWidth, centerY-5, "NEW HIGH SCORE!").Draw(cw)
	draw.Centered(termWidth, centerY-3, fmt.Sprintf("Score: %d", points)).Draw(cw)
	draw.Centered(termWidth, centerY-1, "Enter your name:").Draw(cw)
	draw.Centered(termWidth, centerY+1, "[ "+entry.field()+" ]").Draw(cw)
	draw.Centered(termWidth, centerY+4, "Press ENTER to save, ESC to skip").Draw(cw)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
