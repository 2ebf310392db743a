// Package viewer renders simulation frames as ASCII art. It draws onto a
// core.Screen so the same renderer backs the plain-text run output, the live
// TUI and the SSH server.
package viewer

import (
	"fmt"

	"github.com/platy/tag-sim/internal/core"
	"github.com/platy/tag-sim/internal/game"
	"github.com/platy/tag-sim/internal/sim"
)

// Cell marks, by drawing priority. When players overlap momentarily at
// resolution time only the most important mark survives.
const (
	MarkRunner = '.'
	MarkIt     = '*'
)

// tagAnnotation is drawn next to a freshly tagged player.
const tagAnnotation = "-You're It!"

// hudHeight is the number of screen rows above the field box.
const hudHeight = 2

// Renderer draws frames for one field onto a screen buffer.
type Renderer struct {
	field core.Field
}

// New creates a renderer for the given field.
func New(field core.Field) *Renderer {
	return &Renderer{field: field}
}

// ScreenSize returns the minimum screen dimensions needed for a full frame.
func (r *Renderer) ScreenSize() (w, h int) {
	return core.Max(r.field.W+2, 40), r.field.H + 2 + hudHeight
}

// RenderFrame draws the HUD, the field border and every player.
// The it is drawn as '*', runners as '.', and a player tagged this step gets
// the "You're It!" annotation.
func (r *Renderer) RenderFrame(f sim.Frame, totalSteps int, dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" tag — step %d/%d  players: %d", f.Step, totalSteps, len(f.Players))
	if len(f.Tags) > 0 {
		hud += fmt.Sprintf("  TAG: %d tagged %d", f.Tags[0].Tagger, f.Tags[0].Tagged)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	dst.DrawBox(0, hudHeight, r.field.W+2, r.field.H+2)

	// Runners first, then the it, so the it wins overlapping cells.
	for _, p := range f.Players {
		if p.Role == game.Runner {
			r.setCell(dst, p.Pos, MarkRunner)
		}
	}
	for _, p := range f.Players {
		if p.Role == game.It {
			r.setCell(dst, p.Pos, MarkIt)
			if len(f.Tags) > 0 && f.Tags[0].Tagged == p.Player {
				dst.DrawText(p.Pos.X+2, p.Pos.Y+hudHeight+1, tagAnnotation)
			}
		}
	}
}

// FrameString renders a frame to a plain string, sized to fit the field.
// Convenience for the non-interactive run output.
func (r *Renderer) FrameString(f sim.Frame, totalSteps int) string {
	w, h := r.ScreenSize()
	screen := core.NewScreen(w, h)
	r.RenderFrame(f, totalSteps, screen)
	return screen.String()
}

// setCell draws a mark at a field position, offset into the border box.
func (r *Renderer) setCell(dst *core.Screen, pos core.Position, mark rune) {
	dst.Set(pos.X+1, pos.Y+hudHeight+1, mark)
}
