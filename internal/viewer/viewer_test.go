package viewer

import (
	"strings"
	"testing"

	"github.com/platy/tag-sim/internal/core"
	"github.com/platy/tag-sim/internal/game"
	"github.com/platy/tag-sim/internal/sim"
)

func TestRenderFrameMarks(t *testing.T) {
	field := core.NewField(5, 3)
	r := New(field)

	frame := sim.Frame{
		Step: 4,
		Players: []game.PlayerState{
			{Player: 0, Pos: core.Position{X: 1, Y: 1}, Role: game.It},
			{Player: 1, Pos: core.Position{X: 3, Y: 0}, Role: game.Runner},
		},
	}

	w, h := r.ScreenSize()
	screen := core.NewScreen(w, h)
	r.RenderFrame(frame, 100, screen)

	// Field cell (x, y) lands inside the border box under the HUD.
	if got := screen.Get(2, 4); got != MarkIt {
		t.Errorf("It cell = %q, expected %q", got, MarkIt)
	}
	if got := screen.Get(4, 3); got != MarkRunner {
		t.Errorf("Runner cell = %q, expected %q", got, MarkRunner)
	}

	if !strings.Contains(screen.Row(0), "step 4/100") {
		t.Errorf("HUD row = %q, expected step counter", screen.Row(0))
	}
}

func TestRenderFrameItWinsSharedCell(t *testing.T) {
	field := core.NewField(5, 3)
	r := New(field)

	// Runner and it momentarily share a cell at resolution time.
	frame := sim.Frame{
		Step: 1,
		Players: []game.PlayerState{
			{Player: 0, Pos: core.Position{X: 2, Y: 2}, Role: game.Runner},
			{Player: 1, Pos: core.Position{X: 2, Y: 2}, Role: game.It},
		},
	}

	w, h := r.ScreenSize()
	screen := core.NewScreen(w, h)
	r.RenderFrame(frame, 10, screen)

	if got := screen.Get(3, 5); got != MarkIt {
		t.Errorf("Shared cell = %q, expected the it mark %q", got, MarkIt)
	}
}

func TestRenderFrameTagAnnotation(t *testing.T) {
	field := core.NewField(10, 3)
	r := New(field)

	frame := sim.Frame{
		Step: 7,
		Players: []game.PlayerState{
			{Player: 0, Pos: core.Position{X: 0, Y: 0}, Role: game.Runner},
			{Player: 1, Pos: core.Position{X: 2, Y: 1}, Role: game.It},
		},
		Tags: []game.TagEvent{{Tagger: 0, Tagged: 1}},
	}

	out := r.FrameString(frame, 10)
	if !strings.Contains(out, "You're It!") {
		t.Error("Freshly tagged player should be annotated")
	}
	if !strings.Contains(out, "TAG: 0 tagged 1") {
		t.Error("HUD should report the tag event")
	}
}

func TestFrameStringBorder(t *testing.T) {
	field := core.NewField(4, 2)
	r := New(field)

	out := r.FrameString(sim.Frame{
		Step: 1,
		Players: []game.PlayerState{
			{Player: 0, Pos: core.Position{X: 0, Y: 0}, Role: game.It},
		},
	}, 1)

	lines := strings.Split(out, "\n")
	if len(lines) < 6 {
		t.Fatalf("Expected at least 6 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[2], "┌") {
		t.Errorf("Line 2 = %q, expected box top", lines[2])
	}
	if !strings.HasPrefix(lines[5], "└") {
		t.Errorf("Line 5 = %q, expected box bottom", lines[5])
	}
}
