package game

import (
	"fmt"

	"github.com/platy/tag-sim/internal/core"
)

// Environment is the single source of truth for player positions and roles.
// It is exclusively owned by the simulation for the duration of a run and is
// mutated only through ApplyMove and ResolveTags.
type Environment struct {
	field   core.Field
	players []PlayerState
}

// NewEnvironment creates an environment from starting states.
// It rejects configurations the simulation must never start in: no players,
// a player out of bounds, or any number of its other than exactly one.
func NewEnvironment(field core.Field, states []PlayerState) (*Environment, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("game: environment needs at least one player")
	}

	its := 0
	players := make([]PlayerState, len(states))
	for i, st := range states {
		if !field.Contains(st.Pos) {
			return nil, fmt.Errorf("game: player %d starts out of bounds at (%d,%d) on %dx%d field",
				i, st.Pos.X, st.Pos.Y, field.W, field.H)
		}
		if st.Role == It {
			its++
		}
		players[i] = PlayerState{Player: i, Pos: st.Pos, Role: st.Role}
	}
	if its != 1 {
		return nil, fmt.Errorf("game: exactly one player must be it, got %d", its)
	}

	return &Environment{field: field, players: players}, nil
}

// Field returns the immutable field bounds.
func (e *Environment) Field() core.Field {
	return e.field
}

// Players returns the number of players.
func (e *Environment) Players() int {
	return len(e.players)
}

// PositionOf returns the position of a player.
func (e *Environment) PositionOf(player int) (core.Position, error) {
	if player < 0 || player >= len(e.players) {
		return core.Position{}, fmt.Errorf("game: player %d: %w", player, ErrUnknownPlayer)
	}
	return e.players[player].Pos, nil
}

// RoleOf returns the role of a player.
func (e *Environment) RoleOf(player int) (Role, error) {
	if player < 0 || player >= len(e.players) {
		return Runner, fmt.Errorf("game: player %d: %w", player, ErrUnknownPlayer)
	}
	return e.players[player].Role, nil
}

// ApplyMove moves a player by the given delta. Results that would leave the
// field are clamped to the nearest edge; walking off the field is an
// expected condition, not an error. Roles are never changed here.
func (e *Environment) ApplyMove(player int, m Move) error {
	if player < 0 || player >= len(e.players) {
		return fmt.Errorf("game: player %d: %w", player, ErrUnknownPlayer)
	}
	e.players[player].Pos = e.field.ClampInto(m.Apply(e.players[player].Pos))
	return nil
}

// ResolveTags swaps roles after all moves of a step have been applied.
// If one or more runners occupy the it's cell, the lowest-indexed one becomes
// it and the previous it becomes a runner; all other coinciding runners are
// unaffected. This is the only way roles change, so exactly one it exists
// both before and after the call. The returned events are empty when no tag
// occurred.
func (e *Environment) ResolveTags() []TagEvent {
	it := e.itIndex()
	itPos := e.players[it].Pos

	for i := range e.players {
		if i == it || e.players[i].Pos != itPos {
			continue
		}
		e.players[it].Role = Runner
		e.players[i].Role = It
		return []TagEvent{{Tagger: it, Tagged: i}}
	}
	return nil
}

// Snapshot returns an ordered read-only copy of all player states.
// Produced after full resolution, never mid-step.
func (e *Environment) Snapshot() []PlayerState {
	snap := make([]PlayerState, len(e.players))
	copy(snap, e.players)
	return snap
}

// View returns an immutable view of the current state for agent decisions.
// The view is a copy: every agent deciding within a step sees the same
// pre-step state regardless of moves applied afterwards.
func (e *Environment) View() View {
	return View{field: e.field, players: e.Snapshot()}
}

// itIndex returns the index of the single it. The constructor and
// ResolveTags maintain the invariant that one always exists.
func (e *Environment) itIndex() int {
	for i := range e.players {
		if e.players[i].Role == It {
			return i
		}
	}
	panic("game: single-it invariant violated")
}
