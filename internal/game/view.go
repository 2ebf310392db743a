package game

import (
	"fmt"

	"github.com/platy/tag-sim/internal/core"
)

// View is a read-only copy of the environment state handed to agents.
// Agents can query positions, roles and the field bounds but have no way to
// mutate the live environment through it.
type View struct {
	field   core.Field
	players []PlayerState
}

// Bounds returns the field bounds.
func (v View) Bounds() core.Field {
	return v.field
}

// Players returns the number of players visible in the view.
func (v View) Players() int {
	return len(v.players)
}

// PositionOf returns the position of a player as of the view's snapshot.
func (v View) PositionOf(player int) (core.Position, error) {
	if player < 0 || player >= len(v.players) {
		return core.Position{}, fmt.Errorf("game: player %d: %w", player, ErrUnknownPlayer)
	}
	return v.players[player].Pos, nil
}

// RoleOf returns the role of a player as of the view's snapshot.
func (v View) RoleOf(player int) (Role, error) {
	if player < 0 || player >= len(v.players) {
		return Runner, fmt.Errorf("game: player %d: %w", player, ErrUnknownPlayer)
	}
	return v.players[player].Role, nil
}

// ItIndex returns the index of the player that is it in this view.
func (v View) ItIndex() int {
	for i := range v.players {
		if v.players[i].Role == It {
			return i
		}
	}
	panic("game: single-it invariant violated")
}
