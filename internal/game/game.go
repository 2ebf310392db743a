// Package game implements the authoritative state of a game of tag: the
// field, every player's position and role, and the two mutation primitives
// (move application and tag resolution) that the simulation drives.
package game

import (
	"errors"

	"github.com/platy/tag-sim/internal/core"
)

// ErrUnknownPlayer is returned when a player index is outside the range of
// players known to the environment.
var ErrUnknownPlayer = errors.New("unknown player")

// Role marks whether a player is currently it.
type Role int

const (
	// Runner is any player that is not it.
	Runner Role = iota
	// It is the single player currently tagging.
	It
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case Runner:
		return "runner"
	case It:
		return "it"
	default:
		return "unknown"
	}
}

// Move is a one-cell delta a player proposes for a single step.
// The declaration order is the tie-break preference order used by the
// strategies: Up, Down, Left, Right, Stay.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveStay
)

// Moves lists all moves in tie-break preference order.
var Moves = [...]Move{MoveUp, MoveDown, MoveLeft, MoveRight, MoveStay}

// Apply returns the position reached by taking the move from p, before any
// clamping. Up decreases Y, matching screen coordinates.
func (m Move) Apply(p core.Position) core.Position {
	switch m {
	case MoveUp:
		return core.Position{X: p.X, Y: p.Y - 1}
	case MoveDown:
		return core.Position{X: p.X, Y: p.Y + 1}
	case MoveLeft:
		return core.Position{X: p.X - 1, Y: p.Y}
	case MoveRight:
		return core.Position{X: p.X + 1, Y: p.Y}
	default:
		return p
	}
}

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveStay:
		return "stay"
	default:
		return "unknown"
	}
}

// TagEvent records a role swap: the previous it tagged a runner who now
// becomes it.
type TagEvent struct {
	Tagger int // player that was it before resolution
	Tagged int // player that is it after resolution
}

// PlayerState is one entry of the ordered, read-only snapshot the
// environment hands to observers after each step.
type PlayerState struct {
	Player int
	Pos    core.Position
	Role   Role
}
