// Package agent contains the per-player decision strategies.
// Strategies are pure: given the same view and player index they always
// return the same move, with ties broken by the fixed preference order
// up, down, left, right, stay.
package agent

import (
	"github.com/platy/tag-sim/internal/core"
	"github.com/platy/tag-sim/internal/game"
)

// Strategy decides a move for one player based on a read-only view of the
// environment. Implementations hold no state that affects correctness.
type Strategy interface {
	Decide(v game.View, self int) game.Move
}

// ForRole returns the strategy matching a player's role.
func ForRole(r game.Role) Strategy {
	if r == game.It {
		return ItStrategy{}
	}
	return RunnerStrategy{}
}

// ItStrategy chases: it picks the move that minimizes the squared Euclidean
// distance to the nearest runner after the move.
type ItStrategy struct{}

// Decide implements Strategy.
func (ItStrategy) Decide(v game.View, self int) game.Move {
	pos, err := v.PositionOf(self)
	if err != nil {
		return game.MoveStay
	}

	best := game.MoveStay
	bestDist := -1
	for _, m := range game.Moves {
		candidate := v.Bounds().ClampInto(m.Apply(pos))
		d, ok := nearestRunnerDist(v, self, candidate)
		if !ok {
			return game.MoveStay
		}
		if bestDist < 0 || d < bestDist {
			best = m
			bestDist = d
		}
	}
	return best
}

// nearestRunnerDist returns the squared distance from pos to the closest
// runner other than self. ok is false when there are no other runners.
func nearestRunnerDist(v game.View, self int, pos core.Position) (int, bool) {
	nearest := -1
	for i := 0; i < v.Players(); i++ {
		if i == self {
			continue
		}
		role, err := v.RoleOf(i)
		if err != nil || role != game.Runner {
			continue
		}
		p, err := v.PositionOf(i)
		if err != nil {
			continue
		}
		if d := core.SqDist(pos, p); nearest < 0 || d < nearest {
			nearest = d
		}
	}
	if nearest < 0 {
		return 0, false
	}
	return nearest, true
}

// RunnerStrategy flees: it picks the move that maximizes the squared
// Euclidean distance to the current it after the move, subject to staying in
// bounds. A cornered runner's moves clamp back onto the field, so its best
// remaining option (possibly stay) is chosen naturally.
type RunnerStrategy struct{}

// Decide implements Strategy.
func (RunnerStrategy) Decide(v game.View, self int) game.Move {
	pos, err := v.PositionOf(self)
	if err != nil {
		return game.MoveStay
	}
	itPos, err := v.PositionOf(v.ItIndex())
	if err != nil {
		return game.MoveStay
	}

	best := game.MoveStay
	bestDist := -1
	for _, m := range game.Moves {
		candidate := v.Bounds().ClampInto(m.Apply(pos))
		if d := core.SqDist(candidate, itPos); d > bestDist {
			best = m
			bestDist = d
		}
	}
	return best
}
