// Package sim orchestrates a run of the tag simulation: it seats the
// players on the field, then repeats decide / apply / resolve for a fixed
// number of steps, emitting a frame to an observer after each one.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/platy/tag-sim/internal/agent"
	"github.com/platy/tag-sim/internal/core"
	"github.com/platy/tag-sim/internal/game"
)

// Phase is the lifecycle state of a simulation.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseFinished
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Config describes one run.
type Config struct {
	Players int        // number of players, must be positive
	Steps   int        // number of steps, must be positive
	Field   core.Field // playing area
	Seed    int64      // seed for starting placement
}

// Frame is what the simulation hands to its observer after each step: the
// post-resolution snapshot plus everything that happened during the step.
type Frame struct {
	Step    int // 1-based, Step == Config.Steps on the final frame
	Players []game.PlayerState
	Moves   []game.Move
	Tags    []game.TagEvent
}

// Observer receives one frame per completed step. The zero observer is
// allowed; a nil Observer on Run means frames are discarded.
type Observer interface {
	Frame(f Frame)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(f Frame)

// Frame implements Observer.
func (f ObserverFunc) Frame(frame Frame) { f(frame) }

// Simulation owns the environment for the duration of a run.
type Simulation struct {
	cfg   Config
	env   *game.Environment
	phase Phase
	step  int
	tags  int
}

// New validates the configuration, places the players and returns a
// simulation in the not-started phase. Player 0 begins as it; starting
// positions are pairwise distinct cells drawn from the seeded source, so two
// runs with the same config produce identical frame sequences.
func New(cfg Config) (*Simulation, error) {
	if cfg.Players <= 0 {
		return nil, fmt.Errorf("sim: player count must be positive, got %d", cfg.Players)
	}
	if cfg.Steps <= 0 {
		return nil, fmt.Errorf("sim: step count must be positive, got %d", cfg.Steps)
	}
	if cfg.Field.W <= 0 || cfg.Field.H <= 0 {
		return nil, fmt.Errorf("sim: field must be non-empty, got %dx%d", cfg.Field.W, cfg.Field.H)
	}
	if cfg.Field.Cells() < cfg.Players {
		return nil, fmt.Errorf("sim: %dx%d field cannot seat %d players at distinct cells",
			cfg.Field.W, cfg.Field.H, cfg.Players)
	}

	env, err := game.NewEnvironment(cfg.Field, place(cfg))
	if err != nil {
		return nil, err
	}

	return &Simulation{cfg: cfg, env: env}, nil
}

// place returns starting states on distinct cells of the field.
func place(cfg Config) []game.PlayerState {
	rng := rand.New(rand.NewSource(cfg.Seed))
	cells := rng.Perm(cfg.Field.Cells())

	states := make([]game.PlayerState, cfg.Players)
	for i := range states {
		role := game.Runner
		if i == 0 {
			role = game.It
		}
		states[i] = game.PlayerState{
			Player: i,
			Pos:    core.Position{X: cells[i] % cfg.Field.W, Y: cells[i] / cfg.Field.W},
			Role:   role,
		}
	}
	return states
}

// Config returns the configuration the simulation was created with.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Phase returns the current lifecycle phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// StepCount returns the number of completed steps.
func (s *Simulation) StepCount() int {
	return s.step
}

// TagCount returns the number of tags that have occurred so far.
func (s *Simulation) TagCount() int {
	return s.tags
}

// Done reports whether the simulation has completed all its steps.
func (s *Simulation) Done() bool {
	return s.phase == PhaseFinished
}

// Snapshot returns the current ordered player states.
func (s *Simulation) Snapshot() []game.PlayerState {
	return s.env.Snapshot()
}

// Step advances the simulation by one step:
//
//  1. Every player decides, in index order, against the same pre-step view.
//  2. All moves are applied, in the same order.
//  3. Tags are resolved once.
//
// Calling Step on a finished simulation returns the final frame unchanged.
func (s *Simulation) Step() Frame {
	if s.phase == PhaseFinished {
		return Frame{Step: s.step, Players: s.env.Snapshot()}
	}
	s.phase = PhaseRunning

	view := s.env.View()
	moves := make([]game.Move, s.cfg.Players)
	for p := 0; p < s.cfg.Players; p++ {
		role, _ := view.RoleOf(p)
		moves[p] = agent.ForRole(role).Decide(view, p)
	}

	for p, m := range moves {
		// Only index errors are possible here and p is always in range.
		_ = s.env.ApplyMove(p, m)
	}

	events := s.env.ResolveTags()
	s.tags += len(events)
	s.step++
	if s.step >= s.cfg.Steps {
		s.phase = PhaseFinished
	}

	return Frame{
		Step:    s.step,
		Players: s.env.Snapshot(),
		Moves:   moves,
		Tags:    events,
	}
}

// Run executes the remaining steps, emitting each frame to the observer.
func (s *Simulation) Run(obs Observer) {
	for !s.Done() {
		frame := s.Step()
		if obs != nil {
			obs.Frame(frame)
		}
	}
}
