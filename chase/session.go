package chase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/pathgrid"
)

// Sentinel errors returned by Session.
var (
	// ErrNilGrid indicates NewSession was given a nil grid.
	ErrNilGrid = errors.New("chase: grid is nil")

	// ErrBlockedStart indicates an actor was placed on a barrier.
	ErrBlockedStart = errors.New("chase: actor placed on a barrier")

	// ErrOccupied indicates a toggle aimed at a cell an actor stands on.
	ErrOccupied = errors.New("chase: cell is occupied")

	// ErrCaught indicates an action after the enemy reached the player.
	ErrCaught = errors.New("chase: round is over")

	// ErrBadDirection indicates a direction that is not one of the eight unit
	// steps.
	ErrBadDirection = errors.New("chase: direction is not a unit step")
)

// Actor is anything with a position on the grid.
type Actor struct {
	Pos pathgrid.Coord
}

// Player is an Actor that also faces a direction; toggles target the cell in
// front of it.
type Player struct {
	Actor
	Facing pathgrid.Direction
}

// Session is one round. It is not safe for concurrent use.
type Session struct {
	grid   *pathgrid.Grid
	player Player
	enemy  Actor
	turn   int
	opts   Options
}

// NewSession places the player and the enemy on g. Both must be inside the
// grid and on passable cells. The player starts facing pathgrid.Right.
func NewSession(g *pathgrid.Grid, player, enemy pathgrid.Coord, opts ...Option) (*Session, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, at := range []pathgrid.Coord{player, enemy} {
		cell, err := g.Cell(at)
		if err != nil {
			return nil, fmt.Errorf("chase: place actor: %w", err)
		}
		if !cell.Passable() {
			return nil, fmt.Errorf("%w: %v", ErrBlockedStart, at)
		}
	}

	return &Session{
		grid:   g,
		player: Player{Actor: Actor{Pos: player}, Facing: pathgrid.Right},
		enemy:  Actor{Pos: enemy},
		opts:   cfg,
	}, nil
}

// Grid returns the grid the round is played on.
func (s *Session) Grid() *pathgrid.Grid { return s.grid }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Enemy returns a copy of the enemy.
func (s *Session) Enemy() Actor { return s.enemy }

// Turn returns the number of completed player actions.
func (s *Session) Turn() int { return s.turn }

// Caught reports whether the enemy stands on the player's cell.
func (s *Session) Caught() bool { return s.enemy.Pos == s.player.Pos }

// Move turns the player toward d, steps if CanReach allows it, then lets the
// enemy respond. Facing changes even when the step is blocked. A direction
// that is not a unit step is refused with ErrBadDirection and uses no turn.
func (s *Session) Move(d pathgrid.Direction) error {
	if s.Caught() {
		return ErrCaught
	}
	if !d.Unit() {
		return fmt.Errorf("%w: %+v", ErrBadDirection, d)
	}
	s.player.Facing = d

	cell, err := s.grid.Cell(s.player.Pos)
	if err != nil {
		return err
	}
	if target, _, ok := cell.CanReach(s.grid, d); ok {
		s.player.Pos = target
	}

	return s.endTurn("move")
}

// ToggleFacing flips the cell in front of the player between passable and
// barrier, repairs adjacency, then lets the enemy respond.
//
// Errors: pathgrid.ErrOutOfBounds when the player faces the edge, ErrOccupied
// when the enemy stands on the target. Neither consumes the turn.
func (s *Session) ToggleFacing() error {
	if s.Caught() {
		return ErrCaught
	}
	at := s.player.Pos.Add(s.player.Facing)
	if at == s.enemy.Pos {
		return fmt.Errorf("%w: %v", ErrOccupied, at)
	}
	if err := s.grid.ToggleAndRepair(at); err != nil {
		return err
	}

	cell, _ := s.grid.Cell(at)
	s.opts.Recorder.ObserveToggle(cell.Passable())
	if cell.Passable() && s.opts.StrictRepair {
		s.grid.RebuildAllAdjacency()
		s.opts.Recorder.ObserveRebuild()
	}

	return s.endTurn("toggle", slog.String("cell", at.String()), slog.Bool("passable", cell.Passable()))
}

// StepEnemy advances the enemy one cell toward the player. An unreachable
// player is not an error; the enemy simply waits.
func (s *Session) StepEnemy() error {
	if s.Caught() {
		return nil
	}

	opts := []pathgrid.Option{}
	if s.opts.MarkVisits {
		opts = append(opts, pathgrid.WithResetVisits(), pathgrid.WithVisitMarking())
	}

	began := time.Now()
	res, err := s.grid.Search(s.enemy.Pos, s.player.Pos, opts...)
	s.opts.Recorder.ObserveSearch(metrics.Outcome(err, res), time.Since(began), len(res.Path), res.Expanded)

	switch {
	case errors.Is(err, pathgrid.ErrNoPath):
		s.opts.Logger.Debug("enemy has no path", slog.String("enemy", s.enemy.Pos.String()))
		return nil
	case err != nil:
		return err
	}
	if len(res.Path) > 0 {
		s.enemy.Pos = res.Path[0]
	}

	return nil
}

// endTurn runs the enemy's response and closes the turn.
func (s *Session) endTurn(action string, attrs ...any) error {
	if err := s.StepEnemy(); err != nil {
		return err
	}
	s.turn++

	attrs = append(attrs,
		slog.Int("turn", s.turn),
		slog.String("player", s.player.Pos.String()),
		slog.String("enemy", s.enemy.Pos.String()),
		slog.Bool("caught", s.Caught()),
	)
	s.opts.Logger.Debug(action, attrs...)

	return nil
}
