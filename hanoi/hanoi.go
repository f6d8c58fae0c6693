// Package hanoi implements the Tower of Hanoi puzzle on three stack-backed
// towers, with move validation, undo history and an optimal solver.
//
// Disks are numbered by size, 1 being the smallest. A new game stacks every
// disk on tower 0; the game is solved when tower 2 holds them all.
package hanoi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/comfforts/logger"

	"github.com/tp-group5/algokit/stack"
)

const (
	// Towers is the number of pegs.
	Towers = 3
	// MaxDisks bounds a game so that the 2^n − 1 optimal moves stay listable.
	MaxDisks = 20
)

var (
	// ErrBadTower indicates a tower index outside [0, Towers).
	ErrBadTower = errors.New("hanoi: tower index out of range")
	// ErrEmptyTower indicates a move from a tower with no disks.
	ErrEmptyTower = errors.New("hanoi: source tower is empty")
	// ErrIllegalMove indicates a disk placed on a smaller or equal one.
	ErrIllegalMove = errors.New("hanoi: cannot place a disk on a smaller one")
	// ErrNothingToUndo indicates Undo with an empty history.
	ErrNothingToUndo = errors.New("hanoi: no move to undo")
	// ErrBadDiskCount indicates a disk count outside [1, MaxDisks].
	ErrBadDiskCount = errors.New("hanoi: disk count out of range")
)

// Move records one disk transfer.
type Move struct {
	Disk     int
	From, To int
}

func (m Move) String() string { return fmt.Sprintf("Disk: %d, From: %d, To: %d", m.Disk, m.From, m.To) }

// Game is one puzzle in progress. It is not safe for concurrent use.
type Game struct {
	disks   int
	towers  [Towers]*stack.Stack[int]
	history *stack.Stack[Move]
	log     logger.Logger
}

// NewGame stacks disks n..1 on tower 0. The logger is taken from ctx.
func NewGame(ctx context.Context, disks int) (*Game, error) {
	if err := checkDisks(disks); err != nil {
		return nil, err
	}
	l, err := logger.LoggerFromContext(ctx)
	if err != nil {
		l = logger.GetSlogLogger()
	}
	g := &Game{disks: disks, history: stack.New[Move](), log: l}
	for i := range g.towers {
		g.towers[i] = stack.New[int]()
	}
	for d := disks; d >= 1; d-- {
		g.towers[0].Push(d)
	}

	return g, nil
}

// Disks returns the number of disks in play.
func (g *Game) Disks() int { return g.disks }

// Tower returns the disks on tower i from bottom to top.
func (g *Game) Tower(i int) ([]int, error) {
	if err := checkTower(i); err != nil {
		return nil, err
	}

	return g.towers[i].ToSlice(), nil
}

func checkDisks(n int) error {
	if n < 1 || n > MaxDisks {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrBadDiskCount, n, MaxDisks)
	}

	return nil
}

func checkTower(i int) error {
	if i < 0 || i >= Towers {
		return fmt.Errorf("%w: %d", ErrBadTower, i)
	}

	return nil
}

// Move transfers the top disk of tower from onto tower to.
func (g *Game) Move(from, to int) error {
	if err := checkTower(from); err != nil {
		return err
	}
	if err := checkTower(to); err != nil {
		return err
	}
	disk, ok := g.towers[from].TryPeek()
	if !ok {
		return fmt.Errorf("%w: tower %d", ErrEmptyTower, from)
	}
	if top, ok := g.towers[to].TryPeek(); ok && top <= disk {
		return fmt.Errorf("%w: disk %d onto disk %d", ErrIllegalMove, disk, top)
	}

	_, _ = g.towers[from].Pop()
	g.towers[to].Push(disk)
	m := Move{Disk: disk, From: from, To: to}
	g.history.Push(m)
	g.log.Debug("hanoi: moved", slog.String("move", m.String()), slog.Int("moves", g.history.Len()))
	if g.Solved() {
		g.log.Debug("hanoi: solved", slog.Int("disks", g.disks), slog.Int("moves", g.history.Len()))
	}

	return nil
}

// Undo reverts the most recent move.
func (g *Game) Undo() (Move, error) {
	m, ok := g.history.TryPop()
	if !ok {
		return Move{}, ErrNothingToUndo
	}
	disk, _ := g.towers[m.To].Pop()
	g.towers[m.From].Push(disk)
	g.log.Debug("hanoi: undone", slog.String("move", m.String()), slog.Int("moves", g.history.Len()))

	return m, nil
}

// MoveCount returns the number of moves made and not undone.
func (g *Game) MoveCount() int { return g.history.Len() }

// History returns the moves made so far, oldest first.
func (g *Game) History() []Move { return g.history.ToSlice() }

// Solved reports whether the last tower holds every disk.
func (g *Game) Solved() bool { return g.towers[Towers-1].Len() == g.disks }

// Solve returns the optimal 2^disks − 1 moves taking every disk from
// tower 0 to tower 2. disks must lie in [1, MaxDisks].
func Solve(disks int) ([]Move, error) {
	if err := checkDisks(disks); err != nil {
		return nil, err
	}
	moves := make([]Move, 0, (1<<disks)-1)
	var rec func(n, from, to, via int)
	rec = func(n, from, to, via int) {
		if n == 0 {
			return
		}
		rec(n-1, from, via, to)
		moves = append(moves, Move{Disk: n, From: from, To: to})
		rec(n-1, via, to, from)
	}
	rec(disks, 0, Towers-1, 1)

	return moves, nil
}
