// Package leaderboard keeps player scores ranked in an AVL tree.
//
// A board holds at most one entry per score: inserting a score that is
// already ranked is a no-op, as in the tree itself. In-order traversal yields
// the ranking, highest score first.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/comfforts/logger"

	"github.com/tp-group5/algokit/tree"
)

var (
	// ErrScoreNotFound is returned by Delete for a score that is not ranked.
	ErrScoreNotFound = errors.New("leaderboard: score not found")

	// ErrSeedRange is returned by Seed when [lo, hi] holds fewer distinct
	// scores than requested.
	ErrSeedRange = errors.New("leaderboard: seed range too small")
)

// Entry is one ranked player.
type Entry struct {
	Name  string
	Score int
}

// String renders the entry as it appears on the board.
func (e Entry) String() string { return fmt.Sprintf("Player: %s, score: %d.", e.Name, e.Score) }

// Order selects a traversal of the underlying tree.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

var orderNames = [...]string{"Pre-order", "In-order", "Post-order", "Level-order"}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}

	return orderNames[o]
}

// byScoreDesc ranks higher scores first; names do not take part.
func byScoreDesc(a, b Entry) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	default:
		return 0
	}
}

// Board is a score ranking. It is not safe for concurrent use.
type Board struct {
	scores *tree.AVL[Entry]
	log    logger.Logger
}

// New returns an empty board logging through the logger stored in ctx.
func New(ctx context.Context) *Board {
	l, err := logger.LoggerFromContext(ctx)
	if err != nil {
		l = logger.GetSlogLogger()
	}

	return &Board{scores: tree.NewAVLFunc(byScoreDesc), log: l}
}

// Len returns the number of ranked entries.
func (b *Board) Len() int { return b.scores.Len() }

// Insert ranks name with score. It returns false, leaving the board
// unchanged, if the score is already ranked.
func (b *Board) Insert(name string, score int) bool {
	if !b.scores.Insert(Entry{Name: name, Score: score}) {
		b.log.Debug("leaderboard: duplicate score ignored", slog.String("name", name), slog.Int("score", score))
		return false
	}
	b.log.Debug("leaderboard: inserted", slog.String("name", name), slog.Int("score", score), slog.Int("size", b.scores.Len()))

	return true
}

// Delete removes the entry holding score.
func (b *Board) Delete(score int) error {
	if err := b.scores.Delete(Entry{Score: score}); err != nil {
		if errors.Is(err, tree.ErrNotFound) {
			return fmt.Errorf("%w: %d", ErrScoreNotFound, score)
		}
		return err
	}
	b.log.Debug("leaderboard: deleted", slog.Int("score", score), slog.Int("size", b.scores.Len()))

	return nil
}

// Lookup returns the entry holding score.
func (b *Board) Lookup(score int) (Entry, bool) {
	n, err := b.scores.Lookup(Entry{Score: score})
	if err != nil {
		return Entry{}, false
	}

	return n.Data(), true
}

// Rank returns the 1-based position of score, or false if it is not ranked.
func (b *Board) Rank(score int) (int, bool) {
	rank, pos := 0, 0
	b.scores.InOrder(func(e Entry) {
		pos++
		if e.Score == score {
			rank = pos
		}
	})

	return rank, rank > 0
}

// Top returns the n best entries, best first. n larger than Len returns all.
func (b *Board) Top(n int) []Entry {
	all := b.scores.Values()
	if n < 0 {
		n = 0
	}
	if n < len(all) {
		all = all[:n]
	}

	return all
}

// Traverse returns the entries in the given tree order. An unknown order
// falls back to InOrder.
func (b *Board) Traverse(order Order) []Entry {
	out := make([]Entry, 0, b.scores.Len())
	collect := func(e Entry) { out = append(out, e) }
	switch order {
	case PreOrder:
		b.scores.PreOrder(collect)
	case PostOrder:
		b.scores.PostOrder(collect)
	case LevelOrder:
		b.scores.LevelOrder(collect)
	default:
		b.scores.InOrder(collect)
	}

	return out
}

// Clear removes every entry.
func (b *Board) Clear() { b.scores.Clear() }

// Seed fills the board with random scores in [lo, hi] until it holds n
// entries, naming each with a random player name.
func (b *Board) Seed(rng *rand.Rand, n, lo, hi int) error {
	if hi < lo || hi-lo+1 < n {
		return fmt.Errorf("%w: %d scores in [%d, %d]", ErrSeedRange, n, lo, hi)
	}
	for b.scores.Len() < n {
		b.Insert(playerNames[rng.Intn(len(playerNames))], lo+rng.Intn(hi-lo+1))
	}

	return nil
}

var playerNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda", "William", "Elizabeth",
	"David", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
	"Christopher", "Nancy", "Daniel", "Lisa", "Matthew", "Margaret", "Anthony", "Betty", "Mark", "Sandra",
}
