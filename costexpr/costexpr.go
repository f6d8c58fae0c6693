// Package costexpr compiles per-cell cost expressions for the pathfinder.
//
// An expression is a JavaScript expression evaluated with the integer
// variables x and y bound to the cell coordinate, for example
//
//	1 + (x > 3 && x < 7 ? 9 : 0)
//	Math.abs(x - y) + 1
//
// and must evaluate to a positive finite number.
package costexpr

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dop251/goja"

	"github.com/tp-group5/algokit/gridgraph"
	"github.com/tp-group5/algokit/pathfind"
)

var (
	// ErrCompile wraps syntax errors in an expression.
	ErrCompile = errors.New("costexpr: compile")
	// ErrEval wraps runtime errors raised while evaluating an expression.
	ErrEval = errors.New("costexpr: eval")
	// ErrBadValue indicates a result that is not a positive finite number.
	ErrBadValue = errors.New("costexpr: cost must be a positive finite number")
)

// Expr is a compiled cost expression. It owns a JavaScript runtime and is
// not safe for concurrent use.
type Expr struct {
	src  string
	prog *goja.Program
	vm   *goja.Runtime
}

// Compile parses src.
func Compile(src string) (*Expr, error) {
	prog, err := goja.Compile("cost", src, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}

	return &Expr{src: src, prog: prog, vm: goja.New()}, nil
}

// String returns the expression source.
func (e *Expr) String() string { return e.src }

// Eval evaluates the expression at c without validating the result.
func (e *Expr) Eval(c gridgraph.Coord) (float64, error) {
	if err := e.vm.Set("x", c.X); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEval, err)
	}
	if err := e.vm.Set("y", c.Y); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEval, err)
	}
	v, err := e.vm.RunProgram(e.prog)
	if err != nil {
		return 0, fmt.Errorf("%w: at %v: %v", ErrEval, c, err)
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0, fmt.Errorf("%w: at %v: expression returned no value", ErrEval, c)
	}

	return v.ToFloat(), nil
}

// CostFunc evaluates the expression once for every walkable cell in walk
// and returns a lookup usable with pathfind.WithCost. It fails with
// ErrBadValue on the first cell whose cost is not positive and finite.
// Cancelling ctx interrupts a running evaluation.
func (e *Expr) CostFunc(ctx context.Context, walk map[gridgraph.Coord]bool) (pathfind.CostFunc, error) {
	interrupted := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		e.vm.Interrupt(ctx.Err())
		close(interrupted)
	})
	defer func() {
		if !stop() {
			<-interrupted
		}
		e.vm.ClearInterrupt()
	}()

	table := make(map[gridgraph.Coord]float64, len(walk))
	for c, ok := range walk {
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := e.Eval(c)
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return nil, cerr
			}
			return nil, err
		}
		if !(v > 0) || math.IsInf(v, 1) {
			return nil, fmt.Errorf("%w: cost%v = %v", ErrBadValue, c, v)
		}
		table[c] = v
	}

	return func(c gridgraph.Coord) float64 {
		if v, ok := table[c]; ok {
			return v
		}
		return math.NaN()
	}, nil
}
