package dlog

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/shanksdlog/ecpke/group"
)

// Solve returns x in [0, 2^L) such that x*base = target, per this table's
// base and TableParams, or ErrNotFoundInRange if no such x exists in range.
func (t *Table) Solve(target group.Point) (uint64, error) {
	n := t.params.GiantSteps()
	cur := target
	for i := uint64(0); i < n; i++ {
		if idx, ok := t.baby[cur.Bytes()]; ok {
			return i*t.params.BabySteps() + idx, nil
		}
		cur = t.g.Add(cur, t.giantNeg)
	}
	return 0, ErrNotFoundInRange
}

// ParallelSolve is Solve split across runtime.GOMAXPROCS(0) goroutines,
// each scanning a disjoint slice of the giant-step range. The first
// goroutine to find a match publishes it and cancels the rest.
func (t *Table) ParallelSolve(ctx context.Context, target group.Point) (uint64, error) {
	n := t.params.GiantSteps()
	workers := runtime.GOMAXPROCS(0)
	if uint64(workers) > n {
		workers = int(n)
	}
	if workers < 1 {
		workers = 1
	}
	shardSize := (n + uint64(workers) - 1) / uint64(workers)

	var found int32
	var result uint64

	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		start := uint64(w) * shardSize
		if start >= n {
			continue
		}
		end := start + shardSize
		if end > n {
			end = n
		}
		eg.Go(func() error {
			cur := t.stepTo(target, start)
			for i := start; i < end; i++ {
				select {
				case <-egCtx.Done():
					return nil
				default:
				}
				if atomic.LoadInt32(&found) == 1 {
					return nil
				}
				if idx, ok := t.baby[cur.Bytes()]; ok {
					if atomic.CompareAndSwapInt32(&found, 0, 1) {
						atomic.StoreUint64(&result, i*t.params.BabySteps()+idx)
					}
					return nil
				}
				cur = t.g.Add(cur, t.giantNeg)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	if atomic.LoadInt32(&found) == 1 {
		return atomic.LoadUint64(&result), nil
	}
	return 0, ErrNotFoundInRange
}

// stepTo returns target - i*giant, the giant-step cursor a worker starting
// at shard offset i would otherwise have reached by repeated subtraction.
func (t *Table) stepTo(target group.Point, i uint64) group.Point {
	if i == 0 {
		return target
	}
	shift := t.g.Mul(group.ScalarFromUint64(i), t.giant)
	return t.g.Sub(target, shift)
}
