// Package dlog implements a bounded baby-step/giant-step discrete-log
// solver over the group package's Point type, with a persisted baby-step
// table and parallel table construction / solving.
package dlog

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/shanksdlog/ecpke/group"
	"github.com/shanksdlog/ecpke/wnaf"
)

// CurveSecp256k1 identifies the curve a Table was built against, so a
// table built for the wrong curve is rejected instead of silently
// misinterpreted.
const CurveSecp256k1 uint16 = 1

// TableParams bounds the search range for a Table: it covers messages in
// [0, 2^L), split into a baby-step table of 2^(L/2+T) entries and a
// giant-step loop of 2^(L-L/2-T) iterations (L/2 rounded down, so an odd L
// puts its extra bit on the giant-step side). T trades table memory for
// giant-step time.
type TableParams struct {
	L uint8
	T int8
}

// BabySteps returns the baby-step table size 2^(L/2+T).
func (p TableParams) BabySteps() uint64 {
	return uint64(1) << uint((int(p.L)/2) + int(p.T))
}

// GiantSteps returns the giant-step loop count 2^(L-L/2-T), so that
// BabySteps()*GiantSteps() == 2^L.
func (p TableParams) GiantSteps() uint64 {
	return uint64(1) << uint(int(p.L) - (int(p.L)/2) - int(p.T))
}

// Table is a precomputed baby-step lookup over base, solving x*base = target
// for x in [0, 2^L).
type Table struct {
	g        *group.Group
	base     group.Point
	params   TableParams
	curveID  uint16
	baby     map[[33]byte]uint64
	giant    group.Point // BabySteps() * base
	giantNeg group.Point // -giant
}

// BuildTable constructs a Table for the given base point and parameters,
// using up to runtime.GOMAXPROCS(0) goroutines to fill disjoint shards of
// the baby-step table concurrently.
func BuildTable(g *group.Group, base group.Point, params TableParams) (*Table, error) {
	n := params.BabySteps()
	baby := make(map[[33]byte]uint64, n)

	workers := runtime.GOMAXPROCS(0)
	if uint64(workers) > n {
		workers = int(n)
	}
	if workers < 1 {
		workers = 1
	}

	table := wnaf.Precompute(g, base, int(g.Order().BitLen()))

	type shardResult struct {
		start uint64
		pts   []group.Point
	}
	shardSize := (n + uint64(workers) - 1) / uint64(workers)

	results := make([]shardResult, workers)
	eg := new(errgroup.Group)
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
			pts := make([]group.Point, 0, end-start)
			var cur group.Point
			if start == 0 {
				cur = g.Identity()
			} else {
				cur = table.FastMul(group.ScalarFromUint64(start))
			}
			for i := start; i < end; i++ {
				pts = append(pts, cur)
				cur = g.Add(cur, base)
			}
			results[w] = shardResult{start: start, pts: pts}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		for i, p := range r.pts {
			baby[p.Bytes()] = r.start + uint64(i)
		}
	}

	giant := table.FastMul(group.ScalarFromUint64(n))

	return &Table{
		g:        g,
		base:     base,
		params:   params,
		curveID:  CurveSecp256k1,
		baby:     baby,
		giant:    giant,
		giantNeg: g.Negate(giant),
	}, nil
}
