package twisted

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shanksdlog/ecpke/group"
)

// ParallelEncWithRandomness computes a ciphertext's X and Y halves on
// separate goroutines.
func ParallelEncWithRandomness(pp *PublicParams, pk group.Point, m int64, r group.Scalar) (*Ciphertext, error) {
	if err := pp.checkRange(m); err != nil {
		return nil, err
	}
	var eg errgroup.Group
	var x, y group.Point
	eg.Go(func() error {
		x = pp.Group.Mul(r, pk)
		return nil
	})
	eg.Go(func() error {
		y = pp.Group.Add(pp.genTable.FastMul(r), encodeMessagePoint(pp, m))
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &Ciphertext{X: x, Y: y}, nil
}

// ParallelEnc is ParallelEncWithRandomness with freshly drawn randomness.
func ParallelEnc(pp *PublicParams, pk group.Point, m int64) (*Ciphertext, error) {
	r, err := pp.Group.RandScalar()
	if err != nil {
		return nil, err
	}
	return ParallelEncWithRandomness(pp, pk, m, r)
}

// ParallelDec is Dec with the discrete-log solve handed to
// dlog.Table.ParallelSolve.
func ParallelDec(ctx context.Context, pp *PublicParams, sk group.Scalar, ct *Ciphertext) (int64, error) {
	skInv := pp.Group.Invert(sk)
	mPoint := pp.Group.Sub(ct.Y, pp.Group.Mul(skInv, ct.X))
	x, err := pp.dlogTable.ParallelSolve(ctx, mPoint)
	if err != nil {
		return 0, err
	}
	return int64(x), nil
}

// ParallelReRand computes ct's re-randomized X and Y halves concurrently.
func ParallelReRand(pp *PublicParams, pk group.Point, ct *Ciphertext) (*Ciphertext, error) {
	r, err := pp.Group.RandScalar()
	if err != nil {
		return nil, err
	}
	var eg errgroup.Group
	var x, y group.Point
	eg.Go(func() error {
		x = pp.Group.Add(ct.X, pp.Group.Mul(r, pk))
		return nil
	})
	eg.Go(func() error {
		y = pp.Group.Add(ct.Y, pp.genTable.FastMul(r))
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &Ciphertext{X: x, Y: y}, nil
}

// ParallelHomoAdd computes ct1+ct2's X and Y halves concurrently.
func ParallelHomoAdd(pp *PublicParams, ct1, ct2 *Ciphertext) *Ciphertext {
	var eg errgroup.Group
	var x, y group.Point
	eg.Go(func() error {
		x = pp.Group.Add(ct1.X, ct2.X)
		return nil
	})
	eg.Go(func() error {
		y = pp.Group.Add(ct1.Y, ct2.Y)
		return nil
	})
	eg.Wait()
	return &Ciphertext{X: x, Y: y}
}

// ParallelHomoSub computes ct1-ct2's X and Y halves concurrently.
func ParallelHomoSub(pp *PublicParams, ct1, ct2 *Ciphertext) *Ciphertext {
	var eg errgroup.Group
	var x, y group.Point
	eg.Go(func() error {
		x = pp.Group.Sub(ct1.X, ct2.X)
		return nil
	})
	eg.Go(func() error {
		y = pp.Group.Sub(ct1.Y, ct2.Y)
		return nil
	})
	eg.Wait()
	return &Ciphertext{X: x, Y: y}
}

// ParallelScalarMul computes k*ct's X and Y halves concurrently.
func ParallelScalarMul(pp *PublicParams, ct *Ciphertext, k int64) *Ciphertext {
	ks := group.ScalarFromInt64(k)
	var eg errgroup.Group
	var x, y group.Point
	eg.Go(func() error {
		x = pp.Group.Mul(ks, ct.X)
		return nil
	})
	eg.Go(func() error {
		y = pp.Group.Mul(ks, ct.Y)
		return nil
	})
	eg.Wait()
	return &Ciphertext{X: x, Y: y}
}
