// Package twisted implements twisted ElGamal encryption: ciphertext
// (X, Y) = (pk^r, g^r * h^m), where h is a second generator with unknown
// discrete log to g. Message recovery still reduces to a bounded discrete
// log, now of Y/g^r base h, so it shares the dlog package's solver.
// Grounded on the call surface fixed by
// original_source/test/test_twisted_elgamal.cpp (twisted_elgamal_pke.hpp
// itself is not part of the retrieval pack).
package twisted

import (
	"os"

	"github.com/shanksdlog/ecpke/dlog"
	"github.com/shanksdlog/ecpke/group"
	"github.com/shanksdlog/ecpke/wnaf"
)

// hBaseDomain domain-separates the derivation of h from any other use of
// HashToPoint in this module, so a future caller deriving a different
// independent base cannot collide with it.
const hBaseDomain = "ecpke/twisted-h-base"

// PublicParams are the scheme's domain parameters: the group, its
// generator g, the independent message base h, and the discrete-log table
// bounding the plaintext space to [0, 2^L).
type PublicParams struct {
	Group      *group.Group
	Generator  group.Point
	H          group.Point
	DlogParams dlog.TableParams

	genTable  *wnaf.Table
	hTable    *wnaf.Table
	dlogTable *dlog.Table
}

// Setup creates the scheme's public parameters. h is derived
// deterministically from g via a domain-separated hash-to-curve, so every
// caller on a given curve agrees on the same h without either party
// learning its discrete log to g (spec's open question on h's derivation).
func Setup(dlogParams dlog.TableParams) *PublicParams {
	g := group.New()
	h := g.HashToPoint(hBaseDomain, func() []byte { b := g.Generator().Bytes(); return b[:] }())
	return &PublicParams{
		Group:      g,
		Generator:  g.Generator(),
		H:          h,
		DlogParams: dlogParams,
		genTable:   wnaf.Precompute(g, g.Generator(), g.Order().BitLen()),
		hTable:     wnaf.Precompute(g, h, g.Order().BitLen()),
	}
}

// Initialize loads the discrete-log table (over base h) from tablePath if
// it exists and matches pp.DlogParams, or builds and persists it when the
// file is absent or its header does not match. Any other load error (an
// unreadable or truncated file) is returned.
func (pp *PublicParams) Initialize(tablePath string) error {
	if _, err := os.Stat(tablePath); err == nil {
		table, lerr := dlog.LoadTable(pp.Group, pp.H, tablePath, pp.DlogParams)
		if lerr == nil {
			pp.dlogTable = table
			return nil
		}
		if lerr != dlog.ErrTableMismatch {
			return lerr
		}
	}
	table, err := dlog.BuildTable(pp.Group, pp.H, pp.DlogParams)
	if err != nil {
		return err
	}
	if err := table.SaveTable(tablePath); err != nil {
		return err
	}
	pp.dlogTable = table
	return nil
}

// messageBound returns the exclusive upper bound of the plaintext range
// this PublicParams' dlog table covers: [0, bound).
func (pp *PublicParams) messageBound() int64 {
	return int64(uint64(1) << pp.DlogParams.L)
}

func (pp *PublicParams) checkRange(m int64) error {
	if m < 0 || m >= pp.messageBound() {
		return ErrMessageOutOfRange
	}
	return nil
}
