// Package elgamal implements the lifted (additively homomorphic) ElGamal
// public-key encryption scheme: ciphertext (X, Y) = (g^r, pk^r * g^m),
// ported from original_source/src/elgamal_pke.hpp in the retrieval pack
// this module was built from onto the group/wnaf/dlog packages.
package elgamal

import (
	"os"

	"github.com/shanksdlog/ecpke/dlog"
	"github.com/shanksdlog/ecpke/group"
	"github.com/shanksdlog/ecpke/wnaf"
)

// PublicParams are the scheme's domain parameters: the group, its
// generator (with a wNAF precompute table for fast fixed-base
// multiplication), and the discrete-log table bounding the plaintext
// space to [0, 2^L): HomoSub on a pair of ciphertexts whose plaintext
// difference would be negative is out of range and Dec reports
// ErrNotFoundInRange, matching the original's unsigned message space.
type PublicParams struct {
	Group      *group.Group
	Generator  group.Point
	DlogParams dlog.TableParams

	genTable  *wnaf.Table
	dlogTable *dlog.Table
}

// Setup creates the scheme's public parameters for plaintexts in
// [0, 2^dlogParams.L). It does not build or load the discrete-log table;
// call Initialize before the first Dec.
func Setup(dlogParams dlog.TableParams) *PublicParams {
	g := group.New()
	return &PublicParams{
		Group:      g,
		Generator:  g.Generator(),
		DlogParams: dlogParams,
		genTable:   wnaf.Precompute(g, g.Generator(), g.Order().BitLen()),
	}
}

// Initialize loads the discrete-log table from tablePath if it exists and
// matches pp.DlogParams, or builds it and writes it to tablePath when the
// file is absent or its header does not match. Any other load error (an
// unreadable or truncated file) is returned.
// This mirrors ElGamal_Initialize's load-or-build-the-hashmap convenience
// in the original implementation.
func (pp *PublicParams) Initialize(tablePath string) error {
	if _, err := os.Stat(tablePath); err == nil {
		table, lerr := dlog.LoadTable(pp.Group, pp.Generator, tablePath, pp.DlogParams)
		if lerr == nil {
			pp.dlogTable = table
			return nil
		}
		if lerr != dlog.ErrTableMismatch {
			return lerr
		}
		// fall through and rebuild on a parameter mismatch
	}
	table, err := dlog.BuildTable(pp.Group, pp.Generator, pp.DlogParams)
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
