// Package group wraps the secp256k1 curve arithmetic this repository builds
// on (github.com/btcsuite/btcd/btcec/v2, github.com/decred/dcrd/dcrec/secp256k1/v4)
// behind the small Scalar/Point/Group vocabulary the rest of the packages
// are written against. It owns no field or point arithmetic of its own.
package group

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Scalar is an element of Z_N, N the order of the secp256k1 group.
type Scalar struct {
	v secp256k1.ModNScalar
}

// Point is an element of the secp256k1 group, held in Jacobian form.
type Point struct {
	p secp256k1.JacobianPoint
}

// Group is an immutable handle on the secp256k1 group and its generator. It
// carries no mutable state, so a single Group value may be shared freely
// across goroutines.
type Group struct {
	generator Point
	order     *big.Int
}

// New returns the secp256k1 group handle.
func New() *Group {
	g := &Group{order: btcec.S256().N}
	var one secp256k1.ModNScalar
	one.SetInt(1)
	secp256k1.ScalarBaseMultNonConst(&one, &g.generator.p)
	return g
}

// Order returns the group order N as a big.Int. Callers must not mutate the
// returned value.
func (g *Group) Order() *big.Int {
	return g.order
}

// Generator returns the group's base point g.
func (g *Group) Generator() Point {
	return g.generator
}

// RandScalar draws a uniformly random non-zero scalar in [1, N).
func (g *Group) RandScalar() (Scalar, error) {
	var buf [32]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return Scalar{}, err
		}
		var s secp256k1.ModNScalar
		overflow := s.SetByteSlice(buf[:])
		if overflow {
			continue
		}
		if s.IsZero() {
			continue
		}
		return Scalar{v: s}, nil
	}
}

// RandPoint draws g^s for a uniformly random scalar s, returning both.
func (g *Group) RandPoint() (Point, Scalar, error) {
	s, err := g.RandScalar()
	if err != nil {
		return Point{}, Scalar{}, err
	}
	return g.GMul(s), s, nil
}

// ScalarFromUint64 embeds a small non-negative message into a scalar.
func ScalarFromUint64(v uint64) Scalar {
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[24:], v)
	var s secp256k1.ModNScalar
	s.SetByteSlice(buf[:])
	return Scalar{v: s}
}

// ScalarFromInt64 embeds a signed message into a scalar, wrapping negative
// values to their representative in [0, N) via negation.
func ScalarFromInt64(v int64) Scalar {
	if v >= 0 {
		return ScalarFromUint64(uint64(v))
	}
	s := ScalarFromUint64(uint64(-v))
	s.v.Negate()
	return s
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.v.IsZero()
}

// Equal reports whether two scalars are the same element of Z_N.
func (s Scalar) Equal(o Scalar) bool {
	return s.v.Equals(&o.v)
}

// Add returns s + o mod N.
func (s Scalar) Add(o Scalar) Scalar {
	var r secp256k1.ModNScalar
	r.Set(&s.v)
	r.Add(&o.v)
	return Scalar{v: r}
}

// Sub returns s - o mod N.
func (s Scalar) Sub(o Scalar) Scalar {
	return s.Add(o.Negate())
}

// Mul returns s * o mod N.
func (s Scalar) Mul(o Scalar) Scalar {
	var r secp256k1.ModNScalar
	r.Set(&s.v)
	r.Mul(&o.v)
	return Scalar{v: r}
}

// Negate returns -s mod N.
func (s Scalar) Negate() Scalar {
	var r secp256k1.ModNScalar
	r.Set(&s.v)
	r.Negate()
	return Scalar{v: r}
}

// Invert returns s^-1 mod N. It is only ever called on keys known to be
// non-zero, so the zero-scalar case is a caller error rather than a value
// this package needs to report through the normal error path.
func (g *Group) Invert(s Scalar) Scalar {
	b := s.v.Bytes()
	x := new(big.Int).SetBytes(b[:])
	x.ModInverse(x, g.order)
	return g.ScalarFromBigInt(x)
}

// ScalarFromBigInt reduces an arbitrary-precision integer into Z_N.
func (g *Group) ScalarFromBigInt(x *big.Int) Scalar {
	r := new(big.Int).Mod(x, g.order)
	var buf [32]byte
	r.FillBytes(buf[:])
	var s secp256k1.ModNScalar
	s.SetByteSlice(buf[:])
	return Scalar{v: s}
}

// Bytes serializes s as 32 big-endian bytes.
func (s Scalar) Bytes() [32]byte {
	return s.v.Bytes()
}

// ScalarFromBytes decodes a scalar from its 32-byte big-endian encoding.
func (g *Group) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return Scalar{}, ErrDecodingFailed
	}
	// SetByteSlice silently reduces mod N; reject anything that needed
	// reduction rather than accept-and-wrap it.
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		return Scalar{}, ErrDecodingFailed
	}
	return Scalar{v: s}, nil
}

// Identity returns the point at infinity, the group's additive identity.
func (g *Group) Identity() Point {
	var p Point
	p.p.X.SetInt(0)
	p.p.Y.SetInt(0)
	p.p.Z.SetInt(0)
	return p
}

// IsIdentity reports whether p is the point at infinity.
func (g *Group) IsIdentity(p Point) bool {
	return p.p.Z.IsZero()
}

// Eq reports whether two points are the same group element.
func (g *Group) Eq(a, b Point) bool {
	aa, bb := a, b
	aa.p.ToAffine()
	bb.p.ToAffine()
	if g.IsIdentity(aa) || g.IsIdentity(bb) {
		return g.IsIdentity(aa) == g.IsIdentity(bb)
	}
	return aa.p.X.Equals(&bb.p.X) && aa.p.Y.Equals(&bb.p.Y)
}

// Add returns a + b on the curve.
func (g *Group) Add(a, b Point) Point {
	var r Point
	secp256k1.AddNonConst(&a.p, &b.p, &r.p)
	return r
}

// Negate returns -a: the reflection of a across the x-axis.
func (g *Group) Negate(a Point) Point {
	var negOne secp256k1.ModNScalar
	negOne.SetInt(1)
	negOne.Negate()
	var r Point
	secp256k1.ScalarMultNonConst(&negOne, &a.p, &r.p)
	return r
}

// Sub returns a - b on the curve.
func (g *Group) Sub(a, b Point) Point {
	return g.Add(a, g.Negate(b))
}

// Double returns a + a.
func (g *Group) Double(a Point) Point {
	var r Point
	secp256k1.DoubleNonConst(&a.p, &r.p)
	return r
}

// GMul returns g^s, the fixed-generator scalar multiplication.
func (g *Group) GMul(s Scalar) Point {
	var r Point
	secp256k1.ScalarBaseMultNonConst(&s.v, &r.p)
	return r
}

// Mul returns p^s, variable-base scalar multiplication.
func (g *Group) Mul(s Scalar, p Point) Point {
	var r Point
	secp256k1.ScalarMultNonConst(&s.v, &p.p, &r.p)
	return r
}

// MultiMul returns a1^s1 + a2^s2, the combination lifted-ElGamal decryption
// needs (Y - sk*X). It is a plain two scalar-mults plus an add; it does
// not attempt a Strauss-Shamir joint ladder.
func (g *Group) MultiMul(s1 Scalar, p1 Point, s2 Scalar, p2 Point) Point {
	return g.Add(g.Mul(s1, p1), g.Mul(s2, p2))
}

// Bytes serializes p in 33-byte compressed form.
func (p Point) Bytes() [33]byte {
	pp := p.p
	pp.ToAffine()
	x, y := pp.X, pp.Y
	pub := secp256k1.NewPublicKey(&x, &y)
	var out [33]byte
	copy(out[:], pub.SerializeCompressed())
	return out
}

// PointFromBytes decodes a point from its 33-byte compressed encoding.
func (g *Group) PointFromBytes(b []byte) (Point, error) {
	if len(b) != 33 {
		return Point{}, ErrDecodingFailed
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return Point{}, ErrDecodingFailed
	}
	var pt Point
	pt.p.X = *pub.X()
	pt.p.Y = *pub.Y()
	pt.p.Z.SetInt(1)
	return pt, nil
}
