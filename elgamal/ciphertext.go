package elgamal

import (
	"github.com/shanksdlog/ecpke/group"
)

// KeyPair is an ElGamal secret/public key pair, pk = sk*g.
type KeyPair struct {
	SK group.Scalar
	PK group.Point
}

// KeyGen draws a fresh key pair.
func KeyGen(pp *PublicParams) (*KeyPair, error) {
	sk, err := pp.Group.RandScalar()
	if err != nil {
		return nil, err
	}
	return &KeyPair{SK: sk, PK: pp.genTable.FastMul(sk)}, nil
}

// Ciphertext is a lifted-ElGamal ciphertext: X = g^r, Y = pk^r * g^m.
type Ciphertext struct {
	X, Y group.Point
}

// Enc encrypts m under pk using fresh randomness.
func Enc(pp *PublicParams, pk group.Point, m int64) (*Ciphertext, error) {
	r, err := pp.Group.RandScalar()
	if err != nil {
		return nil, err
	}
	return EncWithRandomness(pp, pk, m, r)
}

// EncWithRandomness encrypts m under pk using the caller-supplied r. It
// exists for testing and for protocols that need to prove knowledge of r
// (e.g. a re-encryption mix), mirroring the original's explicit-r overload
// of ElGamal_Enc.
func EncWithRandomness(pp *PublicParams, pk group.Point, m int64, r group.Scalar) (*Ciphertext, error) {
	if err := pp.checkRange(m); err != nil {
		return nil, err
	}
	x := pp.genTable.FastMul(r)
	y := pp.Group.Add(pp.Group.Mul(r, pk), encodeMessagePoint(pp, m))
	return &Ciphertext{X: x, Y: y}, nil
}

func encodeMessagePoint(pp *PublicParams, m int64) group.Point {
	return pp.genTable.FastMul(group.ScalarFromUint64(uint64(m)))
}

// Dec recovers the plaintext m encrypted under sk's matching public key.
// It requires pp.Initialize to have been called first.
func Dec(pp *PublicParams, sk group.Scalar, ct *Ciphertext) (int64, error) {
	mPoint := pp.Group.MultiMul(group.ScalarFromUint64(1), ct.Y, sk.Negate(), ct.X)
	x, err := pp.dlogTable.Solve(mPoint)
	if err != nil {
		return 0, err
	}
	return int64(x), nil
}

// ReRand produces a fresh encryption of ct's plaintext under the same
// public key, indistinguishable from a new Enc call.
func ReRand(pp *PublicParams, pk group.Point, ct *Ciphertext) (*Ciphertext, error) {
	r, err := pp.Group.RandScalar()
	if err != nil {
		return nil, err
	}
	x := pp.Group.Add(ct.X, pp.genTable.FastMul(r))
	y := pp.Group.Add(ct.Y, pp.Group.Mul(r, pk))
	return &Ciphertext{X: x, Y: y}, nil
}

// HomoAdd returns an encryption of m1+m2 given encryptions of m1 and m2
// under the same key.
func HomoAdd(pp *PublicParams, ct1, ct2 *Ciphertext) *Ciphertext {
	return &Ciphertext{
		X: pp.Group.Add(ct1.X, ct2.X),
		Y: pp.Group.Add(ct1.Y, ct2.Y),
	}
}

// HomoSub returns an encryption of m1-m2 given encryptions of m1 and m2
// under the same key.
func HomoSub(pp *PublicParams, ct1, ct2 *Ciphertext) *Ciphertext {
	return &Ciphertext{
		X: pp.Group.Sub(ct1.X, ct2.X),
		Y: pp.Group.Sub(ct1.Y, ct2.Y),
	}
}

// ScalarMul returns an encryption of k*m given an encryption of m and a
// public (unencrypted) scalar k.
func ScalarMul(pp *PublicParams, ct *Ciphertext, k int64) *Ciphertext {
	ks := group.ScalarFromInt64(k)
	return &Ciphertext{
		X: pp.Group.Mul(ks, ct.X),
		Y: pp.Group.Mul(ks, ct.Y),
	}
}

// Bytes serializes ct as X's 33-byte compressed encoding followed by Y's.
func (ct *Ciphertext) Bytes() [66]byte {
	var out [66]byte
	xb := ct.X.Bytes()
	yb := ct.Y.Bytes()
	copy(out[:33], xb[:])
	copy(out[33:], yb[:])
	return out
}

// CiphertextFromBytes parses the wire format Bytes produces.
func CiphertextFromBytes(pp *PublicParams, b []byte) (*Ciphertext, error) {
	if len(b) != 66 {
		return nil, group.ErrDecodingFailed
	}
	x, err := pp.Group.PointFromBytes(b[:33])
	if err != nil {
		return nil, err
	}
	y, err := pp.Group.PointFromBytes(b[33:])
	if err != nil {
		return nil, err
	}
	return &Ciphertext{X: x, Y: y}, nil
}
