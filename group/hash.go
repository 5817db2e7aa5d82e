package group

import (
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	sha256simd "github.com/minio/sha256-simd"
)

// TaggedHash computes SHA256(SHA256(tag) || SHA256(tag) || msg), exposed
// for domain-separated key derivation outside this package (e.g. a KEM's
// shared-secret derivation).
func TaggedHash(tag string, msg ...[]byte) [32]byte {
	return taggedHash(tag, msg...)
}

// taggedHash computes SHA256(SHA256(tag) || SHA256(tag) || msg), the same
// domain-separation construction BIP-340 uses, built on sha256-simd rather
// than crypto/sha256 for the same reason the rest of this module does.
func taggedHash(tag string, msg ...[]byte) [32]byte {
	tagHash := sha256simd.Sum256([]byte(tag))
	h := sha256simd.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	for _, m := range msg {
		h.Write(m)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HashToPoint derives a group element from domain-separated input via
// try-and-increment: it hashes (domain, data, counter) to a candidate x
// coordinate and keeps incrementing counter until DecompressY finds a
// corresponding y. It is used to derive the twisted scheme's independent
// message base h, so that no party ever learns its discrete log to g.
func (g *Group) HashToPoint(domain string, data []byte) Point {
	var counter [4]byte
	for i := uint32(0); ; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		digest := taggedHash(domain, data, counter[:])
		var x secp256k1.FieldVal
		if overflow := x.SetByteSlice(digest[:]); overflow {
			continue
		}
		var y secp256k1.FieldVal
		if !secp256k1.DecompressY(&x, false, &y) {
			continue
		}
		var pt Point
		pt.p.X = x
		pt.p.Y = y
		pt.p.Z.SetInt(1)
		return pt
	}
}
