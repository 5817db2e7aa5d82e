// Package wnaf implements fixed-base scalar multiplication via wNAF
// generator splitting, ported from OpenSSL's ec_wNAF_precompute_fast_mult /
// ec_wNAF_fast_mul (see original_source/src/fast_mul.hpp in the retrieval
// pack this module was built from) onto the group package's Point/Scalar
// types.
package wnaf

import (
	"math/big"

	"github.com/shanksdlog/ecpke/group"
)

const defaultBlockSize = 8
const defaultWindow = 4

// windowBitsForScalarSize is EC_window_bits_for_scalar_size: the larger the
// scalar, the wider a window pays for itself.
func windowBitsForScalarSize(bits int) int {
	switch {
	case bits >= 2000:
		return 6
	case bits >= 800:
		return 5
	case bits >= 300:
		return 4
	case bits >= 70:
		return 3
	case bits >= 20:
		return 2
	default:
		return 1
	}
}

// Table holds the precomputed odd multiples of a fixed base point, split
// into blocks of blockSize bits each so that FastMul needs only blockSize
// point doublings regardless of the scalar's bit length.
type Table struct {
	g              *group.Group
	blockSize      int
	window         int
	numBlocks      int
	pointsPerBlock int
	points         []group.Point // points[i*pointsPerBlock+j] = (2j+1) * 2^(i*blockSize) * base
}

// Precompute builds a Table for repeated multiplication of base by scalars
// up to orderBits bits long. orderBits is ordinarily the bit length of the
// group order.
func Precompute(g *group.Group, base group.Point, orderBits int) *Table {
	blockSize := defaultBlockSize
	w := defaultWindow
	if wb := windowBitsForScalarSize(orderBits); wb > w {
		w = wb
	}

	// A scalar below 2^orderBits can still carry a nonzero wNAF digit at
	// position orderBits (the wNAF recoding of an n-bit value is up to
	// n+1 digits long), one bit position past what orderBits/blockSize
	// blocks cover. Widen by one extra block so that top digit always
	// lands inside a real block instead of being silently dropped.
	numBlocks := (orderBits+blockSize-1)/blockSize + 1
	// computeWNAF produces odd digits with |d| < 2^(w-1); there are
	// 2^(w-2) such positive odd magnitudes (1, 3, ..., 2^(w-1)-1).
	pointsPerBlock := 1 << uint(w-2)

	points := make([]group.Point, numBlocks*pointsPerBlock)
	b := base
	idx := 0
	for i := 0; i < numBlocks; i++ {
		doubled := g.Double(b)
		points[idx] = b
		idx++
		prev := b
		for j := 1; j < pointsPerBlock; j++ {
			cur := g.Add(doubled, prev)
			points[idx] = cur
			idx++
			prev = cur
		}
		if i < numBlocks-1 {
			next := g.Double(doubled)
			for k := 2; k < blockSize; k++ {
				next = g.Double(next)
			}
			b = next
		}
	}

	return &Table{
		g:              g,
		blockSize:      blockSize,
		window:         w,
		numBlocks:      numBlocks,
		pointsPerBlock: pointsPerBlock,
		points:         points,
	}
}

// computeWNAF returns the width-w non-adjacent form of k, digit j holding
// the coefficient of 2^j. Nonzero digits are odd and lie in
// (-2^(w-1), 2^(w-1)).
func computeWNAF(k *big.Int, w int) []int {
	if k.Sign() == 0 {
		return nil
	}
	kk := new(big.Int).Set(k)
	pow2w := big.NewInt(1 << uint(w))
	halfw := int64(1) << uint(w-1)

	var digits []int
	for kk.Sign() > 0 {
		if kk.Bit(0) == 1 {
			mod := new(big.Int).Mod(kk, pow2w).Int64()
			if mod >= halfw {
				mod -= pow2w.Int64()
			}
			digits = append(digits, int(mod))
			kk.Sub(kk, big.NewInt(mod))
		} else {
			digits = append(digits, 0)
		}
		kk.Rsh(kk, 1)
	}
	return digits
}

// FastMul computes scalar*base for the base this table was built on.
func (t *Table) FastMul(scalar group.Scalar) group.Point {
	b := scalar.Bytes()
	k := new(big.Int).SetBytes(b[:])
	digits := computeWNAF(k, t.window)

	blockDigits := make([][]int, t.numBlocks)
	maxLen := 0
	for i := 0; i < t.numBlocks; i++ {
		start := i * t.blockSize
		if start >= len(digits) {
			continue
		}
		end := start + t.blockSize
		if end > len(digits) {
			end = len(digits)
		}
		blockDigits[i] = digits[start:end]
		if n := len(blockDigits[i]); n > maxLen {
			maxLen = n
		}
	}

	var result group.Point
	haveResult := false
	for kk := maxLen - 1; kk >= 0; kk-- {
		if haveResult {
			result = t.g.Double(result)
		}
		for i := 0; i < t.numBlocks; i++ {
			local := blockDigits[i]
			if kk >= len(local) {
				continue
			}
			d := local[kk]
			if d == 0 {
				continue
			}
			idx := i*t.pointsPerBlock + absInt(d)>>1
			pt := t.points[idx]
			if d < 0 {
				pt = t.g.Negate(pt)
			}
			if !haveResult {
				result = pt
				haveResult = true
			} else {
				result = t.g.Add(result, pt)
			}
		}
	}
	if !haveResult {
		return t.g.Identity()
	}
	return result
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
