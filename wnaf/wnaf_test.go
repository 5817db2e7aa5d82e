package wnaf

import (
	"math/big"
	"testing"

	"github.com/shanksdlog/ecpke/group"
)

func TestFastMulMatchesGMul(t *testing.T) {
	g := group.New()
	table := Precompute(g, g.Generator(), g.Order().BitLen())

	cases := []uint64{0, 1, 2, 3, 4, 5, 1023, 123456789}
	for _, v := range cases {
		s := group.ScalarFromUint64(v)
		got := table.FastMul(s)
		want := g.GMul(s)
		if !g.Eq(got, want) {
			t.Fatalf("FastMul(%d) != GMul(%d)", v, v)
		}
	}
}

func TestFastMulRandomScalars(t *testing.T) {
	g := group.New()
	table := Precompute(g, g.Generator(), g.Order().BitLen())

	for i := 0; i < 20; i++ {
		s, err := g.RandScalar()
		if err != nil {
			t.Fatalf("RandScalar: %v", err)
		}
		got := table.FastMul(s)
		want := g.GMul(s)
		if !g.Eq(got, want) {
			t.Fatalf("FastMul mismatch on random scalar %d", i)
		}
	}
}

func TestFastMulOnNonGeneratorBase(t *testing.T) {
	g := group.New()
	base, _, err := g.RandPoint()
	if err != nil {
		t.Fatalf("RandPoint: %v", err)
	}
	table := Precompute(g, base, g.Order().BitLen())

	s := group.ScalarFromUint64(777)
	got := table.FastMul(s)
	want := g.Mul(s, base)
	if !g.Eq(got, want) {
		t.Fatal("FastMul on non-generator base mismatch")
	}
}

func TestComputeWNAFReconstructsValue(t *testing.T) {
	for _, v := range []int64{0, 1, 2, 3, 255, 65535, 123456789} {
		k := big.NewInt(v)
		digits := computeWNAF(k, 4)
		got := big.NewInt(0)
		for j := len(digits) - 1; j >= 0; j-- {
			got.Lsh(got, 1)
			got.Add(got, big.NewInt(int64(digits[j])))
		}
		if got.Cmp(k) != 0 {
			t.Fatalf("computeWNAF(%d) reconstructed %s", v, got.String())
		}
	}
}
