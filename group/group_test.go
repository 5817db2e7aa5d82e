package group

import "testing"

func TestGeneratorRoundTrip(t *testing.T) {
	g := New()
	b := g.Generator().Bytes()
	p, err := g.PointFromBytes(b[:])
	if err != nil {
		t.Fatalf("PointFromBytes: %v", err)
	}
	if !g.Eq(g.Generator(), p) {
		t.Fatal("generator did not round-trip through Bytes/PointFromBytes")
	}
}

func TestScalarMulMatchesRepeatedAdd(t *testing.T) {
	g := New()
	three := ScalarFromUint64(3)
	byThree := g.GMul(three)

	sum := g.Add(g.Generator(), g.Generator())
	sum = g.Add(sum, g.Generator())

	if !g.Eq(byThree, sum) {
		t.Fatal("g.GMul(3) != g+g+g")
	}
}

func TestAddSubNegateInverse(t *testing.T) {
	g := New()
	a, _, err := g.RandPoint()
	if err != nil {
		t.Fatalf("RandPoint: %v", err)
	}
	b, _, err := g.RandPoint()
	if err != nil {
		t.Fatalf("RandPoint: %v", err)
	}
	sum := g.Add(a, b)
	back := g.Sub(sum, b)
	if !g.Eq(back, a) {
		t.Fatal("(a+b)-b != a")
	}

	doubled := g.Double(a)
	if !g.Eq(doubled, g.Add(a, a)) {
		t.Fatal("Double(a) != a+a")
	}
}

func TestScalarAddSubMulNegate(t *testing.T) {
	a := ScalarFromUint64(7)
	b := ScalarFromUint64(5)

	if got := a.Add(b); !got.Equal(ScalarFromUint64(12)) {
		t.Fatalf("7+5 = %x, want 12", got.Bytes())
	}
	if got := a.Sub(b); !got.Equal(ScalarFromUint64(2)) {
		t.Fatalf("7-5 = %x, want 2", got.Bytes())
	}
	if got := a.Mul(b); !got.Equal(ScalarFromUint64(35)) {
		t.Fatalf("7*5 = %x, want 35", got.Bytes())
	}
	if !a.Sub(a).IsZero() {
		t.Fatal("a-a != 0")
	}
	if !a.Add(a.Negate()).IsZero() {
		t.Fatal("a+(-a) != 0")
	}
}

func TestScalarBytesRoundTrip(t *testing.T) {
	g := New()
	s, err := g.RandScalar()
	if err != nil {
		t.Fatalf("RandScalar: %v", err)
	}
	b := s.Bytes()
	back, err := g.ScalarFromBytes(b[:])
	if err != nil {
		t.Fatalf("ScalarFromBytes: %v", err)
	}
	if !s.Equal(back) {
		t.Fatal("scalar did not round-trip through Bytes/ScalarFromBytes")
	}
}

func TestScalarFromBytesRejectsOverflow(t *testing.T) {
	g := New()
	var tooBig [32]byte
	for i := range tooBig {
		tooBig[i] = 0xff
	}
	if _, err := g.ScalarFromBytes(tooBig[:]); err != ErrDecodingFailed {
		t.Fatalf("expected ErrDecodingFailed, got %v", err)
	}
}

func TestPointFromBytesRejectsBadLength(t *testing.T) {
	g := New()
	if _, err := g.PointFromBytes([]byte{0x02, 0x03}); err != ErrDecodingFailed {
		t.Fatalf("expected ErrDecodingFailed, got %v", err)
	}
}

func TestMultiMul(t *testing.T) {
	g := New()
	s1 := ScalarFromUint64(4)
	s2 := ScalarFromUint64(9)
	p1 := g.Generator()
	p2, _, err := g.RandPoint()
	if err != nil {
		t.Fatalf("RandPoint: %v", err)
	}

	got := g.MultiMul(s1, p1, s2, p2)
	want := g.Add(g.Mul(s1, p1), g.Mul(s2, p2))
	if !g.Eq(got, want) {
		t.Fatal("MultiMul(s1,p1,s2,p2) != s1*p1 + s2*p2")
	}
}

func TestHashToPointDeterministicAndOnCurve(t *testing.T) {
	g := New()
	p1 := g.HashToPoint("ecpke/twisted-h-base", []byte("secp256k1"))
	p2 := g.HashToPoint("ecpke/twisted-h-base", []byte("secp256k1"))
	if !g.Eq(p1, p2) {
		t.Fatal("HashToPoint is not deterministic")
	}
	if _, err := g.PointFromBytes(func() []byte { b := p1.Bytes(); return b[:] }()); err != nil {
		t.Fatalf("HashToPoint result did not serialize as a valid point: %v", err)
	}

	other := g.HashToPoint("ecpke/twisted-h-base", []byte("different"))
	if g.Eq(p1, other) {
		t.Fatal("HashToPoint collided across distinct inputs")
	}
}
