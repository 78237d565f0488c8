package geometrics

import (
	"testing"
)

func TestAffineBasic(t *testing.T) {
	p := pt("3", "4")

	diff(t, p, p.Transform(Identity))
	diff(t, pt("6", "8"), p.Transform(Scale(d("2"), d("2"))))
	diff(t, pt("8", "10"), p.Transform(Translate(Vec(d("5"), d("6")))))
	diff(t, pt("-1.5", "12"), p.Transform(Scale(d("-0.5"), d("3"))))
}

func TestAffineMul(t *testing.T) {
	a1 := Affine{d("1"), d("2"), d("3"), d("4"), d("5"), d("6")}
	a2 := Affine{d("0.1"), d("1.2"), d("2.3"), d("3.4"), d("4.5"), d("5.6")}

	for _, p := range []Point2D{pt("1", "0"), pt("0", "1"), pt("1", "1")} {
		diff(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)))
	}
}

func TestAffineThen(t *testing.T) {
	p := pt("1", "2")
	aff := Identity.ThenTranslate(Vec(d("1"), d("1"))).ThenScale(d("2"), d("3"))
	diff(t, pt("4", "9"), p.Transform(aff))

	if !Identity.IsIdentity() {
		t.Error("identity is not the identity")
	}
	if aff.IsIdentity() {
		t.Errorf("%v is not the identity", aff)
	}
	if got := Scale(d("2"), d("3")).Determinant(); !got.Equal(d("6")) {
		t.Errorf("got determinant %v, want 6", got)
	}
}
