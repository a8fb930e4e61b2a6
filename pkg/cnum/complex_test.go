package cnum

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func near(a, b Complex) bool {
	return math.Abs(a.Re-b.Re) <= tolerance*math.Max(1.0, math.Abs(b.Re)) &&
		math.Abs(a.Im-b.Im) <= tolerance*math.Max(1.0, math.Abs(b.Im))
}

var samples = []Complex{
	New(1, 0),
	New(0, 1),
	New(-2.5, 0.75),
	New(3, -4),
	New(1e-3, 7e2),
	New(-0.1, -0.2),
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -4)

	tcs := []struct {
		name string
		got  Complex
		want Complex
	}{
		{"add", a.Add(b), New(4, -2)},
		{"sub", a.Sub(b), New(-2, 6)},
		{"mul", a.Mul(b), New(11, 2)},
		{"div", a.Div(b), New(-0.2, 0.4)},
		{"neg", a.Neg(), New(-1, -2)},
		{"conj", a.Conj(), New(1, -2)},
		{"scale", a.Scale(2.5), New(2.5, 5)},
		{"unscale", a.Unscale(2), New(0.5, 1)},
		{"inv", b.Inv(), New(0.12, 0.16)},
		{"pow3", a.Pow(3), New(-11, -2)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if !near(tc.got, tc.want) {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestOperandsUnchanged(t *testing.T) {
	a := New(1, 2)
	b := New(3, -4)

	_ = a.Add(b).Mul(b).Div(a).Neg().Conj().Scale(3).Inv().Pow(4)

	if a != New(1, 2) || b != New(3, -4) {
		t.Errorf("operands modified: a=%v b=%v", a, b)
	}
}

func TestNorm(t *testing.T) {
	a := New(3, -4)
	if got := a.NormSqr(); got != 25 {
		t.Errorf("NormSqr() = %v, want 25", got)
	}
	if got := a.Norm(); got != 5 {
		t.Errorf("Norm() = %v, want 5", got)
	}
}

func TestDivUndoesMul(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if got := a.Mul(b).Div(b); !near(got, a) {
				t.Errorf("(%v * %v) / %v = %v", a, b, b, got)
			}
		}
	}
}

func TestMulInv(t *testing.T) {
	for _, a := range samples {
		if got := a.Mul(a.Inv()); !near(got, One) {
			t.Errorf("%v * inv(%v) = %v, want 1", a, a, got)
		}
	}
}

func TestPowZero(t *testing.T) {
	for _, a := range append(samples, Zero, New(math.Inf(1), 0)) {
		if got := a.Pow(0); got != One {
			t.Errorf("%v^0 = %v, want 1", a, got)
		}
	}
}

func TestDivByZeroIsNonFinite(t *testing.T) {
	got := New(1, 1).Div(Zero)
	if got.IsFinite() {
		t.Errorf("1+i / 0 = %v, want non-finite", got)
	}

	if Zero.Inv().IsFinite() {
		t.Errorf("inv(0) = %v, want non-finite", Zero.Inv())
	}
}

func TestComplex128RoundTrip(t *testing.T) {
	z := complex(-0.75, 0.1)
	if got := FromComplex128(z).Complex128(); got != z {
		t.Errorf("got %v, want %v", got, z)
	}

	a, b := New(0.3, -1.2), New(2, 0.5)
	if got := FromComplex128(a.Complex128() * b.Complex128()); !near(got, a.Mul(b)) {
		t.Errorf("complex128 product %v disagrees with Mul %v", got, a.Mul(b))
	}
}
