package checked

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	if sum, ok := Add(10, 5); !ok || sum != 15 {
		t.Fatalf("Add(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := Add(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := Add(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMul(t *testing.T) {
	if got, ok := Mul(6, 7); !ok || got != 42 {
		t.Fatalf("Mul(6,7)=%d,%v want 42,true", got, ok)
	}
	if got, ok := Mul(0, math.MaxInt); !ok || got != 0 {
		t.Fatalf("Mul(0,MaxInt)=%d,%v want 0,true", got, ok)
	}
	if _, ok := Mul(math.MaxInt, 2); ok {
		t.Fatalf("expected overflow for MaxInt*2")
	}
	if _, ok := Mul(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow just past the halfway point")
	}
}

func TestTotal(t *testing.T) {
	if got, ok := Total(3, 8, 8); !ok || got != 24 {
		t.Fatalf("Total(3,8,8)=%d,%v want 24,true", got, ok)
	}
	if got, ok := Total(3, 5, 8); !ok || got != 16 {
		t.Fatalf("Total(3,5,8)=%d,%v want 16,true", got, ok)
	}
	if got, ok := Total(0, 8, 8); !ok || got != 0 {
		t.Fatalf("Total(0,8,8)=%d,%v want 0,true", got, ok)
	}
	if _, ok := Total(-1, 8, 8); ok {
		t.Fatalf("expected rejection of negative count")
	}
	if _, ok := Total(math.MaxInt/4, 8, 8); ok {
		t.Fatalf("expected overflow for huge count*size")
	}
}
