package both

import (
	"testing"

	"github.com/ib-77/anyof/pkg/anyof/either"
	"github.com/ib-77/anyof/pkg/anyof/option"
)

func TestNewAndCouple(t *testing.T) {
	b := New(10, "right")
	if b.Left != 10 || b.Right != "right" {
		t.Fatalf("expected (10, right), got (%v, %v)", b.Left, b.Right)
	}

	l, r := b.Couple()
	if l != 10 || r != "right" {
		t.Fatalf("couple should return both values, got (%v, %v)", l, r)
	}

	if FromCouple(l, r) != b {
		t.Fatalf("couple conversion should round-trip")
	}
}

func TestOptions(t *testing.T) {
	ol, or := New(1, "a").Options()
	if ol != option.Some(1) || or != option.Some("a") {
		t.Fatalf("expected (Some(1), Some(a)), got (%v, %v)", ol, or)
	}
}

func TestIntoLeftAndIntoRight(t *testing.T) {
	b := New(100, "unused")

	if got := b.IntoLeft(); got != either.Left[int, string](100) {
		t.Fatalf("expected Left(100), got %v", got)
	}
	if got := b.IntoRight(); got != either.Right[int, string]("unused") {
		t.Fatalf("expected Right(unused), got %v", got)
	}
}

func TestUnwrapNeverFallsBack(t *testing.T) {
	b := New(1, "x")
	if got := b.LeftOr(9); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := b.RightOr("z"); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}
	if got := b.LeftOrElse(func() int { t.Fatalf("fallback must not run"); return 9 }); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := b.RightOrElse(func() string { t.Fatalf("fallback must not run"); return "z" }); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}
}

func TestSwapIsItsOwnInverse(t *testing.T) {
	b := New(42, "text")
	swapped := b.Swap()
	if swapped.Left != "text" || swapped.Right != 42 {
		t.Fatalf("expected (text, 42), got (%v, %v)", swapped.Left, swapped.Right)
	}
	if swapped.Swap() != b {
		t.Fatalf("swap twice should restore the value")
	}
}

func TestMapAppliesBothExactlyOnce(t *testing.T) {
	leftCalls, rightCalls := 0, 0
	got := Map(New(2, "abc"),
		func(n int) int { leftCalls++; return n * 2 },
		func(s string) int { rightCalls++; return len(s) })

	if got != New(4, 3) {
		t.Fatalf("expected (4, 3), got %v", got)
	}
	if leftCalls != 1 || rightCalls != 1 {
		t.Fatalf("expected one call per side, got %d/%d", leftCalls, rightCalls)
	}
}

func TestMapIdentity(t *testing.T) {
	b := New(7, "y")
	got := Map(b, func(n int) int { return n }, func(s string) string { return s })
	if got != b {
		t.Fatalf("map(id, id) should be identity")
	}
}

func TestMapLeftAndMapRight(t *testing.T) {
	b := New(2, "abc")
	if got := MapLeft(b, func(n int) int { return n + 1 }); got != New(3, "abc") {
		t.Fatalf("expected (3, abc), got %v", got)
	}
	if got := MapRight(b, func(s string) int { return len(s) }); got != New(2, 3) {
		t.Fatalf("expected (2, 3), got %v", got)
	}
}

func TestFromOptions(t *testing.T) {
	b, err := FromOptions(option.Some(1), option.Some("x"))
	if err != nil || b != New(1, "x") {
		t.Fatalf("expected (1, x), got %v err=%v", b, err)
	}

	if _, err := FromOptions(option.None[int](), option.Some("x")); err == nil {
		t.Fatalf("missing left must fail")
	}
	if _, err := FromOptions(option.Some(1), option.None[string]()); err == nil {
		t.Fatalf("missing right must fail")
	}
}
