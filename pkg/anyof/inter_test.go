package anyof

import (
	"testing"

	"github.com/ib-77/anyof/pkg/anyof/both"
	"github.com/ib-77/anyof/pkg/anyof/either"
)

func TestFromLeftRight(t *testing.T) {
	t.Parallel()
	if got := FromLeftRight[int, string](either.Right[int, string]("x")); got != NewRight[int, string]("x") {
		t.Fatalf("expected Right(x), got %v", got)
	}
	if got := FromLeftRight[int, string](both.New(1, "x")); got != NewBoth(1, "x") {
		t.Fatalf("expected Both(1, x), got %v", got)
	}
	if got := FromLeftRight[int, string](NewLeft[int, string](1)); got != NewLeft[int, string](1) {
		t.Fatalf("expected Left(1), got %v", got)
	}
}
