package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/anyof/pkg/anyof"
	"github.com/ib-77/anyof/pkg/anyof/both"
	"github.com/ib-77/anyof/pkg/anyof/either"
	"github.com/ib-77/anyof/pkg/anyof/nest"
	"github.com/ib-77/anyof/pkg/anyof/option"
)

// profile is the kind of partially-filled record the combinators are made
// for: an account may carry an internal id, an external handle, both, or
// nothing yet.
type profile = anyof.AnyOf[uuid.UUID, string]

func TestMergePartialRecords(t *testing.T) {
	id := uuid.New()

	stored := anyof.NewLeft[uuid.UUID, string](id)
	incoming := anyof.NewRight[uuid.UUID, string]("@handle")

	merged := stored.Combine(incoming)
	require.True(t, merged.IsBoth())
	assert.Equal(t, option.Some(id), merged.Left())
	assert.Equal(t, option.Some("@handle"), merged.Right())

	// A later merge must not overwrite fields that are already present.
	stale := anyof.NewBoth(uuid.New(), "@stale")
	assert.Equal(t, merged, merged.Combine(stale))
}

func TestMaskOutSides(t *testing.T) {
	id := uuid.New()
	rec := anyof.NewBoth(id, "@handle")

	// Redact the id, keep the handle.
	mask := anyof.NewLeft[uuid.UUID, string](uuid.Nil)
	redacted := rec.Filter(mask)
	assert.True(t, redacted.IsRight())
	assert.Equal(t, option.Some("@handle"), redacted.Right())

	assert.Equal(t, rec, rec.Filter(anyof.Neither[uuid.UUID, string]()))
	assert.True(t, rec.Filter(anyof.NewBoth(uuid.Nil, "")).IsNeither())
}

func TestLatticeRoundTrips(t *testing.T) {
	id := uuid.New()

	// Either -> AnyOf -> Either is lossless for one-sided values.
	e := either.Left[uuid.UUID, string](id)
	back, err := anyof.FromEither(e).IntoEither()
	require.NoError(t, err)
	assert.Equal(t, e, back)

	// Both -> AnyOf -> Both is lossless.
	b := both.New(id, "@handle")
	back2, err := anyof.FromBoth(b).IntoBoth()
	require.NoError(t, err)
	assert.Equal(t, b, back2)

	// AnyOf -> optional pair -> AnyOf is lossless for every shape.
	for _, v := range []profile{
		anyof.Neither[uuid.UUID, string](),
		anyof.NewLeft[uuid.UUID, string](id),
		anyof.NewRight[uuid.UUID, string]("@handle"),
		anyof.NewBoth(id, "@handle"),
	} {
		l, r := v.Options()
		assert.Equal(t, v, anyof.New(l, r))
	}
}

func TestPartialConversionsFailLoudly(t *testing.T) {
	id := uuid.New()

	_, err := anyof.NewLeft[uuid.UUID, string](id).IntoBoth()
	require.Error(t, err)
	assert.ErrorContains(t, err, "expected Both, found Left")

	_, err = anyof.NewBoth(id, "@handle").IntoEither()
	require.Error(t, err)
	assert.ErrorContains(t, err, "expected Left or Right, found Both")

	assert.Panics(t, func() { anyof.Neither[uuid.UUID, string]().MustBoth() })
	assert.Panics(t, func() { anyof.NewBoth(id, "@handle").MustEither() })

	// Optional pairs convert to Either only when exactly one side is set.
	_, err = either.FromOptions(option.Some(id), option.Some("@handle"))
	require.Error(t, err)
	_, err = either.FromOptions(option.None[uuid.UUID](), option.None[string]())
	require.Error(t, err)

	_, err = both.FromOptions(option.Some(id), option.None[string]())
	require.Error(t, err)
}

func TestNestedCombinatorsAcrossPackages(t *testing.T) {
	id := uuid.New()

	// Four ways to identify a peer; only two known here.
	addr := nest.New4(
		option.Some(id),
		option.None[string](),
		option.None[uint16](),
		option.Some("fe80::1"),
	)

	assert.Equal(t, option.Some(id), nest.LL(addr))
	assert.True(t, nest.LR(addr).IsNone())
	assert.True(t, nest.RL(addr).IsNone())
	assert.Equal(t, option.Some("fe80::1"), nest.RR(addr))

	// The nested value is a plain AnyOf, so the whole algebra applies.
	assert.True(t, addr.IsBoth())
	swapped := addr.Swap()
	assert.Equal(t, option.Some("fe80::1"), swapped.Left().Unwrap().Right())

	empty := nest.New4(
		option.None[uuid.UUID](),
		option.None[string](),
		option.None[uint16](),
		option.None[string](),
	)
	assert.True(t, empty.IsNeither())
}
