package singleton_test

import (
	"errors"
	"testing"

	"github.com/sghaida/gof"
	"github.com/sghaida/gof/singleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Instance
// -----------------------------------------------------------------------------

// TestInstance_StableAcrossAccesses verifies every access returns the same pointer and value.
func TestInstance_StableAcrossAccesses(t *testing.T) {
	t.Parallel()

	h := singleton.NewHolder()
	first := h.Instance()
	require.NotNil(t, first)

	for i := 0; i < 100; i++ {
		got := h.Instance()
		require.Same(t, first, got)
		require.Equal(t, first.Value(), got.Value())
		require.Equal(t, first.ID(), got.ID())
	}
}

// TestInstance_ValueInUnitInterval verifies the default source stays in [0,1).
func TestInstance_ValueInUnitInterval(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		v := singleton.NewHolder().Instance().Value()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

// TestInstance_UsesSource verifies WithSource controls the generated value and is called once.
func TestInstance_UsesSource(t *testing.T) {
	t.Parallel()

	calls := 0
	h := singleton.NewHolder(singleton.WithSource(func() float64 {
		calls++
		return 0.25
	}))

	assert.False(t, h.Exists())
	assert.Equal(t, 0.25, h.Instance().Value())
	assert.Equal(t, 0.25, h.Instance().Value())
	assert.True(t, h.Exists())
	assert.Equal(t, 1, calls)
}

// TestWithSource_NilKeepsDefault verifies a nil source does not replace the default.
func TestWithSource_NilKeepsDefault(t *testing.T) {
	t.Parallel()

	h := singleton.NewHolder(singleton.WithSource(nil))
	require.NotPanics(t, func() { _ = h.Instance() })
}

//
// -----------------------------------------------------------------------------
// New (direct construction)
// -----------------------------------------------------------------------------

func TestNew_FirstSucceedsThenFails(t *testing.T) {
	t.Parallel()

	h := singleton.NewHolder(singleton.WithSource(func() float64 { return 0.5 }))

	inst, err := h.New()
	require.NoError(t, err)
	require.Same(t, inst, h.Instance())

	again, err := h.New()
	require.Error(t, err)
	assert.Nil(t, again)
	assert.True(t, errors.Is(err, gof.ErrInvalidOperation))

	var exists singleton.AlreadyExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, inst.ID(), exists.ID)
	assert.Contains(t, err.Error(), "already exists")
}

func TestNew_AfterInstanceFails(t *testing.T) {
	t.Parallel()

	h := singleton.NewHolder()
	_ = h.Instance()

	_, err := h.New()
	assert.ErrorIs(t, err, gof.ErrInvalidOperation)
}

// TestGetInstance_ProcessWide verifies the package-level accessor is stable.
func TestGetInstance_ProcessWide(t *testing.T) {
	t.Parallel()

	a := singleton.GetInstance()
	b := singleton.GetInstance()
	require.Same(t, a, b)
	assert.Equal(t, a.Value(), b.Value())
}
