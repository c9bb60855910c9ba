package factory

import (
	"errors"
	"testing"

	"github.com/sghaida/gof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Default factory
// -----------------------------------------------------------------------------

func TestNew_KnownKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind string
		want string
	}{
		{kind: "car", want: "Car created"},
		{kind: "bike", want: "Bike created"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.kind, func(t *testing.T) {
			t.Parallel()

			v, err := New(tc.kind)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v.Create())
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	t.Parallel()

	v, err := New("truck")
	require.Error(t, err)
	assert.Nil(t, v)
	assert.True(t, errors.Is(err, gof.ErrInvalidArgument))

	var unknown UnknownKindError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, Kind("truck"), unknown.Kind)
	assert.Equal(t, `factory: unknown vehicle kind "truck"`, err.Error())
}

// TestNew_ReturnsFreshInstances verifies each call runs the constructor again.
func TestNew_ReturnsFreshInstances(t *testing.T) {
	t.Parallel()

	calls := 0
	f := NewFactory().MustRegister("x", func() Vehicle {
		calls++
		return Car{}
	})

	_, err := f.New("x")
	require.NoError(t, err)
	_, err = f.New("x")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

//
// -----------------------------------------------------------------------------
// Register
// -----------------------------------------------------------------------------

func TestRegister_Errors(t *testing.T) {
	t.Parallel()

	f := NewFactory()
	require.NoError(t, f.Register(KindCar, func() Vehicle { return Car{} }))

	err := f.Register(KindCar, func() Vehicle { return Car{} })
	var dup DuplicateKindError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, KindCar, dup.Kind)
	assert.ErrorIs(t, err, gof.ErrInvalidArgument)

	err = f.Register("nil", nil)
	assert.ErrorIs(t, err, gof.ErrInvalidArgument)
	_, ok := f.ctors["nil"]
	assert.False(t, ok)
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	f := NewFactory().MustRegister(KindBike, func() Vehicle { return Bike{} })
	require.PanicsWithError(t, `factory: duplicate vehicle kind "bike"`, func() {
		f.MustRegister(KindBike, func() Vehicle { return Bike{} })
	})
}

func TestKinds_Sorted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Kind{KindBike, KindCar}, defaultFactory.Kinds())
	assert.Empty(t, NewFactory().Kinds())
}
