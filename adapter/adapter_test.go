package adapter_test

import (
	"testing"

	"github.com/sghaida/gof/adapter"
	"github.com/stretchr/testify/assert"
)

func TestAdapter_ForwardsVerbatim(t *testing.T) {
	t.Parallel()

	adaptee := &adapter.Adaptee{}
	var target adapter.Target = adapter.New(adaptee)

	assert.Equal(t, adaptee.SpecificRequest(), target.Request())
	assert.Equal(t, "Specific request", target.Request())
}

func TestAdapter_NilAdaptee(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Specific request", adapter.New(nil).Request())
}

func TestFunc_SatisfiesTarget(t *testing.T) {
	t.Parallel()

	var target adapter.Target = adapter.Func(func() string { return "legacy" })
	assert.Equal(t, "legacy", target.Request())
}
