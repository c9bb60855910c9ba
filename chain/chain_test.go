package chain_test

import (
	"testing"

	"github.com/sghaida/gof/chain"
	"github.com/stretchr/testify/assert"
)

func TestDefault_Handle(t *testing.T) {
	t.Parallel()

	c := chain.Default()
	cases := []struct {
		request string
		want    string
	}{
		{request: "low", want: "Handled by LowLevelHandler"},
		{request: "medium", want: "Handled by MediumLevelHandler"},
		{request: "high", want: "Handled by HighLevelHandler"},
		{request: "unknown", want: chain.Unhandled},
		{request: "", want: chain.Unhandled},
		{request: "LOW", want: chain.Unhandled},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.request, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, c.Handle(tc.request))
		})
	}
}

// TestHandle_StopsAtFirstMatch verifies later handlers are not consulted after a match.
func TestHandle_StopsAtFirstMatch(t *testing.T) {
	t.Parallel()

	var visited []string
	spy := func(name string, accept bool) chain.Handler {
		return chain.HandlerFunc(func(string) (string, bool) {
			visited = append(visited, name)
			return name, accept
		})
	}

	c := chain.New(spy("first", false), spy("second", true), spy("third", true))
	assert.Equal(t, "second", c.Handle("x"))
	assert.Equal(t, []string{"first", "second"}, visited)
}

func TestNew_EmptyAndNil(t *testing.T) {
	t.Parallel()

	c := chain.New(nil, nil)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, chain.Unhandled, c.Handle("low"))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	h := chain.Match(func(r string) bool { return len(r) > 3 }, "long")

	got, ok := h.Handle("abcd")
	assert.True(t, ok)
	assert.Equal(t, "long", got)

	got, ok = h.Handle("ab")
	assert.False(t, ok)
	assert.Empty(t, got)
}
