package with

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

type tagged struct {
	Name string
	Tags []string
}

func (t tagged) Clone() tagged {
	c := t
	c.Tags = append([]string(nil), t.Tags...)
	return c
}

func TestWith(t *testing.T) {
	t.Parallel()
	origin := point{}

	moved := With(origin, func(p *point) { p.X = 10 })

	assert.Equal(t, point{X: 10, Y: 0}, moved)
	assert.Equal(t, point{X: 0, Y: 0}, origin)
}

func TestWithErr_Success(t *testing.T) {
	t.Parallel()
	origin := point{X: 1}

	out, err := WithErr(origin, func(p *point) error {
		p.Y = 2
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2}, out)
	assert.Equal(t, point{X: 1}, origin)
}

func TestWithErr_PropagatesError(t *testing.T) {
	t.Parallel()
	origin := point{X: 1}
	boom := errors.New("boom")

	out, err := WithErr(origin, func(p *point) error {
		p.X = 99
		return boom
	})

	assert.Same(t, boom, err)
	assert.Equal(t, point{}, out)
	assert.Equal(t, point{X: 1}, origin)
}

func TestWithClone(t *testing.T) {
	t.Parallel()
	origin := tagged{Name: "a", Tags: []string{"x"}}

	out := WithClone(origin, func(v *tagged) {
		v.Name = "b"
		v.Tags[0] = "y"
	})

	assert.Equal(t, tagged{Name: "b", Tags: []string{"y"}}, out)
	assert.Equal(t, tagged{Name: "a", Tags: []string{"x"}}, origin)
}
