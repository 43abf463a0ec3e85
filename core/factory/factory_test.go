package factory

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{ A int }

type sampleConf struct {
	A       int           `json:"a"`
	Timeout time.Duration `json:"timeout"`
}

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sample]()
	require.NoError(t, reg.Register("s", func(conf map[string]any) (*sample, error) {
		var c sampleConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sample{A: c.A}, nil
	}))
	inst, err := reg.Create(ModuleConfig{Type: "s", Conf: map[string]any{"a": 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, inst.A)
	assert.Equal(t, []string{"s"}, reg.Names())
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))
	assert.Error(t, reg.Register("x", func(map[string]any) (int, error) { return 2, nil }))
	assert.Error(t, reg.Register("z", nil))

	_, err := reg.Create(ModuleConfig{Type: "y"})
	assert.Error(t, err)

	boom := errors.New("boom")
	require.NoError(t, reg.Register("bad", func(map[string]any) (int, error) { return 0, boom }))
	_, err = reg.Create(ModuleConfig{Type: "bad"})
	assert.ErrorIs(t, err, boom)
}

func TestDecode_WeakTypes(t *testing.T) {
	var c sampleConf
	require.NoError(t, Decode(map[string]any{"a": "7", "timeout": "2s"}, &c))
	assert.Equal(t, 7, c.A)
	assert.Equal(t, 2*time.Second, c.Timeout)
}
