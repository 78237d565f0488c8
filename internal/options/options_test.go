package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	window int
	name   string
}

func withWindow(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 1 {
			return errors.New("window must be positive")
		}
		c.window = n
		return nil
	})
}

func withName(s string) Option[*testConfig] {
	return NoError(func(c *testConfig) { c.name = s })
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, Apply(cfg, withWindow(5), withName("risk")))
	require.Equal(t, 5, cfg.window)
	require.Equal(t, "risk", cfg.name)
}

func TestApplyStopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}
	err := Apply(cfg, withWindow(0), withName("never"))
	require.Error(t, err)
	require.Empty(t, cfg.name)
}

func TestApplyNoOptions(t *testing.T) {
	cfg := &testConfig{window: 3}
	require.NoError(t, Apply(cfg))
	require.Equal(t, 3, cfg.window)
}

func TestApplySkipsNil(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, Apply(cfg, nil, withName("kept")))
	require.Equal(t, "kept", cfg.name)
}
