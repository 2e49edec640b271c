package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicky-tree55/bgclipper/internal/color"
)

func tempProvider(t *testing.T) *Provider {
	t.Helper()
	return NewWithPath(filepath.Join(t.TempDir(), "config.toml"))
}

func TestLoadReturnsDefaultWhenFileMissing(t *testing.T) {
	p := tempProvider(t)
	c, err := p.LoadTargetColor()
	require.NoError(t, err)
	assert.Equal(t, color.White, c)
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	p := tempProvider(t)
	want := color.New(100, 150, 200)

	require.NoError(t, p.SaveTargetColor(want))

	got, err := p.LoadTargetColor()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "config.toml")
	p := NewWithPath(path)

	require.NoError(t, p.SaveTargetColor(color.White))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestOverwriteExistingConfig(t *testing.T) {
	p := tempProvider(t)

	require.NoError(t, p.SaveTargetColor(color.New(0, 0, 0)))
	require.NoError(t, p.SaveTargetColor(color.New(255, 128, 64)))

	got, err := p.LoadTargetColor()
	require.NoError(t, err)
	assert.Equal(t, color.New(255, 128, 64), got)
}

func TestLoadMalformedTOML(t *testing.T) {
	p := tempProvider(t)
	require.NoError(t, os.WriteFile(p.Path(), []byte("not valid toml [[["), 0o644))

	_, err := p.LoadTargetColor()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestLoadOutOfRangeChannel(t *testing.T) {
	p := tempProvider(t)
	raw := "[target_color]\nr = 300\ng = 0\nb = 0\n"
	require.NoError(t, os.WriteFile(p.Path(), []byte(raw), 0o644))

	_, err := p.LoadTargetColor()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestEnsureExistsCreatesFileWithDefaults(t *testing.T) {
	p := tempProvider(t)

	require.NoError(t, p.EnsureExists())

	_, err := os.Stat(p.Path())
	require.NoError(t, err)

	got, err := p.LoadTargetColor()
	require.NoError(t, err)
	assert.Equal(t, color.White, got)
}

func TestEnsureExistsDoesNotOverwrite(t *testing.T) {
	p := tempProvider(t)
	custom := color.New(10, 20, 30)
	require.NoError(t, p.SaveTargetColor(custom))

	require.NoError(t, p.EnsureExists())

	got, err := p.LoadTargetColor()
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}
