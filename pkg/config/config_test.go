package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lupyuen/ulispc/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsUsableStandalone(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "bolt", cfg.Storage.Backend)
	require.Greater(t, cfg.Cache.Size, 0)
	require.NotEmpty(t, cfg.Replay.ListenAddr)
}

func TestLoadOverridesDefaultsPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ulispc.yml")
	require.NoError(t, os.WriteFile(path, []byte("Storage:\n  Backend: leveldb\n  Path: /tmp/x\nNames:\n  \"%\": mod\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "leveldb", cfg.Storage.Backend)
	require.Equal(t, "/tmp/x", cfg.Storage.Path)
	require.Equal(t, 256, cfg.Cache.Size) // untouched default
	require.Equal(t, "mod", cfg.Names["%"])
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.Error(t, err)
}
