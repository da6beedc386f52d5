package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lahhamix/tumasulo-simulator/internal/config"
)

func TestDefault_MatchesConstantsTable(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, 8, cfg.NumRegisters)
	require.Equal(t, 1024, cfg.MemorySize)
	require.Equal(t, 2, cfg.ALUUnits)
	require.Equal(t, 1, cfg.MulDivUnits)
	require.Equal(t, 1, cfg.LoadStoreUnits)
	require.Equal(t, 3, cfg.ALUStations)
	require.Equal(t, 2, cfg.MulDivStations)
	require.Equal(t, 2, cfg.LoadBuffers)
	require.Equal(t, 2, cfg.StoreBuffers)
	require.Equal(t, 2, cfg.LatencyAddSub)
	require.Equal(t, 10, cfg.LatencyMul)
	require.Equal(t, 20, cfg.LatencyDiv)
	require.Equal(t, 5, cfg.LatencyLoad)
	require.Equal(t, 5, cfg.LatencyStore)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alu_stations: 5\nseed: 7\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, 5, cfg.ALUStations)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, 1024, cfg.MemorySize, "unspecified keys keep their default")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
