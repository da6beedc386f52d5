package tomasulo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lahhamix/tumasulo-simulator/internal/tomasulo"
)

func TestMemory_ReadWrite(t *testing.T) {
	m := tomasulo.NewMemory(16, quietLogger())
	m.Write(5, 99)
	require.Equal(t, int64(99), m.Read(5))
}

func TestMemory_OutOfRangeDegrades(t *testing.T) {
	m := tomasulo.NewMemory(16, quietLogger())
	require.Equal(t, int64(0), m.Read(100))
	require.Equal(t, int64(0), m.Read(-1))

	m.Write(100, 7) // dropped, no panic
	require.Equal(t, int64(0), m.Read(100))
}

func TestMemory_Preload(t *testing.T) {
	m := tomasulo.NewMemory(16, quietLogger())
	m.Preload(map[int64]int64{0: 1, 15: 2})
	require.Equal(t, int64(1), m.Read(0))
	require.Equal(t, int64(2), m.Read(15))
}
