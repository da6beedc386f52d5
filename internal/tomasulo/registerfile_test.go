package tomasulo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lahhamix/tumasulo-simulator/internal/tomasulo"
)

func TestRegisterFile_ReadWriteStatus(t *testing.T) {
	rf := tomasulo.NewRegisterFileWithValues([]int64{0, 5, 7, 3})

	v, err := rf.Read("r1")
	require.NoError(t, err)
	require.Equal(t, int64(5), v)

	require.NoError(t, rf.SetStatus("R2", "ALU1"))
	status, err := rf.Status("R2")
	require.NoError(t, err)
	require.Equal(t, "ALU1", status)

	require.NoError(t, rf.Write("R0", 42), "writing R0 is permitted, no hardware-zero case")
	v, err = rf.Read("R0")
	require.NoError(t, err)
	require.Equal(t, int64(42), v)
}

func TestRegisterFile_InvalidNameIsHardFailure(t *testing.T) {
	rf := tomasulo.NewRegisterFileWithValues([]int64{0, 1, 2})

	_, err := rf.Read("X1")
	require.Error(t, err)

	_, err = rf.Read("R99")
	require.Error(t, err)
}

func TestRegisterFile_ClearStatusOnlyIfMatches(t *testing.T) {
	rf := tomasulo.NewRegisterFileWithValues([]int64{0, 0})

	require.NoError(t, rf.SetStatus("R1", "ALU1"))
	require.NoError(t, rf.SetStatus("R1", "ALU2")) // superseded by a later rename

	// The superseded producer's write-back must not clobber the newer
	// rename.
	require.NoError(t, rf.ClearStatusIfMatches("R1", "ALU1"))
	status, err := rf.Status("R1")
	require.NoError(t, err)
	require.Equal(t, "ALU2", status)

	require.NoError(t, rf.ClearStatusIfMatches("R1", "ALU2"))
	status, err = rf.Status("R1")
	require.NoError(t, err)
	require.Empty(t, status)
}

func TestNewRegisterFile_SeedIsDeterministic(t *testing.T) {
	a := tomasulo.NewRegisterFile(8, 42)
	b := tomasulo.NewRegisterFile(8, 42)
	av, _ := a.Snapshot()
	bv, _ := b.Snapshot()
	require.Equal(t, av, bv)
	require.Equal(t, int64(0), av[0])
}
