package trace_test

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/Lahhamix/tumasulo-simulator/internal/tomasulo"
	"github.com/Lahhamix/tumasulo-simulator/internal/trace"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestParse_ArithmeticAndMemory(t *testing.T) {
	input := `
# a comment line, and a blank line follow

ADD R4, R1, R2
SUB  r5 , r4 , r3
LOAD R1, 4(R0)
STORE -8(R2), R3
`
	instrs, errs := trace.Parse(strings.NewReader(input), quietLogger())
	require.Empty(t, errs)
	require.Len(t, instrs, 4)

	require.Equal(t, &tomasulo.Instruction{Op: tomasulo.OpADD, Dest: "R4", Src1: "R1", Src2: "R2"}, instrs[0])
	require.Equal(t, &tomasulo.Instruction{Op: tomasulo.OpSUB, Dest: "R5", Src1: "R4", Src2: "R3"}, instrs[1])
	require.Equal(t, &tomasulo.Instruction{Op: tomasulo.OpLOAD, Dest: "R1", Base: "R0", Offset: 4}, instrs[2])
	require.Equal(t, &tomasulo.Instruction{Op: tomasulo.OpSTORE, Src1: "R3", Base: "R2", Offset: -8}, instrs[3])
}

func TestParse_MalformedLineIsSkippedNotFatal(t *testing.T) {
	input := "ADD R1, R2\nMUL R3, R1, R2\nFROB R1, R2, R3\n"
	instrs, errs := trace.Parse(strings.NewReader(input), quietLogger())

	require.Len(t, errs, 2)
	require.Equal(t, 1, errs[0].Line)
	require.Equal(t, 3, errs[1].Line)

	require.Len(t, instrs, 1)
	require.Equal(t, tomasulo.OpMUL, instrs[0].Op)
}
