package trace

import (
	"fmt"
	"math/rand"
)

// arithmeticOps are the opcodes Generate may emit for a register-only
// instruction.
var arithmeticOps = []string{"ADD", "SUB", "MUL", "DIV"}

// Generate produces n syntactically valid trace lines using rng,
// tracking a simulated register snapshot so LOAD/STORE offsets stay
// within [0, memorySize) relative to a register's simulated value,
// the same clamping original_source's generator performs.
func Generate(rng *rand.Rand, n int, numRegisters int, memorySize int) []string {
	lines := make([]string, 0, n)
	known := make([]int64, numRegisters)
	for i := 1; i < numRegisters; i++ {
		known[i] = int64(rng.Intn(100) + 1)
	}

	for i := 0; i < n; i++ {
		switch rng.Intn(3) {
		case 0:
			op := arithmeticOps[rng.Intn(len(arithmeticOps))]
			dest := rng.Intn(numRegisters-1) + 1
			src1 := rng.Intn(numRegisters)
			src2 := rng.Intn(numRegisters)
			lines = append(lines, fmt.Sprintf("%s R%d, R%d, R%d", op, dest, src1, src2))
			known[dest] = simulate(op, known[src1], known[src2])
		case 1:
			dest := rng.Intn(numRegisters-1) + 1
			base := rng.Intn(numRegisters)
			offset := generateValidOffset(rng, known[base], memorySize)
			lines = append(lines, fmt.Sprintf("LOAD R%d, %d(R%d)", dest, offset, base))
		default:
			base := rng.Intn(numRegisters)
			src := rng.Intn(numRegisters)
			offset := generateValidOffset(rng, known[base], memorySize)
			lines = append(lines, fmt.Sprintf("STORE %d(R%d), R%d", offset, base, src))
		}
	}
	return lines
}

func simulate(op string, a, b int64) int64 {
	switch op {
	case "ADD":
		return a + b
	case "SUB":
		return a - b
	case "MUL":
		return a * b
	case "DIV":
		if b == 0 {
			return 0
		}
		return a / b
	default:
		return 0
	}
}

// generateValidOffset picks an offset in [-32, 32], clamped further so
// baseVal+offset lands inside [0, memorySize-1].
func generateValidOffset(rng *rand.Rand, baseVal int64, memorySize int) int {
	offset := rng.Intn(65) - 32
	target := baseVal + int64(offset)
	if target < 0 {
		offset = -int(baseVal)
	} else if target > int64(memorySize-1) {
		offset = memorySize - 1 - int(baseVal)
	}
	return offset
}
