package tomasulo

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RegisterFile holds N integer registers and a parallel status vector
// naming, for each register, the reservation station tag that will
// produce its next value (empty string means no pending producer).
//
// Register names are case-insensitive on input but every method here
// works on the validated, normalised form: R0..R(N-1).
type RegisterFile struct {
	values []int64
	status []string
}

// NewRegisterFile allocates n registers with R0 forced to zero and the
// rest seeded 1..100 from a local, seeded source — never the global
// rand state, so two runs with the same seed reproduce identical
// initial values.
func NewRegisterFile(n int, seed int64) *RegisterFile {
	rf := &RegisterFile{values: make([]int64, n), status: make([]string, n)}
	rng := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		rf.values[i] = int64(rng.Intn(100) + 1)
	}
	return rf
}

// NewRegisterFileWithValues allocates len(values) registers initialised
// exactly as given, for deterministic end-to-end tests.
func NewRegisterFileWithValues(values []int64) *RegisterFile {
	rf := &RegisterFile{values: append([]int64(nil), values...), status: make([]string, len(values))}
	return rf
}

// Len returns the number of registers.
func (rf *RegisterFile) Len() int {
	return len(rf.values)
}

// index validates and normalises a register name like "r3" or "R3"
// into its numeric index. Invalid names are an internal contract
// violation — a hard failure per the error-handling table.
func (rf *RegisterFile) index(name string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if len(upper) < 2 || upper[0] != 'R' {
		return 0, errors.Errorf("invalid register name %q", name)
	}
	n, err := strconv.Atoi(upper[1:])
	if err != nil {
		return 0, errors.Wrapf(err, "invalid register name %q", name)
	}
	if n < 0 || n >= len(rf.values) {
		return 0, errors.Errorf("register index out of range: %q", name)
	}
	return n, nil
}

// Read returns the current value of register name.
func (rf *RegisterFile) Read(name string) (int64, error) {
	i, err := rf.index(name)
	if err != nil {
		return 0, err
	}
	return rf.values[i], nil
}

// Write sets register name to value. Writing R0 is permitted; there is
// no hardware-zero special case.
func (rf *RegisterFile) Write(name string, value int64) error {
	i, err := rf.index(name)
	if err != nil {
		return err
	}
	rf.values[i] = value
	return nil
}

// Status returns the pending producer tag for register name, or "" if
// the register is not awaiting a write.
func (rf *RegisterFile) Status(name string) (string, error) {
	i, err := rf.index(name)
	if err != nil {
		return "", err
	}
	return rf.status[i], nil
}

// SetStatus names tag as the station that will next write register
// name. Passing "" clears it. A later SetStatus always wins over an
// earlier one — any previously pending producer is superseded, and its
// eventual write-back must not clobber this newer rename (enforced by
// ClearStatusIfMatches, not here).
func (rf *RegisterFile) SetStatus(name string, tag string) error {
	i, err := rf.index(name)
	if err != nil {
		return err
	}
	rf.status[i] = tag
	return nil
}

// ClearStatusIfMatches clears register name's status only if it still
// equals tag, so a write-back from a superseded producer can never
// clobber a rename performed by a later issue.
func (rf *RegisterFile) ClearStatusIfMatches(name string, tag string) error {
	i, err := rf.index(name)
	if err != nil {
		return err
	}
	if rf.status[i] == tag {
		rf.status[i] = ""
	}
	return nil
}

// Snapshot returns copies of the value and status vectors, safe for a
// caller to retain across ticks.
func (rf *RegisterFile) Snapshot() (values []int64, status []string) {
	return append([]int64(nil), rf.values...), append([]string(nil), rf.status...)
}
