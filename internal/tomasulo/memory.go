package tomasulo

import "github.com/sirupsen/logrus"

// Memory is a linear, word-addressable store. Out-of-range access is a
// soft failure: reads return zero and writes are dropped, each logged
// rather than raised, matching the "never crashes on a user trace"
// contract.
type Memory struct {
	words  []int64
	logger *logrus.Logger
}

// NewMemory allocates a zeroed memory of the given size in words.
func NewMemory(size int, logger *logrus.Logger) *Memory {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Memory{words: make([]int64, size), logger: logger}
}

// Size returns the number of addressable words.
func (m *Memory) Size() int {
	return len(m.words)
}

// Read returns the word at address, or zero with a logged warning if
// address is out of range.
func (m *Memory) Read(address int64) int64 {
	if address < 0 || int(address) >= len(m.words) {
		m.logger.WithFields(logrus.Fields{
			"component": "memory",
			"address":   address,
			"size":      len(m.words),
		}).Warn("read out of range, returning 0")
		return 0
	}
	return m.words[address]
}

// Write stores value at address, or drops it with a logged warning if
// address is out of range.
func (m *Memory) Write(address int64, value int64) {
	if address < 0 || int(address) >= len(m.words) {
		m.logger.WithFields(logrus.Fields{
			"component": "memory",
			"address":   address,
			"size":      len(m.words),
		}).Warn("write out of range, dropped")
		return
	}
	m.words[address] = value
}

// Preload seeds the memory from a sparse address→value map, for tests
// and trace fixtures that need a pre-filled word (e.g. mem[4] = 42).
func (m *Memory) Preload(values map[int64]int64) {
	for addr, v := range values {
		m.Write(addr, v)
	}
}
