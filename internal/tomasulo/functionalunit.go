package tomasulo

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Completion is the (producer tag, value) pair a functional unit emits
// when its bound station finishes executing.
type Completion struct {
	Tag   string
	Value int64
	// IsStore marks a STORE completion, whose value carries no register
	// result — the broadcast still happens (nothing depends on a STORE's
	// tag, since STORE never renames a destination) but the scheduler
	// must not write it into the register file.
	IsStore bool
}

// FunctionalUnit binds to at most one reservation station while
// executing, counts down cycles, and computes the opcode's result when
// the countdown reaches zero.
type FunctionalUnit struct {
	Name         string
	SupportedOps map[Op]bool

	Busy       bool
	RS         *ReservationStation
	CyclesLeft int

	mem    *Memory // only set for LOAD/STORE units
	logger *logrus.Logger
}

// CanAccept reports whether this unit is idle and supports op.
func (fu *FunctionalUnit) CanAccept(op Op) bool {
	return !fu.Busy && fu.SupportedOps[op]
}

// StartExecution binds rs to this unit for latency cycles.
func (fu *FunctionalUnit) StartExecution(rs *ReservationStation, latency int) {
	fu.Busy = true
	fu.RS = rs
	fu.CyclesLeft = latency
}

// Tick advances the unit by one cycle. If it was idle, it returns
// (Completion{}, false). If its countdown reaches zero this cycle, it
// computes the result, frees the unit, and returns the completion.
func (fu *FunctionalUnit) Tick() (Completion, bool) {
	if !fu.Busy {
		return Completion{}, false
	}
	fu.CyclesLeft--
	fu.RS.CyclesLeft--
	if fu.CyclesLeft > 0 {
		return Completion{}, false
	}

	rs := fu.RS
	value := fu.compute(rs)
	completion := Completion{Tag: rs.Name, Value: value, IsStore: rs.Op == OpSTORE}

	fu.Busy = false
	fu.RS = nil
	rs.Executing = false

	return completion, true
}

func (fu *FunctionalUnit) compute(rs *ReservationStation) int64 {
	switch rs.Op {
	case OpADD:
		return rs.Vj + rs.Vk
	case OpSUB:
		return rs.Vj - rs.Vk
	case OpMUL:
		return rs.Vj * rs.Vk
	case OpDIV:
		if rs.Vk == 0 {
			fu.logger.WithFields(logrus.Fields{
				"component": "functional-unit",
				"unit":      fu.Name,
				"station":   rs.Name,
			}).Warn("divide by zero, result forced to 0")
			return 0
		}
		return rs.Vj / rs.Vk
	case OpLOAD:
		return fu.mem.Read(rs.Address)
	case OpSTORE:
		fu.mem.Write(rs.Address, rs.Vk)
		return 0
	default:
		panic(fmt.Sprintf("functional unit %s: unsupported opcode %s reached compute", fu.Name, rs.Op))
	}
}

// FunctionalUnitPool holds the three typed unit classes. Pool
// declaration order (ALU, then MUL/DIV, then LOAD/STORE) is the
// arbitration order write-back uses when more than one unit completes
// in the same cycle.
type FunctionalUnitPool struct {
	ALU       []*FunctionalUnit
	MulDiv    []*FunctionalUnit
	LoadStore []*FunctionalUnit
}

// NewFunctionalUnitPool allocates aluN ALU units, mulDivN MUL/DIV
// units, and loadStoreN LOAD/STORE units, the latter bound to mem.
func NewFunctionalUnitPool(aluN, mulDivN, loadStoreN int, mem *Memory, logger *logrus.Logger) *FunctionalUnitPool {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	p := &FunctionalUnitPool{}
	for i := 0; i < aluN; i++ {
		p.ALU = append(p.ALU, &FunctionalUnit{
			Name:         fmt.Sprintf("ALU-unit-%d", i+1),
			SupportedOps: map[Op]bool{OpADD: true, OpSUB: true},
			logger:       logger,
		})
	}
	for i := 0; i < mulDivN; i++ {
		p.MulDiv = append(p.MulDiv, &FunctionalUnit{
			Name:         fmt.Sprintf("MulDiv-unit-%d", i+1),
			SupportedOps: map[Op]bool{OpMUL: true, OpDIV: true},
			logger:       logger,
		})
	}
	for i := 0; i < loadStoreN; i++ {
		p.LoadStore = append(p.LoadStore, &FunctionalUnit{
			Name:         fmt.Sprintf("LoadStore-unit-%d", i+1),
			SupportedOps: map[Op]bool{OpLOAD: true, OpSTORE: true},
			mem:          mem,
			logger:       logger,
		})
	}
	return p
}

// All returns every unit in the pool's fixed arbitration order.
func (p *FunctionalUnitPool) All() []*FunctionalUnit {
	all := make([]*FunctionalUnit, 0, len(p.ALU)+len(p.MulDiv)+len(p.LoadStore))
	all = append(all, p.ALU...)
	all = append(all, p.MulDiv...)
	all = append(all, p.LoadStore...)
	return all
}

// GetAvailable returns the first idle unit in pool order that supports
// op, or nil.
func (p *FunctionalUnitPool) GetAvailable(op Op) *FunctionalUnit {
	for _, fu := range p.All() {
		if fu.CanAccept(op) {
			return fu
		}
	}
	return nil
}

// Tick advances every unit by one cycle and returns the completions
// produced this cycle, in pool order — the order write-back arbitrates
// by when more than one unit finishes simultaneously.
func (p *FunctionalUnitPool) Tick() []Completion {
	var completions []Completion
	for _, fu := range p.All() {
		if c, ok := fu.Tick(); ok {
			completions = append(completions, c)
		}
	}
	return completions
}
