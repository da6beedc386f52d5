package tomasulo

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Lahhamix/tumasulo-simulator/internal/config"
)

// Scheduler holds the authoritative references to every other
// component and orchestrates one clock tick at a time: write-back,
// execute, issue, in that fixed order.
type Scheduler struct {
	Memory    *Memory
	Registers *RegisterFile
	Stations  *ReservationStationPool
	Units     *FunctionalUnitPool
	CDB       *CommonDataBus
	Metrics   *Metrics

	Instructions []*Instruction
	PC           int
	Cycle        int
	Done         bool

	latencies Latencies
	logger    *logrus.Logger
}

// New builds a scheduler from cfg with a freshly randomised register
// file (R0 forced to zero) and empty memory. Callers that need specific
// initial register or memory contents (tests, fixtures) should mutate
// s.Registers / s.Memory before the first Tick.
func New(cfg *config.Config, logger *logrus.Logger) *Scheduler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	mem := NewMemory(cfg.MemorySize, logger)
	return &Scheduler{
		Memory:    mem,
		Registers: NewRegisterFile(cfg.NumRegisters, cfg.Seed),
		Stations:  NewReservationStationPool(cfg.ALUStations, cfg.MulDivStations, cfg.LoadBuffers, cfg.StoreBuffers),
		Units:     NewFunctionalUnitPool(cfg.ALUUnits, cfg.MulDivUnits, cfg.LoadStoreUnits, mem, logger),
		CDB:       &CommonDataBus{},
		Metrics:   &Metrics{},
		latencies: Latencies{AddSub: cfg.LatencyAddSub, Mul: cfg.LatencyMul, Div: cfg.LatencyDiv, Load: cfg.LatencyLoad, Store: cfg.LatencyStore},
		logger:    logger,
	}
}

// Load installs instructions as the program to run, resetting PC,
// cycle, completion state, and the total-instruction metric — parse-
// skipped lines never reach here, so they implicitly reduce this count.
func (s *Scheduler) Load(instructions []*Instruction) {
	s.Instructions = instructions
	s.PC = 0
	s.Cycle = 0
	s.Done = false
	s.Metrics.TotalInstructions = len(instructions)
	s.Metrics.CompletedInstructions = 0
	s.Metrics.StructuralHazardStalls = 0
}

// Tick advances the simulation by exactly one cycle: sample, then
// write-back, execute, issue, in that order. It returns an error only
// for internal contract violations (never for a user-trace problem,
// which degrades to a logged warning instead).
func (s *Scheduler) Tick() error {
	s.Cycle++
	s.Metrics.TotalCycles = s.Cycle
	s.Metrics.Sample(s.Stations)

	if err := s.writeBack(); err != nil {
		return err
	}
	s.execute()
	issued, err := s.issue()
	if err != nil {
		return err
	}

	s.Done = !issued && s.PC >= len(s.Instructions) && s.Stations.AllFree()
	return nil
}

// Run advances the simulation until Done and returns the final report.
func (s *Scheduler) Run() (Report, error) {
	for !s.Done {
		if err := s.Tick(); err != nil {
			return Report{}, err
		}
	}
	return s.Metrics.Report(), nil
}

// RunStep advances one cycle and returns whether the simulation should
// continue, plus a full state snapshot for an external viewer.
func (s *Scheduler) RunStep() (bool, StateSnapshot, error) {
	if err := s.Tick(); err != nil {
		return false, StateSnapshot{}, err
	}
	return !s.Done, s.Snapshot(), nil
}

func (s *Scheduler) issue() (bool, error) {
	if s.PC >= len(s.Instructions) {
		return false, nil
	}
	instr := s.Instructions[s.PC]

	rs := s.Stations.GetAvailable(instr.Op)
	if rs == nil {
		s.Metrics.StructuralHazardStalls++
		return false, nil
	}

	rs.Busy = true
	rs.Op = instr.Op
	rs.Dest = instr.Dest
	rs.Instr = instr
	instr.IssueCycle = s.Cycle

	switch {
	case instr.Op.IsArithmetic():
		vj, qj, err := s.capture(instr.Src1)
		if err != nil {
			return false, err
		}
		vk, qk, err := s.capture(instr.Src2)
		if err != nil {
			return false, err
		}
		rs.Vj, rs.Qj = vj, qj
		rs.Vk, rs.Qk = vk, qk
		if err := s.Registers.SetStatus(instr.Dest, rs.Name); err != nil {
			return false, err
		}
	case instr.Op == OpLOAD:
		vj, qj, err := s.capture(instr.Base)
		if err != nil {
			return false, err
		}
		rs.Vj, rs.Qj = vj, qj
		rs.Offset = instr.Offset
		if err := s.Registers.SetStatus(instr.Dest, rs.Name); err != nil {
			return false, err
		}
	case instr.Op == OpSTORE:
		vj, qj, err := s.capture(instr.Base)
		if err != nil {
			return false, err
		}
		vk, qk, err := s.capture(instr.Src1)
		if err != nil {
			return false, err
		}
		rs.Vj, rs.Qj = vj, qj
		rs.Vk, rs.Qk = vk, qk
		rs.Offset = instr.Offset
	default:
		return false, errors.Errorf("unsupported opcode at issue: %s", instr.Op)
	}

	s.PC++
	return true, nil
}

// capture implements operand-capture register renaming: a pending
// producer yields a q-tag, otherwise the current value is copied.
func (s *Scheduler) capture(reg string) (value int64, tag string, err error) {
	status, err := s.Registers.Status(reg)
	if err != nil {
		return 0, "", err
	}
	if status != "" {
		return 0, status, nil
	}
	v, err := s.Registers.Read(reg)
	if err != nil {
		return 0, "", err
	}
	return v, "", nil
}

func (s *Scheduler) execute() {
	for _, rs := range s.Stations.All() {
		if !rs.IsReady() {
			continue
		}
		fu := s.Units.GetAvailable(rs.Op)
		if fu == nil {
			continue
		}
		latency := rs.Instr.Latency(s.latencies)
		fu.StartExecution(rs, latency)
		rs.Executing = true
		rs.CyclesLeft = latency
		// A station whose completion lost CDB arbitration runs again;
		// its first execute-start stamp is kept.
		if rs.Instr.StartCycle == 0 {
			rs.Instr.StartCycle = s.Cycle
		}

		if rs.Op.IsMemoryOp() {
			rs.Address = rs.Vj + int64(rs.Offset)
			rs.HasAddress = true
		}
	}
}

func (s *Scheduler) writeBack() error {
	s.CDB.Clear()

	completions := s.Units.Tick()
	if len(completions) == 0 {
		return nil
	}
	// More than one unit may finish in the same cycle; only the first
	// in functional-unit pool order is processed. The rest are dropped
	// on the floor for this cycle — a deliberate single-CDB semantic,
	// not a bug.
	winner := completions[0]

	s.CDB.Broadcast(winner.Tag, winner.Value)

	rs := s.Stations.GetByTag(winner.Tag)
	if rs == nil {
		return errors.Errorf("write-back: unknown station tag %q", winner.Tag)
	}
	rs.Instr.ExecuteCompleteCycle = s.Cycle
	rs.Instr.WriteResultCycle = s.Cycle

	if !winner.IsStore {
		if err := s.Registers.Write(rs.Dest, winner.Value); err != nil {
			return err
		}
		if err := s.Registers.ClearStatusIfMatches(rs.Dest, winner.Tag); err != nil {
			return err
		}
	}

	s.Stations.Broadcast(winner.Tag, winner.Value)
	s.Metrics.CompletedInstructions++
	rs.Clear()
	return nil
}
