package tomasulo

import "fmt"

// ReservationStation is one entry of a reservation-station pool: a
// stable tag, the operation it will carry out once its operands are
// ready, and the operand-capture slots (vj,qj)/(vk,qk) that implement
// register renaming and CDB snooping.
type ReservationStation struct {
	Name string

	Busy  bool
	Op    Op
	Dest  string
	Instr *Instruction

	Vj, Vk int64
	Qj, Qk string // "" means the operand is ready (value already in V*)

	Offset     int
	Address    int64
	HasAddress bool

	Executing  bool
	CyclesLeft int
}

// IsReady reports whether the station can begin execution this cycle:
// occupied, not already executing, and both operands resolved.
func (rs *ReservationStation) IsReady() bool {
	return rs.Busy && !rs.Executing && rs.Qj == "" && rs.Qk == ""
}

// Clear returns the station to the free pool, resetting every field a
// subsequent issue into this station must not observe.
func (rs *ReservationStation) Clear() {
	name := rs.Name
	*rs = ReservationStation{Name: name}
}

// snoop matches a CDB broadcast against this station's pending operand
// slots, capturing the value and clearing the matching q-slot. Both
// slots are checked independently — an instruction with two sources
// named by the same producer resolves both in one broadcast.
func (rs *ReservationStation) snoop(tag string, value int64) {
	if rs.Qj == tag {
		rs.Qj = ""
		rs.Vj = value
	}
	if rs.Qk == tag {
		rs.Qk = ""
		rs.Vk = value
	}
}

func (rs *ReservationStation) String() string {
	if !rs.Busy {
		return fmt.Sprintf("%s: free", rs.Name)
	}
	return fmt.Sprintf("%s: op=%s dest=%s vj=%d qj=%q vk=%d qk=%q executing=%v cyclesLeft=%d",
		rs.Name, rs.Op, rs.Dest, rs.Vj, rs.Qj, rs.Vk, rs.Qk, rs.Executing, rs.CyclesLeft)
}

// ReservationStationPool partitions stations into the four disjoint
// pools mandated by the spec: ALU, MUL/DIV, LOAD buffers, STORE
// buffers. It is a capability store over station records only — it
// does not itself decide readiness or drive execution.
type ReservationStationPool struct {
	ALU    []*ReservationStation
	MulDiv []*ReservationStation
	Load   []*ReservationStation
	Store  []*ReservationStation
	byTag  map[string]*ReservationStation
}

// NewReservationStationPool allocates the four pools with stable,
// process-wide-unique tags (ALU1, ALU2, ..., MD1, ..., L1, ..., S1, ...).
func NewReservationStationPool(aluN, mulDivN, loadN, storeN int) *ReservationStationPool {
	p := &ReservationStationPool{byTag: make(map[string]*ReservationStation)}
	for i := 0; i < aluN; i++ {
		p.ALU = append(p.ALU, p.alloc(fmt.Sprintf("ALU%d", i+1)))
	}
	for i := 0; i < mulDivN; i++ {
		p.MulDiv = append(p.MulDiv, p.alloc(fmt.Sprintf("MD%d", i+1)))
	}
	for i := 0; i < loadN; i++ {
		p.Load = append(p.Load, p.alloc(fmt.Sprintf("L%d", i+1)))
	}
	for i := 0; i < storeN; i++ {
		p.Store = append(p.Store, p.alloc(fmt.Sprintf("S%d", i+1)))
	}
	return p
}

func (p *ReservationStationPool) alloc(tag string) *ReservationStation {
	rs := &ReservationStation{Name: tag}
	p.byTag[tag] = rs
	return rs
}

// classFor returns the pool slice that owns op's operation class.
func (p *ReservationStationPool) classFor(op Op) []*ReservationStation {
	switch {
	case op.IsALUClass():
		return p.ALU
	case op.IsMulDivClass():
		return p.MulDiv
	case op == OpLOAD:
		return p.Load
	case op == OpSTORE:
		return p.Store
	default:
		return nil
	}
}

// GetAvailable returns the first non-busy station in op's pool, in
// stable declaration order, or nil if the pool is full (a structural
// hazard).
func (p *ReservationStationPool) GetAvailable(op Op) *ReservationStation {
	for _, rs := range p.classFor(op) {
		if !rs.Busy {
			return rs
		}
	}
	return nil
}

// GetByTag looks up a station by its stable tag.
func (p *ReservationStationPool) GetByTag(tag string) *ReservationStation {
	return p.byTag[tag]
}

// Broadcast snoops tag/value into every station in the pool, in
// traversal order. It does not short-circuit: a station may resolve
// both its operands from the same broadcast.
func (p *ReservationStationPool) Broadcast(tag string, value int64) {
	for _, rs := range p.All() {
		rs.snoop(tag, value)
	}
}

// All returns every station across the four pools in stable
// declaration order (ALU, MUL/DIV, LOAD, STORE) — the traversal order
// the execute phase and invariant checks rely on.
func (p *ReservationStationPool) All() []*ReservationStation {
	all := make([]*ReservationStation, 0, len(p.ALU)+len(p.MulDiv)+len(p.Load)+len(p.Store))
	all = append(all, p.ALU...)
	all = append(all, p.MulDiv...)
	all = append(all, p.Load...)
	all = append(all, p.Store...)
	return all
}

// AllFree reports whether every station in every pool is idle — part
// of the scheduler's termination condition.
func (p *ReservationStationPool) AllFree() bool {
	for _, rs := range p.All() {
		if rs.Busy {
			return false
		}
	}
	return true
}
