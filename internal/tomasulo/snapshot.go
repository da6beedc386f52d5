package tomasulo

// StationSnapshot is the read-only view of one busy reservation station
// included in a StateSnapshot.
type StationSnapshot struct {
	Name       string
	Op         Op
	Dest       string
	Vj, Vk     int64
	Qj, Qk     string
	Executing  bool
	CyclesLeft int
}

// CDBSnapshot is the read-only view of the common data bus.
type CDBSnapshot struct {
	ProducerTag string
	Value       int64
	Busy        bool
}

// StateSnapshot is the per-step record external viewers (the CLI's
// --step mode, or any future renderer) consume: the full register
// state, every busy station, and the CDB, as of the end of one tick.
type StateSnapshot struct {
	Cycle          int
	PC             int
	Registers      []int64
	RegisterStatus []string
	Stations       []StationSnapshot
	CDB            CDBSnapshot
}

// Snapshot captures the scheduler's current state.
func (s *Scheduler) Snapshot() StateSnapshot {
	values, status := s.Registers.Snapshot()
	snap := StateSnapshot{
		Cycle:          s.Cycle,
		PC:             s.PC,
		Registers:      values,
		RegisterStatus: status,
		CDB: CDBSnapshot{
			ProducerTag: s.CDB.ProducerTag,
			Value:       s.CDB.Value,
			Busy:        s.CDB.Busy,
		},
	}
	for _, rs := range s.Stations.All() {
		if !rs.Busy {
			continue
		}
		snap.Stations = append(snap.Stations, StationSnapshot{
			Name:       rs.Name,
			Op:         rs.Op,
			Dest:       rs.Dest,
			Vj:         rs.Vj,
			Vk:         rs.Vk,
			Qj:         rs.Qj,
			Qk:         rs.Qk,
			Executing:  rs.Executing,
			CyclesLeft: rs.CyclesLeft,
		})
	}
	return snap
}
