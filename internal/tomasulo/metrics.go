package tomasulo

// Metrics is a passive accumulator of counters sampled once per tick,
// before the write-back/execute/issue phases run.
type Metrics struct {
	TotalCycles            int
	TotalInstructions      int
	CompletedInstructions  int
	RSBusyCycles           int
	TotalRSCycles          int
	LSBusyCycles           int
	TotalLSCycles          int
	StructuralHazardStalls int
}

// Sample records this cycle's occupancy for the ALU+MUL/DIV pools and,
// symmetrically, the LOAD+STORE buffer pools.
func (m *Metrics) Sample(pool *ReservationStationPool) {
	for _, rs := range append(append([]*ReservationStation{}, pool.ALU...), pool.MulDiv...) {
		if rs.Busy {
			m.RSBusyCycles++
		}
		m.TotalRSCycles++
	}
	for _, rs := range append(append([]*ReservationStation{}, pool.Load...), pool.Store...) {
		if rs.Busy {
			m.LSBusyCycles++
		}
		m.TotalLSCycles++
	}
}

// Report is the derived, presentation-ready summary of a completed or
// in-progress run.
type Report struct {
	TotalCycles              int
	CompletedInstructions    int
	TotalInstructions        int
	IPC                      float64
	RSOccupancyPct           float64
	LSUtilizationPct         float64
	StructuralHazardStalls   int
	StructuralHazardStallPct float64
}

// Report computes the derived metrics, guarding every ratio against a
// zero denominator.
func (m *Metrics) Report() Report {
	r := Report{
		TotalCycles:            m.TotalCycles,
		CompletedInstructions:  m.CompletedInstructions,
		TotalInstructions:      m.TotalInstructions,
		StructuralHazardStalls: m.StructuralHazardStalls,
	}
	if m.TotalCycles > 0 {
		r.IPC = float64(m.CompletedInstructions) / float64(m.TotalCycles)
		r.StructuralHazardStallPct = float64(m.StructuralHazardStalls) / float64(m.TotalCycles) * 100
	}
	if m.TotalRSCycles > 0 {
		r.RSOccupancyPct = float64(m.RSBusyCycles) / float64(m.TotalRSCycles) * 100
	}
	if m.TotalLSCycles > 0 {
		r.LSUtilizationPct = float64(m.LSBusyCycles) / float64(m.TotalLSCycles) * 100
	}
	return r
}
