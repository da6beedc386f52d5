package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/Lahhamix/tumasulo-simulator/internal/tomasulo"
)

func printReport(r tomasulo.Report) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"metric", "value"})
	table.Append([]string{"total cycles", fmt.Sprintf("%d", r.TotalCycles)})
	table.Append([]string{"completed / total instructions", fmt.Sprintf("%d / %d", r.CompletedInstructions, r.TotalInstructions)})
	table.Append([]string{"IPC", fmt.Sprintf("%.2f", r.IPC)})
	table.Append([]string{"RS occupancy", fmt.Sprintf("%.1f%%", r.RSOccupancyPct)})
	table.Append([]string{"LS buffer utilization", fmt.Sprintf("%.1f%%", r.LSUtilizationPct)})
	table.Append([]string{"structural hazard stalls", fmt.Sprintf("%d (%.1f%%)", r.StructuralHazardStalls, r.StructuralHazardStallPct)})
	table.Render()
}

func printSnapshot(s tomasulo.StateSnapshot, verbose bool) {
	fmt.Printf("cycle %d, pc %d\n", s.Cycle, s.PC)
	if !verbose {
		return
	}

	regTable := tablewriter.NewWriter(os.Stdout)
	regTable.SetHeader([]string{"register", "value", "status"})
	for i, v := range s.Registers {
		status := s.RegisterStatus[i]
		if status == "" {
			status = "-"
		}
		regTable.Append([]string{fmt.Sprintf("R%d", i), fmt.Sprintf("%d", v), status})
	}
	regTable.Render()

	if len(s.Stations) > 0 {
		rsTable := tablewriter.NewWriter(os.Stdout)
		rsTable.SetHeader([]string{"station", "op", "dest", "vj", "qj", "vk", "qk", "executing", "cycles left"})
		for _, st := range s.Stations {
			qj, qk := st.Qj, st.Qk
			if qj == "" {
				qj = "-"
			}
			if qk == "" {
				qk = "-"
			}
			rsTable.Append([]string{
				st.Name, string(st.Op), st.Dest,
				fmt.Sprintf("%d", st.Vj), qj,
				fmt.Sprintf("%d", st.Vk), qk,
				fmt.Sprintf("%v", st.Executing),
				fmt.Sprintf("%d", st.CyclesLeft),
			})
		}
		rsTable.Render()
	}

	fmt.Printf("CDB: busy=%v tag=%q value=%d\n\n", s.CDB.Busy, s.CDB.ProducerTag, s.CDB.Value)
}
