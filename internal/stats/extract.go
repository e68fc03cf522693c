// Package stats derives point-in-time metrics from the cumulative counters
// of a docker stats snapshot.
package stats

import (
	"math"

	"github.com/docker/docker/api/types"
	"github.com/rusenback/check-docker/internal/model"
)

// Extract laskee kaikki johdetut arvot yhdestä snapshotista.
func Extract(s *types.StatsJSON) model.Stats {
	rx, tx := NetworkIO(s)
	read, write := BlockIO(&s.BlkioStats)

	return model.Stats{
		CPUPercent:    model.Percent(CPUPercent(s)),
		MemoryPercent: model.Percent(MemoryPercent(&s.MemoryStats)),
		MemoryUsage:   s.MemoryStats.Usage,
		NetworkInput:  rx,
		NetworkOutput: tx,
		BlockInput:    read,
		BlockOutput:   write,
	}
}

// CPUPercent laskee CPU käytön prosentteina kahden näytteen erotuksesta.
// The core count is the number of per-CPU entries in the current sample.
func CPUPercent(s *types.StatsJSON) float64 {
	cur, pre := s.CPUStats, s.PreCPUStats

	// Counters are unsigned; compare before subtracting so a reset can't wrap.
	if cur.CPUUsage.TotalUsage <= pre.CPUUsage.TotalUsage || cur.SystemUsage <= pre.SystemUsage {
		return 0.0
	}

	cpuDelta := float64(cur.CPUUsage.TotalUsage - pre.CPUUsage.TotalUsage)
	systemDelta := float64(cur.SystemUsage - pre.SystemUsage)

	percent := (cpuDelta / systemDelta) * float64(len(cur.CPUUsage.PercpuUsage)) * 100.0
	return Round(percent)
}

// MemoryPercent returns usage/limit as a percentage, or 0 when the limit is
// unknown.
func MemoryPercent(m *types.MemoryStats) float64 {
	if m.Limit == 0 {
		return 0.0
	}
	return Round(float64(m.Usage) / float64(m.Limit) * 100.0)
}

// NetworkIO sums received and transmitted bytes over all interfaces.
// A snapshot without a networks section yields zeros.
func NetworkIO(s *types.StatsJSON) (rx, tx uint64) {
	for _, network := range s.Networks {
		rx += network.RxBytes
		tx += network.TxBytes
	}
	return rx, tx
}

// BlockIO sums the "Read" and "Write" entries of io_service_bytes_recursive.
// Other operations are ignored.
func BlockIO(b *types.BlkioStats) (read, write uint64) {
	for _, entry := range b.IoServiceBytesRecursive {
		switch entry.Op {
		case "Read":
			read += entry.Value
		case "Write":
			write += entry.Value
		}
	}
	return read, write
}

// Round rounds to two decimals, half away from zero.
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}
