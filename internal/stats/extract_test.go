package stats

import (
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/check-docker/internal/model"
)

func cpuSnapshot(total, preTotal, system, preSystem uint64, cores int) *types.StatsJSON {
	s := &types.StatsJSON{}
	s.CPUStats.CPUUsage.TotalUsage = total
	s.CPUStats.CPUUsage.PercpuUsage = make([]uint64, cores)
	s.CPUStats.SystemUsage = system
	s.PreCPUStats.CPUUsage.TotalUsage = preTotal
	s.PreCPUStats.SystemUsage = preSystem
	return s
}

func TestCPUPercent(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *types.StatsJSON
		want     float64
	}{
		{
			name:     "four cores",
			snapshot: cpuSnapshot(1400000000, 1000000000, 12000000000, 10000000000, 4),
			want:     80.00,
		},
		{
			name:     "rounded to two decimals",
			snapshot: cpuSnapshot(1, 0, 3, 0, 1),
			want:     33.33,
		},
		{
			name:     "no cpu delta",
			snapshot: cpuSnapshot(500, 500, 2000, 1000, 2),
			want:     0.0,
		},
		{
			name:     "no system delta",
			snapshot: cpuSnapshot(600, 500, 1000, 1000, 2),
			want:     0.0,
		},
		{
			name:     "counter went backwards",
			snapshot: cpuSnapshot(400, 500, 900, 1000, 2),
			want:     0.0,
		},
		{
			name:     "no per-cpu entries",
			snapshot: cpuSnapshot(600, 500, 2000, 1000, 0),
			want:     0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CPUPercent(tt.snapshot))
		})
	}
}

func TestMemoryPercent(t *testing.T) {
	assert.Equal(t, 9.77, MemoryPercent(&types.MemoryStats{Usage: 104857600, Limit: 1073741824}))
	assert.Equal(t, 100.0, MemoryPercent(&types.MemoryStats{Usage: 512, Limit: 512}))
	assert.Equal(t, 0.0, MemoryPercent(&types.MemoryStats{Usage: 512, Limit: 0}))
}

func TestNetworkIO(t *testing.T) {
	s := &types.StatsJSON{Networks: map[string]types.NetworkStats{
		"eth0": {RxBytes: 100, TxBytes: 50},
		"eth1": {RxBytes: 25, TxBytes: 10},
	}}
	rx, tx := NetworkIO(s)
	assert.Equal(t, uint64(125), rx)
	assert.Equal(t, uint64(60), tx)

	rx, tx = NetworkIO(&types.StatsJSON{})
	assert.Zero(t, rx)
	assert.Zero(t, tx)
}

func TestBlockIO(t *testing.T) {
	b := &types.BlkioStats{IoServiceBytesRecursive: []types.BlkioStatEntry{
		{Op: "Read", Value: 10},
		{Op: "Write", Value: 20},
		{Op: "Read", Value: 5},
		{Op: "Sync", Value: 999},
		{Op: "read", Value: 7},
	}}
	read, write := BlockIO(b)
	assert.Equal(t, uint64(15), read)
	assert.Equal(t, uint64(20), write)

	read, write = BlockIO(&types.BlkioStats{})
	assert.Zero(t, read)
	assert.Zero(t, write)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 9.77, Round(9.765625))
	assert.Equal(t, 1.23, Round(1.234))
	assert.Equal(t, 0.0, Round(0.004))
}

func TestExtract(t *testing.T) {
	s := cpuSnapshot(1400000000, 1000000000, 12000000000, 10000000000, 4)
	s.MemoryStats = types.MemoryStats{Usage: 104857600, Limit: 1073741824}
	s.Networks = map[string]types.NetworkStats{"eth0": {RxBytes: 100, TxBytes: 50}}
	s.BlkioStats.IoServiceBytesRecursive = []types.BlkioStatEntry{
		{Op: "Read", Value: 10},
		{Op: "Write", Value: 20},
	}

	want := model.Stats{
		CPUPercent:    80.0,
		MemoryPercent: 9.77,
		MemoryUsage:   104857600,
		NetworkInput:  100,
		NetworkOutput: 50,
		BlockInput:    10,
		BlockOutput:   20,
	}

	got := Extract(s)
	require.Equal(t, want, got)
	assert.Equal(t, got, Extract(s), "extracting twice must give the same result")
}
