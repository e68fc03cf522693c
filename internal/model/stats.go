// internal/model/stats.go
package model

import (
	"strconv"
	"strings"
)

// Percent is a rounded percentage. It marshals like a Python float, so an
// integral value keeps its ".0" suffix.
type Percent float64

// MarshalJSON implements json.Marshaler.
func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p Percent) String() string {
	s := strconv.FormatFloat(float64(p), 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// Stats sisältää containerin johdetut resurssitiedot.
// Fields are declared in key order so the JSON dump comes out sorted.
type Stats struct {
	// Block I/O (Disk)
	BlockInput  uint64 `json:"block_input_bytes"`
	BlockOutput uint64 `json:"block_output_bytes"`

	// CPU
	CPUPercent Percent `json:"cpu_percent"`

	// Memory
	MemoryPercent Percent `json:"memory_percent"`
	MemoryUsage   uint64  `json:"memory_usage_bytes"`

	// Network, summed over every interface
	NetworkInput  uint64 `json:"net_input_bytes"`
	NetworkOutput uint64 `json:"net_output_bytes"`
}

// Field is one named metric value, already formatted.
type Field struct {
	Name  string
	Value string
}

// Fields returns the metrics in discovery order.
func (s Stats) Fields() []Field {
	u := func(v uint64) string { return strconv.FormatUint(v, 10) }
	return []Field{
		{"cpu_percent", s.CPUPercent.String()},
		{"memory_percent", s.MemoryPercent.String()},
		{"memory_usage_bytes", u(s.MemoryUsage)},
		{"net_input_bytes", u(s.NetworkInput)},
		{"net_output_bytes", u(s.NetworkOutput)},
		{"block_input_bytes", u(s.BlockInput)},
		{"block_output_bytes", u(s.BlockOutput)},
	}
}
