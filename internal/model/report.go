package model

// ContainerStats pairs a container name with its derived metrics.
type ContainerStats struct {
	Name  string
	Stats Stats
}

// Report is the result of one collection run. Containers keeps discovery
// order and holds each name once.
type Report struct {
	Status     Status
	Containers []ContainerStats
}

// ByName returns the metrics keyed by container name.
func (r Report) ByName() map[string]Stats {
	m := make(map[string]Stats, len(r.Containers))
	for _, c := range r.Containers {
		m[c.Name] = c.Stats
	}
	return m
}
