// internal/docker/interface.go
package docker

import (
	"context"

	"github.com/docker/docker/api/types"

	"github.com/rusenback/check-docker/internal/model"
)

// Runtime is the read-only view of the daemon the collector needs.
// Tests swap in a fake.
type Runtime interface {
	ListContainers(ctx context.Context) ([]model.Container, error)
	GetContainerStats(ctx context.Context, name string) (*types.StatsJSON, error)
}

// Varmista että Client toteuttaa interfacen
var _ Runtime = (*Client)(nil)
