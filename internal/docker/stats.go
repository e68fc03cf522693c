// internal/docker/stats.go
package docker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/docker/docker/api/types"
)

// requiredSections are the top-level keys the metrics are derived from.
// "networks" is optional: a container without networking omits it.
var requiredSections = []string{"name", "cpu_stats", "precpu_stats", "memory_stats", "blkio_stats"}

// GetContainerStats hakee containerin resurssitiedot yhtenä näytteenä
func (c *Client) GetContainerStats(ctx context.Context, name string) (*types.StatsJSON, error) {
	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	path := fmt.Sprintf("containers/%s/stats?stream=false", url.PathEscape(name))
	c.log.Debugf("GET %s", c.endpoint(path))

	// Hae stats (stream: false = hae vain kerran)
	resp, err := c.cli.ContainerStats(ctx, name, false)
	if err != nil {
		return nil, &TransportError{Op: "stats", Endpoint: c.endpoint(path), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "stats", Endpoint: c.endpoint(path), Err: err}
	}

	stats, err := decodeStats(name, body)
	if err != nil {
		var shapeErr *DataShapeError
		if errors.As(err, &shapeErr) {
			return nil, err
		}
		return nil, &TransportError{Op: "stats", Endpoint: c.endpoint(path), Err: err}
	}

	return stats, nil
}

// decodeStats parses a stats body, checking that every section the metrics
// need is present before decoding it into the typed snapshot.
func decodeStats(name string, body []byte) (*types.StatsJSON, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(body, &sections); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}

	for _, key := range requiredSections {
		raw, ok := sections[key]
		if !ok || string(raw) == "null" {
			return nil, &DataShapeError{Container: name, Field: key}
		}
	}

	var stats types.StatsJSON
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}

	return &stats, nil
}
