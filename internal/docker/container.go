// internal/docker/container.go
package docker

import (
	"context"
	"strings"

	"github.com/docker/docker/api/types/container"

	"github.com/rusenback/check-docker/internal/model"
)

// ListContainers palauttaa ajossa olevat containerit
func (c *Client) ListContainers(ctx context.Context) ([]model.Container, error) {
	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	c.log.Debugf("GET %s", c.endpoint("containers/json"))

	containers, err := c.cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, &TransportError{Op: "list", Endpoint: c.endpoint("containers/json"), Err: err}
	}

	result := make([]model.Container, 0, len(containers))
	for _, cont := range containers {
		if len(cont.Names) == 0 {
			continue
		}
		result = append(result, model.Container{
			ID:   cont.ID,
			Name: StripName(cont.Names[0]),
		})
	}

	return result, nil
}

// StripName poistaa "/" merkin container nimen alusta
func StripName(name string) string {
	return strings.TrimPrefix(name, "/")
}
