package docker

import (
	"context"
	"time"

	"github.com/docker/docker/client"
	"github.com/sirupsen/logrus"

	"github.com/rusenback/check-docker/internal/config"
)

// Client wrappaa Docker API clientin
type Client struct {
	cli     *client.Client
	socket  string
	timeout time.Duration
	log     logrus.FieldLogger
}

// NewClient luo uuden Docker clientin ja tarkistaa yhteyden
func NewClient(cfg config.Config, log logrus.FieldLogger) (*Client, error) {
	opts := []client.Opt{
		client.WithHost("unix://" + cfg.DockerSocket),
		client.WithAPIVersionNegotiation(),
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, &TransportError{Op: "connect", Endpoint: endpoint(cfg.DockerSocket, ""), Err: err}
	}

	c := &Client{
		cli:     cli,
		socket:  cfg.DockerSocket,
		timeout: cfg.Timeout,
		log:     log,
	}

	ctx, cancel := c.requestContext(context.Background())
	defer cancel()

	if _, err := cli.Ping(ctx); err != nil {
		cli.Close()
		return nil, &TransportError{Op: "ping", Endpoint: c.endpoint("_ping"), Err: err}
	}

	return c, nil
}

// requestContext bounds a single request by the configured timeout.
// A zero timeout leaves the request unbounded.
func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

func (c *Client) endpoint(path string) string {
	return endpoint(c.socket, path)
}

// Close sulkee yhteyden
func (c *Client) Close() error {
	if c.cli != nil {
		return c.cli.Close()
	}
	return nil
}
