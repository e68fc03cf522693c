package docker

import (
	"fmt"
	"strings"
)

// TransportError means the daemon could not be reached or answered with
// something other than a usable response.
type TransportError struct {
	Op       string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DataShapeError means a well-formed stats response lacked a field the
// metrics are derived from.
type DataShapeError struct {
	Container string
	Field     string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("stats for container %q: missing field %q", e.Container, e.Field)
}

// SocketAuthority encodes a socket path for use as the host part of an
// http+unix URL.
func SocketAuthority(path string) string {
	return strings.ReplaceAll(path, "/", "%2F")
}

func endpoint(socket, path string) string {
	return "http+unix://" + SocketAuthority(socket) + "/" + path
}
