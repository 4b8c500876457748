package ipc

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

const requestTimeout = 30 * time.Second

// SendRequest performs one request/response exchange with the daemon:
// connect, write the request as a single packet, read the response until the
// daemon closes the connection. Returns the response body, or an error for
// non-200 statuses carrying the daemon's explanation.
func SendRequest(socketPath, verb, body string) (string, error) {
	conn, err := net.DialTimeout("unix", socketPath, requestTimeout)
	if err != nil {
		return "", fmt.Errorf("connecting to %s (is the daemon running?): %w", socketPath, err)
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(requestTimeout))

	if _, err := conn.Write(NewRequest(verb, body).Encode()); err != nil {
		return "", fmt.Errorf("writing request: %w", err)
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	response, err := Decode(raw)
	if err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if response.Status != strconv.Itoa(StatusOK) {
		return "", fmt.Errorf("daemon replied %s: %s", response.Status, response.Body)
	}
	return response.Body, nil
}

// Ping checks whether a live daemon answers on socketPath.
func Ping(socketPath string) error {
	body, err := SendRequest(socketPath, VerbPing, "")
	if err != nil {
		return err
	}
	if body != "pong" {
		return fmt.Errorf("unexpected ping reply %q", body)
	}
	return nil
}
