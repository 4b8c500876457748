package ipc

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// One request per connection; anything larger than this is not a packet
// this protocol produces.
const maxPacketSize = 64 * 1024

// Server accepts connections on the control socket, decodes one request
// packet per connection, dispatches it against the Controller, replies, and
// closes. KILL and a fatal cycler error both unwind the accept loop.
type Server struct {
	controller Controller
	socketPath string
	listener   net.Listener

	mu       sync.Mutex
	killed   bool
	fatalErr error
}

func NewServer(controller Controller, socketPath string) *Server {
	return &Server{
		controller: controller,
		socketPath: socketPath,
	}
}

// Listen binds the unix socket. An existing socket file is probed with PING
// first: a live daemon refuses the start, a stale file from a dead process
// is removed and the path rebound.
func (s *Server) Listen() error {
	if _, err := os.Stat(s.socketPath); err == nil {
		if Ping(s.socketPath) == nil {
			return fmt.Errorf("socket %s is in use, another daemon is already running", s.socketPath)
		}
		log.Warnf("Removing stale socket file %s", s.socketPath)
		if err := os.Remove(s.socketPath); err != nil {
			return fmt.Errorf("removing stale socket file: %w", err)
		}
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return err
	}
	s.listener = listener
	return nil
}

// Serve runs the accept loop until the server is shut down. It returns nil
// after a KILL request or Shutdown call, and the recorded error after Fail.
// The socket file is removed on every exit path.
func (s *Server) Serve() error {
	defer func() {
		log.Infof("Removing socket file %s", s.socketPath)
		_ = os.Remove(s.socketPath)
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.mu.Lock()
			killed, fatal := s.killed, s.fatalErr
			s.mu.Unlock()
			if fatal != nil {
				return fatal
			}
			if killed || errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Errorf("Ran into an error when accepting a connection: %v", err)
			continue
		}
		s.handleConn(conn)
	}
}

// Shutdown breaks the accept loop without an error. Safe to call from a
// handler or a signal goroutine.
func (s *Server) Shutdown() {
	s.mu.Lock()
	s.killed = true
	s.mu.Unlock()
	s.closeListener()
}

// Fail breaks the accept loop and makes Serve return err. Used when the
// cycling goroutine hits a fatal condition.
func (s *Server) Fail(err error) {
	s.mu.Lock()
	s.fatalErr = err
	s.mu.Unlock()
	s.closeListener()
}

func (s *Server) closeListener() {
	if s.listener != nil {
		_ = s.listener.Close()
	}
}

// handleConn reads the raw request, decodes the packet, and hands it to the
// command dispatch. Each path writes exactly one response.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, maxPacketSize)
	n, err := conn.Read(buf)
	if err != nil {
		log.Errorf("Error while attempting to read from socket stream: %v", err)
		s.respond(conn, NewResponse(StatusInternalError, "Internal server error"))
		return
	}

	log.Debugf("Request received:\n%s", buf[:n])

	request, err := Decode(buf[:n])
	if err != nil {
		log.Warnf("Ran into error while decoding packet: %v", err)
		s.respond(conn, NewResponse(StatusBadRequest, "Request has bad format"))
		return
	}

	verb, ok := request.Headers[ControlHeader]
	if !ok {
		log.Warn("Necessary packet header not found")
		s.respond(conn, NewResponse(StatusBadRequest, "Missing required headers"))
		return
	}

	s.dispatch(conn, verb, request.Body)
}

// respond writes one response packet. Write failures are logged and the
// connection abandoned; they never affect other connections or the cycler.
func (s *Server) respond(conn net.Conn, response *Packet) {
	if _, err := conn.Write(response.Encode()); err != nil {
		log.Errorf("Failed to write to socket stream: %v", err)
	}
}
