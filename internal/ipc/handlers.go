package ipc

import (
	"fmt"
	"net"
	"strings"

	"github.com/charmbracelet/log"
)

// dispatch routes a decoded request to its handler. Unknown verbs get a 400
// and mutate nothing.
func (s *Server) dispatch(conn net.Conn, verb, body string) {
	switch strings.ToUpper(verb) {
	case VerbSetWallpaper:
		s.handleSetWallpaper(conn, body)
	case VerbGetWallpaper:
		s.handleGetWallpaper(conn)
	case VerbNext:
		s.handleNext(conn)
	case VerbGetDir:
		s.handleGetDir(conn)
	case VerbSetDir:
		s.handleSetDir(conn, body)
	case VerbPing:
		s.handlePing(conn)
	case VerbKill:
		s.handleKill(conn)
	default:
		log.Warnf("Received invalid request: %s", verb)
		s.respond(conn, NewResponse(StatusBadRequest, "Invalid request!"))
	}
}

func (s *Server) handleSetWallpaper(conn net.Conn, path string) {
	log.Info("Received request: SETWP")
	s.controller.SetNextWallpaper(path)
	s.respond(conn, NewResponse(StatusOK, fmt.Sprintf("Updated wallpaper to %s", path)))
}

func (s *Server) handleGetWallpaper(conn net.Conn) {
	log.Info("Received request: GETWP")
	s.respond(conn, NewResponse(StatusOK, s.controller.CurrentWallpaper()))
}

// handleNext reports the wallpaper that was current before the signal; the
// cycler may not have applied the new one by the time the response lands.
// Clients poll GETWP to observe the change.
func (s *Server) handleNext(conn net.Conn) {
	log.Info("Received request: NEXT")
	previous := s.controller.CurrentWallpaper()
	s.controller.Cycle()
	s.respond(conn, NewResponse(StatusOK, fmt.Sprintf("Cycled wallpaper to %s", previous)))
}

func (s *Server) handleGetDir(conn net.Conn) {
	log.Info("Received request: GETDIR")
	s.respond(conn, NewResponse(StatusOK, s.controller.Directory()))
}

// handleSetDir expects a body of three newline-separated fields:
// recursive flag, random flag, directory path. An empty flag field means
// false, anything else means true.
func (s *Server) handleSetDir(conn net.Conn, body string) {
	log.Info("Received request: SETDIR")

	fields := strings.SplitN(body, "\n", 3)
	if len(fields) != 3 {
		s.respond(conn, NewResponse(StatusBadRequest, "Invalid request format"))
		return
	}
	recursive := fields[0] != ""
	random := fields[1] != ""
	path := fields[2]

	if err := s.controller.SetDirectory(path, recursive, random); err != nil {
		s.respond(conn, NewResponse(StatusBadRequest, fmt.Sprintf("There was an error setting the directory: %v", err)))
		return
	}
	s.respond(conn, NewResponse(StatusOK, fmt.Sprintf("Wonderwall will now cycle through %s", path)))
}

func (s *Server) handlePing(conn net.Conn) {
	log.Info("Received request: PING")
	s.respond(conn, NewResponse(StatusOK, "pong"))
}

func (s *Server) handleKill(conn net.Conn) {
	log.Info("Received request: KILL")
	s.respond(conn, NewResponse(StatusOK, "Stopping server..."))
	log.Warn("Stopping server...")
	s.Shutdown()
}
