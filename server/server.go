package server

import (
	"errors"
	"fmt"
	"log"
	"net"
)

// ConnHandler serves one accepted connection and is responsible for
// closing it.
type ConnHandler interface {
	HandleConn(conn net.Conn)
}

// Server accepts TCP connections and hands each one to the handler on its
// own goroutine, so a slow client never blocks the accept loop.
type Server struct {
	addr    string
	handler ConnHandler
}

// New is a constructor for the Server struct.
func New(addr string, handler ConnHandler) *Server {
	return &Server{addr: addr, handler: handler}
}

// ListenAndServe binds the configured address and serves until the
// listener fails.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	log.Printf("listening on %s", ln.Addr())
	return s.Serve(ln)
}

// Serve runs the accept loop on an existing listener. Accept errors are
// logged and the loop continues; a closed listener ends it.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Printf("accept error: %v", err)
			continue
		}
		go s.handler.HandleConn(conn)
	}
}
