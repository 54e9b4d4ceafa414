package nats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// Server runs an in-process NATS server so a game client bridge and the
// libram workers can meet without external infrastructure.
type Server struct {
	ns *server.Server

	startupTimeout time.Duration
	host           string
	port           int
}

func NewServer(opts ...ServerOpt) (*Server, error) {
	s := &Server{
		startupTimeout: 10 * time.Second,
		host:           "127.0.0.1",
		port:           server.DEFAULT_PORT,
	}

	for _, opt := range opts {
		opt(s)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   s.host,
		Port:   s.port,
		NoSigs: true, // Let the application handle signals
		NoLog:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	s.ns = ns

	return s, nil
}

// Start blocks until ctx is done, then shuts the server down.
func (s *Server) Start(ctx context.Context) error {
	s.ns.Start()

	if !s.ns.ReadyForConnections(s.startupTimeout) {
		return fmt.Errorf("nats server not ready for connections")
	}

	slog.InfoContext(ctx, "nats server listening", "addr", s.ns.Addr())

	<-ctx.Done()
	s.ns.Shutdown()
	s.ns.WaitForShutdown()

	return nil
}

// WaitReady waits for the server started by Start to accept connections.
func (s *Server) WaitReady() error {
	if !s.ns.ReadyForConnections(s.startupTimeout) {
		return fmt.Errorf("nats server not ready for connections")
	}
	return nil
}

func (s *Server) ClientURL() string {
	return s.ns.ClientURL()
}

// Connect opens a client connection to this server.
func (s *Server) Connect(opts ...nats.Option) (*nats.Conn, error) {
	conn, err := nats.Connect(s.ClientURL(), opts...)
	if err != nil {
		return nil, fmt.Errorf("creating nats client connection: %w", err)
	}
	return conn, nil
}
