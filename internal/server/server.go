// Package server exposes the market dashboard over HTTP and WebSocket:
// technical indicator snapshots, live chart data with a deterministic
// synthetic fallback, option chains, FII/DII flows and strategy payoffs.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/marketpulse-io/marketpulse/internal/config"
	"github.com/marketpulse-io/marketpulse/internal/indicator"
	"github.com/marketpulse-io/marketpulse/internal/logger"
	"github.com/marketpulse-io/marketpulse/internal/payoff"
	"github.com/marketpulse-io/marketpulse/internal/synth"
	"github.com/marketpulse-io/marketpulse/pkg/marketdata"
)

// Server serves the dashboard API. It owns the HTTP server, the WebSocket
// connection set and the domain services the handlers dispatch to.
type Server struct {
	logger      *logger.Logger
	cfg         *config.Config
	provider    marketdata.Provider
	synthesizer *synth.Synthesizer
	engine      *indicator.Engine
	calculator  *payoff.Calculator

	// now is the clock the handlers consult. Overridable so tests can pin
	// the seed bucket.
	now func() time.Time

	router     *mux.Router
	httpServer *http.Server
	listener   net.Listener

	upgrader      websocket.Upgrader
	wsConnections map[*websocket.Conn]bool
	wsMu          sync.RWMutex
	stopStreaming chan struct{}
}

// NewServer creates a server wired to the given config and provider.
func NewServer(cfg *config.Config, provider marketdata.Provider, log *logger.Logger) (*Server, error) {
	engine, err := indicator.NewEngine()
	if err != nil {
		return nil, err
	}

	s := &Server{
		logger:      log,
		cfg:         cfg,
		provider:    provider,
		synthesizer: synth.NewSynthesizer(),
		engine:      engine,
		calculator:  payoff.NewCalculator(),
		now:         time.Now,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		wsConnections: make(map[*websocket.Conn]bool),
		stopStreaming: make(chan struct{}),
	}

	router := mux.NewRouter()
	router.Use(s.requestLogging)

	router.HandleFunc("/api/technical-data", s.handleTechnicalData).Methods("POST")
	router.HandleFunc("/api/live-chart", s.handleLiveChart).Methods("POST")
	router.HandleFunc("/api/option-chain", s.handleOptionChain).Methods("POST")
	router.HandleFunc("/api/fii-dii", s.handleFlows).Methods("GET")
	router.HandleFunc("/api/payoff", s.handlePayoff).Methods("POST")
	router.HandleFunc("/api/version", s.handleVersion).Methods("GET")

	router.HandleFunc("/ws/live", s.handleLiveStream)

	s.router = router

	return s, nil
}

// Handler returns the root HTTP handler. Exposed for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server on the given address. If address is empty, the
// configured listen address is used; ":0" picks a random port.
func (s *Server) Start(address string) error {
	if address == "" {
		address = s.cfg.Server.ListenAddr
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	s.listener = listener

	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("server listening", zap.String("address", s.Address()))

	go func() {
		if err := s.httpServer.Serve(listener); err != http.ErrServerClosed {
			s.logger.Error("http server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop stops the server, closing every live WebSocket stream first.
func (s *Server) Stop() error {
	close(s.stopStreaming)

	s.wsMu.Lock()
	for conn := range s.wsConnections {
		conn.Close()
	}
	s.wsConnections = make(map[*websocket.Conn]bool)
	s.wsMu.Unlock()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// Address returns the address the server is listening on.
func (s *Server) Address() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// BaseURL returns the base URL for the server.
func (s *Server) BaseURL() string {
	return "http://" + s.Address()
}

// WebSocketURL returns the WebSocket URL for the server.
func (s *Server) WebSocketURL() string {
	return "ws://" + s.Address()
}
