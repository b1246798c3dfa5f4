package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/marketpulse-io/marketpulse/pkg/errors"
)

// handleLiveStream streams the live chart payload over a WebSocket at the
// configured interval. Query parameters: symbol (required), strikeInterval
// (optional, falls back to the symbol's configured interval).
func (s *Server) handleLiveStream(w http.ResponseWriter, r *http.Request) {
	req := symbolRequest{Symbol: r.URL.Query().Get("symbol")}
	if req.Symbol == "" {
		s.writeError(w, errors.New(errors.ErrCodeMissingParameter, "symbol is required"))
		return
	}

	if symbol, err := s.cfg.Symbol(req.Symbol); err == nil {
		req.StrikeInterval = symbol.StrikeInterval
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.wsMu.Lock()
	s.wsConnections[conn] = true
	s.wsMu.Unlock()

	defer func() {
		s.wsMu.Lock()
		delete(s.wsConnections, conn)
		s.wsMu.Unlock()
		conn.Close()
	}()

	s.streamLiveChart(conn, r, req)
}

// streamLiveChart pushes one payload immediately, then one per tick until
// the client disconnects or the server stops.
func (s *Server) streamLiveChart(conn *websocket.Conn, r *http.Request, req symbolRequest) {
	interval := time.Duration(s.cfg.Server.StreamIntervalSeconds) * time.Second

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	send := func() bool {
		resp, err := s.liveChart(r, req)
		if err != nil {
			s.logger.Warn("live stream payload failed",
				zap.String("symbol", req.Symbol),
				zap.Error(err),
			)

			return true
		}

		return conn.WriteJSON(resp) == nil
	}

	if !send() {
		return
	}

	for {
		select {
		case <-s.stopStreaming:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if !send() {
				return
			}
		}
	}
}
