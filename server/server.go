package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/oceanum/seawater/gsw"
)

// Server answers property and salinity-conversion requests over a
// websocket at /ws. Each connection gets its own Hub.
type Server struct {
	cfg      Config
	sal      *gsw.Salinity
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

// New builds a server. sal may be nil when no anomaly atlas is
// configured; salinity-scale operations then report an error.
func New(cfg Config, sal *gsw.Salinity, log *logrus.Logger) *Server {
	return &Server{
		cfg: cfg,
		sal: sal,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// serveWs upgrades the connection and runs the read/eval/write loops
// until the peer goes away.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.ReadLimit)

	hub := NewHub(s.sal, s.log, s.cfg.SendBacklog)
	go hub.run()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.writeResponses(conn, hub.responses)
	}()

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.WithError(err).Warn("read failed")
			}
			break
		}
		hub.requests <- req
	}
	close(hub.requests)
	<-done
}

type responseWriter interface {
	WriteJSON(v interface{}) error
}

// writeResponses forwards responses until the channel closes. A failed
// write marks the peer gone; later responses are still received and
// discarded so the eval and read loops never block on a full queue.
func (s *Server) writeResponses(w responseWriter, responses <-chan Response) {
	var gone bool
	for resp := range responses {
		if gone {
			continue
		}
		if err := w.WriteJSON(&resp); err != nil {
			s.log.WithError(err).Warn("write failed")
			gone = true
		}
	}
}

// Serve listens on the configured address until the listener fails.
func (s *Server) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	s.log.WithField("addr", s.cfg.Addr).Info("listening")
	return http.ListenAndServe(s.cfg.Addr, mux)
}
