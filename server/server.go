package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"tw/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	metrics  *Metrics
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		metrics:  NewMetrics(),
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrade: ", err)
		return
	}
	defer conn.Close()
	s.metrics.SessionsOpened.Inc()

	hub := NewHub()
	hub.conn = conn
	hub.metrics = s.metrics
	defer close(hub.done)
	go hub.handleRequest()
	go hub.handleResponse()

	var msg model.Msg
	for {
		if err = conn.ReadJSON(&msg); err != nil {
			log.Warn("read: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	http.Handle("/metrics", promhttp.Handler())
	log.Info("listening on ", s.addr)
	if err := http.ListenAndServe(s.addr, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
