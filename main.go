package main

import (
	"net/http"

	"github.com/gorilla/websocket"

	"tw/engine"
	"tw/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(engine.Cfg().Addr, upgrader)
	s.Serve()
}
