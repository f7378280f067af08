package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"tw/deque"
	"tw/engine"
	"tw/material"
	"tw/model"
)

// Hub serves one GUI session: it routes request messages to the engine and
// writes the replies back over the connection. Engine calls are synchronous
// and stateless; the only session state is the bounded history of finished
// computations.
type Hub struct {
	eng     *engine.Engine
	conn    *websocket.Conn
	clock   clockwork.Clock
	history deque.Deque
	metrics *Metrics

	// request
	msg chan model.Msg
	// response
	computed chan model.Msg
	presets  chan model.Msg
	records  chan model.Msg
	// closed when the session ends, stopping both handler goroutines
	done chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		eng:     engine.NewEngine(),
		clock:   clockwork.NewRealClock(),
		history: deque.NewArrDeque(engine.Cfg().HistoryDepth),

		msg:      make(chan model.Msg, 10),
		computed: make(chan model.Msg, 10),
		presets:  make(chan model.Msg, 10),
		records:  make(chan model.Msg, 10),
		done:     make(chan struct{}),
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case "compute":
				h.computed <- msg
			case "presets":
				h.presets <- msg
			case "history":
				h.records <- msg
			default:
				log.Warn("no such type: ", msg.Type)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case msg := <-h.computed:
			h.write(h.computeReply(msg.Content))
		case <-h.presets:
			h.write(h.presetsReply())
		case <-h.records:
			h.write(h.historyReply())
		case <-h.done:
			return
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	if err := h.conn.WriteJSON(&reply); err != nil {
		log.Warn("write: ", err)
	}
}

// computeReply runs one engine computation on the widget values. A request
// without a sweep gets the GUI's default plot range.
func (h *Hub) computeReply(content string) model.Msg {
	var params model.Parameters
	if err := json.Unmarshal([]byte(content), &params); err != nil {
		h.metrics.Computations.WithLabelValues("malformed").Inc()
		return model.Msg{Type: "failed", Content: err.Error()}
	}
	if params.Sweep == nil {
		sw := h.eng.DefaultSweep(params.Velocity)
		params.Sweep = &sw
	}

	timer := prometheus.NewTimer(h.metrics.ComputeDuration)
	results, err := h.eng.Compute(params)
	timer.ObserveDuration()
	if err != nil {
		h.metrics.Computations.WithLabelValues("invalid").Inc()
		return model.Msg{Type: "failed", Content: err.Error()}
	}
	h.metrics.Computations.WithLabelValues("ok").Inc()

	if h.history.IsFull() {
		h.history.RemoveFirst()
	}
	h.history.AddLast(&model.Record{At: h.clock.Now(), Params: params, Results: *results})

	data, err := json.Marshal(results)
	if err != nil {
		return model.Msg{Type: "failed", Content: err.Error()}
	}
	return model.Msg{Type: "computed", Content: string(data)}
}

func (h *Hub) presetsReply() model.Msg {
	data, err := json.Marshal(material.List())
	if err != nil {
		return model.Msg{Type: "failed", Content: err.Error()}
	}
	return model.Msg{Type: "presets", Content: string(data)}
}

func (h *Hub) historyReply() model.Msg {
	records := make([]model.Record, 0, h.history.Size())
	h.history.Traverse(func(i int, r *model.Record) {
		records = append(records, *r)
	})
	data, err := json.Marshal(records)
	if err != nil {
		return model.Msg{Type: "failed", Content: err.Error()}
	}
	return model.Msg{Type: "history", Content: string(data)}
}
