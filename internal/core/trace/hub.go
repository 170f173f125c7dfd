package trace

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	json "github.com/json-iterator/go"

	"github.com/zeusync/centurion/internal/core/observability/log"
)

const (
	clientBuffer = 256
	writeWait    = 10 * time.Second
)

// Hub streams a run to websocket viewers. A viewer that joins late first
// receives the header. Frames for a viewer whose buffer is full are dropped.
type Hub struct {
	log      log.Log
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	header  []byte
	closed  bool

	wg      sync.WaitGroup
	dropped atomic.Uint64
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(logger log.Log) *Hub {
	return &Hub{
		log: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 8192,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", log.Error(err))
		return
	}
	c := &client{conn: conn, send: make(chan []byte, clientBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	if h.header != nil {
		c.send <- h.header
	}
	h.wg.Add(2)
	h.mu.Unlock()

	h.log.Debug("viewer connected", log.String("remote", conn.RemoteAddr().String()))
	go h.writePump(c)
	go h.readPump(c)
}

// Clients is the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped counts frames not delivered to slow viewers.
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) writePump(c *client) {
	defer h.wg.Done()
	defer c.conn.Close()

	for frame := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "run finished"), time.Now().Add(writeWait))
}

// readPump only watches for the viewer going away.
func (h *Hub) readPump(c *client) {
	defer h.wg.Done()
	defer h.remove(c)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("viewer read failed", log.Error(err))
			}
			return
		}
	}
}

func (h *Hub) broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcastLocked(frame)
}

func (h *Hub) broadcastLocked(frame []byte) {
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			h.dropped.Add(1)
		}
	}
}

func (h *Hub) publish(rec Record) error {
	frame, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	h.broadcast(frame)
	return nil
}

// Header is cached and broadcast under one lock, so a viewer connecting
// meanwhile gets it exactly once.
func (h *Hub) Header(hd Header) error {
	frame, err := json.Marshal(Record{Kind: KindHeader, Header: &hd})
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.header = frame
	h.broadcastLocked(frame)
	return nil
}

func (h *Hub) Tick(t Tick) error {
	return h.publish(Record{Kind: KindTick, Tick: &t})
}

func (h *Hub) Footer(f Footer) error {
	return h.publish(Record{Kind: KindFooter, Footer: &f})
}

// Close disconnects every viewer after its queued frames are written.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	h.wg.Wait()
	if n := h.dropped.Load(); n > 0 {
		h.log.Info("viewer frames dropped", log.Uint64("frames", n))
	}
	return nil
}
