// Package broadcast fans slide frames out to every connected page.
//
// The hub is a single-goroutine actor: all client state lives inside run()
// and is only touched via commands, so no locking is needed. New clients
// immediately receive the last published frame, so a page that connects
// mid-cycle shows the correct panel.
package broadcast

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/essenza-parfums/web/internal/domain"
	"github.com/essenza-parfums/web/internal/metrics"
)

// --- Command types ---

type hubCmd interface{ hubCmd() }

type cmdRegister struct {
	conn  *websocket.Conn
	errCh chan error
}

func (cmdRegister) hubCmd() {}

type cmdUnregister struct {
	conn *websocket.Conn
}

func (cmdUnregister) hubCmd() {}

type cmdBroadcast struct {
	data []byte
}

func (cmdBroadcast) hubCmd() {}

type cmdClientCount struct {
	replyCh chan int
}

func (cmdClientCount) hubCmd() {}

type cmdStop struct{}

func (cmdStop) hubCmd() {}

// --- Hub ---

type Hub struct {
	cmdCh      chan hubCmd
	clients    map[*websocket.Conn]*clientWriter
	lastFrame  []byte
	maxClients int
	stopped    chan struct{}
}

var _ domain.SlidePublisher = (*Hub)(nil)

// NewHub starts the hub actor. maxClients bounds concurrent connections so a
// reconnect storm cannot exhaust file descriptors.
func NewHub(maxClients int) *Hub {
	h := &Hub{
		cmdCh:      make(chan hubCmd, 256),
		clients:    make(map[*websocket.Conn]*clientWriter),
		maxClients: maxClients,
		stopped:    make(chan struct{}),
	}
	go h.run()
	return h
}

// PublishSlide implements domain.SlidePublisher. Marshalling happens on the
// caller's goroutine; the actor only fans out bytes.
func (h *Hub) PublishSlide(frame domain.SlideFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		slog.Error("Failed to marshal slide frame", "error", err)
		return
	}
	select {
	case h.cmdCh <- cmdBroadcast{data: data}:
	case <-h.stopped:
	}
}

// Register adds a page connection and replays the current frame to it.
func (h *Hub) Register(conn *websocket.Conn) error {
	errCh := make(chan error, 1)
	select {
	case h.cmdCh <- cmdRegister{conn: conn, errCh: errCh}:
	case <-h.stopped:
		return fmt.Errorf("hub is stopped")
	}
	// The send can succeed into the buffered channel even though the actor
	// already exited, so the reply wait must also watch stopped.
	select {
	case err := <-errCh:
		return err
	case <-h.stopped:
		return fmt.Errorf("hub is stopped")
	}
}

// Unregister removes a page connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	select {
	case h.cmdCh <- cmdUnregister{conn: conn}:
	case <-h.stopped:
	}
}

// ClientCount returns the number of connected pages.
func (h *Hub) ClientCount() int {
	replyCh := make(chan int, 1)
	select {
	case h.cmdCh <- cmdClientCount{replyCh: replyCh}:
	case <-h.stopped:
		return 0
	}
	select {
	case n := <-replyCh:
		return n
	case <-h.stopped:
		return 0
	}
}

// Stop closes all connections and shuts the actor down.
func (h *Hub) Stop() {
	select {
	case h.cmdCh <- cmdStop{}:
		<-h.stopped
	case <-h.stopped:
	}
}

func (h *Hub) run() {
	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case cmdRegister:
			h.handleRegister(c)
		case cmdUnregister:
			h.handleUnregister(c.conn)
		case cmdBroadcast:
			h.handleBroadcast(c.data)
		case cmdClientCount:
			c.replyCh <- len(h.clients)
		case cmdStop:
			h.handleStop()
			return
		}
	}
}

func (h *Hub) handleRegister(c cmdRegister) {
	if len(h.clients) >= h.maxClients {
		slog.Warn("Rejecting slide feed client: max clients reached", "max", h.maxClients)
		c.conn.Close()
		c.errCh <- fmt.Errorf("max slide feed clients (%d) reached", h.maxClients)
		return
	}

	cw := newClientWriter(c.conn)
	h.clients[c.conn] = cw
	metrics.SlideFeedClients.Set(float64(len(h.clients)))
	slog.Debug("Slide feed client registered", "clients", len(h.clients))

	if h.lastFrame != nil {
		cw.send(h.lastFrame)
	}
	c.errCh <- nil
}

func (h *Hub) handleUnregister(conn *websocket.Conn) {
	cw, ok := h.clients[conn]
	if !ok {
		return
	}
	cw.stop()
	delete(h.clients, conn)
	metrics.SlideFeedClients.Set(float64(len(h.clients)))
	slog.Debug("Slide feed client unregistered", "clients", len(h.clients))
}

func (h *Hub) handleBroadcast(data []byte) {
	h.lastFrame = data

	var slow []*websocket.Conn
	for conn, cw := range h.clients {
		if !cw.send(data) {
			slow = append(slow, conn)
		}
	}
	metrics.SlideFramesSent.Add(float64(len(h.clients) - len(slow)))

	// A full send buffer means the client stopped reading. Drop it rather
	// than let it hold the whole fanout back.
	for _, conn := range slow {
		slog.Warn("Dropping slow slide feed client")
		h.handleUnregister(conn)
	}
}

func (h *Hub) handleStop() {
	for conn, cw := range h.clients {
		cw.stop()
		delete(h.clients, conn)
	}
	metrics.SlideFeedClients.Set(0)
	close(h.stopped)
}
