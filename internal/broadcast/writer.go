package broadcast

import (
	"time"

	"github.com/gorilla/websocket"
)

const writeDeadline = 5 * time.Second

// clientWriter serializes writes to one connection on its own goroutine, so
// a stalled client never blocks the hub actor.
type clientWriter struct {
	conn   *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
}

func newClientWriter(conn *websocket.Conn) *clientWriter {
	cw := &clientWriter{
		conn:   conn,
		sendCh: make(chan []byte, 16),
		done:   make(chan struct{}),
	}
	go cw.run()
	return cw
}

func (cw *clientWriter) run() {
	for {
		select {
		case msg, ok := <-cw.sendCh:
			if !ok {
				return
			}
			_ = cw.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := cw.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-cw.done:
			return
		}
	}
}

// send queues a message without blocking. Returns false when the buffer is
// full, which marks the client as slow.
func (cw *clientWriter) send(msg []byte) bool {
	select {
	case cw.sendCh <- msg:
		return true
	default:
		return false
	}
}

func (cw *clientWriter) stop() {
	close(cw.done)
	cw.conn.Close()
}
