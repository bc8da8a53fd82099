package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Client wraps one connection. gorilla connections allow a single writer at
// a time, and both the reply loop and the pinger write.
type Client struct {
	ID       string
	ClientID string
	conn     *websocket.Conn
	writeMu  sync.Mutex
}

func NewClient(id, clientID string, conn *websocket.Conn) *Client {
	return &Client{ID: id, ClientID: clientID, conn: conn}
}

func (c *Client) Send(message ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(message)
}

func (c *Client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// keepAlive pings until done is closed or a ping fails
func (c *Client) keepAlive(done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}
