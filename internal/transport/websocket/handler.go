package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/four-in-a-row-bot/internal/service/move"
	"github.com/iamasit07/four-in-a-row-bot/internal/transport/http/middleware"
	"github.com/iamasit07/four-in-a-row-bot/pkg/uid"
)

type MoveService interface {
	DecideMove(ctx context.Context, req move.Request) (*move.Result, error)
}

// Handler manages WebSocket dependencies
type Handler struct {
	Service  MoveService
	Upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. Origins are checked by the
// CORS middleware in front of it.
func NewHandler(service MoveService) *Handler {
	return &Handler{
		Service: service,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades the connection; authentication already happened
// in the middleware.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := NewClient(uid.GenerateConnectionID(), c.GetString(middleware.ClientIDKey), conn)
	h.handleConnection(client)
}

// handleConnection answers move messages one at a time until the peer
// goes away.
func (h *Handler) handleConnection(client *Client) {
	log.Printf("[WS] Connection %s opened for client %s", client.ID, client.ClientID)

	// aborts a search still running when the connection goes away
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	defer func() {
		cancel()
		close(done)
		client.Close()
		log.Printf("[WS] Connection %s closed", client.ID)
	}()

	// Set read deadline to detect stale connections
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	go client.keepAlive(done)

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Connection %s dropped: %v", client.ID, err)
			}
			return
		}
		client.conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			if err := client.Send(ServerMessage{Type: "error", Message: "Invalid message format"}); err != nil {
				return
			}
			continue
		}

		if err := client.Send(h.processMessage(ctx, msg)); err != nil {
			log.Printf("[WS] Write error on %s: %v", client.ID, err)
			return
		}
	}
}

func (h *Handler) processMessage(ctx context.Context, msg ClientMessage) ServerMessage {
	switch msg.Type {
	case "ping":
		return ServerMessage{Type: "pong", RequestID: msg.RequestID}

	case "move":
		res, err := h.Service.DecideMove(ctx, move.Request{
			Field:      msg.Field,
			Grid:       msg.Grid,
			BotID:      msg.BotID,
			Difficulty: msg.Difficulty,
			Source:     move.SourceWebSocket,
		})
		if err != nil {
			return ServerMessage{Type: "error", RequestID: msg.RequestID, Message: err.Error()}
		}

		// pointers keep a column, score or depth of 0 in the frame
		column, score, depth := res.Column, res.Score, res.Depth
		return ServerMessage{
			Type:      "move",
			RequestID: msg.RequestID,
			Column:    &column,
			Score:     &score,
			Depth:     &depth,
			Nodes:     res.Nodes,
			Immediate: res.ImmediateWin,
			Cached:    res.Cached,
			Field:     res.Field,
			Scores:    res.Candidates,
		}

	default:
		return ServerMessage{Type: "error", RequestID: msg.RequestID, Message: "Unknown message type: " + msg.Type}
	}
}
