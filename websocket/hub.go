package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// TokenResolver validates a session token and returns the username it
// belongs to.
type TokenResolver func(token string) (string, error)

// Hub tracks connected clients by username and pushes notification
// payloads to whichever sockets the recipient has open.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	deliver    chan targeted
	mu         sync.RWMutex
}

type targeted struct {
	username string
	payload  []byte
}

type Client struct {
	conn     *websocket.Conn
	username string
	send     chan []byte
	hub      *Hub
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan targeted, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.username] == nil {
				h.clients[client.username] = make(map[*Client]bool)
			}
			h.clients[client.username][client] = true
			h.mu.Unlock()
			log.Printf("WebSocket client registered for %s", client.username)

		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.username]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.username)
					}
				}
			}
			h.mu.Unlock()
			log.Printf("WebSocket client unregistered for %s", client.username)

		case msg := <-h.deliver:
			h.mu.Lock()
			for client := range h.clients[msg.username] {
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer; drop the socket, not the hub.
					close(client.send)
					delete(h.clients[msg.username], client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyUser queues payload for every open socket of username. No-op
// when the user is offline.
func (h *Hub) NotifyUser(username string, payload []byte) {
	data, err := json.Marshal(map[string]interface{}{
		"type":    "post_notification",
		"payload": json.RawMessage(payload),
	})
	if err != nil {
		log.Printf("Error marshaling WebSocket notification: %v", err)
		return
	}

	select {
	case h.deliver <- targeted{username: username, payload: data}:
	default:
		log.Printf("WebSocket delivery queue full, dropping notification for %s", username)
	}
}

// ConnectedUsers reports how many distinct users have open sockets.
func (h *Hub) ConnectedUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handler upgrades an authenticated connection. The session token
// rides in the query string because browsers cannot set headers on
// WebSocket upgrades.
func Handler(hub *Hub, resolve TokenResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "Token required", http.StatusUnauthorized)
			return
		}

		username, err := resolve(token)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed: %v", err)
			return
		}

		client := &Client{
			conn:     conn,
			username: username,
			send:     make(chan []byte, 256),
			hub:      hub,
		}

		hub.register <- client

		welcome, _ := json.Marshal(map[string]interface{}{
			"type": "connected",
			"payload": map[string]interface{}{
				"username": username,
				"time":     time.Now().Unix(),
			},
		})
		client.send <- welcome

		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		var data map[string]interface{}
		if err := json.Unmarshal(message, &data); err != nil {
			continue
		}

		// The notification stream is one-way; clients only ping.
		if data["type"] == "ping" {
			pong, _ := json.Marshal(map[string]interface{}{
				"type": "pong",
				"payload": map[string]interface{}{
					"time": time.Now().Unix(),
				},
			})
			c.send <- pong
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
