// Package websocket pushes live render updates to connected preview pages.
package websocket

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/conneroisu/prettytext/internal/logging"
)

const (
	pingInterval    = 30 * time.Second
	writeTimeout    = 10 * time.Second
	sendBuffer      = 16
	defaultMaxPerIP = 8
)

// WebSocketManager handles connection management and broadcasting.
//
// A single hub goroutine owns client registration and fan-out. The clients
// map is read under clientsMutex by observers only.
type WebSocketManager struct {
	clients      map[*websocket.Conn]*Client
	perIP        map[string]int
	clientsMutex sync.RWMutex

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	originValidator OriginValidator
	maxPerIP        int
	logger          logging.Logger

	ctx          context.Context
	cancel       context.CancelFunc
	shutdownOnce sync.Once
}

// Option configures a WebSocketManager.
type Option func(*WebSocketManager)

// WithMaxConnectionsPerIP caps concurrent connections from one address.
// Zero or less removes the cap.
func WithMaxConnectionsPerIP(n int) Option {
	return func(wm *WebSocketManager) { wm.maxPerIP = n }
}

// NewWebSocketManager starts a manager. Same-origin connections are always
// accepted; cross-origin ones must pass originValidator.
func NewWebSocketManager(originValidator OriginValidator, logger logging.Logger, opts ...Option) *WebSocketManager {
	if originValidator == nil {
		originValidator = AllowedOrigins(nil)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	wm := &WebSocketManager{
		clients:         make(map[*websocket.Conn]*Client),
		perIP:           make(map[string]int),
		broadcast:       make(chan []byte, 64),
		register:        make(chan *Client, 32),
		unregister:      make(chan *Client, 32),
		originValidator: originValidator,
		maxPerIP:        defaultMaxPerIP,
		logger:          logger.WithComponent("websocket"),
		ctx:             ctx,
		cancel:          cancel,
	}
	for _, opt := range opts {
		opt(wm)
	}

	go wm.runHub()
	return wm
}

// HandleWebSocket upgrades r and registers the connection.
func (wm *WebSocketManager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if wm.ctx.Err() != nil {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	origin := r.Header.Get("Origin")
	if !wm.allowedOrigin(origin, r.Host) {
		wm.logger.Warn(r.Context(), nil, "Rejected websocket origin", "origin", origin, "remote", r.RemoteAddr)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	ip := clientIP(r)
	if !wm.reserve(ip) {
		http.Error(w, "Too Many Connections", http.StatusTooManyRequests)
		return
	}

	// Origins were checked above.
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		wm.release(ip)
		wm.logger.Warn(r.Context(), err, "Websocket upgrade failed", "remote", r.RemoteAddr)
		return
	}

	client := &Client{conn: conn, send: make(chan []byte, sendBuffer), ip: ip}
	select {
	case wm.register <- client:
	case <-wm.ctx.Done():
		wm.release(ip)
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	go wm.writePump(client)
	wm.readPump(client)
}

func (wm *WebSocketManager) allowedOrigin(origin, host string) bool {
	if origin == "" {
		return true
	}
	if u, err := url.Parse(origin); err == nil && u.Host == host {
		return true
	}
	return wm.originValidator.IsAllowedOrigin(origin)
}

func (wm *WebSocketManager) reserve(ip string) bool {
	wm.clientsMutex.Lock()
	defer wm.clientsMutex.Unlock()
	if wm.maxPerIP > 0 && wm.perIP[ip] >= wm.maxPerIP {
		return false
	}
	wm.perIP[ip]++
	return true
}

func (wm *WebSocketManager) release(ip string) {
	wm.clientsMutex.Lock()
	defer wm.clientsMutex.Unlock()
	if wm.perIP[ip] <= 1 {
		delete(wm.perIP, ip)
		return
	}
	wm.perIP[ip]--
}

// clientIP is the remote host without its port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (wm *WebSocketManager) runHub() {
	for {
		select {
		case client := <-wm.register:
			wm.clientsMutex.Lock()
			wm.clients[client.conn] = client
			n := len(wm.clients)
			wm.clientsMutex.Unlock()
			wm.logger.Debug(wm.ctx, "Websocket client connected", "clients", n)

		case client := <-wm.unregister:
			wm.drop(client)

		case message := <-wm.broadcast:
			wm.clientsMutex.RLock()
			for _, client := range wm.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumers are disconnected rather than blocking the hub.
					go func(c *Client) {
						_ = c.conn.Close(websocket.StatusPolicyViolation, "too slow")
					}(client)
				}
			}
			wm.clientsMutex.RUnlock()

		case <-wm.ctx.Done():
			wm.clientsMutex.Lock()
			for conn, client := range wm.clients {
				close(client.send)
				delete(wm.clients, conn)
			}
			wm.perIP = make(map[string]int)
			wm.clientsMutex.Unlock()
			return
		}
	}
}

func (wm *WebSocketManager) drop(client *Client) {
	wm.clientsMutex.Lock()
	_, ok := wm.clients[client.conn]
	if ok {
		delete(wm.clients, client.conn)
		close(client.send)
	}
	n := len(wm.clients)
	wm.clientsMutex.Unlock()

	if ok {
		wm.release(client.ip)
		wm.logger.Debug(wm.ctx, "Websocket client disconnected", "clients", n)
	}
}

// readPump discards client frames and unregisters on close. Reading is
// required for the library to process control frames.
func (wm *WebSocketManager) readPump(client *Client) {
	defer func() {
		select {
		case wm.unregister <- client:
		case <-wm.ctx.Done():
		}
		_ = client.conn.CloseNow()
	}()

	for {
		if _, _, err := client.conn.Read(wm.ctx); err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && wm.ctx.Err() == nil {
				wm.logger.Debug(wm.ctx, "Websocket read ended", "error", err.Error())
			}
			return
		}
	}
}

func (wm *WebSocketManager) writePump(client *Client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				_ = client.conn.Close(websocket.StatusGoingAway, "server shutdown")
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := client.conn.Write(ctx, websocket.MessageText, message)
			cancel()
			if err != nil {
				_ = client.conn.CloseNow()
				return
			}

		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := client.conn.Ping(ctx)
			cancel()
			if err != nil {
				_ = client.conn.CloseNow()
				return
			}
		}
	}
}

// BroadcastMessage queues message for every connected client. The message
// is dropped when the manager is shut down or the queue is full.
func (wm *WebSocketManager) BroadcastMessage(message UpdateMessage) {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	data, err := json.Marshal(message)
	if err != nil {
		wm.logger.Error(wm.ctx, err, "Failed to marshal broadcast message")
		return
	}

	select {
	case wm.broadcast <- data:
	case <-wm.ctx.Done():
	default:
		wm.logger.Warn(wm.ctx, nil, "Broadcast queue full, dropping message", "type", message.Type)
	}
}

// GetConnectedClients returns the number of connected clients
func (wm *WebSocketManager) GetConnectedClients() int {
	wm.clientsMutex.RLock()
	defer wm.clientsMutex.RUnlock()
	return len(wm.clients)
}

// Shutdown disconnects every client. It is safe to call more than once.
func (wm *WebSocketManager) Shutdown(context.Context) error {
	wm.shutdownOnce.Do(func() {
		wm.cancel()
		wm.logger.Info(context.Background(), "Websocket manager shut down")
	})
	return nil
}

// IsShutdown returns whether the WebSocket manager has been shut down
func (wm *WebSocketManager) IsShutdown() bool {
	return wm.ctx.Err() != nil
}
