// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package live

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The dashboard may be served from another origin, same as CORS
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve upgrades the request to a websocket, sends the value returned by
// initial, then every value published on topic until the client leaves.
// Values are sent as JSON text frames. If initial fails the client gets a
// 500 and no upgrade.
func Serve[T any](w http.ResponseWriter, r *http.Request, hub *Hub[T], topic string, initial func(context.Context) (T, error)) error {
	// Subscribe first so nothing published during the initial load is lost
	updates, unsubscribe := hub.Subscribe(topic)
	defer unsubscribe()

	first, err := initial(r.Context())
	if err != nil {
		http.Error(w, "snapshot unavailable", http.StatusInternalServerError)
		return fmt.Errorf("failed to load initial snapshot: %w", err)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		return fmt.Errorf("websocket upgrade failed: %w", err)
	}
	defer conn.Close()

	gone := make(chan struct{})
	go readPump(conn, gone)

	if err := send(conn, first); err != nil {
		return err
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case v, ok := <-updates:
			if !ok {
				return nil
			}
			if err := send(conn, v); err != nil {
				return err
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-gone:
			return nil
		}
	}
}

func send(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(v); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// readPump discards client messages and closes gone when the peer leaves
func readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("live client read failed", "error", err)
			}
			return
		}
	}
}
