package services

import (
    "encoding/json"
    "sync"

    "github.com/gorilla/websocket"

    "github.com/itstoasti/KetoMate-sub001/models"
)

type WSClient struct {
    UserID uint
    Conn   *websocket.Conn
}

// RealtimeHub pushes macro updates and alerts to a user's connected
// websocket clients.
type RealtimeHub struct {
    mu      sync.RWMutex
    clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
    return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
    h.mu.Lock()
    if h.clients[c.UserID] == nil {
        h.clients[c.UserID] = make(map[*WSClient]struct{})
    }
    h.clients[c.UserID][c] = struct{}{}
    h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
    h.mu.Lock()
    if set := h.clients[c.UserID]; set != nil {
        delete(set, c)
        if len(set) == 0 {
            delete(h.clients, c.UserID)
        }
    }
    h.mu.Unlock()
    _ = c.Conn.Close()
}

// DisconnectUser closes every connection the user has. Called on sign-out
// so a stale client cannot keep receiving state.
func (h *RealtimeHub) DisconnectUser(userID uint) {
    h.mu.Lock()
    set := h.clients[userID]
    delete(h.clients, userID)
    h.mu.Unlock()
    for c := range set {
        _ = c.Conn.Close()
    }
}

func (h *RealtimeHub) BroadcastMacros(userID uint, macros models.DailyMacros) {
    h.broadcast(userID, map[string]any{
        "kind":   "macros.updated",
        "macros": macros,
    })
}

func (h *RealtimeHub) BroadcastAlert(userID uint, alert *models.Alert) {
    h.broadcast(userID, map[string]any{
        "kind":  "alert.created",
        "alert": alert,
    })
}

func (h *RealtimeHub) broadcast(userID uint, payload any) {
    msg, _ := json.Marshal(payload)
    h.mu.RLock()
    defer h.mu.RUnlock()
    for c := range h.clients[userID] {
        _ = c.Conn.WriteMessage(websocket.TextMessage, msg)
    }
}
