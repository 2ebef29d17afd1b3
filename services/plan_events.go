package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"

	"github.com/gorilla/websocket"
)

// PlanEvent is pushed to every connected dietitian dashboard when a plan
// changes lifecycle state.
type PlanEvent struct {
	Kind   string            `json:"kind"` // plan.submitted | plan.approved
	PlanID uint              `json:"plan_id"`
	UserID uint              `json:"user_id"`
	Status models.PlanStatus `json:"status"`
	At     time.Time         `json:"at"`
}

type EventClient struct {
	Conn *websocket.Conn

	mu sync.Mutex // gorilla allows at most one writer per conn
}

// WriteMessage is the single write path for a client; broadcasts and
// keep-alive pings from other goroutines must all go through it.
func (c *EventClient) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// PlanEventHub fans plan lifecycle events out to dietitian dashboards.
// Unlike a per-user alert hub, every reviewer sees every transition.
type PlanEventHub struct {
	mu      sync.RWMutex
	clients map[*EventClient]struct{}
}

func NewPlanEventHub() *PlanEventHub {
	return &PlanEventHub{clients: make(map[*EventClient]struct{})}
}

func (h *PlanEventHub) Register(c *EventClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *PlanEventHub) Unregister(c *EventClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *PlanEventHub) Broadcast(ev PlanEvent) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.WriteMessage(websocket.TextMessage, msg)
	}
}
