package controllers

import (
	"net/http"
	"time"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type PlanEventsController struct {
	Hub *services.PlanEventHub
}

func NewPlanEventsController(hub *services.PlanEventHub) *PlanEventsController {
	return &PlanEventsController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// GET /diet-plans/events — dietitian dashboards subscribe here and receive
// plan.submitted / plan.approved events as they happen.
func (rc *PlanEventsController) EventsWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.EventClient{Conn: conn}
	rc.Hub.Register(cl)

	// ping keeps connections alive through some proxies; the client's write
	// path serializes this against hub broadcasts
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.Hub.Unregister(cl)
			return
		}
	}
}
