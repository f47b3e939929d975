package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/fintrack/fintrack-api/middleware"
)

// WSHandler pushes budget-cache refresh signals to an owner's connected
// clients so dashboards can refetch without polling.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		ownerID, _ := s.Get("owner_id")
		log.Printf("ws: client disconnected (owner %v)", ownerID)
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("ws: error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades an authenticated request; sessions are keyed by the
// owner so broadcasts stay within one user's connections.
func (h *WSHandler) HandleWS(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		"owner_id": ownerID,
	}); err != nil {
		log.Printf("ws: upgrade failed: %v", err)
	}
}

// BroadcastBudgetUpdate signals all of the owner's sockets that budgets
// changed (transaction written, cache recomputed).
func (h *WSHandler) BroadcastBudgetUpdate(ownerID string) {
	msg := []byte(`{"type": "budget:updated"}`)

	err := h.M.BroadcastFilter(msg, func(s *melody.Session) bool {
		id, exists := s.Get("owner_id")
		return exists && id == ownerID
	})
	if err != nil {
		log.Printf("ws: broadcast to owner %s failed: %v", ownerID, err)
	}
}
