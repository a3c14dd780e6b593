package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/farooque06/portfolio/internal/typing"
)

const streamWriteWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// typingFrame is the outgoing WebSocket message format.
type typingFrame struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// handleTypingStream runs one animator per connection: it starts when the
// hero view connects and stops when the connection goes away.
func (s *Server) handleTypingStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	session := uuid.New().String()
	animator := typing.New(s.scheduler)
	updates := animator.Subscribe(16)
	defer animator.Close()

	if err := animator.Start(s.content.Profile.Roles, s.cfg.TypingAnimator()); err != nil {
		log.Printf("server: typing stream %s: %v", session, err)
		if err := conn.WriteJSON(typingFrame{Error: "typing animation unavailable"}); err != nil {
			log.Printf("server: typing stream %s write: %v", session, err)
		}
		return
	}

	// The client never sends anything meaningful; reading only detects
	// the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("server: typing stream %s read: %v", session, err)
				}
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case text, ok := <-updates:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(typingFrame{Text: text}); err != nil {
				log.Printf("server: typing stream %s write: %v", session, err)
				return
			}
		}
	}
}
