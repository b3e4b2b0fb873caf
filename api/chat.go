package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/chw708/teresa-api/schema"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the widget is served from the app origin; cross-origin policy is
	// enforced by the gateway in front of this service
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) chat(c *gin.Context) {
	var params struct {
		Message string `json:"message" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	requester := c.GetString("requester")

	reply, scripted := s.responder.Reply(c.Request.Context(), params.Message)

	now := time.Now().UnixMilli()
	if err := s.store.AppendChatMessage(schema.ChatMessage{
		ID:        uuid.New().String(),
		Owner:     requester,
		Role:      schema.ChatRoleUser,
		Text:      params.Message,
		Timestamp: now,
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if err := s.store.AppendChatMessage(schema.ChatMessage{
		ID:        uuid.New().String(),
		Owner:     requester,
		Role:      schema.ChatRoleAssistant,
		Text:      reply,
		Scripted:  scripted,
		Timestamp: now,
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":    reply,
		"scripted": scripted,
	})
}

func (s *Server) chatHistory(c *gin.Context) {
	var params struct {
		Limit int64 `form:"limit"`
	}

	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	messages, err := s.store.ListChatHistory(c.GetString("requester"), limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// chatStream runs a chat session over a websocket: one text frame in, one
// reply frame out, so the widget can keep a conversation without polling.
func (s *Server) chatStream(c *gin.Context) {
	requester := c.GetString("requester")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	defer conn.Close()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Debug("chat stream closed")
			}
			return
		}

		reply, scripted := s.responder.Reply(c.Request.Context(), string(message))

		now := time.Now().UnixMilli()
		if err := s.store.AppendChatMessage(schema.ChatMessage{
			ID:        uuid.New().String(),
			Owner:     requester,
			Role:      schema.ChatRoleUser,
			Text:      string(message),
			Timestamp: now,
		}); err != nil {
			log.WithError(err).Error("fail to store chat message")
		}
		if err := s.store.AppendChatMessage(schema.ChatMessage{
			ID:        uuid.New().String(),
			Owner:     requester,
			Role:      schema.ChatRoleAssistant,
			Text:      reply,
			Scripted:  scripted,
			Timestamp: now,
		}); err != nil {
			log.WithError(err).Error("fail to store chat message")
		}

		if err := conn.WriteJSON(gin.H{"reply": reply, "scripted": scripted}); err != nil {
			return
		}
	}
}
