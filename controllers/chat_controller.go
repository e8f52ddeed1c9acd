package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/response"
	"stayhub/services"
)

// SetupChatHandlers wires the support chat onto the websocket hub. A signed
// guest comes in with a token query param on the upgrade request; anyone else
// chats anonymously under their session id.
func SetupChatHandlers(m *melody.Melody) {
	m.HandleConnect(func(s *melody.Session) {
		guestID := 0
		if token := s.Request.URL.Query().Get("token"); token != "" {
			if id, err := services.GetIDFromToken(token); err == nil {
				guestID = int(id)
			}
		}
		sessionID := s.Request.URL.Query().Get("sessionId")

		s.Set("guestID", guestID)
		s.Set("sessionID", sessionID)
	})

	m.HandleMessage(func(s *melody.Session, msg []byte) {
		guestID := 0
		if v, ok := s.Get("guestID"); ok {
			guestID, _ = v.(int)
		}
		sessionID := ""
		if v, ok := s.Get("sessionID"); ok {
			sessionID, _ = v.(string)
		}

		input := string(msg)
		redisKey := services.GetCacheKey(guestID, sessionID)

		// history is best effort, the chat keeps going on failure
		_ = services.SaveChatHistoryToDB(guestID, sessionID, "guest", "text", input)

		replies := services.HandleGuestMessageWS(
			config.Ctx, config.RedisClient, redisKey, guestID, input)

		for _, reply := range replies {
			_ = s.Write(reply)
			_ = services.SaveChatHistoryToDB(guestID, sessionID, "bot", "text", string(reply))
		}
	})
}

// ChatMessage runs one chat turn over plain HTTP for clients without a
// websocket
func ChatMessage(c *gin.Context) {
	var req dto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "message is required")
		return
	}

	guestID := int(c.GetUint("guestID"))
	sessionID := c.GetString("sessionId")
	redisKey := services.GetCacheKey(guestID, sessionID)

	_ = services.SaveChatHistoryToDB(guestID, sessionID, "guest", "text", req.Message)

	reply := services.RunChatTurn(c.Request.Context(), config.RedisClient, redisKey, req.Message)
	if reply.Answer != "" {
		_ = services.SaveChatHistoryToDB(guestID, sessionID, "bot", "text", reply.Answer)
	}

	response.Success(c, reply)
}

// GetChatHistory returns the caller's chat transcript
func GetChatHistory(c *gin.Context) {
	guestID := int(c.GetUint("guestID"))
	sessionID := c.GetString("sessionId")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	history, err := services.GetChatHistory(guestID, sessionID, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, history)
}
