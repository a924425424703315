package endpoints

import (
	"genperm"
	"genperm/internal/api/handler/request"
	"genperm/internal/api/handler/response"
	"genperm/internal/api/service"
	"genperm/pkg"
	"net/http"
	"strings"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const voiceServerErrorReply = "Server error while processing voice request."

type chatHandler struct {
	logger       zerolog.Logger
	chatService  *service.ChatService
	voiceService *service.VoiceService
}

func newChatHandler() *chatHandler {
	chatService := service.NewChatService()
	return &chatHandler{
		logger:       genperm.Logger,
		chatService:  chatService,
		voiceService: service.NewVoiceServiceWith(pkg.NewGeminiClient(), chatService),
	}
}

func ChatHandler(router *graceful.Graceful) {
	h := newChatHandler()

	router.POST("/chat", h.chat)
	router.POST("/voice-chat", h.voiceChat)
}

func (slf *chatHandler) chat(c *gin.Context) {
	var req request.ChatRequest
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse chat request")
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "No message provided"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "No message provided"})
		return
	}

	query, reply, err := slf.chatService.AnswerQuestion(message)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to answer question")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.ChatResponse{
		Reply:        reply,
		GeneratedSQL: query,
	})
}

func (slf *chatHandler) voiceChat(c *gin.Context) {
	var req request.ChatRequest
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse voice request")
		c.JSON(http.StatusInternalServerError, response.VoiceResponse{
			Response: voiceServerErrorReply,
			Status:   response.VoiceStatusError,
		})
		return
	}

	reply, err := slf.voiceService.ProcessVoiceCommand(req.Message)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to process voice command")
		c.JSON(http.StatusInternalServerError, response.VoiceResponse{
			Response: voiceServerErrorReply,
			Status:   response.VoiceStatusError,
		})
		return
	}

	c.JSON(http.StatusOK, response.VoiceResponse{
		Response: reply,
		Status:   response.VoiceStatusSuccess,
	})
}
