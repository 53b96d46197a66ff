package handlers

import (
  "fmt"

  "github.com/gin-gonic/gin"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/services"
)

type AssistantHandler struct {
  assistantService services.AssistantService
}

func NewAssistantHandler(assistantService services.AssistantService) *AssistantHandler {
  return &AssistantHandler{assistantService: assistantService}
}

func (ah *AssistantHandler) Message(c *gin.Context) {
  var req services.AssistantRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid request body")))
    return
  }
  reply, err := ah.assistantService.Chat(c.Request.Context(), &req)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, reply)
}
