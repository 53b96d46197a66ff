package handlers

import (
  "github.com/gin-gonic/gin"

  "github.com/darijacode/hub-backend/internal/services"
)

type LearningPathHandler struct {
  pathService services.LearningPathService
}

func NewLearningPathHandler(pathService services.LearningPathService) *LearningPathHandler {
  return &LearningPathHandler{pathService: pathService}
}

func (lh *LearningPathHandler) List(c *gin.Context) {
  paths, err := lh.pathService.List(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"learning_paths": paths})
}
