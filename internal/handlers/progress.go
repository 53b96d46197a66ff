package handlers

import (
  "fmt"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/services"
)

type ProgressHandler struct {
  progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
  return &ProgressHandler{progressService: progressService}
}

func (ph *ProgressHandler) Overview(c *gin.Context) {
  userID, err := currentUserID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  roadmapID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid roadmap id")))
    return
  }
  overview, err := ph.progressService.Overview(c.Request.Context(), userID, roadmapID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, overview)
}

func (ph *ProgressHandler) SetStatus(c *gin.Context) {
  userID, err := currentUserID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  stepID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid step id")))
    return
  }
  var req struct {
    Status string `json:"status"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid request body")))
    return
  }
  if err := ph.progressService.SetStatus(c.Request.Context(), userID, stepID, req.Status); err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}

func (ph *ProgressHandler) SetNotes(c *gin.Context) {
  userID, err := currentUserID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  stepID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid step id")))
    return
  }
  var req struct {
    Notes string `json:"notes"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid request body")))
    return
  }
  if err := ph.progressService.SetNotes(c.Request.Context(), userID, stepID, req.Notes); err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}
