package handlers

import (
  "fmt"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/services"
)

type RoadmapHandler struct {
  generationService services.RoadmapGenerationService
  roadmapService    services.RoadmapService
}

func NewRoadmapHandler(
  generationService services.RoadmapGenerationService,
  roadmapService services.RoadmapService,
) *RoadmapHandler {
  return &RoadmapHandler{
    generationService: generationService,
    roadmapService:    roadmapService,
  }
}

// Generate produces a draft without persisting anything. The client reviews
// the draft and saves it with a separate call.
func (rh *RoadmapHandler) Generate(c *gin.Context) {
  var req services.GenerateRoadmapRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid request body")))
    return
  }
  result, err := rh.generationService.GenerateDraft(c.Request.Context(), req)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, result)
}

func (rh *RoadmapHandler) Save(c *gin.Context) {
  userID, err := currentUserID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  var req services.SaveDraftRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid request body")))
    return
  }
  roadmap, err := rh.roadmapService.SaveDraft(c.Request.Context(), userID, req)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"roadmap": roadmap})
}

func (rh *RoadmapHandler) List(c *gin.Context) {
  userID, err := currentUserID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  roadmaps, err := rh.roadmapService.ListForUser(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"roadmaps": roadmaps})
}

func (rh *RoadmapHandler) Get(c *gin.Context) {
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
  roadmap, steps, err := rh.roadmapService.GetWithSteps(c.Request.Context(), userID, roadmapID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"roadmap": roadmap, "steps": steps})
}

func (rh *RoadmapHandler) Delete(c *gin.Context) {
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
  if err := rh.roadmapService.Delete(c.Request.Context(), userID, roadmapID); err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}

func (rh *RoadmapHandler) Reorder(c *gin.Context) {
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
  var req struct {
    StepIDs []uuid.UUID `json:"step_ids"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid request body")))
    return
  }
  if err := rh.roadmapService.ReorderSteps(c.Request.Context(), userID, roadmapID, req.StepIDs); err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}
