package handlers

import (
  "fmt"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/darijacode/hub-backend/internal/apierr"
  "github.com/darijacode/hub-backend/internal/requestdata"
  "github.com/darijacode/hub-backend/internal/services"
)

type UserHandler struct {
  userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

func currentUserID(c *gin.Context) (uuid.UUID, error) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    return uuid.Nil, apierr.AuthRequired(fmt.Errorf("no authenticated user"))
  }
  return rd.UserID, nil
}

func (uh *UserHandler) GetMe(c *gin.Context) {
  userID, err := currentUserID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  user, profile, err := uh.userService.GetMe(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"user": user, "profile": profile})
}

func (uh *UserHandler) UpdateProfile(c *gin.Context) {
  userID, err := currentUserID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  var req services.UpdateProfileRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid request body")))
    return
  }
  profile, err := uh.userService.UpdateProfile(c.Request.Context(), userID, &req)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"profile": profile})
}

func (uh *UserHandler) GetPreferences(c *gin.Context) {
  userID, err := currentUserID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  prefs, err := uh.userService.GetPreferences(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"preferences": prefs})
}

func (uh *UserHandler) SavePreferences(c *gin.Context) {
  userID, err := currentUserID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  var req services.SavePreferencesRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(fmt.Errorf("invalid request body")))
    return
  }
  prefs, err := uh.userService.SavePreferences(c.Request.Context(), userID, &req)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, gin.H{"preferences": prefs})
}
