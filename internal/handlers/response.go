package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/darijacode/hub-backend/internal/apierr"
)

type APIError struct {
  Message string `json:"message"`
  Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error APIError `json:"error"`
}

// RespondError maps a service error onto the wire. Errors carrying an API
// code keep their status; anything else is a 500.
func RespondError(c *gin.Context, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(apierr.Status(err), ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    apierr.Code(err),
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}
