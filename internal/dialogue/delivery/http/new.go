package http

import (
	"github.com/gin-gonic/gin"

	"appointment-assistant/internal/dialogue"
	pkgLog "appointment-assistant/pkg/log"
)

// Handler is the interface for the chat HTTP delivery.
type Handler interface {
	Chat(c *gin.Context)
	Reset(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc dialogue.UseCase
}

// New creates a new chat HTTP handler.
func New(l pkgLog.Logger, uc dialogue.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
