package gateway

import (
	"net/http"

	"jsonmedia/internal/pkg/logger"
	"jsonmedia/internal/pkg/server"

	"github.com/labstack/echo/v4"
)

// GatewayHandler handles gateway HTTP requests
type GatewayHandler struct {
	logger *logger.Logger
}

// NewGatewayHandler creates a new gateway handler
func NewGatewayHandler(log *logger.Logger) *GatewayHandler {
	return &GatewayHandler{
		logger: log,
	}
}

// Echo binds the request document and returns it unchanged. Binding and
// rendering both go through the configurable JSON provider.
func (h *GatewayHandler) Echo(c echo.Context) error {
	var doc Document
	if err := c.Bind(&doc); err != nil {
		h.logger.Error("Failed to bind document")
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid request body")
	}

	if doc.ID == "" {
		return server.ErrorResponse(c, http.StatusBadRequest, nil, "Document ID is required")
	}

	return server.SuccessResponse(c, http.StatusOK, doc, "Document echoed successfully")
}

// Sample returns a canned document
func (h *GatewayHandler) Sample(c echo.Context) error {
	return server.SuccessResponse(c, http.StatusOK, SampleDocument(), "Sample document")
}

// Ping returns a bare string. The provider declines scalar payloads, so
// this goes out through the serializer's fallback path as a bare JSON value.
func (h *GatewayHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, "pong")
}
