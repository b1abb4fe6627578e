package gateway

import "github.com/labstack/echo/v4"

// RegisterGatewayRoutes registers gateway routes on the Echo server
func RegisterGatewayRoutes(e *echo.Echo, handler *GatewayHandler) {
	v1 := e.Group("/v1")

	docs := v1.Group("/documents")
	docs.POST("/echo", handler.Echo)
	docs.GET("/sample", handler.Sample)

	v1.GET("/ping", handler.Ping)
}
