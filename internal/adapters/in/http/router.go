package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

const swaggerInstance = "garment"

type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string { return string(d) }

// NewRouter builds the echo instance serving health, swagger and /api/v1.
func NewRouter(server *Server, doc *openapi3.T, jwtSecret string, logger *zap.Logger) (*echo.Echo, error) {
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi router: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	if swag.GetSwagger(swaggerInstance) == nil {
		swag.Register(swaggerInstance, swaggerDoc(raw))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance)))

	v1 := e.Group("/api/v1", Actor([]byte(jwtSecret)), validator)

	v1.POST("/bundles", server.CreateBundle)
	v1.GET("/bundles/next-number", server.NextStartingNumber)
	v1.PUT("/bundles/:id", server.UpdateBundle)
	v1.DELETE("/bundles/:id", server.DeleteBundle)

	v1.GET("/orders/:orderId/bundles/stats", server.GetBundleStats)
	v1.GET("/orders/:orderId/bundles/stats/export", server.ExportBundleStats)
	v1.GET("/orders/:orderId/bundles/available", server.ListAvailableBundles)

	v1.GET("/employees/:empId/verify", server.VerifyEmployee)

	v1.POST("/loading/transactions", server.CreateLoadingTransaction)
	v1.POST("/loading/transactions/:id/approve", server.ApproveLoadingTransaction)
	v1.POST("/loading/transactions/:id/reject", server.RejectLoadingTransaction)
	v1.POST("/loading/transactions/:id/handover", server.HandoverLoadingTransaction)
	v1.GET("/loading/recommendation/:lineNo", server.GetRecommendation)
	v1.GET("/loading/dashboard", server.GetLoadingDashboard)

	return e, nil
}
