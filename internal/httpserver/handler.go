package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	agentHTTP "reservation-agent/internal/agent/delivery/http"
	reservationHTTP "reservation-agent/internal/reservation/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		gin.Recovery(),
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.CORS(),
		srv.mw.RateLimit(),
	)

	ctx := context.Background()
	if origins := srv.mw.AllowedOrigins(); len(origins) > 0 {
		srv.l.Infof(ctx, "CORS allowed origins (%s): %s", srv.environment, strings.Join(origins, ", "))
	} else {
		srv.l.Warnf(ctx, "CORS disabled (%s): no allowed origins configured", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	agentHTTP.RegisterRoutes(srv.gin.Group("/invoke-agent"), srv.agentHandler)
	srv.l.Infof(ctx, "Agent routes registered at /invoke-agent")

	if srv.reservationHandler != nil {
		reservationHTTP.RegisterRoutes(srv.gin.Group("/api/reservations"), srv.reservationHandler)
		srv.l.Infof(ctx, "Reservation routes registered at /api/reservations")
	} else {
		srv.l.Infof(ctx, "Reservation handler not configured, booking API served remotely")
	}
}

// root godoc
// @Summary Root
// @Tags    Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  / [get]
func (srv HTTPServer) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Hello": "World"})
}
