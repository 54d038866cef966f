package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func newCORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// CORS allows credentialed requests from the configured origins only.
// Requests from any other origin are rejected with 403; requests without
// an Origin header pass through. An empty origin list disables CORS.
func (m Middleware) CORS() gin.HandlerFunc {
	return m.cors
}

// AllowedOrigins returns the origins CORS was configured with.
func (m Middleware) AllowedOrigins() []string {
	return m.origins
}
