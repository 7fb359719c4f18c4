// Package httpapi exposes the contact store over REST. The HTTP layer is a
// direct pass-through: handlers translate store outcomes to status codes
// and never apply validation of their own, so the store's validation stays
// the single source of truth.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// NewRouter builds the gin engine with all contact routes registered.
func NewRouter(store types.Store, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	contacts := router.Group("/contacts")
	{
		contacts.GET("", ListContacts(store))
		contacts.GET("/:id", GetContact(store))
		contacts.POST("", AddContact(store))
		contacts.PUT("/:id", UpdateContact(store))
		contacts.DELETE("/:id", DeleteContact(store))
	}

	return router
}
