package routes

import (
	"aquaops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers  = "/customers"
	PathProperties = "/properties"
	PathPools      = "/pools"
)

func addCRMRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, propertyHandler *handlers.PropertyHandler, poolHandler *handlers.PoolHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Create)
		customers.GET("", customerHandler.List)
		// Registered before /:id so "export" is not captured as an id.
		customers.GET("/export", customerHandler.Export)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PATCH("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	properties := rg.Group(PathProperties)
	{
		properties.POST("", propertyHandler.Create)
		properties.GET("", propertyHandler.List)
		properties.GET("/:id", propertyHandler.GetByID)
		properties.PATCH("/:id", propertyHandler.Update)
		properties.DELETE("/:id", propertyHandler.Delete)
	}

	pools := rg.Group(PathPools)
	{
		pools.POST("", poolHandler.Create)
		pools.GET("", poolHandler.List)
		pools.GET("/:id", poolHandler.GetByID)
		pools.PATCH("/:id", poolHandler.Update)
		pools.DELETE("/:id", poolHandler.Delete)
	}
}
