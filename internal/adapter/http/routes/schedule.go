package routes

import (
	"aquaops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAppointments   = "/appointments"
	PathCommunications = "/communications"
)

func addScheduleRoutes(rg *gin.RouterGroup, appointmentHandler *handlers.AppointmentHandler, communicationHandler *handlers.CommunicationHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", appointmentHandler.Create)
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/:id", appointmentHandler.GetByID)
		appointments.PATCH("/:id", appointmentHandler.Update)
		appointments.DELETE("/:id", appointmentHandler.Delete)
	}

	communications := rg.Group(PathCommunications)
	{
		communications.POST("", communicationHandler.Log)
		communications.GET("", communicationHandler.List)
		communications.DELETE("/:id", communicationHandler.Delete)
	}
}
