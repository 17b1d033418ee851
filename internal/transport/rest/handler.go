package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"clinicbook/config"
	"clinicbook/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		specializations := api.Group("/specializations")
		{
			specializations.GET("", h.getSpecializations)
			specializations.GET("/:id", h.getSpecializationByID)
			specializations.POST("", h.createSpecialization)
			specializations.PUT("/:id", h.updateSpecialization)
			specializations.DELETE("/:id", h.deleteSpecialization)
		}

		doctors := api.Group("/doctors")
		{
			doctors.GET("", h.getDoctors)
			doctors.GET("/:id", h.getDoctorByID)
			doctors.POST("", h.createDoctor)
			doctors.PUT("/:id", h.updateDoctor)
			doctors.DELETE("/:id", h.deleteDoctor)
		}

		api.GET("/availability", h.getAvailability)

		appointments := api.Group("/appointments")
		{
			appointments.POST("", h.createAppointment)
			appointments.GET("", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PATCH("/:id/status", h.updateAppointmentStatus)
			appointments.DELETE("/:id", h.cancelAppointment)
		}

		patients := api.Group("/patients")
		{
			patients.GET("", h.getPatients)
			patients.GET("/:id", h.getPatientByID)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
