package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limoapi/internal/http/middleware"
	"limoapi/internal/repositories"
	"limoapi/internal/services"
)

// SeedHandler populates the catalog with starter records.
type SeedHandler struct {
	Vehicles  repositories.VehicleRepository
	Services  repositories.ServiceRepository
	TripTypes repositories.TripTypeRepository
	Dev       bool
}

// POST /api/seed (admin)
func (h SeedHandler) Run(c *gin.Context) {
	seeder := services.SeedService{
		Vehicles:  h.Vehicles,
		Services:  h.Services,
		TripTypes: h.TripTypes,
		RequestID: middleware.GetRequestID(c),
	}
	result, err := seeder.Run()
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "seed completed",
		"created": result,
	})
}
