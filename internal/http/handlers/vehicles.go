package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limoapi/internal/domain/models"
	"limoapi/internal/repositories"
	"limoapi/internal/validate"
)

// VehicleHandler serves the fleet catalog. Public reads see active vehicles
// only; mutations are admin-gated by the router.
type VehicleHandler struct {
	Repo repositories.VehicleRepository
	Dev  bool
}

type createVehiclePayload struct {
	Name               string   `json:"name" validate:"required,min=1"`
	QuantityPassengers *int     `json:"quantityPassengers" validate:"required,gte=1"`
	QuantityBaggage    *int     `json:"quantityBaggage" validate:"required,gte=0"`
	Description        string   `json:"description" validate:"required,min=10,max=1000"`
	PricePerHour       *float64 `json:"pricePerHour" validate:"required,gte=0"`
	PricePerMile       *float64 `json:"pricePerMile" validate:"required,gte=0"`
	Images             []string `json:"images" validate:"required,min=1,dive,required"`
	IsActive           *bool    `json:"isActive"`
}

type updateVehiclePayload struct {
	Name               *string  `json:"name" validate:"omitempty,min=1"`
	QuantityPassengers *int     `json:"quantityPassengers" validate:"omitempty,gte=1"`
	QuantityBaggage    *int     `json:"quantityBaggage" validate:"omitempty,gte=0"`
	Description        *string  `json:"description" validate:"omitempty,min=10,max=1000"`
	PricePerHour       *float64 `json:"pricePerHour" validate:"omitempty,gte=0"`
	PricePerMile       *float64 `json:"pricePerMile" validate:"omitempty,gte=0"`
	Images             []string `json:"images" validate:"omitempty,min=1,dive,required"`
	IsActive           *bool    `json:"isActive"`
}

// GET /api/vehicles
func (h VehicleHandler) List(c *gin.Context) {
	list, err := h.Repo.List(true)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/vehicles/:id
func (h VehicleHandler) GetByID(c *gin.Context) {
	v, err := h.Repo.GetByID(c.Param("id"), true)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/vehicles (admin)
func (h VehicleHandler) Create(c *gin.Context) {
	var req createVehiclePayload
	if !BindJSON(c, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}

	v := models.Vehicle{
		Name:               req.Name,
		QuantityPassengers: *req.QuantityPassengers,
		QuantityBaggage:    *req.QuantityBaggage,
		Description:        req.Description,
		PricePerHour:       *req.PricePerHour,
		PricePerMile:       *req.PricePerMile,
		Images:             req.Images,
		IsActive:           true,
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	created, err := h.Repo.Create(v)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/vehicles/:id (admin)
func (h VehicleHandler) Update(c *gin.Context) {
	var req updateVehiclePayload
	if !BindJSON(c, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}

	updated, err := h.Repo.Update(c.Param("id"), repositories.VehiclePatch{
		Name:               req.Name,
		QuantityPassengers: req.QuantityPassengers,
		QuantityBaggage:    req.QuantityBaggage,
		Description:        req.Description,
		PricePerHour:       req.PricePerHour,
		PricePerMile:       req.PricePerMile,
		Images:             req.Images,
		IsActive:           req.IsActive,
	})
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/vehicles/:id (admin, soft)
func (h VehicleHandler) Delete(c *gin.Context) {
	v, err := h.Repo.Deactivate(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, v)
}
