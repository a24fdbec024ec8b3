package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limoapi/internal/domain"
	"limoapi/internal/domain/models"
	"limoapi/internal/repositories"
	"limoapi/internal/validate"
)

// TripTypeHandler mirrors the service catalog handlers for trip types.
type TripTypeHandler struct {
	Repo repositories.TripTypeRepository
	Dev  bool
}

type createTripTypePayload struct {
	Slug        string  `json:"slug" validate:"required,slug"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsActive    *bool   `json:"isActive"`
}

type updateTripTypePayload struct {
	Slug        *string `json:"slug" validate:"omitempty,slug"`
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsActive    *bool   `json:"isActive"`
}

// GET /api/trip-types
func (h TripTypeHandler) List(c *gin.Context) {
	list, err := h.Repo.List(true)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/trip-types/admin/all (admin)
func (h TripTypeHandler) ListAdmin(c *gin.Context) {
	list, err := h.Repo.List(false)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/trip-types/:id
func (h TripTypeHandler) GetByID(c *gin.Context) {
	t, err := h.Repo.GetByID(c.Param("id"), true)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, t)
}

// GET /api/trip-types/slug/:slug
func (h TripTypeHandler) GetBySlug(c *gin.Context) {
	t, err := h.Repo.GetBySlug(c.Param("slug"), true)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, t)
}

// POST /api/trip-types (admin)
func (h TripTypeHandler) Create(c *gin.Context) {
	var req createTripTypePayload
	if !BindJSON(c, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}

	taken, err := h.Repo.SlugExists(req.Slug, "")
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	if taken {
		RespondDomainError(c, domain.ConflictError{
			Resource: "trip type", Msg: "a trip type with this slug already exists",
		}, h.Dev)
		return
	}

	t := models.TripType{Slug: req.Slug, Name: req.Name, IsActive: true}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	created, err := h.Repo.Create(t)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/trip-types/:id (admin)
func (h TripTypeHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateTripTypePayload
	keys, ok := BindJSONWithPresence(c, &req)
	if !ok {
		return
	}
	if err := validate.Struct(req); err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}

	existing, err := h.Repo.GetByID(id, false)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}

	if req.Slug != nil && *req.Slug != existing.Slug {
		taken, err := h.Repo.SlugExists(*req.Slug, id)
		if err != nil {
			RespondDomainError(c, err, h.Dev)
			return
		}
		if taken {
			RespondDomainError(c, domain.ConflictError{
				Resource: "trip type", Msg: "a trip type with this slug already exists",
			}, h.Dev)
			return
		}
	}

	patch := repositories.TripTypePatch{
		Slug:     req.Slug,
		Name:     req.Name,
		IsActive: req.IsActive,
	}
	if raw, present := keys["description"]; present {
		patch.DescriptionSet = true
		if !isNull(raw) {
			patch.Description = req.Description
		}
	}

	updated, err := h.Repo.Update(id, patch)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/trip-types/:id (admin, soft)
func (h TripTypeHandler) Delete(c *gin.Context) {
	t, err := h.Repo.Deactivate(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, t)
}
