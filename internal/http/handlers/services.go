package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limoapi/internal/domain"
	"limoapi/internal/domain/models"
	"limoapi/internal/repositories"
	"limoapi/internal/validate"
)

// ServiceHandler serves the service catalog. The slug-uniqueness check runs
// here, before the repository call, so conflicts carry a resource-specific
// message; the storage UNIQUE key backstops races.
type ServiceHandler struct {
	Repo repositories.ServiceRepository
	Dev  bool
}

type createServicePayload struct {
	Slug        string  `json:"slug" validate:"required,slug"`
	Title       string  `json:"title" validate:"required,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Image       *string `json:"image" validate:"omitempty,max=512"`
	IsActive    *bool   `json:"isActive"`
}

type updateServicePayload struct {
	Slug        *string `json:"slug" validate:"omitempty,slug"`
	Title       *string `json:"title" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Image       *string `json:"image" validate:"omitempty,max=512"`
	IsActive    *bool   `json:"isActive"`
}

// GET /api/services
func (h ServiceHandler) List(c *gin.Context) {
	list, err := h.Repo.List(true)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/services/admin/all (admin)
func (h ServiceHandler) ListAdmin(c *gin.Context) {
	list, err := h.Repo.List(false)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/services/:id
func (h ServiceHandler) GetByID(c *gin.Context) {
	s, err := h.Repo.GetByID(c.Param("id"), true)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, s)
}

// GET /api/services/slug/:slug
func (h ServiceHandler) GetBySlug(c *gin.Context) {
	s, err := h.Repo.GetBySlug(c.Param("slug"), true)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, s)
}

// POST /api/services (admin)
func (h ServiceHandler) Create(c *gin.Context) {
	var req createServicePayload
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
			Resource: "service", Msg: "a service with this slug already exists",
		}, h.Dev)
		return
	}

	s := models.Service{Slug: req.Slug, Title: req.Title, IsActive: true}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.Image != nil {
		s.Image = *req.Image
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	created, err := h.Repo.Create(s)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/services/:id (admin)
func (h ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateServicePayload
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
				Resource: "service", Msg: "a service with this slug already exists",
			}, h.Dev)
			return
		}
	}

	patch := repositories.ServicePatch{
		Slug:     req.Slug,
		Title:    req.Title,
		IsActive: req.IsActive,
	}
	if raw, present := keys["description"]; present {
		patch.DescriptionSet = true
		if !isNull(raw) {
			patch.Description = req.Description
		}
	}
	if raw, present := keys["image"]; present {
		patch.ImageSet = true
		if !isNull(raw) {
			patch.Image = req.Image
		}
	}

	updated, err := h.Repo.Update(id, patch)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/services/:id (admin, soft)
func (h ServiceHandler) Delete(c *gin.Context) {
	s, err := h.Repo.Deactivate(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, s)
}
