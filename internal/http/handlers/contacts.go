package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limoapi/internal/domain/models"
	"limoapi/internal/http/middleware"
	"limoapi/internal/repositories"
	"limoapi/internal/utils"
	"limoapi/internal/validate"
)

// ContactHandler serves the public contact form plus the admin inbox.
type ContactHandler struct {
	Repo repositories.ContactRepository
	Dev  bool
}

type createContactPayload struct {
	Name    string  `json:"name" validate:"required,min=2"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required,len=10,numeric"`
	Message *string `json:"message"`
}

type updateContactStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=NEW READ REPLIED ARCHIVED"`
}

// POST /api/contacts (public)
func (h ContactHandler) Create(c *gin.Context) {
	var req createContactPayload
	if !BindJSON(c, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}

	message := ""
	if req.Message != nil {
		message = *req.Message
	}
	contact, err := h.Repo.Create(models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: message,
	})
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "contacts", "create", "contact message received from "+contact.Email)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for contacting us. We will get back to you shortly.",
		"contact": contact,
	})
}

// GET /api/contacts (admin)
func (h ContactHandler) List(c *gin.Context) {
	list, err := h.Repo.List()
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/contacts/:id (admin)
func (h ContactHandler) GetByID(c *gin.Context) {
	contact, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// PATCH /api/contacts/:id/status (admin)
func (h ContactHandler) UpdateStatus(c *gin.Context) {
	var req updateContactStatusPayload
	if !BindJSON(c, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}

	contact, err := h.Repo.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "contacts", "update", "contact "+contact.ID+" marked "+contact.Status)
	c.JSON(http.StatusOK, contact)
}

// DELETE /api/contacts/:id (admin, hard)
func (h ContactHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contact deleted"})
}
