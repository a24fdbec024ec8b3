package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limoapi/internal/domain/models"
	"limoapi/internal/http/middleware"
	"limoapi/internal/repositories"
	"limoapi/internal/services"
	"limoapi/internal/validate"
)

// BookingHandler serves the booking lifecycle. Creation requires an
// authenticated user; lists, updates and deletion are admin-gated by the
// router except the self-scoped user list.
type BookingHandler struct {
	Bookings  repositories.BookingRepository
	Vehicles  repositories.VehicleRepository
	TripTypes repositories.TripTypeRepository
	Services  repositories.ServiceRepository
	Dev       bool
}

type createBookingPayload struct {
	FirstName string `json:"firstName" validate:"required,min=1"`
	LastName  string `json:"lastName" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=1"`

	PickUpLocation  string   `json:"pickUpLocation" validate:"required,min=1"`
	DropOffLocation string   `json:"dropOffLocation" validate:"required,min=1"`
	Stops           []string `json:"stops" validate:"omitempty,dive,required"`
	DateOfService   string   `json:"dateOfService" validate:"required,datetime=2006-01-02"`
	PickUpTime      string   `json:"pickUpTime" validate:"required,min=1"`

	RoundTrip  bool    `json:"roundTrip"`
	ReturnDate *string `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`
	ReturnTime *string `json:"returnTime"`

	TripTypeID string `json:"tripTypeId" validate:"required,min=1"`
	Passengers *int   `json:"passengers" validate:"required,gt=0"`

	VehicleID string  `json:"vehicleId" validate:"required,min=1"`
	ServiceID *string `json:"serviceId"`

	ChildSeat   bool    `json:"childSeat"`
	MeetGreet   bool    `json:"meetGreet"`
	Champagne   bool    `json:"champagne"`
	AddOnsTotal float64 `json:"addOnsTotal" validate:"gte=0"`

	Distance   *float64 `json:"distance" validate:"omitempty,gte=0"`
	Duration   *int     `json:"duration" validate:"omitempty,gte=0"`
	TotalPrice *float64 `json:"totalPrice" validate:"required,gt=0"`

	SpecialInstructions *string `json:"specialInstructions"`
}

type updateBookingPayload struct {
	Status              *string `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	SpecialInstructions *string `json:"specialInstructions"`
}

func (h BookingHandler) svc(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  h.Bookings,
		Vehicles:  h.Vehicles,
		TripTypes: h.TripTypes,
		Services:  h.Services,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/bookings (authenticated)
func (h BookingHandler) Create(c *gin.Context) {
	var req createBookingPayload
	if !BindJSON(c, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}

	stops := req.Stops
	if stops == nil {
		stops = []string{}
	}

	b := models.Booking{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		PickUpLocation:      req.PickUpLocation,
		DropOffLocation:     req.DropOffLocation,
		Stops:               stops,
		DateOfService:       req.DateOfService,
		PickUpTime:          req.PickUpTime,
		RoundTrip:           req.RoundTrip,
		ReturnDate:          req.ReturnDate,
		ReturnTime:          req.ReturnTime,
		VehicleID:           req.VehicleID,
		TripTypeID:          req.TripTypeID,
		ServiceID:           req.ServiceID,
		Passengers:          *req.Passengers,
		ChildSeat:           req.ChildSeat,
		MeetGreet:           req.MeetGreet,
		Champagne:           req.Champagne,
		AddOnsTotal:         req.AddOnsTotal,
		Distance:            req.Distance,
		Duration:            req.Duration,
		TotalPrice:          *req.TotalPrice,
		SpecialInstructions: req.SpecialInstructions,
	}
	if user, ok := middleware.GetAuthUser(c); ok {
		b.UserID = user.ID
	}

	created, err := h.svc(c).Create(b)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /api/bookings (admin)
func (h BookingHandler) List(c *gin.Context) {
	list, err := h.svc(c).ListAll()
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/user (authenticated, self-scoped)
func (h BookingHandler) ListMine(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	list, err := h.svc(c).ListByUser(user.ID)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/:id (authenticated)
func (h BookingHandler) GetByID(c *gin.Context) {
	b, err := h.svc(c).GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /api/bookings/number/:bookingNumber (authenticated)
func (h BookingHandler) GetByNumber(c *gin.Context) {
	b, err := h.svc(c).GetByNumber(c.Param("bookingNumber"))
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PUT /api/bookings/:id (admin)
func (h BookingHandler) Update(c *gin.Context) {
	var req updateBookingPayload
	keys, ok := BindJSONWithPresence(c, &req)
	if !ok {
		return
	}
	if err := validate.Struct(req); err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}

	upd := models.BookingUpdate{Status: req.Status}
	if raw, present := keys["specialInstructions"]; present {
		upd.SpecialInstructionsSet = true
		if !isNull(raw) {
			upd.SpecialInstructions = req.SpecialInstructions
		}
	}

	b, err := h.svc(c).Update(c.Param("id"), upd)
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /api/bookings/:id (admin, hard)
func (h BookingHandler) Delete(c *gin.Context) {
	if err := h.svc(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// GET /api/bookings/:id/confirmation (admin, PDF)
func (h BookingHandler) Confirmation(c *gin.Context) {
	docs := services.DocsService{
		Bookings:  h.Bookings,
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := docs.GenerateConfirmation(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err, h.Dev)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
