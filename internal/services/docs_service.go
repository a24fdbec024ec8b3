package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"limoapi/internal/domain/models"
	"limoapi/internal/repositories"
	"limoapi/internal/utils"
)

// DocsService renders booking confirmation documents.
type DocsService struct {
	Bookings  repositories.BookingRepository
	RequestID string

	// Loader overrides booking lookup in tests.
	Loader func(id string) (models.Booking, error)
}

// GenerateConfirmation renders the booking as a PDF and returns the bytes
// plus a suggested filename.
func (s DocsService) GenerateConfirmation(bookingID string) ([]byte, string, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_confirmation", "booking_number="+b.BookingNumber)
	return buildConfirmationPDF(b)
}

func (s DocsService) loadBooking(id string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.Bookings.GetByID(id)
}

func buildConfirmationPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	vehicleName := "-"
	if b.Vehicle != nil {
		vehicleName = b.Vehicle.Name
	}
	serviceTitle := "-"
	if b.Service != nil {
		serviceTitle = b.Service.Title
	}
	addOns := []string{}
	if b.ChildSeat {
		addOns = append(addOns, "Child Seat")
	}
	if b.MeetGreet {
		addOns = append(addOns, "Meet & Greet")
	}
	if b.Champagne {
		addOns = append(addOns, "Champagne")
	}
	addOnLine := "-"
	if len(addOns) > 0 {
		addOnLine = fmt.Sprintf("%s (%s)", strings.Join(addOns, ", "), utils.FormatUSD(b.AddOnsTotal))
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Number : %s", b.BookingNumber),
		fmt.Sprintf("Status         : %s", b.Status),
		fmt.Sprintf("Passenger      : %s %s", b.FirstName, b.LastName),
		fmt.Sprintf("Contact        : %s / %s", b.Email, b.Phone),
		fmt.Sprintf("Pick Up        : %s at %s, %s", b.PickUpLocation, b.PickUpTime, b.DateOfService),
		fmt.Sprintf("Drop Off       : %s", b.DropOffLocation),
		fmt.Sprintf("Passengers     : %d", b.Passengers),
		fmt.Sprintf("Vehicle        : %s", vehicleName),
		fmt.Sprintf("Service        : %s", serviceTitle),
		fmt.Sprintf("Add-Ons        : %s", addOnLine),
		fmt.Sprintf("Total          : %s", utils.FormatUSD(b.TotalPrice)),
		fmt.Sprintf("Issued         : %s", utils.FormatDate(time.Now())),
	}
	if len(b.Stops) > 0 {
		lines = append(lines[:6], append([]string{
			fmt.Sprintf("Stops          : %s", strings.Join(b.Stops, "; ")),
		}, lines[6:]...)...)
	}
	if b.RoundTrip && b.ReturnDate != nil {
		ret := *b.ReturnDate
		if b.ReturnTime != nil {
			ret += " " + *b.ReturnTime
		}
		lines = append(lines, fmt.Sprintf("Return         : %s", ret))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if b.SpecialInstructions != nil && strings.TrimSpace(*b.SpecialInstructions) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Special instructions: "+*b.SpecialInstructions, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("CONFIRMATION_%s.pdf", b.BookingNumber), nil
}
