package services

import (
	"bytes"
	"fmt"

	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain/models"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/repositories"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a printable e-ticket for a booked seat.
type TicketService struct {
	Schedules repositories.ScheduleRepo
	Seats     repositories.SeatRepo
	RequestID string
}

// GenerateETicket builds the PDF for (scheduleID, seatNumber). The seat
// must already be booked; an unbooked seat is a NotFoundError so callers
// cannot print tickets for reservations that never happened.
func (s TicketService) GenerateETicket(scheduleID int64, seatNumber int) ([]byte, string, error) {
	detail, err := s.Schedules.GetDetails(scheduleID)
	if err != nil {
		return nil, "", err
	}

	avail, err := s.Seats.Availability(scheduleID)
	if err != nil {
		return nil, "", err
	}
	if !avail.Occupied(seatNumber) {
		return nil, "", domain.NotFoundError{Resource: "booking"}
	}

	utils.LogEvent(s.RequestID, "ticket", "generate_eticket",
		fmt.Sprintf("schedule_id=%d seat=%d", scheduleID, seatNumber))
	return buildETicketPDF(detail, seatNumber)
}

func buildETicketPDF(d models.ScheduleDetail, seatNumber int) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Route        : %s -> %s", d.Source, d.Destination),
		fmt.Sprintf("Travel Date  : %s", d.DepartureDate),
		fmt.Sprintf("Departure    : %s", d.DepartureTime),
		fmt.Sprintf("Arrival      : %s", d.ArrivalTime),
		fmt.Sprintf("Bus          : %s (%s)", d.BusNumber, d.CompanyName),
		fmt.Sprintf("Seat         : %d", seatNumber),
		fmt.Sprintf("Distance     : %d km", d.Distance),
		fmt.Sprintf("Fare         : %.2f", d.Price),
		fmt.Sprintf("Ticket Code  : TCK-%d-%d", d.ScheduleID, seatNumber),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger (one seat). Please present it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "e-ticket render failed", Err: err}
	}

	filename := fmt.Sprintf("ETICKET_%d_%d_%s.pdf", d.ScheduleID, seatNumber, utils.SafeFilenamePart(d.BusNumber))
	return buf.Bytes(), filename, nil
}
