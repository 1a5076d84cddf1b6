package handlers

import (
	"net/http"
	"strconv"

	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/http/middleware"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/repositories"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
//
// The legacy client only understands booked yes/no, so the response keeps
// a boolean "booked" next to the tagged outcome.
func (a *API) CreateBooking(c *gin.Context) {
	var req services.BookRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.UserID == 0 {
		req.UserID = middleware.AuthUserID(c)
	}

	conn := a.conn()
	defer conn.Release()

	svc := a.bookingService(c, conn)
	result, err := svc.Book(req)
	if err != nil {
		if domain.IsConnection(err) || domain.IsValidation(err) {
			RespondDomainError(c, err)
			return
		}
		// Store failure during the booking write: collapsed to a failed
		// booking, matching the legacy contract.
		c.JSON(http.StatusOK, gin.H{
			"booked":  false,
			"outcome": domain.BookFailed.String(),
			"message": "booking failed, please try again",
		})
		return
	}

	switch result.Outcome {
	case domain.BookConfirmed:
		c.JSON(http.StatusCreated, gin.H{
			"booked":   true,
			"outcome":  result.Outcome.String(),
			"schedule": result.Schedule,
			"seat":     req.SeatNumber,
		})
	case domain.BookSeatTaken:
		c.JSON(http.StatusConflict, gin.H{
			"booked":  false,
			"outcome": result.Outcome.String(),
			"message": "seat already taken, please pick another",
		})
	case domain.BookInvalidSeat:
		c.JSON(http.StatusBadRequest, gin.H{
			"booked":  false,
			"outcome": result.Outcome.String(),
			"message": "schedule or seat number is not valid",
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"booked":  false,
			"outcome": result.Outcome.String(),
			"message": "booking failed, please try again",
		})
	}
}

// GET /api/bookings/ticket?schedule_id=&seat=
func (a *API) ETicket(c *gin.Context) {
	scheduleID, err := strconv.ParseInt(c.Query("schedule_id"), 10, 64)
	if err != nil || scheduleID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid schedule id", nil)
		return
	}
	seat, err := strconv.Atoi(c.Query("seat"))
	if err != nil || seat <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid seat number", nil)
		return
	}

	conn := a.conn()
	defer conn.Release()

	svc := services.TicketService{
		Schedules: repositories.ScheduleRepo{Conn: conn},
		Seats:     repositories.SeatRepo{Conn: conn},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, terr := svc.GenerateETicket(scheduleID, seat)
	if terr != nil {
		RespondDomainError(c, terr)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
