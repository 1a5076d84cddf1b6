package services

import (
	"fmt"
	"strings"

	intdb "github.com/SiddharthDaryani/Bus-booking-system/internal/db"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain/models"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/repositories"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// BookingService runs the search -> seat -> book flow for one unit of
// work. It owns no connection itself; the caller opens a Conn per request
// and releases it when done, so every repository call under this service
// shares that request's handle.
type BookingService struct {
	Schedules repositories.ScheduleRepo
	Seats     repositories.SeatRepo
	Users     repositories.UserRepo
	RequestID string
}

func NewBookingService(conn *intdb.Conn, requestID string) BookingService {
	return BookingService{
		Schedules: repositories.ScheduleRepo{Conn: conn},
		Seats:     repositories.SeatRepo{Conn: conn},
		Users:     repositories.UserRepo{Conn: conn},
		RequestID: requestID,
	}
}

// BookRequest carries one booking attempt. The passenger fields are only
// consulted when the user id is not registered yet: the original flow
// provisions the user on their first booking.
type BookRequest struct {
	ScheduleID int64  `json:"schedule_id"`
	SeatNumber int    `json:"seat_number"`
	UserID     int64  `json:"user_id"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Password   string `json:"password,omitempty"`
}

// BookResult pairs the tagged outcome with the schedule projection the
// confirmation page renders.
type BookResult struct {
	Outcome  domain.BookOutcome
	Schedule models.ScheduleDetail
}

// Search validates the filters and returns matching schedule summaries.
// No match is a normal empty result.
func (s BookingService) Search(source, destination, travelDate string) ([]models.ScheduleSummary, error) {
	source = utils.NormalizeCity(source)
	destination = utils.NormalizeCity(destination)
	if source == "" || destination == "" {
		return nil, domain.ValidationError{Field: "route", Msg: "source and destination are required"}
	}
	if !utils.ValidTravelDate(travelDate) {
		return nil, domain.ValidationError{Field: "travel_date", Msg: "expected YYYY-MM-DD"}
	}
	return s.Schedules.FindAvailable(source, destination, travelDate)
}

// Dates lists distinct travel dates serving a route, ascending.
func (s BookingService) Dates(source, destination string) ([]models.ScheduleDate, error) {
	source = utils.NormalizeCity(source)
	destination = utils.NormalizeCity(destination)
	if source == "" || destination == "" {
		return nil, domain.ValidationError{Field: "route", Msg: "source and destination are required"}
	}
	return s.Schedules.ListDates(source, destination)
}

// Book performs exactly one booking write for the unit of work: it
// provisions the user when absent, then runs the atomic check-and-insert.
// On confirmation it loads the schedule detail for display; a missing
// detail row downgrades to an empty projection rather than failing a
// booking that already committed.
func (s BookingService) Book(req BookRequest) (BookResult, error) {
	if err := s.ensureUser(req); err != nil {
		return BookResult{Outcome: domain.BookFailed}, err
	}

	outcome, err := s.Seats.Book(req.ScheduleID, req.SeatNumber, req.UserID)
	if err != nil {
		return BookResult{Outcome: outcome}, err
	}
	utils.LogEvent(s.RequestID, "booking", "book",
		fmt.Sprintf("schedule_id=%d seat=%d user_id=%d outcome=%s", req.ScheduleID, req.SeatNumber, req.UserID, outcome))

	result := BookResult{Outcome: outcome}
	if outcome.Confirmed() {
		detail, err := s.Schedules.GetDetails(req.ScheduleID)
		if err == nil {
			result.Schedule = detail
		} else if !domain.IsNotFound(err) {
			utils.LogEvent(s.RequestID, "booking", "book",
				fmt.Sprintf("detail lookup failed after booking schedule_id=%d: %v", req.ScheduleID, err))
		}
	}
	return result, nil
}

func (s BookingService) ensureUser(req BookRequest) error {
	if req.UserID <= 0 {
		return domain.ValidationError{Field: "user_id", Msg: "must be positive"}
	}
	exists, err := s.Users.Exists(req.UserID)
	if err != nil || exists {
		return err
	}

	// First-booking provisioning may come without a chosen password; the
	// column always stores a bcrypt hash, never a plaintext value.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "password hash failed", Err: err}
	}

	ok, err := s.Users.Register(models.User{
		UserID:      req.UserID,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.Phone),
	}, string(hash))
	if err != nil {
		return err
	}
	if !ok {
		// Lost a concurrent registration race for the same id; the row
		// exists now, which is all the booking needs.
		utils.LogEvent(s.RequestID, "booking", "ensure_user",
			fmt.Sprintf("user_id=%d registered concurrently", req.UserID))
	}
	return nil
}
