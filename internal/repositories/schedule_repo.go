package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intdb "github.com/SiddharthDaryani/Bus-booking-system/internal/db"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain/models"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/utils"
)

type ScheduleRepo struct {
	Conn *intdb.Conn
}

// FindAvailable joins schedule, route, bus and buscompany on the given
// filters. An empty result is a normal outcome, distinct from a
// connectivity failure.
func (r ScheduleRepo) FindAvailable(source, destination, travelDate string) ([]models.ScheduleSummary, error) {
	h, err := r.Conn.Acquire()
	if err != nil {
		return nil, err
	}

	rows, err := h.Query(`
		SELECT
			s.ScheduleID,
			b.BusNumber,
			bc.CompanyName,
			s.DepartureTime,
			s.ArrivalTime,
			s.Price,
			r.Distance,
			s.DepartureDate AS TravelDate
		FROM schedule s
		JOIN route r ON s.RouteID = r.RouteID
		JOIN bus b ON s.BusID = b.BusID
		JOIN buscompany bc ON b.CompanyID = bc.CompanyID
		WHERE r.Source = ? AND r.Destination = ? AND s.DepartureDate = ?
	`, source, destination, travelDate)
	if err != nil {
		return nil, domain.InternalError{Msg: "schedule search failed", Err: err}
	}
	defer rows.Close()

	out := []models.ScheduleSummary{}
	for rows.Next() {
		var s models.ScheduleSummary
		if err := rows.Scan(
			&s.ScheduleID,
			&s.BusNumber,
			&s.CompanyName,
			&s.DepartureTime,
			&s.ArrivalTime,
			&s.Price,
			&s.Distance,
			&s.TravelDate,
		); err != nil {
			return nil, domain.InternalError{Msg: "schedule row scan failed", Err: err}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "schedule search failed", Err: err}
	}

	utils.LogEvent("", "schedule", "find_available",
		fmt.Sprintf("found %d schedules for %s -> %s on %s", len(out), source, destination, travelDate))
	return out, nil
}

// ListDates returns the distinct travel dates and schedule ids serving a
// route, ascending by date. It drives date selection before seat selection.
func (r ScheduleRepo) ListDates(source, destination string) ([]models.ScheduleDate, error) {
	h, err := r.Conn.Acquire()
	if err != nil {
		return nil, err
	}

	rows, err := h.Query(`
		SELECT DISTINCT s.DepartureDate AS TravelDate, s.ScheduleID
		FROM schedule s
		JOIN route r ON s.RouteID = r.RouteID
		WHERE r.Source = ? AND r.Destination = ?
		ORDER BY s.DepartureDate ASC
	`, source, destination)
	if err != nil {
		return nil, domain.InternalError{Msg: "schedule date listing failed", Err: err}
	}
	defer rows.Close()

	out := []models.ScheduleDate{}
	for rows.Next() {
		var d models.ScheduleDate
		if err := rows.Scan(&d.TravelDate, &d.ScheduleID); err != nil {
			return nil, domain.InternalError{Msg: "schedule date scan failed", Err: err}
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "schedule date listing failed", Err: err}
	}
	return out, nil
}

// GetDetails fetches the full denormalized projection for one schedule.
// A missing id is a NotFoundError, which callers treat as a normal absent
// outcome rather than a failure.
func (r ScheduleRepo) GetDetails(scheduleID int64) (models.ScheduleDetail, error) {
	var d models.ScheduleDetail
	if scheduleID <= 0 {
		return d, domain.ValidationError{Field: "schedule_id", Msg: "must be positive"}
	}
	h, err := r.Conn.Acquire()
	if err != nil {
		return d, err
	}

	err = h.QueryRow(`
		SELECT
			s.ScheduleID,
			b.BusNumber,
			bc.CompanyName,
			s.DepartureTime,
			s.ArrivalTime,
			s.Price,
			r.Distance,
			s.DepartureDate,
			r.Source,
			r.Destination
		FROM schedule s
		JOIN route r ON s.RouteID = r.RouteID
		JOIN bus b ON s.BusID = b.BusID
		JOIN buscompany bc ON b.CompanyID = bc.CompanyID
		WHERE s.ScheduleID = ?
	`, scheduleID).Scan(
		&d.ScheduleID,
		&d.BusNumber,
		&d.CompanyName,
		&d.DepartureTime,
		&d.ArrivalTime,
		&d.Price,
		&d.Distance,
		&d.DepartureDate,
		&d.Source,
		&d.Destination,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ScheduleDetail{}, domain.NotFoundError{Resource: "schedule"}
		}
		return models.ScheduleDetail{}, domain.InternalError{Msg: "schedule detail query failed", Err: err}
	}
	return d, nil
}
