package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intdb "github.com/SiddharthDaryani/Bus-booking-system/internal/db"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain/models"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/utils"

	"github.com/go-sql-driver/mysql"
)

// defaultSeatCapacity is used when the capacity join yields no row, a
// degraded but non-fatal outcome.
const defaultSeatCapacity = 50

// mysqlErrDuplicateEntry is errno 1062, raised on the (ScheduleID,
// SeatNumber) unique key and on duplicate user ids.
const mysqlErrDuplicateEntry = 1062

type SeatRepo struct {
	Conn *intdb.Conn
}

// Availability reports the bus capacity and the occupied seat numbers for
// one schedule.
func (r SeatRepo) Availability(scheduleID int64) (models.SeatAvailability, error) {
	var out models.SeatAvailability
	if scheduleID <= 0 {
		return out, domain.ValidationError{Field: "schedule_id", Msg: "must be positive"}
	}
	h, err := r.Conn.Acquire()
	if err != nil {
		return out, err
	}

	err = h.QueryRow(`
		SELECT b.SeatCapacity AS TotalSeats FROM schedule s
		JOIN bus b ON s.BusID = b.BusID
		WHERE s.ScheduleID = ?
	`, scheduleID).Scan(&out.TotalSeats)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		out.TotalSeats = defaultSeatCapacity
	case err != nil:
		return models.SeatAvailability{}, domain.InternalError{Msg: "seat capacity query failed", Err: err}
	}

	rows, err := h.Query(`SELECT SeatNumber FROM booking WHERE ScheduleID = ?`, scheduleID)
	if err != nil {
		return models.SeatAvailability{}, domain.InternalError{Msg: "occupied seat query failed", Err: err}
	}
	defer rows.Close()

	out.OccupiedSeats = []int{}
	for rows.Next() {
		var seat int
		if err := rows.Scan(&seat); err != nil {
			return models.SeatAvailability{}, domain.InternalError{Msg: "occupied seat scan failed", Err: err}
		}
		out.OccupiedSeats = append(out.OccupiedSeats, seat)
	}
	if err := rows.Err(); err != nil {
		return models.SeatAvailability{}, domain.InternalError{Msg: "occupied seat query failed", Err: err}
	}

	utils.LogEvent("", "seat", "availability",
		fmt.Sprintf("schedule_id=%d total=%d occupied=%d", scheduleID, out.TotalSeats, len(out.OccupiedSeats)))
	return out, nil
}

// Book attempts to reserve (scheduleID, seatNumber) for userID. The
// availability check and the insert run as one conditional statement so
// the store serializes conflicting attempts: the INSERT ... SELECT only
// produces a row when the schedule exists and the seat lies within the
// bus capacity, and the unique key on (ScheduleID, SeatNumber) rejects
// the loser of a same-seat race with errno 1062. Two concurrent attempts
// on the same seat therefore commit exactly one row.
//
// The statement runs in an explicit transaction with commit on success
// and rollback on any failure. The error return is non-nil only for
// store failures; conflict and invalid-seat are ordinary outcomes.
func (r SeatRepo) Book(scheduleID int64, seatNumber int, userID int64) (domain.BookOutcome, error) {
	if scheduleID <= 0 || seatNumber <= 0 || userID <= 0 {
		return domain.BookInvalidSeat, nil
	}
	h, err := r.Conn.Acquire()
	if err != nil {
		return domain.BookFailed, err
	}

	tx, err := h.Begin()
	if err != nil {
		return domain.BookFailed, domain.InternalError{Msg: "begin booking transaction failed", Err: err}
	}

	res, err := tx.Exec(`
		INSERT INTO booking (ScheduleID, SeatNumber, UserID)
		SELECT s.ScheduleID, ?, ?
		FROM schedule s
		JOIN bus b ON s.BusID = b.BusID
		WHERE s.ScheduleID = ? AND ? BETWEEN 1 AND b.SeatCapacity
	`, seatNumber, userID, scheduleID, seatNumber)
	if err != nil {
		_ = tx.Rollback()
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
			utils.LogEvent("", "seat", "book",
				fmt.Sprintf("seat %d already taken on schedule_id=%d", seatNumber, scheduleID))
			return domain.BookSeatTaken, nil
		}
		utils.LogEvent("", "seat", "book",
			fmt.Sprintf("booking failed for schedule_id=%d seat=%d user_id=%d: %v", scheduleID, seatNumber, userID, err))
		return domain.BookFailed, domain.InternalError{Msg: "booking insert failed", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return domain.BookFailed, domain.InternalError{Msg: "booking result unreadable", Err: err}
	}
	if affected == 0 {
		// Schedule missing or seat outside [1, capacity]; nothing written.
		_ = tx.Rollback()
		return domain.BookInvalidSeat, nil
	}

	if err := tx.Commit(); err != nil {
		return domain.BookFailed, domain.InternalError{Msg: "booking commit failed", Err: err}
	}

	utils.LogEvent("", "seat", "book",
		fmt.Sprintf("seat %d booked on schedule_id=%d for user_id=%d", seatNumber, scheduleID, userID))
	return domain.BookConfirmed, nil
}

// BookOK preserves the legacy boolean contract: every non-confirmed
// outcome, store failures included, collapses to false.
func (r SeatRepo) BookOK(scheduleID int64, seatNumber int, userID int64) bool {
	outcome, err := r.Book(scheduleID, seatNumber, userID)
	if err != nil {
		return false
	}
	return outcome.Confirmed()
}
