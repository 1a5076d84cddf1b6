package services

import (
	"bytes"
	"strings"
	"testing"

	intdb "github.com/SiddharthDaryani/Bus-booking-system/internal/db"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTicketService(t *testing.T) (TicketService, sqlmock.Sqlmock, func()) {
	t.Helper()
	h, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	conn := intdb.FromHandle(h)
	svc := TicketService{
		Schedules: repositories.ScheduleRepo{Conn: conn},
		Seats:     repositories.SeatRepo{Conn: conn},
		RequestID: "test-req",
	}
	return svc, mock, func() { h.Close() }
}

func TestGenerateETicketForBookedSeat(t *testing.T) {
	svc, mock, done := newTicketService(t)
	defer done()

	mock.ExpectQuery("WHERE s.ScheduleID").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(detailCols).
			AddRow(1, "KA-01", "GreenLine", "08:00:00", "14:00:00", 450.0, 320, "2026-09-10", "Pune", "Mumbai"))
	mock.ExpectQuery("SeatCapacity").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"TotalSeats"}).AddRow(40))
	mock.ExpectQuery("SELECT SeatNumber FROM booking").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"SeatNumber"}).AddRow(15))

	pdf, filename, err := svc.GenerateETicket(1, 15)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if !strings.HasPrefix(filename, "ETICKET_1_15") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestGenerateETicketRejectsUnbookedSeat(t *testing.T) {
	svc, mock, done := newTicketService(t)
	defer done()

	mock.ExpectQuery("WHERE s.ScheduleID").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(detailCols).
			AddRow(1, "KA-01", "GreenLine", "08:00:00", "14:00:00", 450.0, 320, "2026-09-10", "Pune", "Mumbai"))
	mock.ExpectQuery("SeatCapacity").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"TotalSeats"}).AddRow(40))
	mock.ExpectQuery("SELECT SeatNumber FROM booking").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"SeatNumber"}))

	_, _, err := svc.GenerateETicket(1, 15)
	if !domain.IsNotFound(err) {
		t.Fatalf("unbooked seat must be not-found, got: %v", err)
	}
}
