package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "github.com/SiddharthDaryani/Bus-booking-system/internal/config"
	intdb "github.com/SiddharthDaryani/Bus-booking-system/internal/db"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/http/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testEngine(a *API) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/api/health", a.Health)
	r.GET("/api/schedules", a.SearchSchedules)
	r.GET("/api/schedules/:id/seats", a.SeatAvailability)
	r.POST("/api/bookings", a.CreateBooking)
	return r
}

type apiTest struct {
	description  string
	method       string
	route        string
	body         []byte
	expectedCode int
}

func TestValidationAndHealthEndpoints(t *testing.T) {
	a := NewAPI(intconfig.Env{})

	tests := []apiTest{
		{
			description:  "health check",
			method:       "GET",
			route:        "/api/health",
			expectedCode: 200,
		},
		{
			description:  "search without filters",
			method:       "GET",
			route:        "/api/schedules",
			expectedCode: 400,
		},
		{
			description:  "search with malformed date",
			method:       "GET",
			route:        "/api/schedules?source=Pune&destination=Mumbai&date=next-friday",
			expectedCode: 400,
		},
		{
			description:  "seat availability with bad id",
			method:       "GET",
			route:        "/api/schedules/abc/seats",
			expectedCode: 400,
		},
		{
			description:  "booking with unparsable body",
			method:       "POST",
			route:        "/api/bookings",
			body:         []byte("{"),
			expectedCode: 400,
		},
		{
			description:  "booking without user id",
			method:       "POST",
			route:        "/api/bookings",
			body:         []byte(`{"schedule_id":1,"seat_number":5}`),
			expectedCode: 400,
		},
	}

	r := testEngine(a)
	for _, test := range tests {
		req := httptest.NewRequest(test.method, test.route, bytes.NewBuffer(test.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equalf(t, test.expectedCode, w.Code, test.description)
		assert.NotEmptyf(t, w.Header().Get("X-Request-ID"), "%s: request id missing", test.description)
	}
}

func TestCreateBookingConfirmed(t *testing.T) {
	h, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer h.Close()

	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO booking").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("WHERE s.ScheduleID").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"ScheduleID", "BusNumber", "CompanyName", "DepartureTime", "ArrivalTime",
			"Price", "Distance", "DepartureDate", "Source", "Destination",
		}).AddRow(1, "KA-01", "GreenLine", "08:00:00", "14:00:00", 450.0, 320, "2026-09-10", "Pune", "Mumbai"))

	a := NewAPI(intconfig.Env{})
	a.ConnFactory = func() *intdb.Conn { return intdb.FromHandle(h) }
	r := testEngine(a)

	req := httptest.NewRequest("POST", "/api/bookings",
		bytes.NewBufferString(`{"schedule_id":1,"seat_number":15,"user_id":7}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"booked":true`)
	assert.Contains(t, w.Body.String(), `"outcome":"confirmed"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingSeatTaken(t *testing.T) {
	h, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer h.Close()

	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO booking").
		WillReturnError(duplicateSeatErr())
	mock.ExpectRollback()

	a := NewAPI(intconfig.Env{})
	a.ConnFactory = func() *intdb.Conn { return intdb.FromHandle(h) }
	r := testEngine(a)

	req := httptest.NewRequest("POST", "/api/bookings",
		bytes.NewBufferString(`{"schedule_id":1,"seat_number":15,"user_id":8}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"booked":false`)
	assert.Contains(t, w.Body.String(), `"outcome":"seat_taken"`)
}
