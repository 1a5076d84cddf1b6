package handlers

import (
	"net/http"
	"strconv"

	"github.com/SiddharthDaryani/Bus-booking-system/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/schedules?source=&destination=&date=
func (a *API) SearchSchedules(c *gin.Context) {
	conn := a.conn()
	defer conn.Release()

	svc := a.bookingService(c, conn)
	results, err := svc.Search(c.Query("source"), c.Query("destination"), c.Query("date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": results, "count": len(results)})
}

// GET /api/schedules/dates?source=&destination=
func (a *API) ScheduleDates(c *gin.Context) {
	conn := a.conn()
	defer conn.Release()

	svc := a.bookingService(c, conn)
	dates, err := svc.Dates(c.Query("source"), c.Query("destination"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GET /api/schedules/:id
func (a *API) ScheduleDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid schedule id", nil)
		return
	}

	conn := a.conn()
	defer conn.Release()

	repo := repositories.ScheduleRepo{Conn: conn}
	detail, derr := repo.GetDetails(id)
	if derr != nil {
		RespondDomainError(c, derr)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/schedules/:id/seats
func (a *API) SeatAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid schedule id", nil)
		return
	}

	conn := a.conn()
	defer conn.Release()

	repo := repositories.SeatRepo{Conn: conn}
	avail, aerr := repo.Availability(id)
	if aerr != nil {
		RespondDomainError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, avail)
}
