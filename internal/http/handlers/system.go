package handlers

import (
	"net/http"
	"strings"

	intdb "github.com/SiddharthDaryani/Bus-booking-system/internal/db"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "bus booking backend running"})
}

// DBCheck acquires a fresh connection and probes the expected tables so a
// missing schema shows up here instead of as late query failures.
func (a *API) DBCheck(c *gin.Context) {
	conn := a.conn()
	defer conn.Release()

	h, err := conn.Acquire()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if missing := intdb.MissingTables(h); len(missing) > 0 {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "schema incomplete, missing tables: " + strings.Join(missing, ", "),
		})
		return
	}

	var bookings int
	if err := h.QueryRow(`SELECT COUNT(*) FROM booking`).Scan(&bookings); err != nil {
		RespondError(c, http.StatusInternalServerError, "database query failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "bookings_in_db": bookings})
}
